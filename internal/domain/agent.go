// Package domain defines the normalized types the console works with.
// Backend wire shapes live in internal/api; everything here is already
// resolved against the static catalogs.
package domain

// Tool is a capability unit an agent may be configured to use.
type Tool struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Emoji       string `json:"emoji,omitempty"`
}

// AgentTemplate is a named starting configuration offered at wizard step 1.
// Templates only seed draft state; they are never persisted.
type AgentTemplate struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Role          string   `json:"role"` // display label
	Emoji         string   `json:"emoji"`
	Description   string   `json:"description"`
	DefaultPrompt string   `json:"defaultPrompt"`
	DefaultTools  []string `json:"defaultTools"` // tool ids
}

// Agent is a fully normalized agent record. Every fetch builds a fresh
// value; fields always carry defaults, so an Agent is never partial.
type Agent struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Role          string  `json:"role"` // display label
	Description   string  `json:"description"`
	SystemPrompt  string  `json:"system_prompt"`
	Model         string  `json:"model"`
	Temperature   float64 `json:"temperature"`    // 0..1
	MaxIterations int     `json:"max_iterations"` // 1..20
	Tools         []Tool  `json:"tools"`          // catalog-resolvable only
	IsActive      bool    `json:"is_active"`
	RunCount      int     `json:"run_count"`
	SuccessRate   float64 `json:"success_rate"` // 0..100
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// CreateAgentDraft is the in-progress configuration collected by the
// wizard and consumed once by the create call.
type CreateAgentDraft struct {
	Name          string  `json:"name"`
	Role          string  `json:"role"` // template id or "custom"
	Description   string  `json:"description"`
	SystemPrompt  string  `json:"system_prompt"`
	Model         string  `json:"model"`
	Temperature   float64 `json:"temperature"`
	MaxIterations int     `json:"max_iterations"`
	Tools         []Tool  `json:"tools"`
}

// ToolIDs returns the ids of the draft's selected tools, in order.
func (d CreateAgentDraft) ToolIDs() []string {
	ids := make([]string, 0, len(d.Tools))
	for _, t := range d.Tools {
		ids = append(ids, t.ID)
	}
	return ids
}
