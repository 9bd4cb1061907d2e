package api

// Wire shapes exchanged with the agent backend. Field names and the
// role/tool vocabulary must match the deployed backend exactly; the
// normalized shapes the rest of the console sees live in internal/domain.

// backendAgentSummary is one entry of GET /agents.
type backendAgentSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Description string   `json:"description,omitempty"`
	Tools       []string `json:"tools,omitempty"`
}

// backendAgentConfig is the nested config object of an agent detail.
// Pointer fields distinguish "absent" from legitimate zero values.
type backendAgentConfig struct {
	SystemPrompt  string   `json:"system_prompt,omitempty"`
	Model         string   `json:"model,omitempty"`
	Temperature   *float64 `json:"temperature,omitempty"`
	MaxIterations *int     `json:"max_iterations,omitempty"`
	Tools         []string `json:"tools,omitempty"`
}

// backendAgentDetail is the response of GET /agents/{id}.
type backendAgentDetail struct {
	backendAgentSummary
	Config         backendAgentConfig `json:"config,omitempty"`
	IsActive       *bool              `json:"is_active,omitempty"`
	ExecutionCount *int               `json:"execution_count,omitempty"`
	CreatedAt      string             `json:"created_at,omitempty"`
	UpdatedAt      string             `json:"updated_at,omitempty"`
}

// backendStats is the response of GET /agents/{id}/stats.
type backendStats struct {
	AgentID     string  `json:"agent_id,omitempty"`
	Total       int     `json:"total"`
	Completed   int     `json:"completed"`
	Failed      int     `json:"failed"`
	SuccessRate float64 `json:"success_rate"`
	AvgTimeMs   int     `json:"avg_time_ms"`
}

// createAgentRequest is the body of POST /agents/create and PATCH /agents/{id}.
type createAgentRequest struct {
	Name          string   `json:"name"`
	Role          string   `json:"role"`
	Description   string   `json:"description"`
	SystemPrompt  string   `json:"system_prompt"`
	Tools         []string `json:"tools"`
	Triggers      []string `json:"triggers"`
	Integrations  []any    `json:"integrations"`
	Model         string   `json:"model"`
	MaxIterations int      `json:"max_iterations"`
	Temperature   float64  `json:"temperature"`
}

// createAgentResponse is the body returned by POST /agents/create.
type createAgentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Role string `json:"role,omitempty"`
}

// executeRequest is the body of POST /agents/{id}/execute.
type executeRequest struct {
	Input   string         `json:"input"`
	Context map[string]any `json:"context,omitempty"`
	Stream  bool           `json:"stream,omitempty"`
}

// backendExecutionLog is one log entry in an execute response.
type backendExecutionLog struct {
	Timestamp string `json:"timestamp,omitempty"`
	Message   string `json:"message"`
	Level     string `json:"level,omitempty"`
}

// executeResponse is the body returned by POST /agents/{id}/execute.
type executeResponse struct {
	ExecutionID   string                `json:"execution_id"`
	AgentID       string                `json:"agent_id"`
	Output        string                `json:"output"`
	Status        string                `json:"status"`
	Logs          []backendExecutionLog `json:"logs,omitempty"`
	ExecutionTime int                   `json:"execution_time"`
	Iterations    int                   `json:"iterations,omitempty"`
}

// backendExecutionRow is one entry of GET /agents/{id}/executions.
type backendExecutionRow struct {
	ID            string `json:"id"`
	InputText     string `json:"input_text"`
	OutputText    string `json:"output_text"`
	Status        string `json:"status"`
	ExecutionTime int    `json:"execution_time"`
	CreatedAt     string `json:"created_at"`
}
