// Package wizard implements the agent creation flow as a plain state
// machine: four linear steps (role, info, tools, parameters) with guard
// predicates on forward navigation. It holds all draft state itself and
// knows nothing about rendering, so the guards are unit-testable and the
// CLI and the TUI drive the same logic.
package wizard

import (
	"strings"

	"github.com/aibox/boxctl/internal/catalog"
	"github.com/aibox/boxctl/internal/domain"
)

// Step identifiers. The flow is strictly linear; there is no skipping
// and no separate success state — completion is observed by the caller
// through the outcome of the create call.
const (
	StepRole   = 1
	StepInfo   = 2
	StepTools  = 3
	StepParams = 4
)

// Wizard accumulates a creation draft across the four steps.
type Wizard struct {
	step          int
	template      *domain.AgentTemplate
	name          string
	description   string
	systemPrompt  string
	selectedTools []domain.Tool // set semantics, keyed by tool id
	model         string
	temperature   float64
	maxIterations int
}

// New returns a wizard at step 1 with parameter defaults filled in.
func New() *Wizard {
	return &Wizard{
		step:          StepRole,
		model:         catalog.DefaultModel,
		temperature:   0.7,
		maxIterations: 10,
	}
}

// Step returns the current step, 1..4.
func (w *Wizard) Step() int { return w.step }

// Template returns the selected template, or nil before step 1 is done.
func (w *Wizard) Template() *domain.AgentTemplate { return w.template }

// Name returns the draft name.
func (w *Wizard) Name() string { return w.name }

// Description returns the draft description.
func (w *Wizard) Description() string { return w.description }

// SystemPrompt returns the draft system prompt.
func (w *Wizard) SystemPrompt() string { return w.systemPrompt }

// Model returns the draft model id.
func (w *Wizard) Model() string { return w.model }

// Temperature returns the draft temperature.
func (w *Wizard) Temperature() float64 { return w.temperature }

// MaxIterations returns the draft iteration cap.
func (w *Wizard) MaxIterations() int { return w.maxIterations }

// SelectedTools returns the selected tools in selection order.
func (w *Wizard) SelectedTools() []domain.Tool {
	out := make([]domain.Tool, len(w.selectedTools))
	copy(out, w.selectedTools)
	return out
}

// ToolSelected reports whether the tool with the given id is selected.
func (w *Wizard) ToolSelected(id string) bool {
	for _, t := range w.selectedTools {
		if t.ID == id {
			return true
		}
	}
	return false
}

// SelectTemplate sets the template and overwrites name, description,
// system prompt, and the entire tool selection from its defaults. This
// is destructive on purpose: re-selecting at step 1 discards edits made
// after a previous selection. The custom template clears the name.
func (w *Wizard) SelectTemplate(t domain.AgentTemplate) {
	w.template = &t

	if t.ID == catalog.CustomTemplateID {
		w.name = ""
	} else {
		w.name = t.Name
	}
	w.description = t.Description
	w.systemPrompt = t.DefaultPrompt

	w.selectedTools = w.selectedTools[:0]
	for _, id := range t.DefaultTools {
		if tool, ok := catalog.ToolByID(id); ok {
			w.selectedTools = append(w.selectedTools, tool)
		}
	}
}

// SetName sets the draft name.
func (w *Wizard) SetName(name string) { w.name = name }

// SetDescription sets the draft description.
func (w *Wizard) SetDescription(d string) { w.description = d }

// SetSystemPrompt sets the draft system prompt.
func (w *Wizard) SetSystemPrompt(p string) { w.systemPrompt = p }

// SetModel sets the draft model id.
func (w *Wizard) SetModel(m string) { w.model = m }

// SetTemperature sets the draft temperature.
func (w *Wizard) SetTemperature(t float64) { w.temperature = t }

// SetMaxIterations sets the draft iteration cap.
func (w *Wizard) SetMaxIterations(n int) { w.maxIterations = n }

// ToggleTool adds the tool to the selection if absent and removes it if
// present, keyed by id. Toggling twice restores the original selection.
func (w *Wizard) ToggleTool(tool domain.Tool) {
	for i, t := range w.selectedTools {
		if t.ID == tool.ID {
			w.selectedTools = append(w.selectedTools[:i], w.selectedTools[i+1:]...)
			return
		}
	}
	w.selectedTools = append(w.selectedTools, tool)
}

// StepValid reports whether the given step's guard predicate holds.
// Step 1 needs a template; step 2 needs a non-blank name and system
// prompt; steps 3 and 4 are always passable.
func (w *Wizard) StepValid(step int) bool {
	switch step {
	case StepRole:
		return w.template != nil
	case StepInfo:
		return strings.TrimSpace(w.name) != "" && strings.TrimSpace(w.systemPrompt) != ""
	default:
		return true
	}
}

// Next advances one step if the current step's guard holds. It reports
// whether the step changed; at step 4 it is always a no-op.
func (w *Wizard) Next() bool {
	if w.step >= StepParams || !w.StepValid(w.step) {
		return false
	}
	w.step++
	return true
}

// Back moves one step backward. Going back is never guarded.
func (w *Wizard) Back() bool {
	if w.step <= StepRole {
		return false
	}
	w.step--
	return true
}

// CanSubmit reports whether the draft may be submitted: the wizard must
// be at the final step with that step's guard holding.
func (w *Wizard) CanSubmit() bool {
	return w.step == StepParams && w.StepValid(w.step)
}

// Draft assembles the accumulated state into a creation draft. The role
// is the template id, or "custom" when no template was chosen.
func (w *Wizard) Draft() domain.CreateAgentDraft {
	role := catalog.CustomTemplateID
	if w.template != nil {
		role = w.template.ID
	}
	return domain.CreateAgentDraft{
		Name:          w.name,
		Role:          role,
		Description:   w.description,
		SystemPrompt:  w.systemPrompt,
		Model:         w.model,
		Temperature:   w.temperature,
		MaxIterations: w.maxIterations,
		Tools:         w.SelectedTools(),
	}
}
