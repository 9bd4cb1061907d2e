// Package tui renders the agent creation wizard in the terminal. All
// draft state and step gating live in internal/wizard; this model only
// translates key presses into state machine calls and draws the result.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aibox/boxctl/internal/catalog"
	"github.com/aibox/boxctl/internal/domain"
	"github.com/aibox/boxctl/internal/wizard"
)

// Creator is the single API operation the wizard needs.
type Creator interface {
	Create(ctx context.Context, draft domain.CreateAgentDraft) (*domain.Agent, error)
}

// focus targets within the info step.
const (
	focusName = iota
	focusDescription
	focusPrompt
	infoFieldCount
)

type createDoneMsg struct{ agent *domain.Agent }
type createFailedMsg struct{ err error }

// Model is the bubbletea model for the creation wizard.
type Model struct {
	ctx     context.Context
	creator Creator
	wiz     *wizard.Wizard

	// step 1 and 3 cursors
	templateCursor int
	toolCursor     int

	// step 2 inputs
	focus     int
	nameInput textinput.Model
	descInput textinput.Model
	prompt    textarea.Model

	// step 4 cursor over the model catalog
	modelCursor int

	submitting bool
	submitErr  error

	// Created is set when the backend accepted the draft; the program
	// quits right after.
	Created *domain.Agent
	// Canceled is set when the user backed out of the wizard.
	Canceled bool
}

// NewModel builds a wizard model ready to run under tea.NewProgram.
func NewModel(ctx context.Context, creator Creator) Model {
	name := textinput.New()
	name.Placeholder = "Agent name"
	name.CharLimit = 120
	name.Focus()

	desc := textinput.New()
	desc.Placeholder = "Short description (optional)"
	desc.CharLimit = 240

	prompt := textarea.New()
	prompt.Placeholder = "System prompt..."
	prompt.SetWidth(70)
	prompt.SetHeight(5)
	prompt.ShowLineNumbers = false

	return Model{
		ctx:       ctx,
		creator:   creator,
		wiz:       wizard.New(),
		nameInput: name,
		descInput: desc,
		prompt:    prompt,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case createDoneMsg:
		m.Created = msg.agent
		return m, tea.Quit

	case createFailedMsg:
		// Draft state is untouched; the user may fix and resubmit.
		m.submitting = false
		m.submitErr = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.submitting {
			if msg.Type == tea.KeyCtrlC {
				m.Canceled = true
				return m, tea.Quit
			}
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.Canceled = true
		return m, tea.Quit
	case tea.KeyEsc:
		if !m.wiz.Back() {
			m.Canceled = true
			return m, tea.Quit
		}
		m.submitErr = nil
		return m, nil
	}

	switch m.wiz.Step() {
	case wizard.StepRole:
		return m.updateRoleStep(msg)
	case wizard.StepInfo:
		return m.updateInfoStep(msg)
	case wizard.StepTools:
		return m.updateToolsStep(msg)
	default:
		return m.updateParamsStep(msg)
	}
}

func (m Model) updateRoleStep(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.templateCursor > 0 {
			m.templateCursor--
		}
	case "down", "j":
		if m.templateCursor < len(catalog.Templates)-1 {
			m.templateCursor++
		}
	case "enter":
		m.wiz.SelectTemplate(catalog.Templates[m.templateCursor])
		m.syncInfoInputs()
		m.wiz.Next()
	}
	return m, nil
}

// syncInfoInputs pushes freshly seeded draft values into the step 2
// widgets after a template selection overwrote them.
func (m *Model) syncInfoInputs() {
	m.nameInput.SetValue(m.wiz.Name())
	m.descInput.SetValue(m.wiz.Description())
	m.prompt.SetValue(m.wiz.SystemPrompt())
	m.focus = focusName
	m.nameInput.Focus()
	m.descInput.Blur()
	m.prompt.Blur()
}

func (m Model) updateInfoStep(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab:
		if msg.Type == tea.KeyTab {
			m.focus = (m.focus + 1) % infoFieldCount
		} else {
			m.focus = (m.focus + infoFieldCount - 1) % infoFieldCount
		}
		m.nameInput.Blur()
		m.descInput.Blur()
		m.prompt.Blur()
		switch m.focus {
		case focusName:
			m.nameInput.Focus()
		case focusDescription:
			m.descInput.Focus()
		case focusPrompt:
			m.prompt.Focus()
		}
		return m, nil

	case tea.KeyEnter:
		// Enter inside the prompt textarea inserts a newline; anywhere
		// else it tries to advance.
		if m.focus != focusPrompt {
			if m.wiz.Next() {
				return m, nil
			}
			return m, nil
		}
	}
	return m.updateInputs(msg)
}

func (m Model) updateToolsStep(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.toolCursor > 0 {
			m.toolCursor--
		}
	case "down", "j":
		if m.toolCursor < len(catalog.Tools)-1 {
			m.toolCursor++
		}
	case " ":
		m.wiz.ToggleTool(catalog.Tools[m.toolCursor])
	case "enter":
		m.wiz.Next()
	}
	return m, nil
}

func (m Model) updateParamsStep(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.modelCursor > 0 {
			m.modelCursor--
			m.wiz.SetModel(catalog.Models[m.modelCursor].ID)
		}
	case "down", "j":
		if m.modelCursor < len(catalog.Models)-1 {
			m.modelCursor++
			m.wiz.SetModel(catalog.Models[m.modelCursor].ID)
		}
	case "left", "-":
		if t := m.wiz.Temperature() - 0.1; t >= 0 {
			m.wiz.SetTemperature(roundTenth(t))
		}
	case "right", "+":
		if t := m.wiz.Temperature() + 0.1; t <= 1.0 {
			m.wiz.SetTemperature(roundTenth(t))
		}
	case "[":
		if n := m.wiz.MaxIterations() - 1; n >= 1 {
			m.wiz.SetMaxIterations(n)
		}
	case "]":
		if n := m.wiz.MaxIterations() + 1; n <= 20 {
			m.wiz.SetMaxIterations(n)
		}
	case "enter":
		if !m.wiz.CanSubmit() {
			return m, nil
		}
		m.submitting = true
		m.submitErr = nil
		draft := m.wiz.Draft()
		return m, func() tea.Msg {
			agent, err := m.creator.Create(m.ctx, draft)
			if err != nil {
				return createFailedMsg{err: err}
			}
			return createDoneMsg{agent: agent}
		}
	}
	return m, nil
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.nameInput, cmd = m.nameInput.Update(msg)
	cmds = append(cmds, cmd)
	m.descInput, cmd = m.descInput.Update(msg)
	cmds = append(cmds, cmd)
	m.prompt, cmd = m.prompt.Update(msg)
	cmds = append(cmds, cmd)

	m.wiz.SetName(m.nameInput.Value())
	m.wiz.SetDescription(m.descInput.Value())
	m.wiz.SetSystemPrompt(m.prompt.Value())

	return m, tea.Batch(cmds...)
}

func roundTenth(f float64) float64 {
	return float64(int(f*10+0.5)) / 10
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Create agent"))
	b.WriteString("  ")
	b.WriteString(stepStyle.Render(fmt.Sprintf("step %d/4 — %s", m.wiz.Step(), stepName(m.wiz.Step()))))
	b.WriteString("\n\n")

	switch m.wiz.Step() {
	case wizard.StepRole:
		m.viewRoleStep(&b)
	case wizard.StepInfo:
		m.viewInfoStep(&b)
	case wizard.StepTools:
		m.viewToolsStep(&b)
	default:
		m.viewParamsStep(&b)
	}

	if m.submitErr != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("create failed: " + m.submitErr.Error()))
		b.WriteString("\n")
	}
	if m.submitting {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("creating agent..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpLine(m.wiz.Step())))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewRoleStep(b *strings.Builder) {
	for i, tpl := range catalog.Templates {
		cursor := "  "
		line := fmt.Sprintf("%s %s — %s", tpl.Emoji, tpl.Name, tpl.Description)
		if i == m.templateCursor {
			cursor = cursorStyle.Render("> ")
			line = selectedStyle.Render(line)
		}
		fmt.Fprintf(b, "%s%s\n", cursor, line)
	}
}

func (m Model) viewInfoStep(b *strings.Builder) {
	b.WriteString(labelStyle.Render("Name"))
	b.WriteString("\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Description"))
	b.WriteString("\n")
	b.WriteString(m.descInput.View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("System prompt"))
	b.WriteString("\n")
	b.WriteString(m.prompt.View())
	b.WriteString("\n")

	if !m.wiz.StepValid(wizard.StepInfo) {
		b.WriteString(dimStyle.Render("\nname and system prompt are required\n"))
	}
}

func (m Model) viewToolsStep(b *strings.Builder) {
	for i, tool := range catalog.Tools {
		cursor := "  "
		check := "[ ]"
		if m.wiz.ToolSelected(tool.ID) {
			check = checkedStyle.Render("[x]")
		}
		line := fmt.Sprintf("%s %s %s — %s", check, tool.Emoji, tool.Name, tool.Description)
		if i == m.toolCursor {
			cursor = cursorStyle.Render("> ")
			line = selectedStyle.Render(line)
		}
		fmt.Fprintf(b, "%s%s\n", cursor, line)
	}
}

func (m Model) viewParamsStep(b *strings.Builder) {
	b.WriteString(labelStyle.Render("Model"))
	b.WriteString("\n")
	for i, mdl := range catalog.Models {
		cursor := "  "
		line := mdl.Label
		if i == m.modelCursor {
			cursor = cursorStyle.Render("> ")
			line = selectedStyle.Render(line)
		}
		fmt.Fprintf(b, "%s%s\n", cursor, line)
	}

	fmt.Fprintf(b, "\n%s  %.1f  %s\n",
		labelStyle.Render("Temperature"), m.wiz.Temperature(), dimStyle.Render("←/→ adjust"))
	fmt.Fprintf(b, "%s  %d  %s\n",
		labelStyle.Render("Max iterations"), m.wiz.MaxIterations(), dimStyle.Render("[/] adjust"))

	selected := m.wiz.SelectedTools()
	names := make([]string, 0, len(selected))
	for _, t := range selected {
		names = append(names, t.Name)
	}
	if len(names) == 0 {
		names = append(names, "none")
	}
	fmt.Fprintf(b, "\n%s %s\n", dimStyle.Render("tools:"), strings.Join(names, ", "))
}

func stepName(step int) string {
	switch step {
	case wizard.StepRole:
		return "role"
	case wizard.StepInfo:
		return "info"
	case wizard.StepTools:
		return "tools"
	default:
		return "parameters"
	}
}

func helpLine(step int) string {
	switch step {
	case wizard.StepRole:
		return "↑/↓ select · enter choose · esc quit"
	case wizard.StepInfo:
		return "tab next field · enter continue · esc back"
	case wizard.StepTools:
		return "↑/↓ move · space toggle · enter continue · esc back"
	default:
		return "↑/↓ model · ←/→ temperature · [/] iterations · enter create · esc back"
	}
}
