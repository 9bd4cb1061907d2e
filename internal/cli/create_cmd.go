package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/aibox/boxctl/internal/catalog"
	"github.com/aibox/boxctl/internal/tui"
	"github.com/aibox/boxctl/internal/wizard"
)

func newAgentCreateCmd() *cobra.Command {
	var (
		templateID    string
		name          string
		description   string
		prompt        string
		model         string
		temperature   float64
		maxIterations int
		toolIDs       []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an agent (interactive wizard by default)",
		Long: `Create an agent. Without flags this launches the interactive
four-step wizard; with --name or --template the agent is created
non-interactively from the given flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			client := newClient(cfg)

			interactive := templateID == "" && name == "" &&
				isatty.IsTerminal(os.Stdout.Fd())
			if interactive {
				wm := tui.NewModel(cmd.Context(), client)
				final, err := tea.NewProgram(wm).Run()
				if err != nil {
					return err
				}
				result := final.(tui.Model)
				if result.Canceled || result.Created == nil {
					fmt.Println("Aborted.")
					return nil
				}
				fmt.Printf("Created agent %s (%s)\n", result.Created.Name, result.Created.ID)
				return nil
			}

			// Non-interactive path: drive the same state machine the
			// wizard uses, so the guards apply either way.
			w := wizard.New()

			if templateID == "" {
				templateID = catalog.CustomTemplateID
			}
			tpl, ok := catalog.TemplateByID(templateID)
			if !ok {
				return fmt.Errorf("unknown template %q", templateID)
			}
			w.SelectTemplate(tpl)

			if name != "" {
				w.SetName(name)
			}
			if description != "" {
				w.SetDescription(description)
			}
			if prompt != "" {
				w.SetSystemPrompt(prompt)
			}
			if model != "" {
				if _, ok := catalog.ModelByID(model); !ok {
					return fmt.Errorf("unknown model %q", model)
				}
				w.SetModel(model)
			}
			if cmd.Flags().Changed("temperature") {
				if temperature < 0 || temperature > 1 {
					return fmt.Errorf("temperature must be within [0,1], got %v", temperature)
				}
				w.SetTemperature(temperature)
			}
			if cmd.Flags().Changed("max-iterations") {
				if maxIterations < 1 || maxIterations > 20 {
					return fmt.Errorf("max-iterations must be within [1,20], got %d", maxIterations)
				}
				w.SetMaxIterations(maxIterations)
			}

			if cmd.Flags().Changed("tools") {
				// Replace the template's defaults with the given set.
				for _, t := range w.SelectedTools() {
					w.ToggleTool(t)
				}
				for _, id := range toolIDs {
					tool, ok := catalog.ToolByID(strings.TrimSpace(id))
					if !ok {
						return fmt.Errorf("unknown tool %q", id)
					}
					if !w.ToolSelected(tool.ID) {
						w.ToggleTool(tool)
					}
				}
			}

			for w.Step() < wizard.StepParams {
				if !w.Next() {
					return fmt.Errorf("step %d incomplete: a name and a system prompt are required", w.Step())
				}
			}
			if !w.CanSubmit() {
				return fmt.Errorf("draft is incomplete")
			}

			agent, err := client.Create(cmd.Context(), w.Draft())
			if err != nil {
				return err
			}
			fmt.Printf("Created agent %s (%s)\n", agent.Name, agent.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&templateID, "template", "t", "", "template id (lawyer, accountant, marketer, designer, custom)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "agent name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "agent description")
	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "system prompt")
	cmd.Flags().StringVarP(&model, "model", "m", "", "model id (see: boxctl models)")
	cmd.Flags().Float64Var(&temperature, "temperature", 0.7, "sampling temperature, 0..1")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", 10, "iteration cap, 1..20")
	cmd.Flags().StringSliceVar(&toolIDs, "tools", nil, "comma-separated tool ids (see: boxctl tools)")

	return cmd
}
