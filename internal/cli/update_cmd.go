package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aibox/boxctl/internal/catalog"
	"github.com/aibox/boxctl/internal/domain"
)

func newAgentUpdateCmd() *cobra.Command {
	var (
		name          string
		description   string
		prompt        string
		model         string
		temperature   float64
		maxIterations int
		toolIDs       []string
	)

	cmd := &cobra.Command{
		Use:   "update <agent-id>",
		Short: "Update an agent's configuration",
		Long: `Update an agent's configuration. The current record is fetched
first; only the fields given as flags change, everything else is
kept as is.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			cfg := loadConfig()
			client := newClient(cfg)

			agent, err := client.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			if agent == nil {
				return fmt.Errorf("agent not found: %s", id)
			}

			draft := draftFromAgent(agent)

			if cmd.Flags().Changed("name") {
				draft.Name = name
			}
			if cmd.Flags().Changed("description") {
				draft.Description = description
			}
			if cmd.Flags().Changed("prompt") {
				draft.SystemPrompt = prompt
			}
			if cmd.Flags().Changed("model") {
				if _, ok := catalog.ModelByID(model); !ok {
					return fmt.Errorf("unknown model %q", model)
				}
				draft.Model = model
			}
			if cmd.Flags().Changed("temperature") {
				if temperature < 0 || temperature > 1 {
					return fmt.Errorf("temperature must be within [0,1], got %v", temperature)
				}
				draft.Temperature = temperature
			}
			if cmd.Flags().Changed("max-iterations") {
				if maxIterations < 1 || maxIterations > 20 {
					return fmt.Errorf("max-iterations must be within [1,20], got %d", maxIterations)
				}
				draft.MaxIterations = maxIterations
			}
			if cmd.Flags().Changed("tools") {
				tools := make([]domain.Tool, 0, len(toolIDs))
				for _, raw := range toolIDs {
					tool, ok := catalog.ToolByID(strings.TrimSpace(raw))
					if !ok {
						return fmt.Errorf("unknown tool %q", raw)
					}
					tools = append(tools, tool)
				}
				draft.Tools = tools
			}

			if strings.TrimSpace(draft.Name) == "" || strings.TrimSpace(draft.SystemPrompt) == "" {
				return fmt.Errorf("a name and a system prompt are required")
			}

			if err := client.Update(cmd.Context(), id, draft); err != nil {
				return err
			}
			fmt.Printf("Updated agent %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "agent name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "agent description")
	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "system prompt")
	cmd.Flags().StringVarP(&model, "model", "m", "", "model id (see: boxctl models)")
	cmd.Flags().Float64Var(&temperature, "temperature", 0.7, "sampling temperature, 0..1")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", 10, "iteration cap, 1..20")
	cmd.Flags().StringSliceVar(&toolIDs, "tools", nil, "comma-separated tool ids, replaces the current set")

	return cmd
}

// draftFromAgent rebuilds an editable draft from a normalized record.
// The display role is resolved back to its template id; roles without a
// template fall back to custom.
func draftFromAgent(a *domain.Agent) domain.CreateAgentDraft {
	role := catalog.CustomTemplateID
	for _, t := range catalog.Templates {
		if t.Role == a.Role {
			role = t.ID
			break
		}
	}
	return domain.CreateAgentDraft{
		Name:          a.Name,
		Role:          role,
		Description:   a.Description,
		SystemPrompt:  a.SystemPrompt,
		Model:         a.Model,
		Temperature:   a.Temperature,
		MaxIterations: a.MaxIterations,
		Tools:         a.Tools,
	}
}
