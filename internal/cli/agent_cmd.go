package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aibox/boxctl/internal/domain"
	"github.com/aibox/boxctl/internal/store"
)

func newAgentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Manage agents on the backend",
	}

	cmd.AddCommand(newAgentListCmd())
	cmd.AddCommand(newAgentShowCmd())
	cmd.AddCommand(newAgentCreateCmd())
	cmd.AddCommand(newAgentUpdateCmd())
	cmd.AddCommand(newAgentDeleteCmd())
	cmd.AddCommand(newAgentRunCmd())
	cmd.AddCommand(newAgentHistoryCmd())
	return cmd
}

func newAgentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			agents, err := newClient(cfg).List(cmd.Context())
			if err != nil {
				return err
			}

			if len(agents) == 0 {
				fmt.Println("No agents yet. Create one with: boxctl agent create")
				return nil
			}

			for _, a := range agents {
				tools := make([]string, 0, len(a.Tools))
				for _, t := range a.Tools {
					tools = append(tools, t.ID)
				}
				toolCol := "-"
				if len(tools) > 0 {
					toolCol = strings.Join(tools, ",")
				}
				fmt.Printf("  %-36s %-20s %-12s %s\n", a.ID, a.Name, a.Role, toolCol)
			}
			return nil
		},
	}
}

func newAgentShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <agent-id>",
		Short: "Show details about an agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			agent, err := newClient(cfg).Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if agent == nil {
				return fmt.Errorf("agent not found: %s", args[0])
			}

			printAgent(agent)
			return nil
		},
	}
}

func printAgent(a *domain.Agent) {
	fmt.Printf("Agent: %s (%s)\n", a.Name, a.ID)
	fmt.Printf("  Role:        %s\n", a.Role)
	if a.Description != "" {
		fmt.Printf("  About:       %s\n", a.Description)
	}
	fmt.Printf("  Model:       %s\n", a.Model)
	fmt.Printf("  Temp:        %.2f\n", a.Temperature)
	fmt.Printf("  Iterations:  %d\n", a.MaxIterations)
	fmt.Printf("  Active:      %v\n", a.IsActive)
	fmt.Printf("  Runs:        %d (%.0f%% success)\n", a.RunCount, a.SuccessRate)
	if len(a.Tools) == 0 {
		fmt.Println("  Tools:       (none)")
	} else {
		fmt.Println("  Tools:")
		for _, t := range a.Tools {
			fmt.Printf("    %s %-20s %s\n", t.Emoji, t.Name, t.Description)
		}
	}
	if a.SystemPrompt != "" {
		fmt.Printf("  Prompt:      %s\n", a.SystemPrompt)
	}
	if a.CreatedAt != "" {
		fmt.Printf("  Created:     %s\n", a.CreatedAt)
	}
}

func newAgentDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <agent-id>",
		Short: "Delete an agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if !yes && !confirm(fmt.Sprintf("Delete agent %s?", id)) {
				fmt.Println("Aborted.")
				return nil
			}

			cfg := loadConfig()
			if err := newClient(cfg).Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted agent %s\n", id)

			// Local run history for the agent goes with it.
			if cfg.HistoryEnabled() {
				db, err := store.Open(paths.HistoryDB(cfg), log)
				if err != nil {
					log.Warn().Err(err).Msg("could not open history database")
					return nil
				}
				defer db.Close()
				if n, err := store.NewHistoryStore(db).DeleteByAgent(id); err == nil && n > 0 {
					fmt.Printf("Removed %d recorded run(s)\n", n)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// confirm asks a yes/no question on stdin. Anything but y/yes is a no.
func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
