package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aibox/boxctl/internal/config"
	"github.com/aibox/boxctl/internal/domain"
	"github.com/aibox/boxctl/internal/store"
)

func newAgentRunCmd() *cobra.Command {
	var (
		input   string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run <agent-id>",
		Short: "Run an agent once and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if input == "" {
				return fmt.Errorf("an input is required, pass it with --input")
			}

			cfg := loadConfig()
			client := newClient(cfg)

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			exec, err := client.Execute(ctx, id, input)
			if err != nil {
				return err
			}

			printExecution(exec)

			if cfg.HistoryEnabled() {
				recordRun(cfg, *exec)
			}

			if exec.Status == domain.ExecutionError {
				return fmt.Errorf("execution %s finished with status error", exec.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "task text to hand to the agent")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "deadline for this run (e.g. 2m)")
	return cmd
}

func printExecution(exec *domain.Execution) {
	for _, entry := range exec.Logs {
		marker := " "
		switch entry.Level {
		case domain.LogSuccess:
			marker = "+"
		case domain.LogError:
			marker = "!"
		case domain.LogWarning:
			marker = "~"
		}
		fmt.Printf("  %s [%s] %s\n", marker, entry.Timestamp, entry.Message)
	}

	fmt.Printf("Status: %s", exec.Status)
	if exec.ExecutionTime > 0 {
		fmt.Printf(" (%.1fs)", float64(exec.ExecutionTime)/1000)
	}
	fmt.Println()

	if exec.Output != "" {
		fmt.Println()
		fmt.Println(exec.Output)
	}
}

// recordRun persists a finished execution locally. Recording is best
// effort: a broken history database never fails the run itself.
func recordRun(cfg config.Config, exec domain.Execution) {
	db, err := store.Open(paths.HistoryDB(cfg), log)
	if err != nil {
		log.Warn().Err(err).Msg("could not open history database, run not recorded")
		return
	}
	defer db.Close()

	if err := store.NewHistoryStore(db).Insert(exec); err != nil {
		log.Warn().Err(err).Str("execution", exec.ID).Msg("could not record run")
	}
}
