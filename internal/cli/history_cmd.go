package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aibox/boxctl/internal/domain"
	"github.com/aibox/boxctl/internal/store"
)

func newAgentHistoryCmd() *cobra.Command {
	var (
		limit int
		local bool
	)

	cmd := &cobra.Command{
		Use:   "history <agent-id>",
		Short: "Show an agent's recent runs",
		Long: `Show an agent's recent runs, newest first. By default the list
comes from the backend; --local reads the runs recorded on this
machine instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			cfg := loadConfig()
			if limit <= 0 {
				limit = cfg.History.Limit
			}

			var (
				executions []domain.Execution
				err        error
			)
			if local {
				db, openErr := store.Open(paths.HistoryDB(cfg), log)
				if openErr != nil {
					return openErr
				}
				defer db.Close()
				executions, err = store.NewHistoryStore(db).ListByAgent(id, limit)
			} else {
				executions, err = newClient(cfg).Executions(cmd.Context(), id, limit)
			}
			if err != nil {
				return err
			}

			if len(executions) == 0 {
				fmt.Println("No runs recorded.")
				return nil
			}

			for _, exec := range executions {
				fmt.Printf("  %-36s %-8s %7.1fs  %s\n",
					exec.ID, exec.Status, float64(exec.ExecutionTime)/1000, excerpt(exec.Input, 48))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "maximum runs to show (default from config)")
	cmd.Flags().BoolVar(&local, "local", false, "read the local run history instead of the backend")
	return cmd
}

// excerpt flattens s to one line and trims it to at most n runes.
func excerpt(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
