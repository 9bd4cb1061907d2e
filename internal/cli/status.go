package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aibox/boxctl/internal/version"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show configuration and backend reachability",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()

			fmt.Println(version.Info())
			fmt.Printf("  Config:   %s%s\n", paths.Config, missingNote(paths.Config))
			fmt.Printf("  Backend:  %s\n", cfg.Backend.BaseURL)
			fmt.Printf("  History:  %s\n", historyNote(cfg.HistoryEnabled()))

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()

			agents, err := newClient(cfg).List(ctx)
			if err != nil {
				return fmt.Errorf("backend unreachable: %w", err)
			}
			fmt.Printf("  Status:   ok, %d agent(s)\n", len(agents))
			return nil
		},
	}
}

func missingNote(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return " (not created yet)"
	}
	return ""
}

func historyNote(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
