package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aibox/boxctl/internal/catalog"
)

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the agent templates offered by the creation wizard",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range catalog.Templates {
				fmt.Printf("%s %-12s %s\n", t.Emoji, t.ID, t.Description)
				if len(t.DefaultTools) > 0 {
					fmt.Printf("   %-12s tools: %s\n", "", strings.Join(t.DefaultTools, ", "))
				}
			}
			return nil
		},
	}
}

func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the tool catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range catalog.Tools {
				fmt.Printf("%s %-14s %s\n", t.Emoji, t.ID, t.Description)
			}
			return nil
		},
	}
}

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the selectable models",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, m := range catalog.Models {
				def := ""
				if m.ID == catalog.DefaultModel {
					def = " (default)"
				}
				fmt.Printf("%-14s %s%s\n", m.ID, m.Label, def)
			}
			return nil
		},
	}
}
