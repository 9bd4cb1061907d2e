package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aibox/boxctl/internal/api"
	"github.com/aibox/boxctl/internal/config"
	"github.com/aibox/boxctl/internal/logging"
)

var (
	cfgFile  string
	logLevel string

	// loaded at init time
	paths config.Paths
	log   *logging.Logger
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boxctl",
		Short: "boxctl — management console for the ai-box agent backend",
		Long:  "boxctl configures, inspects, and manually invokes AI agents held by an ai-box backend.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			paths, err = config.ResolvePaths()
			if err != nil {
				return err
			}
			if cfgFile != "" {
				paths.Config = cfgFile
			}

			cfg := loadConfig()
			level := logLevel
			if level == "" {
				level = cfg.Logging.Level
			}
			log = logging.New(nil, level, cfg.Logging.Style)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.boxctl/config.yaml)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error, fatal, silent)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newAgentCmd())
	cmd.AddCommand(newTemplatesCmd())
	cmd.AddCommand(newToolsCmd())
	cmd.AddCommand(newModelsCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// loadConfig loads the config file, falling back to defaults when it is
// missing or broken.
func loadConfig() config.Config {
	cfg, err := config.Load(paths.Config)
	if err != nil {
		if log != nil {
			log.Warn().Err(err).Str("path", paths.Config).Msg("failed to load config, using defaults")
		}
		return config.Defaults()
	}
	if log != nil {
		for _, issue := range config.Validate(&cfg) {
			log.Warn().Str("key", issue.Path).Msg(issue.Message)
		}
	}
	return cfg
}

// newClient builds an API client for the configured backend.
func newClient(cfg config.Config) *api.Client {
	return api.New(cfg.Backend, log)
}
