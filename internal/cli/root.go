// Package cli implements the agixt command tree.
package cli

import (
	"time"

	"github.com/AGiXT/go-sdk/agixt"
	"github.com/AGiXT/go-sdk/internal/config"
	"github.com/AGiXT/go-sdk/internal/logging"
	"github.com/AGiXT/go-sdk/internal/store"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	logLevel   string
	serverFlag string
	agentFlag  string

	// loaded at init time
	paths config.Paths
	cfg   config.Config
	log   *logging.Logger
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agixt",
		Short: "agixt — command line client for an AGiXT server",
		Long:  "agixt talks to an AGiXT agent-orchestration server: manage agents, run prompts and chains, ingest memories, and generate media.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			paths, err = config.ResolvePaths()
			if err != nil {
				return err
			}
			if cfgFile != "" {
				paths.Config = cfgFile
			}

			cfg, err = config.Load(paths.Config)
			if err != nil {
				return err
			}
			if serverFlag != "" {
				cfg.Server.URL = serverFlag
			}
			if agentFlag != "" {
				cfg.Agent = agentFlag
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}

			level := logLevel
			if level == "" {
				level = cfg.Logging.Level
			}
			log = logging.New(nil, level)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.agixt/config.yaml)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error, silent)")
	cmd.PersistentFlags().StringVar(&serverFlag, "server", "", "server URL (overrides config)")
	cmd.PersistentFlags().StringVarP(&agentFlag, "agent", "a", "", "agent name (overrides config)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newLoginCmd())
	cmd.AddCommand(newRegisterCmd())
	cmd.AddCommand(newAgentCmd())
	cmd.AddCommand(newChatCmd())
	cmd.AddCommand(newInstructCmd())
	cmd.AddCommand(newConversationCmd())
	cmd.AddCommand(newChainCmd())
	cmd.AddCommand(newPromptCmd())
	cmd.AddCommand(newLearnCmd())
	cmd.AddCommand(newProviderCmd())
	cmd.AddCommand(newExtensionCmd())

	return cmd
}

// newClient builds an SDK client from the loaded config.
func newClient() (*agixt.Client, error) {
	opts := []agixt.ClientOpt{
		agixt.WithTimeout(time.Duration(cfg.Server.TimeoutSeconds) * time.Second),
		agixt.WithLogger(log.Sub("sdk").Zerolog()),
	}
	if cfg.Server.APIKey != "" {
		opts = append(opts, agixt.WithAPIKey(cfg.Server.APIKey))
	}
	if cfg.Server.Retries > 0 {
		opts = append(opts, agixt.WithRetries(cfg.Server.Retries))
	}
	return agixt.New(cfg.Server.URL, opts...)
}

// openCache opens the transcript cache, or returns nil when disabled.
func openCache() *store.DB {
	if !cfg.Cache.Enabled {
		return nil
	}
	if err := paths.EnsureDirs(); err != nil {
		log.Warn().Err(err).Msg("cannot create data directory, transcript cache disabled")
		return nil
	}
	db, err := store.Open(paths.TranscriptDB(cfg), log)
	if err != nil {
		log.Warn().Err(err).Msg("cannot open transcript cache")
		return nil
	}
	return db
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
