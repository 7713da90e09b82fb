package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/billmgr/internal/bills"
	"github.com/cleared-dev/billmgr/internal/buildinfo"
	"github.com/cleared-dev/billmgr/internal/config"
	"github.com/cleared-dev/billmgr/internal/logging"
	"github.com/cleared-dev/billmgr/internal/menu"
	"github.com/cleared-dev/billmgr/internal/prompt"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
// Running it without a subcommand starts the interactive bill manager.
func NewRootCommand() *cobra.Command {
	var configPath string
	var logLevel string

	rootCmd := &cobra.Command{
		Use:     "billmgr",
		Short:   "Interactive bill tracker",
		Long:    "Add, view, edit and remove bills from a terminal menu. Bills live only as long as the process.",
		Version: buildinfo.String(),
		Args:    cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			return runBills(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a billmgr.yaml file (optional)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func runBills(in io.Reader, out, errOut io.Writer, cfg *config.Config) error {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log := logging.New(errOut, level)

	p := prompt.New(in, out,
		prompt.WithLogger(log),
		prompt.WithMaxReadRetries(cfg.Prompt.MaxReadRetries),
	)
	session := menu.NewSession(bills.NewStore(), p, menu.Options{
		ExitOnUnknown: cfg.Menu.ExitOnUnknown,
		Logger:        log,
	})
	return session.Run()
}
