package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/watchstore-service/internal/platform/config"
	"github.com/jsamuelsen11/watchstore-service/internal/platform/logging"
)

const profileEnv = "APP_PROFILE"

var errNoProfile = errors.New("a profile is required: pass --profile or set " + profileEnv + " (e.g. local, dev, prod)")

// globalOptions are the flags shared by every subcommand.
type globalOptions struct {
	profile   string
	configDir string
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "watchstore",
		Short:         "Watch store backend",
		Long:          "REST backend for the watch store: accounts, addresses and the watch catalog.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, _ []string) error {
			return c.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.profile, "profile", os.Getenv(profileEnv), "configuration profile ("+profileEnv+")")
	cmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", "configs", "directory holding base.yaml and <profile>.yaml")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newMigrateCommand(opts))

	return cmd
}

// load reads the configuration for the selected profile and builds the
// process logger.
func (o *globalOptions) load() (*config.Config, *slog.Logger, error) {
	if o.profile == "" {
		return nil, nil, errNoProfile
	}
	cfg, err := config.Load(o.profile, config.WithConfigDir(o.configDir))
	if err != nil {
		return nil, nil, err
	}
	return cfg, logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr), nil
}
