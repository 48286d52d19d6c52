package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"eatgo/internal/app"
	"eatgo/internal/config"
	"eatgo/internal/logging"
)

var (
	home       string
	apiURL     string
	loginURL   string
	passphrase string
	logLevel   string
	verbose    bool

	appCtx   *app.Wire
	logger   *zap.Logger
	settings *config.Config
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "eatgo",
		Short:        "Browse restaurants and write reviews",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".eatgo")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			if err := config.LoadDotEnv(filepath.Join(home, config.EnvFileName)); err != nil {
				return err
			}
			cfg, err := config.Load(filepath.Join(home, config.FileName))
			if err != nil {
				return err
			}
			applyFlags(cmd, cfg)
			settings = cfg

			logger, err = newLogger(cmd, cfg)
			if err != nil {
				return err
			}

			appCtx, err = app.NewWire(app.Config{Home: home, Settings: cfg, Log: logger})
			if err != nil {
				return err
			}
			if err := appCtx.Restore(cmd.Context()); err != nil {
				logger.Warn("could not restore session", zap.Error(err))
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.eatgo)")
	root.PersistentFlags().StringVar(&apiURL, "api", "", "API base URL (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().StringVar(&loginURL, "login-api", "", "login API base URL (default: --api)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to protect the stored token")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		regionsCmd(), categoriesCmd(), restaurantsCmd(),
		restaurantCmd(), reviewCmd(),
		loginCmd(), logoutCmd(),
		tuiCmd(), configCmd(),
	)
	return root
}

// applyFlags lets explicitly set flags win over file and environment.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("api") {
		cfg.API.BaseURL = apiURL
	}
	if flags.Changed("login-api") {
		cfg.API.LoginURL = loginURL
	}
	if flags.Changed("passphrase") {
		cfg.Storage.Passphrase = passphrase
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
}

// newLogger logs to stderr, except for the interactive view which owns the
// terminal and logs to a file instead.
func newLogger(cmd *cobra.Command, cfg *config.Config) (*zap.Logger, error) {
	opts := logging.Options{Level: cfg.Logging.Level, JSON: cfg.Logging.JSON}
	if cmd.Name() == "tui" {
		path := cfg.Logging.File
		if path == "" {
			path = filepath.Join(home, "eatgo.log")
		}
		opts.Paths = []string{path}
	}
	l, err := logging.New(opts)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}
