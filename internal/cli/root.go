// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package cli

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tomtom215/trendlens/internal/config"
	"github.com/tomtom215/trendlens/internal/logging"
)

type rootOptions struct {
	configPath string
	logLevel   string
	dbPath     string
}

// NewRootCmd builds the trendctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "trendctl",
		Short: "Build and inspect the TrendLens trending store",
		Long: `trendctl rebuilds the DuckDB trending store from the cleaned CSV exports
and prints the post-load diagnostics.

Settings come from built-in defaults, an optional YAML file (--config or
CONFIG_PATH), a .env file in the working directory and the environment,
with later sources winning. Flags override all of them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "store path (overrides DUCKDB_PATH)")

	root.AddCommand(newLoadCmd(opts), newReportCmd(opts), newVersionCmd())
	return root
}

// Execute runs trendctl with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig resolves the configuration and initializes logging on stderr.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	// .env is optional
	_ = godotenv.Load()

	if o.configPath != "" {
		if err := os.Setenv(config.ConfigPathEnvVar, o.configPath); err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if o.dbPath != "" {
		cfg.Database.Path = o.dbPath
	}

	level := cfg.Logging.Level
	if o.logLevel != "" {
		level = o.logLevel
	}
	logging.Init(logging.Config{
		Level:     level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})
	return cfg, nil
}
