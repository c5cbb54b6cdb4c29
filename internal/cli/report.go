// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/trendlens/internal/database"
	"github.com/tomtom215/trendlens/internal/loader"
	"github.com/tomtom215/trendlens/internal/logging"
	"github.com/tomtom215/trendlens/internal/models"
)

const reportTimeout = 2 * time.Minute

type reportOptions struct {
	topCategories int
	jsonOutput    bool
}

// storeReport is what report prints: the diagnostics plus file facts.
type storeReport struct {
	models.LoadReport

	Path     string    `json:"path"`
	Size     int64     `json:"size_bytes"`
	Modified time.Time `json:"modified"`
}

func newReportCmd(root *rootOptions) *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print diagnostics for an existing store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), reportTimeout)
			defer cancel()

			r, err := buildStoreReport(ctx, database.ConfigFrom(cfg), opts.topCategories)
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), r)
			}
			return printStoreReport(cmd.OutOrStdout(), r)
		},
	}

	cmd.Flags().IntVar(&opts.topCategories, "top-categories", loader.DefaultTopCategories, "categories listed in the report")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "print the report as JSON")
	return cmd
}

func buildStoreReport(ctx context.Context, cfg database.Config, topCategories int) (*storeReport, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Warn().Err(err).Msg("Error closing store")
		}
	}()

	lr, err := db.ValidationReport(ctx, topCategories)
	if err != nil {
		return nil, err
	}

	r := &storeReport{LoadReport: *lr, Path: cfg.Path}
	if info, err := os.Stat(cfg.Path); err == nil {
		r.Size = info.Size()
		r.Modified = info.ModTime()
	}
	return r, nil
}
