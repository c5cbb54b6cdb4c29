// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tomtom215/trendlens/internal/loader"
)

type loadOptions struct {
	dataDir       string
	chunkSize     int
	topCategories int
	jsonOutput    bool
}

func newLoadCmd(root *rootOptions) *cobra.Command {
	opts := &loadOptions{}

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Rebuild the trending store from the CSV sources",
		Long: `load reads categories, channel statistics and the cleaned videos export,
builds a fresh store next to the target and swaps it into place when every
table has been written. A failed load leaves the previous store untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("data-dir") {
				cfg.Loader.DataDir = opts.dataDir
			}
			if cmd.Flags().Changed("chunk-size") {
				cfg.Loader.ChunkSize = opts.chunkSize
			}
			if cmd.Flags().Changed("top-categories") {
				cfg.Loader.TopCategories = opts.topCategories
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			report, err := loader.New(loader.ConfigFrom(cfg)).Run(ctx)
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			return printLoadReport(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().StringVar(&opts.dataDir, "data-dir", "", "directory holding the CSV sources (overrides DATA_DIR)")
	cmd.Flags().IntVar(&opts.chunkSize, "chunk-size", loader.DefaultChunkSize, "video rows per insert transaction")
	cmd.Flags().IntVar(&opts.topCategories, "top-categories", loader.DefaultTopCategories, "categories listed in the report")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "print the report as JSON")
	return cmd
}
