// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

/*
Package supervisor runs the server's long-lived services under suture v4.

The tree has two layers that fail and restart independently:

	RootSupervisor ("trendlens")
	├── DataSupervisor ("data-layer")
	│   └── StoreProbeService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Supervisor events (service failures, restarts, backoff) are logged through a
*slog.Logger with sutureslog. The server passes logging.NewSlogLogger() so
those events reach the zerolog output like everything else.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewStoreProbeService(db, 30*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

Zero TreeConfig fields fall back to DefaultTreeConfig, which mirrors suture's
own defaults.
*/
package supervisor
