// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

/*
Package services adapts TrendLens components to suture.Service.

Each wrapper implements:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and fmt.Stringer so supervisor events name the service.

HTTPServerService runs an *http.Server. ListenAndServe runs in a goroutine
and context cancellation triggers Shutdown with a bounded timeout:

	server := &http.Server{Addr: ":8080", Handler: router.Setup()}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

StoreProbeService pings the DuckDB store on an interval and exports the
result as the trendlens_store_up gauge:

	tree.AddDataService(services.NewStoreProbeService(db, 30*time.Second))
*/
package services
