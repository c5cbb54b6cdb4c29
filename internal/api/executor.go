// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/trendlens/internal/analytics"
)

// serve runs the common handler flow: bind and validate req (nil for
// endpoints without parameters), run the catalog call and write the
// envelope. Cache hits are reported through metadata.cached.
//
//	req := topNRequest{TopN: analytics.DefaultTopChannels}
//	serve(w, r, "top_channels", &req, func(ctx context.Context) (analytics.Result[[]models.ChannelViews], error) {
//	    return h.svc.TopChannels(ctx, req.filter(), req.TopN)
//	})
func serve[T any](w http.ResponseWriter, r *http.Request, query string, req binder, run func(context.Context) (analytics.Result[T], error)) {
	res, ok := execute(w, r, query, req, run)
	if ok {
		respondResult(w, r, res)
	}
}

// serveRows is serve for row sets; metadata.count carries the row count.
func serveRows[T any](w http.ResponseWriter, r *http.Request, query string, req binder, run func(context.Context) (analytics.Result[[]T], error)) {
	res, ok := execute(w, r, query, req, run)
	if !ok {
		return
	}
	if res.Data == nil {
		res.Data = []T{}
	}
	meta := metadataFor(res.Cached, res.Elapsed)
	count := len(res.Data)
	meta.Count = &count
	respondData(w, r, res.Data, meta)
}

func execute[T any](w http.ResponseWriter, r *http.Request, query string, req binder, run func(context.Context) (analytics.Result[T], error)) (analytics.Result[T], bool) {
	if req != nil && !decode(w, r, req) {
		return analytics.Result[T]{}, false
	}
	res, err := run(r.Context())
	if err != nil {
		respondQueryError(w, r, query, err)
		return res, false
	}
	return res, true
}
