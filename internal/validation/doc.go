// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

// Package validation provides struct validation using go-playground/validator v10.
//
// A thread-safe singleton validator validates the API's parameter structs and
// translates failures into VALIDATION_ERROR responses. Error field names come
// from the "query" struct tag, so messages name the request parameter.
//
// # Quick Start
//
//	type analyticsParams struct {
//	    Countries []string `query:"countries" validate:"max=50,dive,min=1,max=100,printable"`
//	    TopN      int      `query:"top_n" validate:"min=1,max=100"`
//	}
//
//	if verr := validation.ValidateStruct(&p); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// # Custom Tags
//
//   - printable: the string contains no control characters
//
// # Error Message Translation
//
//	min=1 (int)      -> "top_n must be at least 1"
//	max=100 (string) -> "country must be at most 100 characters"
//	max=50 (slice)   -> "countries must be at most 50 values"
//	printable        -> "country must not contain control characters"
//
// Multiple failures are joined with "; " and listed under details.fields.
package validation
