// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/trendlens/internal/analytics"
	"github.com/tomtom215/trendlens/internal/models"
	"github.com/tomtom215/trendlens/internal/validation"
)

// Request structs carry the validated query parameters of each endpoint
// family. Numeric fields are pre-set to the endpoint default and only
// overwritten when the parameter is present, so an explicit top_n=0 is
// rejected rather than defaulted.

// filterRequest holds the country and category filters.
type filterRequest struct {
	Countries  []string `query:"countries" validate:"max=50,dive,min=1,max=100,printable"`
	Categories []string `query:"categories" validate:"max=50,dive,min=1,max=100,printable"`
}

func (q *filterRequest) bind(p *queryParser) {
	q.Countries = p.list("countries")
	q.Categories = p.list("categories")
}

func (q *filterRequest) filter() analytics.Filter {
	return analytics.Filter{Countries: q.Countries, Categories: q.Categories}
}

// topNRequest adds a top_n bound.
type topNRequest struct {
	filterRequest
	TopN int `query:"top_n" validate:"min=1,max=100"`
}

func (q *topNRequest) bind(p *queryParser) {
	q.filterRequest.bind(p)
	p.integer("top_n", &q.TopN)
}

// sampleRequest adds a sample_size bound.
type sampleRequest struct {
	filterRequest
	SampleSize int `query:"sample_size" validate:"min=1,max=100000"`
}

func (q *sampleRequest) bind(p *queryParser) {
	q.filterRequest.bind(p)
	p.integer("sample_size", &q.SampleSize)
}

// limitRequest bounds a raw table read.
type limitRequest struct {
	Limit int `query:"limit" validate:"min=1,max=10000"`
}

func (q *limitRequest) bind(p *queryParser) {
	p.integer("limit", &q.Limit)
}

// countryRequest selects one country ("All" or empty for every country).
type countryRequest struct {
	Country string `query:"country" validate:"omitempty,max=100,printable"`
}

func (q *countryRequest) bind(p *queryParser) {
	q.Country = p.str("country")
}

// videosRequest bounds a videos table read for one country.
type videosRequest struct {
	countryRequest
	Limit int `query:"limit" validate:"min=1,max=10000"`
}

func (q *videosRequest) bind(p *queryParser) {
	q.countryRequest.bind(p)
	p.integer("limit", &q.Limit)
}

// binder fills a request struct from the query string.
type binder interface {
	bind(p *queryParser)
}

// queryParser reads query parameters and collects type errors.
type queryParser struct {
	values url.Values
	errs   []validationFailure
}

type validationFailure struct {
	field   string
	message string
}

// list reads a filter list. A single occurrence is split on commas; when
// key is repeated each occurrence is one literal value, so a name that
// contains a comma can still be selected. Blank entries are dropped, so
// ?countries= means no filter.
func (p *queryParser) list(key string) []string {
	raw := p.values[key]
	if len(raw) == 1 {
		raw = strings.Split(raw[0], ",")
	}
	var out []string
	for _, v := range raw {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (p *queryParser) str(key string) string {
	return strings.TrimSpace(p.values.Get(key))
}

// integer sets *dst when key is present. A non-integer value is recorded as a
// failure and leaves *dst unchanged.
func (p *queryParser) integer(key string, dst *int) {
	raw := strings.TrimSpace(p.values.Get(key))
	if raw == "" {
		return
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.errs = append(p.errs, validationFailure{field: key, message: fmt.Sprintf("%s must be an integer", key)})
		return
	}
	*dst = n
}

func (p *queryParser) apiError() *models.APIError {
	if len(p.errs) == 0 {
		return nil
	}
	messages := make([]string, len(p.errs))
	fields := make([]string, len(p.errs))
	for i, e := range p.errs {
		messages[i] = e.message
		fields[i] = e.field
	}
	return &models.APIError{
		Code:    ErrCodeValidation,
		Message: strings.Join(messages, "; "),
		Details: map[string]interface{}{"fields": fields},
	}
}

// decode binds and validates req, writing a 400 response on failure.
func decode(w http.ResponseWriter, r *http.Request, req binder) bool {
	p := &queryParser{values: r.URL.Query()}
	req.bind(p)

	apiErr := p.apiError()
	if apiErr == nil {
		apiErr = validateRequest(req)
	}
	if apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return false
	}
	return true
}

// validateRequest validates a struct using go-playground/validator.
func validateRequest(v interface{}) *models.APIError {
	if verr := validation.ValidateStruct(v); verr != nil {
		return verr.ToAPIError()
	}
	return nil
}
