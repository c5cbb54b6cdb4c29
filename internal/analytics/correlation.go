// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package analytics

import (
	"context"
	"math"

	"github.com/tomtom215/trendlens/internal/models"
)

// CorrelationMatrix computes Pearson coefficients between every pair of
// models.CorrelationColumns. Each pair uses only the rows where both values
// are present. A coefficient is nil when fewer than two such rows exist or
// either side has zero variance.
func CorrelationMatrix(inputs []models.CorrelationInput) models.CorrelationMatrix {
	k := len(models.CorrelationColumns)

	vals := make([][8]float64, len(inputs))
	ok := make([][8]bool, len(inputs))
	for i, in := range inputs {
		vals[i], ok[i] = in.Values()
	}

	matrix := make([][]*float64, k)
	for i := range matrix {
		matrix[i] = make([]*float64, k)
	}
	for a := 0; a < k; a++ {
		for b := a; b < k; b++ {
			r := pearson(vals, ok, a, b)
			matrix[a][b] = r
			matrix[b][a] = r
		}
	}

	return models.CorrelationMatrix{
		Columns: append([]string(nil), models.CorrelationColumns...),
		Values:  matrix,
		Rows:    len(inputs),
	}
}

// pearson uses the two-pass formula over pairwise-complete observations.
func pearson(vals [][8]float64, ok [][8]bool, a, b int) *float64 {
	var n int
	var sumA, sumB float64
	for i := range vals {
		if ok[i][a] && ok[i][b] {
			n++
			sumA += vals[i][a]
			sumB += vals[i][b]
		}
	}
	if n < 2 {
		return nil
	}
	meanA, meanB := sumA/float64(n), sumB/float64(n)

	var cov, varA, varB float64
	for i := range vals {
		if ok[i][a] && ok[i][b] {
			da, db := vals[i][a]-meanA, vals[i][b]-meanB
			cov += da * db
			varA += da * da
			varB += db * db
		}
	}
	if varA == 0 || varB == 0 {
		return nil
	}

	r := cov / math.Sqrt(varA*varB)
	// rounding can push |r| a hair past 1
	r = math.Max(-1, math.Min(1, r))
	return &r
}

// Correlation computes the matrix over the memoized correlation inputs.
// Cached reflects the inputs.
func (s *Service) Correlation(ctx context.Context, f Filter) (Result[models.CorrelationMatrix], error) {
	in, err := s.CorrelationInputs(ctx, f)
	if err != nil {
		return Result[models.CorrelationMatrix]{}, err
	}
	return Result[models.CorrelationMatrix]{
		Data:    CorrelationMatrix(in.Data),
		Cached:  in.Cached,
		Elapsed: in.Elapsed,
	}, nil
}
