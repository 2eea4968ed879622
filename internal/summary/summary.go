// Package summary describes a sequence of numbers with a handful of statistics,
// computed with the algokit sequence algorithms.
package summary

import (
	"context"
	"maps"
	"math"
	"slices"
	"strconv"

	"go.llib.dev/algokit/pkg/compare"
	"go.llib.dev/algokit/pkg/errorkit"
	"go.llib.dev/algokit/pkg/logger"
	"go.llib.dev/algokit/pkg/mathkit"
	"go.llib.dev/algokit/pkg/slicekit"
	"go.llib.dev/algokit/pkg/sortkit"
	"gonum.org/v1/gonum/stat"
)

const (
	ErrEmpty errorkit.Error = "no values to summarise"
	// ErrNotFinite is returned when a value or a statistic is NaN or infinite.
	// It happens with non-finite input, or when the values overflow float64 while they are summed.
	ErrNotFinite errorkit.Error = "statistic is not a finite number"
)

type Summary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Sum    float64 `json:"sum"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	// Median is the upper median for an even Count.
	Median float64 `json:"median"`
	// MinGap is the smallest distance between two values next to each other in sorted order.
	// It is nil when there are fewer than two values.
	MinGap *float64 `json:"min_gap,omitempty"`
}

// Of computes the Summary of values.
// The passed slice is left untouched.
func Of(ctx context.Context, values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrEmpty
	}
	if i, ok := slicekit.FindIndex(values, notFinite); ok {
		return Summary{}, ErrNotFinite.F("values[%d]=%v", i, values[i])
	}
	var s Summary
	s.Count = len(values)
	s.Min, _ = sortkit.Min(values)
	s.Max, _ = sortkit.Max(values)
	s.Sum, _ = slicekit.Reduce(values, 0.0, mathkit.Sum[float64])
	s.Mean, s.StdDev = stat.PopMeanStdDev(values, nil)
	s.Median, _ = sortkit.Median(slices.Clone(values), compare.Less[float64])
	if gap, ok := minGap(values); ok {
		s.MinGap = &gap
	}
	if err := s.validate(); err != nil {
		return Summary{}, err
	}
	logger.Debug(ctx, "summary computed",
		logger.Field("count", s.Count),
		logger.Field("has_gap", s.MinGap != nil))
	return s, nil
}

func (s Summary) validate() error {
	stats := map[string]float64{
		"min":    s.Min,
		"max":    s.Max,
		"sum":    s.Sum,
		"mean":   s.Mean,
		"stddev": s.StdDev,
		"median": s.Median,
	}
	if s.MinGap != nil {
		stats["min_gap"] = *s.MinGap
	}
	for _, name := range slices.Sorted(maps.Keys(stats)) {
		if notFinite(stats[name]) {
			return ErrNotFinite.F("%s=%v", name, stats[name])
		}
	}
	return nil
}

func notFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

func minGap(values []float64) (float64, bool) {
	if len(values) < 2 {
		return 0, false
	}
	sorted := slices.Clone(values)
	sortkit.Sort(sorted, compare.Less[float64])
	diffs := slicekit.AdjacentDifference(sorted)[1:]
	slicekit.Transform(diffs, mathkit.Abs[float64])
	return sortkit.Min(diffs)
}

// Round returns a copy of s with every statistic rounded to the given number of decimals.
// A negative precision leaves the values as they are.
func (s Summary) Round(precision int) Summary {
	if precision < 0 {
		return s
	}
	round := func(v float64) float64 {
		if notFinite(v) {
			return v
		}
		r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', precision, 64), 64)
		if err != nil {
			return v
		}
		return r
	}
	out := s
	out.Min = round(s.Min)
	out.Max = round(s.Max)
	out.Sum = round(s.Sum)
	out.Mean = round(s.Mean)
	out.StdDev = round(s.StdDev)
	out.Median = round(s.Median)
	if s.MinGap != nil {
		gap := round(*s.MinGap)
		out.MinGap = &gap
	}
	return out
}
