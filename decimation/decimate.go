// Package decimation reduces dense screen-space point sequences to bounded,
// visually equivalent ones. Every function is pure: it reads the input and
// appends to a caller-owned dst slice, returning the result the way append
// does.
package decimation

import (
	"github.com/uyouii/plot-decimation/model"
	"github.com/uyouii/plot-decimation/spacing"
)

// Options tunes the index distribution of count-bounded decimation.
type Options struct {
	// Logarithmic samples densely near the start of the series and sparsely
	// toward its end, matching a logarithmic X axis.
	Logarithmic bool
	// Endpoint spreads count positions over the series including its end
	// (step len/(count-1)) instead of excluding it (step len/count).
	Endpoint bool
}

// Decimate reduces points to roughly count points using strategy and
// appends them to dst. The first and last input points are always kept.
//
// Edge cases: empty points leave dst untouched; count <= 0 returns dst
// cleared; len(points) <= count copies the input; count == 1 with Endpoint
// returns dst cleared and holding only points[0]; otherwise StrategyNone
// copies the input.
func Decimate(dst, points []model.Point, count int, strategy Strategy, opts Options) []model.Point {
	return DecimateWith(dst, points, count, strategy.Selector(), opts)
}

// DecimateWith is Decimate with a caller-supplied selection policy.
// A nil sel copies the input once the count edge cases are handled.
func DecimateWith(dst, points []model.Point, count int, sel Selector, opts Options) []model.Point {
	n := len(points)
	switch {
	case n == 0:
		return dst
	case count <= 0:
		return dst[:0]
	case n <= count:
		return append(dst, points...)
	case count == 1 && opts.Endpoint:
		return append(dst[:0], points[0])
	case sel == nil:
		return append(dst, points...)
	}

	if opts.Logarithmic {
		return walk(dst, points, logStops(n, count, opts.Endpoint), sel)
	}
	return walk(dst, points, linearStops(n, count, opts.Endpoint), sel)
}

// linearStops returns the positions 0, step, 2*step, ... below n-1.
func linearStops(n, count int, endpoint bool) []float64 {
	stops := spacing.LinSpace(0, float64(n), count, endpoint)
	for i, s := range stops {
		if s >= float64(n-1) {
			return stops[:i]
		}
	}
	return stops
}

// logStops spaces log10 of the positions linearly over [0, log10(n-1)].
func logStops(n, count int, endpoint bool) []float64 {
	return spacing.GeomSpace(1, float64(n-1), count, endpoint, 10)
}

func walk(dst, points []model.Point, stops []float64, sel Selector) []model.Point {
	n := len(points)
	dst = append(dst, points[0])

	tracker := newIndexTracker(0)
	for _, stop := range stops {
		outside := roundIndex(stop, n)
		prev := tracker.last()
		if !tracker.accept(outside) {
			continue
		}
		if i := sel.Select(points, prev, outside); i >= 0 && i < n {
			dst = append(dst, points[i])
		}
	}
	return appendLast(dst, points[n-1])
}
