package decimation

import (
	"math"

	"github.com/uyouii/plot-decimation/model"
)

// roundIndex rounds a fractional position half to even and clamps it to
// [0, n-1].
func roundIndex(pos float64, n int) int {
	r := math.RoundToEven(pos)
	switch {
	case math.IsNaN(r), r >= float64(n-1):
		return n - 1
	case r < 0:
		return 0
	}
	return int(r)
}

// roundCoord is the rounding rule for grouping coordinates.
func roundCoord(v float64) float64 {
	return math.RoundToEven(v)
}

// indexTracker remembers the last accepted index and rejects repeats.
type indexTracker struct {
	prev int
}

func newIndexTracker(first int) indexTracker {
	return indexTracker{prev: first}
}

func (t *indexTracker) last() int {
	return t.prev
}

// accept reports whether i differs from the last accepted index, and
// records i if so.
func (t *indexTracker) accept(i int) bool {
	if i == t.prev {
		return false
	}
	t.prev = i
	return true
}

// appendLast appends p unless dst already ends with an identical point.
func appendLast(dst []model.Point, p model.Point) []model.Point {
	if len(dst) > 0 && dst[len(dst)-1] == p {
		return dst
	}
	return append(dst, p)
}
