package decimation

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/uyouii/plot-decimation/model"
)

// series returns points with X equal to their index.
func series(ys ...float64) []model.Point {
	res := make([]model.Point, len(ys))
	for i, y := range ys {
		res[i] = model.Pt(float64(i), y)
	}
	return res
}

// flatWithSpike returns n points at Y=0 except a spike of height 100 at index spike.
func flatWithSpike(n, spike int) []model.Point {
	ys := make([]float64, n)
	ys[spike] = 100
	return series(ys...)
}

func pick(points []model.Point, indexes ...int) []model.Point {
	res := make([]model.Point, len(indexes))
	for i, idx := range indexes {
		res[i] = points[idx]
	}
	return res
}

func diff(t *testing.T, want, got []model.Point) {
	t.Helper()
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("points mismatch (-want +got):\n%s", d)
	}
}

func contains(points []model.Point, p model.Point) bool {
	for _, q := range points {
		if q == p {
			return true
		}
	}
	return false
}

func nan() float64 { return math.NaN() }

func inf() float64 { return math.Inf(1) }
