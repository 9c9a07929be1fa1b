package decimation

import (
	"math"
	"math/rand"
	"os"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/uyouii/plot-decimation/model"
)

const (
	testRandomSeed         int64 = 7823434
	testMinSuccessfulTests       = 500
)

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(testRandomSeed) // generate reproducible results
	parameters.MinSuccessfulTests = testMinSuccessfulTests
	return gopter.NewProperties(parameters)
}

func runProperties(t *testing.T, props *gopter.Properties) {
	reporter := gopter.NewFormatedReporter(true, 160, os.Stdout)
	if !props.Run(reporter) {
		t.Errorf("failed with initial seed: %d", testRandomSeed)
	}
}

// randomSeries returns n points with X equal to their index and random Y.
func randomSeries(n int, seed int64) []model.Point {
	rng := rand.New(rand.NewSource(seed))
	res := make([]model.Point, n)
	for i := range res {
		res[i] = model.Pt(float64(i), rng.Float64()*200-100)
	}
	return res
}

func TestDecimateProperties(t *testing.T) {
	props := newProperties()

	props.Property("first and last points are kept", prop.ForAll(
		func(n, count, strategy int, logarithmic, endpoint bool, seed int64) bool {
			points := randomSeries(n, seed)
			count = 2 + count%(n-2)
			got := Decimate(nil, points, count, Strategy(strategy), Options{
				Logarithmic: logarithmic,
				Endpoint:    endpoint,
			})
			return len(got) >= 2 && got[0] == points[0] && got[len(got)-1] == points[n-1]
		},
		gen.IntRange(3, 300), gen.IntRange(0, 1000), gen.IntRange(0, 2),
		gen.Bool(), gen.Bool(), gen.Int64(),
	))

	props.Property("output is an ordered selection of input points", prop.ForAll(
		func(n, count, strategy int, logarithmic, endpoint bool, seed int64) bool {
			points := randomSeries(n, seed)
			count = 1 + count%(n-1)
			got := Decimate(nil, points, count, Strategy(strategy), Options{
				Logarithmic: logarithmic,
				Endpoint:    endpoint,
			})
			if len(got) > n {
				return false
			}
			for i, p := range got {
				idx := int(p.X)
				if points[idx] != p {
					return false
				}
				if i > 0 && got[i-1].X >= p.X {
					return false
				}
			}
			return true
		},
		gen.IntRange(2, 300), gen.IntRange(0, 1000), gen.IntRange(0, 2),
		gen.Bool(), gen.Bool(), gen.Int64(),
	))

	props.Property("count covering the input is the identity", prop.ForAll(
		func(n, extra, strategy int, logarithmic, endpoint bool, seed int64) bool {
			points := randomSeries(n, seed)
			got := Decimate(nil, points, n+extra, Strategy(strategy), Options{
				Logarithmic: logarithmic,
				Endpoint:    endpoint,
			})
			return equalPoints(points, got)
		},
		gen.IntRange(1, 200), gen.IntRange(0, 50), gen.IntRange(0, 2),
		gen.Bool(), gen.Bool(), gen.Int64(),
	))

	props.Property("count of one with endpoint keeps only the first point", prop.ForAll(
		func(n, strategy int, logarithmic bool, seed int64) bool {
			points := randomSeries(n, seed)
			got := Decimate(nil, points, 1, Strategy(strategy), Options{
				Logarithmic: logarithmic,
				Endpoint:    true,
			})
			return len(got) == 1 && got[0] == points[0]
		},
		gen.IntRange(1, 200), gen.IntRange(0, 2), gen.Bool(), gen.Int64(),
	))

	runProperties(t, props)
}

func TestSpikeAlwaysSurvives(t *testing.T) {
	props := newProperties()

	// the logarithmic distribution with endpoint samples up to the last
	// index, so every interior index falls into a scanned interval
	props.Property("a lone spike is kept by spike detection", prop.ForAll(
		func(n, spike, count int) bool {
			spike = spike % n
			count = 2 + count%(n-2)
			points := flatWithSpike(n, spike)
			got := Decimate(nil, points, count, StrategyMinMaxSpikeDetection, Options{
				Logarithmic: true,
				Endpoint:    true,
			})
			return contains(got, points[spike])
		},
		gen.IntRange(3, 300), gen.IntRange(0, 1000), gen.IntRange(0, 1000),
	))

	runProperties(t, props)
}

func TestStrideProperties(t *testing.T) {
	props := newProperties()

	props.Property("step zero is the identity", prop.ForAll(
		func(n int, seed int64) bool {
			points := randomSeries(n, seed)
			return equalPoints(points, Stride(nil, points, 0))
		},
		gen.IntRange(1, 300), gen.Int64(),
	))

	props.Property("first and last points are kept", prop.ForAll(
		func(n, step int, seed int64) bool {
			points := randomSeries(n, seed)
			got := Stride(nil, points, step)
			return got[0] == points[0] && got[len(got)-1] == points[n-1]
		},
		gen.IntRange(1, 300), gen.IntRange(0, 400), gen.Int64(),
	))

	runProperties(t, props)
}

func TestGroupByIntegerXProperties(t *testing.T) {
	props := newProperties()

	props.Property("each column yields 1 to 4 points starting at its first Y", prop.ForAll(
		func(n, perColumn int, seed int64) bool {
			rng := rand.New(rand.NewSource(seed))
			points := make([]model.Point, n)
			for i := range points {
				points[i] = model.Pt(float64(i)/float64(perColumn), float64(rng.Intn(101)-50))
			}

			type bucket struct{ x, first, min, max float64 }
			var buckets []bucket
			for _, p := range points {
				x, y := math.RoundToEven(p.X), math.RoundToEven(p.Y)
				if len(buckets) == 0 || buckets[len(buckets)-1].x != x {
					buckets = append(buckets, bucket{x: x, first: y, min: y, max: y})
					continue
				}
				b := &buckets[len(buckets)-1]
				b.min, b.max = math.Min(b.min, y), math.Max(b.max, y)
			}

			got := GroupByIntegerX(nil, points)
			bi := -1
			size := 0
			for i, p := range got {
				if i == 0 || got[i-1].X != p.X {
					if size > 4 {
						return false
					}
					bi++
					size = 0
					if bi >= len(buckets) || buckets[bi].x != p.X || buckets[bi].first != p.Y {
						return false
					}
				}
				size++
				if p.Y < buckets[bi].min || p.Y > buckets[bi].max {
					return false
				}
			}
			return size <= 4 && bi == len(buckets)-1
		},
		gen.IntRange(1, 500), gen.IntRange(1, 30), gen.Int64(),
	))

	runProperties(t, props)
}

func equalPoints(a, b []model.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
