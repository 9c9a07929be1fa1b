// Package spacing generates evenly and logarithmically spaced sequences
// of real values. None of the functions fail: invalid counts produce
// empty or partial results.
package spacing

import (
	"math"

	"github.com/uyouii/plot-decimation/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// VectorDigits is the number of decimal digits CreateVector and
// CreateVectorStep round their values to.
const VectorDigits = 8

// maxVectorLen bounds CreateVectorStep allocations.
const maxVectorLen = math.MaxInt32

// CreateVector returns n values evenly spaced over [x0, x1], both ends
// included, each rounded to VectorDigits digits.
func CreateVector(x0, x1 float64, n int) []float64 {
	res := LinSpace(x0, x1, n, true)
	for i := range res {
		res[i] = utils.RoundDigits(res[i], VectorDigits)
	}
	return res
}

// CreateVectorStep returns x0, x0+dx, x0+2dx, ... up to x1, each rounded to
// VectorDigits digits. The length is (x1-x0)/dx rounded half to even, plus one.
func CreateVectorStep(x0, x1, dx float64) []float64 {
	length := math.RoundToEven((x1-x0)/dx) + 1
	if math.IsNaN(length) || length < 1 || length > maxVectorLen {
		return []float64{}
	}
	n := int(length)
	res := make([]float64, n)
	for i := 0; i < n; i++ {
		res[i] = utils.RoundDigits(x0+float64(i)*dx, VectorDigits)
	}
	return res
}

// LinSpace returns count evenly spaced values starting at start.
// With endpoint the last value is exactly stop, otherwise stop is excluded
// and the step is (stop-start)/count.
func LinSpace(start, stop float64, count int, endpoint bool) []float64 {
	return LinSpaceInto(nil, start, stop, count, endpoint)
}

// LinSpaceInto is LinSpace writing into dst. dst is cleared and refilled;
// its backing array is reused when large enough.
func LinSpaceInto(dst []float64, start, stop float64, count int, endpoint bool) []float64 {
	dst = dst[:0]
	switch {
	case count <= 0:
		return dst
	case count == 1:
		return append(dst, start)
	}

	// endpoint=false spans count intervals and drops the final value
	n := count
	if !endpoint {
		n = count + 1
	}
	dst = resize(dst, n)
	floats.Span(dst, start, stop)
	if endpoint {
		dst[n-1] = stop
		return dst
	}
	return dst[:count]
}

// LogSpace returns base^v for each v of LinSpace(start, stop, count, endpoint).
func LogSpace(start, stop float64, count int, endpoint bool, base float64) []float64 {
	return powerInPlace(LinSpace(start, stop, count, endpoint), base)
}

// GeomSpace is LogSpace with start and stop given in linear space.
// Either bound being zero yields an empty sequence.
func GeomSpace(start, stop float64, count int, endpoint bool, base float64) []float64 {
	if start == 0 || stop == 0 {
		return []float64{}
	}
	return LogSpace(math.Log10(start), math.Log10(stop), count, endpoint, base)
}

// Power returns base^v for each v in values.
func Power(values []float64, base float64) []float64 {
	res := make([]float64, len(values))
	copy(res, values)
	return powerInPlace(res, base)
}

func powerInPlace(values []float64, base float64) []float64 {
	for i, v := range values {
		values[i] = math.Pow(base, v)
	}
	return values
}

// Evaluate builds the len(x) by len(y) grid whose cell (i, j) is f(x[i], y[j]).
func Evaluate(f func(x, y float64) float64, x, y []float64) [][]float64 {
	if f == nil {
		return [][]float64{}
	}
	grid := make([][]float64, len(x))
	for i := range x {
		grid[i] = make([]float64, len(y))
		for j := range y {
			grid[i][j] = f(x[i], y[j])
		}
	}
	return grid
}

// EvaluateDense is Evaluate returning a dense matrix. It returns nil when f
// is nil or either axis is empty, since gonum has no zero-sized matrices.
func EvaluateDense(f func(x, y float64) float64, x, y []float64) *mat.Dense {
	if f == nil || len(x) == 0 || len(y) == 0 {
		return nil
	}
	m := mat.NewDense(len(x), len(y), nil)
	for i := range x {
		for j := range y {
			m.Set(i, j, f(x[i], y[j]))
		}
	}
	return m
}

func resize(dst []float64, n int) []float64 {
	if cap(dst) < n {
		return make([]float64, n)
	}
	return dst[:n]
}
