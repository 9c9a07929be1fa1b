package decimation

import "github.com/uyouii/plot-decimation/model"

// Stride keeps the first point, then every (step+1)-th point, then the last
// point, appending them to dst. step <= 0 keeps every point.
func Stride(dst, points []model.Point, step int) []model.Point {
	n := len(points)
	if n == 0 {
		return dst
	}
	if step < 0 {
		step = 0
	}
	if step > n {
		step = n
	}

	dst = append(dst, points[0])
	for i := step + 1; i < n-1; i += step + 1 {
		dst = append(dst, points[i])
	}
	return appendLast(dst, points[n-1])
}
