package utils

import "math"

// RoundDigits rounds f half to even at the given number of decimal digits.
// NaN and infinities are returned unchanged.
func RoundDigits(f float64, digits int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	scale := math.Pow(10, float64(digits))
	return math.RoundToEven(f*scale) / scale
}
