package model

import (
	"fmt"
	"math"
)

// Point is a screen-space coordinate. Points are compared with ==;
// algorithms rely on exact equality, never on a tolerance.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// IsFinite reports whether both coordinates are neither NaN nor infinite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

type Series struct {
	// Labels identifies the plotted line, like "name": "cpu"
	Labels map[string]string `json:"labels,omitempty"`
	Points []Point           `json:"points"`
}

func (s *Series) DebugString() string {
	res := fmt.Sprintf("labels: %+v, pointCount: %+v", s.Labels, len(s.Points))
	return res
}

func (s *Series) IsEmpty() bool {
	if s == nil {
		return true
	}
	return len(s.Points) == 0
}
