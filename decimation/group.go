package decimation

import "github.com/uyouii/plot-decimation/model"

// column accumulates the points sharing one rounded X value.
type column struct {
	x                     float64
	first, last, min, max float64
}

func (c *column) reset(p model.Point) {
	y := roundCoord(p.Y)
	c.x = roundCoord(p.X)
	c.first, c.last, c.min, c.max = y, y, y, y
}

func (c *column) add(p model.Point) {
	y := roundCoord(p.Y)
	if y < c.min {
		c.min = y
	}
	if y > c.max {
		c.max = y
	}
	c.last = y
}

// appendTo emits the column as a vertical path: first, then whichever of
// min/max/last are distinct, so the stroke never doubles back.
func (c *column) appendTo(dst []model.Point) []model.Point {
	x := c.x
	dst = append(dst, model.Pt(x, c.first))

	switch {
	case c.first == c.min:
		if c.min != c.max {
			dst = append(dst, model.Pt(x, c.max))
		}
		if c.max != c.last {
			dst = append(dst, model.Pt(x, c.last))
		}
	case c.first == c.max:
		if c.max != c.min {
			dst = append(dst, model.Pt(x, c.min))
		}
		if c.min != c.last {
			dst = append(dst, model.Pt(x, c.last))
		}
	default:
		switch c.last {
		case c.min:
			if c.min != c.max {
				dst = append(dst, model.Pt(x, c.max))
			}
		case c.max:
			if c.max != c.min {
				dst = append(dst, model.Pt(x, c.min))
			}
		default:
			dst = append(dst, model.Pt(x, c.min), model.Pt(x, c.max))
		}
		dst = append(dst, model.Pt(x, c.last))
	}
	return dst
}

// GroupByIntegerX collapses each run of points whose X rounds to the same
// integer into 1 to 4 points (first, min, max, last in Y) and appends them
// to dst. X and Y are rounded half to even. Points of one column must be
// contiguous in the input.
func GroupByIntegerX(dst, points []model.Point) []model.Point {
	if len(points) == 0 {
		return dst
	}

	var c column
	c.reset(points[0])
	for _, p := range points[1:] {
		if roundCoord(p.X) != c.x {
			dst = c.appendTo(dst)
			c.reset(p)
			continue
		}
		c.add(p)
	}

	// the final column ends on its extreme instead of a trailing flat segment
	if c.first == c.min {
		c.last = c.max
	} else {
		c.last = c.min
	}
	return c.appendTo(dst)
}
