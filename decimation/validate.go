package decimation

import (
	"fmt"

	"github.com/uyouii/plot-decimation/common"
	"github.com/uyouii/plot-decimation/model"
	"go.uber.org/multierr"
)

// Validate reports every point with a NaN or infinite coordinate, one
// error per point, each wrapping common.ErrorNonFinite. The decimators
// accept such points anyway; Validate exists for diagnostics.
func Validate(points []model.Point) error {
	_, err := ValidateLimit(points, len(points))
	return err
}

// ValidateLimit counts every non-finite point but aggregates errors for at
// most limit of them, in input order. limit <= 0 counts without collecting.
func ValidateLimit(points []model.Point, limit int) (int, error) {
	var (
		err error
		cnt int
	)
	for i, p := range points {
		if p.IsFinite() {
			continue
		}
		if cnt < limit {
			err = multierr.Append(err, fmt.Errorf("point %d %v: %w", i, p, common.ErrorNonFinite))
		}
		cnt++
	}
	return cnt, err
}
