package decimation

import (
	"context"
	"fmt"
	"strings"

	"github.com/uyouii/plot-decimation/common"
	"github.com/uyouii/plot-decimation/config"
	"github.com/uyouii/plot-decimation/model"
	"github.com/uyouii/plot-decimation/utils"
	"go.uber.org/zap"
)

type Method string

const (
	MethodNone   Method = "none"
	MethodGroup  Method = "group"
	MethodStride Method = "stride"
	MethodCount  Method = "count"
)

func ParseMethod(name string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(name))); m {
	case MethodNone, MethodGroup, MethodStride, MethodCount:
		return m, nil
	}
	return MethodNone, fmt.Errorf("%q: %w", name, common.ErrorUnknownMethod)
}

// maxReportedInvalid caps the per-point errors Reduce puts into its warning.
const maxReportedInvalid = 5

type reducer func(ctx context.Context, dst, points []model.Point, cfg config.Decimation) []model.Point

var reducers = map[Method]reducer{
	MethodNone: func(_ context.Context, dst, points []model.Point, _ config.Decimation) []model.Point {
		return append(dst, points...)
	},
	MethodGroup: func(_ context.Context, dst, points []model.Point, _ config.Decimation) []model.Point {
		return GroupByIntegerX(dst, points)
	},
	MethodStride: func(_ context.Context, dst, points []model.Point, cfg config.Decimation) []model.Point {
		return Stride(dst, points, cfg.Step)
	},
	MethodCount: func(ctx context.Context, dst, points []model.Point, cfg config.Decimation) []model.Point {
		strategy, err := ParseStrategy(cfg.Strategy)
		if err != nil {
			utils.GetLogger(ctx).Error("ParseStrategy failed, use linear strategy", zap.Error(err))
			strategy = StrategyLinear
		}
		return Decimate(dst, points, cfg.Count, strategy, Options{
			Logarithmic: cfg.Logarithmic,
			Endpoint:    cfg.Endpoint,
		})
	},
}

// Reduce decimates series with the configured method and appends the result
// to dst. It never fails: an unknown method or strategy is logged and
// replaced by a fallback, and a panic is recovered and turned into a copy
// of the input.
func Reduce(ctx context.Context, dst []model.Point, series *model.Series,
	cfg config.Decimation) (res []model.Point) {
	logger := utils.GetLogger(ctx)

	if series.IsEmpty() {
		return dst
	}

	start := len(dst)
	defer func() {
		if err := recover(); err != nil {
			logger.Error("Reduce recover panic error!", zap.Any("err", err),
				zap.String("panic info", utils.GetPanicInfo()), zap.String("series", series.DebugString()))
			res = append(dst[:start], series.Points...)
		}
	}()

	if cnt, err := ValidateLimit(series.Points, maxReportedInvalid); cnt > 0 {
		logger.Warn("series has non-finite points", zap.String("series", series.DebugString()),
			zap.Int("invalidCnt", cnt), zap.Error(err))
	}

	method, err := ParseMethod(cfg.Method)
	if err != nil {
		logger.Error("ParseMethod failed, copy series unchanged", zap.Error(err))
		method = MethodNone
	}

	res = reducers[method](ctx, dst, series.Points, cfg)

	logger.Debug("series reduced", zap.String("series", series.DebugString()),
		zap.String("method", string(method)), zap.Int("outCnt", len(res)-start))
	return res
}
