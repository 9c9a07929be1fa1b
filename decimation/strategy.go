package decimation

import (
	"fmt"
	"math"
	"strings"

	"github.com/uyouii/plot-decimation/common"
	"github.com/uyouii/plot-decimation/model"
)

// Strategy selects how count-bounded decimation resolves a sampled
// position to an input index.
type Strategy int

const (
	// StrategyNone disables decimation: the input is copied unchanged.
	StrategyNone Strategy = iota
	// StrategyLinear emits the sampled index as is.
	StrategyLinear
	// StrategyMinMaxSpikeDetection emits the index in each sampled interval
	// that deviates most from the previous sample, so narrow spikes survive.
	StrategyMinMaxSpikeDetection
)

var strategyNames = map[Strategy]string{
	StrategyNone:                 "None",
	StrategyLinear:               "Linear",
	StrategyMinMaxSpikeDetection: "MinMaxSpikeDetection",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Selector returns the selection policy of s, nil for StrategyNone or an
// unknown value.
func (s Strategy) Selector() Selector {
	switch s {
	case StrategyLinear:
		return LinearSelector{}
	case StrategyMinMaxSpikeDetection:
		return SpikeSelector{}
	}
	return nil
}

// ParseStrategy accepts the names returned by String, case-insensitively,
// with or without '_' and '-' separators ("minmax_spike_detection").
func ParseStrategy(name string) (Strategy, error) {
	normalized := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(name))
	for s, n := range strategyNames {
		if strings.ToLower(n) == normalized {
			return s, nil
		}
	}
	return StrategyNone, fmt.Errorf("%q: %w", name, common.ErrorUnknownStrategy)
}

func (s Strategy) MarshalText() ([]byte, error) {
	if _, ok := strategyNames[s]; !ok {
		return nil, fmt.Errorf("%d: %w", int(s), common.ErrorUnknownStrategy)
	}
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Selector resolves one sampled position of count-bounded decimation.
// prev is the previously sampled index and outside the newly sampled one,
// prev < outside. The returned index is emitted; indexes outside
// [0, len(points)) are dropped.
type Selector interface {
	Select(points []model.Point, prev, outside int) int
}

type LinearSelector struct{}

func (LinearSelector) Select(_ []model.Point, _, outside int) int {
	return outside
}

// SpikeSelector scans (prev, outside] for the point whose Y is farthest from
// points[prev].Y. The first maximum wins.
type SpikeSelector struct{}

func (SpikeSelector) Select(points []model.Point, prev, outside int) int {
	if prev < 0 || outside >= len(points) || prev >= outside {
		return outside
	}

	ref := points[prev].Y
	best, maxDiff := outside, -1.0
	for j := prev + 1; j <= outside; j++ {
		// NaN differences never win, leaving outside as the fallback
		if diff := math.Abs(ref - points[j].Y); diff > maxDiff {
			best, maxDiff = j, diff
		}
	}
	return best
}
