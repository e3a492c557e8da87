// SPDX-License-Identifier: EPL-2.0

package peaks

import (
	"fmt"
	"strings"
)

// Canonical strategy names accepted by New.
const (
	StrategyMaxAbsolute   = "max-absolute"
	StrategyRMS           = "rms"
	StrategySampling      = "sampling"
	StrategyScaledAverage = "scaled-average"
)

// Defaults used by New when no option overrides them.
const (
	DefaultBlockSize = 200
	DefaultScale     = 4.0
)

// aliases maps the labels shown by the desktop renderer onto canonical names.
var aliases = map[string]string{
	"max absolute value": StrategyMaxAbsolute,
	"max rms value":      StrategyRMS,
	"sampled peaks":      StrategySampling,
	"scaled average":     StrategyScaledAverage,
}

// Option configures a strategy built by New.
type Option func(*config)

type config struct {
	blockSize int
	scale     float64
}

// WithBlockSize sets the RMS sub-block size and the Sampling stride.
func WithBlockSize(n int) Option {
	return func(c *config) {
		c.blockSize = n
	}
}

// WithScale sets the ScaledAverage gain.
func WithScale(f float64) Option {
	return func(c *config) {
		c.scale = f
	}
}

// Strategies lists the canonical strategy names.
func Strategies() []string {
	return []string{StrategyMaxAbsolute, StrategyRMS, StrategySampling, StrategyScaledAverage}
}

// New builds the strategy called name. Matching ignores case and accepts the
// desktop labels ("Max Rms Value", ...) as aliases.
func New(name string, opts ...Option) (Provider, error) {
	cfg := config{blockSize: DefaultBlockSize, scale: DefaultScale}
	for _, o := range opts {
		o(&cfg)
	}

	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}

	switch key {
	case StrategyMaxAbsolute:
		return NewMaxAbsolute(), nil
	case StrategyRMS, StrategySampling:
		if cfg.blockSize < 1 {
			return nil, fmt.Errorf("%w: block size must be at least 1, got %d", ErrInvalidConfiguration, cfg.blockSize)
		}
		if key == StrategyRMS {
			return NewRMS(cfg.blockSize), nil
		}
		return NewSampling(cfg.blockSize), nil
	case StrategyScaledAverage:
		if cfg.scale <= 0 {
			return nil, fmt.Errorf("%w: scale must be positive, got %g", ErrInvalidConfiguration, cfg.scale)
		}
		return NewScaledAverage(cfg.scale), nil
	default:
		return nil, fmt.Errorf("%w: unknown peak strategy %q", ErrInvalidConfiguration, name)
	}
}
