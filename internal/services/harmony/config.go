package harmony

import (
	"fmt"
	"time"

	"github.com/Tydus/wordleharmony/internal/catalog"
	"github.com/Tydus/wordleharmony/internal/combo"
	"github.com/Tydus/wordleharmony/internal/letters"
)

// Strategy selects how each join is executed. All strategies produce the
// same record sets.
type Strategy string

const (
	StrategyFlat        Strategy = "flat"
	StrategyPartitioned Strategy = "partitioned"
	StrategyReuse       Strategy = "partitioned-with-reuse"
)

func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(s); st {
	case StrategyFlat, StrategyPartitioned, StrategyReuse:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

const (
	DefaultMaxCatalogSize = 15000
	// DefaultOutputCap matches a 50M record ceiling on each of the 26 buckets.
	DefaultOutputCap = 26 * 50_000_000
	DefaultCoverage  = letters.Alphabet - 1
)

type Config struct {
	Strategy       Strategy      `yaml:"strategy"`
	Workers        int           `yaml:"workers"`
	MaxCatalogSize int           `yaml:"max_catalog_size"`
	OutputCaps     map[int]int   `yaml:"per_arity_output_cap"`
	Coverage       int           `yaml:"coverage"`
	ProgressPeriod time.Duration `yaml:"progress_period"`
}

func DefaultConfig() *Config {
	caps := make(map[int]int, combo.MaxArity-1)
	for arity := 2; arity <= combo.MaxArity; arity++ {
		caps[arity] = DefaultOutputCap
	}

	return &Config{
		Strategy:       StrategyPartitioned,
		MaxCatalogSize: DefaultMaxCatalogSize,
		OutputCaps:     caps,
		Coverage:       DefaultCoverage,
		ProgressPeriod: 5 * time.Second,
	}
}

// Cap returns the record limit after the join producing arity. Zero means unbounded.
func (c *Config) Cap(arity int) int {
	return c.OutputCaps[arity]
}

func (c *Config) Validate() error {
	if _, err := ParseStrategy(string(c.Strategy)); err != nil {
		return err
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidConfig)
	}

	if c.MaxCatalogSize <= 0 || c.MaxCatalogSize > catalog.MaxIDs {
		return fmt.Errorf("%w: max_catalog_size must be in 1..%d", ErrInvalidConfig, catalog.MaxIDs)
	}

	for arity, limit := range c.OutputCaps {
		if arity < 2 || arity > combo.MaxArity {
			return fmt.Errorf("%w: per_arity_output_cap has arity %d outside 2..%d", ErrInvalidConfig, arity, combo.MaxArity)
		}
		if limit < 0 {
			return fmt.Errorf("%w: per_arity_output_cap[%d] must not be negative", ErrInvalidConfig, arity)
		}
	}

	if c.Coverage < 0 || c.Coverage > letters.Alphabet {
		return fmt.Errorf("%w: coverage must be in 0..%d", ErrInvalidConfig, letters.Alphabet)
	}

	if c.ProgressPeriod < 0 {
		return fmt.Errorf("%w: progress_period must not be negative", ErrInvalidConfig)
	}

	return nil
}
