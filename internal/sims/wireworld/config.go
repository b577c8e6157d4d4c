package wireworld

import (
	"fmt"
	"strconv"
)

// Config controls the grid dimensions and the initial circuit.
type Config struct {
	Rows    int
	Columns int

	// IntervalMS is the time between ticks while running.
	IntervalMS int

	// Pattern names a built-in circuit stamped by Reset; empty leaves the
	// grid blank.
	Pattern string
	Seed    int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rows:       50,
		Columns:    50,
		IntervalMS: 1000,
		Seed:       1,
	}
}

// Validate reports settings that cannot produce a grid.
func (c Config) Validate() error {
	if c.Rows < 1 {
		return fmt.Errorf("%w: rows must be >= 1, got %d", ErrConfiguration, c.Rows)
	}
	if c.Columns < 1 {
		return fmt.Errorf("%w: columns must be >= 1, got %d", ErrConfiguration, c.Columns)
	}
	if c.Pattern != "" && !knownPattern(c.Pattern) {
		return fmt.Errorf("%w: unknown pattern %q", ErrConfiguration, c.Pattern)
	}
	return nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Dimensions are taken as given; NewWithConfig rejects values below 1.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	ints := []struct {
		keys []string
		dst  *int
	}{
		{keys: []string{"rows", "h"}, dst: &c.Rows},
		{keys: []string{"columns", "w"}, dst: &c.Columns},
		{keys: []string{"interval_ms"}, dst: &c.IntervalMS},
	}
	for _, field := range ints {
		for _, key := range field.keys {
			v, ok := cfg[key]
			if !ok {
				continue
			}
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return c, fmt.Errorf("%w: %s=%q is not an integer", ErrConfiguration, key, v)
			}
			*field.dst = parsed
			break
		}
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("%w: seed=%q is not an integer", ErrConfiguration, v)
		}
		c.Seed = parsed
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	return c, nil
}
