// Package config holds the command-line and file settings shared by the
// wireworld frontends.
package config

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the frontend parameters. Values come from defaults, an
// optional YAML file and command-line flags, in increasing priority.
type Config struct {
	Rows       int    `yaml:"rows"`
	Columns    int    `yaml:"columns"`
	IntervalMS int    `yaml:"interval_ms"`
	Pattern    string `yaml:"pattern"`
	Seed       int64  `yaml:"seed"`

	Scale    int    `yaml:"scale"`
	TPS      int    `yaml:"tps"`
	HUDWidth int    `yaml:"hud_width"`
	Listen   string `yaml:"listen"`
	Running  bool   `yaml:"running"`

	Path string `yaml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:       50,
		Columns:    50,
		IntervalMS: 1000,
		Pattern:    "clock",
		Seed:       42,
		Scale:      12,
		TPS:        60,
		HUDWidth:   220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Path, "config", c.Path, "optional YAML settings file")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Columns, "cols", c.Columns, "grid columns")
	fs.IntVar(&c.IntervalMS, "interval", c.IntervalMS, "milliseconds between ticks")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in circuit stamped on reset (empty for a blank grid)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second of the GUI loop")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.StringVar(&c.Listen, "listen", c.Listen, "address for the spectator stream, e.g. :8080")
	fs.BoolVar(&c.Running, "run", c.Running, "start ticking immediately")
}

// Parse binds c to fs, parses args and, when -config names a file, layers
// the file between the defaults and the flags that were set explicitly.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.Path == "" {
		return c, nil
	}
	fromFile, err := LoadFile(c.Path)
	if err != nil {
		return nil, err
	}
	override := flag.NewFlagSet("override", flag.ContinueOnError)
	fromFile.Bind(override)
	fs.Visit(func(f *flag.Flag) {
		if err == nil {
			err = override.Set(f.Name, f.Value.String())
		}
	})
	if err != nil {
		return nil, err
	}
	return fromFile, nil
}

// LoadFile reads a YAML settings file on top of the defaults.
func LoadFile(path string) (*Config, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))
	if err := vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	raw, err := yaml.Marshal(vp.AllSettings())
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	c := NewConfig()
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	c.Path = path
	return c, nil
}

// Validate rejects values the frontends cannot work with. Grid dimensions
// are checked by the simulation itself.
func (c *Config) Validate() error {
	var errs []error
	if c.Scale < 1 {
		errs = append(errs, fmt.Errorf("scale must be >= 1, got %d", c.Scale))
	}
	if c.TPS < 1 {
		errs = append(errs, fmt.Errorf("tps must be >= 1, got %d", c.TPS))
	}
	if c.HUDWidth < 0 {
		errs = append(errs, fmt.Errorf("hud must be >= 0, got %d", c.HUDWidth))
	}
	if c.IntervalMS < 1 {
		errs = append(errs, fmt.Errorf("interval must be >= 1ms, got %d", c.IntervalMS))
	}
	return errors.Join(errs...)
}

// SimParams renders the simulation settings in the key/value form accepted by
// wireworld.FromMap.
func (c *Config) SimParams() map[string]string {
	return map[string]string{
		"rows":        strconv.Itoa(c.Rows),
		"columns":     strconv.Itoa(c.Columns),
		"interval_ms": strconv.Itoa(c.IntervalMS),
		"pattern":     strings.TrimSpace(c.Pattern),
		"seed":        strconv.FormatInt(c.Seed, 10),
	}
}
