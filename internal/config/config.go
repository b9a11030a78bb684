// Package config holds the settings shared by the command-line front ends.
package config

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"

	"conway/pkg/core"
	"conway/pkg/life"
	"conway/pkg/pattern"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Scale       int     `json:"scale"`
	TPS         int     `json:"tps"`
	IntervalMS  int     `json:"interval_ms"`
	Seed        int64   `json:"seed"`
	Pattern     string  `json:"pattern"`
	Density     float64 `json:"density"`
	Boundary    string  `json:"boundary"`
	StartPaused bool    `json:"start_paused"`
	Workers     int     `json:"workers"`
	MaxCatchUp  int     `json:"max_catch_up"`
	HUDWidth    int     `json:"hud_width"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:      80,
		Height:     60,
		Scale:      10,
		TPS:        60,
		IntervalMS: 100,
		Seed:       42,
		Pattern:    "demo",
		Density:    0.15,
		Boundary:   core.Clamped.String(),
		Workers:    1,
		MaxCatchUp: 1,
		HUDWidth:   220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "host frames per second")
	fs.IntVar(&c.IntervalMS, "interval", c.IntervalMS, "milliseconds between generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random patterns")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability for random patterns")
	fs.StringVar(&c.Boundary, "boundary", c.Boundary, "edge policy: clamped or toroidal")
	fs.BoolVar(&c.StartPaused, "paused", c.StartPaused, "start paused")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands computed concurrently per generation")
	fs.IntVar(&c.MaxCatchUp, "catch-up", c.MaxCatchUp, "maximum generations per frame")
}

// Load overlays the JSON file at path onto c. Fields absent from the file keep
// their current values.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[Load] failed to read file: %+v", path)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[Load] failed to unmarshal data from file: %+v", path)
	}
	return nil
}

// Interval returns the generation interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// Validate reports settings no front end can run with.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(core.ErrInvalidSize, "width=%d height=%d", c.Width, c.Height)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Errorf("density %.3f outside [0,1]", c.Density)
	}
	if _, err := core.ParseBoundary(c.Boundary); err != nil {
		return err
	}
	return nil
}

// NewGrid builds the initial grid described by the configuration.
func (c *Config) NewGrid() (*core.Grid, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	boundary, _ := core.ParseBoundary(c.Boundary)
	p, err := c.InitialPattern(c.Seed)
	if err != nil {
		return nil, err
	}
	return core.NewGrid(c.Width, c.Height, p, core.WithBoundary(boundary))
}

// InitialPattern resolves the configured pattern name with the given seed.
func (c *Config) InitialPattern(seed int64) (core.Pattern, error) {
	return pattern.Lookup(c.Pattern, pattern.Options{Seed: seed, Density: c.Density})
}

// NewController wraps grid in a controller using the configured pacing.
func (c *Config) NewController(grid *core.Grid) *life.Controller {
	opts := []life.Option{life.WithWorkers(c.Workers), life.WithMaxCatchUp(c.MaxCatchUp)}
	if c.StartPaused {
		opts = append(opts, life.StartPaused())
	}
	return life.NewController(grid, c.Interval(), opts...)
}
