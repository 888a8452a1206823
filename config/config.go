// Package config resolves game settings from defaults, environment and command-line flags
package config

import (
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/lixenwraith/grid-snake/constants"
)

// Environment variable names, flags take precedence over them
const (
	EnvGridSize     = "SNAKE_GRID_SIZE"
	EnvTickRate     = "SNAKE_TICK_RATE"
	EnvSeed         = "SNAKE_SEED"
	EnvAudioEnabled = "SNAKE_AUDIO_ENABLED"
	EnvMasterVolume = "SNAKE_MASTER_VOLUME" // 0-100
	EnvDebug        = "SNAKE_DEBUG"
	EnvColor        = "SNAKE_COLOR"
)

// Config holds all runtime settings
type Config struct {
	GridSize     int
	TickRate     int
	Seed         uint64 // 0 picks a time-based seed
	AudioEnabled bool
	MasterVolume float64 // 0.0-1.0
	Debug        bool
	ColorMode    string // auto, 256, truecolor
}

// Default returns the reference settings: 64x64 grid at 15 ticks per second
func Default() *Config {
	return &Config{
		GridSize:     constants.GridSize,
		TickRate:     constants.TickRate,
		AudioEnabled: true,
		MasterVolume: 0.5,
		ColorMode:    "auto",
	}
}

// Load applies environment overrides then flags from args, and validates the result
func Load(args []string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	if err := cfg.LoadEnv(lookup); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("grid-snake", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnv overrides fields from environment variables, malformed values are reported together
func (c *Config) LoadEnv(lookup func(string) (string, bool)) error {
	var merr *multierror.Error

	if v, ok := lookup(EnvGridSize); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.GridSize = n
		} else {
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", EnvGridSize, err))
		}
	}

	if v, ok := lookup(EnvTickRate); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.TickRate = n
		} else {
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", EnvTickRate, err))
		}
	}

	if v, ok := lookup(EnvSeed); ok {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = n
		} else {
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", EnvSeed, err))
		}
	}

	if v, ok := lookup(EnvAudioEnabled); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.AudioEnabled = b
		} else {
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", EnvAudioEnabled, err))
		}
	}

	// Master volume (0-100 converted to 0.0-1.0)
	if v, ok := lookup(EnvMasterVolume); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.MasterVolume = float64(n) / 100.0
		} else {
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", EnvMasterVolume, err))
		}
	}

	if v, ok := lookup(EnvDebug); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		} else {
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", EnvDebug, err))
		}
	}

	if v, ok := lookup(EnvColor); ok {
		c.ColorMode = v
	}

	return merr.ErrorOrNil()
}

// RegisterFlags binds flags to c, current field values become the defaults
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.GridSize, "size", c.GridSize, "Grid side length in cells")
	fs.IntVar(&c.TickRate, "rate", c.TickRate, "Simulation ticks per second")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Food placement seed, 0 for time-based")
	fs.BoolVar(&c.AudioEnabled, "audio", c.AudioEnabled, "Enable sound effects")
	fs.Float64Var(&c.MasterVolume, "volume", c.MasterVolume, "Master volume 0.0-1.0")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Write debug log to logs/")
	fs.StringVar(&c.ColorMode, "color", c.ColorMode, "Color mode: auto, truecolor, 256")
}

// Validate reports every out-of-range setting at once
func (c *Config) Validate() error {
	var merr *multierror.Error

	if c.GridSize < constants.MinGridSize || c.GridSize > constants.MaxGridSize {
		merr = multierror.Append(merr, fmt.Errorf("grid size %d out of range [%d, %d]",
			c.GridSize, constants.MinGridSize, constants.MaxGridSize))
	}
	if c.TickRate < 1 || c.TickRate > constants.MaxTickRate {
		merr = multierror.Append(merr, fmt.Errorf("tick rate %d out of range [1, %d]",
			c.TickRate, constants.MaxTickRate))
	}
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		merr = multierror.Append(merr, fmt.Errorf("volume %.2f out of range [0, 1]", c.MasterVolume))
	}
	switch c.ColorMode {
	case "auto", "256", "truecolor", "true", "24bit":
	default:
		merr = multierror.Append(merr, fmt.Errorf("unknown color mode %q", c.ColorMode))
	}

	return merr.ErrorOrNil()
}

// TickInterval returns the scheduler period
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
