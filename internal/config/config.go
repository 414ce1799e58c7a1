// Package config handles track build configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/Faultbox/monorail/internal/curve"
	"github.com/Faultbox/monorail/internal/path"
	"github.com/Faultbox/monorail/internal/tube"
)

// Config holds all track settings.
type Config struct {
	Track    TrackConfig    `yaml:"track"`
	Curve    CurveConfig    `yaml:"curve"`
	Tube     TubeConfig     `yaml:"tube"`
	Follower FollowerConfig `yaml:"follower"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// TrackConfig holds input file paths.
type TrackConfig struct {
	ControlPoints string `yaml:"control_points"` // Path to the control point file
}

// CurveConfig holds tessellation settings.
type CurveConfig struct {
	Resolution int `yaml:"resolution"` // Samples per segment, excluding the start sample
}

// TubeConfig holds monorail mesh settings.
type TubeConfig struct {
	Radius   float32    `yaml:"radius"`
	Segments int        `yaml:"segments"`
	Up       [3]float32 `yaml:"up,flow"`
}

// FollowerConfig holds vehicle placement settings.
type FollowerConfig struct {
	YawOffset float32       `yaml:"yaw_offset"` // Radians added to every heading
	Speed     int           `yaml:"speed"`      // Polyline points per tick
	TickRate  time.Duration `yaml:"tick_rate"`  // Interval between ticks when driving
	Laps      int           `yaml:"laps"`       // Laps to drive, 0 = until interrupted
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Configuration errors.
var ErrInvalidConfig = errors.New("invalid config")

// Default returns a Config with sensible default values.
func Default() *Config {
	opts := tube.DefaultOptions()
	return &Config{
		Track: TrackConfig{
			ControlPoints: "controlPoints.csv",
		},
		Curve: CurveConfig{
			Resolution: curve.DefaultResolution,
		},
		Tube: TubeConfig{
			Radius:   opts.Radius,
			Segments: opts.Segments,
			Up:       [3]float32{opts.Up.X, opts.Up.Y, opts.Up.Z},
		},
		Follower: FollowerConfig{
			YawOffset: path.DefaultYawOffset,
			Speed:     1,
			TickRate:  time.Second / 60,
			Laps:      1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks value ranges that would otherwise fail deep in the pipeline.
func (c *Config) Validate() error {
	var errs []error
	if c.Curve.Resolution < 1 {
		errs = append(errs, fmt.Errorf("curve.resolution must be >= 1, got %d", c.Curve.Resolution))
	}
	if !(c.Tube.Radius > 0) {
		errs = append(errs, fmt.Errorf("tube.radius must be > 0, got %v", c.Tube.Radius))
	}
	if c.Tube.Segments < 3 {
		errs = append(errs, fmt.Errorf("tube.segments must be >= 3, got %d", c.Tube.Segments))
	}
	if c.Follower.Speed < 1 {
		errs = append(errs, fmt.Errorf("follower.speed must be >= 1, got %d", c.Follower.Speed))
	}
	if c.Follower.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("follower.tick_rate must be > 0, got %v", c.Follower.TickRate))
	}
	if c.Follower.Laps < 0 {
		errs = append(errs, fmt.Errorf("follower.laps must be >= 0, got %d", c.Follower.Laps))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
