// Package config holds the run configuration for the engine loop and the
// YAML loading that fills it in.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vialkov/coil/internal/input"
)

// ErrInvalid marks configuration validation failures. Validation runs before
// any terminal resource is allocated, so a bad config never leaves the
// terminal in a partially initialized state.
var ErrInvalid = errors.New("config: invalid value")

// Config contains the settings the loop needs for one run. It is immutable
// for the duration of the run.
type Config struct {
	// TargetFPS is the fixed simulation rate; the loop always advances the
	// game in exact multiples of 1/TargetFPS seconds.
	TargetFPS int `yaml:"target_fps"`

	// MaxFrameTime caps how much real time a single iteration may feed into
	// the simulation, preventing an unbounded catch-up burst after a stall.
	MaxFrameTime time.Duration `yaml:"-"`

	// Input selects how long each frame waits for terminal events.
	Input input.Strategy `yaml:"input"`

	// ScreenW and ScreenH are the cell-buffer dimensions.
	ScreenW int `yaml:"screen_width"`
	ScreenH int `yaml:"screen_height"`
}

// Default returns the stock configuration: 60fps, a 50ms frame-time cap
// (20fps minimum under load), non-blocking input, and an 80x24 screen.
func Default() Config {
	return Config{
		TargetFPS:    60,
		MaxFrameTime: 50 * time.Millisecond,
		Input:        input.NonBlocking(),
		ScreenW:      80,
		ScreenH:      24,
	}
}

// Validate checks the configuration. It must pass before the loop is built.
func (c Config) Validate() error {
	if c.TargetFPS <= 0 {
		return fmt.Errorf("%w: target fps must be greater than zero", ErrInvalid)
	}
	if c.MaxFrameTime <= 0 {
		return fmt.Errorf("%w: max frame time must be greater than zero", ErrInvalid)
	}
	if c.ScreenW <= 0 || c.ScreenH <= 0 {
		return fmt.Errorf("%w: screen size must be positive, got %dx%d", ErrInvalid, c.ScreenW, c.ScreenH)
	}
	return nil
}

// FrameDuration returns the fixed timestep implied by TargetFPS.
func (c Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.TargetFPS)
}
