// Package input provides the event queue and polling policy for the engine.
package input

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type strategyKind int

const (
	kindNonBlocking strategyKind = iota
	kindFrameBudgeted
	kindTimeout
)

// Strategy selects how long the loop waits for input before proceeding with
// a frame.
type Strategy struct {
	kind    strategyKind
	timeout time.Duration
}

// NonBlocking waits ~1ms per frame: grab whatever is already queued and move
// on. Best for games that should run at full speed regardless of input.
func NonBlocking() Strategy {
	return Strategy{kind: kindNonBlocking}
}

// FrameBudgeted waits up to roughly one 60fps frame (~16ms) for input, then
// updates and renders immediately.
func FrameBudgeted() Strategy {
	return Strategy{kind: kindFrameBudgeted}
}

// Timeout waits up to the given custom duration each frame.
func Timeout(d time.Duration) Strategy {
	return Strategy{kind: kindTimeout, timeout: d}
}

// PollTimeout returns how long a single poll may block for this strategy.
func (s Strategy) PollTimeout() time.Duration {
	switch s.kind {
	case kindFrameBudgeted:
		return 16 * time.Millisecond
	case kindTimeout:
		return s.timeout
	default:
		return time.Millisecond
	}
}

// String returns the textual form accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s.kind {
	case kindFrameBudgeted:
		return "framebudgeted"
	case kindTimeout:
		return s.timeout.String()
	default:
		return "nonblocking"
	}
}

// ParseStrategy converts a config or flag value into a Strategy. Accepts
// "nonblocking", "framebudgeted", or any duration string such as "25ms".
func ParseStrategy(value string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "nonblocking":
		return NonBlocking(), nil
	case "framebudgeted":
		return FrameBudgeted(), nil
	default:
		d, err := time.ParseDuration(value)
		if err != nil {
			return Strategy{}, fmt.Errorf("input: unknown strategy %q (want nonblocking, framebudgeted, or a duration)", value)
		}
		if d <= 0 {
			return Strategy{}, fmt.Errorf("input: strategy timeout must be positive, got %s", d)
		}
		return Timeout(d), nil
	}
}

// UnmarshalYAML lets Strategy be read directly from config files.
func (s *Strategy) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseStrategy(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML writes the textual form of the strategy.
func (s Strategy) MarshalYAML() (any, error) {
	return s.String(), nil
}
