package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vialkov/coil/internal/config"
	"github.com/vialkov/coil/internal/input"
	"github.com/vialkov/coil/internal/render"
	"github.com/vialkov/coil/internal/term"
)

// Loop owns the timing, input queue and renderer for one run. Construct it
// with New, drive a Node with Run, and it releases the terminal when done.
type Loop struct {
	cfg         config.Config
	backend     *term.Backend
	queue       *input.Queue
	renderer    *render.CellBuffer
	logger      *log.Logger
	ownsBackend bool
}

type options struct {
	backend *term.Backend
	logger  *log.Logger
}

// Option customizes loop construction.
type Option func(*options)

// WithBackend runs the loop against an existing terminal backend instead of
// opening the process's terminal. The caller keeps ownership and must close
// it; used with term.NewSimulation in tests.
func WithBackend(b *term.Backend) Option {
	return func(o *options) { o.backend = b }
}

// WithLogger routes engine diagnostics to the given logger. The default
// discards them: the loop runs inside the alternate screen, where writing
// logs to stderr would corrupt the display.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New validates cfg and claims the terminal. A validation failure returns
// before any terminal resource is allocated.
func New(cfg config.Config, opts ...Option) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	backend := o.backend
	owns := false
	if backend == nil {
		var err error
		backend, err = term.Open()
		if err != nil {
			return nil, err
		}
		owns = true
	}

	renderer, err := render.New(backend, cfg.ScreenW, cfg.ScreenH, logger)
	if err != nil {
		if owns {
			backend.Close()
		}
		return nil, err
	}

	return &Loop{
		cfg:         cfg,
		backend:     backend,
		queue:       input.NewQueue(backend, logger),
		renderer:    renderer,
		logger:      logger,
		ownsBackend: owns,
	}, nil
}

// Run drives the node until an event handler requests exit or an I/O error
// aborts the loop. The terminal is released on every exit path. Partially
// applied work from the failing iteration is not rolled back.
func (l *Loop) Run(n Node) error {
	defer l.Close()

	timeout := l.cfg.Input.PollTimeout()
	frame := l.cfg.FrameDuration()
	dt := frame.Seconds()
	clk := newClock(frame, l.cfg.MaxFrameTime, time.Now())

	l.logger.Debug("loop started",
		"fps", l.cfg.TargetFPS,
		"max_frame_time", l.cfg.MaxFrameTime,
		"input", l.cfg.Input.String())

	for {
		if err := l.queue.Poll(timeout); err != nil {
			return err
		}

		for _, ev := range l.queue.Drain() {
			if n.OnEvent(ev) {
				l.logger.Debug("exit requested by event handler")
				return nil
			}
		}

		for steps := clk.tick(time.Now()); steps > 0; steps-- {
			n.Update(dt)
		}

		l.renderer.Clear()
		n.Render(l.renderer)
		if _, err := l.renderer.Flush(); err != nil {
			return fmt.Errorf("engine: flush frame: %w", err)
		}
	}
}

// Close releases the terminal if the loop opened it. Safe to call more than
// once; cleanup failures are never fatal.
func (l *Loop) Close() {
	if l.ownsBackend && l.backend != nil {
		l.backend.Close()
		l.backend = nil
	}
}
