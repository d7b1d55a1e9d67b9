// Package term wraps the tcell terminal backend behind the narrow surface
// the engine needs: lifecycle, per-cell output, and an event stream.
//
// The terminal device is process-wide state. Construct at most one Backend
// per process and do not overlap its lifetime with another instance; this is
// a documented precondition, not something the package enforces with a lock.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vialkov/coil/internal/core"
)

// Event is the terminal event type delivered to games. Key, mouse and
// resize events arrive as *tcell.EventKey, *tcell.EventMouse and
// *tcell.EventResize respectively.
type Event = tcell.Event

// eventBufferSize bounds how many undelivered events the pump can hold
// before it blocks on the internal tcell reader.
const eventBufferSize = 128

// Backend owns the terminal for the duration of a run. Opening it puts the
// terminal into raw mode, enters the alternate screen, enables mouse capture
// and hides the cursor; Close undoes all of that.
type Backend struct {
	screen tcell.Screen
	sim    tcell.SimulationScreen // non-nil only for simulation backends
	events chan tcell.Event
	quit   chan struct{}
	closed bool
}

// Open claims the process's terminal. It fails when stdin is not a TTY or
// the terminal cannot be switched into raw mode.
func Open() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: initialize terminal: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	return start(screen, nil), nil
}

// NewSimulation creates an in-memory backend for tests. It behaves like a
// real terminal of the given size but reads injected events instead of a TTY.
func NewSimulation(width, height int) (*Backend, error) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		return nil, fmt.Errorf("term: initialize simulation screen: %w", err)
	}
	sim.SetSize(width, height)
	return start(sim, sim), nil
}

func start(screen tcell.Screen, sim tcell.SimulationScreen) *Backend {
	b := &Backend{
		screen: screen,
		sim:    sim,
		events: make(chan tcell.Event, eventBufferSize),
		quit:   make(chan struct{}),
	}
	go screen.ChannelEvents(b.events, b.quit)
	return b
}

// Events returns the stream of terminal events. The channel is closed when
// the backend shuts down.
func (b *Backend) Events() <-chan tcell.Event {
	return b.events
}

// Size returns the current terminal dimensions in cells.
func (b *Backend) Size() (width, height int) {
	return b.screen.Size()
}

// SetCell stages one cell for output at (x, y). Nothing reaches the
// terminal until Show is called.
func (b *Backend) SetCell(x, y int, c core.Cell) {
	b.screen.SetContent(x, y, c.Glyph, nil, styleFor(c))
}

// Show emits the staged cells to the terminal device and flushes the
// output stream.
func (b *Backend) Show() {
	b.screen.Show()
}

// Close restores the terminal: leaves the alternate screen, disables mouse
// capture, shows the cursor and turns raw mode off. Best effort and safe to
// call more than once; teardown failure must never block process exit.
func (b *Backend) Close() {
	if b.closed {
		return
	}
	b.closed = true
	close(b.quit)
	b.screen.DisableMouse()
	b.screen.Fini()
}
