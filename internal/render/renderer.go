// Package render implements the double-buffered cell renderer. Games draw
// into a back buffer each frame; Flush compares it against what the terminal
// currently displays and emits output only for the cells that changed.
package render

import (
	"errors"

	"github.com/vialkov/coil/internal/core"
)

// ErrOutOfBounds reports a draw outside the buffer. Callers may treat it as
// non-fatal; string drawing near a screen edge routinely clips.
var ErrOutOfBounds = errors.New("render: coordinates out of bounds")

// Renderer is the drawing surface handed to games each frame.
type Renderer interface {
	// Clear resets every cell of the back buffer to blank. The front
	// buffer (what the terminal shows) is untouched.
	Clear()

	// DrawCell writes one cell at (x, y) into the back buffer. Returns an
	// error wrapping ErrOutOfBounds for coordinates outside the buffer,
	// leaving it unmodified.
	DrawCell(x, y int, c core.Cell) error

	// DrawString writes text as successive cells starting at (x, y),
	// advancing x by one per rune. Runes falling outside the buffer are
	// skipped with a logged warning; the call never aborts.
	DrawString(x, y int, text string, fg, bg core.Color)

	// Flush emits every changed cell to the terminal and returns how many
	// cells were written. Unchanged cells cost no output.
	Flush() (int, error)

	// Size returns the buffer dimensions.
	Size() (width, height int)
}
