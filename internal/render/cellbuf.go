package render

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vialkov/coil/internal/core"
	"github.com/vialkov/coil/internal/term"
)

// CellBuffer is the terminal-backed Renderer. It keeps two equally sized
// buffers: back (drawn into this frame) and front (what the terminal
// displays). Dimensions are fixed at construction; a resize means building
// a new CellBuffer.
type CellBuffer struct {
	backend *term.Backend
	logger  *log.Logger
	width   int
	height  int
	back    []core.Cell
	front   []core.Cell
}

// New allocates a CellBuffer of the given dimensions with both buffers
// blank, matching the freshly entered alternate screen.
func New(backend *term.Backend, width, height int, logger *log.Logger) (*CellBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: invalid buffer size %dx%d", width, height)
	}
	size := width * height
	b := &CellBuffer{
		backend: backend,
		logger:  logger,
		width:   width,
		height:  height,
		back:    make([]core.Cell, size),
		front:   make([]core.Cell, size),
	}
	blank := core.Blank()
	for i := range b.back {
		b.back[i] = blank
		b.front[i] = blank
	}
	return b, nil
}

// Size returns the buffer dimensions.
func (b *CellBuffer) Size() (width, height int) {
	return b.width, b.height
}

func (b *CellBuffer) index(x, y int) (int, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, false
	}
	return y*b.width + x, true
}

// Clear resets every cell of the back buffer to blank.
func (b *CellBuffer) Clear() {
	blank := core.Blank()
	for i := range b.back {
		b.back[i] = blank
	}
}

// DrawCell writes one cell at (x, y) into the back buffer.
func (b *CellBuffer) DrawCell(x, y int, c core.Cell) error {
	idx, ok := b.index(x, y)
	if !ok {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	b.back[idx] = c
	return nil
}

// DrawString writes text cell by cell starting at (x, y). Cells outside the
// buffer are skipped so a long string near the right edge clips instead of
// failing the whole call.
func (b *CellBuffer) DrawString(x, y int, text string, fg, bg core.Color) {
	for i, r := range []rune(text) {
		if err := b.DrawCell(x+i, y, core.NewCell(r, fg, bg)); err != nil {
			if b.logger != nil {
				b.logger.Warn("skipped cell outside buffer", "x", x+i, "y", y)
			}
		}
	}
}

// Flush pushes every cell where back differs from front to the terminal,
// copies it into front, and shows the result. Output size is proportional to
// the number of changed cells, not the screen area; flushing an unchanged
// frame emits nothing and returns 0.
func (b *CellBuffer) Flush() (int, error) {
	changed := 0
	for i := range b.back {
		if b.back[i] == b.front[i] {
			continue
		}
		x := i % b.width
		y := i / b.width
		b.backend.SetCell(x, y, b.back[i])
		b.front[i] = b.back[i]
		changed++
	}
	if changed > 0 {
		b.backend.Show()
	}
	return changed, nil
}
