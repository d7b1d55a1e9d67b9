package render

import (
	"errors"
	"testing"

	"github.com/vialkov/coil/internal/core"
	"github.com/vialkov/coil/internal/term"
)

func newTestBuffer(t *testing.T, width, height int) (*CellBuffer, *term.Backend) {
	t.Helper()
	backend, err := term.NewSimulation(width, height)
	if err != nil {
		t.Fatalf("NewSimulation() failed: %v", err)
	}
	t.Cleanup(backend.Close)

	buf, err := New(backend, width, height, nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return buf, backend
}

func TestNewRejectsInvalidSize(t *testing.T) {
	backend, err := term.NewSimulation(10, 10)
	if err != nil {
		t.Fatalf("NewSimulation() failed: %v", err)
	}
	defer backend.Close()

	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 10}, {10, -1}} {
		if _, err := New(backend, dims[0], dims[1], nil); err == nil {
			t.Errorf("New(%d, %d) should fail", dims[0], dims[1])
		}
	}
}

func TestDrawCellBounds(t *testing.T) {
	buf, _ := newTestBuffer(t, 10, 5)
	cell := core.NewCell('x', core.ColorRed, core.ColorDefault)

	tests := []struct {
		name string
		x, y int
		ok   bool
	}{
		{"origin", 0, 0, true},
		{"bottom-right corner", 9, 4, true},
		{"x at width", 10, 0, false},
		{"y at height", 0, 5, false},
		{"negative x", -1, 0, false},
		{"negative y", 0, -1, false},
	}

	for _, tt := range tests {
		err := buf.DrawCell(tt.x, tt.y, cell)
		if tt.ok && err != nil {
			t.Errorf("%s: DrawCell(%d, %d) = %v, expected nil", tt.name, tt.x, tt.y, err)
		}
		if !tt.ok {
			if err == nil {
				t.Errorf("%s: DrawCell(%d, %d) should fail", tt.name, tt.x, tt.y)
			} else if !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("%s: error %v should wrap ErrOutOfBounds", tt.name, err)
			}
		}
	}
}

func TestOutOfBoundsDrawLeavesBufferUnmodified(t *testing.T) {
	buf, _ := newTestBuffer(t, 10, 5)

	// A failed draw must not dirty anything: flushing afterwards emits 0
	// cells.
	_ = buf.DrawCell(10, 0, core.NewCell('x', core.ColorRed, core.ColorDefault))
	_ = buf.DrawCell(0, 5, core.NewCell('x', core.ColorRed, core.ColorDefault))

	n, err := buf.Flush()
	if err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Flush() wrote %d cells after out-of-bounds draws, expected 0", n)
	}
}

func TestFlushEmitsOnlyChangedCells(t *testing.T) {
	buf, backend := newTestBuffer(t, 10, 5)

	if err := buf.DrawCell(2, 1, core.NewCell('A', core.ColorGreen, core.ColorDefault)); err != nil {
		t.Fatalf("DrawCell() failed: %v", err)
	}
	if err := buf.DrawCell(7, 3, core.NewCell('B', core.ColorBlue, core.ColorDefault)); err != nil {
		t.Fatalf("DrawCell() failed: %v", err)
	}

	n, err := buf.Flush()
	if err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Flush() wrote %d cells, expected 2", n)
	}

	if got := backend.GlyphAt(2, 1); got != 'A' {
		t.Errorf("terminal shows %q at (2, 1), expected 'A'", got)
	}
	if got := backend.GlyphAt(7, 3); got != 'B' {
		t.Errorf("terminal shows %q at (7, 3), expected 'B'", got)
	}
}

func TestFlushIdempotent(t *testing.T) {
	buf, _ := newTestBuffer(t, 10, 5)

	buf.DrawString(0, 0, "hello", core.ColorWhite, core.ColorDefault)
	if _, err := buf.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}

	// No draws in between: the second flush must emit nothing.
	n, err := buf.Flush()
	if err != nil {
		t.Fatalf("second Flush() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("second Flush() wrote %d cells, expected 0", n)
	}
}

func TestClearDirtiesDrawnCellsOnly(t *testing.T) {
	buf, backend := newTestBuffer(t, 10, 5)

	buf.DrawString(0, 0, "abc", core.ColorWhite, core.ColorDefault)
	if _, err := buf.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}

	buf.Clear()
	n, err := buf.Flush()
	if err != nil {
		t.Fatalf("Flush() after Clear failed: %v", err)
	}
	if n != 3 {
		t.Errorf("Flush() after Clear wrote %d cells, expected 3 (only previously drawn cells)", n)
	}
	if got := backend.GlyphAt(0, 0); got != ' ' {
		t.Errorf("terminal shows %q at (0, 0) after clear, expected space", got)
	}
}

func TestDrawStringClipsAtRightEdge(t *testing.T) {
	buf, backend := newTestBuffer(t, 10, 5)

	// 5 runes starting at x=8 on a width-10 buffer: only 2 fit.
	buf.DrawString(8, 2, "hello", core.ColorWhite, core.ColorDefault)

	n, err := buf.Flush()
	if err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Flush() wrote %d cells, expected 2 (string clipped at edge)", n)
	}
	if got := backend.GlyphAt(8, 2); got != 'h' {
		t.Errorf("terminal shows %q at (8, 2), expected 'h'", got)
	}
	if got := backend.GlyphAt(9, 2); got != 'e' {
		t.Errorf("terminal shows %q at (9, 2), expected 'e'", got)
	}
}

func TestRedrawIdenticalCellCostsNothing(t *testing.T) {
	buf, _ := newTestBuffer(t, 10, 5)
	cell := core.NewCell('Z', core.ColorCyan, core.ColorDefault)

	if err := buf.DrawCell(4, 4, cell); err != nil {
		t.Fatalf("DrawCell() failed: %v", err)
	}
	if _, err := buf.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}

	// Draw the same cell again; it matches the front buffer, so the diff
	// finds nothing to emit.
	if err := buf.DrawCell(4, 4, cell); err != nil {
		t.Fatalf("DrawCell() failed: %v", err)
	}
	n, err := buf.Flush()
	if err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Flush() wrote %d cells for an identical redraw, expected 0", n)
	}
}
