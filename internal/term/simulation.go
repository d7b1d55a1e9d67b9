package term

import (
	"github.com/gdamore/tcell/v2"
)

// Simulation-only helpers used by tests. Each panics when the backend was
// opened against a real terminal.

// InjectKey posts a key event to the simulated terminal.
func (b *Backend) InjectKey(key tcell.Key, r rune, mod tcell.ModMask) {
	b.simulation().InjectKey(key, r, mod)
}

// InjectMouse posts a mouse event to the simulated terminal.
func (b *Backend) InjectMouse(x, y int, buttons tcell.ButtonMask, mod tcell.ModMask) {
	b.simulation().InjectMouse(x, y, buttons, mod)
}

// GlyphAt returns the rune currently displayed at (x, y) on the simulated
// terminal, or a space when the position is out of range.
func (b *Backend) GlyphAt(x, y int) rune {
	cells, w, h := b.simulation().GetContents()
	if x < 0 || x >= w || y < 0 || y >= h {
		return ' '
	}
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func (b *Backend) simulation() tcell.SimulationScreen {
	if b.sim == nil {
		panic("term: backend is not a simulation screen")
	}
	return b.sim
}
