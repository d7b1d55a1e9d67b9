// Package core provides fundamental value types for the engine.
// It contains no terminal or rendering dependencies to keep game logic
// pure and testable.
package core

// Cell is a single character cell with foreground and background colors.
// Cells are plain values and compare with ==; the renderer relies on that
// structural equality to decide which cells changed between frames.
type Cell struct {
	Glyph rune
	Fg    Color
	Bg    Color
}

// NewCell creates a cell with the given glyph and colors.
func NewCell(glyph rune, fg, bg Color) Cell {
	return Cell{Glyph: glyph, Fg: fg, Bg: bg}
}

// Blank returns the empty cell used to clear buffers: a space in the
// terminal's default colors.
func Blank() Cell {
	return Cell{Glyph: ' ', Fg: ColorDefault, Bg: ColorDefault}
}
