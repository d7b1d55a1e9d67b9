package core

import "testing"

func TestCellEquality(t *testing.T) {
	a := NewCell('x', ColorRed, ColorDefault)
	b := NewCell('x', ColorRed, ColorDefault)

	if a != b {
		t.Error("cells with identical fields should compare equal")
	}

	// Any single field difference breaks equality; the renderer's diff
	// depends on this.
	if a == NewCell('y', ColorRed, ColorDefault) {
		t.Error("cells with different glyphs should not compare equal")
	}
	if a == NewCell('x', ColorGreen, ColorDefault) {
		t.Error("cells with different foregrounds should not compare equal")
	}
	if a == NewCell('x', ColorRed, ColorBlue) {
		t.Error("cells with different backgrounds should not compare equal")
	}
}

func TestBlank(t *testing.T) {
	b := Blank()

	if b.Glyph != ' ' {
		t.Errorf("Blank glyph = %q, expected space", b.Glyph)
	}
	if b.Fg != ColorDefault || b.Bg != ColorDefault {
		t.Error("Blank should use default colors")
	}
}
