// Package echo is the smallest possible engine demo: it prints the last key
// pressed. Useful for checking that a terminal delivers the keys you expect.
package echo

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vialkov/coil/internal/core"
	"github.com/vialkov/coil/internal/registry"
	"github.com/vialkov/coil/internal/render"
	"github.com/vialkov/coil/internal/term"
)

func init() {
	registry.Register("echo", "Key Echo", func(width, height int, seed int64) registry.Game {
		return New()
	})
}

// Game shows the most recent key press.
type Game struct {
	message string
}

// New creates an echo game.
func New() *Game {
	return &Game{message: "Press any key to echo it. Press Esc to exit."}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "echo" }

// Title returns the display name.
func (g *Game) Title() string { return "Key Echo" }

// Score returns 0; echo has no scoring.
func (g *Game) Score() int { return 0 }

// Update does nothing; echo is purely event driven.
func (g *Game) Update(dt float64) {}

// OnEvent records the pressed key, exiting on Esc or Ctrl+C.
func (g *Game) OnEvent(ev term.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		g.message = fmt.Sprintf("Key pressed: %c", key.Rune())
	default:
		g.message = fmt.Sprintf("Key pressed: %s", key.Name())
	}
	return false
}

// Render draws the message in the top-left corner.
func (g *Game) Render(r render.Renderer) {
	r.DrawString(0, 0, g.message, core.ColorBlack, core.ColorWhite)
}
