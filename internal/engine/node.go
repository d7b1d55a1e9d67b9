// Package engine drives a game through a fixed-timestep loop: poll input,
// dispatch events, advance the simulation in whole frame-duration steps,
// then render a diffed frame to the terminal.
package engine

import (
	"github.com/vialkov/coil/internal/render"
	"github.com/vialkov/coil/internal/term"
)

// Node is the contract between the loop and game logic. The loop depends
// only on this interface, never on concrete games.
type Node interface {
	// Update advances the simulation by one fixed timestep, in seconds.
	// dt is always exactly 1/TargetFPS regardless of real frame jitter.
	Update(dt float64)

	// OnEvent handles one input event. Returning true asks the loop to
	// stop; subsequent events from the same batch are not delivered.
	OnEvent(ev term.Event) bool

	// Render draws the node into the renderer's back buffer. The buffer is
	// cleared before this call.
	Render(r render.Renderer)
}
