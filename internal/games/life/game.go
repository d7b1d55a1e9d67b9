// Package life implements Conway's Game of Life as an engine demo.
// Cells can be toggled with the mouse and the simulation paused with space.
package life

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/vialkov/coil/internal/core"
	"github.com/vialkov/coil/internal/engine"
	"github.com/vialkov/coil/internal/registry"
	"github.com/vialkov/coil/internal/render"
	"github.com/vialkov/coil/internal/term"
)

// generationInterval is the simulated time between generations, in seconds.
// The board evolves at 10 generations per second regardless of the loop's
// tick rate.
const generationInterval = 0.1

// spawnChance is the probability that a cell starts alive.
const spawnChance = 0.1

var aliveCell = core.NewCell('█', core.ColorGreen, core.ColorDefault)

func init() {
	registry.Register("life", "Game of Life", func(width, height int, seed int64) registry.Game {
		return New(width, height, seed)
	})
}

// Grid is the life board. Cells outside the grid count as dead.
type Grid struct {
	width  int
	height int
	cells  []bool
}

// NewGrid creates a board randomly seeded with live cells.
func NewGrid(width, height int, rng *rand.Rand) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
	for i := range g.cells {
		g.cells[i] = rng.Float64() < spawnChance
	}
	return g
}

// Get reports whether the cell at (x, y) is alive.
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[y*g.width+x]
}

// Set changes the cell at (x, y); out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y*g.width+x] = alive
}

// Neighbors counts the live cells around (x, y).
func (g *Grid) Neighbors(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Get(x+dx, y+dy) {
				count++
			}
		}
	}
	return count
}

// Step computes the next generation into a fresh cell slice.
func (g *Grid) Step() {
	next := make([]bool, len(g.cells))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			n := g.Neighbors(x, y)
			alive := g.Get(x, y)
			next[y*g.width+x] = n == 3 || (alive && n == 2)
		}
	}
	g.cells = next
}

// Game composes the board and a pause overlay in a Container: the overlay
// sees events first and paints last.
type Game struct {
	*engine.Container
	board *board
	pause *pauseOverlay
}

// New creates a life game filling the given screen.
func New(width, height int, seed int64) *Game {
	pause := newPauseOverlay(width, height)
	b := &board{
		grid:  NewGrid(width, height, rand.New(rand.NewSource(seed))),
		pause: pause,
	}
	return &Game{
		Container: engine.NewContainer(b, pause),
		board:     b,
		pause:     pause,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "life" }

// Title returns the display name.
func (g *Game) Title() string { return "Game of Life" }

// Score returns the number of generations simulated.
func (g *Game) Score() int { return g.board.generation }

// board runs the simulation and owns the exit keys. Whether it is paused is
// decided by the overlay it shares the screen with.
type board struct {
	grid       *Grid
	pause      *pauseOverlay
	elapsed    float64
	generation int
}

// Update advances the board one generation per interval while not paused.
func (b *board) Update(dt float64) {
	if b.pause.paused {
		return
	}
	b.elapsed += dt
	for b.elapsed >= generationInterval {
		b.grid.Step()
		b.generation++
		b.elapsed -= generationInterval
	}
}

// OnEvent toggles cells with the mouse and exits on Esc, q or Ctrl+C.
func (b *board) OnEvent(ev term.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return true
		}
	case *tcell.EventMouse:
		if ev.Buttons()&(tcell.Button1|tcell.Button2|tcell.Button3) != 0 {
			x, y := ev.Position()
			b.grid.Set(x, y, !b.grid.Get(x, y))
		}
	}
	return false
}

// Render draws live cells as green blocks. Cells falling outside the buffer
// are skipped; one bad cell must not cost the rest of the frame.
func (b *board) Render(r render.Renderer) {
	for y := 0; y < b.grid.height; y++ {
		for x := 0; x < b.grid.width; x++ {
			if b.grid.Get(x, y) {
				_ = r.DrawCell(x, y, aliveCell)
			}
		}
	}
}

// pauseOverlay is the topmost child node: it freezes the simulation and
// draws a banner while active.
type pauseOverlay struct {
	width  int
	height int
	paused bool
}

func newPauseOverlay(width, height int) *pauseOverlay {
	return &pauseOverlay{width: width, height: height}
}

func (p *pauseOverlay) Update(dt float64) {}

func (p *pauseOverlay) OnEvent(ev term.Event) bool {
	if key, ok := ev.(*tcell.EventKey); ok {
		if key.Key() == tcell.KeyRune && key.Rune() == ' ' {
			p.paused = !p.paused
		}
	}
	return false
}

func (p *pauseOverlay) Render(r render.Renderer) {
	if !p.paused {
		return
	}
	text := "Paused. Press Space to Resume."
	x := core.Clamp(p.width/2-len(text)/2, 0, p.width-1)
	r.DrawString(x, p.height/2, text, core.ColorWhite, core.ColorBlue)
}
