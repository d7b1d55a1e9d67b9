// Package snake implements a classic snake demo on the engine's fixed
// timestep. The snake speeds up as it eats; vi keys work.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/vialkov/coil/internal/core"
	"github.com/vialkov/coil/internal/registry"
	"github.com/vialkov/coil/internal/render"
	"github.com/vialkov/coil/internal/term"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Point represents a 2D coordinate on the board.
type Point struct {
	X, Y int
}

const (
	// baseInterval is the simulated time between moves at score zero.
	baseInterval = 0.12
	// minInterval caps how fast the snake can get.
	minInterval = 0.05
	// speedupPerFood shortens the move interval with every food eaten.
	speedupPerFood = 0.002
	// hudHeight reserves the top row for the score line.
	hudHeight = 1
)

func init() {
	registry.Register("snake", "Snake", func(width, height int, seed int64) registry.Game {
		return New(width, height, seed)
	})
}

// Game holds the full snake state.
type Game struct {
	width  int
	height int
	seed   int64
	rng    *rand.Rand

	snake     []Point // Head at index 0
	direction Direction
	nextDir   Direction // Buffered direction for the next move
	growing   bool      // If true, don't remove tail on next move
	food      Point

	elapsed  float64
	score    int
	paused   bool
	gameOver bool
}

// New creates a snake game for the given screen.
func New(width, height int, seed int64) *Game {
	g := &Game{width: width, height: height, seed: seed}
	g.reset()
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

func (g *Game) reset() {
	g.rng = rand.New(rand.NewSource(g.seed))
	g.elapsed = 0
	g.score = 0
	g.paused = false
	g.gameOver = false
	g.growing = false
	g.direction = DirRight
	g.nextDir = DirRight

	cx, cy := g.width/2, g.height/2
	g.snake = []Point{{cx, cy}, {cx - 1, cy}, {cx - 2, cy}}
	g.spawnFood()
}

// board returns the playable area inside the border walls.
func (g *Game) board() core.Rect {
	return core.NewRect(1, hudHeight+1, g.width-2, g.height-hudHeight-2)
}

func (g *Game) moveInterval() float64 {
	return core.Clamp(baseInterval-float64(g.score)*speedupPerFood, minInterval, baseInterval)
}

func (g *Game) occupied(p Point) bool {
	for _, s := range g.snake {
		if s == p {
			return true
		}
	}
	return false
}

func (g *Game) spawnFood() {
	b := g.board()
	for {
		p := Point{
			X: b.X + g.rng.Intn(b.W),
			Y: b.Y + g.rng.Intn(b.H),
		}
		if !g.occupied(p) {
			g.food = p
			return
		}
	}
}

// Update moves the snake once per move interval.
func (g *Game) Update(dt float64) {
	if g.paused || g.gameOver {
		return
	}
	g.elapsed += dt
	for g.elapsed >= g.moveInterval() {
		g.elapsed -= g.moveInterval()
		g.move()
		if g.gameOver {
			return
		}
	}
}

func (g *Game) move() {
	g.direction = g.nextDir

	head := g.snake[0]
	switch g.direction {
	case DirRight:
		head.X++
	case DirLeft:
		head.X--
	case DirDown:
		head.Y++
	case DirUp:
		head.Y--
	}

	if !g.board().Contains(head.X, head.Y) || g.occupied(head) {
		g.gameOver = true
		return
	}

	g.snake = append([]Point{head}, g.snake...)
	if g.growing {
		g.growing = false
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}

	if head == g.food {
		g.score++
		g.growing = true
		g.spawnFood()
	}
}

// steer buffers a direction change, refusing immediate reversals.
func (g *Game) steer(d Direction) {
	opposite := map[Direction]Direction{
		DirRight: DirLeft,
		DirLeft:  DirRight,
		DirUp:    DirDown,
		DirDown:  DirUp,
	}
	if opposite[g.direction] == d {
		return
	}
	g.nextDir = d
}

// OnEvent maps keys to steering, pause, restart and quit.
func (g *Game) OnEvent(ev term.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		g.steer(DirUp)
	case tcell.KeyDown:
		g.steer(DirDown)
	case tcell.KeyLeft:
		g.steer(DirLeft)
	case tcell.KeyRight:
		g.steer(DirRight)
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q':
			return true
		case 'k', 'w':
			g.steer(DirUp)
		case 'j', 's':
			g.steer(DirDown)
		case 'h', 'a':
			g.steer(DirLeft)
		case 'l', 'd':
			g.steer(DirRight)
		case 'p':
			if !g.gameOver {
				g.paused = !g.paused
			}
		case 'r':
			if g.gameOver {
				g.seed = g.rng.Int63()
				g.reset()
			}
		}
	}
	return false
}

// Render draws the HUD, border, snake and food.
func (g *Game) Render(r render.Renderer) {
	hud := fmt.Sprintf(" Snake  Score: %d  (p pause, q quit)", g.score)
	r.DrawString(0, 0, hud, core.ColorBrightWhite, core.ColorDefault)

	g.renderBorder(r)

	// Food
	_ = r.DrawCell(g.food.X, g.food.Y, core.NewCell('●', core.ColorBrightRed, core.ColorDefault))

	// Snake, head brighter than body
	for i, p := range g.snake {
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
		}
		_ = r.DrawCell(p.X, p.Y, core.NewCell('█', color, core.ColorDefault))
	}

	if g.gameOver {
		g.banner(r, fmt.Sprintf(" Game over! Score: %d. Press r to restart. ", g.score))
	} else if g.paused {
		g.banner(r, " Paused. Press p to resume. ")
	}
}

func (g *Game) renderBorder(r render.Renderer) {
	b := g.board()
	wall := func(x, y int, glyph rune) {
		_ = r.DrawCell(x, y, core.NewCell(glyph, core.ColorGray, core.ColorDefault))
	}

	for x := b.X - 1; x <= b.Right(); x++ {
		wall(x, b.Y-1, '─')
		wall(x, b.Bottom(), '─')
	}
	for y := b.Y - 1; y <= b.Bottom(); y++ {
		wall(b.X-1, y, '│')
		wall(b.Right(), y, '│')
	}
	wall(b.X-1, b.Y-1, '┌')
	wall(b.Right(), b.Y-1, '┐')
	wall(b.X-1, b.Bottom(), '└')
	wall(b.Right(), b.Bottom(), '┘')
}

func (g *Game) banner(r render.Renderer, text string) {
	x := core.Clamp(g.width/2-len([]rune(text))/2, 0, g.width-1)
	r.DrawString(x, g.height/2, text, core.ColorBrightWhite, core.ColorBlue)
}
