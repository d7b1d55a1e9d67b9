package engine

import "github.com/vialkov/coil/internal/config"

// Game bundles a root node with the configuration needed to run it. It is a
// convenience wrapper for the common open-run-close sequence.
type Game struct {
	Node   Node
	Config config.Config
}

// NewGame creates a game around the node with the default configuration.
func NewGame(n Node) *Game {
	return &Game{Node: n, Config: config.Default()}
}

// WithConfig replaces the configuration and returns the game for chaining.
func (g *Game) WithConfig(cfg config.Config) *Game {
	g.Config = cfg
	return g
}

// Run builds a loop from the game's configuration and drives the node until
// it requests exit or an error aborts the run.
func (g *Game) Run(opts ...Option) error {
	loop, err := New(g.Config, opts...)
	if err != nil {
		return err
	}
	return loop.Run(g.Node)
}
