package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/vialkov/coil/internal/config"
	"github.com/vialkov/coil/internal/engine"
	"github.com/vialkov/coil/internal/input"
	"github.com/vialkov/coil/internal/registry"
	"github.com/vialkov/coil/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Common controls:
  Arrows/hjkl  - Move (snake)
  Mouse        - Toggle cells (life)
  Space        - Pause (life)
  P            - Pause (snake)
  R            - Restart (after game over)
  Q/Esc/Ctrl+C - Quit

Examples:
  coil play life
  coil play snake --seed 42
  coil play snake --input framebudgeted`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'coil list' to see available games.")
		os.Exit(1)
	}

	cfg, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := registry.Create(gameID, cfg.ScreenW, cfg.ScreenH, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger()

	// Open score storage; the game still works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	runErr := engine.NewGame(game).
		WithConfig(cfg).
		Run(engine.WithLogger(logger))

	if store != nil {
		if score := game.Score(); score > 0 {
			if _, saveErr := store.SaveScore(game.ID(), score); saveErr != nil {
				logger.Warn("could not save score", "error", saveErr)
			} else {
				fmt.Printf("%s: scored %d\n", game.Title(), score)
			}
		}
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// buildConfig layers CLI flags over the loaded config file and the probed
// terminal size.
func buildConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if w, h, termErr := xterm.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	if flagFPS != 0 {
		cfg.TargetFPS = flagFPS
	}
	if flagMaxFrameTime != "" {
		d, parseErr := time.ParseDuration(flagMaxFrameTime)
		if parseErr != nil {
			return cfg, fmt.Errorf("bad --max-frame-time: %w", parseErr)
		}
		cfg.MaxFrameTime = d
	}
	if flagInput != "" {
		strategy, parseErr := input.ParseStrategy(flagInput)
		if parseErr != nil {
			return cfg, parseErr
		}
		cfg.Input = strategy
	}

	return cfg, cfg.Validate()
}
