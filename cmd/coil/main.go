// coil is a terminal game engine with a few bundled demo games.
//
// Usage:
//
//	coil list             - List available games
//	coil play <game>      - Play a game
//	coil scores <game>    - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>        - Fixed simulation rate (default from config: 60)
//	--max-frame-time    - Per-iteration real-time cap (e.g. 50ms)
//	--input <strategy>  - nonblocking, framebudgeted, or a duration
//	--config <path>     - Path to a custom engine config YAML
//	--db <path>         - Scores database path (default: ~/.coil/scores.db)
//	--seed <value>      - RNG seed for reproducible runs
//	--debug             - Write engine diagnostics to ~/.coil/coil.log
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vialkov/coil/internal/games/echo"
	_ "github.com/vialkov/coil/internal/games/life"
	_ "github.com/vialkov/coil/internal/games/snake"
)

var (
	// Global flags
	flagFPS          int
	flagMaxFrameTime string
	flagInput        string
	flagConfig       string
	flagDBPath       string
	flagSeed         int64
	flagDebug        bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "coil",
	Short: "Coil - a fixed-timestep terminal game engine",
	Long: `Coil drives terminal games through a fixed-timestep loop with a
diff-based cell renderer: only the characters that changed since the last
frame are redrawn.

Available commands:
  list     - Show all bundled games
  play     - Play a game
  scores   - View high scores

Examples:
  coil list
  coil play life
  coil play snake --fps 120
  coil scores snake`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Fixed simulation rate (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagMaxFrameTime, "max-frame-time", "", "Per-iteration real-time cap, e.g. 50ms")
	rootCmd.PersistentFlags().StringVar(&flagInput, "input", "", "Input strategy: nonblocking, framebudgeted, or a duration")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom engine config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.coil/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write engine diagnostics to ~/.coil/coil.log")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the engine logger. The loop runs inside the alternate
// screen, so diagnostics go to a file rather than stderr; without --debug
// they are discarded entirely.
func newLogger() *log.Logger {
	if !flagDebug {
		return log.New(io.Discard)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard)
	}
	logPath := filepath.Join(home, ".coil", "coil.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return log.New(io.Discard)
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "coil",
	})
	logger.SetLevel(log.DebugLevel)
	return logger
}
