package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vialkov/coil/internal/registry"
	"github.com/vialkov/coil/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Args:  cobra.ExactArgs(1),
	Run:   runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading scores: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Printf("No scores recorded for %q yet.\n", gameID)
		return
	}

	fmt.Printf("Top scores for %s:\n", gameID)
	for i, e := range entries {
		fmt.Printf("  %2d. %6d   %s\n", i+1, e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
	}
}
