package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vialkov/coil/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available games",
	Run: func(cmd *cobra.Command, args []string) {
		games := registry.List()
		if len(games) == 0 {
			fmt.Println("No games registered.")
			return
		}

		fmt.Println("Available games:")
		for _, g := range games {
			fmt.Printf("  %-10s %s\n", g.ID, g.Title)
		}
		fmt.Println("\nPlay with: coil play <game>")
	},
}
