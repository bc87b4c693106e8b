package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows the registered games and the difficulty presets they accept.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	configurable := false
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
		if game, err := registry.Create(g.ID); err == nil {
			if _, ok := game.(registry.Configurable); ok {
				configurable = true
			}
		}
	}

	if configurable {
		fmt.Println()
		fmt.Println("Difficulties:")
		for _, p := range config.Presets {
			fmt.Printf("  %-7s %s\n", p, p.Describe())
		}
	}

	fmt.Println()
	fmt.Println("Run 'memory play <id> --difficulty <name>' to play a game.")
}
