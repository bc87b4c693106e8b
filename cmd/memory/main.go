// memory is a pattern recall game for the terminal: a grid flashes a
// pattern, then you click it back from memory.
//
// Usage:
//
//	memory                   - Play (same as "memory play")
//	memory play [game]       - Play a game (default: memory)
//	memory list              - List available games
//	memory config            - Print the effective game config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--log-file <path>    - Log destination (default: ~/.memory/memory.log)
//	--log-level <level>  - debug, info, warn or error
//
// Every flag can also come from a MEMORY_* environment variable; flags win.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/tui-memory/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/tui-memory/internal/games/memory"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memory",
	Short: "Memory Grid - recall patterns in your terminal",
	Long: `Memory Grid shows a random pattern on a grid for a few seconds.
Click the cells that were lit before time runs out. Three wrong
clicks in a round end the game; clear rounds to level up, and the
grid grows from 4x4 to 8x8 at level 4.

Available commands:
  play     - Play a game directly
  list     - Show all available games
  config   - Print the effective configuration

Examples:
  memory
  memory play --difficulty hard
  memory play --seed 42 --fps 30
  memory config --difficulty easy`,
	PersistentPreRunE: applyEnv,
	Args:              cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runPlay(cmd, nil)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.memory/memory.log", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// The root command plays too, so it shares the play flags.
	addPlayFlags(rootCmd.Flags())

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnv fills every flag the user did not set from MEMORY_* variables.
func applyEnv(cmd *cobra.Command, args []string) error {
	e, err := config.ParseEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if unset(flags, "fps") {
		flagFPS = e.FPS
	}
	if unset(flags, "seed") {
		flagSeed = e.Seed
	}
	if unset(flags, "log-file") {
		flagLogFile = e.LogFile
	}
	if unset(flags, "log-level") {
		flagLogLevel = e.LogLevel
	}
	if unset(flags, "config") {
		flagConfig = e.ConfigPath
	}
	if unset(flags, "difficulty") {
		flagDifficulty = e.Difficulty
	}
	if unset(flags, "bell") {
		flagBell = e.Bell
	}

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return nil
}

// unset reports whether a flag exists on the command but was not given.
func unset(flags *pflag.FlagSet, name string) bool {
	f := flags.Lookup(name)
	return f != nil && !f.Changed
}
