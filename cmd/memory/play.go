package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/platform/tui"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagBell       bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: memory).

Controls:
  Enter/Space  - Start
  Mouse click  - Reveal a cell
  S/Tab        - Skip the round (limited per game)
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options (a picker is shown when none is given):
  easy   - Longer reveal, 45s per round, 5 mistakes, 3 skips
  normal - 5s reveal, 30s per round, 3 mistakes, 2 skips
  hard   - Short reveal, 20s per round, 2 mistakes, 1 skip
  fixed  - Normal rules, the grid never grows

Examples:
  memory play
  memory play --difficulty easy
  memory play --config ./my-memory.yaml --bell=false`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd.Flags())
}

func addPlayFlags(fs *pflag.FlagSet) {
	fs.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	fs.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	fs.BoolVar(&flagBell, "bell", true, "Ring the terminal bell on a wrong click")
}

// configSourcer is implemented by games that report where their config came from.
type configSourcer interface {
	ConfigSource() string
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := memory.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'memory list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size early for the difficulty picker
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if c, ok := game.(registry.Configurable); ok {
		difficulty := flagDifficulty
		if difficulty == "" {
			preset, selErr := tui.RunDifficultySelector(game.Title(), cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				os.Exit(1)
			}
			// User pressed back or quit
			if preset == nil {
				return
			}
			difficulty = string(*preset)
		}

		if err := c.Configure(flagConfig, difficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		flagDifficulty = difficulty
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	source := "none"
	if s, ok := game.(configSourcer); ok {
		source = s.ConfigSource()
	}
	logger.Info("config loaded", "game", gameID, "source", source, "difficulty", flagDifficulty)

	runErr := tui.Run(game, cfg, tui.Options{
		Logger: logger,
		Bell:   flagBell,
	})
	if runErr != nil {
		logger.Error("game stopped", "error", runErr)
	}

	// Close the log before potential exit
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
