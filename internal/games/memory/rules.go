package memory

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-memory/internal/config"
)

// Rules holds the tunables of a game session. Durations are in ticks.
type Rules struct {
	InitialGridSize  int
	AdvancedGridSize int
	AdvanceLevel     int // level at which the grid grows; 0 disables growth
	BoardPixelSize   int
	RevealTicks      int
	TimeLimitTicks   int
	HighlightTicks   int
	MaxErrors        int
	Skips            int
}

// DefaultRules returns the classic rules: 4×4 growing to 8×8 at level 4,
// 5s reveal, 30s to answer, 3 mistakes per round, 2 skips per game.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultMemoryConfig())
}

// RulesFromConfig converts a loaded configuration into session rules.
func RulesFromConfig(cfg config.MemoryConfig) Rules {
	return Rules{
		InitialGridSize:  cfg.Grid.InitialSize,
		AdvancedGridSize: cfg.Grid.AdvancedSize,
		AdvanceLevel:     cfg.Grid.AdvanceLevel,
		BoardPixelSize:   cfg.Board.PixelSize,
		RevealTicks:      cfg.Timing.RevealTicks,
		TimeLimitTicks:   cfg.Timing.TimeLimitTicks,
		HighlightTicks:   cfg.Timing.HighlightTicks,
		MaxErrors:        cfg.Rules.MaxErrors,
		Skips:            cfg.Rules.Skips,
	}
}

// Validate rejects rules that violate construction preconditions.
func (r Rules) Validate() error {
	switch {
	case r.InitialGridSize < 1 || r.AdvancedGridSize < 1:
		return fmt.Errorf("memory: grid sizes must be >= 1, got %d and %d", r.InitialGridSize, r.AdvancedGridSize)
	case r.AdvanceLevel < 0:
		return errors.New("memory: advance level must be >= 0")
	case r.BoardPixelSize < max(r.InitialGridSize, r.AdvancedGridSize):
		return fmt.Errorf("memory: board pixel size %d is smaller than the grid", r.BoardPixelSize)
	case r.RevealTicks < 1 || r.TimeLimitTicks < 1:
		return errors.New("memory: reveal and time limit must be at least one tick")
	case r.HighlightTicks < 0:
		return errors.New("memory: highlight duration must be >= 0")
	case r.MaxErrors < 1:
		return errors.New("memory: max errors must be >= 1")
	case r.Skips < 0:
		return errors.New("memory: skips must be >= 0")
	}
	return nil
}
