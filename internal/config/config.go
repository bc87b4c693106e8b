// Package config provides YAML-based game configuration loading and
// difficulty presets for the memory game.
package config

import (
	"errors"
	"fmt"
)

// MemoryConfig contains all configuration for the memory game.
type MemoryConfig struct {
	Grid   MemoryGrid   `yaml:"grid"`
	Board  MemoryBoard  `yaml:"board"`
	Timing MemoryTiming `yaml:"timing"`
	Rules  MemoryRules  `yaml:"rules"`
}

// MemoryGrid defines grid sizes and when the grid grows.
type MemoryGrid struct {
	InitialSize  int `yaml:"initial_size"`
	AdvancedSize int `yaml:"advanced_size"`
	AdvanceLevel int `yaml:"advance_level"` // 0 = never grow
}

// MemoryBoard defines the logical board used for pointer mapping.
type MemoryBoard struct {
	PixelSize int `yaml:"pixel_size"`
}

// MemoryTiming defines tick-based durations.
type MemoryTiming struct {
	RevealTicks    int `yaml:"reveal_ticks"`
	TimeLimitTicks int `yaml:"time_limit_ticks"`
	HighlightTicks int `yaml:"highlight_ticks"`
}

// MemoryRules defines the mistake and skip budgets.
type MemoryRules struct {
	MaxErrors int `yaml:"max_errors"`
	Skips     int `yaml:"skips"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{
	DifficultyEasy,
	DifficultyNormal,
	DifficultyHard,
	DifficultyFixed,
}

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// Describe returns a one-line summary of a preset for menus and help text.
func (p DifficultyPreset) Describe() string {
	switch p {
	case DifficultyEasy:
		return "Longer reveal, 45s per round, 5 mistakes, 3 skips"
	case DifficultyHard:
		return "Short reveal, 20s per round, 2 mistakes, 1 skip"
	case DifficultyFixed:
		return "Normal rules, the grid never grows"
	default:
		return "5s reveal, 30s per round, 3 mistakes, 2 skips"
	}
}

// Validate reports configuration values that would make the game unplayable.
func (c MemoryConfig) Validate() error {
	var errs []error

	if c.Grid.InitialSize < 1 {
		errs = append(errs, fmt.Errorf("grid.initial_size must be >= 1, got %d", c.Grid.InitialSize))
	}
	if c.Grid.AdvancedSize < 1 {
		errs = append(errs, fmt.Errorf("grid.advanced_size must be >= 1, got %d", c.Grid.AdvancedSize))
	}
	if c.Grid.AdvanceLevel < 0 {
		errs = append(errs, fmt.Errorf("grid.advance_level must be >= 0, got %d", c.Grid.AdvanceLevel))
	}
	largest := max(c.Grid.InitialSize, c.Grid.AdvancedSize)
	if c.Board.PixelSize < largest {
		errs = append(errs, fmt.Errorf("board.pixel_size must be >= largest grid size %d, got %d", largest, c.Board.PixelSize))
	}
	if c.Timing.RevealTicks < 1 {
		errs = append(errs, fmt.Errorf("timing.reveal_ticks must be >= 1, got %d", c.Timing.RevealTicks))
	}
	if c.Timing.TimeLimitTicks < 1 {
		errs = append(errs, fmt.Errorf("timing.time_limit_ticks must be >= 1, got %d", c.Timing.TimeLimitTicks))
	}
	if c.Timing.HighlightTicks < 0 {
		errs = append(errs, fmt.Errorf("timing.highlight_ticks must be >= 0, got %d", c.Timing.HighlightTicks))
	}
	if c.Rules.MaxErrors < 1 {
		errs = append(errs, fmt.Errorf("rules.max_errors must be >= 1, got %d", c.Rules.MaxErrors))
	}
	if c.Rules.Skips < 0 {
		errs = append(errs, fmt.Errorf("rules.skips must be >= 0, got %d", c.Rules.Skips))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid memory config: %w", err)
	}
	return nil
}
