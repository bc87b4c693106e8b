package config

import (
	_ "embed"
)

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

// DefaultMemoryConfig returns the built-in memory game configuration.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Grid: MemoryGrid{
			InitialSize:  4,
			AdvancedSize: 8,
			AdvanceLevel: 4,
		},
		Board: MemoryBoard{
			PixelSize: 128,
		},
		Timing: MemoryTiming{
			RevealTicks:    300,  // 5 seconds at 60fps
			TimeLimitTicks: 1800, // 30 seconds at 60fps
			HighlightTicks: 10,
		},
		Rules: MemoryRules{
			MaxErrors: 3,
			Skips:     2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMemoryYAML
}
