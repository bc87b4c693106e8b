package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config sources reported by LoadMemory.
const (
	SourceCustom   = "custom"
	SourceUser     = "user"
	SourceLocal    = "local"
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadMemory loads the memory game configuration and reports where it came from.
// Search order: customPath -> ~/.memory/configs/memory.yaml -> ./configs/memory.yaml -> embedded default.
// Files may be partial; missing keys keep their default values.
func LoadMemory(customPath string) (MemoryConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		path, err := ExpandPath(customPath)
		if err != nil {
			return MemoryConfig{}, "", err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return MemoryConfig{}, "", fmt.Errorf("failed to read config %s: %w", path, err)
		}
		cfg, err := parseMemory(data)
		if err != nil {
			return MemoryConfig{}, "", fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, SourceCustom, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("memory.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseMemory(data); err == nil {
				return cfg, SourceUser, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "memory.yaml")); err == nil {
		if cfg, err := parseMemory(data); err == nil {
			return cfg, SourceLocal, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg, err := parseMemory(defaultMemoryYAML)
	if err != nil {
		return DefaultMemoryConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, cfg.Validate()
}

// parseMemory decodes YAML on top of the built-in defaults.
func parseMemory(data []byte) (MemoryConfig, error) {
	cfg := DefaultMemoryConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MemoryConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".memory", "configs", filename)
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// ApplyMemoryPreset modifies the config based on a difficulty preset.
func ApplyMemoryPreset(cfg *MemoryConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.RevealTicks = 420
		cfg.Timing.TimeLimitTicks = 2700
		cfg.Rules.MaxErrors = 5
		cfg.Rules.Skips = 3
	case DifficultyHard:
		cfg.Timing.RevealTicks = 180
		cfg.Timing.TimeLimitTicks = 1200
		cfg.Rules.MaxErrors = 2
		cfg.Rules.Skips = 1
	case DifficultyFixed:
		cfg.Grid.AdvanceLevel = 0
	}
}

// Marshal renders a config as YAML.
func Marshal(cfg MemoryConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
