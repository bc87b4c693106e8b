package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process settings that may come from the environment.
// Command-line flags take precedence over these values.
type Env struct {
	FPS        int    `env:"MEMORY_FPS" envDefault:"60"`
	Seed       int64  `env:"MEMORY_SEED" envDefault:"0"`
	ConfigPath string `env:"MEMORY_CONFIG"`
	Difficulty string `env:"MEMORY_DIFFICULTY"`
	LogFile    string `env:"MEMORY_LOG_FILE" envDefault:"~/.memory/memory.log"`
	LogLevel   string `env:"MEMORY_LOG_LEVEL" envDefault:"info"`
	Bell       bool   `env:"MEMORY_BELL" envDefault:"true"`
}

// ParseEnv loads Env from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("config: parse env: %w", err)
	}
	return e, nil
}
