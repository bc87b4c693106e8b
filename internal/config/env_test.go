package config

import (
	"os"
	"testing"
)

func TestParseEnvDefaults(t *testing.T) {
	for _, key := range []string{"MEMORY_FPS", "MEMORY_SEED", "MEMORY_CONFIG", "MEMORY_DIFFICULTY", "MEMORY_LOG_FILE", "MEMORY_LOG_LEVEL", "MEMORY_BELL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	e, err := ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv() failed: %v", err)
	}
	if e.FPS != 60 || e.LogLevel != "info" || !e.Bell {
		t.Errorf("defaults not applied: %+v", e)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("MEMORY_FPS", "30")
	t.Setenv("MEMORY_SEED", "42")
	t.Setenv("MEMORY_DIFFICULTY", "hard")
	t.Setenv("MEMORY_BELL", "false")

	e, err := ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv() failed: %v", err)
	}
	if e.FPS != 30 || e.Seed != 42 || e.Difficulty != "hard" || e.Bell {
		t.Errorf("overrides not applied: %+v", e)
	}
}

func TestParseEnvInvalid(t *testing.T) {
	t.Setenv("MEMORY_FPS", "fast")

	if _, err := ParseEnv(); err == nil {
		t.Error("ParseEnv() should reject a non-numeric MEMORY_FPS")
	}
}
