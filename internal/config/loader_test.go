package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search path only finds what a test writes.
func isolate(t *testing.T) (home, wd string) {
	t.Helper()
	home = t.TempDir()
	wd = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(wd)
	return home, wd
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	isolate(t)

	cfg, source, err := LoadMemory("")
	if err != nil {
		t.Fatalf("LoadMemory() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, want %q", source, SourceEmbedded)
	}
	if cfg != DefaultMemoryConfig() {
		t.Errorf("embedded YAML = %+v, want %+v", cfg, DefaultMemoryConfig())
	}

	parsed, err := parseMemory(DefaultYAML())
	if err != nil {
		t.Fatalf("DefaultYAML() does not parse: %v", err)
	}
	if parsed != DefaultMemoryConfig() {
		t.Errorf("DefaultYAML() = %+v, want %+v", parsed, DefaultMemoryConfig())
	}
}

func TestLoadMemorySearchOrder(t *testing.T) {
	home, wd := isolate(t)

	writeFile(t, filepath.Join(wd, "configs", "memory.yaml"), "rules:\n  skips: 7\n")
	cfg, source, err := LoadMemory("")
	if err != nil {
		t.Fatalf("LoadMemory() failed: %v", err)
	}
	if source != SourceLocal || cfg.Rules.Skips != 7 {
		t.Errorf("local config not used: source=%q skips=%d", source, cfg.Rules.Skips)
	}

	// User config wins over local
	writeFile(t, filepath.Join(home, ".memory", "configs", "memory.yaml"), "rules:\n  skips: 9\n")
	cfg, source, err = LoadMemory("")
	if err != nil {
		t.Fatalf("LoadMemory() failed: %v", err)
	}
	if source != SourceUser || cfg.Rules.Skips != 9 {
		t.Errorf("user config not used: source=%q skips=%d", source, cfg.Rules.Skips)
	}

	// Custom path wins over everything
	custom := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, custom, "rules:\n  skips: 1\n")
	cfg, source, err = LoadMemory(custom)
	if err != nil {
		t.Fatalf("LoadMemory(custom) failed: %v", err)
	}
	if source != SourceCustom || cfg.Rules.Skips != 1 {
		t.Errorf("custom config not used: source=%q skips=%d", source, cfg.Rules.Skips)
	}
}

func TestLoadMemoryPartialKeepsDefaults(t *testing.T) {
	isolate(t)
	custom := filepath.Join(t.TempDir(), "partial.yaml")
	writeFile(t, custom, "timing:\n  reveal_ticks: 90\n")

	cfg, _, err := LoadMemory(custom)
	if err != nil {
		t.Fatalf("LoadMemory() failed: %v", err)
	}

	want := DefaultMemoryConfig()
	want.Timing.RevealTicks = 90
	if cfg != want {
		t.Errorf("partial config = %+v, want %+v", cfg, want)
	}
}

func TestLoadMemoryErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed yaml", "grid: [", "failed to parse"},
		{"invalid values", "grid:\n  initial_size: 0\n", "grid.initial_size"},
		{"board too small", "board:\n  pixel_size: 4\n", "board.pixel_size"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			writeFile(t, path, tc.content)

			_, _, err := LoadMemory(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}

	if _, _, err := LoadMemory(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := DefaultMemoryConfig()
	cfg.Rules.MaxErrors = 0
	cfg.Rules.Skips = -1
	cfg.Timing.TimeLimitTicks = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	for _, want := range []string{"rules.max_errors", "rules.skips", "timing.time_limit_ticks"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}

	if err := DefaultMemoryConfig().Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestApplyMemoryPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		check  func(t *testing.T, cfg MemoryConfig)
	}{
		{DifficultyEasy, func(t *testing.T, cfg MemoryConfig) {
			if cfg.Rules.MaxErrors != 5 || cfg.Rules.Skips != 3 {
				t.Errorf("easy rules = %+v", cfg.Rules)
			}
			if cfg.Timing.TimeLimitTicks <= DefaultMemoryConfig().Timing.TimeLimitTicks {
				t.Error("easy should extend the time limit")
			}
		}},
		{DifficultyNormal, func(t *testing.T, cfg MemoryConfig) {
			if cfg != DefaultMemoryConfig() {
				t.Errorf("normal should not change defaults, got %+v", cfg)
			}
		}},
		{DifficultyHard, func(t *testing.T, cfg MemoryConfig) {
			if cfg.Rules.MaxErrors != 2 || cfg.Rules.Skips != 1 {
				t.Errorf("hard rules = %+v", cfg.Rules)
			}
			if cfg.Timing.RevealTicks >= DefaultMemoryConfig().Timing.RevealTicks {
				t.Error("hard should shorten the reveal")
			}
		}},
		{DifficultyFixed, func(t *testing.T, cfg MemoryConfig) {
			if cfg.Grid.AdvanceLevel != 0 {
				t.Errorf("fixed should disable growth, advance_level = %d", cfg.Grid.AdvanceLevel)
			}
		}},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultMemoryConfig()
			ApplyMemoryPreset(&cfg, tc.preset)
			tc.check(t, cfg)
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s produced invalid config: %v", tc.preset, err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v; want normal", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("brutal"); err == nil {
		t.Error("ParsePreset(brutal) should fail")
	}
}

func TestMarshalRoundTripsThroughLoader(t *testing.T) {
	isolate(t)
	cfg := DefaultMemoryConfig()
	ApplyMemoryPreset(&cfg, DifficultyHard)

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "time_limit_ticks: 1200") {
		t.Errorf("YAML should use snake_case keys, got:\n%s", data)
	}

	path := filepath.Join(t.TempDir(), "hard.yaml")
	writeFile(t, path, string(data))
	loaded, _, err := LoadMemory(path)
	if err != nil {
		t.Fatalf("LoadMemory() failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("loaded = %+v, want %+v", loaded, cfg)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := isolate(t)

	got, err := ExpandPath("~/.memory/memory.log")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	if want := filepath.Join(home, ".memory", "memory.log"); got != want {
		t.Errorf("ExpandPath() = %q, want %q", got, want)
	}

	if got, _ := ExpandPath("/tmp/x"); got != "/tmp/x" {
		t.Errorf("absolute path should be unchanged, got %q", got)
	}
}
