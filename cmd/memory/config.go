package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Load the memory game config the same way "play" does, apply the
difficulty preset, and print the result as YAML. Save the output to
~/.memory/configs/memory.yaml or ./configs/memory.yaml to customise it.

Examples:
  memory config
  memory config --difficulty hard
  memory config --config ./my-memory.yaml
  memory config --defaults > ~/.memory/configs/memory.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config file, comments included")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, source, err := config.LoadMemory(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyMemoryPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "# source: %s, difficulty: %s\n", source, preset)
	_, err = os.Stdout.Write(data)
	return err
}
