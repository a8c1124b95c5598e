package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadhunter/internal/config"
	"github.com/vovakirdan/roadhunter/internal/core"
	"github.com/vovakirdan/roadhunter/internal/platform/tui"
	"github.com/vovakirdan/roadhunter/internal/replay"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the game config",
	Long: `Print game configuration as YAML.

Config files are looked up in this order:
  1. --config <path>
  2. ~/.roadhunter/configs/hunter.yaml
  3. ./configs/hunter.yaml
  4. built-in defaults

Examples:
  roadhunter config defaults > hunter.yaml
  roadhunter config dump --difficulty hard
  roadhunter config dump hunter_classic --config ./hunter.yaml`,
}

var configDefaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the built-in config",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}

var configDumpCmd = &cobra.Command{
	Use:   "dump [mode]",
	Short: "Print the effective config for a mode and difficulty",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigDump,
}

func init() {
	configDumpCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configDumpCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard, fixed")

	configCmd.AddCommand(configDefaultsCmd)
	configCmd.AddCommand(configDumpCmd)
}

func runConfigDump(_ *cobra.Command, args []string) error {
	gameID, err := gameIDFromArgs(args)
	if err != nil {
		return err
	}

	game, err := tui.CreateGame(gameID, flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	game.Reset(core.DefaultConfig())

	c, ok := game.(replay.Configurable)
	if !ok {
		return fmt.Errorf("mode %q has no config", gameID)
	}
	data, err := config.Marshal(c.Config())
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
