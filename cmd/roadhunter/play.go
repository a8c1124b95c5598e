package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadhunter/internal/games/hunter"
	"github.com/vovakirdan/roadhunter/internal/logging"
	"github.com/vovakirdan/roadhunter/internal/platform/tui"
	"github.com/vovakirdan/roadhunter/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal. The mode defaults to "hunter";
"hunter_classic" plays without power-ups and enemy fire.

Controls:
  Left/Right, A/D  - Steer
  Up/Down          - Speed up / slow down
  W/S              - Climb / descend
  Space            - Fire (starts the run)
  Enter            - Start
  P/Esc            - Pause
  R                - Restart (after game over)
  M                - Toggle music (start screen)
  B                - Back (start screen, paused or game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at the lowest level, more health
  normal - Start at 30% difficulty
  hard   - Start at 70% difficulty, less health
  fixed  - No progression, stays at the config's level

Every run is recorded to the replay database unless --no-record is set.

Examples:
  roadhunter play
  roadhunter play hunter_classic
  roadhunter play --difficulty hard --music
  roadhunter play --seed 42 --config ./my-hunter.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// gameIDFromArgs returns the requested mode, checking it is registered
// and that the difficulty flag is valid.
func gameIDFromArgs(args []string) (string, error) {
	if err := checkDifficulty(); err != nil {
		return "", err
	}
	if len(args) == 0 {
		return hunter.IDHunter, nil
	}
	if !registry.Exists(args[0]) {
		return "", fmt.Errorf("unknown mode %q (run 'roadhunter list' to see modes)", args[0])
	}
	return args[0], nil
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := gameIDFromArgs(args)
	if err != nil {
		return err
	}

	logger, closer, err := openLogger(logging.DefaultFile, "")
	if err != nil {
		return err
	}
	defer closer.Close()

	game, err := tui.CreateGame(gameID, flagConfig, flagDifficulty)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting run", "game", gameID, "difficulty", flagDifficulty, "seed", flagSeed)
	_, err = tui.Run(game, runtimeConfig(), tui.Options{
		Store:      store,
		Audio:      openAudio(logger),
		Logger:     logger,
		Difficulty: flagDifficulty,
		Record:     !flagNoRecord,
		Music:      flagMusic,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
