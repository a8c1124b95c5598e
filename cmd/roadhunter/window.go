package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadhunter/internal/logging"
	"github.com/vovakirdan/roadhunter/internal/platform/gfx"
	"github.com/vovakirdan/roadhunter/internal/platform/tui"
	"github.com/vovakirdan/roadhunter/internal/storage"
)

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Start a run in a desktop window instead of the terminal.
The window shows the same playfield and uses the same controls as
'roadhunter play', with real key releases for smoother steering.

Examples:
  roadhunter window
  roadhunter window hunter_classic --difficulty easy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	addGameFlags(windowCmd)
}

func runWindow(_ *cobra.Command, args []string) error {
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

	logger.Info("starting windowed run", "game", gameID, "difficulty", flagDifficulty)
	return gfx.Run(game, runtimeConfig(), windowOptions(logger, store))
}

func windowOptions(logger *log.Logger, store *storage.Store) gfx.Options {
	return gfx.Options{
		Store:      store,
		Audio:      openAudio(logger),
		Logger:     logger,
		Difficulty: flagDifficulty,
		Record:     !flagNoRecord,
		Music:      flagMusic,
	}
}
