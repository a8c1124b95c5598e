package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadhunter/internal/logging"
	"github.com/vovakirdan/roadhunter/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start menu with mode, difficulty and replays",
	Long: `Start Road Hunter in interactive menu mode.

Pick a mode and difficulty, play, and return to the menu when the run
is over. Recorded runs can be browsed and watched from the menu.

Controls:
  Up/Down/j/k     - Navigate
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Start the selected mode
  M               - Toggle music
  Tab             - Replay browser
  Q               - Quit

Examples:
  roadhunter menu
  roadhunter menu --difficulty hard
  roadhunter menu --fps 30`,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := checkDifficulty(); err != nil {
		return err
	}

	logger, closer, err := openLogger(logging.DefaultFile, "")
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	engine := openAudio(logger)

	cfg := runtimeConfig()
	difficulty := flagDifficulty
	music := flagMusic

	opts := func() tui.Options {
		return tui.Options{
			Store:      store,
			Audio:      engine,
			Logger:     logger,
			Difficulty: difficulty,
			Record:     !flagNoRecord,
			Music:      music,
		}
	}

	for {
		menuResult, err := tui.RunMenu(cfg, difficulty, music, store != nil)
		if err != nil {
			return err
		}

		// Keep size changes, but every run starts from the flag seed
		cfg.ScreenW, cfg.ScreenH = menuResult.Config.ScreenW, menuResult.Config.ScreenH
		difficulty = menuResult.Difficulty
		music = menuResult.Music

		if menuResult.Quit {
			return nil
		}

		var result tui.Result
		if menuResult.WantsReplays {
			replays, err := tui.RunReplays(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if replays.Watch == nil {
				if replays.GoBack {
					continue
				}
				return nil
			}
			result, err = tui.RunReplay(*replays.Watch, cfg, opts())
			if err != nil {
				return fmt.Errorf("watching replay %d: %w", replays.Watch.ID, err)
			}
		} else {
			game, err := tui.CreateGame(menuResult.GameID, flagConfig, difficulty)
			if err != nil {
				return fmt.Errorf("cannot create game: %w", err)
			}
			logger.Info("starting run", "game", menuResult.GameID, "difficulty", difficulty)
			result, err = tui.Run(game, cfg, opts())
			if err != nil {
				return fmt.Errorf("running game: %w", err)
			}
		}

		cfg.ScreenW, cfg.ScreenH = result.Config.ScreenW, result.Config.ScreenH
		if !result.BackToMenu {
			return nil
		}
	}
}
