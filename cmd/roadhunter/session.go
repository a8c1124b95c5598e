package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/roadhunter/internal/audio"
	"github.com/vovakirdan/roadhunter/internal/core"
	"github.com/vovakirdan/roadhunter/internal/logging"
	"github.com/vovakirdan/roadhunter/internal/platform/tui"
	"github.com/vovakirdan/roadhunter/internal/storage"
)

// Flags shared by the commands that start a game
var (
	flagConfig     string
	flagDifficulty string
	flagMusic      bool
	flagNoRecord   bool
)

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagMusic, "music", false, "Play background music")
	cmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not save a replay of the run")
}

// checkDifficulty rejects presets the menu does not offer.
func checkDifficulty() error {
	if !slices.Contains(tui.Difficulties, flagDifficulty) {
		return fmt.Errorf("unknown difficulty %q (want one of %v)", flagDifficulty, tui.Difficulties)
	}
	return nil
}

// runtimeConfig builds the runtime config from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openLogger creates the logger for a command. Interactive commands pass
// logging.DefaultFile so log lines never land on the game screen.
func openLogger(defaultFile, prefix string) (*log.Logger, io.Closer, error) {
	file := flagLogFile
	if file == "" {
		file = defaultFile
	}
	return logging.New(logging.Options{
		Level:  flagLogLevel,
		File:   file,
		Prefix: prefix,
	})
}

// openStore opens the replay database. Games still work without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open replay database: %v\n", err)
		logger.Warn("replay database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// openAudio opens the sound device. A nil engine plays silently.
func openAudio(logger *log.Logger) *audio.Engine {
	engine, err := audio.New(logger)
	if err != nil {
		logger.Warn("audio unavailable", "err", err)
		return nil
	}
	return engine
}
