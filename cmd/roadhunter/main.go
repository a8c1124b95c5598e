// roadhunter is an arcade driving and shooting game for the terminal,
// a desktop window, or remote play over SSH.
//
// Usage:
//
//	roadhunter list                  - List game modes
//	roadhunter play [mode]           - Play in the terminal
//	roadhunter menu                  - Start menu with mode, difficulty and replays
//	roadhunter window [mode]         - Play in a desktop window
//	roadhunter serve                 - Start SSH server for remote play
//	roadhunter replays list|watch|rm - Manage recorded runs
//	roadhunter config dump           - Print the effective game config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.roadhunter/roadhunter.db)
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Log destination
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/roadhunter/internal/games/hunter"
	"github.com/vovakirdan/roadhunter/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roadhunter",
	Short: "Road Hunter - drive, shoot and survive in your terminal",
	Long: `Road Hunter is an arcade driving game: steer down an endless road,
shoot enemy cars, pick up weapon power-ups and survive as long as you can.

Available commands:
  list     - Show game modes
  play     - Play in the terminal
  menu     - Interactive start menu
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  replays  - List, watch and delete recorded runs
  config   - Inspect the game config

Examples:
  roadhunter play
  roadhunter play hunter_classic --difficulty hard
  roadhunter menu
  roadhunter serve --ssh :2222
  roadhunter replays watch 3`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to replay database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default: ~/.roadhunter/roadhunter.log, stderr for serve)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(configCmd)
}
