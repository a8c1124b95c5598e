package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadhunter/internal/core"
	"github.com/vovakirdan/roadhunter/internal/logging"
	"github.com/vovakirdan/roadhunter/internal/platform/gfx"
	"github.com/vovakirdan/roadhunter/internal/platform/tui"
	"github.com/vovakirdan/roadhunter/internal/registry"
	"github.com/vovakirdan/roadhunter/internal/replay"
	"github.com/vovakirdan/roadhunter/internal/storage"
)

var (
	flagReplayLimit  int
	flagReplayWindow bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List, watch and delete recorded runs",
	Long: `Manage the runs recorded in the replay database.

A replay stores the seed, the game config and every tick's input, so
watching it re-simulates the run exactly as it was played.

Examples:
  roadhunter replays list
  roadhunter replays list hunter_classic --limit 5
  roadhunter replays watch 3
  roadhunter replays watch 3 --window
  roadhunter replays delete 3`,
}

var replaysListCmd = &cobra.Command{
	Use:   "list [mode]",
	Short: "List recorded runs, newest first",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReplaysList,
}

var replaysWatchCmd = &cobra.Command{
	Use:   "watch <id>",
	Short: "Play back a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplaysWatch,
}

var replaysDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a recorded run",
	Args:    cobra.ExactArgs(1),
	RunE:    runReplaysDelete,
}

func init() {
	replaysListCmd.Flags().IntVar(&flagReplayLimit, "limit", 20, "Maximum number of runs to show")
	replaysWatchCmd.Flags().BoolVar(&flagReplayWindow, "window", false, "Play back in a desktop window")

	replaysCmd.AddCommand(replaysListCmd)
	replaysCmd.AddCommand(replaysWatchCmd)
	replaysCmd.AddCommand(replaysDeleteCmd)
}

func parseReplayID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid replay id %q", s)
	}
	return id, nil
}

func runReplaysList(_ *cobra.Command, args []string) error {
	gameID := ""
	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			return fmt.Errorf("unknown mode %q (run 'roadhunter list' to see modes)", args[0])
		}
		gameID = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	replays, err := store.ListReplays(gameID, flagReplayLimit)
	if err != nil {
		return err
	}

	if len(replays) == 0 {
		fmt.Println("No replays recorded yet.")
		fmt.Println()
		fmt.Println("Play 'roadhunter play' to record your first run!")
		return nil
	}

	fmt.Printf("  %-5s  %-15s  %-10s  %-8s  %-8s  %s\n", "ID", "Mode", "Difficulty", "Length", "Score", "Date")
	fmt.Printf("  %-5s  %-15s  %-10s  %-8s  %-8s  %s\n", "--", "----", "----------", "------", "-----", "----")
	for _, r := range replays {
		score := "?"
		if full, err := store.LoadReplay(r.ID); err == nil {
			if s, err := replayScore(full); err == nil {
				score = strconv.Itoa(s)
			}
		}
		fmt.Printf("  %-5d  %-15s  %-10s  %-8s  %-8s  %s\n",
			r.ID, r.GameID, r.Difficulty, runLength(r.Ticks, r.TickRate), score,
			r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

// replayScore re-simulates a run headlessly. Scores are not stored, so
// they always match what the current game code makes of the inputs.
func replayScore(r storage.Replay) (int, error) {
	game, masks, err := replay.Restore(r.GameID, r.ConfigYAML, r.Inputs)
	if err != nil {
		return 0, err
	}
	rt := core.DefaultConfig()
	rt.Seed = r.Seed
	rt.TickRate = r.TickRate
	return replay.Simulate(game, rt, masks).Score, nil
}

func runLength(ticks, tickRate int) string {
	if tickRate <= 0 {
		tickRate = 60
	}
	d := time.Duration(ticks) * time.Second / time.Duration(tickRate)
	return d.Round(time.Second).String()
}

func runReplaysWatch(_ *cobra.Command, args []string) error {
	id, err := parseReplayID(args[0])
	if err != nil {
		return err
	}

	logger, closer, err := openLogger(logging.DefaultFile, "")
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	rep, err := store.LoadReplay(id)
	if err != nil {
		return err
	}

	logger.Info("watching replay", "id", id, "game", rep.GameID, "ticks", rep.Ticks)
	if flagReplayWindow {
		return gfx.RunReplay(rep, core.DefaultConfig(), gfx.Options{
			Audio:  openAudio(logger),
			Logger: logger,
		})
	}
	_, err = tui.RunReplay(rep, runtimeConfig(), tui.Options{
		Audio:  openAudio(logger),
		Logger: logger,
	})
	return err
}

func runReplaysDelete(_ *cobra.Command, args []string) error {
	id, err := parseReplayID(args[0])
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteReplay(id); err != nil {
		return err
	}
	fmt.Printf("Deleted replay %d\n", id)
	return nil
}
