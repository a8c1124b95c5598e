package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roadhunter/internal/audio"
	"github.com/vovakirdan/roadhunter/internal/core"
	"github.com/vovakirdan/roadhunter/internal/registry"
	"github.com/vovakirdan/roadhunter/internal/replay"
	"github.com/vovakirdan/roadhunter/internal/storage"
)

// Options are the optional collaborators of a game session.
// Every field may be left zero.
type Options struct {
	Store      *storage.Store // Replay storage; nil disables recording
	Audio      *audio.Engine  // Nil plays silently
	Logger     *log.Logger
	Difficulty string // Recorded with the replay
	Record     bool   // Save a replay when a run ends
	Music      bool   // Start the background loop on launch
}

// GameModel runs one game: live play with optional recording, or the
// playback of a stored replay.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	opts      Options
	logger    *log.Logger
	keys      *KeyMapper
	loop      int64
	recorder  *replay.Recorder
	playback  *replay.Player
	replayID  int64
	gameState core.GameState

	saved      bool  // Current run has been handled (saved or skipped)
	savedID    int64 // ID of the replay saved for the current run
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for live play.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return GameModel{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:   cfg,
		opts:     opts,
		logger:   logger,
		keys:     NewKeyMapperWithHold(holdTicksFor(cfg.TickRate)),
		loop:     nextLoopID(),
		recorder: replay.NewRecorder(),
	}
}

// NewReplayModel creates a model that plays back rep.
func NewReplayModel(rep storage.Replay, cfg core.RuntimeConfig, opts Options) (GameModel, error) {
	game, masks, err := replay.Restore(rep.GameID, rep.ConfigYAML, rep.Inputs)
	if err != nil {
		return GameModel{}, err
	}
	cfg.Seed = rep.Seed
	cfg.TickRate = rep.TickRate
	opts.Record = false

	m := NewGameModel(game, cfg, opts)
	m.playback = replay.NewPlayer(masks)
	m.replayID = rep.ID
	m.saved = true
	return m, nil
}

var loopCounter atomic.Int64

func nextLoopID() int64 {
	return loopCounter.Add(1)
}

// holdTicksFor scales the key hold window with the tick rate.
func holdTicksFor(tickRate int) int {
	return max(1, DefaultHoldTicks*tickRate/60)
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	if m.opts.Music && m.playback == nil {
		m.opts.Audio.StartMusic()
	}
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The simulation does not depend on the screen, so a resize
		// never resets the run.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.playback != nil {
		return m.handleReplayKey(msg)
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.finishRun()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack && m.canLeave():
		m.finishRun()
		m.backToMenu = true
		return m, tea.Quit
	}

	m.keys.Press(msg)
	return m, nil
}

func (m GameModel) handleReplayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack, action == core.ActionPause && m.playback.Done():
		m.backToMenu = true
		return m, tea.Quit
	}
	return m, nil
}

// canLeave reports whether the back key may leave the run.
func (m GameModel) canLeave() bool {
	return !m.gameState.Started || m.gameState.Paused || m.gameState.GameOver
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.playback != nil {
		return m.replayTick()
	}

	in := m.keys.Frame()

	if in.Has(core.ActionToggleMusic) && !m.gameState.Started {
		m.toggleMusic()
	}

	// A restart is a new run with a fresh seed and recording.
	if in.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.recorder = replay.NewRecorder()
		m.saved = false
		m.savedID = 0
		m.keys.Release()
		return m, tickCmd(m.config.TickRate, m.loop)
	}

	if !m.saved {
		m.recorder.Record(in)
	}
	result := m.game.Step(in)
	m.gameState = result.State
	m.opts.Audio.HandleEvents(result.Events)

	if m.gameState.GameOver {
		m.finishRun()
	}

	return m, tickCmd(m.config.TickRate, m.loop)
}

// replayTick feeds one recorded frame, then idles on the final state.
func (m GameModel) replayTick() (tea.Model, tea.Cmd) {
	if in, ok := m.playback.Next(); ok {
		m.gameState = m.game.Step(in).State
	}
	return m, tickCmd(m.config.TickRate, m.loop)
}

func (m *GameModel) toggleMusic() {
	if m.opts.Audio.MusicPlaying() {
		m.opts.Audio.StopMusic()
		return
	}
	m.opts.Audio.StartMusic()
}

// finishRun saves the current run once, if recording is on and it was played.
func (m *GameModel) finishRun() {
	if m.saved {
		return
	}
	m.saved = true
	if !m.opts.Record || m.opts.Store == nil || !m.gameState.Started {
		return
	}

	rep, err := replay.Archive(m.game, m.config, m.opts.Difficulty, m.recorder)
	if err != nil {
		m.logger.Warn("could not archive run", "err", err)
		return
	}
	id, err := m.opts.Store.SaveReplay(rep)
	if err != nil {
		m.logger.Warn("could not save replay", "err", err)
		return
	}
	m.savedID = id
	m.logger.Info("replay saved", "id", id, "game", rep.GameID, "ticks", rep.Ticks, "score", m.gameState.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	dir := filepath.Join(home, ".roadhunter", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	m.drawStatus()
	return RenderScreen(m.screen)
}

// drawStatus writes the platform status line under the game's HUD.
func (m GameModel) drawStatus() {
	y := m.screen.Height() - 1
	if y < 1 {
		return
	}
	switch {
	case m.playback != nil:
		status := fmt.Sprintf(" REPLAY #%d  %3.0f%% ", m.replayID, m.playback.Progress()*100)
		if m.playback.Done() {
			status = fmt.Sprintf(" REPLAY #%d  END  B back  Q quit ", m.replayID)
		}
		m.screen.DrawTextColored(0, y, status, core.ColorBrightMagenta)
	case m.gameState.GameOver && m.savedID > 0:
		m.screen.DrawTextColored(0, y, fmt.Sprintf(" Replay #%d saved ", m.savedID), core.ColorGray)
	}
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// SavedReplay returns the ID of the replay saved for the last run, or 0.
func (m GameModel) SavedReplay() int64 {
	return m.savedID
}

// Result reports how a game program ended.
type Result struct {
	BackToMenu bool
	Config     core.RuntimeConfig
}

// Run starts a Bubble Tea program for live play.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (Result, error) {
	return runModel(NewGameModel(game, cfg, opts))
}

// RunReplay starts a Bubble Tea program that plays back rep.
func RunReplay(rep storage.Replay, cfg core.RuntimeConfig, opts Options) (Result, error) {
	model, err := NewReplayModel(rep, cfg, opts)
	if err != nil {
		return Result{Config: cfg}, err
	}
	return runModel(model)
}

func runModel(model GameModel) (Result, error) {
	defer model.opts.Audio.StopMusic()

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return Result{Config: model.config}, err
	}
	m, ok := final.(GameModel)
	if !ok {
		return Result{Config: model.config}, nil
	}
	return Result{BackToMenu: m.BackToMenu(), Config: m.config}, nil
}
