package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/roadhunter/internal/core"
	"github.com/vovakirdan/roadhunter/internal/registry"
	"github.com/vovakirdan/roadhunter/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.roadhunter/host_key.
	HostKeyPath string

	// DBPath is the path to the replay database.
	DBPath string

	// ConfigPath is an optional game config file shared by all sessions.
	ConfigPath string

	// TickRate is the simulation rate for every session.
	TickRate int

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      storage.DefaultPath,
		TickRate:    60,
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server for the game.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
// A nil logger logs to stderr.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "roadhunter-ssh",
		})
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open replay database", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".roadhunter", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	}

	model := NewSessionModel(SessionOptions{
		Store:      s.store,
		Logger:     s.logger.With("user", sshSession.User()),
		ConfigPath: s.config.ConfigPath,
	}, cfg)

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errc:
		s.Shutdown()
		return fmt.Errorf("tui: ssh server: %w", err)
	}
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// configurer is implemented by games that can take a per-instance config.
type configurer interface {
	Configure(path, preset string) error
}

// SessionOptions are the shared collaborators of a menu session.
type SessionOptions struct {
	Store      *storage.Store
	Logger     *log.Logger
	ConfigPath string
}

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewReplays
)

// SessionModel manages the full session flow: menu, game or replay
// browser, and back to the menu. Used for SSH sessions.
type SessionModel struct {
	opts       SessionOptions
	config     core.RuntimeConfig
	view       sessionView
	menu       MenuModel
	game       GameModel
	replays    ReplaysModel
	difficulty string
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions, cfg core.RuntimeConfig) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	difficulty := "normal"
	return SessionModel{
		opts:       opts,
		config:     cfg,
		difficulty: difficulty,
		menu:       NewMenuModel(cfg, difficulty, false, opts.Store != nil),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewReplays:
		return m.updateReplays(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsReplays() {
		m.replays = NewReplaysModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		m.view = viewReplays
		return m, m.replays.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		m.difficulty = m.menu.Difficulty()
		game, err := m.createGame(selected.GameID)
		if err != nil {
			m.opts.Logger.Error("cannot start game", "game", selected.GameID, "err", err)
			m.menu = NewMenuModel(m.config, m.difficulty, false, m.opts.Store != nil)
			return m, nil
		}

		m.game = NewGameModel(game, m.config, Options{
			Store:      m.opts.Store,
			Logger:     m.opts.Logger,
			Difficulty: m.difficulty,
			Record:     m.opts.Store != nil,
		})
		m.view = viewGame
		return m, m.game.Init()
	}

	return m, cmd
}

// createGame builds a game with this session's difficulty.
func (m SessionModel) createGame(id string) (registry.Game, error) {
	return CreateGame(id, m.opts.ConfigPath, m.difficulty)
}

// CreateGame builds a registered game and applies the config file at
// configPath (empty searches the usual locations) with a difficulty preset.
func CreateGame(id, configPath, difficulty string) (registry.Game, error) {
	game, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	if c, ok := game.(configurer); ok {
		if err := c.Configure(configPath, difficulty); err != nil {
			return nil, err
		}
	}
	return game, nil
}

// updateGame handles updates when a game or replay is running.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.backToMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateReplays handles updates when browsing replays.
func (m SessionModel) updateReplays(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.replays.Update(msg)
	if replaysModel, ok := newModel.(ReplaysModel); ok {
		m.replays = replaysModel
	}

	switch {
	case m.replays.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.replays.IsGoingBack():
		m.backToMenu()
		return m, m.menu.Init()

	case m.replays.Watch() != nil:
		game, err := NewReplayModel(*m.replays.Watch(), m.config, Options{Logger: m.opts.Logger})
		if err != nil {
			m.opts.Logger.Warn("cannot play replay", "id", m.replays.Watch().ID, "err", err)
			m.backToMenu()
			return m, nil
		}
		m.game = game
		m.view = viewGame
		return m, m.game.Init()
	}

	return m, cmd
}

func (m *SessionModel) backToMenu() {
	m.view = viewMenu
	m.menu = NewMenuModel(m.config, m.difficulty, false, m.opts.Store != nil)
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewReplays:
		return m.replays.View()
	default:
		return m.menu.View()
	}
}
