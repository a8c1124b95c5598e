package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/roadhunter/internal/registry"
	"github.com/vovakirdan/roadhunter/internal/storage"
)

// maxReplays is how many replays the browser loads per filter.
const maxReplays = 100

// ReplaysKeyMap defines the key bindings for the replay browser.
type ReplaysKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Watch    key.Binding
	Delete   key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReplaysKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Watch, k.Delete, k.NextGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ReplaysKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Watch, k.Delete},
		{k.NextGame, k.PrevGame, k.Back, k.Quit},
	}
}

// DefaultReplaysKeyMap returns default key bindings.
func DefaultReplaysKeyMap() ReplaysKeyMap {
	return ReplaysKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Watch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "watch"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// replayFilter is one tab of the browser; an empty ID lists every game.
type replayFilter struct {
	ID    string
	Title string
}

// ReplaysModel is the Bubble Tea model for browsing stored replays.
type ReplaysModel struct {
	filters   []replayFilter
	filter    int
	store     *storage.Store
	replays   []storage.Replay
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ReplaysKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
	watch     *storage.Replay
}

// NewReplaysModel creates a new replay browser.
func NewReplaysModel(store *storage.Store, width, height int) ReplaysModel {
	filters := []replayFilter{{Title: "All"}}
	for _, g := range registry.List() {
		filters = append(filters, replayFilter{ID: g.ID, Title: g.Title})
	}

	m := ReplaysModel{
		filters: filters,
		store:   store,
		keys:    DefaultReplaysKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.loadReplays()
	return m
}

// createTable creates a table sized to the window.
func (m *ReplaysModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Mode", Width: 22},
		{Title: "Difficulty", Width: 10},
		{Title: "Length", Width: 8},
		{Title: "Date", Width: 14},
	}
	if m.width < 72 {
		columns[1].Width = 10
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadReplays loads the replays for the current filter.
func (m *ReplaysModel) loadReplays() {
	m.replays, m.loadErr = nil, nil
	if m.store != nil {
		m.replays, m.loadErr = m.store.ListReplays(m.filters[m.filter].ID, maxReplays)
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded replays.
func (m *ReplaysModel) updateTableRows() {
	rows := make([]table.Row, len(m.replays))
	for i, r := range m.replays {
		difficulty := r.Difficulty
		if difficulty == "" {
			difficulty = "default"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			m.titleFor(r.GameID),
			difficulty,
			formatTicks(r.Ticks, r.TickRate),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ReplaysModel) titleFor(gameID string) string {
	for _, f := range m.filters {
		if f.ID == gameID {
			return f.Title
		}
	}
	return gameID
}

// formatTicks renders a tick count as m:ss of play time.
func formatTicks(ticks, tickRate int) string {
	if tickRate <= 0 {
		tickRate = 60
	}
	d := time.Duration(ticks) * time.Second / time.Duration(tickRate)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Init initializes the replay browser.
func (m ReplaysModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the replay browser.
func (m ReplaysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			m.filter = (m.filter + 1) % len(m.filters)
			m.loadReplays()
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			m.filter = (m.filter + len(m.filters) - 1) % len(m.filters)
			m.loadReplays()
			return m, nil

		case key.Matches(msg, m.keys.Watch):
			if r, ok := m.current(); ok && m.store != nil {
				full, err := m.store.LoadReplay(r.ID)
				if err != nil {
					m.loadErr = err
					return m, nil
				}
				m.watch = &full
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if r, ok := m.current(); ok && m.store != nil {
				if err := m.store.DeleteReplay(r.ID); err != nil {
					m.loadErr = err
					return m, nil
				}
				m.loadReplays()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// current returns the replay under the cursor.
func (m ReplaysModel) current() (storage.Replay, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.replays) {
		return storage.Replay{}, false
	}
	return m.replays[i], true
}

// View renders the replay browser.
func (m ReplaysModel) View() string {
	if m.quitting || m.goingBack || m.watch != nil {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("REPLAYS"), m.width))
	b.WriteString("\n\n")

	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	tabs := make([]string, len(m.filters))
	for i, f := range m.filters {
		if i == m.filter {
			tabs[i] = activeTabStyle.Render(f.Title)
		} else {
			tabs[i] = tabStyle.Render(" " + f.Title + " ")
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or a placeholder message.
func (m ReplaysModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Replay storage is unavailable.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load replays:\n" + m.loadErr.Error())
	case len(m.replays) == 0:
		return emptyStyle.Render("No replays recorded yet.\nPlay a run with recording on to add one.")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ReplaysModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ReplaysModel) IsQuitting() bool {
	return m.quitting
}

// Watch returns the replay chosen for playback, fully loaded, or nil.
func (m ReplaysModel) Watch() *storage.Replay {
	return m.watch
}

// ReplaysResult holds the result of running the replay browser.
type ReplaysResult struct {
	Watch  *storage.Replay
	GoBack bool
}

// RunReplays runs the replay browser.
func RunReplays(store *storage.Store, width, height int) (ReplaysResult, error) {
	model := NewReplaysModel(store, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return ReplaysResult{}, err
	}

	m, ok := finalModel.(ReplaysModel)
	if !ok {
		return ReplaysResult{}, nil
	}
	return ReplaysResult{Watch: m.Watch(), GoBack: m.IsGoingBack()}, nil
}
