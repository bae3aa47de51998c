package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkraev/tui-crawler/internal/registry"
	"github.com/mkraev/tui-crawler/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForStats = 80  // Minimum width to show the stats sidebar
	statsWidth       = 24  // Width of the stats sidebar
	maxRuns          = 100 // Max runs to load
)

// scoreboardView selects which run listing the table shows.
type scoreboardView int

const (
	viewRecent scoreboardView = iota
	viewBest
)

// ScoreboardKeyMap defines the key bindings for the run history screen.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	NextGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.NextGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView, k.NextGame},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "recent/best"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("left", "right", "h", "l"),
			key.WithHelp("left/right", "mode"),
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

// ScoreboardModel is the Bubble Tea model for the run history screen.
type ScoreboardModel struct {
	games      []registry.GameInfo // Registered crawler variants
	gameCursor int                 // Currently selected variant index
	view       scoreboardView
	store      *storage.Store
	runs       []storage.RunRecord
	stats      *storage.RunStats
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool // True if user pressed back (not quit)
	showStats  bool // Whether to show the stats sidebar
}

// NewScoreboardModel creates a new run history model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	keys := DefaultScoreboardKeyMap()
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		games:     registry.List(),
		store:     store,
		keys:      keys,
		help:      h,
		width:     width,
		height:    height,
		showStats: width >= minWidthForStats,
	}

	m.table = m.createTable()
	m.loadRuns()

	return m
}

// createTable creates a new table with run history columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Score", Width: 8},
		{Title: "Depth", Width: 6},
		{Title: "Wave", Width: 5},
		{Title: "Kills", Width: 6},
		{Title: "Lvl", Width: 4},
		{Title: "Death", Width: 22},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
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

// currentGameID returns the variant the cursor points at, or "" when none.
func (m *ScoreboardModel) currentGameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.gameCursor].ID
}

// loadRuns loads run records for the current view and variant.
func (m *ScoreboardModel) loadRuns() {
	m.runs = nil
	m.stats = nil

	if m.store != nil {
		var err error
		switch m.view {
		case viewRecent:
			m.runs, err = m.store.RecentRuns(maxRuns)
		case viewBest:
			m.runs, err = m.store.BestRuns(m.currentGameID(), maxRuns)
		}
		if err != nil {
			m.runs = nil
		}

		if id := m.currentGameID(); id != "" {
			if stats, statsErr := m.store.GetRunStats(id); statsErr == nil {
				m.stats = stats
			}
		}
	}

	m.updateTableRows()
}

// updateTableRows updates the table with current run records.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		death := r.DeathCause
		if r.BossKilled {
			death += " *"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Depth),
			fmt.Sprintf("%d", r.Wave),
			fmt.Sprintf("%d", r.Kills),
			fmt.Sprintf("%d", r.HeroLevel),
			death,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the run history model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run history screen.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

		case key.Matches(msg, m.keys.NextView):
			if m.view == viewRecent {
				m.view = viewBest
			} else {
				m.view = viewRecent
			}
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.loadRuns()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showStats = m.width >= minWidthForStats
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run history screen.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	viewName := "RECENT RUNS"
	if m.view == viewBest {
		viewName = "BEST RUNS"
	}
	title := viewName
	if m.view == viewBest && len(m.games) > 0 {
		title = fmt.Sprintf("%s - %s", viewName, m.games[m.gameCursor].Title)
	}

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showStats && m.stats != nil {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableRendered, "  ", m.renderStats()))
	} else {
		b.WriteString(centerText(tableRendered, m.width))
	}

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderStats renders the per-variant aggregate sidebar.
func (m ScoreboardModel) renderStats() string {
	statsStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(statsWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString(m.games[m.gameCursor].Title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", statsWidth-4))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Runs:       %d\n", m.stats.RunsCount))
	sb.WriteString(fmt.Sprintf("Best score: %d\n", m.stats.BestScore))
	sb.WriteString(fmt.Sprintf("Best depth: %d\n", m.stats.BestDepth))
	sb.WriteString(fmt.Sprintf("Kills:      %d\n", m.stats.TotalKills))

	return statsStyle.Render(sb.String())
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nDescend into the dungeon!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the run history screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
