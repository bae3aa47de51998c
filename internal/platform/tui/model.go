package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkraev/tui-crawler/internal/core"
	"github.com/mkraev/tui-crawler/internal/games/crawl"
	"github.com/mkraev/tui-crawler/internal/registry"
	"github.com/mkraev/tui-crawler/internal/storage"
)

// Model is the Bubble Tea model for running a crawler session locally.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	held       HeldInput
	inputFrame core.InputFrame
	gameState  core.GameState
	startedAt  time.Time
	resumeData []byte // Saved run snapshot to restore after the initial Reset
	quitting   bool
	runSaved   bool // Whether the run record has been written for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		startedAt:  time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if len(m.resumeData) > 0 {
		if saver, ok := m.game.(registry.Saver); ok {
			saver.RestoreState(m.resumeData)
		}
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveRun()
		return m, nil
	}

	if dir, ok := m.keyMapper.MapMove(msg); ok {
		m.held.PressMove(dir)
		return m, nil
	}
	if dir, ok := m.keyMapper.MapAim(msg); ok {
		m.held.PressAim(dir)
		return m, nil
	}

	action, isQuit := m.keyMapper.MapAction(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionRestart && !m.gameState.GameOver {
		return m, nil
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The dungeon camera adapts
// to any viewport, so the running simulation is kept as-is.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.startedAt = time.Now()
		m.held.Clear()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Compose movement and aim from held keys
	m.inputFrame.Move, m.inputFrame.Aim = m.held.Tick()

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Record the run on game over (once)
	if m.gameState.GameOver && !m.runSaved {
		m.recordRun()
		m.runSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordRun writes the score and run record to storage.
func (m *Model) recordRun() {
	if m.store == nil {
		return
	}

	if m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), m.gameState.Score)
	}

	g, ok := m.game.(*crawl.Game)
	if !ok {
		return
	}
	stats := g.Stats()

	//nolint:errcheck // Best-effort save
	m.store.SaveRun(storage.RunRecord{
		GameID:     m.game.ID(),
		Score:      m.gameState.Score,
		Depth:      stats.Depth,
		Wave:       stats.Wave,
		Kills:      stats.Kills,
		Gold:       stats.Gold,
		HeroLevel:  stats.Level,
		Duration:   int(time.Since(m.startedAt).Seconds()),
		DeathCause: stats.DeathCause,
		BossKilled: stats.BossKilled,
	})
}

// saveRun snapshots the current run to a YAML file under ~/.crawler/saves.
func (m *Model) saveRun() {
	saver, ok := m.game.(registry.Saver)
	if !ok {
		return
	}

	data, err := saver.SaveState()
	if err != nil {
		return
	}

	dir := filepath.Join(os.Getenv("HOME"), ".crawler", "saves")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	path := filepath.Join(dir, fmt.Sprintf("%s.yaml", m.game.ID()))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, data, 0o600)
}

// SavePath returns the default save file location for the given variant.
func SavePath(gameID string) string {
	return filepath.Join(os.Getenv("HOME"), ".crawler", "saves", fmt.Sprintf("%s.yaml", gameID))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.screen.Clear()
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	return RunWithSave(game, store, cfg, nil)
}

// RunWithSave starts the Bubble Tea program and restores the given run
// snapshot after the initial reset. A nil snapshot starts a fresh run.
func RunWithSave(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, saveData []byte) error {
	model := NewModel(game, store, cfg)
	model.resumeData = saveData

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
