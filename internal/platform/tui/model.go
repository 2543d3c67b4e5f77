package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Resizer is implemented by games that can adapt to a new terminal size
// without restarting.
type Resizer interface {
	Resize(w, h int)
}

// Recorder is implemented by games that report totals for session history.
type Recorder interface {
	Totals() (lines, pieces int)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	startedAt  time.Time
	allowBack  bool // B/Esc returns to a menu when paused or over
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game. store and
// logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = discardLogger()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		startedAt:  time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)
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
		m.saveScreenshot()
		return m, nil
	}

	if m.allowBack && (m.gameState.GameOver || m.gameState.Paused) &&
		m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack {
		m.backToMenu = true
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}

	// Games without Resize restart at the new size
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, n := range result.Notices {
		m.logger.Debug(n, "game", m.game.ID(), "score", m.gameState.Score)
	}

	if wasOver && !m.gameState.GameOver {
		m.logger.Debug("game restarted", "game", m.game.ID())
		m.scoreSaved = false
		m.startedAt = time.Now()
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.recordGame()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordGame saves the score and a session summary. Failures are logged;
// play continues regardless.
func (m *Model) recordGame() {
	rec := storage.SessionRecord{
		Mode:     m.game.ID(),
		Score:    m.gameState.Score,
		Lines:    m.gameState.Lines,
		Duration: time.Since(m.startedAt),
	}
	if r, ok := m.game.(Recorder); ok {
		rec.Lines, rec.Pieces = r.Totals()
	}

	m.logger.Info("game over",
		"game", rec.Mode,
		"score", rec.Score,
		"lines", rec.Lines,
		"pieces", rec.Pieces,
		"duration", rec.Duration.Round(time.Second),
	)

	if m.store == nil {
		return
	}
	if rec.Score > 0 {
		if _, err := m.store.SaveScore(rec.Mode, rec.Score); err != nil {
			m.logger.Warn("could not save score", "error", err)
		}
	}
	id, err := m.store.SaveSession(rec)
	if err != nil {
		m.logger.Warn("could not save session", "error", err)
		return
	}
	m.logger.Debug("session saved", "id", id)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir, err := expandHome("~/.arcade/screenshots")
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
