package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// countingGame records calls from the model.
type countingGame struct {
	resets int
	steps  int
	last   core.InputFrame
	state  core.GameState
}

func (g *countingGame) ID() string { return "counting" }
func (g *countingGame) Title() string { return "Counting" }
func (g *countingGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *countingGame) Render(*core.Screen) {}
func (g *countingGame) State() core.GameState { return g.state }
func (g *countingGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = in.Clone()
	return core.StepResult{State: g.state}
}

type resizingGame struct {
	countingGame
	w, h int
}

func (g *resizingGame) Resize(w, h int) { g.w, g.h = w, h }

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

func TestModelForwardsKeysOnNextTick(t *testing.T) {
	g := &countingGame{}
	m := NewModel(g, nil, testConfig(), nil)

	m = update(t, m, runeKey('a'))
	m = update(t, m, runeKey(' '))
	m = update(t, m, TickMsg(time.Now()))

	if g.steps != 1 {
		t.Fatalf("steps = %d, expected 1", g.steps)
	}
	if !g.last.Has(core.ActionLeft) || !g.last.Has(core.ActionHardDrop) {
		t.Error("tick should carry keys pressed since the previous tick")
	}

	update(t, m, TickMsg(time.Now()))
	if !g.last.Empty() {
		t.Error("input should be cleared after each tick")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&countingGame{}, nil, testConfig(), nil)
	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return tea.Quit")
	}
}

func TestModelResize(t *testing.T) {
	t.Run("resizer keeps the game", func(t *testing.T) {
		g := &resizingGame{}
		m := NewModel(g, nil, testConfig(), nil)
		update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

		if g.w != 100 || g.h != 40 {
			t.Errorf("Resize got %dx%d", g.w, g.h)
		}
		if g.resets != 0 {
			t.Error("resizable game should not be reset")
		}
	})

	t.Run("other games restart", func(t *testing.T) {
		g := &countingGame{}
		m := NewModel(g, nil, testConfig(), nil)
		update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

		if g.resets != 1 {
			t.Errorf("resets = %d, expected 1", g.resets)
		}
	})
}

func TestModelBackToMenu(t *testing.T) {
	g := &countingGame{state: core.GameState{Paused: true}}
	m := NewModel(g, nil, testConfig(), nil)
	m = update(t, m, TickMsg(time.Now()))

	// Standalone play has no menu to go back to
	m = update(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("back should be ignored without a menu")
	}

	m.allowBack = true
	m = update(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("b while paused should return to the menu")
	}
	if m.View() != "" {
		t.Error("view should be empty after leaving")
	}
}

func TestModelRecordsFinishedGame(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := tetris.New()
	m := NewModel(game, store, testConfig(), nil)
	m.Init()

	for i := 0; i < 300 && !m.State().GameOver; i++ {
		m = update(t, m, runeKey(' '))
		m = update(t, m, TickMsg(time.Now()))
	}
	if !m.State().GameOver {
		t.Fatal("stacking hard drops should end the game")
	}

	// Further ticks must not record again
	for range 5 {
		m = update(t, m, TickMsg(time.Now()))
	}

	recs, err := store.RecentSessions(tetris.ModeStandard, 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 session, got %d", len(recs))
	}
	_, pieces := game.Totals()
	if recs[0].Pieces != pieces || pieces == 0 {
		t.Errorf("recorded pieces = %d, game dealt %d", recs[0].Pieces, pieces)
	}

	// Restart and finish again: a second record
	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg(time.Now()))
	if m.State().GameOver {
		t.Fatal("r should restart")
	}
	for i := 0; i < 300 && !m.State().GameOver; i++ {
		m = update(t, m, runeKey(' '))
		m = update(t, m, TickMsg(time.Now()))
	}

	recs, err = store.RecentSessions(tetris.ModeStandard, 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("expected 2 sessions after restart, got %d", len(recs))
	}
}
