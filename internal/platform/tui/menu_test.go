package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuListsBothModes(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	ids := map[string]bool{}
	for _, it := range m.items {
		ids[it.GameID] = true
	}
	if !ids[tetris.ModeStandard] || !ids[tetris.ModeClassic] {
		t.Errorf("menu items = %v, expected both tetris modes", m.items)
	}
}

func TestMenuNavigateAndSelect(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor should stay at the top, got %d", m.cursor)
	}

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor should stop at the last item, got %d", m.cursor)
	}

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil || m.Selected().GameID != m.items[len(m.items)-1].GameID {
		t.Errorf("Selected() = %v", m.Selected())
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := menuUpdate(t, NewMenuModel(nil, testConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	m = menuUpdate(t, NewMenuModel(nil, testConfig()), runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestMenuShowsHighScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveScore(tetris.ModeClassic, 17)

	m := NewMenuModel(store, testConfig())
	if !strings.Contains(m.View(), "best 17") {
		t.Errorf("view should show the classic high score:\n%s", m.View())
	}
}

func TestMenuResult(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	if res := m.Result(); !res.Quit || res.GameID != "" {
		t.Errorf("untouched menu should report quit, got %+v", res)
	}

	m = menuUpdate(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	res := m.Result()
	if res.GameID != m.items[0].GameID || res.Quit {
		t.Errorf("Result() = %+v, expected the first mode", res)
	}
	if res.Config.ScreenW != 120 || res.Config.ScreenH != 40 {
		t.Errorf("Result() should carry the resized config, got %dx%d", res.Config.ScreenW, res.Config.ScreenH)
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abcdef", 4, "abcdef"},
		{"ab\nabcd", 8, "  ab\n  abcd"},
	}
	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.want {
			t.Errorf("centerText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
