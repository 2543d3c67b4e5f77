package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{95*time.Second + 400*time.Millisecond, "1:35"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestScoreboardViews(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := NewScoreboardModel(store, 100, 30)
	if len(m.games) == 0 {
		t.Fatal("no modes registered")
	}
	mode := m.games[0].ID
	store.SaveScore(mode, 9)
	store.SaveSession(storage.SessionRecord{Mode: mode, Score: 9, Lines: 9, Pieces: 31, Duration: time.Minute})
	m.loadScores(mode)

	if len(m.table.Rows()) != 1 || m.table.Rows()[0][1] != "9" {
		t.Fatalf("top scores rows = %v", m.table.Rows())
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("expected the high score heading")
	}
	if !strings.Contains(m.View(), "1 games") {
		t.Error("expected the stats line")
	}

	next, _ := m.Update(runeKey('v'))
	m = next.(ScoreboardModel)
	if m.view != viewRecent {
		t.Fatal("v should switch to recent games")
	}
	rows := m.table.Rows()
	if len(rows) != 1 || rows[0][3] != "31" || rows[0][4] != "1:00" {
		t.Errorf("recent rows = %v", rows)
	}
	if !strings.Contains(m.View(), "RECENT GAMES") {
		t.Error("expected the recent heading")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}
