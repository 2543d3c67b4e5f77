// Package tui provides the Bubble Tea front end: the game loop, menus,
// scoreboard and input mapping.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// TickMsg drives one simulation step.
type TickMsg time.Time

// tickInterval is the frame period for rate; non-positive rates use the
// default.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg { return TickMsg(t) })
}
