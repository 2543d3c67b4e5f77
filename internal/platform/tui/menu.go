package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// titleColors paints the menu banner one letter per piece color.
var titleColors = []core.Color{
	core.ColorCyan, core.ColorYellow, core.ColorMagenta,
	core.ColorGreen, core.ColorRed, core.ColorLavender,
}

var (
	menuCursorStyle = lipgloss.NewStyle().Foreground(palette[core.ColorOrange]).Bold(true)
	menuHintStyle   = lipgloss.NewStyle().Foreground(palette[core.ColorGray])
)

// MenuItem is one selectable mode with its stored best score.
type MenuItem struct {
	GameID    string
	Title     string
	HighScore int
}

// MenuModel picks a mode. It exits its program on select, scoreboard or quit;
// Result reports which.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	selected   *MenuItem
	scoreboard bool
	quitting   bool
}

// NewMenuModel lists every registered mode. store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	modes := registry.List()
	m := MenuModel{
		items:     make([]MenuItem, len(modes)),
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	for i, mode := range modes {
		m.items[i] = MenuItem{GameID: mode.ID, Title: mode.Title}
		if store == nil {
			continue
		}
		if best, err := store.HighScore(mode.ID); err == nil {
			m.items[i].HighScore = best
		}
	}
	return m
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionUp:
		m.cursor = core.Clamp(m.cursor-1, 0, len(m.items)-1)
	case MenuActionDown:
		m.cursor = core.Clamp(m.cursor+1, 0, len(m.items)-1)
	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		item := m.items[m.cursor]
		m.selected = &item
		return m, tea.Quit
	case MenuActionScoreboard:
		m.scoreboard = true
		return m, tea.Quit
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{"", banner("TETRIS"), "", menuHintStyle.Render("Select a mode"), ""}
	for i, item := range m.items {
		line := fmt.Sprintf("  %-18s", item.Title)
		if item.HighScore > 0 {
			line += fmt.Sprintf("  best %d", item.HighScore)
		}
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + line[2:])
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", menuHintStyle.Render("↑/↓ move   enter play   tab scores   q quit"))

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(centerText(line, m.config.ScreenW))
		b.WriteByte('\n')
	}
	return b.String()
}

// banner spaces out text and colors each letter.
func banner(text string) string {
	var b strings.Builder
	for i, r := range text {
		if i > 0 {
			b.WriteByte(' ')
		}
		c := titleColors[i%len(titleColors)]
		b.WriteString(styleFor(c).Bold(true).Render(string(r)))
	}
	return b.String()
}

// Selected returns the chosen mode, or nil.
func (m MenuModel) Selected() *MenuItem { return m.selected }

// IsQuitting reports whether the player quit from the menu.
func (m MenuModel) IsQuitting() bool { return m.quitting }

// WantsScoreboard reports whether the player asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool { return m.scoreboard }

// Config returns the runtime config, updated by any resize.
func (m MenuModel) Config() core.RuntimeConfig { return m.config }

// Result summarizes how the menu ended.
func (m MenuModel) Result() MenuResult {
	res := MenuResult{Config: m.config}
	switch {
	case m.scoreboard:
		res.WantsScoreboard = true
	case m.selected != nil:
		res.GameID = m.selected.GameID
	default:
		res.Quit = true
	}
	return res
}

// centerText pads text on the left to center it within width. Styled and
// multi-line text is measured by its widest visible line, and every line
// gets the same padding.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	pad := strings.Repeat(" ", (width-w)/2)
	return pad + strings.ReplaceAll(text, "\n", "\n"+pad)
}

// MenuResult is what RunMenu hands back to the caller's loop.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the menu full screen until the player picks something.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
