package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// palette is the terminal color for every core.Color. Entries past the
// 256-color range are true-color piece tones.
var palette = [...]lipgloss.TerminalColor{
	core.ColorDefault:       lipgloss.NoColor{},
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorOrange:        lipgloss.Color("208"),
	core.ColorGray:          lipgloss.Color("245"),
	core.ColorLavender:      lipgloss.Color("#c099ff"),
	core.ColorPeach:         lipgloss.Color("#ff966b"),
	core.ColorTeal:          lipgloss.Color("#4fd6be"),
}

var cellStyles = func() []lipgloss.Style {
	out := make([]lipgloss.Style, len(palette))
	for i, c := range palette {
		out[i] = lipgloss.NewStyle().Foreground(c)
	}
	return out
}()

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(cellStyles) {
		return cellStyles[c]
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen turns the screen buffer into styled text. Each stretch of
// same-colored cells in a row is styled once.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	run := make([]rune, 0, s.Width())
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		run = run[:0]
		color := core.ColorDefault
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != color && len(run) > 0 {
				sb.WriteString(styleFor(color).Render(string(run)))
				run = run[:0]
			}
			color = cell.Color
			run = append(run, cell.Rune)
		}
		if len(run) > 0 {
			sb.WriteString(styleFor(color).Render(string(run)))
		}
	}
	return sb.String()
}
