package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellW      = 2  // Screen columns per board cell
	panelW     = 14 // Side panel width
	panelGap   = 2
	hudHeight  = 1
	blockRune  = '█'
	ghostRune  = '░'
	emptyRune  = '·'
	previewLen = 3 // Queue entries drawn in the side panel
)

// layout positions the board and side panel on screen.
type layout struct {
	fits   bool
	board  core.Rect // Box around the visible field, border included
	panelX int
}

func computeLayout(r Rules, w, h int) layout {
	boardW := r.Width*cellW + 2
	boardH := r.VisibleHeight + 2
	totalW := boardW + panelGap + panelW
	totalH := hudHeight + boardH

	if w < totalW || h < totalH {
		return layout{}
	}
	x := (w - totalW) / 2
	y := hudHeight + (h-totalH)/2
	return layout{
		fits:   true,
		board:  core.NewRect(x, y, boardW, boardH),
		panelX: x + boardW + panelGap,
	}
}

// Resize adapts the layout to a new terminal size without restarting.
func (g *Game) Resize(w, h int) {
	if g.session == nil {
		g.screenW, g.screenH = w, h
		return
	}
	g.resize(w, h)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		rules := g.session.Rules()
		need := fmt.Sprintf("Need %dx%d", rules.Width*cellW+2+panelGap+panelW, hudHeight+rules.VisibleHeight+2)
		g.renderOverlay(dst, "Window too small", need)
		return
	}

	g.renderBoard(dst)
	g.renderPanel(dst)

	switch {
	case g.session.GameOver():
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Score: %d  Lines: %d", g.title, g.session.Score(), g.session.Stats().Lines)
	dst.DrawText(0, 0, hud)
}

// cellOrigin returns the screen position of board cell p, or false when p
// is in the spawn buffer.
func (g *Game) cellOrigin(p Point) (int, int, bool) {
	hidden := g.session.Rules().HiddenRows
	if p.Y < hidden {
		return 0, 0, false
	}
	inner := g.layout.board.Inset(1)
	return inner.X + p.X*cellW, inner.Y + p.Y - hidden, true
}

func (g *Game) drawCell(dst *core.Screen, p Point, r rune, c core.Color) {
	x, y, ok := g.cellOrigin(p)
	if !ok {
		return
	}
	for i := range cellW {
		dst.SetColor(x+i, y, r, c)
	}
}

func (g *Game) renderBoard(dst *core.Screen) {
	dst.DrawBox(g.layout.board, core.ColorGray)

	board := g.session.Board()
	for y := range board.Height() {
		for x := range board.Width() {
			p := Point{X: x, Y: y}
			if t := board.At(p); t != PieceNone {
				g.drawCell(dst, p, blockRune, PieceColor(t))
			} else {
				x0, y0, ok := g.cellOrigin(p)
				if ok {
					dst.SetColor(x0+1, y0, emptyRune, core.ColorGray)
				}
			}
		}
	}

	if ghost, ok := g.session.Ghost(); ok {
		for _, c := range ghost.Cells() {
			g.drawCell(dst, c, ghostRune, PieceColor(ghost.Type))
		}
	}
	if piece, ok := g.session.Piece(); ok {
		for _, c := range piece.Cells() {
			g.drawCell(dst, c, blockRune, PieceColor(piece.Type))
		}
	}
}

func (g *Game) renderPanel(dst *core.Screen) {
	x := g.layout.panelX
	y := g.layout.board.Y

	dst.DrawText(x, y, "HOLD")
	hold := g.session.Hold()
	if !hold.Empty() {
		c := PieceColor(hold.Piece)
		if !hold.CanHold {
			c = core.ColorGray
		}
		drawPreview(dst, x, y+1, hold.Piece, c)
	}

	y += 4
	dst.DrawText(x, y, "NEXT")
	for i, t := range g.session.Next() {
		if i == previewLen {
			break
		}
		drawPreview(dst, x, y+1+i*3, t, PieceColor(t))
	}

	y += 1 + previewLen*3 + 1
	stats := g.session.Stats()
	dst.DrawText(x, y, fmt.Sprintf("Score  %d", g.session.Score()))
	dst.DrawText(x, y+1, fmt.Sprintf("Lines  %d", stats.Lines))
	dst.DrawText(x, y+2, fmt.Sprintf("Pieces %d", stats.TotalDealt()))
}

// drawPreview draws a piece in its spawn orientation, trimmed to the rows
// it occupies.
func drawPreview(dst *core.Screen, x, y int, t PieceType, c core.Color) {
	cells := ShapeCells(t, 0)
	top := cells[0].Y
	for _, p := range cells {
		top = min(top, p.Y)
	}
	for _, p := range cells {
		for i := range cellW {
			dst.SetColor(x+p.X*cellW+i, y+p.Y-top, blockRune, c)
		}
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
