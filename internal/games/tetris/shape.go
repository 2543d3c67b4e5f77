// Package tetris implements the falling-block puzzle simulation: the shape
// table, the repeat-avoiding randomizer, the playfield grid, the active piece
// with its collision resolver, line clears, the hold slot and next queue, and
// the per-frame Session pipeline that ties them together.
//
// Nothing here depends on a terminal. Session is driven with explicit frame
// deltas and requests and reports what happened through Events, so many
// sessions can run side by side and everything is deterministic for a seed.
package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// PieceType identifies one of the seven tetrominoes. The zero value is
// PieceNone and marks an empty board cell or an empty hold slot.
type PieceType uint8

const (
	PieceNone PieceType = iota
	PieceI
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceZ
	PieceT
)

// AllPieces lists every real piece type in table order.
var AllPieces = [...]PieceType{PieceI, PieceJ, PieceL, PieceO, PieceS, PieceZ, PieceT}

// OpeningPieces may be dealt as the very first piece of a game.
var OpeningPieces = [...]PieceType{PieceI, PieceJ, PieceL, PieceT}

var pieceNames = [...]string{"-", "I", "J", "L", "O", "S", "Z", "T"}

func (t PieceType) String() string {
	if int(t) < len(pieceNames) {
		return pieceNames[t]
	}
	return fmt.Sprintf("PieceType(%d)", t)
}

// Valid reports whether t is one of the seven real pieces.
func (t PieceType) Valid() bool {
	return t >= PieceI && t <= PieceT
}

// Rotation is an orientation index in 0..3. Each step is a quarter turn.
type Rotation uint8

// CW returns the next orientation clockwise.
func (r Rotation) CW() Rotation { return (r + 1) % 4 }

// CCW returns the next orientation counter-clockwise.
func (r Rotation) CCW() Rotation { return (r + 3) % 4 }

// Point is a cell coordinate. X grows to the right and Y grows downward, so
// row 0 is the top of the grid.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// shapeGrids holds each orientation as four rows of a 4x4 box, top row first.
// Digits 1..4 name the cells so every cell keeps its identity across turns.
var shapeGrids = [...][4][4]string{
	PieceI: {
		{"0000", "1234", "0000", "0000"},
		{"0010", "0020", "0030", "0040"},
		{"0000", "0000", "1234", "0000"},
		{"0100", "0200", "0300", "0400"},
	},
	PieceJ: {
		{"1000", "2340", "0000", "0000"},
		{"0120", "0300", "0400", "0000"},
		{"0000", "1230", "0040", "0000"},
		{"0100", "0200", "3400", "0000"},
	},
	PieceL: {
		{"0010", "4320", "0000", "0000"},
		{"0100", "0200", "0340", "0000"},
		{"0000", "1230", "4000", "0000"},
		{"1200", "0300", "0400", "0000"},
	},
	PieceO: {
		{"0000", "0120", "0340", "0000"},
		{"0000", "0120", "0340", "0000"},
		{"0000", "0120", "0340", "0000"},
		{"0000", "0120", "0340", "0000"},
	},
	PieceS: {
		{"0000", "0120", "3400", "0000"},
		{"0100", "0230", "0040", "0000"},
		{"0210", "3400", "0000", "0000"},
		{"0100", "0230", "0040", "0000"},
	},
	PieceZ: {
		{"0000", "1200", "0340", "0000"},
		{"0010", "0230", "0400", "0000"},
		{"1200", "0340", "0000", "0000"},
		{"0010", "0230", "0400", "0000"},
	},
	PieceT: {
		{"0100", "2340", "0000", "0000"},
		{"0100", "0230", "0400", "0000"},
		{"0000", "1230", "0400", "0000"},
		{"0100", "2300", "0400", "0000"},
	},
}

// shapeTable[type][rotation][id-1] is the offset of cell id inside the box.
var shapeTable [len(shapeGrids)][4][4]Point

func init() {
	for _, t := range AllPieces {
		for r := range 4 {
			shapeTable[t][r] = parseGrid(t, Rotation(r))
		}
	}
}

func parseGrid(t PieceType, r Rotation) [4]Point {
	var cells [4]Point
	var seen [4]bool
	for y, row := range shapeGrids[t][r] {
		for x, ch := range row {
			if ch == '0' {
				continue
			}
			id := int(ch - '1')
			if id < 0 || id > 3 || seen[id] {
				panic(fmt.Sprintf("tetris: bad cell %q in %v rotation %d", ch, t, r))
			}
			seen[id] = true
			cells[id] = Point{X: x, Y: y}
		}
	}
	for id, ok := range seen {
		if !ok {
			panic(fmt.Sprintf("tetris: %v rotation %d is missing cell %d", t, r, id+1))
		}
	}
	return cells
}

// ShapeCells returns the four box offsets of a piece, ordered by cell id.
// It panics for PieceNone or an unknown type.
func ShapeCells(t PieceType, r Rotation) [4]Point {
	if !t.Valid() {
		panic(fmt.Sprintf("tetris: no shape for %v", t))
	}
	return shapeTable[t][r%4]
}

// CellOffset returns the box offset of cell id (1..4). Any other id panics.
func CellOffset(t PieceType, r Rotation, id int) Point {
	if id < 1 || id > 4 {
		panic(fmt.Sprintf("tetris: %v has no cell id %d", t, id))
	}
	return ShapeCells(t, r)[id-1]
}

// RGB is an sRGB color with channels in [0, 1].
type RGB struct {
	R, G, B float64
}

// Hex formats the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	return uint8(core.ClampF(v, 0, 1)*255 + 0.5)
}

var pieceRGB = [...]RGB{
	PieceI: {0.53, 0.88, 0.99},
	PieceJ: {0.05, 0.72, 0.84},
	PieceL: {1.00, 0.59, 0.42},
	PieceO: {1.00, 0.78, 0.47},
	PieceS: {0.31, 0.84, 0.75},
	PieceZ: {1.00, 0.46, 0.50},
	PieceT: {0.75, 0.60, 1.00},
}

var pieceColor = [...]core.Color{
	PieceNone: core.ColorGray,
	PieceI:    core.ColorBrightCyan,
	PieceJ:    core.ColorCyan,
	PieceL:    core.ColorPeach,
	PieceO:    core.ColorOrange,
	PieceS:    core.ColorTeal,
	PieceZ:    core.ColorBrightRed,
	PieceT:    core.ColorLavender,
}

// PieceRGB returns the display color of a piece type.
func PieceRGB(t PieceType) RGB {
	if !t.Valid() {
		return RGB{0.5, 0.5, 0.5}
	}
	return pieceRGB[t]
}

// PieceColor returns the terminal palette entry closest to PieceRGB.
func PieceColor(t PieceType) core.Color {
	if !t.Valid() {
		return core.ColorGray
	}
	return pieceColor[t]
}
