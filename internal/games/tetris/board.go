package tetris

import (
	"fmt"
	"strings"
)

// Board is the grid of locked cells. Each cell stores the type of the piece
// that filled it, or PieceNone when empty. Anything outside the grid counts
// as a wall.
type Board struct {
	width  int
	height int
	cells  []PieceType // Row-major, row 0 at the top
}

// NewBoard creates an empty width x height board.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tetris: invalid board size %dx%d", width, height))
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]PieceType, width*height),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows, spawn buffer included.
func (b *Board) Height() int { return b.height }

// InBounds reports whether p lies inside the grid.
func (b *Board) InBounds(p Point) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}

// Occupied reports whether p is a locked cell or outside the grid.
func (b *Board) Occupied(p Point) bool {
	if !b.InBounds(p) {
		return true
	}
	return b.cells[p.Y*b.width+p.X] != PieceNone
}

// At returns the piece type locked at p, or PieceNone.
func (b *Board) At(p Point) PieceType {
	if !b.InBounds(p) {
		return PieceNone
	}
	return b.cells[p.Y*b.width+p.X]
}

// Insert locks a cell. Inserting outside the grid or an empty type is a
// programming error and panics.
func (b *Board) Insert(p Point, t PieceType) {
	if !b.InBounds(p) {
		panic(fmt.Sprintf("tetris: insert at %v outside %dx%d board", p, b.width, b.height))
	}
	if !t.Valid() {
		panic(fmt.Sprintf("tetris: insert of %v at %v", t, p))
	}
	b.cells[p.Y*b.width+p.X] = t
}

func (b *Board) row(y int) []PieceType {
	return b.cells[y*b.width : (y+1)*b.width]
}

// IsRowFull reports whether every column of row y is occupied.
func (b *Board) IsRowFull(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	for _, c := range b.row(y) {
		if c == PieceNone {
			return false
		}
	}
	return true
}

// ClearRow removes row y and drops every row above it by one. The top row
// becomes empty.
func (b *Board) ClearRow(y int) {
	if y < 0 || y >= b.height {
		panic(fmt.Sprintf("tetris: clear of row %d outside board", y))
	}
	// Rows 0..y-1 move to 1..y; copy handles the overlap.
	copy(b.cells[b.width:(y+1)*b.width], b.cells[:y*b.width])
	clear(b.row(0))
}

// FullRows returns the indices of all full rows, top to bottom.
func (b *Board) FullRows() []int {
	var rows []int
	for y := range b.height {
		if b.IsRowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for _, c := range b.cells {
		if c != PieceNone {
			n++
		}
	}
	return n
}

// RowCount returns the number of occupied cells in row y.
func (b *Board) RowCount(y int) int {
	n := 0
	for _, c := range b.row(y) {
		if c != PieceNone {
			n++
		}
	}
	return n
}

// Reset empties the board.
func (b *Board) Reset() {
	clear(b.cells)
}

// Rows returns a copy of the grid as one slice per row.
func (b *Board) Rows() [][]PieceType {
	rows := make([][]PieceType, b.height)
	for y := range rows {
		rows[y] = append([]PieceType(nil), b.row(y)...)
	}
	return rows
}

// String renders the board with '.' for empty cells and the piece letter
// for locked ones.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range b.row(y) {
			if c == PieceNone {
				sb.WriteByte('.')
			} else {
				sb.WriteString(c.String())
			}
		}
	}
	return sb.String()
}
