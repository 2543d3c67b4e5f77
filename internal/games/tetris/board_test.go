package tetris

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(b *Board, y int, except ...int) {
	for x := range b.Width() {
		skip := false
		for _, e := range except {
			if e == x {
				skip = true
			}
		}
		if !skip {
			b.Insert(Point{X: x, Y: y}, PieceJ)
		}
	}
}

func TestBoardInsertAndOccupied(t *testing.T) {
	b := NewBoard(10, 24)
	p := Point{X: 3, Y: 7}

	assert.False(t, b.Occupied(p))
	b.Insert(p, PieceS)
	assert.True(t, b.Occupied(p))
	assert.Equal(t, PieceS, b.At(p))
	assert.Equal(t, 1, b.Count())
}

func TestBoardOutsideIsWall(t *testing.T) {
	b := NewBoard(10, 20)
	for _, p := range []Point{{-1, 0}, {10, 0}, {0, -1}, {0, 20}} {
		assert.True(t, b.Occupied(p), "%v should be a wall", p)
		assert.Equal(t, PieceNone, b.At(p))
	}
}

func TestBoardInsertOutOfBoundsPanics(t *testing.T) {
	b := NewBoard(10, 20)
	require.Panics(t, func() { b.Insert(Point{X: 10, Y: 0}, PieceI) })
	require.Panics(t, func() { b.Insert(Point{X: 0, Y: -1}, PieceI) })
	require.Panics(t, func() { b.Insert(Point{X: 0, Y: 0}, PieceNone) })
}

func TestBoardRowFull(t *testing.T) {
	b := NewBoard(10, 20)
	fillRow(b, 19, 9)
	assert.False(t, b.IsRowFull(19))
	assert.Empty(t, b.FullRows())

	b.Insert(Point{X: 9, Y: 19}, PieceI)
	assert.True(t, b.IsRowFull(19))
	assert.Equal(t, []int{19}, b.FullRows())
	assert.False(t, b.IsRowFull(20), "rows outside the board are never full")
}

func TestBoardClearRowShiftsAboveDown(t *testing.T) {
	b := NewBoard(4, 5)
	b.Insert(Point{X: 0, Y: 0}, PieceT) // top row
	b.Insert(Point{X: 1, Y: 2}, PieceL)
	fillRow(b, 3)
	b.Insert(Point{X: 2, Y: 4}, PieceO) // below the cleared row

	b.ClearRow(3)

	want := [][]PieceType{
		{PieceNone, PieceNone, PieceNone, PieceNone},
		{PieceT, PieceNone, PieceNone, PieceNone},
		{PieceNone, PieceNone, PieceNone, PieceNone},
		{PieceNone, PieceL, PieceNone, PieceNone},
		{PieceNone, PieceNone, PieceO, PieceNone},
	}
	if diff := cmp.Diff(want, b.Rows()); diff != "" {
		t.Errorf("board after ClearRow(3) (-want +got):\n%s", diff)
	}
}

func TestBoardClearTopRow(t *testing.T) {
	b := NewBoard(4, 3)
	fillRow(b, 0)
	b.ClearRow(0)
	assert.Equal(t, 0, b.Count())
}

func TestBoardSequentialClears(t *testing.T) {
	b := NewBoard(4, 6)
	fillRow(b, 2)
	b.Insert(Point{X: 0, Y: 3}, PieceZ)
	fillRow(b, 4)
	b.Insert(Point{X: 3, Y: 1}, PieceS)

	for _, y := range b.FullRows() {
		b.ClearRow(y)
	}

	want := "....\n" +
		"....\n" +
		"....\n" +
		"...S\n" +
		"Z...\n" +
		"...."
	assert.Equal(t, want, b.String())
}

func TestBoardReset(t *testing.T) {
	b := NewBoard(10, 20)
	fillRow(b, 5)
	require.Equal(t, 10, b.RowCount(5))

	b.Reset()
	assert.Equal(t, 0, b.Count())
	assert.Empty(t, b.FullRows())
}
