package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateRoundTrip(t *testing.T) {
	b := NewBoard(10, 24)
	start := Piece{Type: PieceT, Anchor: Point{X: 3, Y: 4}}

	left, ok := Translate(b, start, DirLeft)
	require.True(t, ok)
	back, ok := Translate(b, left, DirRight)
	require.True(t, ok)
	assert.Equal(t, start, back)

	right, ok := Translate(b, start, DirRight)
	require.True(t, ok)
	back, ok = Translate(b, right, DirLeft)
	require.True(t, ok)
	assert.Equal(t, start, back)
}

func TestTranslateRejectsWallsAndBlocks(t *testing.T) {
	b := NewBoard(10, 24)

	// J spawn orientation touches box column 0.
	atWall := Piece{Type: PieceJ, Anchor: Point{X: 0, Y: 4}}
	got, ok := Translate(b, atWall, DirLeft)
	assert.False(t, ok)
	assert.Equal(t, atWall, got, "rejected move must not change the piece")

	b.Insert(Point{X: 3, Y: 5}, PieceO)
	nextToBlock := Piece{Type: PieceJ, Anchor: Point{X: 0, Y: 4}}
	_, ok = Translate(b, nextToBlock, DirRight)
	assert.False(t, ok)
}

func TestTranslateDownStopsAtFloor(t *testing.T) {
	b := NewBoard(10, 24)
	// I spawn orientation occupies box row 1.
	p := Piece{Type: PieceI, Anchor: Point{X: 3, Y: 22}}
	_, ok := Translate(b, p, DirDown)
	assert.False(t, ok)
	assert.Equal(t, 0, DropDistance(b, p))
	assert.Equal(t, 18, DropDistance(b, p.Moved(0, -18)))
}

func TestRotateInOpenSpace(t *testing.T) {
	b := NewBoard(10, 24)
	p := Piece{Type: PieceT, Anchor: Point{X: 3, Y: 8}}

	cw, ok := Rotate(b, p, SpinCW, 3)
	require.True(t, ok)
	assert.Equal(t, Rotation(1), cw.Rotation)
	assert.Equal(t, p.Anchor, cw.Anchor, "no kick needed in open space")

	ccw, ok := Rotate(b, p, SpinCCW, 3)
	require.True(t, ok)
	assert.Equal(t, Rotation(3), ccw.Rotation)
}

func TestRotateKicksOffLeftWall(t *testing.T) {
	b := NewBoard(10, 24)
	// Vertical I hugging the left wall; turning lays it across x = -2..1.
	p := Piece{Type: PieceI, Rotation: 1, Anchor: Point{X: -2, Y: 8}}
	require.True(t, Fits(b, p))

	got, ok := Rotate(b, p, SpinCW, 3)
	require.True(t, ok)
	assert.Equal(t, Rotation(2), got.Rotation)
	assert.Equal(t, Point{X: 0, Y: 8}, got.Anchor, "two nudges to the right")
	assert.True(t, Fits(b, got))
}

func TestRotateKicksOffRightWall(t *testing.T) {
	b := NewBoard(10, 24)
	// Vertical I at x = 9; turning lays it across x = 8..11.
	p := Piece{Type: PieceI, Rotation: 3, Anchor: Point{X: 8, Y: 8}}
	require.True(t, Fits(b, p))

	got, ok := Rotate(b, p, SpinCCW, 3)
	require.True(t, ok)
	assert.Equal(t, Rotation(2), got.Rotation)
	assert.Equal(t, Point{X: 6, Y: 8}, got.Anchor, "two nudges to the left")
}

func TestRotateKicksUpFromFloor(t *testing.T) {
	b := NewBoard(10, 24)
	flat := Piece{Type: PieceI, Anchor: Point{X: 3, Y: 22}} // resting on the floor

	got, ok := Rotate(b, flat, SpinCW, 3)
	require.True(t, ok)
	assert.Equal(t, Point{X: 3, Y: 20}, got.Anchor, "two nudges up")
	for _, c := range got.Cells() {
		assert.Less(t, c.Y, 24)
	}
}

func TestRotateRevertsWhenKicksExhausted(t *testing.T) {
	b := NewBoard(10, 24)
	// A one-wide well in column 5 over rows 10..23.
	for y := 10; y < 24; y++ {
		fillRow(b, y, 5)
	}
	p := Piece{Type: PieceI, Rotation: 1, Anchor: Point{X: 3, Y: 20}}
	require.True(t, Fits(b, p))

	got, ok := Rotate(b, p, SpinCW, 3)
	assert.False(t, ok)
	assert.Equal(t, p, got, "failed rotation must fully revert")
}

func TestRotateWithoutKicks(t *testing.T) {
	b := NewBoard(10, 24)
	p := Piece{Type: PieceI, Rotation: 1, Anchor: Point{X: -2, Y: 8}}

	got, ok := Rotate(b, p, SpinCW, 0)
	assert.False(t, ok)
	assert.Equal(t, p, got)
}

func TestPieceCells(t *testing.T) {
	p := Piece{Type: PieceO, Anchor: Point{X: 3, Y: 4}}
	assert.Equal(t, [4]Point{{4, 5}, {5, 5}, {4, 6}, {5, 6}}, p.Cells())
	assert.Equal(t, Point{X: 2, Y: 6}, p.Moved(-1, 2).Anchor)
	assert.Equal(t, Rotation(1), p.Rotated(5).Rotation)
}
