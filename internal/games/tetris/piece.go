package tetris

// Piece is the falling tetromino: a type, an orientation, and the board
// position of the top-left corner of its 4x4 box.
type Piece struct {
	Type     PieceType
	Rotation Rotation
	Anchor   Point
}

// Cells returns the four board cells covered by the piece, ordered by cell id.
func (p Piece) Cells() [4]Point {
	cells := ShapeCells(p.Type, p.Rotation)
	for i := range cells {
		cells[i] = cells[i].Add(p.Anchor)
	}
	return cells
}

// Moved returns a copy shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.Anchor = p.Anchor.Add(Point{X: dx, Y: dy})
	return p
}

// Rotated returns a copy in orientation r at the same anchor.
func (p Piece) Rotated(r Rotation) Piece {
	p.Rotation = r % 4
	return p
}
