package tetris

// Direction is a translation request.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirDown
)

var directionNames = [...]string{"left", "right", "down"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

func (d Direction) delta() (int, int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 1
	}
}

// Spin is a rotation request.
type Spin uint8

const (
	SpinCW Spin = iota
	SpinCCW
)

func (s Spin) String() string {
	if s == SpinCCW {
		return "ccw"
	}
	return "cw"
}

// Fits reports whether every cell of p is inside the board and free.
func Fits(b *Board, p Piece) bool {
	for _, c := range p.Cells() {
		if b.Occupied(c) {
			return false
		}
	}
	return true
}

// Translate returns p moved one cell in dir. ok is false, and p is returned
// unchanged, when the target position does not fit.
func Translate(b *Board, p Piece, dir Direction) (Piece, bool) {
	dx, dy := dir.delta()
	moved := p.Moved(dx, dy)
	if !Fits(b, moved) {
		return p, false
	}
	return moved, true
}

// Rotate turns p a quarter turn. When the new orientation collides, the piece
// is nudged one cell at a time away from whatever it hit, up to kicks times.
// If it still does not fit, p is returned unchanged with ok false.
func Rotate(b *Board, p Piece, spin Spin, kicks int) (Piece, bool) {
	r := p.Rotation.CW()
	if spin == SpinCCW {
		r = p.Rotation.CCW()
	}

	turned := p.Rotated(r)
	for attempt := 0; ; attempt++ {
		if Fits(b, turned) {
			return turned, true
		}
		if attempt == kicks {
			return p, false
		}
		dx, dy := kickDirection(b, turned)
		turned = turned.Moved(dx, dy)
	}
}

// kickDirection picks the nudge for a colliding piece. Walls take priority,
// then the floor and ceiling; overlapping locked cells push the piece up.
func kickDirection(b *Board, p Piece) (int, int) {
	var left, right, floor, ceiling bool
	for _, c := range p.Cells() {
		switch {
		case c.X < 0:
			left = true
		case c.X >= b.Width():
			right = true
		case c.Y >= b.Height():
			floor = true
		case c.Y < 0:
			ceiling = true
		}
	}
	switch {
	case left:
		return 1, 0
	case right:
		return -1, 0
	case floor:
		return 0, -1
	case ceiling:
		return 0, 1
	default:
		return 0, -1
	}
}

// DropDistance returns how many rows p can fall before landing.
func DropDistance(b *Board, p Piece) int {
	n := 0
	for Fits(b, p.Moved(0, n+1)) {
		n++
	}
	return n
}
