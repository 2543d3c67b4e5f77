package tetris

import "fmt"

// RequestKind enumerates inbound requests.
type RequestKind uint8

const (
	ReqMove RequestKind = iota
	ReqRotate
	ReqHardDrop
	ReqHold
	ReqSpawnNext
)

// Request asks the session to do something during the next Update.
// Only the fields relevant to Kind are read.
type Request struct {
	Kind  RequestKind
	Dir   Direction // ReqMove
	Spin  Spin      // ReqRotate
	Force PieceType // ReqSpawnNext; PieceNone takes the queue head
}

// MoveRequest asks to shift the active piece one cell.
func MoveRequest(d Direction) Request { return Request{Kind: ReqMove, Dir: d} }

// RotateRequest asks to turn the active piece.
func RotateRequest(s Spin) Request { return Request{Kind: ReqRotate, Spin: s} }

// HardDropRequest asks to drop and lock the active piece at once.
func HardDropRequest() Request { return Request{Kind: ReqHardDrop} }

// HoldRequest asks to swap the active piece with the hold slot.
func HoldRequest() Request { return Request{Kind: ReqHold} }

// SpawnRequest replaces the active piece with a new one. With PieceNone the
// type comes from the next queue, otherwise the given type is spawned and
// the queue is left alone.
func SpawnRequest(force PieceType) Request { return Request{Kind: ReqSpawnNext, Force: force} }

func (r Request) String() string {
	switch r.Kind {
	case ReqMove:
		return "move " + r.Dir.String()
	case ReqRotate:
		return "rotate " + r.Spin.String()
	case ReqHardDrop:
		return "hard drop"
	case ReqHold:
		return "hold"
	case ReqSpawnNext:
		if r.Force.Valid() {
			return "spawn " + r.Force.String()
		}
		return "spawn next"
	default:
		return fmt.Sprintf("RequestKind(%d)", r.Kind)
	}
}
