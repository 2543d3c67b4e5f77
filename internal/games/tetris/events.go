package tetris

import (
	"fmt"
	"strings"
)

// EventKind enumerates outbound notifications.
type EventKind uint8

const (
	EvSpawned EventKind = iota
	EvLocked
	EvLinesCleared
	EvHeldSwapped
	EvHardDropped
	EvGameOver
)

// Event reports a state change committed during Update.
type Event struct {
	Kind     EventKind
	Piece    PieceType // Spawned, Locked, HeldSwapped (the type now held), HardDropped
	Rows     []int     // LinesCleared: row indices as they were before clearing
	Distance int       // HardDropped: rows fallen
}

func (e Event) String() string {
	switch e.Kind {
	case EvSpawned:
		return fmt.Sprintf("spawned %v", e.Piece)
	case EvLocked:
		return fmt.Sprintf("locked %v", e.Piece)
	case EvLinesCleared:
		rows := make([]string, len(e.Rows))
		for i, r := range e.Rows {
			rows[i] = fmt.Sprint(r)
		}
		return fmt.Sprintf("cleared %d line(s) [%s]", len(e.Rows), strings.Join(rows, " "))
	case EvHeldSwapped:
		return fmt.Sprintf("held %v", e.Piece)
	case EvHardDropped:
		return fmt.Sprintf("hard dropped %v %d rows", e.Piece, e.Distance)
	case EvGameOver:
		return "game over"
	default:
		return fmt.Sprintf("EventKind(%d)", e.Kind)
	}
}

// Find returns the first event of the given kind.
func Find(events []Event, kind EventKind) (Event, bool) {
	for _, e := range events {
		if e.Kind == kind {
			return e, true
		}
	}
	return Event{}, false
}
