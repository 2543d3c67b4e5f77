package tetris

// NextQueue is the fixed-length preview of upcoming pieces. Popping the head
// refills the tail from the randomizer.
type NextQueue struct {
	rnd   *Randomizer
	items []PieceType
}

// NewNextQueue creates a queue of length n filled from rnd.
func NewNextQueue(rnd *Randomizer, n int) *NextQueue {
	if n < 1 {
		panic("tetris: next queue needs at least one slot")
	}
	q := &NextQueue{rnd: rnd, items: make([]PieceType, 0, n)}
	q.fill(n)
	return q
}

func (q *NextQueue) fill(n int) {
	for len(q.items) < n {
		q.items = append(q.items, q.rnd.Next())
	}
}

// Pop removes and returns the head, appending a fresh type at the tail.
func (q *NextQueue) Pop() PieceType {
	head := q.items[0]
	n := len(q.items)
	copy(q.items, q.items[1:])
	q.items = q.items[:n-1]
	q.fill(n)
	return head
}

// Peek returns a copy of the queue, head first.
func (q *NextQueue) Peek() []PieceType {
	return append([]PieceType(nil), q.items...)
}

// Len returns the queue length.
func (q *NextQueue) Len() int { return len(q.items) }

// Reset resets the randomizer and refills the queue.
func (q *NextQueue) Reset() {
	n := len(q.items)
	q.rnd.Reset()
	q.items = q.items[:0]
	q.fill(n)
}

// HoldSlot keeps one banked piece type. CanHold gates the swap to once per
// placed piece.
type HoldSlot struct {
	Piece   PieceType // PieceNone when empty
	CanHold bool
}

// Empty reports whether nothing is held.
func (h HoldSlot) Empty() bool { return h.Piece == PieceNone }

// swap stores current and returns what was held before.
func (h *HoldSlot) swap(current PieceType) PieceType {
	prev := h.Piece
	h.Piece = current
	h.CanHold = false
	return prev
}
