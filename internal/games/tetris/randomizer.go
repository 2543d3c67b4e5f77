package tetris

import (
	"math/rand"
	"slices"
)

const (
	ticketsPerType = 5
	historyLen     = 4
	maxRolls       = 6
)

// Randomizer deals piece types from a weighted ticket pool while avoiding the
// last four pieces dealt.
//
// Each deal draws up to maxRolls tickets and keeps the first one whose type
// is not in the history; the last roll is kept regardless. The drawn ticket
// is then replaced by the type that has gone longest without being dealt, so
// droughts raise a type's odds instead of repeats lowering them.
type Randomizer struct {
	rng     *rand.Rand
	pool    []PieceType
	history [historyLen]PieceType
	order   []PieceType // Least recently dealt first
	dealt   bool
}

// NewRandomizer creates a randomizer drawing from rng.
func NewRandomizer(rng *rand.Rand) *Randomizer {
	r := &Randomizer{rng: rng}
	r.Reset()
	return r
}

// Reset restores the initial pool and history. The rng is not reseeded.
func (r *Randomizer) Reset() {
	r.pool = r.pool[:0]
	for _, t := range AllPieces {
		for range ticketsPerType {
			r.pool = append(r.pool, t)
		}
	}
	// Seeding the history with S and Z keeps them out of the opening deals.
	r.history = [historyLen]PieceType{PieceS, PieceZ, PieceS, PieceZ}
	r.order = append(r.order[:0], AllPieces[:]...)
	r.dealt = false
}

// Next returns the next piece type. It never fails.
func (r *Randomizer) Next() PieceType {
	if !r.dealt {
		r.dealt = true
		t := OpeningPieces[r.rng.Intn(len(OpeningPieces))]
		r.record(t)
		return t
	}

	var idx int
	var t PieceType
	for roll := range maxRolls {
		idx = r.rng.Intn(len(r.pool))
		t = r.pool[idx]
		if !r.recent(t) || roll == maxRolls-1 {
			break
		}
	}

	r.record(t)
	r.pool[idx] = r.order[0]
	return t
}

// History returns the last four types dealt, oldest first.
func (r *Randomizer) History() [historyLen]PieceType {
	return r.history
}

func (r *Randomizer) recent(t PieceType) bool {
	return slices.Contains(r.history[:], t)
}

// record shifts t into the history and moves it to the back of the order list.
func (r *Randomizer) record(t PieceType) {
	copy(r.history[:], r.history[1:])
	r.history[historyLen-1] = t

	if i := slices.Index(r.order, t); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	r.order = append(r.order, t)
}
