package tetris

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deal(seed int64, n int) []PieceType {
	r := NewRandomizer(rand.New(rand.NewSource(seed)))
	out := make([]PieceType, n)
	for i := range out {
		out[i] = r.Next()
	}
	return out
}

func TestRandomizerFirstPieceFromOpeningSet(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		first := deal(seed, 1)[0]
		require.Contains(t, OpeningPieces[:], first, "seed %d", seed)
	}
}

func TestRandomizerDeterministic(t *testing.T) {
	a := deal(42, 500)
	b := deal(42, 500)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed dealt different sequences (-a +b):\n%s", diff)
	}
	assert.NotEqual(t, a, deal(43, 500), "different seeds should diverge")
}

func TestRandomizerAvoidsRecentRepeats(t *testing.T) {
	const n = 10000
	seq := deal(7, n)

	windowRepeats, backToBack := 0, 0
	for i := 1; i < n; i++ {
		if slices.Contains(seq[max(0, i-3):i], seq[i]) {
			windowRepeats++
		}
		if seq[i] == seq[i-1] {
			backToBack++
		}
	}

	// Repeats only happen when six draws in a row hit the history.
	assert.Less(t, float64(windowRepeats)/n, 0.08, "too many repeats within 4 draws")
	assert.Less(t, float64(backToBack)/n, 0.04, "too many back-to-back repeats")
}

func TestRandomizerDealsEveryType(t *testing.T) {
	const n = 7000
	counts := make(map[PieceType]int)
	for _, pt := range deal(3, n) {
		require.True(t, pt.Valid())
		counts[pt]++
	}
	for _, pt := range AllPieces {
		assert.Greater(t, counts[pt], n/10, "%v dealt too rarely", pt)
	}
}

func TestRandomizerReset(t *testing.T) {
	r := NewRandomizer(rand.New(rand.NewSource(1)))
	for range 20 {
		r.Next()
	}

	r.Reset()
	assert.Equal(t, [historyLen]PieceType{PieceS, PieceZ, PieceS, PieceZ}, r.History())
	assert.Contains(t, OpeningPieces[:], r.Next())
	assert.Len(t, r.pool, len(AllPieces)*ticketsPerType)
}

func TestRandomizerHistoryTracksDeals(t *testing.T) {
	r := NewRandomizer(rand.New(rand.NewSource(9)))
	var last []PieceType
	for range 6 {
		last = append(last, r.Next())
	}
	h := r.History()
	assert.Equal(t, last[2:], h[:])
}
