package tetris

import "github.com/kamstrup/intmap"

// Stats accumulates per-session counters.
type Stats struct {
	dealt   *intmap.Map[PieceType, int] // Pieces drawn from the next queue, by type
	clears  *intmap.Map[int, int]       // Locks that cleared n lines, by n
	Locked  int
	Lines   int
	Holds   int
	Drops   int // Hard drops
	Dropped int // Rows fallen through hard drops
}

func newStats() *Stats {
	return &Stats{
		dealt:  intmap.New[PieceType, int](len(AllPieces)),
		clears: intmap.New[int, int](4),
	}
}

func (s *Stats) reset() {
	s.dealt.Clear()
	s.clears.Clear()
	s.Locked, s.Lines, s.Holds, s.Drops, s.Dropped = 0, 0, 0, 0, 0
}

func (s *Stats) recordDealt(t PieceType) {
	n, _ := s.dealt.Get(t)
	s.dealt.Put(t, n+1)
}

func (s *Stats) recordClear(lines int) {
	n, _ := s.clears.Get(lines)
	s.clears.Put(lines, n+1)
	s.Lines += lines
}

// Dealt returns how many pieces of type t left the next queue.
func (s *Stats) Dealt(t PieceType) int {
	n, _ := s.dealt.Get(t)
	return n
}

// TotalDealt returns the number of pieces drawn from the next queue. Held
// pieces coming back and forced spawns are not counted again.
func (s *Stats) TotalDealt() int {
	total := 0
	for _, n := range s.dealt.All() {
		total += n
	}
	return total
}

// Clears returns how many locks cleared exactly n lines.
func (s *Stats) Clears(n int) int {
	c, _ := s.clears.Get(n)
	return c
}
