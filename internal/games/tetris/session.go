package tetris

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Rules are the fixed parameters of a session.
type Rules struct {
	Width          int
	VisibleHeight  int
	HiddenRows     int // Spawn buffer rows above the visible field
	Gravity        time.Duration
	RepeatInterval time.Duration // Held-key repeat for left, right and down
	NextQueueLen   int
	KickAttempts   int
	PointsPerLine  int
}

// DefaultRules returns the standard 10x20 game with a 4-row spawn buffer.
func DefaultRules() Rules {
	return Rules{
		Width:          10,
		VisibleHeight:  20,
		HiddenRows:     4,
		Gravity:        500 * time.Millisecond,
		RepeatInterval: 250 * time.Millisecond,
		NextQueueLen:   4,
		KickAttempts:   3,
		PointsPerLine:  1,
	}
}

// Height returns the total grid height, spawn buffer included.
func (r Rules) Height() int {
	return r.VisibleHeight + r.HiddenRows
}

// SpawnColumns returns the two center columns that end the game when
// blocked at the top.
func (r Rules) SpawnColumns() (int, int) {
	return r.Width/2 - 1, r.Width / 2
}

func (r Rules) spawnPoint() Point {
	return Point{X: (r.Width - 4) / 2, Y: r.HiddenRows}
}

// Validate reports the first unusable value.
func (r Rules) Validate() error {
	switch {
	case r.Width < 4 || r.VisibleHeight < 4:
		return fmt.Errorf("board %dx%d smaller than a piece", r.Width, r.VisibleHeight)
	case r.HiddenRows < 0:
		return errors.New("negative hidden rows")
	case r.Gravity <= 0 || r.RepeatInterval <= 0:
		return errors.New("timer intervals must be positive")
	case r.NextQueueLen < 1:
		return errors.New("next queue needs at least one slot")
	case r.KickAttempts < 0 || r.PointsPerLine < 0:
		return errors.New("negative kick attempts or points")
	}
	return nil
}

// Session is one game: board, active piece, queue, hold slot, randomizer,
// score and timers. Sessions share nothing and are not safe for concurrent
// use.
type Session struct {
	rules Rules
	seed  int64

	board *Board
	rnd   *Randomizer
	queue *NextQueue
	hold  HoldSlot
	piece Piece

	active   bool
	locked   bool // A piece locked during the current frame
	gameOver bool
	score    int
	frame    uint64

	gravity *Timer
	repeat  [3]*Timer // Indexed by Direction
	held    [3]bool
	pressed []Direction // Immediate moves from SetHeld, applied next frame

	stats  *Stats
	events []Event
}

// NewSession creates a session and spawns its first piece. It panics on
// invalid rules.
func NewSession(rules Rules, seed int64) *Session {
	if err := rules.Validate(); err != nil {
		panic("tetris: " + err.Error())
	}
	s := &Session{
		rules:   rules,
		seed:    seed,
		board:   NewBoard(rules.Width, rules.Height()),
		gravity: NewTimer(rules.Gravity),
		stats:   newStats(),
	}
	for i := range s.repeat {
		s.repeat[i] = NewTimer(rules.RepeatInterval)
	}
	s.Reset()
	return s
}

// Reset restarts the game from the session seed. The same seed always
// deals the same pieces.
func (s *Session) Reset() {
	s.board.Reset()
	s.rnd = NewRandomizer(rand.New(rand.NewSource(s.seed)))
	s.queue = NewNextQueue(s.rnd, s.rules.NextQueueLen)
	s.hold = HoldSlot{CanHold: true}
	s.piece = Piece{}
	s.active = false
	s.locked = false
	s.gameOver = false
	s.score = 0
	s.frame = 0
	s.gravity.Reset()
	s.gravity.Resume()
	for i := range s.repeat {
		s.repeat[i].Reset()
		s.held[i] = false
	}
	s.pressed = s.pressed[:0]
	s.stats.reset()
	s.events = s.events[:0]

	s.spawn(s.deal())
}

// Update runs one frame. Requests are bucketed by kind and handled in a
// fixed order: spawn, gravity, rotation, movement, hard drop, hold, then
// line clear and game over. It returns every event committed since the
// previous call.
func (s *Session) Update(dt time.Duration, reqs ...Request) []Event {
	if !s.gameOver {
		s.frame++
		s.runFrame(dt, reqs)
	}
	events := s.events
	s.events = nil
	return events
}

func (s *Session) runFrame(dt time.Duration, reqs []Request) {
	var spawns, rotations, moves []Request
	hardDrop, hold := false, false

	for _, d := range s.pressed {
		moves = append(moves, MoveRequest(d))
	}
	s.pressed = s.pressed[:0]

	for _, r := range reqs {
		switch r.Kind {
		case ReqSpawnNext:
			spawns = append(spawns, r)
		case ReqRotate:
			rotations = append(rotations, r)
		case ReqMove:
			moves = append(moves, r)
		case ReqHardDrop:
			hardDrop = true
		case ReqHold:
			hold = true
		}
	}
	s.locked = false

	for _, r := range spawns {
		s.spawnRequested(r.Force)
	}

	for range s.gravity.Tick(dt) {
		s.move(DirDown)
	}

	for _, r := range rotations {
		s.rotate(r.Spin)
	}

	for _, r := range moves {
		s.move(r.Dir)
	}
	for d, on := range s.held {
		if !on {
			continue
		}
		for range s.repeat[d].Tick(dt) {
			s.move(Direction(d))
		}
	}

	if hardDrop {
		s.hardDrop()
	}

	if hold {
		s.holdPiece()
	}

	if s.locked {
		s.settle()
	}
}

// SetHeld reports a key press or release for a movement direction. A press
// moves once on the next frame, then repeats every RepeatInterval while
// held. Holding down also pauses gravity; releasing it resumes. Only hosts
// that see key releases should call it; the terminal front end does not.
func (s *Session) SetHeld(d Direction, held bool) {
	if int(d) >= len(s.held) || s.held[d] == held {
		return
	}
	s.held[d] = held
	s.repeat[d].Reset()

	if held {
		s.pressed = append(s.pressed, d)
	}
	if d == DirDown {
		if held {
			s.gravity.Pause()
			s.gravity.Reset()
		} else if !s.gameOver {
			s.gravity.Resume()
		}
	}
}

// Held reports whether a direction is currently held.
func (s *Session) Held(d Direction) bool {
	return int(d) < len(s.held) && s.held[d]
}

// SetGravity changes the gravity interval, e.g. as difficulty rises.
func (s *Session) SetGravity(period time.Duration) {
	if period > 0 && period != s.gravity.Period() {
		s.gravity.SetPeriod(period)
	}
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// spawn places a new active piece at the top of the visible field. When it
// overlaps the stack it is lifted into the spawn buffer; if no position
// fits, the game is over.
func (s *Session) spawn(t PieceType) bool {
	p := Piece{Type: t, Anchor: s.rules.spawnPoint()}
	for lift := 0; lift < 4 && !Fits(s.board, p); lift++ {
		p = p.Moved(0, -1)
	}
	if !Fits(s.board, p) {
		s.endGame()
		return false
	}

	s.piece = p
	s.active = true
	s.gravity.Reset()
	s.emit(Event{Kind: EvSpawned, Piece: t})
	return true
}

// deal takes the next piece from the queue. Only pieces leaving the queue
// count as dealt; held and forced pieces do not.
func (s *Session) deal() PieceType {
	t := s.queue.Pop()
	s.stats.recordDealt(t)
	return t
}

func (s *Session) spawnRequested(force PieceType) {
	if s.gameOver {
		return
	}
	if force.Valid() {
		s.spawn(force)
		return
	}
	s.spawn(s.deal())
}

// move translates the active piece. A blocked downward move locks it.
func (s *Session) move(d Direction) bool {
	if !s.active {
		return false
	}
	p, ok := Translate(s.board, s.piece, d)
	if ok {
		s.piece = p
		return true
	}
	if d == DirDown {
		s.lock()
	}
	return false
}

func (s *Session) rotate(spin Spin) bool {
	if !s.active {
		return false
	}
	p, ok := Rotate(s.board, s.piece, spin, s.rules.KickAttempts)
	if !ok {
		return false
	}
	s.piece = p
	s.gravity.Reset()
	return true
}

func (s *Session) hardDrop() {
	if !s.active {
		return
	}
	dist := DropDistance(s.board, s.piece)
	s.piece = s.piece.Moved(0, dist)
	s.stats.Drops++
	s.stats.Dropped += dist
	s.emit(Event{Kind: EvHardDropped, Piece: s.piece.Type, Distance: dist})
	s.lock()
}

// lock writes the active piece into the board. The rest of the lock work
// happens in settle at the end of the frame.
func (s *Session) lock() {
	for _, c := range s.piece.Cells() {
		s.board.Insert(c, s.piece.Type)
	}
	s.active = false
	s.locked = true
	s.stats.Locked++
	s.emit(Event{Kind: EvLocked, Piece: s.piece.Type})
}

// holdPiece banks the active piece and brings in the previously held one,
// or the queue head when the slot was empty. Ignored until the next lock
// once used.
func (s *Session) holdPiece() {
	if !s.active || !s.hold.CanHold {
		return
	}
	current := s.piece.Type
	s.active = false
	prev := s.hold.swap(current)
	s.stats.Holds++
	s.emit(Event{Kind: EvHeldSwapped, Piece: current})

	if prev == PieceNone {
		prev = s.deal()
	}
	s.spawn(prev)
}

// Board returns the locked-cell grid. Callers must not modify it.
func (s *Session) Board() *Board { return s.board }

// Piece returns the active piece and whether one exists.
func (s *Session) Piece() (Piece, bool) { return s.piece, s.active }

// Ghost returns where the active piece would land on a hard drop.
func (s *Session) Ghost() (Piece, bool) {
	if !s.active {
		return Piece{}, false
	}
	return s.piece.Moved(0, DropDistance(s.board, s.piece)), true
}

// Next returns the upcoming piece types, head first.
func (s *Session) Next() []PieceType { return s.queue.Peek() }

// Hold returns the hold slot.
func (s *Session) Hold() HoldSlot { return s.hold }

// Score returns the points earned since the last reset.
func (s *Session) Score() int { return s.score }

// GameOver reports whether the session has ended.
func (s *Session) GameOver() bool { return s.gameOver }

// Frame returns the number of frames run since the last reset.
func (s *Session) Frame() uint64 { return s.frame }

// Stats returns the session counters.
func (s *Session) Stats() *Stats { return s.stats }

// Rules returns the session rules.
func (s *Session) Rules() Rules { return s.rules }
