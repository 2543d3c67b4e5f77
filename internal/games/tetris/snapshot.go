package tetris

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Frame   uint64
	Mode    string
	Score   int
	Lines   int
	Pieces  int
	Board   string // Board.String() form
	Piece   Piece
	Active  bool
	Next    []PieceType
	Hold    HoldSlot
	Gravity int64 // Gravity interval in milliseconds
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.session.GameOver():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	piece, active := g.session.Piece()
	return Snapshot{
		Tick:    g.tick,
		Frame:   g.session.Frame(),
		Mode:    g.id,
		Score:   g.session.Score(),
		Lines:   g.session.Stats().Lines,
		Pieces:  g.session.Stats().TotalDealt(),
		Board:   g.session.Board().String(),
		Piece:   piece,
		Active:  active,
		Next:    g.session.Next(),
		Hold:    g.session.Hold(),
		Gravity: g.session.gravity.Period().Milliseconds(),
		State:   state,
	}
}
