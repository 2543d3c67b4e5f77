package tetris

// clearLines removes every full row and scores it. Rows are cleared one at a
// time from the top, each as its own single-line shift; clearing a row only
// moves the rows above it, so lower indices stay valid.
func (s *Session) clearLines() []int {
	rows := s.board.FullRows()
	if len(rows) == 0 {
		return nil
	}
	for _, y := range rows {
		s.board.ClearRow(y)
	}
	s.score += len(rows) * s.rules.PointsPerLine
	s.stats.recordClear(len(rows))
	s.emit(Event{Kind: EvLinesCleared, Rows: rows})
	return rows
}

// toppedOut reports whether a locked cell sits on or above the topmost
// visible row in one of the spawn columns.
func (s *Session) toppedOut() bool {
	left, right := s.rules.SpawnColumns()
	for y := 0; y <= s.rules.HiddenRows; y++ {
		if s.board.Occupied(Point{X: left, Y: y}) || s.board.Occupied(Point{X: right, Y: y}) {
			return true
		}
	}
	return false
}

// settle runs the post-lock stage: line clear, hold re-enable, game-over
// check, then the next spawn.
func (s *Session) settle() {
	s.clearLines()
	s.hold.CanHold = true
	if s.toppedOut() {
		s.endGame()
		return
	}
	s.spawn(s.deal())
}

func (s *Session) endGame() {
	if s.gameOver {
		return
	}
	s.gameOver = true
	s.active = false
	s.gravity.Pause()
	s.emit(Event{Kind: EvGameOver})
}
