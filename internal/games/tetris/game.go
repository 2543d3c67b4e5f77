package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode ids registered with the game registry.
const (
	ModeStandard = "tetris"
	ModeClassic  = "tetris_classic"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

func init() {
	registry.Register(ModeStandard, func() registry.Game { return New() })
	registry.Register(ModeClassic, func() registry.Game { return NewClassic() })
}

// Game adapts a Session to the fixed-tick registry.Game interface.
type Game struct {
	id      string
	title   string
	classic bool // No spawn buffer above the visible field

	cfg        config.TetrisConfig
	difficulty *config.DifficultyManager
	session    *Session
	rng        *rand.Rand // Seeds for restarts

	tick     uint64
	dt       time.Duration
	paused   bool
	tooSmall bool
	screenW  int
	screenH  int
	layout   layout
}

// New creates the standard game with a four-row spawn buffer.
func New() *Game {
	return &Game{id: ModeStandard, title: "Tetris"}
}

// NewClassic creates the variant whose pieces spawn directly in the
// visible field.
func NewClassic() *Game {
	return &Game{id: ModeClassic, title: "Tetris (Classic)", classic: true}
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string { return g.title }

// Reset loads configuration and starts a fresh session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	config.ApplyTetrisPreset(&cfg, difficultyPreset)
	if g.classic {
		cfg.Board.HiddenRows = 0
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.session = NewSession(RulesFromConfig(cfg), rc.Seed)

	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.dt = time.Second / time.Duration(tickRate)
	g.tick = 0
	g.paused = false
	g.applyGravity()

	g.resize(rc.ScreenW, rc.ScreenH)
}

// RulesFromConfig converts loaded configuration into session rules.
func RulesFromConfig(cfg config.TetrisConfig) Rules {
	return Rules{
		Width:          cfg.Board.Width,
		VisibleHeight:  cfg.Board.VisibleHeight,
		HiddenRows:     cfg.Board.HiddenRows,
		Gravity:        time.Duration(cfg.Timing.GravityMS) * time.Millisecond,
		RepeatInterval: time.Duration(cfg.Timing.RepeatMS) * time.Millisecond,
		NextQueueLen:   cfg.Rules.NextQueue,
		KickAttempts:   cfg.Rules.KickAttempts,
		PointsPerLine:  cfg.Rules.PointsPerLine,
	}
}

func (g *Game) resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.layout = computeLayout(g.session.Rules(), w, h)
	g.tooSmall = !g.layout.fits
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.session.GameOver() {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: int(time.Second / g.dt),
			Seed:     g.rng.Int63(),
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.session.GameOver() {
		g.paused = !g.paused
	}

	if g.session.GameOver() || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.difficulty.IsEnabled() {
		g.applyGravity()
	}

	events := g.session.Update(g.dt, requestsFor(in)...)

	return core.StepResult{State: g.State(), Notices: notices(events)}
}

// applyGravity sets the fall interval for the current score and tick. Without
// progression it only needs to run once per game.
func (g *Game) applyGravity() {
	base := time.Duration(g.cfg.Timing.GravityMS) * time.Millisecond
	floor := time.Duration(g.cfg.Timing.MinGravityMS) * time.Millisecond
	g.session.SetGravity(g.difficulty.Interval(base, floor, g.session.Score(), int(g.tick)))
}

// requestsFor maps one frame of actions to session requests. Terminals only
// report presses, so every movement key is a single step.
func requestsFor(in core.InputFrame) []Request {
	var reqs []Request
	if in.Has(core.ActionLeft) {
		reqs = append(reqs, MoveRequest(DirLeft))
	}
	if in.Has(core.ActionRight) {
		reqs = append(reqs, MoveRequest(DirRight))
	}
	if in.Has(core.ActionDown) {
		reqs = append(reqs, MoveRequest(DirDown))
	}
	if in.Has(core.ActionRotateCW) {
		reqs = append(reqs, RotateRequest(SpinCW))
	}
	if in.Has(core.ActionRotateCCW) {
		reqs = append(reqs, RotateRequest(SpinCCW))
	}
	if in.Has(core.ActionHardDrop) {
		reqs = append(reqs, HardDropRequest())
	}
	if in.Has(core.ActionHold) {
		reqs = append(reqs, HoldRequest())
	}
	return reqs
}

// notices keeps the events worth a status line.
func notices(events []Event) []string {
	var out []string
	for _, e := range events {
		switch e.Kind {
		case EvLinesCleared, EvHeldSwapped, EvGameOver:
			out = append(out, e.String())
		}
	}
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Lines:    g.session.Stats().Lines,
		GameOver: g.session.GameOver(),
		Paused:   g.paused,
	}
}

// Session exposes the underlying simulation, e.g. for recording stats.
func (g *Game) Session() *Session { return g.session }

// Totals reports lines cleared and pieces dealt in the current game.
func (g *Game) Totals() (lines, pieces int) {
	if g.session == nil {
		return 0, 0
	}
	stats := g.session.Stats()
	return stats.Lines, stats.TotalDealt()
}
