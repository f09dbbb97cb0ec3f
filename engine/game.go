package engine

import (
	"math/rand"
	"time"

	"chromadrop/board"
	"chromadrop/types"
)

// State is the controller state.
type State int

const (
	Running State = iota
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Running:
		return types.PhaseRunning
	case Paused:
		return types.PhasePaused
	default:
		return types.PhaseGameOver
	}
}

// Reasons a game ended.
const (
	ReasonTimeout = "timeout"
	ReasonBlocked = "blocked"
	ReasonQuit    = "quit"
)

// Game owns the grid, the active piece, the score and the timers of one game.
// It is not safe for concurrent use; the frame loop is its only caller.
type Game struct {
	cfg    GameConfig
	rng    *rand.Rand
	grid   *board.Grid
	active board.Piece

	state  State
	reason string
	score  int

	start     time.Time
	lastTick  time.Time
	ended     time.Time
	sinceFall time.Duration
	fallDelay time.Duration
}

// NewGame seeds the grid and spawns the first piece. now is the game start.
func NewGame(cfg GameConfig, rng *rand.Rand, now time.Time) *Game {
	g := &Game{
		cfg:       cfg,
		rng:       rng,
		grid:      board.NewGrid(),
		state:     Running,
		start:     now,
		lastTick:  now,
		fallDelay: cfg.FallDelay,
	}
	g.grid.Seed(rng, cfg.PrefillCells, cfg.PrefillRows)
	debugLog.Printf("new game: player=%q prefill=%d filled=%d", cfg.Player, cfg.PrefillCells, g.grid.Count())
	g.spawn()
	return g
}

// State returns the controller state.
func (g *Game) State() State {
	return g.state
}

// Done returns true once the game is over.
func (g *Game) Done() bool {
	return g.state == GameOver
}

// Reason returns why the game ended, or "" while it is still going.
func (g *Game) Reason() string {
	return g.reason
}

func (g *Game) Score() int {
	return g.score
}

// Active returns the falling piece.
func (g *Game) Active() board.Piece {
	return g.active
}

// Grid returns a copy of the locked cells.
func (g *Game) Grid() *board.Grid {
	return g.grid.Clone()
}

// FallDelay returns the current time between gravity steps.
func (g *Game) FallDelay() time.Duration {
	return g.fallDelay
}

// Remaining returns the whole seconds left at now, never negative.
// The clock stops when the game ends.
func (g *Game) Remaining(now time.Time) int {
	if g.Done() {
		now = g.ended
	}
	elapsed := int(now.Sub(g.start) / time.Second)
	remaining := int(g.cfg.Duration/time.Second) - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Tick advances the game to now and then applies inputs in order.
func (g *Game) Tick(now time.Time, inputs []Input) {
	if g.Done() {
		return
	}
	dt := now.Sub(g.lastTick)
	if dt < 0 {
		dt = 0
	}
	g.lastTick = now

	if now.Sub(g.start) >= g.cfg.Duration {
		g.finish(ReasonTimeout)
		return
	}

	if g.state == Running {
		if g.score > g.cfg.SpeedUpScore && g.fallDelay != g.cfg.FastFallDelay {
			g.fallDelay = g.cfg.FastFallDelay
			debugLog.Printf("speed up: score=%d delay=%s", g.score, g.fallDelay)
		}
		g.sinceFall += dt
		if g.sinceFall > g.fallDelay {
			g.sinceFall = 0
			g.fall()
			if g.Done() {
				return
			}
		}
	}

	for _, in := range inputs {
		g.HandleInput(in)
		if g.Done() {
			return
		}
	}
}

// HandleInput applies a single player command. Moves that would collide are ignored.
func (g *Game) HandleInput(in Input) {
	if g.Done() {
		return
	}
	switch in {
	case InputQuit:
		g.finish(ReasonQuit)
	case InputPause:
		if g.state == Paused {
			g.state = Running
		} else {
			g.state = Paused
		}
		debugLog.Printf("pause toggled: state=%s", g.state)
	case InputLeft:
		g.move(-1, 0)
	case InputRight:
		g.move(1, 0)
	case InputDown:
		g.move(0, 1)
	}
}

func (g *Game) move(dx, dy int) bool {
	next := g.active.Translate(dx, dy)
	if !board.CanPlace(next, g.grid) {
		return false
	}
	g.active = next
	return true
}

// fall moves the piece down one row, or locks it when it cannot move.
func (g *Game) fall() {
	if g.move(0, 1) {
		return
	}
	g.grid.Lock(g.active)
	res := g.grid.Resolve()
	g.score += res.Points()
	debugLog.Printf("lock: shape=%s color=%s at=%v matched=%d rows=%d passes=%d score=%d",
		g.active.Shape.Name, g.active.Color, g.active.Anchor, res.Matched, res.Rows, res.Passes, g.score)
	g.spawn()
}

func (g *Game) spawn() {
	g.active = board.RandomPiece(g.rng)
	if !board.CanPlace(g.active, g.grid) {
		g.finish(ReasonBlocked)
		return
	}
	debugLog.Printf("spawn: shape=%s color=%s", g.active.Shape.Name, g.active.Color)
}

func (g *Game) finish(reason string) {
	g.state = GameOver
	g.reason = reason
	g.ended = g.lastTick
	debugLog.Printf("game over: reason=%s score=%d", reason, g.score)
}

// Snapshot captures the render output at now. The result shares no memory with g.
func (g *Game) Snapshot(now time.Time) types.Snapshot {
	piece := make([]types.Pos, 0, g.active.Shape.Size())
	for _, c := range g.active.Cells() {
		if board.InBounds(c) {
			piece = append(piece, types.Pos{X: c.X, Y: c.Y})
		}
	}
	return types.Snapshot{
		Player:     g.cfg.Player,
		Phase:      g.state.String(),
		Board:      g.grid.Cells(),
		Piece:      piece,
		PieceColor: int(g.active.Color),
		Score:      g.score,
		Remaining:  g.Remaining(now),
		Reason:     g.reason,
	}
}
