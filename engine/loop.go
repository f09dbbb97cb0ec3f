package engine

import (
	"context"
	"time"

	"chromadrop/types"
)

// Run drives g until it is over or ctx is cancelled. Every value received from
// frames is one tick: inputs are polled once, the game is ticked, and the frame is
// rendered unless the game ended during the tick. Run returns the final snapshot.
func Run(ctx context.Context, g *Game, fe Frontend, frames <-chan time.Time) types.Snapshot {
	last := g.lastTick
	for {
		select {
		case <-ctx.Done():
			g.HandleInput(InputQuit)
			return g.Snapshot(last)
		case now := <-frames:
			last = now
			g.Tick(now, fe.PollInputs())
			snap := g.Snapshot(now)
			if g.Done() {
				return snap
			}
			fe.Render(snap)
		}
	}
}
