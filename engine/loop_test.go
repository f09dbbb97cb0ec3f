package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chromadrop/types"
)

// scriptedFrontend hands out one batch of inputs per poll and records renders.
type scriptedFrontend struct {
	batches  [][]Input
	polls    int
	rendered []types.Snapshot
}

func (f *scriptedFrontend) PollInputs() []Input {
	f.polls++
	if len(f.batches) == 0 {
		return nil
	}
	batch := f.batches[0]
	f.batches = f.batches[1:]
	return batch
}

func (f *scriptedFrontend) Render(s types.Snapshot) {
	f.rendered = append(f.rendered, s)
}

func framesAt(offsets ...time.Duration) <-chan time.Time {
	ch := make(chan time.Time, len(offsets))
	for _, d := range offsets {
		ch <- at(d)
	}
	return ch
}

func TestRunRendersEveryFrameUntilQuit(t *testing.T) {
	g := newTestGame(t)
	fe := &scriptedFrontend{batches: [][]Input{nil, {InputLeft}, nil, {InputQuit}}}
	frames := framesAt(100*time.Millisecond, 200*time.Millisecond, 300*time.Millisecond, 400*time.Millisecond)

	final := Run(context.Background(), g, fe, frames)

	assert.Equal(t, 4, fe.polls)
	require.Len(t, fe.rendered, 3)
	assert.True(t, final.Finished())
	assert.Equal(t, ReasonQuit, final.Reason)
	assert.Equal(t, types.PhaseRunning, fe.rendered[2].Phase)
}

func TestRunStopsBeforeRenderOnTimeout(t *testing.T) {
	g := newTestGame(t)
	fe := &scriptedFrontend{}
	frames := framesAt(time.Second, 120*time.Second, 121*time.Second)

	final := Run(context.Background(), g, fe, frames)

	require.Len(t, fe.rendered, 1)
	assert.Equal(t, 119, fe.rendered[0].Remaining)
	assert.Equal(t, ReasonTimeout, final.Reason)
	assert.Equal(t, 0, final.Remaining)
	assert.Equal(t, "Game Over, Player1! Final Score: 0", final.Summary())
}

func TestRunReturnsOnCancel(t *testing.T) {
	g := newTestGame(t)
	fe := &scriptedFrontend{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	final := Run(ctx, g, fe, make(chan time.Time))

	assert.Empty(t, fe.rendered)
	assert.True(t, g.Done())
	assert.Equal(t, ReasonQuit, final.Reason)
}
