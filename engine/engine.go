// Package engine drives a chromadrop game: falling timer, input handling, scoring
// and the frame loop.
package engine

import (
	"math/rand"
	"time"

	"chromadrop/types"
)

// Frontend is the presentation layer the frame loop talks to.
type Frontend interface {
	// PollInputs returns the inputs received since the last call, in arrival order.
	// It must not block.
	PollInputs() []Input

	// Render draws one frame. The snapshot is owned by the frontend.
	Render(snapshot types.Snapshot)
}

// Input is a player command.
type Input int

const (
	InputQuit Input = iota
	InputPause
	InputLeft
	InputRight
	InputDown
)

func (i Input) String() string {
	switch i {
	case InputQuit:
		return "quit"
	case InputPause:
		return "pause"
	case InputLeft:
		return "left"
	case InputRight:
		return "right"
	case InputDown:
		return "down"
	}
	return "unknown"
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	Player        string        // Label shown in the final summary
	Seed          int64         // Random seed, 0 picks one from the clock
	FallDelay     time.Duration // Time between gravity steps
	FastFallDelay time.Duration // Fall delay once the score passes SpeedUpScore
	SpeedUpScore  int           // Score the game speeds up after (one time)
	Duration      time.Duration // Game length; pausing does not extend it
	PrefillCells  int           // Random cells dropped into the grid at start
	PrefillRows   int           // Depth of the prefill area from the bottom
	FPS           int           // Frames per second of the frame loop
}

// DefaultConfig returns the standard game rules.
func DefaultConfig() GameConfig {
	return GameConfig{
		Player:        "Player1",
		FallDelay:     500 * time.Millisecond,
		FastFallDelay: 300 * time.Millisecond,
		SpeedUpScore:  160,
		Duration:      120 * time.Second,
		PrefillCells:  60,
		PrefillRows:   8,
		FPS:           60,
	}
}

// FrameInterval is the time between two frame loop ticks.
func (c GameConfig) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FPS)
}

// NewRand returns the random source for a game, seeded from Seed or from now.
func (c GameConfig) NewRand(now time.Time) *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = now.UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
