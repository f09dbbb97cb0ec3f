package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotDimensions(t *testing.T) {
	var empty Snapshot
	assert.Equal(t, 0, empty.Width())
	assert.Equal(t, 0, empty.Height())

	s := Snapshot{Board: [][]int{{0, 1, 2}, {3, 4, 5}}}
	assert.Equal(t, 3, s.Width())
	assert.Equal(t, 2, s.Height())
}

func TestSnapshotPhase(t *testing.T) {
	s := Snapshot{Phase: PhasePaused}
	assert.True(t, s.Paused())
	assert.False(t, s.Finished())

	s.Phase = PhaseGameOver
	assert.True(t, s.Finished())
}

func TestSnapshotPieceAt(t *testing.T) {
	s := Snapshot{Piece: []Pos{{X: 2, Y: 3}, {X: 3, Y: 3}}}
	assert.True(t, s.PieceAt(3, 3))
	assert.False(t, s.PieceAt(3, 2))
}

func TestSnapshotSummary(t *testing.T) {
	s := Snapshot{Player: "Player1", Score: 270}
	assert.Equal(t, "Game Over, Player1! Final Score: 270", s.Summary())
}
