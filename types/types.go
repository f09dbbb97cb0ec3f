// Package types contains the render-output structures shared by the engine and the UI.
package types

import "fmt"

// Game phases reported in a Snapshot.
const (
	PhaseRunning  = "running"
	PhasePaused   = "paused"
	PhaseGameOver = "game_over"
)

// Pos is a cell position on the board.
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Snapshot is everything the presentation layer needs to draw one frame.
// Board is indexed as Board[y][x] where 0=empty and 1-6 are palette colors.
type Snapshot struct {
	Player     string  `json:"player"`
	Phase      string  `json:"phase"`
	Board      [][]int `json:"board"`
	Piece      []Pos   `json:"piece"`
	PieceColor int     `json:"piece_color"`
	Score      int     `json:"score"`
	Remaining  int     `json:"remaining"` // whole seconds left
	Reason     string  `json:"reason,omitempty"`
}

// Finished returns true if the game is over.
func (s *Snapshot) Finished() bool {
	return s.Phase == PhaseGameOver
}

// Paused returns true while the falling timer is suspended.
func (s *Snapshot) Paused() bool {
	return s.Phase == PhasePaused
}

// Height returns the board height.
func (s *Snapshot) Height() int {
	return len(s.Board)
}

// Width returns the board width.
func (s *Snapshot) Width() int {
	if s.Height() == 0 {
		return 0
	}
	return len(s.Board[0])
}

// PieceAt reports whether the active piece covers (x, y).
func (s *Snapshot) PieceAt(x, y int) bool {
	for _, p := range s.Piece {
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}

// Summary is the final line shown when the game ends.
func (s *Snapshot) Summary() string {
	return fmt.Sprintf("Game Over, %s! Final Score: %d", s.Player, s.Score)
}
