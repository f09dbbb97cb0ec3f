package ui

import (
	"github.com/gdamore/tcell/v2"

	"chromadrop/engine"
	"chromadrop/types"
)

// SummaryCard is the game over screen.
type SummaryCard struct {
	*MenuCard
	snapshot types.Snapshot
}

func NewSummaryCard() *SummaryCard {
	return &SummaryCard{MenuCard: NewMenuCard("GAME OVER")}
}

func (c *SummaryCard) SetSnapshot(s types.Snapshot) {
	c.snapshot = s
}

// Draw renders the final score and the reason the game ended.
func (c *SummaryCard) Draw(screen tcell.Screen) {
	_, top, _, height := c.drawCard(screen)
	if height < 0 {
		return
	}
	row := top + 1
	c.drawCentered(screen, row, c.snapshot.Summary(), MenuColors.Selected, true)
	if height > 3 {
		c.drawCentered(screen, row+2, reasonText(c.snapshot.Reason), MenuColors.Label, false)
	}
	if height > 5 {
		c.drawCentered(screen, row+4, "Enter: new game  |  q: quit", MenuColors.Hint, false)
	}
}

func reasonText(reason string) string {
	switch reason {
	case engine.ReasonTimeout:
		return "Time is up."
	case engine.ReasonBlocked:
		return "No room for the next piece."
	case engine.ReasonQuit:
		return "Game abandoned."
	}
	return ""
}
