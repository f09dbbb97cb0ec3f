package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"chromadrop/types"
)

// GameInfoPanel shows the player, score and clock next to the board.
type GameInfoPanel struct {
	box      *tview.TextView
	snapshot *types.Snapshot
}

func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

func (p *GameInfoPanel) SetSnapshot(s types.Snapshot) {
	p.snapshot = &s
	p.refresh()
}

func (p *GameInfoPanel) refresh() {
	if p.snapshot == nil {
		p.box.SetText("")
		return
	}
	s := p.snapshot

	var text string
	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Player:[-:-:-] %s\n", tview.Escape(s.Player))
	text += fmt.Sprintf("[white]Score:[-:-:-]  %d\n", s.Score)

	clock := "white"
	if s.Remaining <= 10 {
		clock = "red"
	}
	text += fmt.Sprintf("[white]Time Left:[-:-:-] [%s]%ds[-]\n", clock, s.Remaining)

	switch {
	case s.Finished():
		text += "\n[red::b]GAME OVER[-:-:-]\n"
	case s.Paused():
		text += "\n[yellow::b]PAUSED[-:-:-]\n"
	}

	text += "\n[white::b]Scoring[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += "[dimgray]3+ in a line[-]  10/cell\n"
	text += "[dimgray]full row[-]     100/row\n"

	p.box.SetText(text)
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardView, panel *GameInfoPanel, hint *tview.TextView) *tview.Flex {
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)     // Board (flexible, takes remaining space)
	boardRow.AddItem(panel.Box(), 26, 0, false) // Info panel (fixed width)

	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(boardRow, 0, 1, true)
	mainFlex.AddItem(hint, 2, 0, false)

	return mainFlex
}

// CreateCenteredForm creates a centered container for the setup screen.
func CreateCenteredForm(form tview.Primitive, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(form, maxWidth, 0, true)
	centered.AddItem(nil, 0, 1, false)

	return centered
}
