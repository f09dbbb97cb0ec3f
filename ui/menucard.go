package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// MenuCard is a styled card container with rounded borders and a title.
type MenuCard struct {
	*tview.Box
	title string
}

func NewMenuCard(title string) *MenuCard {
	return &MenuCard{
		Box:   tview.NewBox(),
		title: title,
	}
}

// drawCard renders the frame and title and returns the content area below the
// title divider. height is -1 if the card is too small to hold anything.
func (c *MenuCard) drawCard(screen tcell.Screen) (x, y, width, height int) {
	c.Box.DrawForSubclass(screen, c)

	x, y, width, height = c.GetInnerRect()
	if width < 10 || height < 7 {
		return x, y, width, -1
	}

	borderStyle := tcell.StyleDefault.Foreground(MenuColors.Border).Background(MenuColors.CardBG)
	bgStyle := tcell.StyleDefault.Background(MenuColors.CardBG)

	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, bgStyle)
		}
	}

	// ╭───╮
	screen.SetContent(x, y, '╭', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, y, '─', nil, borderStyle)
		screen.SetContent(col, y+height-1, '─', nil, borderStyle)
	}
	screen.SetContent(x+width-1, y, '╮', nil, borderStyle)
	for row := y + 1; row < y+height-1; row++ {
		screen.SetContent(x, row, '│', nil, borderStyle)
		screen.SetContent(x+width-1, row, '│', nil, borderStyle)
	}
	// ╰───╯
	screen.SetContent(x, y+height-1, '╰', nil, borderStyle)
	screen.SetContent(x+width-1, y+height-1, '╯', nil, borderStyle)

	titleStyle := tcell.StyleDefault.Foreground(MenuColors.Title).Background(MenuColors.CardBG).Bold(true)
	accentStyle := tcell.StyleDefault.Foreground(MenuColors.TitleAccent).Background(MenuColors.CardBG)

	fullTitle := "◆  " + c.title
	titleX := x + (width-len([]rune(fullTitle)))/2
	titleY := y + 2
	screen.SetContent(titleX, titleY, '◆', nil, accentStyle)
	for i, ch := range []rune(c.title) {
		screen.SetContent(titleX+3+i, titleY, ch, nil, titleStyle)
	}

	// ├───┤
	divY := y + 4
	screen.SetContent(x, divY, '├', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, divY, '─', nil, borderStyle)
	}
	screen.SetContent(x+width-1, divY, '┤', nil, borderStyle)

	return x, divY + 1, width, y + height - 1 - (divY + 1)
}

// drawCentered prints text centered on one row of the card.
func (c *MenuCard) drawCentered(screen tcell.Screen, row int, text string, fg tcell.Color, bold bool) {
	x, _, width, _ := c.GetInnerRect()
	style := tcell.StyleDefault.Foreground(fg).Background(MenuColors.CardBG).Bold(bold)
	runes := []rune(text)
	if len(runes) > width-2 {
		runes = runes[:width-2]
	}
	start := x + (width-len(runes))/2
	for i, ch := range runes {
		screen.SetContent(start+i, row, ch, nil, style)
	}
}
