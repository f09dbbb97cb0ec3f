// Package ui provides tview controls that draw a chromadrop game and feed player
// input back to the frame loop.
package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"chromadrop/config"
	"chromadrop/types"
)

// Style slots in BoardView.styles.
const (
	styleBackground = 0 // 1-6 are the block colors
	styleGridDot    = 7
	styleBorder     = 8
)

// BoardView draws the grid and the falling piece from the latest snapshot.
type BoardView struct {
	Box      *tview.Box
	snapshot types.Snapshot
	cfg      *config.Config
	styles   []tcell.Color
}

func NewBoardView(c *config.Config) *BoardView {
	b := &BoardView{
		Box: tview.NewBox(),
	}
	b.SetConfig(c)
	b.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		if b.snapshot.Width() == 0 {
			return x, y, 1, 1
		}
		// 2 characters per cell for square appearance, plus the frame
		boardW, boardH := b.snapshot.Width()*2+2, b.snapshot.Height()+2
		if width < boardW || height < boardH {
			drawText(screen, x, y, "terminal too small", tcell.StyleDefault)
			return x, y, width, height
		}
		drawFrame(screen, x, y, boardW, boardH, tcell.StyleDefault.Foreground(b.styles[styleBorder]))

		bg := tcell.StyleDefault.Background(b.styles[styleBackground])
		for boardY := 0; boardY < b.snapshot.Height(); boardY++ {
			for boardX := 0; boardX < b.snapshot.Width(); boardX++ {
				color := b.snapshot.Board[boardY][boardX]
				if b.snapshot.PieceAt(boardX, boardY) {
					color = b.snapshot.PieceColor
				}
				if color > 0 && color < styleGridDot {
					drawBlockCell(screen, bg.Foreground(b.styles[color]), b.cfg.Theme.Symbols.Block, boardX, boardY, x+1, y+1)
					continue
				}
				r := ' '
				if b.cfg.Theme.DrawGridDots {
					r = b.cfg.Theme.Symbols.Empty
				}
				drawEmptyCell(screen, bg.Foreground(b.styles[styleGridDot]), r, boardX, boardY, x+1, y+1)
			}
		}
		if b.snapshot.Paused() {
			label := " PAUSED "
			drawText(screen, x+(boardW-len(label))/2, y+boardH/2, label, tcell.StyleDefault.Reverse(true).Bold(true))
		}
		return x, y, boardW, boardH
	})
	return b
}

func (b *BoardView) SetConfig(c *config.Config) {
	colors := c.Theme.Colors
	b.styles = []tcell.Color{
		tcell.PaletteColor(colors.Background), // 0
		tcell.PaletteColor(colors.Blocks[0]),  // 1 red
		tcell.PaletteColor(colors.Blocks[1]),  // 2 green
		tcell.PaletteColor(colors.Blocks[2]),  // 3 blue
		tcell.PaletteColor(colors.Blocks[3]),  // 4 yellow
		tcell.PaletteColor(colors.Blocks[4]),  // 5 magenta
		tcell.PaletteColor(colors.Blocks[5]),  // 6 cyan
		tcell.PaletteColor(colors.GridDot),    // 7
		tcell.PaletteColor(colors.Border),     // 8
	}
	b.cfg = c
}

// SetSnapshot replaces the frame to draw. Call it from the UI goroutine.
func (b *BoardView) SetSnapshot(s types.Snapshot) {
	b.snapshot = s
}

// drawBlockCell draws a filled cell (2 characters wide)
func drawBlockCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t int) {
	s.SetContent(l+x*2, t+y, r, nil, c)
	s.SetContent(l+x*2+1, t+y, r, nil, c)
}

// drawEmptyCell draws an empty cell with an optional dot on its left half
func drawEmptyCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t int) {
	s.SetContent(l+x*2, t+y, r, nil, c)
	s.SetContent(l+x*2+1, t+y, ' ', nil, c)
}

func drawFrame(s tcell.Screen, x, y, w, h int, style tcell.Style) {
	for col := x + 1; col < x+w-1; col++ {
		s.SetContent(col, y, '─', nil, style)
		s.SetContent(col, y+h-1, '─', nil, style)
	}
	for row := y + 1; row < y+h-1; row++ {
		s.SetContent(x, row, '│', nil, style)
		s.SetContent(x+w-1, row, '│', nil, style)
	}
	s.SetContent(x, y, '┌', nil, style)
	s.SetContent(x+w-1, y, '┐', nil, style)
	s.SetContent(x, y+h-1, '└', nil, style)
	s.SetContent(x+w-1, y+h-1, '┘', nil, style)
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, style)
	}
}
