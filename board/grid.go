// Package board holds the playfield of chromadrop: the color grid, falling pieces,
// the collision checker and the match/clear engine.
package board

import (
	"fmt"
	"math/rand"
)

// Playfield dimensions. They never change for the lifetime of a game.
const (
	Rows    = 20
	Columns = 20
)

// Color is the content of a single cell. The zero value is an empty cell.
type Color uint8

const (
	Empty Color = iota
	Red
	Green
	Blue
	Yellow
	Magenta
	Cyan
)

// Palette lists every color a filled cell may hold.
var Palette = [...]Color{Red, Green, Blue, Yellow, Magenta, Cyan}

var colorNames = [...]string{"empty", "red", "green", "blue", "yellow", "magenta", "cyan"}

// Valid reports whether c is Empty or a palette color.
func (c Color) Valid() bool {
	return int(c) < len(colorNames)
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", c)
	}
	return colorNames[c]
}

// RandomColor picks a palette color uniformly.
func RandomColor(rng *rand.Rand) Color {
	return Palette[rng.Intn(len(Palette))]
}

// Point is a cell coordinate. X grows to the right, Y grows downwards.
type Point struct {
	X int
	Y int
}

// InBounds reports whether p lies on the playfield.
func InBounds(p Point) bool {
	return p.X >= 0 && p.X < Columns && p.Y >= 0 && p.Y < Rows
}

// Grid stores the locked cells, indexed as cells[y][x].
// Callers must bounds-check coordinates before calling Get, Set or Clear.
type Grid struct {
	cells [Rows][Columns]Color
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{}
}

func (g *Grid) Get(x, y int) Color {
	return g.cells[y][x]
}

// Set fills a cell. Setting a color outside the palette is a programming error.
func (g *Grid) Set(x, y int, c Color) {
	if !c.Valid() {
		panic(fmt.Sprintf("board: invalid color %d at (%d,%d)", c, x, y))
	}
	g.cells[y][x] = c
}

func (g *Grid) Clear(x, y int) {
	g.cells[y][x] = Empty
}

// Filled reports whether the cell holds a color.
func (g *Grid) Filled(x, y int) bool {
	return g.cells[y][x] != Empty
}

// Count returns the number of filled cells.
func (g *Grid) Count() int {
	n := 0
	for y := 0; y < Rows; y++ {
		for x := 0; x < Columns; x++ {
			if g.cells[y][x] != Empty {
				n++
			}
		}
	}
	return n
}

// Seed drops count random cells into the bottom depth rows. Later draws may land
// on a cell an earlier draw already filled.
func (g *Grid) Seed(rng *rand.Rand, count, depth int) {
	if depth > Rows {
		depth = Rows
	}
	if depth <= 0 {
		return
	}
	for i := 0; i < count; i++ {
		x := rng.Intn(Columns)
		y := Rows - depth + rng.Intn(depth)
		g.Set(x, y, RandomColor(rng))
	}
}

// Lock writes the in-bounds cells of p into the grid.
func (g *Grid) Lock(p Piece) {
	for _, c := range p.Cells() {
		if InBounds(c) {
			g.Set(c.X, c.Y, p.Color)
		}
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := *g
	return &clone
}

// Cells exports the grid as Board[y][x] color indexes, 0 meaning empty.
func (g *Grid) Cells() [][]int {
	out := make([][]int, Rows)
	for y := range out {
		out[y] = make([]int, Columns)
		for x := 0; x < Columns; x++ {
			out[y][x] = int(g.cells[y][x])
		}
	}
	return out
}

// Column returns the colors of column x from top to bottom.
func (g *Grid) Column(x int) []Color {
	col := make([]Color, Rows)
	for y := 0; y < Rows; y++ {
		col[y] = g.cells[y][x]
	}
	return col
}
