package board

import "github.com/kamstrup/intmap"

// Scoring per clear event.
const (
	MatchPoints = 10
	RowPoints   = 100
	minRun      = 3
)

// ClearResult summarizes what a clear removed.
type ClearResult struct {
	Matched int // cells removed by runs
	Rows    int // full rows removed
	Passes  int // passes that changed the grid
}

// Points returns the score earned by the clear.
func (r ClearResult) Points() int {
	return MatchPoints*r.Matched + RowPoints*r.Rows
}

// Changed reports whether anything was removed.
func (r ClearResult) Changed() bool {
	return r.Matched > 0 || r.Rows > 0
}

func (r ClearResult) add(o ClearResult) ClearResult {
	return ClearResult{
		Matched: r.Matched + o.Matched,
		Rows:    r.Rows + o.Rows,
		Passes:  r.Passes + o.Passes,
	}
}

type matchSet struct {
	cells *intmap.Map[int, struct{}]
}

func newMatchSet() matchSet {
	return matchSet{cells: intmap.New[int, struct{}](Rows * Columns / 4)}
}

func (s matchSet) add(x, y int) {
	s.cells.Put(y*Columns+x, struct{}{})
}

func (s matchSet) has(x, y int) bool {
	_, ok := s.cells.Get(y*Columns + x)
	return ok
}

func (s matchSet) len() int {
	return s.cells.Len()
}

// scanLine walks n cells through at(i) and calls mark(i) for every cell of a run
// of at least minRun equal colors. A run still open at the end of the line is
// closed at the boundary.
func scanLine(n int, at func(i int) Color, mark func(i int)) {
	start := 0
	for i := 1; i <= n; i++ {
		if i < n && at(i) != Empty && at(i) == at(i-1) {
			continue
		}
		if i-start >= minRun && at(start) != Empty {
			for j := start; j < i; j++ {
				mark(j)
			}
		}
		start = i
	}
}

func (g *Grid) findMatches() matchSet {
	set := newMatchSet()
	for y := 0; y < Rows; y++ {
		y := y
		scanLine(Columns,
			func(x int) Color { return g.cells[y][x] },
			func(x int) { set.add(x, y) })
	}
	for x := 0; x < Columns; x++ {
		x := x
		scanLine(Rows,
			func(y int) Color { return g.cells[y][x] },
			func(y int) { set.add(x, y) })
	}
	return set
}

// FindMatches returns every cell that belongs to a horizontal or vertical run of
// three or more equal colors, in row-major order. A cell matched by both a row
// and a column appears once.
func FindMatches(g *Grid) []Point {
	set := g.findMatches()
	out := make([]Point, 0, set.len())
	for y := 0; y < Rows; y++ {
		for x := 0; x < Columns; x++ {
			if set.has(x, y) {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}

// Compact lets the filled cells of every column fall to the bottom, keeping their
// top-to-bottom order. Cells never change column.
func (g *Grid) Compact() {
	for x := 0; x < Columns; x++ {
		stack := make([]Color, 0, Rows)
		for y := 0; y < Rows; y++ {
			if g.cells[y][x] != Empty {
				stack = append(stack, g.cells[y][x])
			}
		}
		gap := Rows - len(stack)
		for y := 0; y < Rows; y++ {
			if y < gap {
				g.cells[y][x] = Empty
			} else {
				g.cells[y][x] = stack[y-gap]
			}
		}
	}
}

func (g *Grid) rowFull(y int) bool {
	for x := 0; x < Columns; x++ {
		if g.cells[y][x] == Empty {
			return false
		}
	}
	return true
}

// RemoveFullRows drops every completely filled row and inserts as many empty rows
// at the top. The remaining rows keep their relative order. It returns the number
// of rows removed.
func (g *Grid) RemoveFullRows() int {
	kept := make([][Columns]Color, 0, Rows)
	for y := 0; y < Rows; y++ {
		if !g.rowFull(y) {
			kept = append(kept, g.cells[y])
		}
	}
	removed := Rows - len(kept)
	if removed == 0 {
		return 0
	}
	var next [Rows][Columns]Color
	copy(next[removed:], kept)
	g.cells = next
	return removed
}

// ClearPass runs one match/clear pass: clear runs, compact the columns if anything
// matched, then remove full rows.
func (g *Grid) ClearPass() ClearResult {
	set := g.findMatches()
	matched := set.len()
	if matched > 0 {
		for y := 0; y < Rows; y++ {
			for x := 0; x < Columns; x++ {
				if set.has(x, y) {
					g.cells[y][x] = Empty
				}
			}
		}
		g.Compact()
	}
	res := ClearResult{Matched: matched, Rows: g.RemoveFullRows()}
	if res.Changed() {
		res.Passes = 1
	}
	return res
}

// Resolve repeats ClearPass until the grid is stable and returns the totals.
// Calling Resolve again on the result changes nothing.
func (g *Grid) Resolve() ClearResult {
	var total ClearResult
	for {
		res := g.ClearPass()
		if !res.Changed() {
			return total
		}
		total = total.add(res)
	}
}
