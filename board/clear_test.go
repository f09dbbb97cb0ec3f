package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkerRow fills row y with two alternating colors so it holds no runs.
func checkerRow(g *Grid, y int, a, b Color) {
	for x := 0; x < Columns; x++ {
		if x%2 == 0 {
			g.cells[y][x] = a
		} else {
			g.cells[y][x] = b
		}
	}
}

func TestFindMatchesRowRun(t *testing.T) {
	g := gridFrom(t, "RRR")
	assert.Equal(t, []Point{{0, Rows - 1}, {1, Rows - 1}, {2, Rows - 1}}, FindMatches(g))
}

func TestFindMatchesIgnoresShortRuns(t *testing.T) {
	g := gridFrom(t,
		"R.",
		"R.",
		"GGBBG.RR",
	)
	assert.Empty(t, FindMatches(g))
}

func TestFindMatchesClosesRunAtBoundary(t *testing.T) {
	g := NewGrid()
	for x := Columns - 3; x < Columns; x++ {
		g.cells[4][x] = Magenta
	}
	for y := Rows - 3; y < Rows; y++ {
		g.cells[y][0] = Cyan
	}
	matches := FindMatches(g)
	assert.Len(t, matches, 6)
	assert.Contains(t, matches, Point{X: Columns - 1, Y: 4})
	assert.Contains(t, matches, Point{X: 0, Y: Rows - 1})
}

func TestFindMatchesUnionsCrossingRuns(t *testing.T) {
	g := gridFrom(t,
		".R.",
		".R.",
		"RRR",
	)
	assert.Len(t, FindMatches(g), 5)

	res := g.ClearPass()
	assert.Equal(t, 5, res.Matched)
	assert.Equal(t, 50, res.Points())
	assert.Equal(t, 0, g.Count())
}

func TestFindMatchesLongRun(t *testing.T) {
	g := gridFrom(t, "BYYYYB")
	assert.Len(t, FindMatches(g), 4)
}

func TestClearRowOfThree(t *testing.T) {
	g := NewGrid()
	y := 12
	g.cells[y][0], g.cells[y][1], g.cells[y][2] = Red, Red, Red

	res := g.Resolve()
	assert.Equal(t, 30, res.Points())
	for x := 0; x < 3; x++ {
		assert.Equal(t, Empty, g.Get(x, y))
	}
	assert.Equal(t, 0, g.Count())
}

func TestClearCompactsColumns(t *testing.T) {
	g := gridFrom(t,
		"G..",
		"B..",
		"RRR",
	)
	res := g.ClearPass()
	assert.Equal(t, 3, res.Matched)
	assert.Equal(t, Blue, g.Get(0, Rows-1))
	assert.Equal(t, Green, g.Get(0, Rows-2))
	assert.Equal(t, 2, g.Count())
}

func TestNoCompactionWithoutMatches(t *testing.T) {
	g := NewGrid()
	g.cells[3][5] = Red
	res := g.ClearPass()
	assert.False(t, res.Changed())
	assert.Equal(t, Red, g.Get(5, 3))
}

func TestCompactPreservesColumnOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		g := randomGrid(rng, 0.4)
		before := make([][]Color, Columns)
		for x := 0; x < Columns; x++ {
			before[x] = nonEmpty(g.Column(x))
		}

		g.Compact()

		for x := 0; x < Columns; x++ {
			col := g.Column(x)
			assert.Equal(t, before[x], nonEmpty(col), "column %d", x)
			gap := Rows - len(before[x])
			for y := 0; y < gap; y++ {
				assert.Equal(t, Empty, col[y], "column %d row %d", x, y)
			}
		}
	}
}

func nonEmpty(col []Color) []Color {
	out := []Color{}
	for _, c := range col {
		if c != Empty {
			out = append(out, c)
		}
	}
	return out
}

func TestRemoveFullRows(t *testing.T) {
	g := NewGrid()
	checkerRow(g, Rows-1, Red, Green)
	checkerRow(g, Rows-2, Green, Red)
	g.cells[Rows-3][0] = Blue

	res := g.Resolve()
	assert.Equal(t, 0, res.Matched)
	assert.Equal(t, 2, res.Rows)
	assert.Equal(t, 200, res.Points())
	assert.Equal(t, Blue, g.Get(0, Rows-1))
	assert.Equal(t, 1, g.Count())
}

func TestRemoveFullRowsKeepsOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		g := randomGrid(rng, 0.5)
		full := map[int]bool{}
		for n := rng.Intn(4); n > 0; n-- {
			y := rng.Intn(Rows)
			checkerRow(g, y, Yellow, Blue)
			full[y] = true
		}
		var kept [][Columns]Color
		for y := 0; y < Rows; y++ {
			if !g.rowFull(y) {
				kept = append(kept, g.cells[y])
			}
		}

		removed := g.RemoveFullRows()

		require.Equal(t, Rows-len(kept), removed)
		assert.GreaterOrEqual(t, removed, len(full))
		for y := 0; y < removed; y++ {
			assert.Equal(t, [Columns]Color{}, g.cells[y])
		}
		for i, row := range kept {
			assert.Equal(t, row, g.cells[removed+i])
		}
	}
}

func TestLockCompletesRow(t *testing.T) {
	g := NewGrid()
	checkerRow(g, Rows-1, Red, Green)
	g.cells[Rows-1][7] = Empty

	p := Piece{Anchor: Point{X: 7, Y: Rows - 1}, Shape: Shapes[0], Color: Blue}
	require.True(t, CanPlace(p, g))
	g.Lock(p)

	res := g.Resolve()
	assert.Equal(t, 1, res.Rows)
	assert.Equal(t, 100, res.Points())
	assert.Equal(t, 0, g.Count())
}

func TestResolveCascades(t *testing.T) {
	g := gridFrom(t,
		"..R",
		"GGG",
		"RR.",
	)
	first := g.Clone()
	pass := first.ClearPass()
	assert.Equal(t, 3, pass.Matched)
	assert.NotEmpty(t, FindMatches(first))

	res := g.Resolve()
	assert.Equal(t, 6, res.Matched)
	assert.Equal(t, 2, res.Passes)
	assert.Equal(t, 60, res.Points())
	assert.Equal(t, 0, g.Count())
}

func TestResolveIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for i := 0; i < 300; i++ {
		g := randomGrid(rng, 0.6)
		g.Resolve()
		settled := g.Clone()

		again := g.Resolve()
		assert.False(t, again.Changed())
		assert.Equal(t, settled.Cells(), g.Cells())
		assert.Empty(t, FindMatches(g))
	}
}
