package board

import "math/rand"

// Shape is an immutable set of cell offsets relative to a piece anchor.
type Shape struct {
	Name    string
	offsets []Point
}

// Offsets returns a copy of the shape's offsets in catalog order.
func (s Shape) Offsets() []Point {
	return append([]Point(nil), s.offsets...)
}

// Size returns the number of cells in the shape.
func (s Shape) Size() int {
	return len(s.offsets)
}

// Shapes is the fixed catalog every new piece is drawn from.
var Shapes = []Shape{
	{Name: "mono", offsets: []Point{{0, 0}}},
	{Name: "domino-h", offsets: []Point{{0, 0}, {1, 0}}},
	{Name: "domino-v", offsets: []Point{{0, 0}, {0, 1}}},
	{Name: "corner", offsets: []Point{{0, 0}, {1, 0}, {0, 1}}},
	{Name: "hook", offsets: []Point{{0, 0}, {1, 0}, {1, 1}}},
	{Name: "square", offsets: []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
}

// SpawnPoint is the anchor every new piece starts at.
var SpawnPoint = Point{X: Columns / 2, Y: 0}

// Piece is the falling shape. It is a value: moving it yields a new Piece.
type Piece struct {
	Anchor Point
	Shape  Shape
	Color  Color
}

// NewPiece places shape at the spawn point.
func NewPiece(shape Shape, color Color) Piece {
	return Piece{Anchor: SpawnPoint, Shape: shape, Color: color}
}

// RandomPiece picks a shape and a color uniformly and places it at the spawn point.
func RandomPiece(rng *rand.Rand) Piece {
	shape := Shapes[rng.Intn(len(Shapes))]
	return NewPiece(shape, RandomColor(rng))
}

// Translate returns the piece moved by (dx, dy). The receiver is unchanged.
func (p Piece) Translate(dx, dy int) Piece {
	p.Anchor = Point{X: p.Anchor.X + dx, Y: p.Anchor.Y + dy}
	return p
}

// Cells returns the absolute cells covered by the piece.
func (p Piece) Cells() []Point {
	cells := make([]Point, len(p.Shape.offsets))
	for i, o := range p.Shape.offsets {
		cells[i] = Point{X: p.Anchor.X + o.X, Y: p.Anchor.Y + o.Y}
	}
	return cells
}
