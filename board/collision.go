package board

// CanPlace reports whether every cell of p is on the playfield and empty.
func CanPlace(p Piece, g *Grid) bool {
	for _, c := range p.Cells() {
		if !InBounds(c) || g.Filled(c.X, c.Y) {
			return false
		}
	}
	return true
}
