package reversi

// direction is a single step expressed as row and column deltas. Keeping the
// eight cases in one table with a shared bounds check avoids the per-direction
// index arithmetic that wraps around row edges.
type direction struct {
	dr int
	dc int
}

var directions = [8]direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// step returns the index dist cells away from start in the given direction,
// or false when the step leaves the board. Row and column are checked
// separately so horizontal steps never wrap into an adjacent row.
func (b *Board) step(start int, dir direction, dist int) (int, bool) {
	row := start/b.width + dir.dr*dist
	col := start%b.width + dir.dc*dist

	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return 0, false
	}

	return row*b.width + col, true
}
