package reversi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	west  = direction{0, -1}
	east  = direction{0, 1}
	north = direction{-1, 0}
	south = direction{1, 0}
	nw    = direction{-1, -1}
	ne    = direction{-1, 1}
	sw    = direction{1, -1}
	se    = direction{1, 1}
)

// Stepping west off column 0 must never wrap into column 7 of the adjacent
// row, for any row and any west-pointing direction. Symmetric for column 7.
func TestStep_NoHorizontalWrap(t *testing.T) {
	board := NewBoard(8, 8)

	for row := range 8 {
		left := row * 8
		for _, dir := range []direction{west, nw, sw} {
			_, ok := board.step(left, dir, 1)
			assert.False(t, ok, "row %d: direction %+v must fall off the left edge", row, dir)
		}

		right := row*8 + 7
		for _, dir := range []direction{east, ne, se} {
			_, ok := board.step(right, dir, 1)
			assert.False(t, ok, "row %d: direction %+v must fall off the right edge", row, dir)
		}
	}
}

func TestStep_NoVerticalOverflow(t *testing.T) {
	board := NewBoard(8, 8)

	for col := range 8 {
		for _, dir := range []direction{north, nw, ne} {
			_, ok := board.step(col, dir, 1)
			assert.False(t, ok, "col %d: direction %+v must fall off the top edge", col, dir)
		}

		bottom := 56 + col
		for _, dir := range []direction{south, sw, se} {
			_, ok := board.step(bottom, dir, 1)
			assert.False(t, ok, "col %d: direction %+v must fall off the bottom edge", col, dir)
		}
	}
}

func TestStep_InteriorNeighbors(t *testing.T) {
	board := NewBoard(8, 8)

	// d4 = index 27 (row 3, col 3).
	tests := []struct {
		dir  direction
		want int
	}{
		{north, 19},
		{south, 35},
		{west, 26},
		{east, 28},
		{nw, 18},
		{ne, 20},
		{sw, 34},
		{se, 36},
	}

	for _, tt := range tests {
		got, ok := board.step(27, tt.dir, 1)
		require.True(t, ok)
		require.Equal(t, tt.want, got, "direction %+v", tt.dir)
	}
}

func TestStep_Distance(t *testing.T) {
	board := NewBoard(8, 8)

	got, ok := board.step(0, se, 7)
	require.True(t, ok)
	require.Equal(t, 63, got)

	_, ok = board.step(0, se, 8)
	require.False(t, ok)

	got, ok = board.step(63, nw, 7)
	require.True(t, ok)
	require.Equal(t, 0, got)
}

// Every step from every cell in every direction either fails or lands on a
// cell exactly one king-move away.
func TestStep_Exhaustive(t *testing.T) {
	board := NewBoard(8, 8)

	for index := range 64 {
		for _, dir := range directions {
			next, ok := board.step(index, dir, 1)
			if !ok {
				continue
			}

			rowDiff := next/8 - index/8
			colDiff := next%8 - index%8
			assert.Equal(t, dir.dr, rowDiff, "cell %d direction %+v", index, dir)
			assert.Equal(t, dir.dc, colDiff, "cell %d direction %+v", index, dir)
		}
	}
}
