package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reversilabs/flipdisc/internal/reversi"
)

// boardFromRows builds an 8x8 board from 8 row strings and a turn suffix.
func boardFromRows(t *testing.T, turn string, rows ...string) *reversi.Board {
	t.Helper()
	require.Len(t, rows, 8)

	board, err := reversi.NewBoardFromString(strings.Join(rows, "") + turn)
	require.NoError(t, err)
	return board
}

func TestRandomMove_ReturnsLegalMove(t *testing.T) {
	board := reversi.NewBoard(8, 8)

	for range 20 {
		move := randomMove(board, reversi.Black)
		require.True(t, board.IsLegalMove(move, reversi.Black))
	}
}

func TestGreedyMove_PicksLargestFlip(t *testing.T) {
	// Black can play a1 (one flip) or a3 (two flips).
	board := boardFromRows(t, "-b",
		".ox.....",
		"........",
		".oox....",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	require.Equal(t, []int{0, 16}, board.LegalMoves(reversi.Black))

	require.Equal(t, 16, greedyMove(board, reversi.Black))
}

func TestGreedyMove_TieBreaksToFirstCandidate(t *testing.T) {
	// Both moves flip exactly one disc; the lower index wins.
	board := boardFromRows(t, "-b",
		".ox.....",
		"........",
		".ox.....",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	require.Equal(t, []int{0, 16}, board.LegalMoves(reversi.Black))

	require.Equal(t, 0, greedyMove(board, reversi.Black))
}

func TestGreedyMove_WorksForWhite(t *testing.T) {
	board := reversi.NewBoard(8, 8)
	require.NoError(t, board.DoMove(19, reversi.Black))

	move := greedyMove(board, reversi.White)
	require.True(t, board.IsLegalMove(move, reversi.White))
}

func TestScoreFor(t *testing.T) {
	board := reversi.NewBoard(8, 8)

	require.Equal(t, 2, scoreFor(board, reversi.Black))
	require.Equal(t, 2, scoreFor(board, reversi.White))

	require.NoError(t, board.DoMove(19, reversi.Black))
	require.Equal(t, 4, scoreFor(board, reversi.Black))
	require.Equal(t, 1, scoreFor(board, reversi.White))
}

func TestParseDifficulty(t *testing.T) {
	difficulty, err := ParseDifficulty("easy")
	require.NoError(t, err)
	require.Equal(t, Easy, difficulty)

	difficulty, err = ParseDifficulty("hard")
	require.NoError(t, err)
	require.Equal(t, Hard, difficulty)

	for _, invalid := range []string{"", "medium", "EASY", "1"} {
		_, err := ParseDifficulty(invalid)
		require.Error(t, err, "difficulty %q", invalid)
	}
}
