package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reversilabs/flipdisc/internal/reversi"
)

func TestAnalyzeRequest_Validate(t *testing.T) {
	req := AnalyzeRequest{Board: reversi.NewBoard(8, 8).String()}

	board, err := req.Validate()
	require.NoError(t, err)
	require.Equal(t, reversi.Black, board.Turn())
}

func TestAnalyzeRequest_Validate_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		board string
	}{
		{"empty", ""},
		{"garbage", "not a board"},
		{"bad turn", strings.Repeat(".", 64) + "-q"},
		{"no moves for side to move", strings.Repeat("x", 64) + "-b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AnalyzeRequest{Board: tt.board}.Validate()
			require.Error(t, err)
		})
	}
}

func TestBookEntry_Validate(t *testing.T) {
	entry := BookEntry{
		Position:  reversi.NewBoard(8, 8).String(),
		DiscCount: 4,
		Playouts:  10,
		Wins:      6,
		Draws:     1,
		Losses:    3,
		BestMove:  "d3",
	}
	require.NoError(t, entry.Validate())
}

func TestBookEntry_Validate_Invalid(t *testing.T) {
	valid := BookEntry{
		Position:  reversi.NewBoard(8, 8).String(),
		DiscCount: 4,
		Playouts:  10,
		Wins:      6,
		Draws:     1,
		Losses:    3,
		BestMove:  "d3",
	}

	broken := valid
	broken.Position = "nope"
	require.Error(t, broken.Validate())

	broken = valid
	broken.Playouts = 9
	require.Error(t, broken.Validate())

	broken = valid
	broken.BestMove = "z9"
	require.Error(t, broken.Validate())
}
