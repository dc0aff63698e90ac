package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reversilabs/flipdisc/internal/reversi"
	"github.com/reversilabs/flipdisc/internal/search"
)

func testSearcher() *search.Searcher {
	return search.NewSearcher(search.WithRounds(1))
}

func TestGame_ExitCommand(t *testing.T) {
	var out bytes.Buffer
	game := NewGame(testSearcher(), strings.NewReader("exit\n"), &out)

	require.NoError(t, game.Run())
	require.Contains(t, out.String(), "Place piece at position")
}

func TestGame_MoveThenExit(t *testing.T) {
	var out bytes.Buffer
	game := NewGame(testSearcher(), strings.NewReader("d3\nexit\n"), &out)

	require.NoError(t, game.Run())

	// The human move was applied and the engine responded once.
	require.Contains(t, out.String(), "CPU found")
	require.GreaterOrEqual(t, game.board.CountDiscs(), 6)
}

func TestGame_IllegalMoveReprompts(t *testing.T) {
	var out bytes.Buffer
	game := NewGame(testSearcher(), strings.NewReader("a1\nexit\n"), &out)

	require.NoError(t, game.Run())
	require.Contains(t, out.String(), "A1 is not a valid action")

	// The rejected move left the board untouched.
	require.Equal(t, 4, game.board.CountDiscs())
}

func TestGame_UnknownInput(t *testing.T) {
	var out bytes.Buffer
	game := NewGame(testSearcher(), strings.NewReader("blah\nexit\n"), &out)

	require.NoError(t, game.Run())
	require.Contains(t, out.String(), "invalid input")
}

func TestGame_HelpAndRulesCommands(t *testing.T) {
	var out bytes.Buffer
	game := NewGame(testSearcher(), strings.NewReader("help\nrules\nactions\nexit\n"), &out)

	require.NoError(t, game.Run())
	require.Contains(t, out.String(), "Commands:")
	require.Contains(t, out.String(), "REVERSI RULES")
	require.Contains(t, out.String(), "Player's Actions:")
}

func TestGame_EndOfInputQuits(t *testing.T) {
	var out bytes.Buffer
	game := NewGame(testSearcher(), strings.NewReader(""), &out)

	require.NoError(t, game.Run())
}

func TestPromptDifficulty(t *testing.T) {
	tests := []struct {
		input string
		want  search.Difficulty
	}{
		{"1\n", search.Easy},
		{"2\n", search.Hard},
		{"x\n1\n", search.Easy},
		{"3\n2\n", search.Hard},
	}

	for _, tt := range tests {
		t.Run(strings.ReplaceAll(tt.input, "\n", ","), func(t *testing.T) {
			var out bytes.Buffer
			difficulty, err := PromptDifficulty(strings.NewReader(tt.input), &out)
			require.NoError(t, err)
			require.Equal(t, tt.want, difficulty)
		})
	}
}

func TestPromptDifficulty_EndOfInput(t *testing.T) {
	var out bytes.Buffer
	_, err := PromptDifficulty(strings.NewReader(""), &out)
	require.Error(t, err)
}

func TestRenderActions(t *testing.T) {
	rendered := renderActions([]int{19, 26, 37, 44})

	for _, field := range []string{"D3", "C4", "F5", "E6"} {
		require.Contains(t, rendered, field)
	}
}

func TestRenderBoard(t *testing.T) {
	board := reversi.NewBoard(8, 8)
	rendered := renderBoard(board, reversi.Black)

	require.Contains(t, rendered, "A B C D E F G H")
	require.Contains(t, rendered, "Player:")
	require.Contains(t, rendered, "CPU:")
	require.Contains(t, rendered, "*")
}
