// Package cli implements the interactive terminal game: rendering, command
// parsing and the turn loop driving the board engine and the searcher.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/reversilabs/flipdisc/internal/reversi"
	"github.com/reversilabs/flipdisc/internal/search"
)

// Game drives one interactive match between the human (black, first move)
// and the searcher (white).
type Game struct {
	board    *reversi.Board
	searcher *search.Searcher
	human    reversi.Disc
	engine   reversi.Disc
	in       *bufio.Scanner
	out      io.Writer
	debug    bool
}

// NewGame creates a game on a fresh 8x8 board.
func NewGame(searcher *search.Searcher, in io.Reader, out io.Writer) *Game {
	return &Game{
		board:    reversi.NewBoard(8, 8),
		searcher: searcher,
		human:    reversi.Black,
		engine:   reversi.White,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run plays the game until a terminal state or until the human quits.
func (g *Game) Run() error {
	for {
		state := g.board.State()
		if state != reversi.InProgress {
			g.printResult(state)
			return nil
		}

		fmt.Fprint(g.out, renderBoard(g.board, g.human))

		if g.board.Turn() == g.human {
			quit, err := g.humanTurn()
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		} else {
			g.engineTurn()
		}
	}
}

// humanTurn prompts until the human enters a legal move or a command that
// consumes the prompt. It reports quit=true for the exit command.
func (g *Game) humanTurn() (quit bool, err error) {
	for {
		fmt.Fprintln(g.out, "Place piece at position: ")

		if !g.in.Scan() {
			if err := g.in.Err(); err != nil {
				return false, fmt.Errorf("failed to read input: %w", err)
			}
			return true, nil
		}

		cmd, field := parseInput(g.in.Text())
		switch cmd {
		case cmdMove:
			index, err := reversi.FieldToIndex(field)
			if err != nil {
				fmt.Fprintf(g.out, "ERROR: %v\n", err)
				continue
			}

			if err := g.board.DoMove(index, g.human); err != nil {
				if errors.Is(err, reversi.ErrIllegalMove) {
					fmt.Fprintf(g.out, "ERROR: %s is not a valid action\n", strings.ToUpper(field))
					continue
				}
				return false, err
			}
			return false, nil

		case cmdHelp:
			fmt.Fprint(g.out, renderHelp())
		case cmdActions:
			fmt.Fprint(g.out, renderActions(g.board.LegalMoves(g.human)))
		case cmdRules:
			fmt.Fprint(g.out, renderRules())
		case cmdDebug:
			g.debug = !g.debug
			if g.debug {
				fmt.Fprintln(g.out, "Debug turned ON")
			} else {
				fmt.Fprintln(g.out, "Debug turned OFF")
			}
		case cmdExit:
			return true, nil
		default:
			fmt.Fprintln(g.out, "ERROR: invalid input, enter 'help' for command information")
		}
	}
}

// engineTurn runs the searcher and plays its move.
func (g *Game) engineTurn() {
	result := g.searcher.Search(g.board)

	field, err := reversi.IndexToField(result.Move)
	if err != nil {
		// The searcher only returns indices from the legal set.
		panic(fmt.Sprintf("cli: searcher returned invalid index %d", result.Move))
	}

	fmt.Fprintf(g.out, "\nCPU found %s as best play\n", bold(strings.ToUpper(field)))

	if g.debug {
		fmt.Fprintf(g.out, "  %d rounds in %s\n", result.Rounds, result.Duration.Round(0))
		for _, tally := range result.Tallies {
			moveField, err := reversi.IndexToField(tally.Move)
			if err != nil {
				continue
			}
			fmt.Fprintf(g.out, "  %s: %d wins, %d draws, %d losses\n",
				strings.ToUpper(moveField), tally.Wins, tally.Draws, tally.Losses)
		}
	}

	if err := g.board.DoMove(result.Move, g.engine); err != nil {
		panic(fmt.Sprintf("cli: searcher returned illegal move: %v", err))
	}
}

func (g *Game) printResult(state reversi.GameState) {
	switch state.Winner() {
	case g.human:
		fmt.Fprintln(g.out, "Player has won")
	case g.engine:
		fmt.Fprintln(g.out, "CPU has won")
	default:
		fmt.Fprintln(g.out, "Game is a draw")
	}

	fmt.Fprint(g.out, renderBoard(g.board, g.human))
}

// PromptDifficulty asks the user to pick a difficulty until a valid choice is
// entered.
func PromptDifficulty(in io.Reader, out io.Writer) (search.Difficulty, error) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprintln(out, "\n[1] Easy")
		fmt.Fprintln(out, "[2] Hard")
		fmt.Fprintln(out, "\nSelect CPU Difficulty (1, 2): ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return search.Easy, fmt.Errorf("failed to read input: %w", err)
			}
			return search.Easy, errors.New("no difficulty selected")
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			return search.Easy, nil
		case "2":
			return search.Hard, nil
		}

		fmt.Fprintln(out, "ERROR: Invalid entry")
	}
}

// PrintBanner writes the title and rules shown at startup.
func PrintBanner(out io.Writer) {
	fmt.Fprint(out, renderTitle())
	fmt.Fprint(out, renderRules())
}
