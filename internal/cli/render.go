package cli

import (
	"fmt"
	"strings"

	"github.com/reversilabs/flipdisc/internal/reversi"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

func red(s string) string {
	return ansiRed + s + ansiReset
}

func green(s string) string {
	return ansiGreen + s + ansiReset
}

func bold(s string) string {
	return ansiBold + s + ansiReset
}

// renderBoard draws the board with the human's discs in red, the engine's in
// green and the human's legal moves marked with asterisks.
func renderBoard(b *reversi.Board, human reversi.Disc) string {
	var sb strings.Builder

	sb.WriteString("\n     ")
	header := make([]string, 0, b.Width())
	for col := range b.Width() {
		header = append(header, string(rune('A'+col)))
	}
	sb.WriteString(bold(strings.Join(header, " ")))
	sb.WriteString("\n")

	for row := range b.Height() {
		sb.WriteString("  " + bold(fmt.Sprintf("%d", row+1)) + "  ")
		for col := range b.Width() {
			index := row*b.Width() + col
			switch {
			case b.Cell(index) == human:
				sb.WriteString(red("●") + " ")
			case b.Cell(index) != reversi.Empty:
				sb.WriteString(green("●") + " ")
			case b.IsLegalMove(index, human):
				sb.WriteString(bold("*") + " ")
			default:
				sb.WriteString("- ")
			}
		}
		sb.WriteString("\n")
	}

	black, white := b.Score()
	playerScore, engineScore := black, white
	if human == reversi.White {
		playerScore, engineScore = white, black
	}

	sb.WriteString(fmt.Sprintf("\n     Player: %s, CPU: %s\n\n",
		red(fmt.Sprintf("%d", playerScore)), green(fmt.Sprintf("%d", engineScore))))

	return sb.String()
}

func renderTitle() string {
	return strings.Join([]string{
		"################################################################",
		"#                                                              #",
		"#                " + bold("Welcome to Reversi against AI!") + "                #",
		"#                                                              #",
		"################################################################",
		"", "",
	}, "\n")
}

func renderRules() string {
	return strings.Join([]string{
		"      #                " + bold("REVERSI RULES") + "                #",
		"",
		" * " + red("Red") + " tiles represent the user's spots, " + green("Green") + " represent the CPUs.",
		"",
		" * The user starts by placing a tile adjacent to a green tile.",
		"   Possible actions are marked by asterisks (*) on the board.",
		"",
		" * The game ends when either player cannot play a piece or the",
		"   board is full. The player with the most tiles wins.",
		"", "",
	}, "\n")
}

func renderHelp() string {
	return strings.Join([]string{
		"",
		"Commands:",
		"",
		"  " + bold("actions") + "  -  print the current available actions",
		"  " + bold("rules") + "    -  show game rules",
		"  " + bold("debug") + "    -  toggles showing debug information",
		"  " + bold("exit") + "     -  quit the game",
		"",
	}, "\n")
}

// renderActions lists the given moves in field notation.
func renderActions(moves []int) string {
	var sb strings.Builder
	sb.WriteString("\nPlayer's Actions: ")
	for _, move := range moves {
		field, err := reversi.IndexToField(move)
		if err != nil {
			continue
		}
		sb.WriteString(bold(strings.ToUpper(field)) + " ")
	}
	sb.WriteString("\n\n")
	return sb.String()
}
