package reversi

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrIllegalMove is returned by DoMove when the target cell is not a legal
// destination for the moving player. The board is left untouched.
var ErrIllegalMove = errors.New("illegal move")

// Board holds the full mutable state of a Reversi game: the cell grid, the
// perimeter of empty cells touching at least one disc, and the precomputed
// legal-move sets for both players. The perimeter bounds how much of the
// board needs a legality rescan after each move.
type Board struct {
	width     int
	height    int
	cells     []Disc
	perimeter map[int]struct{}
	legal     map[Disc]map[int]struct{}
	turn      Disc
}

// NewBoard creates a board with the canonical four-disc starting position in
// the central 2x2 block. Black moves first. Dimensions must be even and at
// least 4 so the starting block fits.
func NewBoard(width, height int) *Board {
	if width < 4 || height < 4 || width%2 != 0 || height%2 != 0 {
		panic(fmt.Sprintf("reversi: invalid board dimensions %dx%d", width, height))
	}

	b := &Board{
		width:  width,
		height: height,
		cells:  make([]Disc, width*height),
		turn:   Black,
	}

	row := height/2 - 1
	col := width/2 - 1
	b.cells[row*width+col] = White
	b.cells[row*width+col+1] = Black
	b.cells[(row+1)*width+col] = Black
	b.cells[(row+1)*width+col+1] = White

	b.rebuildDerived()

	return b
}

// NewBoardFromString parses the serialization produced by String: one
// character per cell ('x' black, 'o' white, '.' empty) in row-major order for
// an 8x8 board, followed by "-b" or "-w" for the side to move.
func NewBoardFromString(s string) (*Board, error) {
	const cellCount = 64

	if len(s) != cellCount+2 {
		return nil, fmt.Errorf("board string must be %d characters long, got %d", cellCount+2, len(s))
	}

	b := &Board{
		width:  8,
		height: 8,
		cells:  make([]Disc, cellCount),
	}

	for i := range cellCount {
		switch s[i] {
		case 'x':
			b.cells[i] = Black
		case 'o':
			b.cells[i] = White
		case '.':
			b.cells[i] = Empty
		default:
			return nil, fmt.Errorf("invalid cell character %q at index %d", s[i], i)
		}
	}

	switch s[cellCount:] {
	case "-b":
		b.turn = Black
	case "-w":
		b.turn = White
	default:
		return nil, fmt.Errorf("invalid turn suffix: %s", s[cellCount:])
	}

	b.rebuildDerived()

	return b, nil
}

// rebuildDerived recomputes the perimeter and both legal-move sets from the
// cell grid alone.
func (b *Board) rebuildDerived() {
	b.perimeter = make(map[int]struct{})
	b.legal = map[Disc]map[int]struct{}{
		Black: make(map[int]struct{}),
		White: make(map[int]struct{}),
	}

	for index, cell := range b.cells {
		if cell == Empty {
			continue
		}
		for _, dir := range directions {
			if next, ok := b.step(index, dir, 1); ok && b.cells[next] == Empty {
				b.perimeter[next] = struct{}{}
			}
		}
	}

	for cell := range b.perimeter {
		b.updateLegality(cell)
	}
}

// Clone returns a deep copy sharing no state with the receiver. Simulations
// branch on clones so the live board is never mutated.
func (b *Board) Clone() *Board {
	clone := &Board{
		width:     b.width,
		height:    b.height,
		cells:     slices.Clone(b.cells),
		perimeter: maps.Clone(b.perimeter),
		legal: map[Disc]map[int]struct{}{
			Black: maps.Clone(b.legal[Black]),
			White: maps.Clone(b.legal[White]),
		},
		turn: b.turn,
	}
	return clone
}

// Width returns the board width in cells.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board height in cells.
func (b *Board) Height() int {
	return b.height
}

// Cell returns the disc at the given index.
func (b *Board) Cell(index int) Disc {
	return b.cells[index]
}

// Turn returns the color to move next.
func (b *Board) Turn() Disc {
	return b.turn
}

// LegalMoves returns the player's legal destinations in ascending index
// order. The stable order gives deterministic iteration for tie-breaking and
// positional access for random sampling.
func (b *Board) LegalMoves(player Disc) []int {
	moves := slices.Collect(maps.Keys(b.legal[player]))
	slices.Sort(moves)
	return moves
}

// HasMoves reports whether the player has at least one legal move.
func (b *Board) HasMoves(player Disc) bool {
	return len(b.legal[player]) > 0
}

// IsLegalMove reports whether the player may place a disc at index right now.
func (b *Board) IsLegalMove(index int, player Disc) bool {
	_, ok := b.legal[player][index]
	return ok
}

// DoMove places a disc for player at index, flips every sandwiched opponent
// run, updates the perimeter and both legal-move sets, and passes the turn to
// the other color. It returns ErrIllegalMove without touching any state when
// the move is not legal.
func (b *Board) DoMove(index int, player Disc) error {
	if !b.IsLegalMove(index, player) {
		return fmt.Errorf("%w: %d is not a legal move for %s", ErrIllegalMove, index, player)
	}

	b.cells[index] = player
	b.flipRuns(index, player)

	delete(b.perimeter, index)
	for _, dir := range directions {
		if next, ok := b.step(index, dir, 1); ok && b.cells[next] == Empty {
			b.perimeter[next] = struct{}{}
		}
	}

	// The placed disc invalidates the cell for both players. Every other
	// legal cell is empty and adjacent to a disc, so rescanning the
	// perimeter covers all cells whose legality a move or flip can change.
	delete(b.legal[Black], index)
	delete(b.legal[White], index)
	for cell := range b.perimeter {
		b.updateLegality(cell)
	}

	b.turn = b.turn.Opponent()

	return nil
}

// flipRuns flips, in each of the eight directions, the contiguous run of
// opponent discs between index and the first same-colored disc. Runs broken
// by an empty cell or the board edge are left alone.
func (b *Board) flipRuns(index int, player Disc) {
	opponent := player.Opponent()

	for _, dir := range directions {
		var run []int
		for dist := 1; ; dist++ {
			next, ok := b.step(index, dir, dist)
			if !ok {
				break
			}

			cell := b.cells[next]
			if cell == opponent {
				run = append(run, next)
				continue
			}
			if cell == player {
				for _, flip := range run {
					b.cells[flip] = player
				}
			}
			break
		}
	}
}

// updateLegality re-evaluates a single cell for both players and updates
// their legal-move sets.
func (b *Board) updateLegality(index int) {
	for _, player := range []Disc{Black, White} {
		if b.isLegal(index, player) {
			b.legal[player][index] = struct{}{}
		} else {
			delete(b.legal[player], index)
		}
	}
}

// isLegal reports whether placing player at index would flip at least one
// opponent disc in some direction.
func (b *Board) isLegal(index int, player Disc) bool {
	if b.cells[index] != Empty {
		return false
	}

	for _, dir := range directions {
		for dist := 1; ; dist++ {
			next, ok := b.step(index, dir, dist)
			if !ok || b.cells[next] == Empty {
				break
			}
			if b.cells[next] == player {
				if dist > 1 {
					return true
				}
				break
			}
		}
	}

	return false
}

// Score returns the disc counts for black and white.
func (b *Board) Score() (black, white int) {
	for _, cell := range b.cells {
		switch cell {
		case Black:
			black++
		case White:
			white++
		}
	}
	return black, white
}

// State classifies the board. The game is over as soon as either player has
// no legal moves; this is intentionally coarser than tournament Reversi,
// which forces a pass and only ends when both players are blocked.
func (b *Board) State() GameState {
	if b.HasMoves(Black) && b.HasMoves(White) {
		return InProgress
	}

	black, white := b.Score()
	switch {
	case black > white:
		return BlackWon
	case white > black:
		return WhiteWon
	}
	return Draw
}

// CountDiscs returns the total number of discs on the board.
func (b *Board) CountDiscs() int {
	black, white := b.Score()
	return black + white
}

// ASCIIArtLines returns a plain-text rendering of the board, with the current
// player's legal moves marked. Used for debug logging.
func (b *Board) ASCIIArtLines() []string {
	lines := make([]string, 0, b.height+2)

	header := "+-"
	for col := range b.width {
		header += string(rune('a'+col)) + "-"
	}
	lines = append(lines, header+"+")

	for row := range b.height {
		line := fmt.Sprintf("%d ", row+1)
		for col := range b.width {
			index := row*b.width + col
			switch {
			case b.cells[index] == Black:
				line += "● "
			case b.cells[index] == White:
				line += "○ "
			case b.IsLegalMove(index, b.turn):
				line += "· "
			default:
				line += "  "
			}
		}
		lines = append(lines, line+"|")
	}

	footer := "+"
	for range 2*b.width + 1 {
		footer += "-"
	}
	lines = append(lines, footer+"+")

	return lines
}

// String returns the serialization parsed by NewBoardFromString.
func (b *Board) String() string {
	buf := make([]byte, 0, len(b.cells)+2)
	for _, cell := range b.cells {
		buf = append(buf, cell.String()[0])
	}

	if b.turn == White {
		return string(buf) + "-w"
	}
	return string(buf) + "-b"
}
