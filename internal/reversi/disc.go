package reversi

// Disc is the contents of a single board cell.
type Disc uint8

const (
	Empty Disc = iota
	Black
	White
)

// Opponent returns the other color. Calling it on Empty is a programmer error.
func (d Disc) Opponent() Disc {
	switch d {
	case Black:
		return White
	case White:
		return Black
	}
	panic("reversi: Empty has no opponent")
}

// String returns a single-character representation used by Board.String.
func (d Disc) String() string {
	switch d {
	case Black:
		return "x"
	case White:
		return "o"
	}
	return "."
}

// GameState is the outcome classification of a board.
type GameState int

const (
	InProgress GameState = iota
	BlackWon
	WhiteWon
	Draw
)

func (s GameState) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case BlackWon:
		return "black won"
	case WhiteWon:
		return "white won"
	case Draw:
		return "draw"
	}
	return "unknown"
}

// Winner returns the winning color, or Empty for a draw or an unfinished game.
func (s GameState) Winner() Disc {
	switch s {
	case BlackWon:
		return Black
	case WhiteWon:
		return White
	}
	return Empty
}
