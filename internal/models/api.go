package models

import (
	"fmt"
	"time"

	"github.com/reversilabs/flipdisc/internal/reversi"
)

// AnalyzeRequest asks the server for the best move on a board. Board uses the
// serialization produced by reversi.Board.String. Difficulty, rounds and
// budget are optional and fall back to the server defaults.
type AnalyzeRequest struct {
	Board      string `json:"board"`
	Difficulty string `json:"difficulty,omitempty"`
	Rounds     int    `json:"rounds,omitempty"`
	BudgetMs   int    `json:"budget_ms,omitempty"`
}

// Validate parses the board and rejects positions without legal moves for the
// side to move, since the searcher requires at least one candidate.
func (r AnalyzeRequest) Validate() (*reversi.Board, error) {
	board, err := reversi.NewBoardFromString(r.Board)
	if err != nil {
		return nil, fmt.Errorf("invalid board: %w", err)
	}

	if !board.HasMoves(board.Turn()) {
		return nil, fmt.Errorf("no legal moves for side to move")
	}

	return board, nil
}

// CandidateStats carries the playout tallies for one candidate move.
type CandidateStats struct {
	Move     string `json:"move"`
	Wins     int    `json:"wins"`
	Draws    int    `json:"draws"`
	Losses   int    `json:"losses"`
	Playouts int    `json:"playouts"`
}

// AnalyzeResponse is the result of an analyze request.
type AnalyzeResponse struct {
	BestMove   string           `json:"best_move"`
	Rounds     int              `json:"rounds"`
	DurationMs int64            `json:"duration_ms"`
	Candidates []CandidateStats `json:"candidates"`
}

// BookEntry is one accumulated book row: the playout statistics recorded for
// a position across all searches that analyzed it.
type BookEntry struct {
	Position  string `json:"position" db:"position"`
	DiscCount int    `json:"disc_count" db:"disc_count"`
	Playouts  int    `json:"playouts" db:"playouts"`
	Wins      int    `json:"wins" db:"wins"`
	Draws     int    `json:"draws" db:"draws"`
	Losses    int    `json:"losses" db:"losses"`
	BestMove  string `json:"best_move" db:"best_move"`
}

// Validate checks that the entry's position parses and its counters add up.
func (e BookEntry) Validate() error {
	if _, err := reversi.NewBoardFromString(e.Position); err != nil {
		return fmt.Errorf("invalid position: %w", err)
	}

	if e.Playouts != e.Wins+e.Draws+e.Losses {
		return fmt.Errorf("playout count %d does not match outcome sum %d", e.Playouts, e.Wins+e.Draws+e.Losses)
	}

	if _, err := reversi.FieldToIndex(e.BestMove); err != nil {
		return fmt.Errorf("invalid best move: %w", err)
	}

	return nil
}

// PlayoutsPayload is a batch of book entries submitted by a client.
type PlayoutsPayload struct {
	Playouts []BookEntry `json:"playouts"`
}

// LookupPayload asks the server for the book entries of given positions.
type LookupPayload struct {
	Positions []string `json:"positions"`
}

// BookStats summarizes the book contents for one disc count.
type BookStats struct {
	DiscCount int `json:"disc_count"`
	Positions int `json:"positions"`
	Playouts  int `json:"playouts"`
}

// RegisterRequest registers a selfplay client.
type RegisterRequest struct {
	Hostname  string `json:"hostname"`
	GitCommit string `json:"git_commit"`
}

// RegisterResponse is the response to a register request.
type RegisterResponse struct {
	ClientID string `json:"client_id"`
}

// ClientStats describes one registered selfplay client.
type ClientStats struct {
	ID                string    `json:"id"`
	Hostname          string    `json:"hostname"`
	GitCommit         string    `json:"git_commit"`
	GamesPlayed       int       `json:"games_played"`
	PlayoutsSubmitted int       `json:"playouts_submitted"`
	LastActive        time.Time `json:"last_active"`
}

// StatsResponse lists all registered selfplay clients.
type StatsResponse struct {
	ActiveClients int           `json:"active_clients"`
	Clients       []ClientStats `json:"clients"`
}
