// Package analysis runs playout searches on behalf of the HTTP and websocket
// transports and shapes the results into API models.
package analysis

import (
	"fmt"
	"runtime"
	"time"

	"github.com/reversilabs/flipdisc/internal/models"
	"github.com/reversilabs/flipdisc/internal/reversi"
	"github.com/reversilabs/flipdisc/internal/search"
)

const (
	defaultRounds = 200
	maxRounds     = 2000
	defaultBudget = 2 * time.Second
	maxBudget     = 10 * time.Second
)

// Run searches the board within the request's (clamped) budget and returns
// both the API response and the matching book entry for persistence.
func Run(board *reversi.Board, req models.AnalyzeRequest) (models.AnalyzeResponse, models.BookEntry, error) {
	difficulty := search.Easy
	if req.Difficulty != "" {
		var err error
		if difficulty, err = search.ParseDifficulty(req.Difficulty); err != nil {
			return models.AnalyzeResponse{}, models.BookEntry{}, err
		}
	}

	rounds := req.Rounds
	if rounds <= 0 {
		rounds = defaultRounds
	}
	rounds = min(rounds, maxRounds)

	budget := time.Duration(req.BudgetMs) * time.Millisecond
	if budget <= 0 {
		budget = defaultBudget
	}
	budget = min(budget, maxBudget)

	searcher := search.NewSearcher(
		search.WithRounds(rounds),
		search.WithBudget(budget),
		search.WithDifficulty(difficulty),
		search.WithWorkers(runtime.NumCPU()),
	)

	result := searcher.Search(board)

	response, err := buildResponse(result)
	if err != nil {
		return models.AnalyzeResponse{}, models.BookEntry{}, err
	}

	entry, err := BuildBookEntry(board, result)
	if err != nil {
		return models.AnalyzeResponse{}, models.BookEntry{}, err
	}

	return response, entry, nil
}

func buildResponse(result search.Result) (models.AnalyzeResponse, error) {
	bestMove, err := reversi.IndexToField(result.Move)
	if err != nil {
		return models.AnalyzeResponse{}, fmt.Errorf("invalid best move index: %w", err)
	}

	candidates := make([]models.CandidateStats, 0, len(result.Tallies))
	for _, tally := range result.Tallies {
		move, err := reversi.IndexToField(tally.Move)
		if err != nil {
			return models.AnalyzeResponse{}, fmt.Errorf("invalid candidate index: %w", err)
		}

		candidates = append(candidates, models.CandidateStats{
			Move:     move,
			Wins:     tally.Wins,
			Draws:    tally.Draws,
			Losses:   tally.Losses,
			Playouts: tally.Playouts(),
		})
	}

	return models.AnalyzeResponse{
		BestMove:   bestMove,
		Rounds:     result.Rounds,
		DurationMs: result.Duration.Milliseconds(),
		Candidates: candidates,
	}, nil
}

// BuildBookEntry aggregates a search result into the book row for the
// searched position.
func BuildBookEntry(board *reversi.Board, result search.Result) (models.BookEntry, error) {
	bestMove, err := reversi.IndexToField(result.Move)
	if err != nil {
		return models.BookEntry{}, fmt.Errorf("invalid best move index: %w", err)
	}

	entry := models.BookEntry{
		Position:  board.String(),
		DiscCount: board.CountDiscs(),
		BestMove:  bestMove,
	}

	for _, tally := range result.Tallies {
		entry.Playouts += tally.Playouts()
		entry.Wins += tally.Wins
		entry.Draws += tally.Draws
		entry.Losses += tally.Losses
	}

	return entry, nil
}
