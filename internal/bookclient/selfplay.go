package bookclient

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/reversilabs/flipdisc/internal/analysis"
	"github.com/reversilabs/flipdisc/internal/config"
	"github.com/reversilabs/flipdisc/internal/models"
	"github.com/reversilabs/flipdisc/internal/reversi"
	"github.com/reversilabs/flipdisc/internal/search"
)

const (
	heartbeatInterval = time.Minute
	submitRetryDelay  = 10 * time.Second

	// Per-move budget during selfplay. Kept small so one game produces
	// entries for dozens of positions in reasonable time.
	selfplayRounds = 50
	selfplayBudget = 250 * time.Millisecond
)

// Selfplay plays engine-vs-engine games and submits the per-position playout
// statistics to the server.
type Selfplay struct {
	api      *Client
	searcher *search.Searcher
}

func NewSelfplay(cfg *config.SelfplayConfig, game *config.GameConfig) (*Selfplay, error) {
	api, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}

	searcher := search.NewSearcher(
		search.WithRounds(selfplayRounds),
		search.WithBudget(selfplayBudget),
		search.WithDifficulty(search.Hard),
		search.WithWorkers(game.SearchWorkers),
	)

	return &Selfplay{
		api:      api,
		searcher: searcher,
	}, nil
}

// Run registers with the server and plays games until the process is stopped.
func (s *Selfplay) Run() error {
	if err := s.api.Register(); err != nil {
		return err
	}

	go s.heartbeatLoop()
	s.playLoop()

	return nil
}

func (s *Selfplay) heartbeatLoop() {
	for {
		time.Sleep(heartbeatInterval)

		if err := s.api.Heartbeat(); err != nil {
			slog.Error("Failed to send heartbeat", "error", err)
		}
	}
}

func (s *Selfplay) playLoop() {
	games := 0
	for {
		entries, state, err := s.playGame()
		if err != nil {
			slog.Error("Selfplay game failed", "error", err)
			time.Sleep(submitRetryDelay)
			continue
		}

		games++
		slog.Info("Selfplay game finished", "game", games, "result", state.String(), "positions", len(entries))

		payload := models.PlayoutsPayload{Playouts: entries}
		if err := s.api.SubmitPlayouts(payload); err != nil {
			slog.Error("Failed to submit playouts", "error", err)
			time.Sleep(submitRetryDelay)
		}
	}
}

// playGame plays one full game, searching every position from the side to
// move and collecting a book entry per searched position.
func (s *Selfplay) playGame() ([]models.BookEntry, reversi.GameState, error) {
	board := reversi.NewBoard(8, 8)
	entries := make([]models.BookEntry, 0, 60) //nolint:mnd

	for board.State() == reversi.InProgress {
		result := s.searcher.Search(board)

		entry, err := analysis.BuildBookEntry(board, result)
		if err != nil {
			return nil, reversi.InProgress, fmt.Errorf("failed to build book entry: %w", err)
		}
		entries = append(entries, entry)

		if err := board.DoMove(result.Move, board.Turn()); err != nil {
			return nil, reversi.InProgress, fmt.Errorf("searcher returned illegal move: %w", err)
		}
	}

	return entries, board.State(), nil
}
