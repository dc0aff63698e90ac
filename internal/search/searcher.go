package search

import (
	"sync"
	"time"

	"github.com/reversilabs/flipdisc/internal/reversi"
)

const (
	DefaultRounds = 1000
	DefaultBudget = 5 * time.Second
)

type Option func(*Searcher)

// WithRounds caps the number of outer rounds. Each round plays out every
// candidate move once.
func WithRounds(rounds int) Option {
	return func(s *Searcher) {
		if rounds > 0 {
			s.rounds = rounds
		}
	}
}

// WithBudget caps the wall-clock time spent searching. The budget is checked
// between rounds, so a slow round can overshoot it.
func WithBudget(budget time.Duration) Option {
	return func(s *Searcher) {
		if budget > 0 {
			s.budget = budget
		}
	}
}

// WithDifficulty selects the policy for the simulated opponent's moves.
func WithDifficulty(difficulty Difficulty) Option {
	return func(s *Searcher) {
		s.difficulty = difficulty
	}
}

// WithWorkers fans each round's candidates out over the given number of
// goroutines. Playouts run on independent board clones, so they share no
// mutable state.
func WithWorkers(workers int) Option {
	return func(s *Searcher) {
		if workers > 0 {
			s.workers = workers
		}
	}
}

// Searcher picks moves by running randomized full-game playouts for every
// candidate and keeping the candidate that wins the most simulations.
type Searcher struct {
	rounds     int
	budget     time.Duration
	difficulty Difficulty
	workers    int
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{
		rounds:     DefaultRounds,
		budget:     DefaultBudget,
		difficulty: Easy,
		workers:    1,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Tally accumulates simulation outcomes for one candidate move, seen from the
// searching player's side.
type Tally struct {
	Move   int
	Wins   int
	Draws  int
	Losses int
}

// Playouts returns the number of simulations recorded against the candidate.
func (t Tally) Playouts() int {
	return t.Wins + t.Draws + t.Losses
}

// Result is the outcome of a search.
type Result struct {
	Move     int
	Rounds   int
	Duration time.Duration
	Tallies  []Tally
}

// ChooseMove returns the best move for the side to move on the given board.
// The board must have at least one legal move for that side; calling
// ChooseMove on a blocked board is a programmer error.
func (s *Searcher) ChooseMove(b *reversi.Board) int {
	return s.Search(b).Move
}

// Search runs playouts for every candidate move within the round and time
// budgets and returns the best move together with the per-candidate tallies.
func (s *Searcher) Search(b *reversi.Board) Result {
	player := b.Turn()
	candidates := b.LegalMoves(player)
	if len(candidates) == 0 {
		panic("search: no legal moves for side to move")
	}

	tallies := make([]Tally, len(candidates))
	for i, move := range candidates {
		tallies[i].Move = move
	}

	start := time.Now()
	rounds := 0
	for range s.rounds {
		if time.Since(start) >= s.budget {
			break
		}
		s.runRound(b, player, candidates, tallies)
		rounds++
	}

	return Result{
		Move:     bestMove(candidates, tallies),
		Rounds:   rounds,
		Duration: time.Since(start),
		Tallies:  tallies,
	}
}

// runRound plays out every candidate once. With more than one worker the
// candidates are distributed over goroutines; every tally slot is owned by
// exactly one candidate, so no locking is needed.
func (s *Searcher) runRound(b *reversi.Board, player reversi.Disc, candidates []int, tallies []Tally) {
	if s.workers <= 1 {
		for i := range candidates {
			s.playoutInto(&tallies[i], b, player)
		}
		return
	}

	task := make(chan int, len(candidates))
	for i := range candidates {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for range s.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range task {
				s.playoutInto(&tallies[i], b, player)
			}
		}()
	}
	wg.Wait()
}

// playoutInto runs one full playout for the tally's candidate move and
// records the outcome.
func (s *Searcher) playoutInto(tally *Tally, b *reversi.Board, player reversi.Disc) {
	switch s.playout(b, tally.Move, player).Winner() {
	case player:
		tally.Wins++
	case player.Opponent():
		tally.Losses++
	default:
		tally.Draws++
	}
}

// playout clones the board, applies the candidate move and plays random moves
// until a terminal state. On the simulated opponent's turns the difficulty's
// policy applies; the searching player's own simulated turns are always
// uniform random.
func (s *Searcher) playout(b *reversi.Board, move int, player reversi.Disc) reversi.GameState {
	sim := b.Clone()
	if err := sim.DoMove(move, player); err != nil {
		panic("search: candidate move is not legal: " + err.Error())
	}

	opponent := player.Opponent()
	for {
		state := sim.State()
		if state != reversi.InProgress {
			return state
		}

		// State is InProgress, so both sides have moves and the
		// policies below always find one.
		turn := sim.Turn()
		var next int
		if turn == opponent && s.difficulty == Hard {
			next = greedyMove(sim, turn)
		} else {
			next = randomMove(sim, turn)
		}

		if err := sim.DoMove(next, turn); err != nil {
			panic("search: playout policy returned illegal move: " + err.Error())
		}
	}
}

// bestMove picks the candidate with the most recorded wins. Candidates are in
// ascending index order, so ties break deterministically towards the lowest
// index. When no candidate won a single playout a uniform random candidate is
// returned instead.
func bestMove(candidates []int, tallies []Tally) int {
	best := -1
	bestWins := 0
	for i, tally := range tallies {
		if tally.Wins > bestWins {
			best = i
			bestWins = tally.Wins
		}
	}

	if best == -1 {
		return candidates[randomIndex(len(candidates))]
	}
	return candidates[best]
}
