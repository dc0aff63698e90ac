package search

import (
	"math/rand"

	"github.com/reversilabs/flipdisc/internal/reversi"
)

// randomIndex returns a uniform random index below n. The top-level rand
// functions are safe for concurrent use by the round workers.
func randomIndex(n int) int {
	return rand.Intn(n)
}

// randomMove picks a uniform random legal move for the player. The player
// must have at least one legal move.
func randomMove(b *reversi.Board, player reversi.Disc) int {
	moves := b.LegalMoves(player)
	return moves[randomIndex(len(moves))]
}

// greedyMove picks the legal move that maximizes the player's own disc count
// one ply ahead. Ties break towards the first candidate in ascending index
// order. When no move beats the current count the first candidate is played,
// so the policy always makes progress.
func greedyMove(b *reversi.Board, player reversi.Disc) int {
	moves := b.LegalMoves(player)

	best := moves[0]
	bestScore := scoreFor(b, player)

	for _, move := range moves {
		child := b.Clone()
		if err := child.DoMove(move, player); err != nil {
			panic("search: legal move rejected: " + err.Error())
		}
		if score := scoreFor(child, player); score > bestScore {
			best = move
			bestScore = score
		}
	}

	return best
}

// scoreFor returns the player's disc count.
func scoreFor(b *reversi.Board, player reversi.Disc) int {
	black, white := b.Score()
	if player == reversi.Black {
		return black
	}
	return white
}
