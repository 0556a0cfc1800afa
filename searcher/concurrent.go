package searcher

import (
	"golang.org/x/sync/errgroup"

	"reversi/game"
)

// concurrentNegamax has the recursion and pruning of negamax, but explores
// each sibling on its own copy of the board. All siblings are launched before
// any result is gathered, so a cutoff only stops the fold over results that
// were already computed; in-flight siblings are never cancelled.
//
// At most b.goroutines siblings run on their own goroutine at a time. When none
// are free, the launching goroutine runs the sibling itself.
func (b *Bot) concurrentNegamax(board *game.Board, player game.Player, depth int, alpha, beta int64) result {
	if !game.AnyoneCanMove(board) || b.depthReached(depth) {
		return result{score: b.evaluate(board, player)}
	}

	b.metrics.AddExpansion()
	if !game.CanMove(board, player) { // Forced pass
		res := b.concurrentNegamax(board, player.Other(), depth+1, -beta, -alpha)
		res.score = -res.score
		return res
	}

	moves := game.ValidMovesForPlayer(board, player)
	results := make([]result, len(moves))

	var g errgroup.Group
	for i, m := range moves {
		next := board.Clone()
		game.PlacePieceOnBoard(next, m, player)
		explore := func() {
			results[i] = b.concurrentNegamax(next, player.Other(), depth+1, -beta, -alpha)
		}
		if b.workers.TryAcquire(1) {
			g.Go(func() error {
				defer b.workers.Release(1)
				explore()
				return nil
			})
		} else {
			explore()
		}
	}
	_ = g.Wait() // Siblings never fail

	best := result{score: -inf}
	for i, m := range moves {
		b.metrics.AddComparison()
		score := -results[i].score
		if score > best.score {
			best = result{score: score, move: m, found: true}
		}
		alpha = max(alpha, score)
		if alpha > beta {
			break
		}
	}
	return best
}
