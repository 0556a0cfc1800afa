package searcher

import "reversi/game"

// minimax scores every leaf from player's fixed perspective, maximizing on
// player's turns and minimizing on the opponent's. g is mutated in place and
// restored before returning.
func (b *Bot) minimax(g *game.Reversi, player game.Player, depth int) result {
	if !g.AnyoneCanMove() || b.depthReached(depth) {
		return result{score: b.evaluate(g.Board(), player)}
	}

	b.metrics.AddExpansion()
	if !g.CanMove(g.CurrentPlayer()) { // Forced pass
		g.SwitchPlayers()
		g.UpdateValidMoves()
		res := b.minimax(g, player, depth+1)
		g.SwitchPlayers()
		g.UpdateValidMoves()
		return res
	}

	maximizing := g.CurrentPlayer() == player
	best := result{score: worstFor(maximizing)}
	for _, m := range g.ValidMoves() {
		g.PlacePieceAndAddHistory(m)
		g.SwitchPlayers()
		g.UpdateValidMoves()
		child := b.minimax(g, player, depth+1)
		g.UndoTurn()
		g.UpdateValidMoves()

		b.metrics.AddComparison()
		if improves(maximizing, child.score, best.score) {
			best = result{score: child.score, move: m, found: true}
		}
	}
	return best
}

func worstFor(maximizing bool) int64 {
	if maximizing {
		return -inf
	}
	return inf
}

// improves keeps the first of equally scored moves.
func improves(maximizing bool, score, best int64) bool {
	if maximizing {
		return score > best
	}
	return score < best
}
