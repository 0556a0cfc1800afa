package searcher

import "reversi/game"

// negamax scores leaves from the side to move and negates child scores, so a
// single maximizing branch serves both players. The window is negated and
// swapped on every descent, including forced passes.
func (b *Bot) negamax(g *game.Reversi, depth int, alpha, beta int64) result {
	if !g.AnyoneCanMove() || b.depthReached(depth) {
		return result{score: b.evaluate(g.Board(), g.CurrentPlayer())}
	}

	b.metrics.AddExpansion()
	if !g.CanMove(g.CurrentPlayer()) { // Forced pass
		g.SwitchPlayers()
		g.UpdateValidMoves()
		res := b.negamax(g, depth+1, -beta, -alpha)
		g.SwitchPlayers()
		g.UpdateValidMoves()
		res.score = -res.score
		return res
	}

	best := result{score: -inf}
	for _, m := range g.ValidMoves() {
		g.PlacePieceAndAddHistory(m)
		g.SwitchPlayers()
		g.UpdateValidMoves()
		child := b.negamax(g, depth+1, -beta, -alpha)
		g.UndoTurn()
		g.UpdateValidMoves()

		b.metrics.AddComparison()
		score := -child.score
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
