package searcher

import "reversi/game"

// alphaBeta walks the tree like minimax while threading an (alpha, beta)
// window. Each child's score tightens the bound owned by the side to move:
// alpha on player's turns, beta on the opponent's. Siblings are skipped once
// alpha > beta.
func (b *Bot) alphaBeta(g *game.Reversi, player game.Player, depth int, alpha, beta int64) result {
	if !g.AnyoneCanMove() || b.depthReached(depth) {
		return result{score: b.evaluate(g.Board(), player)}
	}

	b.metrics.AddExpansion()
	if !g.CanMove(g.CurrentPlayer()) { // Forced pass
		g.SwitchPlayers()
		g.UpdateValidMoves()
		res := b.alphaBeta(g, player, depth+1, alpha, beta)
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
		child := b.alphaBeta(g, player, depth+1, alpha, beta)
		g.UndoTurn()
		g.UpdateValidMoves()

		b.metrics.AddComparison()
		if improves(maximizing, child.score, best.score) {
			best = result{score: child.score, move: m, found: true}
		}
		if maximizing {
			alpha = max(alpha, child.score)
		} else {
			beta = min(beta, child.score)
		}
		if alpha > beta {
			break
		}
	}
	return best
}
