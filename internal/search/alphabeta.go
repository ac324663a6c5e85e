package search

import (
	"context"

	"github.com/lgbarn/chessai-go/internal/chess"
)

// AlphaBeta is minimax with alpha-beta pruning. Moves are tried in
// generation order at every node, so it picks the same root move as Minimax
// while visiting fewer nodes.
type AlphaBeta struct {
	logger
	depth     int
	evaluator Evaluator
	nodes     uint64
}

// NewAlphaBeta creates an alpha-beta strategy searching depth plies.
func NewAlphaBeta(depth int, evaluator Evaluator) *AlphaBeta {
	return &AlphaBeta{depth: depth, evaluator: evaluator}
}

// Depth returns the search depth in plies.
func (s *AlphaBeta) Depth() int { return s.depth }

// BestMove implements Strategy. An AlphaBeta value must not run two
// searches at once.
func (s *AlphaBeta) BestMove(ctx context.Context, board *chess.Board) (Result, error) {
	s.nodes = 0
	maximizing := board.SideToMove().IsWhite()
	res, err := searchRoot(ctx, board, s.depth, func(child *chess.Board, depth, bound int) int {
		// Only moves strictly better than the current best can replace it.
		if maximizing {
			return s.value(child, depth, bound, infinity)
		}
		return s.value(child, depth, -infinity, bound)
	})
	res.Nodes = s.nodes
	if err == nil {
		s.report("alphabeta", board, res)
	}
	return res, err
}

// value returns the exact minimax value of b when it lies strictly inside
// (alpha, beta), and otherwise a bound on the far side of the window.
func (s *AlphaBeta) value(b *chess.Board, depth, alpha, beta int) int {
	s.nodes++
	side := b.SideToMove()
	if depth == 0 {
		return s.evaluator.Evaluate(b.CurrentPlayer(), depth)
	}

	maximizing := side.IsWhite()
	best := -infinity
	if !maximizing {
		best = infinity
	}
	legal := false
	for _, m := range b.PseudoLegalMoves(side) {
		child := m.Execute(b)
		if chess.IsKingAttacked(child, side) {
			continue
		}
		legal = true
		score := s.value(child, depth-1, alpha, beta)
		if maximizing {
			best = max(best, score)
			alpha = max(alpha, score)
		} else {
			best = min(best, score)
			beta = min(beta, score)
		}
		if alpha >= beta {
			break
		}
	}
	if !legal {
		return terminalScore(side, chess.IsKingAttacked(b, side), depth)
	}
	return best
}
