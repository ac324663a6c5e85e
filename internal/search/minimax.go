package search

import (
	"context"

	"github.com/lgbarn/chessai-go/internal/chess"
)

// Minimax is the plain fixed-depth search: every legal line is expanded to
// the full depth. White maximizes and Black minimizes.
type Minimax struct {
	logger
	depth     int
	evaluator Evaluator
	nodes     uint64
}

// NewMinimax creates a minimax strategy searching depth plies.
func NewMinimax(depth int, evaluator Evaluator) *Minimax {
	return &Minimax{depth: depth, evaluator: evaluator}
}

// Depth returns the search depth in plies.
func (s *Minimax) Depth() int { return s.depth }

// BestMove implements Strategy. A Minimax value must not run two searches
// at once.
func (s *Minimax) BestMove(ctx context.Context, board *chess.Board) (Result, error) {
	s.nodes = 0
	res, err := searchRoot(ctx, board, s.depth, func(child *chess.Board, depth, _ int) int {
		return s.value(child, depth)
	})
	res.Nodes = s.nodes
	if err == nil {
		s.report("minimax", board, res)
	}
	return res, err
}

func (s *Minimax) value(b *chess.Board, depth int) int {
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
		score := s.value(child, depth-1)
		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}
	if !legal {
		return terminalScore(side, chess.IsKingAttacked(b, side), depth)
	}
	return best
}
