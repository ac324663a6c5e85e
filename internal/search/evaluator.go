package search

import (
	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/config"
	"github.com/lgbarn/chessai-go/internal/hashing"
)

// Evaluator scores the board of a player to move, positive favouring White.
// depth is the number of plies still unsearched, used to prefer nearer mates.
type Evaluator interface {
	Evaluate(p *chess.Player, depth int) int
}

// Weights are the centipawn weights of the positional terms.
type Weights struct {
	Mobility   int
	Check      int
	PawnShield int
	Centre     int
}

// DefaultWeights returns the weights used by BestMove.
func DefaultWeights() Weights {
	return WeightsFromConfig(config.NewEvalConfig())
}

// WeightsFromConfig copies the weights of an evaluation config.
func WeightsFromConfig(cfg *config.EvalConfig) Weights {
	return Weights{
		Mobility:   cfg.Mobility,
		Check:      cfg.Check,
		PawnShield: cfg.PawnShield,
		Centre:     cfg.Centre,
	}
}

// centre holds d5, e5, d4 and e4.
var centre = [...]int{27, 28, 35, 36}

// StandardEvaluator scores material plus mobility, check, king pawn shield
// and centre occupation.
type StandardEvaluator struct {
	weights Weights
	cache   *hashing.ScoreCache
}

// NewStandardEvaluator creates an evaluator with the given weights.
func NewStandardEvaluator(w Weights) *StandardEvaluator {
	return &StandardEvaluator{weights: w}
}

// WithCache returns a copy of e that memoizes scores in c. The cache may be
// shared between concurrent searches.
func (e *StandardEvaluator) WithCache(c *hashing.ScoreCache) *StandardEvaluator {
	cp := *e
	cp.cache = c
	return &cp
}

// Cache returns the score cache, or nil.
func (e *StandardEvaluator) Cache() *hashing.ScoreCache {
	return e.cache
}

// Evaluate implements Evaluator. A checkmated player scores as a mate for
// the opponent and a stalemated one scores 0.
func (e *StandardEvaluator) Evaluate(p *chess.Player, depth int) int {
	b := p.Board()
	var key uint64
	if e.cache != nil {
		key = hashing.Zobrist(b)
		if score, ok := e.cache.Get(key, depth); ok {
			return score
		}
	}

	var score int
	if !chess.HasLegalMoves(b, p.Side()) {
		score = terminalScore(p.Side(), p.IsInCheck(), depth)
	} else {
		score = e.sideScore(b, chess.White) - e.sideScore(b, chess.Black)
	}

	if e.cache != nil {
		e.cache.Put(key, depth, score)
	}
	return score
}

func (e *StandardEvaluator) sideScore(b *chess.Board, side chess.Side) int {
	score := e.weights.Mobility * b.MoveCount(side)
	king, hasKing := b.King(side)
	for _, p := range b.ActivePieces(side) {
		score += p.Value()
		if hasKing && p.Kind == chess.Pawn && chess.Distance(p.Position, king.Position) == 1 {
			score += e.weights.PawnShield
		}
	}
	for _, c := range centre {
		if p, ok := b.Piece(c); ok && p.Side == side {
			score += e.weights.Centre
		}
	}
	if chess.IsKingAttacked(b, side.Opponent()) {
		score += e.weights.Check
	}
	return score
}
