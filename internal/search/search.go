// Package search selects moves for an automated player by fixed-depth
// adversarial search over freshly derived boards.
package search

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/config"
	"github.com/lgbarn/chessai-go/internal/errors"
	"github.com/lgbarn/chessai-go/internal/hashing"
)

// MateScore is the base value of a checkmate. A mate found with d plies of
// depth remaining scores MateScore+d, so nearer mates score higher.
const MateScore = 1000000

// Result is the outcome of a search from one root board.
type Result struct {
	Move    chess.Move
	Score   int // positive favours White
	Depth   int
	Nodes   uint64
	Elapsed time.Duration
}

// Strategy picks a move for the side to move on a board.
type Strategy interface {
	BestMove(ctx context.Context, board *chess.Board) (Result, error)
}

// BestMove searches board to depth plies with plain minimax and the standard
// evaluator and returns the chosen move.
func BestMove(board *chess.Board, depth int) (chess.Move, error) {
	res, err := NewMinimax(depth, NewStandardEvaluator(DefaultWeights())).BestMove(context.Background(), board)
	if err != nil {
		return chess.NoMove, err
	}
	return res.Move, nil
}

// NewStrategy builds the strategy selected by cfg, logging to cfg.LogFile.
func NewStrategy(cfg *config.Config) Strategy {
	eval := NewStandardEvaluator(WeightsFromConfig(cfg.Eval))
	if cfg.Eval.UseCache {
		eval = eval.WithCache(hashing.NewScoreCache(cfg.Eval.CacheCapacity))
	}
	if cfg.Search.Algorithm == config.AlphaBeta {
		s := NewAlphaBeta(cfg.Search.Depth, eval)
		s.SetLog(cfg.LogFile, cfg.Verbosity)
		return s
	}
	s := NewMinimax(cfg.Search.Depth, eval)
	s.SetLog(cfg.LogFile, cfg.Verbosity)
	return s
}

// logger carries the log writer shared by the strategies.
type logger struct {
	log       io.Writer
	verbosity int
}

// SetLog directs search statistics to w; they are written when verbosity
// is greater than 1.
func (l *logger) SetLog(w io.Writer, verbosity int) {
	l.log = w
	l.verbosity = verbosity
}

func (l *logger) report(name string, board *chess.Board, res Result) {
	if l.log == nil || l.verbosity < 2 {
		return
	}
	fmt.Fprintf(l.log, "%s: %s to move, depth %d, best %s score %d, %d nodes in %v\n",
		name, board.SideToMove(), res.Depth, res.Move, res.Score, res.Nodes, res.Elapsed)
}

// childValue scores the child board of a root move with depth plies left.
type childValue func(child *chess.Board, depth int, bound int) int

// searchRoot tries the legal moves of the side to move in generation order
// and keeps the first move with the best child value. ctx is checked before
// each root move.
func searchRoot(ctx context.Context, board *chess.Board, depth int, value childValue) (Result, error) {
	start := time.Now()
	side := board.SideToMove()
	if depth < 1 {
		return Result{}, errors.Wrapf(errors.ErrInvalidConfig, "search depth %d", depth)
	}

	maximizing := side.IsWhite()
	best := Result{Move: chess.NoMove, Depth: depth}
	found := false
	for _, m := range board.PseudoLegalMoves(side) {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		child := m.Execute(board)
		if chess.IsKingAttacked(child, side) {
			continue
		}
		bound := -infinity
		if !maximizing {
			bound = infinity
		}
		if found {
			bound = best.Score
		}
		score := value(child, depth-1, bound)
		if !found || (maximizing && score > best.Score) || (!maximizing && score < best.Score) {
			best.Move = m
			best.Score = score
			found = true
		}
	}
	if !found {
		return Result{}, errors.Wrapf(errors.ErrNoMoveFound, "%s to move is %s", side, board.CurrentPlayer().State())
	}
	best.Elapsed = time.Since(start)
	return best, nil
}

const infinity = 2 * MateScore

// terminalScore scores a side to move with no legal move.
func terminalScore(side chess.Side, inCheck bool, depth int) int {
	if !inCheck {
		return 0
	}
	if side.IsWhite() {
		return -(MateScore + depth)
	}
	return MateScore + depth
}
