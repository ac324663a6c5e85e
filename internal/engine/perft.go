package engine

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chessai-go/internal/chess"
)

// Perft counts the leaf nodes of the legal move tree of board to depth.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := board.CurrentPlayer().LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(m.Execute(board), depth-1)
	}
	return nodes
}

// Divide returns the perft count below each root move, keyed by move text.
func Divide(board *chess.Board, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth <= 0 {
		return counts
	}
	for _, m := range board.CurrentPlayer().LegalMoves() {
		counts[m.String()] = Perft(m.Execute(board), depth-1)
	}
	return counts
}

// DivideParallel is Divide with the root moves spread over at most workers
// goroutines. It stops early when ctx is cancelled.
func DivideParallel(ctx context.Context, board *chess.Board, depth, workers int) (map[string]uint64, error) {
	counts := make(map[string]uint64)
	if depth <= 0 {
		return counts, nil
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for _, m := range board.CurrentPlayer().LegalMoves() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			n := Perft(m.Execute(board), depth-1)
			mu.Lock()
			counts[m.String()] = n
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}
