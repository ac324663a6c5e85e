package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chessai-go/internal/chess"
)

// Task runs one search in the background. The caller decides what to do
// with the result once Done is closed; nothing is applied automatically.
type Task struct {
	group errgroup.Group
	done  chan struct{}
	res   Result
}

// Start begins searching board with s. Cancelling ctx stops the search
// between root moves.
func Start(ctx context.Context, s Strategy, board *chess.Board) *Task {
	t := &Task{done: make(chan struct{})}
	t.group.Go(func() error {
		defer close(t.done)
		res, err := s.BestMove(ctx, board)
		if err != nil {
			return err
		}
		t.res = res
		return nil
	})
	return t
}

// Done is closed when the search has finished.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the search has finished and returns its result.
func (t *Task) Wait() (Result, error) {
	if err := t.group.Wait(); err != nil {
		return Result{}, err
	}
	return t.res, nil
}
