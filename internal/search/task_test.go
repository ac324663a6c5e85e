package search

import (
	"context"
	"testing"
	"time"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/errors"
	"github.com/lgbarn/chessai-go/internal/testutil"
)

func TestTask(t *testing.T) {
	b := testutil.PlayMoves(t, chess.CreateStandardBoard(), "f2f3", "e7e5", "g2g4")
	eval := NewStandardEvaluator(DefaultWeights())

	task := Start(context.Background(), NewAlphaBeta(2, eval), b)
	select {
	case <-task.Done():
	case <-time.After(30 * time.Second):
		t.Fatal("search did not finish")
	}

	res, err := task.Wait()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res.Move.String(), "d8h4")

	// Wait may be called again after completion.
	again, err := task.Wait()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, again, res)
}

func TestTask_Errors(t *testing.T) {
	eval := NewStandardEvaluator(DefaultWeights())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Start(ctx, NewMinimax(3, eval), chess.CreateStandardBoard()).Wait()
	testutil.AssertErrorIs(t, err, context.Canceled)

	mated := testutil.PlayMoves(t, chess.CreateStandardBoard(), "f2f3", "e7e5", "g2g4", "d8h4")
	task := Start(context.Background(), NewMinimax(1, eval), mated)
	<-task.Done()
	res, err := task.Wait()
	testutil.AssertErrorIs(t, err, errors.ErrNoMoveFound)
	testutil.AssertTrue(t, res.Move.IsNull(), "no move on error")
}
