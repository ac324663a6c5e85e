package engine

import (
	"context"
	"testing"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/testutil"
)

func TestPerft(t *testing.T) {
	for _, pos := range Positions {
		t.Run(pos.Name, func(t *testing.T) {
			board, err := pos.Board()
			testutil.AssertNoError(t, err)

			maxDepth := len(pos.Perft)
			if testing.Short() {
				maxDepth = min(maxDepth, 2)
			} else {
				maxDepth = min(maxDepth, 3)
			}
			for depth := 1; depth <= maxDepth; depth++ {
				if got := Perft(board, depth); got != pos.Perft[depth-1] {
					t.Errorf("Perft(%s, %d) = %d, want %d", pos.Name, depth, got, pos.Perft[depth-1])
				}
			}
		})
	}
}

func TestPerftStartDepth4(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	board, _ := Positions[0].Board()
	if got := Perft(board, 4); got != 197281 {
		t.Errorf("Perft(start, 4) = %d, want 197281", got)
	}
}

func TestPerftZeroDepth(t *testing.T) {
	board, _ := Positions[0].Board()
	testutil.AssertEqual(t, Perft(board, 0), uint64(1))
	testutil.AssertEqual(t, len(Divide(board, 0)), 0)
}

func TestDivideMatchesReference(t *testing.T) {
	for _, pos := range Positions {
		t.Run(pos.Name, func(t *testing.T) {
			board, err := pos.Board()
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, Divide(board, 2), ReferenceDivide(pos.FEN, 2))
		})
	}
}

func TestDivideParallel(t *testing.T) {
	board, _ := Positions[1].Board()

	got, err := DivideParallel(context.Background(), board, 2, 4)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, Divide(board, 2))

	var total uint64
	for _, n := range got {
		total += n
	}
	testutil.AssertEqual(t, total, Positions[1].Perft[1])
}

func TestDivideParallel_Cancelled(t *testing.T) {
	board, _ := Positions[0].Board()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := DivideParallel(ctx, board, 3, 2)
	testutil.AssertErrorIs(t, err, context.Canceled)
}

func TestFindPosition(t *testing.T) {
	pos, ok := FindPosition("kiwipete")
	testutil.AssertTrue(t, ok, "kiwipete found")
	board, err := pos.Board()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(board.ActivePieces(chess.White))+len(board.ActivePieces(chess.Black)), 32)

	_, ok = FindPosition("missing")
	testutil.AssertFalse(t, ok, "unknown name")
}
