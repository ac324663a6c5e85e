package chess_test

import (
	"testing"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/testutil"
)

func BenchmarkCreateStandardBoard(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = chess.CreateStandardBoard()
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	board := testutil.PlayMoves(b, chess.CreateStandardBoard(), "e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.CurrentPlayer().LegalMoves()
	}
}

func BenchmarkExecute(b *testing.B) {
	board := chess.CreateStandardBoard()
	m := chess.CreateMove(board, testutil.Sq("e2"), testutil.Sq("e4"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Execute(board)
	}
}

func BenchmarkIsAttacked(b *testing.B) {
	board := chess.CreateStandardBoard()
	target := testutil.Sq("f7")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = chess.IsAttacked(board, target, chess.White)
	}
}
