package search

import (
	"testing"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/hashing"
	"github.com/lgbarn/chessai-go/internal/testutil"
)

func TestStandardEvaluator_Symmetric(t *testing.T) {
	eval := NewStandardEvaluator(DefaultWeights())
	b := chess.CreateStandardBoard()

	testutil.AssertEqual(t, eval.Evaluate(b.CurrentPlayer(), 0), 0)
}

func TestStandardEvaluator_Terms(t *testing.T) {
	tests := []struct {
		name    string
		weights Weights
		side    chess.Side
		pieces  []string
		want    int
	}{
		{
			name:   "material only",
			side:   chess.White,
			pieces: []string{"Ke1*", "Rd4*", "ke8*", "nb8*"},
			want:   chess.Rook.Value() - chess.Knight.Value(),
		},
		{
			name:    "centre occupation",
			weights: Weights{Centre: 15},
			side:    chess.White,
			pieces:  []string{"Ka1*", "Nd4*", "Ne5*", "kh8*", "nh1*", "nd5*"},
			want:    15,
		},
		{
			name:    "pawn shield",
			weights: Weights{PawnShield: 10},
			side:    chess.Black,
			pieces:  []string{"Kg1*", "Pf2*", "Pg2*", "Ph2*", "kg8*", "pf7*", "pg7*", "pa7*"},
			want:    10,
		},
		{
			name:    "check bonus",
			weights: Weights{Check: 50},
			side:    chess.Black,
			pieces:  []string{"Ka1*", "Ra8*", "kh8*", "rb2*"},
			want:    50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBuild(t, tt.side, tt.pieces...)
			got := NewStandardEvaluator(tt.weights).Evaluate(b.CurrentPlayer(), 0)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestStandardEvaluator_Mobility(t *testing.T) {
	b := testutil.PlayMoves(t, chess.CreateStandardBoard(), "e2e4")
	w := Weights{Mobility: 1}

	want := b.MoveCount(chess.White) - b.MoveCount(chess.Black)
	testutil.AssertEqual(t, NewStandardEvaluator(w).Evaluate(b.CurrentPlayer(), 0), want)
	testutil.AssertTrue(t, want > 0, "e2e4 frees the bishop and queen")
}

func TestStandardEvaluator_TerminalScores(t *testing.T) {
	eval := NewStandardEvaluator(DefaultWeights())

	mated := testutil.PlayMoves(t, chess.CreateStandardBoard(), "f2f3", "e7e5", "g2g4", "d8h4")
	testutil.AssertEqual(t, eval.Evaluate(mated.CurrentPlayer(), 3), -(MateScore + 3))

	blackMated := testutil.PlayMoves(t, chess.CreateStandardBoard(),
		"e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7")
	testutil.AssertEqual(t, eval.Evaluate(blackMated.CurrentPlayer(), 0), MateScore)

	stalemate := testutil.MustBuild(t, chess.Black, "ka8*", "Qb6*", "Kh1*")
	testutil.AssertEqual(t, eval.Evaluate(stalemate.CurrentPlayer(), 2), 0)
}

func TestStandardEvaluator_Cache(t *testing.T) {
	cache := hashing.NewScoreCache(0)
	plain := NewStandardEvaluator(DefaultWeights())
	cached := plain.WithCache(cache)

	testutil.AssertNil(t, plain.Cache(), "WithCache must not modify the receiver")
	testutil.AssertTrue(t, cached.Cache() == cache, "cache attached")

	b := testutil.PlayMoves(t, chess.CreateStandardBoard(), "d2d4", "g8f6")
	want := plain.Evaluate(b.CurrentPlayer(), 0)
	testutil.AssertEqual(t, cached.Evaluate(b.CurrentPlayer(), 0), want)
	testutil.AssertEqual(t, cached.Evaluate(b.CurrentPlayer(), 0), want)
	testutil.AssertEqual(t, cache.Len(), 1)

	hits, misses := cache.Stats()
	testutil.AssertEqual(t, hits, int64(1))
	testutil.AssertEqual(t, misses, int64(1))
}
