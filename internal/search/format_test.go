package search

import (
	"testing"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/testutil"
)

func TestFormatEvaluation(t *testing.T) {
	tests := []struct {
		name string
		eval *Evaluation
		want string
	}{
		{"positive centipawns", &Evaluation{Score: 123}, "+1.23"},
		{"negative centipawns", &Evaluation{Score: -45}, "-0.45"},
		{"zero", &Evaluation{Score: 0}, "+0.00"},
		{"small negative", &Evaluation{Score: -8}, "-0.08"},
		{"exactly one pawn", &Evaluation{Score: 100}, "+1.00"},
		{"large positive", &Evaluation{Score: 1250}, "+12.50"},
		{"very large negative", &Evaluation{Score: -9999}, "-99.99"},
		{"mate in one", &Evaluation{IsMate: true, MateIn: 1}, "+M1"},
		{"getting mated", &Evaluation{IsMate: true, MateIn: -5}, "-M5"},
		{"mate in many", &Evaluation{IsMate: true, MateIn: 15}, "+M15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := FormatEvaluation(tt.eval)
			if got != tt.want {
				t.Errorf("FormatEvaluation() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestEvaluation_DefaultValues tests that a zero Evaluation formats as an even score.
func TestEvaluation_DefaultValues(t *testing.T) {
	eval := Evaluation{}

	if eval.IsMate || eval.MateIn != 0 || eval.Depth != 0 || eval.BestMove != "" {
		t.Errorf("zero Evaluation = %+v", eval)
	}
	if got := FormatEvaluation(&eval); got != "+0.00" {
		t.Errorf("FormatEvaluation(zero) = %q, want +0.00", got)
	}
}

func TestResultEvaluation(t *testing.T) {
	board := chess.CreateStandardBoard()
	e2e4 := testutil.MustMove(t, board, "e2e4")

	tests := []struct {
		name       string
		res        Result
		wantMate   bool
		wantMateIn int
		wantMove   string
	}{
		{
			name:     "ordinary score",
			res:      Result{Move: e2e4, Score: 35, Depth: 4},
			wantMove: "e2e4",
		},
		{
			name:       "white mates next move",
			res:        Result{Move: e2e4, Score: MateScore, Depth: 1},
			wantMate:   true,
			wantMateIn: 1,
			wantMove:   "e2e4",
		},
		{
			name:       "black mates in two",
			res:        Result{Move: e2e4, Score: -(MateScore + 1), Depth: 4},
			wantMate:   true,
			wantMateIn: -2,
			wantMove:   "e2e4",
		},
		{
			name: "no move",
			res:  Result{Move: chess.NoMove},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := tt.res.Evaluation()
			testutil.AssertEqual(t, eval.IsMate, tt.wantMate, "IsMate")
			testutil.AssertEqual(t, eval.MateIn, tt.wantMateIn, "MateIn")
			testutil.AssertEqual(t, eval.BestMove, tt.wantMove, "BestMove")
			testutil.AssertEqual(t, eval.Score, tt.res.Score, "Score")
		})
	}
}

func TestFormatResult(t *testing.T) {
	board := chess.CreateStandardBoard()
	res := Result{Move: testutil.MustMove(t, board, "g1f3"), Score: -20, Depth: 2}

	testutil.AssertEqual(t, FormatResult(res), "g1f3 -0.20")
	testutil.AssertEqual(t, FormatResult(Result{Move: chess.NoMove}), chess.NullMoveString)
}
