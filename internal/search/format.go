package search

import (
	"fmt"

	"github.com/lgbarn/chessai-go/internal/chess"
)

// Evaluation is a search score in display form.
type Evaluation struct {
	Score    int  // Score in centipawns, positive favours White
	IsMate   bool // True if the score is a forced mate
	MateIn   int  // Moves to mate, negative when White is mated
	Depth    int  // Search depth in plies
	BestMove string
}

// Evaluation converts the result into display form.
func (r Result) Evaluation() *Evaluation {
	eval := &Evaluation{
		Score: r.Score,
		Depth: r.Depth,
	}
	if !r.Move.IsNull() {
		eval.BestMove = r.Move.String()
	}
	if abs := max(r.Score, -r.Score); abs >= MateScore {
		// The mate was found with abs-MateScore plies left to search.
		ply := r.Depth - (abs - MateScore)
		eval.IsMate = true
		eval.MateIn = (ply + 1) / 2
		if r.Score < 0 {
			eval.MateIn = -eval.MateIn
		}
	}
	return eval
}

// FormatEvaluation formats a score as pawns ("+1.23") or as a mate
// distance ("+M3", "-M5").
func FormatEvaluation(eval *Evaluation) string {
	if eval.IsMate {
		if eval.MateIn < 0 {
			return fmt.Sprintf("-M%d", -eval.MateIn)
		}
		return fmt.Sprintf("+M%d", eval.MateIn)
	}
	return fmt.Sprintf("%+.2f", float64(eval.Score)/100)
}

// FormatResult formats the move and score of a result, e.g. "e2e4 +0.35".
func FormatResult(r Result) string {
	if r.Move == chess.NoMove {
		return chess.NullMoveString
	}
	return r.Move.String() + " " + FormatEvaluation(r.Evaluation())
}
