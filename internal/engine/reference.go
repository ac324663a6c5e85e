package engine

import (
	"github.com/dylhunn/dragontoothmg"
)

// ReferenceDivide counts the move tree of fen with dragontoothmg, an
// independent bitboard generator, keyed by the coordinate text of each root
// move. The keys match Divide's so the two maps can be compared directly.
func ReferenceDivide(fen string, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth <= 0 {
		return counts
	}
	board := dragontoothmg.ParseFen(fen)
	for _, m := range board.GenerateLegalMoves() {
		unapply := board.Apply(m)
		counts[m.String()] = referencePerft(&board, depth-1)
		unapply()
	}
	return counts
}

func referencePerft(board *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := board.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := board.Apply(m)
		nodes += referencePerft(board, depth-1)
		unapply()
	}
	return nodes
}
