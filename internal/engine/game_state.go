package engine

import "github.com/lgbarn/chessai-go/internal/chess"

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	side := board.SideToMove()
	return chess.IsKingAttacked(board, side) && !chess.HasLegalMoves(board, side)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	side := board.SideToMove()
	return !chess.IsKingAttacked(board, side) && !chess.HasLegalMoves(board, side)
}
