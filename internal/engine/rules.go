// Package engine plays games on top of the board model: it keeps the move
// history, applies the draw rules and counts move paths for validation.
package engine

import (
	"github.com/lgbarn/chessai-go/internal/chess"
)

// FiftyMoveLimit is the half-move clock value at which a draw applies.
const FiftyMoveLimit = 100

// DrawRuleResult contains the results of draw rule detection.
type DrawRuleResult struct {
	// HasFiftyMoveRule is true if 50 moves (100 half-moves) have been made
	// without a pawn move or capture.
	HasFiftyMoveRule bool

	// HasThreefoldRepetition is true if any position occurred 3 or more times.
	HasThreefoldRepetition bool

	// HasInsufficientMaterial is true if the current position has insufficient
	// mating material for either side.
	HasInsufficientMaterial bool

	// HasMaterialOdds is true if the game started with unequal material.
	HasMaterialOdds bool
}

// IsDraw reports whether any draw rule applies.
func (r DrawRuleResult) IsDraw() bool {
	return r.HasFiftyMoveRule || r.HasThreefoldRepetition || r.HasInsufficientMaterial
}

// AnalyzeDrawRules analyzes a game for the draw conditions.
func AnalyzeDrawRules(game *Game) DrawRuleResult {
	board := game.Board()
	return DrawRuleResult{
		HasFiftyMoveRule:        board.HalfmoveClock() >= FiftyMoveLimit,
		HasThreefoldRepetition:  game.positions.MaxCount() >= 3,
		HasInsufficientMaterial: HasInsufficientMaterial(board),
		HasMaterialOdds:         !isStandardMaterial(game.StartBoard()),
	}
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	for _, side := range []chess.Side{chess.White, chess.Black} {
		for _, p := range board.ActivePieces(side) {
			// Kings don't count for material
			if p.Kind == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			if p.Kind == chess.Pawn || p.Kind == chess.Rook || p.Kind == chess.Queen {
				return false
			}

			if side == chess.White {
				whitePieces = append(whitePieces, p.Kind)
				if p.Kind == chess.Bishop {
					whiteBishopOnLight = chess.IsLightSquare(p.Position)
				}
			} else {
				blackPieces = append(blackPieces, p.Kind)
				if p.Kind == chess.Bishop {
					blackBishopOnLight = chess.IsLightSquare(p.Position)
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 {
		if whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
			return whiteBishopOnLight == blackBishopOnLight
		}
	}

	return false
}

// isStandardMaterial checks if the board has standard starting material.
func isStandardMaterial(board *chess.Board) bool {
	// 8 pawns, 2 rooks, 2 knights, 2 bishops, 1 queen, 1 king per side
	expected := map[chess.Kind]int{
		chess.Pawn:   8,
		chess.Rook:   2,
		chess.Knight: 2,
		chess.Bishop: 2,
		chess.Queen:  1,
		chess.King:   1,
	}

	for _, side := range []chess.Side{chess.White, chess.Black} {
		actual := make(map[chess.Kind]int)
		for _, p := range board.ActivePieces(side) {
			actual[p.Kind]++
		}
		for kind, n := range expected {
			if actual[kind] != n {
				return false
			}
		}
	}
	return true
}
