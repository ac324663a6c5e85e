package chess

import (
	"github.com/lgbarn/chessai-go/internal/errors"
)

// CreateMove resolves a (source, destination) pair against the pseudo-legal
// moves of the side to move on b. A pawn reaching the far row promotes to a
// Queen. NoMove is returned when nothing matches.
func CreateMove(b *Board, from, to int) Move {
	return CreatePromotionMove(b, from, to, Queen)
}

// CreatePromotionMove is CreateMove with an explicit promotion kind. The kind
// is ignored for moves that do not promote.
func CreatePromotionMove(b *Board, from, to int, promotion Kind) Move {
	if !IsValidCoordinate(from) || !IsValidCoordinate(to) {
		return NoMove
	}
	for _, m := range b.movesFor(b.sideToMove) {
		if m.Source() != from || m.Destination != to {
			continue
		}
		if m.IsPromotion() && m.Promotion != promotion {
			continue
		}
		return m
	}
	return NoMove
}

// ParseMove resolves coordinate text such as "e2e4" or "e7e8n" on b through
// CreatePromotionMove. Malformed text wraps ErrInvalidCoordinate; text that
// names no move of the side to move wraps ErrIllegalMove.
func ParseMove(b *Board, text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return NoMove, errors.Wrapf(errors.ErrInvalidCoordinate, "move %q", text)
	}
	from, okFrom := ParseSquare(text[0:2])
	to, okTo := ParseSquare(text[2:4])
	if !okFrom || !okTo {
		return NoMove, errors.Wrapf(errors.ErrInvalidCoordinate, "move %q", text)
	}
	promotion := Queen
	if len(text) == 5 {
		letter := text[4]
		if letter >= 'a' && letter <= 'z' {
			letter -= 'a' - 'A'
		}
		kind, ok := kindByLetter[letter]
		if !ok || kind == Pawn || kind == King {
			return NoMove, errors.Wrapf(errors.ErrInvalidCoordinate, "move %q: bad promotion", text)
		}
		promotion = kind
	}
	m := CreatePromotionMove(b, from, to, promotion)
	if m.IsNull() {
		return NoMove, errors.Wrapf(errors.ErrIllegalMove, "move %q", text)
	}
	if len(text) == 5 && !m.IsPromotion() {
		return NoMove, errors.Wrapf(errors.ErrIllegalMove, "move %q does not promote", text)
	}
	return m, nil
}
