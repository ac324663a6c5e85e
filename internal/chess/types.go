// Package chess provides the board, piece and move model together with the
// rules of play: pseudo-legal move generation, king-safety filtering and
// check, checkmate and stalemate detection.
//
// Every Board is immutable once built. Applying a Move produces a new Board,
// so positions can be shared freely between goroutines after construction.
package chess

// Side represents the colour of a piece or player.
type Side int

const (
	White Side = iota
	Black
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// Opponent returns the opposite side.
func (s Side) Opponent() Side {
	if s == White {
		return Black
	}
	return White
}

// IsWhite reports whether s is White.
func (s Side) IsWhite() bool { return s == White }

// IsBlack reports whether s is Black.
func (s Side) IsBlack() bool { return s == Black }

// Direction returns the sign applied to pawn offsets: White moves toward
// decreasing tile indices, Black toward increasing ones.
func (s Side) Direction() int {
	if s == White {
		return -1
	}
	return 1
}

// PawnStartRow returns the row from which the side's pawns may jump two tiles.
func (s Side) PawnStartRow() int {
	if s == White {
		return 6
	}
	return 1
}

// PromotionRow returns the far row on which the side's pawns promote.
func (s Side) PromotionRow() int {
	if s == White {
		return 0
	}
	return 7
}

// HomeRow returns the back row holding the side's king and rooks at the start.
func (s Side) HomeRow() int {
	if s == White {
		return 7
	}
	return 0
}

// Kind represents a chess piece type.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

var kindNames = [NumKinds]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns the string representation of a kind.
func (k Kind) String() string {
	if k >= 0 && k < NumKinds {
		return kindNames[k]
	}
	return "Unknown"
}

// Letter returns the single upper-case letter representation of a kind.
func (k Kind) Letter() byte {
	letters := [NumKinds]byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && k < NumKinds {
		return letters[k]
	}
	return '?'
}

// Value returns the material value of a kind in centipawns.
func (k Kind) Value() int {
	switch k {
	case Pawn:
		return 100
	case Knight:
		return 320
	case Bishop:
		return 330
	case Rook:
		return 500
	case Queen:
		return 900
	case King:
		return 20000
	}
	return 0
}

// promotionKinds lists promotion choices in generation order.
var promotionKinds = [...]Kind{Queen, Rook, Bishop, Knight}
