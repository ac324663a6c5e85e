package chess

import (
	"github.com/lgbarn/chessai-go/internal/errors"
)

// Piece is a plain value describing one piece on one tile. Moving a piece
// never mutates it; MovedTo and PromotedTo return the post-move value.
type Piece struct {
	Kind     Kind
	Position int
	Side     Side
	// Moved records whether the piece has moved since the board was set
	// up. Castling consults it for kings and rooks.
	Moved bool
}

// NewPiece creates an unmoved piece.
func NewPiece(kind Kind, position int, side Side) Piece {
	return Piece{Kind: kind, Position: position, Side: side}
}

// MovedTo returns the piece as it stands after moving to destination.
func (p Piece) MovedTo(destination int) Piece {
	return Piece{Kind: p.Kind, Position: destination, Side: p.Side, Moved: true}
}

// PromotedTo returns the piece a pawn becomes on reaching destination.
func (p Piece) PromotedTo(kind Kind, destination int) Piece {
	return Piece{Kind: kind, Position: destination, Side: p.Side, Moved: true}
}

// Value returns the material value of the piece.
func (p Piece) Value() int {
	return p.Kind.Value()
}

// Letter returns the piece letter, upper case for White and lower case for Black.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Side == Black {
		return l + ('a' - 'A')
	}
	return l
}

// String returns the piece letter followed by its square, e.g. "Ng1".
func (p Piece) String() string {
	return string(p.Letter()) + SquareName(p.Position)
}

var kindByLetter = map[byte]Kind{
	'P': Pawn, 'N': Knight, 'B': Bishop, 'R': Rook, 'Q': Queen, 'K': King,
}

// ParsePiece reads a placement such as "Ke1" (White) or "pe7" (Black). A
// trailing '*' marks the piece as having moved.
func ParsePiece(placement string) (Piece, error) {
	text := placement
	moved := len(text) == 4 && text[3] == '*'
	if moved {
		text = text[:3]
	}
	if len(text) != 3 {
		return Piece{}, errors.Wrapf(errors.ErrInvalidCoordinate, "placement %q", placement)
	}

	letter, side := text[0], White
	if letter >= 'a' && letter <= 'z' {
		letter, side = letter-('a'-'A'), Black
	}
	kind, ok := kindByLetter[letter]
	if !ok {
		return Piece{}, errors.Wrapf(errors.ErrInvalidCoordinate, "placement %q: unknown piece", placement)
	}
	sq, ok := ParseSquare(text[1:])
	if !ok {
		return Piece{}, errors.Wrapf(errors.ErrInvalidCoordinate, "placement %q: unknown square", placement)
	}
	return Piece{Kind: kind, Position: sq, Side: side, Moved: moved}, nil
}
