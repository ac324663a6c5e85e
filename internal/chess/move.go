package chess

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	NullMove MoveClass = iota
	RegularMove
	AttackMove
	PawnMove
	PawnJump
	PawnAttack
	EnPassantPawnMove
	PawnMoveWithPromotion
	KingsideCastle
	QueensideCastle
)

var moveClassNames = [...]string{
	"NullMove", "RegularMove", "AttackMove", "PawnMove", "PawnJump",
	"PawnAttack", "EnPassantPawnMove", "PawnMoveWithPromotion",
	"KingsideCastle", "QueensideCastle",
}

// String returns the name of the move class.
func (c MoveClass) String() string {
	if c >= 0 && int(c) < len(moveClassNames) {
		return moveClassNames[c]
	}
	return "UnknownMove"
}

// NullMoveString is the text representation of a null move.
const NullMoveString = "--"

// Move describes a transition from the board it was generated on. Moves are
// comparable values; two moves generated from the same board are equal
// exactly when they describe the same transition.
type Move struct {
	// Class of move (pawn jump, capture, castle, etc.).
	Class MoveClass

	// The piece being moved, as it stands before the move.
	Piece Piece

	// Destination tile of the moved piece.
	Destination int

	// The piece captured, valid only when Capture is set.
	Captured Piece
	Capture  bool

	// The kind promoted to, valid only for PawnMoveWithPromotion.
	Promotion Kind

	// The castling rook and its destination, valid only for castles.
	Rook            Piece
	RookDestination int
}

// NoMove is the sentinel returned when no legal move matches a request.
// It is never legal.
var NoMove = Move{Class: NullMove, Piece: Piece{Position: -1}, Destination: -1, RookDestination: -1}

func newMove(class MoveClass, p Piece, destination int) Move {
	return Move{Class: class, Piece: p, Destination: destination, RookDestination: -1}
}

func newCapture(class MoveClass, p Piece, destination int, captured Piece) Move {
	m := newMove(class, p, destination)
	m.Captured = captured
	m.Capture = true
	return m
}

// Source returns the tile the moved piece starts from.
func (m Move) Source() int {
	return m.Piece.Position
}

// IsNull returns true if this is the null move.
func (m Move) IsNull() bool {
	return m.Class == NullMove
}

// IsCapture returns true if this move removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.Capture
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Class == KingsideCastle || m.Class == QueensideCastle
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

// String returns the coordinate text of the move, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m.IsNull() {
		return NullMoveString
	}
	s := SquareName(m.Source()) + SquareName(m.Destination)
	if m.IsPromotion() {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// Execute applies the move to b and returns the resulting board. b is not
// modified: the new board is built from scratch, copying every piece except
// the moved one (and the captured one), then placing the moved piece at its
// destination. The null move returns b itself.
func (m Move) Execute(b *Board) *Board {
	if m.IsNull() {
		return b
	}
	mover := m.Piece.Side
	builder := NewBuilder()

	for _, p := range b.pieces(mover) {
		if p == m.Piece || (m.IsCastle() && p == m.Rook) {
			continue
		}
		builder.SetPiece(p)
	}
	for _, p := range b.pieces(mover.Opponent()) {
		if m.Capture && p == m.Captured {
			continue
		}
		builder.SetPiece(p)
	}

	moved := m.Piece.MovedTo(m.Destination)
	if m.IsPromotion() {
		moved = m.Piece.PromotedTo(m.Promotion, m.Destination)
	}
	builder.SetPiece(moved)
	if m.IsCastle() {
		builder.SetPiece(m.Rook.MovedTo(m.RookDestination))
	}
	if m.Class == PawnJump {
		builder.SetEnPassantPawn(moved)
	}

	halfmove := b.halfmoveClock + 1
	if m.Piece.Kind == Pawn || m.Capture {
		halfmove = 0
	}
	fullmove := b.fullmoveNumber
	if mover == Black {
		fullmove++
	}
	builder.SetClocks(halfmove, fullmove)
	builder.SetMoveMaker(mover.Opponent())
	return builder.Build()
}
