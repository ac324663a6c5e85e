package chess

// vector is a tile offset paired with the column change it must produce.
// Carrying the column change lets Step reject moves that wrap around the
// left or right edge of the board.
type vector struct {
	offset    int
	fileDelta int
}

var (
	knightVectors = []vector{
		{-17, -1}, {-15, 1}, {-10, -2}, {-6, 2},
		{6, -2}, {10, 2}, {15, -1}, {17, 1},
	}
	bishopVectors = []vector{{-9, -1}, {-7, 1}, {7, -1}, {9, 1}}
	rookVectors   = []vector{{-8, 0}, {-1, -1}, {1, 1}, {8, 0}}
	queenVectors  = []vector{
		{-9, -1}, {-8, 0}, {-7, 1}, {-1, -1},
		{1, 1}, {7, -1}, {8, 0}, {9, 1},
	}
)

// generator produces the pseudo-legal moves of one piece and appends them to moves.
type generator func(b *Board, p Piece, moves []Move) []Move

// generators is the per-kind dispatch table.
var generators = [NumKinds]generator{
	Pawn:   pawnMoves,
	Knight: knightMoves,
	Bishop: bishopMoves,
	Rook:   rookMoves,
	Queen:  queenMoves,
	King:   kingMoves,
}

// generateMoves returns the pseudo-legal moves of pieces, castling excluded.
func generateMoves(b *Board, pieces []Piece) []Move {
	moves := make([]Move, 0, 48)
	for _, p := range pieces {
		moves = generators[p.Kind](b, p, moves)
	}
	return moves
}

// PieceMoves returns the pseudo-legal moves of a single piece on b. For a
// king this includes any castling move available to it.
func PieceMoves(b *Board, p Piece) []Move {
	moves := generators[p.Kind](b, p, nil)
	if p.Kind == King {
		for _, m := range b.movesFor(p.Side) {
			if m.IsCastle() && m.Piece == p {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

func knightMoves(b *Board, p Piece, moves []Move) []Move {
	return leap(b, p, knightVectors, moves)
}

func kingMoves(b *Board, p Piece, moves []Move) []Move {
	return leap(b, p, queenVectors, moves)
}

func bishopMoves(b *Board, p Piece, moves []Move) []Move {
	return slide(b, p, bishopVectors, moves)
}

func rookMoves(b *Board, p Piece, moves []Move) []Move {
	return slide(b, p, rookVectors, moves)
}

func queenMoves(b *Board, p Piece, moves []Move) []Move {
	return slide(b, p, queenVectors, moves)
}

// leap evaluates each vector once from the piece's position.
func leap(b *Board, p Piece, vectors []vector, moves []Move) []Move {
	for _, v := range vectors {
		to, ok := Step(p.Position, v.offset, v.fileDelta)
		if !ok {
			continue
		}
		occupant, occupied := b.tiles[to].Piece()
		if !occupied {
			moves = append(moves, newMove(RegularMove, p, to))
		} else if occupant.Side != p.Side {
			moves = append(moves, newCapture(AttackMove, p, to, occupant))
		}
	}
	return moves
}

// slide walks each vector until it leaves the board, wraps an edge, or
// meets a piece. An enemy piece ends the walk with a capture.
func slide(b *Board, p Piece, vectors []vector, moves []Move) []Move {
	for _, v := range vectors {
		from := p.Position
		for {
			to, ok := Step(from, v.offset, v.fileDelta)
			if !ok {
				break
			}
			occupant, occupied := b.tiles[to].Piece()
			if !occupied {
				moves = append(moves, newMove(RegularMove, p, to))
				from = to
				continue
			}
			if occupant.Side != p.Side {
				moves = append(moves, newCapture(AttackMove, p, to, occupant))
			}
			break
		}
	}
	return moves
}

func pawnMoves(b *Board, p Piece, moves []Move) []Move {
	dir := p.Side.Direction()

	if to, ok := Step(p.Position, 8*dir, 0); ok && !b.tiles[to].Occupied() {
		if Row(to) == p.Side.PromotionRow() {
			moves = appendPromotions(moves, p, to, Piece{}, false)
		} else {
			moves = append(moves, newMove(PawnMove, p, to))
			if Row(p.Position) == p.Side.PawnStartRow() {
				if jump, ok := Step(p.Position, 16*dir, 0); ok && !b.tiles[jump].Occupied() {
					moves = append(moves, newMove(PawnJump, p, jump))
				}
			}
		}
	}

	// Diagonal captures, including en passant.
	for _, v := range [2]vector{{7 * dir, -dir}, {9 * dir, dir}} {
		to, ok := Step(p.Position, v.offset, v.fileDelta)
		if !ok {
			continue
		}
		if occupant, occupied := b.tiles[to].Piece(); occupied {
			if occupant.Side == p.Side {
				continue
			}
			if Row(to) == p.Side.PromotionRow() {
				moves = appendPromotions(moves, p, to, occupant, true)
			} else {
				moves = append(moves, newCapture(PawnAttack, p, to, occupant))
			}
			continue
		}
		if b.enPassant < 0 {
			continue
		}
		// The jumped pawn stands beside ours, directly behind the destination.
		if victim, ok := b.tiles[to-8*dir].Piece(); ok && victim.Position == b.enPassant && victim.Side != p.Side {
			moves = append(moves, newCapture(EnPassantPawnMove, p, to, victim))
		}
	}
	return moves
}

func appendPromotions(moves []Move, p Piece, to int, captured Piece, capture bool) []Move {
	for _, kind := range promotionKinds {
		m := newMove(PawnMoveWithPromotion, p, to)
		m.Promotion = kind
		m.Captured = captured
		m.Capture = capture
		moves = append(moves, m)
	}
	return moves
}

// castleMoves appends the castling moves available to side on b.
// It reads only tiles, so it is safe to call while b is being built.
func castleMoves(b *Board, side Side, moves []Move) []Move {
	king, ok := b.King(side)
	if !ok || king.Moved || king.Position != Coordinate(side.HomeRow(), 4) {
		return moves
	}
	if IsAttacked(b, king.Position, side.Opponent()) {
		return moves
	}
	moves = appendCastle(b, king, 7, KingsideCastle, moves)
	return appendCastle(b, king, 0, QueensideCastle, moves)
}

func appendCastle(b *Board, king Piece, rookColumn int, class MoveClass, moves []Move) []Move {
	rookPos := Coordinate(Row(king.Position), rookColumn)
	rook, ok := b.tiles[rookPos].Piece()
	if !ok || rook.Kind != Rook || rook.Side != king.Side || rook.Moved {
		return moves
	}
	step := sign(rookPos - king.Position)
	for sq := king.Position + step; sq != rookPos; sq += step {
		if b.tiles[sq].Occupied() {
			return moves
		}
	}
	kingDest := king.Position + 2*step
	for sq := king.Position + step; ; sq += step {
		if IsAttacked(b, sq, king.Side.Opponent()) {
			return moves
		}
		if sq == kingDest {
			break
		}
	}
	m := newMove(class, king, kingDest)
	m.Rook = rook
	m.RookDestination = king.Position + step
	return append(moves, m)
}
