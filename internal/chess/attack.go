package chess

// IsAttacked returns true if the tile at coordinate is attacked by a piece of
// side by. Unlike the pseudo-legal move lists it also counts pawn attacks on
// empty tiles, which castling needs for the squares the king crosses.
func IsAttacked(b *Board, coordinate int, by Side) bool {
	// Pawn attacks come from one row behind the target, seen from the attacker.
	dir := by.Direction()
	for _, v := range [2]vector{{-7 * dir, dir}, {-9 * dir, -dir}} {
		if from, ok := Step(coordinate, v.offset, v.fileDelta); ok && holds(b, from, by, Pawn, Pawn) {
			return true
		}
	}

	for _, v := range knightVectors {
		if from, ok := Step(coordinate, v.offset, v.fileDelta); ok && holds(b, from, by, Knight, Knight) {
			return true
		}
	}

	for _, v := range queenVectors {
		if from, ok := Step(coordinate, v.offset, v.fileDelta); ok && holds(b, from, by, King, King) {
			return true
		}
	}

	// Check sliding pieces along diagonals and straight lines
	return slidingAttack(b, coordinate, by, bishopVectors, Bishop) ||
		slidingAttack(b, coordinate, by, rookVectors, Rook)
}

func slidingAttack(b *Board, coordinate int, by Side, vectors []vector, kind Kind) bool {
	for _, v := range vectors {
		from := coordinate
		for {
			next, ok := Step(from, v.offset, v.fileDelta)
			if !ok {
				break
			}
			if b.tiles[next].Occupied() {
				if holds(b, next, by, kind, Queen) {
					return true
				}
				break // Blocked
			}
			from = next
		}
	}
	return false
}

// holds reports whether the tile holds a piece of side whose kind is k1 or k2.
func holds(b *Board, coordinate int, side Side, k1, k2 Kind) bool {
	p, ok := b.tiles[coordinate].Piece()
	return ok && p.Side == side && (p.Kind == k1 || p.Kind == k2)
}

// kingAttacked reports whether side's king is the destination of one of the
// opponent's pseudo-legal moves on b. A side without a king is never attacked.
func kingAttacked(b *Board, side Side) bool {
	king, ok := b.King(side)
	if !ok {
		return false
	}
	for _, m := range b.movesFor(side.Opponent()) {
		if m.Capture && m.Destination == king.Position {
			return true
		}
	}
	return false
}
