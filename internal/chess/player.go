package chess

import (
	"slices"
	"sync"
)

// PlayerState classifies a position from one side's point of view.
type PlayerState int

const (
	Normal PlayerState = iota
	InCheck
	InCheckmate
	InStalemate
)

// String returns the name of the state.
func (s PlayerState) String() string {
	switch s {
	case Normal:
		return "Normal"
	case InCheck:
		return "InCheck"
	case InCheckmate:
		return "InCheckmate"
	case InStalemate:
		return "InStalemate"
	}
	return "Unknown"
}

// Player is one side's view of a board. It is derived from the board on
// demand and never outlives the question it answers; the legal moves are
// filtered the first time they are asked for.
type Player struct {
	board   *Board
	side    Side
	inCheck bool

	once       sync.Once
	legalMoves []Move
}

func newPlayer(b *Board, side Side) *Player {
	return &Player{
		board:   b,
		side:    side,
		inCheck: kingAttacked(b, side),
	}
}

// Side returns the side the player moves.
func (p *Player) Side() Side { return p.side }

// Board returns the board the player was derived from.
func (p *Player) Board() *Board { return p.board }

// Opponent derives the other side's view of the same board.
func (p *Player) Opponent() *Player {
	return newPlayer(p.board, p.side.Opponent())
}

// PseudoLegalMoves returns the player's moves before king-safety filtering.
func (p *Player) PseudoLegalMoves() []Move {
	return p.board.PseudoLegalMoves(p.side)
}

// LegalMoves returns the pseudo-legal moves that do not leave the player's
// king attacked, in generation order.
func (p *Player) LegalMoves() []Move {
	p.once.Do(func() {
		pseudo := p.board.movesFor(p.side)
		p.legalMoves = make([]Move, 0, len(pseudo))
		for _, m := range pseudo {
			if !kingAttacked(m.Execute(p.board), p.side) {
				p.legalMoves = append(p.legalMoves, m)
			}
		}
	})
	return append([]Move(nil), p.legalMoves...)
}

// IsInCheck reports whether the opponent attacks the player's king.
func (p *Player) IsInCheck() bool { return p.inCheck }

// IsInCheckmate reports whether the player is in check with no legal move.
func (p *Player) IsInCheckmate() bool {
	return p.inCheck && !p.hasEscapeMoves()
}

// IsInStalemate reports whether the player is not in check but has no legal move.
func (p *Player) IsInStalemate() bool {
	return !p.inCheck && !p.hasEscapeMoves()
}

// State classifies the position for the player.
func (p *Player) State() PlayerState {
	switch {
	case p.hasEscapeMoves():
		if p.inCheck {
			return InCheck
		}
		return Normal
	case p.inCheck:
		return InCheckmate
	default:
		return InStalemate
	}
}

func (p *Player) hasEscapeMoves() bool {
	return len(p.LegalMoves()) > 0
}

// IsLegal reports whether m is one of the player's legal moves.
func (p *Player) IsLegal(m Move) bool {
	if m.IsNull() {
		return false
	}
	return slices.Contains(p.LegalMoves(), m)
}

// MakeMove attempts m. A null move, a move of the side not on turn, or a move
// outside the player's pseudo-legal set is an IllegalMove; a move leaving the
// player's own king attacked is LeavesPlayerInCheck. In both cases the
// transition's To board is the unchanged From board.
func (p *Player) MakeMove(m Move) MoveTransition {
	reject := func(status MoveStatus) MoveTransition {
		return MoveTransition{From: p.board, To: p.board, Move: m, Status: status}
	}
	if m.IsNull() || p.board.sideToMove != p.side || m.Piece.Side != p.side {
		return reject(IllegalMove)
	}
	if !slices.Contains(p.board.movesFor(p.side), m) {
		return reject(IllegalMove)
	}
	next := m.Execute(p.board)
	if kingAttacked(next, p.side) {
		return reject(LeavesPlayerInCheck)
	}
	return MoveTransition{From: p.board, To: next, Move: m, Status: Done}
}

// IsKingAttacked reports whether side's king is the target of one of the
// opponent's pseudo-legal captures on b.
func IsKingAttacked(b *Board, side Side) bool {
	return kingAttacked(b, side)
}

// HasLegalMoves reports whether side has at least one legal move on b. It
// stops at the first move that keeps the king safe.
func HasLegalMoves(b *Board, side Side) bool {
	for _, m := range b.movesFor(side) {
		if !kingAttacked(m.Execute(b), side) {
			return true
		}
	}
	return false
}
