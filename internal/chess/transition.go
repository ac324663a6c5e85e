package chess

import (
	"github.com/lgbarn/chessai-go/internal/errors"
)

// MoveStatus is the outcome of an attempted move.
type MoveStatus int

const (
	Done MoveStatus = iota
	IllegalMove
	LeavesPlayerInCheck
)

// String returns the name of the status.
func (s MoveStatus) String() string {
	switch s {
	case Done:
		return "Done"
	case IllegalMove:
		return "IllegalMove"
	case LeavesPlayerInCheck:
		return "LeavesPlayerInCheck"
	}
	return "Unknown"
}

// MoveTransition describes what happened when a player attempted a move.
// For a rejected move To is the same board as From.
type MoveTransition struct {
	From   *Board
	To     *Board
	Move   Move
	Status MoveStatus
}

// IsDone reports whether the move was applied.
func (t MoveTransition) IsDone() bool {
	return t.Status == Done
}

// Err converts a rejected transition into an error wrapping ErrIllegalMove
// or ErrLeavesKingInCheck. It returns nil when the move was applied.
func (t MoveTransition) Err() error {
	var sentinel error
	switch t.Status {
	case Done:
		return nil
	case LeavesPlayerInCheck:
		sentinel = errors.ErrLeavesKingInCheck
	default:
		sentinel = errors.ErrIllegalMove
	}

	e := &errors.MoveError{
		Err:  sentinel,
		From: t.Move.Source(),
		To:   t.Move.Destination,
	}
	if !t.Move.IsNull() {
		e.MoveText = t.Move.String()
	}
	if t.From != nil {
		e.Side = t.From.SideToMove().String()
		e.Ply = 2*(t.From.FullmoveNumber()-1) + int(t.From.SideToMove()) + 1
	}
	return e
}
