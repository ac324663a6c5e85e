// Package errors provides sentinel errors and error types for the chess engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that is not in the mover's move set,
	// the null move, or a move built from malformed coordinates.
	ErrIllegalMove = errors.New("illegal move")

	// ErrLeavesKingInCheck indicates a move rejected by the king-safety filter.
	ErrLeavesKingInCheck = errors.New("move leaves king in check")

	// ErrNoMoveFound indicates the search was asked to move in a position
	// where the side to move has no legal move (checkmate or stalemate).
	ErrNoMoveFound = errors.New("no move found")

	// ErrInvalidCoordinate indicates a tile index outside 0..63.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameOver indicates a move was submitted to a finished game.
	ErrGameOver = errors.New("game is over")

	// ErrSessionNotFound indicates an unknown session identifier.
	ErrSessionNotFound = errors.New("session not found")

	// ErrNotComputerTurn indicates a search was requested while a human
	// seat is to move.
	ErrNotComputerTurn = errors.New("side to move is not a computer player")
)

// MoveError wraps errors with move context: the ply at which the move was
// attempted, the mover and the coordinates involved. It implements the error
// interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply number (0 if not applicable)
	Side     string // Side that attempted the move (if known)
	From     int    // Source coordinate, -1 if unknown
	To       int    // Destination coordinate, -1 if unknown
	MoveText string // Coordinate text of the move (if available)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Side != "" {
		parts = append(parts, e.Side)
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	} else if e.From >= 0 && e.To >= 0 {
		parts = append(parts, fmt.Sprintf("tiles %d->%d", e.From, e.To))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's tree matches target.
// It is a convenience re-export so callers importing this package under the
// name errors do not also need the standard library package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
