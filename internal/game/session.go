package game

import (
	"context"
	"sync"
	"time"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/config"
	"github.com/lgbarn/chessai-go/internal/engine"
	"github.com/lgbarn/chessai-go/internal/errors"
	"github.com/lgbarn/chessai-go/internal/search"
)

// Seat says who plays a side.
type Seat int

const (
	Human Seat = iota
	Computer
)

// String returns the name of the seat.
func (s Seat) String() string {
	if s == Computer {
		return "Computer"
	}
	return "Human"
}

// Session is one game and the seats playing it. Its methods are safe for
// concurrent use.
type Session struct {
	ID string

	mu        sync.Mutex
	game      *engine.Game
	seats     [2]Seat
	cfg       *config.Config
	createdAt time.Time
	updatedAt time.Time
}

// Board returns the current board.
func (s *Session) Board() *chess.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Board()
}

// Moves returns the moves played so far.
func (s *Session) Moves() []chess.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Moves()
}

// Outcome returns the result of the game so far.
func (s *Session) Outcome() (engine.Outcome, engine.Method) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Outcome()
}

// Seat returns who plays side.
func (s *Session) Seat(side chess.Side) Seat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seats[side]
}

// SetSeat changes who plays side.
func (s *Session) SetSeat(side chess.Side, seat Seat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seats[side] = seat
	s.touch()
}

// ComputerToMove reports whether the side to move is a computer seat and
// the game is not over.
func (s *Session) ComputerToMove() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seats[s.game.Board().SideToMove()] == Computer && !s.game.IsOver()
}

// UpdatedAt returns the time of the last change to the session.
func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

// CreatedAt returns the time the session was created.
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Session) touch() {
	s.updatedAt = time.Now()
}

// Play makes a move given by its source and destination tiles; a pawn
// reaching the last row becomes a Queen.
func (s *Session) Play(from, to int) error {
	return s.PlayPromotion(from, to, chess.Queen)
}

// PlayPromotion is Play with an explicit promotion kind.
func (s *Session) PlayPromotion(from, to int, promotion chess.Kind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.game.PlayPromotion(from, to, promotion); err != nil {
		return err
	}
	s.touch()
	return nil
}

// Undo takes back the last move.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.game.Undo() {
		return false
	}
	s.touch()
	return true
}

// Think searches for the computer seat to move and plays the move found.
// The session is not locked during the search; if the board changes in the
// meantime the result is discarded and ErrIllegalMove is returned.
func (s *Session) Think(ctx context.Context) (search.Result, error) {
	s.mu.Lock()
	board := s.game.Board()
	switch {
	case s.game.IsOver():
		s.mu.Unlock()
		return search.Result{}, errors.ErrGameOver
	case s.seats[board.SideToMove()] != Computer:
		s.mu.Unlock()
		return search.Result{}, errors.Wrapf(errors.ErrNotComputerTurn, "%s to move", board.SideToMove())
	}
	s.mu.Unlock()

	res, err := search.Start(ctx, search.NewStrategy(s.cfg), board).Wait()
	if err != nil {
		return search.Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game.Board() != board {
		return search.Result{}, errors.Wrap(errors.ErrIllegalMove, "board changed during search")
	}
	if err := s.game.PlayMove(res.Move); err != nil {
		return search.Result{}, err
	}
	s.touch()
	return res, nil
}
