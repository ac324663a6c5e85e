package engine

import (
	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/errors"
	"github.com/lgbarn/chessai-go/internal/hashing"
)

// Outcome is the result of a game.
type Outcome int

const (
	Ongoing Outcome = iota
	WhiteWins
	BlackWins
	Drawn
)

// String returns the PGN result text of the outcome.
func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Drawn:
		return "1/2-1/2"
	}
	return "*"
}

// Method is the way a game ended.
type Method int

const (
	NoMethod Method = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	FiftyMoveRule
	ThreefoldRepetition
)

var methodNames = [...]string{
	"", "checkmate", "stalemate", "insufficient material",
	"fifty-move rule", "threefold repetition",
}

// String returns a readable name of the method.
func (m Method) String() string {
	if m >= 0 && int(m) < len(methodNames) {
		return methodNames[m]
	}
	return "unknown"
}

// Game is a sequence of boards linked by moves. Boards are immutable, so
// the history is simply every board reached; Undo drops the last one.
type Game struct {
	boards    []*chess.Board
	moves     []chess.Move
	positions *hashing.PositionCounter
}

// NewGame creates a game from the standard starting position.
func NewGame() *Game {
	return NewGameFromBoard(chess.CreateStandardBoard())
}

// NewGameFromBoard creates a game starting from board.
func NewGameFromBoard(board *chess.Board) *Game {
	g := &Game{
		boards:    []*chess.Board{board},
		positions: hashing.NewPositionCounter(),
	}
	g.positions.Add(board)
	return g
}

// Board returns the current board.
func (g *Game) Board() *chess.Board {
	return g.boards[len(g.boards)-1]
}

// StartBoard returns the board the game started from.
func (g *Game) StartBoard() *chess.Board {
	return g.boards[0]
}

// Boards returns every board of the game, starting position first.
func (g *Game) Boards() []*chess.Board {
	return append([]*chess.Board(nil), g.boards...)
}

// Moves returns the moves played so far.
func (g *Game) Moves() []chess.Move {
	return append([]chess.Move(nil), g.moves...)
}

// Ply returns the number of half-moves played.
func (g *Game) Ply() int {
	return len(g.moves)
}

// LegalMoves returns the legal moves of the side to move.
func (g *Game) LegalMoves() []chess.Move {
	return g.Board().CurrentPlayer().LegalMoves()
}

// Play resolves a (source, destination) pair on the current board and plays
// it. Promotions default to a Queen.
func (g *Game) Play(from, to int) error {
	return g.PlayPromotion(from, to, chess.Queen)
}

// PlayPromotion is Play with an explicit promotion kind.
func (g *Game) PlayPromotion(from, to int, promotion chess.Kind) error {
	m := chess.CreatePromotionMove(g.Board(), from, to, promotion)
	if m.IsNull() {
		if outcome, _ := g.Outcome(); outcome != Ongoing {
			return g.gameOver(from, to)
		}
		return &errors.MoveError{
			Err:  errors.ErrIllegalMove,
			Ply:  g.Ply() + 1,
			Side: g.Board().SideToMove().String(),
			From: from,
			To:   to,
		}
	}
	return g.PlayMove(m)
}

// PlayMove plays a move generated on the current board.
func (g *Game) PlayMove(m chess.Move) error {
	if outcome, _ := g.Outcome(); outcome != Ongoing {
		return g.gameOver(m.Source(), m.Destination)
	}
	tr := g.Board().CurrentPlayer().MakeMove(m)
	if !tr.IsDone() {
		return tr.Err()
	}
	g.boards = append(g.boards, tr.To)
	g.moves = append(g.moves, m)
	g.positions.Add(tr.To)
	return nil
}

func (g *Game) gameOver(from, to int) error {
	return &errors.MoveError{
		Err:  errors.ErrGameOver,
		Ply:  g.Ply() + 1,
		Side: g.Board().SideToMove().String(),
		From: from,
		To:   to,
	}
}

// Undo takes back the last move. It returns false at the start of the game.
func (g *Game) Undo() bool {
	if len(g.moves) == 0 {
		return false
	}
	g.positions.Remove(g.Board())
	g.boards = g.boards[:len(g.boards)-1]
	g.moves = g.moves[:len(g.moves)-1]
	return true
}

// Outcome returns the result of the game and how it was reached. Checkmate
// and stalemate take precedence over the draw rules.
func (g *Game) Outcome() (Outcome, Method) {
	board := g.Board()
	switch {
	case IsCheckmate(board):
		if board.SideToMove() == chess.White {
			return BlackWins, Checkmate
		}
		return WhiteWins, Checkmate
	case IsStalemate(board):
		return Drawn, Stalemate
	}

	rules := AnalyzeDrawRules(g)
	switch {
	case rules.HasInsufficientMaterial:
		return Drawn, InsufficientMaterial
	case rules.HasFiftyMoveRule:
		return Drawn, FiftyMoveRule
	case rules.HasThreefoldRepetition:
		return Drawn, ThreefoldRepetition
	}
	return Ongoing, NoMethod
}

// IsOver reports whether the game has ended.
func (g *Game) IsOver() bool {
	outcome, _ := g.Outcome()
	return outcome != Ongoing
}
