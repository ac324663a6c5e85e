package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chessai-go/internal/chess"
)

// Sq returns the coordinate of a square name such as "e2", or -1 if the
// name does not denote a square.
func Sq(name string) int {
	c, ok := chess.ParseSquare(name)
	if !ok {
		return -1
	}
	return c
}

// MustPiece parses a placement such as "Ke1" (White) or "pe7" (Black).
// A trailing '*' marks the piece as having moved.
func MustPiece(t testing.TB, placement string) chess.Piece {
	t.Helper()
	p, err := chess.ParsePiece(placement)
	if err != nil {
		t.Fatalf("MustPiece: %v", err)
	}
	return p
}

// MustBuild builds a board from placements with side to move.
func MustBuild(t testing.TB, side chess.Side, placements ...string) *chess.Board {
	t.Helper()
	b := chess.NewBuilder().SetMoveMaker(side)
	for _, pl := range placements {
		b.SetPiece(MustPiece(t, pl))
	}
	return b.Build()
}

// MustMove resolves coordinate text such as "e2e4" or "e7e8n" on b, failing
// the test when no move matches.
func MustMove(t testing.TB, b *chess.Board, text string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(b, text)
	if err != nil {
		t.Fatalf("%v on board:\n%s", err, b)
	}
	return m
}

// PlayMoves applies each move in turn through the side to move, failing the
// test on the first one that is not accepted.
func PlayMoves(t testing.TB, b *chess.Board, moves ...string) *chess.Board {
	t.Helper()
	for _, text := range moves {
		tr := b.CurrentPlayer().MakeMove(MustMove(t, b, text))
		if !tr.IsDone() {
			t.Fatalf("move %s: %v", text, tr.Status)
		}
		b = tr.To
	}
	return b
}

// MoveStrings returns the coordinate text of moves, sorted.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}
