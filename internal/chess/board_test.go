package chess_test

import (
	"testing"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/testutil"
)

func TestCreateStandardBoard(t *testing.T) {
	b := chess.CreateStandardBoard()

	t.Run("side to move", func(t *testing.T) {
		testutil.AssertEqual(t, b.SideToMove(), chess.White)
		testutil.AssertEqual(t, b.FullmoveNumber(), 1)
		testutil.AssertEqual(t, b.HalfmoveClock(), 0)
		_, ok := b.EnPassantPawn()
		testutil.AssertFalse(t, ok, "no en passant pawn")
	})

	t.Run("piece counts", func(t *testing.T) {
		testutil.AssertEqual(t, len(b.ActivePieces(chess.White)), 16)
		testutil.AssertEqual(t, len(b.ActivePieces(chess.Black)), 16)
	})

	t.Run("placement", func(t *testing.T) {
		tests := []struct {
			square string
			kind   chess.Kind
			side   chess.Side
		}{
			{"a1", chess.Rook, chess.White},
			{"b1", chess.Knight, chess.White},
			{"c1", chess.Bishop, chess.White},
			{"d1", chess.Queen, chess.White},
			{"e1", chess.King, chess.White},
			{"e2", chess.Pawn, chess.White},
			{"a8", chess.Rook, chess.Black},
			{"d8", chess.Queen, chess.Black},
			{"e8", chess.King, chess.Black},
			{"h7", chess.Pawn, chess.Black},
		}
		for _, tt := range tests {
			p, ok := b.Piece(testutil.Sq(tt.square))
			if !ok {
				t.Errorf("%s is empty", tt.square)
				continue
			}
			if p.Kind != tt.kind || p.Side != tt.side || p.Moved {
				t.Errorf("%s holds %v %v (moved %v), want unmoved %v %v",
					tt.square, p.Side, p.Kind, p.Moved, tt.side, tt.kind)
			}
		}
		for c := testutil.Sq("a6"); c <= testutil.Sq("h3"); c++ {
			if b.Tile(c).Occupied() {
				t.Errorf("%s should be empty", chess.SquareName(c))
			}
		}
	})

	t.Run("tiles carry their coordinate", func(t *testing.T) {
		for c := 0; c < chess.NumTiles; c++ {
			if got := b.Tile(c).Coordinate(); got != c {
				t.Errorf("Tile(%d).Coordinate() = %d", c, got)
			}
		}
	})
}

func TestBoardString(t *testing.T) {
	want := "" +
		"  r  n  b  q  k  b  n  r\n" +
		"  p  p  p  p  p  p  p  p\n" +
		"  -  -  -  -  -  -  -  -\n" +
		"  -  -  -  -  -  -  -  -\n" +
		"  -  -  -  -  -  -  -  -\n" +
		"  -  -  -  -  -  -  -  -\n" +
		"  P  P  P  P  P  P  P  P\n" +
		"  R  N  B  Q  K  B  N  R\n"
	testutil.AssertEqual(t, chess.CreateStandardBoard().String(), want)
}

func TestBuilderLastWriterWins(t *testing.T) {
	b := chess.NewBuilder().
		SetPiece(chess.NewPiece(chess.Knight, testutil.Sq("d4"), chess.White)).
		SetPiece(chess.NewPiece(chess.Bishop, testutil.Sq("d4"), chess.Black)).
		SetPiece(chess.NewPiece(chess.Rook, 64, chess.White)).
		Build()

	p, ok := b.Piece(testutil.Sq("d4"))
	testutil.AssertTrue(t, ok, "d4 occupied")
	testutil.AssertEqual(t, p, chess.NewPiece(chess.Bishop, testutil.Sq("d4"), chess.Black))
	testutil.AssertEqual(t, len(b.ActivePieces(chess.White)), 0)
	testutil.AssertEqual(t, len(b.ActivePieces(chess.Black)), 1)
}

func TestTileOutOfRange(t *testing.T) {
	b := chess.CreateStandardBoard()
	for _, c := range []int{-1, 64, 100} {
		if b.Tile(c).Occupied() {
			t.Errorf("Tile(%d) should be empty", c)
		}
	}
}

func TestPiecesMatchOccupiedTiles(t *testing.T) {
	b := testutil.PlayMoves(t, chess.CreateStandardBoard(), "e2e4", "d7d5", "e4d5", "d8d5")

	occupied := 0
	for c := 0; c < chess.NumTiles; c++ {
		if b.Tile(c).Occupied() {
			occupied++
		}
	}
	pieces := append(b.ActivePieces(chess.White), b.ActivePieces(chess.Black)...)
	testutil.AssertEqual(t, len(pieces), occupied)
	testutil.AssertEqual(t, occupied, 30)
	for _, p := range pieces {
		got, ok := b.Piece(p.Position)
		if !ok || got != p {
			t.Errorf("piece %v not found on its tile", p)
		}
	}
}

func TestExecuteDoesNotMutate(t *testing.T) {
	boards := []*chess.Board{
		chess.CreateStandardBoard(),
		testutil.PlayMoves(t, chess.CreateStandardBoard(), "e2e4", "d7d5", "g1f3", "b8c6", "f1b5"),
		testutil.MustBuild(t, chess.White, "Ke1", "Ra1", "Rh1", "ke8", "pd4*", "Pe2"),
	}
	for _, b := range boards {
		text := b.String()
		white, black := b.ActivePieces(chess.White), b.ActivePieces(chess.Black)
		whiteMoves, blackMoves := b.PseudoLegalMoves(chess.White), b.PseudoLegalMoves(chess.Black)
		side := b.SideToMove()

		for _, m := range b.CurrentPlayer().PseudoLegalMoves() {
			_ = m.Execute(b)
		}

		testutil.AssertEqual(t, b.String(), text)
		testutil.AssertEqual(t, b.ActivePieces(chess.White), white)
		testutil.AssertEqual(t, b.ActivePieces(chess.Black), black)
		testutil.AssertEqual(t, b.PseudoLegalMoves(chess.White), whiteMoves)
		testutil.AssertEqual(t, b.PseudoLegalMoves(chess.Black), blackMoves)
		testutil.AssertEqual(t, b.SideToMove(), side)
	}
}

func TestClocks(t *testing.T) {
	b := chess.CreateStandardBoard()
	tests := []struct {
		move     string
		halfmove int
		fullmove int
	}{
		{"g1f3", 1, 1},
		{"g8f6", 2, 2},
		{"e2e4", 0, 2},
		{"f6e4", 0, 3},
		{"b1c3", 1, 3},
	}
	for _, tt := range tests {
		b = testutil.PlayMoves(t, b, tt.move)
		if b.HalfmoveClock() != tt.halfmove || b.FullmoveNumber() != tt.fullmove {
			t.Errorf("after %s clocks = (%d, %d), want (%d, %d)",
				tt.move, b.HalfmoveClock(), b.FullmoveNumber(), tt.halfmove, tt.fullmove)
		}
	}
}
