package engine

import (
	"testing"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/testutil"
)

// TestHasInsufficientMaterial tests various material configurations
func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name       string
		placements []string
		want       bool // true = insufficient material
	}{
		{"K vs K", []string{"ke8", "Ke1"}, true},
		{"K+B vs K", []string{"ke8", "Ke1", "Bf1"}, true},
		{"K+N vs K", []string{"ke8", "Ke1", "Nf1"}, true},
		{"K vs K+b", []string{"ke8", "bg8", "Ke1"}, true},
		{"K vs K+n", []string{"ke8", "ng8", "Ke1"}, true},
		{"K+B vs K+B same color", []string{"ka8", "bf8", "Ke1", "Bc1"}, true},
		{"K+R vs K", []string{"ke8", "Ke1", "Rf1"}, false},
		{"K+Q vs K", []string{"ke8", "Ke1", "Qf1"}, false},
		{"K+P vs K", []string{"ke8", "Ke1", "Pe2"}, false},
		{"K+B vs K+B opposite color", []string{"ka8", "bf8", "Ke1", "Bd1"}, false},
		{"K+B+B vs K", []string{"ke8", "Ke1", "Bc1", "Bf1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := testutil.MustBuild(t, chess.White, tt.placements...)

			got := HasInsufficientMaterial(board)
			if got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("standard starting position", func(t *testing.T) {
		if HasInsufficientMaterial(chess.CreateStandardBoard()) {
			t.Error("HasInsufficientMaterial(start) = true, want false")
		}
	})
}

// TestAnalyzeDrawRules_NewGame tests analyzing a game with no moves
func TestAnalyzeDrawRules_NewGame(t *testing.T) {
	result := AnalyzeDrawRules(NewGame())

	if result.HasFiftyMoveRule {
		t.Errorf("AnalyzeDrawRules(new game).HasFiftyMoveRule = true, want false")
	}
	if result.HasThreefoldRepetition {
		t.Errorf("AnalyzeDrawRules(new game).HasThreefoldRepetition = true, want false")
	}
	if result.HasInsufficientMaterial {
		t.Errorf("AnalyzeDrawRules(new game).HasInsufficientMaterial = true, want false")
	}
	if result.HasMaterialOdds {
		t.Errorf("AnalyzeDrawRules(new game).HasMaterialOdds = true, want false")
	}
	if result.IsDraw() {
		t.Errorf("AnalyzeDrawRules(new game).IsDraw() = true, want false")
	}
}

// TestAnalyzeDrawRules_MaterialOdds tests detecting material odds
func TestAnalyzeDrawRules_MaterialOdds(t *testing.T) {
	start := chess.CreateStandardBoard()
	b := chess.NewBuilder()
	for _, side := range []chess.Side{chess.White, chess.Black} {
		for _, p := range start.ActivePieces(side) {
			// Missing white rook on h1
			if p.Position != testutil.Sq("h1") {
				b.SetPiece(p)
			}
		}
	}

	result := AnalyzeDrawRules(NewGameFromBoard(b.Build()))
	if !result.HasMaterialOdds {
		t.Error("AnalyzeDrawRules(rook odds).HasMaterialOdds = false, want true")
	}
}

func TestAnalyzeDrawRules_FiftyMoves(t *testing.T) {
	board := chess.NewBuilder().
		SetPiece(testutil.MustPiece(t, "Ke1*")).
		SetPiece(testutil.MustPiece(t, "Ra1*")).
		SetPiece(testutil.MustPiece(t, "ke8*")).
		SetClocks(FiftyMoveLimit-1, 80).
		Build()
	g := NewGameFromBoard(board)
	testutil.AssertFalse(t, AnalyzeDrawRules(g).HasFiftyMoveRule, "99 half-moves")

	testutil.AssertNoError(t, g.Play(testutil.Sq("a1"), testutil.Sq("a2")))
	testutil.AssertTrue(t, AnalyzeDrawRules(g).HasFiftyMoveRule, "100 half-moves")
}

func TestAnalyzeDrawRules_Threefold(t *testing.T) {
	g := NewGame()
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}

	for i, text := range append(shuffle, shuffle...) {
		if AnalyzeDrawRules(g).HasThreefoldRepetition {
			t.Fatalf("threefold repetition after %d plies", i)
		}
		testutil.AssertNoError(t, g.PlayMove(testutil.MustMove(t, g.Board(), text)))
	}
	testutil.AssertTrue(t, AnalyzeDrawRules(g).HasThreefoldRepetition, "start position seen three times")
}
