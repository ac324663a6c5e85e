package engine

import (
	"github.com/lgbarn/chessai-go/internal/chess"
)

// Position is a named test position with its published perft counts. FEN is
// carried only so that other move generators can load the same position.
type Position struct {
	Name       string
	FEN        string
	SideToMove chess.Side
	Placements []string
	// Perft holds the expected node counts for depth 1, 2, ...
	Perft []uint64
}

// Positions lists the perft reference positions.
var Positions = []Position{
	{
		Name:       "start",
		FEN:        "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		SideToMove: chess.White,
		Perft:      []uint64{20, 400, 8902, 197281},
	},
	{
		Name:       "kiwipete",
		FEN:        "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		SideToMove: chess.White,
		Placements: []string{
			"ra8", "ke8", "rh8",
			"pa7", "pc7", "pd7", "qe7", "pf7", "bg7",
			"ba6", "nb6", "pe6", "nf6", "pg6",
			"Pd5", "Ne5",
			"pb4", "Pe4",
			"Nc3", "Qf3", "ph3",
			"Pa2", "Pb2", "Pc2", "Bd2", "Be2", "Pf2", "Pg2", "Ph2",
			"Ra1", "Ke1", "Rh1",
		},
		Perft: []uint64{48, 2039, 97862},
	},
	{
		Name:       "endgame",
		FEN:        "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		SideToMove: chess.White,
		Placements: []string{
			"pc7", "pd6",
			"Ka5*", "Pb5", "rh5",
			"Rb4", "pf4", "kh4*",
			"Pe2", "Pg2",
		},
		Perft: []uint64{14, 191, 2812, 43238},
	},
	{
		Name:       "promotion",
		FEN:        "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		SideToMove: chess.White,
		Placements: []string{
			"ra8*", "nb8", "bc8", "qd8", "kf8*", "rh8*",
			"pa7", "pb7", "Pd7*", "be7", "pf7", "pg7", "ph7",
			"pc6*",
			"Bc4*",
			"Pa2", "Pb2", "Pc2", "Ne2*", "nf2*", "Pg2", "Ph2",
			"Ra1", "Nb1", "Bc1", "Qd1", "Ke1", "Rh1",
		},
		Perft: []uint64{44, 1486, 62379},
	},
}

// FindPosition returns the named position.
func FindPosition(name string) (Position, bool) {
	for _, p := range Positions {
		if p.Name == name {
			return p, true
		}
	}
	return Position{}, false
}

// Board builds the position. The start position uses the standard board.
func (p Position) Board() (*chess.Board, error) {
	if len(p.Placements) == 0 {
		return chess.CreateStandardBoard(), nil
	}
	b := chess.NewBuilder().SetMoveMaker(p.SideToMove)
	for _, pl := range p.Placements {
		piece, err := chess.ParsePiece(pl)
		if err != nil {
			return nil, err
		}
		b.SetPiece(piece)
	}
	return b.Build(), nil
}
