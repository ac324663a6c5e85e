package hashing

import (
	"sync"

	"github.com/lgbarn/chessai-go/internal/chess"
)

var (
	zobristOnce sync.Once

	zobristPieces    [2][chess.NumKinds][chess.NumTiles]uint64
	zobristUnmoved   [2][chess.NumTiles]uint64
	zobristEnPassant [chess.NumTilesPerRow]uint64
	zobristSide      uint64
)

// initZobrist fills the key tables from a fixed splitmix64 sequence, so
// hashes are stable from run to run.
func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for kind := 0; kind < int(chess.NumKinds); kind++ {
				for sq := 0; sq < chess.NumTiles; sq++ {
					zobristPieces[side][kind][sq] = next()
				}
			}
			for sq := 0; sq < chess.NumTiles; sq++ {
				zobristUnmoved[side][sq] = next()
			}
		}
		for col := range zobristEnPassant {
			zobristEnPassant[col] = next()
		}
		zobristSide = next()
	})
}

// Zobrist computes the Zobrist hash of a board. Besides piece placement and
// the side to move it covers the state that changes which moves are
// available: unmoved kings and rooks (castling) and the en passant column.
func Zobrist(b *chess.Board) uint64 {
	initZobrist()

	var h uint64
	for _, side := range []chess.Side{chess.White, chess.Black} {
		for _, p := range b.ActivePieces(side) {
			h ^= zobristPieces[side][p.Kind][p.Position]
			if !p.Moved && (p.Kind == chess.King || p.Kind == chess.Rook) {
				h ^= zobristUnmoved[side][p.Position]
			}
		}
	}
	if ep, ok := b.EnPassantPawn(); ok {
		h ^= zobristEnPassant[chess.Column(ep.Position)]
	}
	if b.SideToMove() == chess.Black {
		h ^= zobristSide
	}
	return h
}
