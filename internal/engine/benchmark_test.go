package engine

import (
	"testing"
)

func BenchmarkPerft(b *testing.B) {
	for _, pos := range Positions {
		b.Run(pos.Name, func(b *testing.B) {
			board, _ := pos.Board()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Perft(board, 2)
			}
		})
	}
}

func BenchmarkOutcome(b *testing.B) {
	g := NewGame()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Outcome()
	}
}
