package output

import (
	"strings"

	"github.com/lgbarn/chessai-go/internal/chess"
)

// FormatBoard draws b eight tiles to a line from a8 to h1, using the piece
// letters ('-' for an empty tile). With coordinates each rank is labelled
// and the files are listed underneath.
func FormatBoard(b *chess.Board, coordinates bool) string {
	var sb strings.Builder
	for row := 0; row < chess.NumTilesPerRow; row++ {
		if coordinates {
			sb.WriteByte(byte('8' - row))
			sb.WriteByte(' ')
		}
		for col := 0; col < chess.NumTilesPerRow; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.Tile(chess.Coordinate(row, col)).String())
		}
		sb.WriteByte('\n')
	}
	if coordinates {
		sb.WriteString("  a b c d e f g h\n")
	}
	return sb.String()
}
