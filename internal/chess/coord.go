package chess

// Constants for board dimensions.
//
// Tiles are numbered 0..63 in rank-major order seen from White: index 0 is
// a8, 7 is h8, 56 is a1 and 63 is h1.
const (
	NumTiles       = 64
	NumTilesPerRow = 8
)

// Row returns the row of a coordinate, 0 being the eighth rank.
func Row(coordinate int) int {
	return coordinate / NumTilesPerRow
}

// Column returns the column of a coordinate, 0 being the a-file.
func Column(coordinate int) int {
	return coordinate % NumTilesPerRow
}

// Coordinate returns the tile index for a row and column.
func Coordinate(row, column int) int {
	return row*NumTilesPerRow + column
}

// IsValidCoordinate reports whether coordinate lies on the board.
func IsValidCoordinate(coordinate int) bool {
	return coordinate >= 0 && coordinate < NumTiles
}

// Step applies offset to from and reports whether the destination is a
// valid tile reached without wrapping around a board edge. fileDelta is the
// column change the offset is meant to produce; the wrap test is column
// based, so -1 from a8 is rejected even though 0-1 is only out of range by
// one tile, and +1 from h8 is rejected even though 8 is a valid index.
func Step(from, offset, fileDelta int) (int, bool) {
	to := from + offset
	if !IsValidCoordinate(from) || !IsValidCoordinate(to) {
		return 0, false
	}
	col := Column(from) + fileDelta
	if col < 0 || col >= NumTilesPerRow {
		return 0, false
	}
	return to, true
}

// IsFirstColumn reports whether coordinate is on the a-file.
func IsFirstColumn(coordinate int) bool { return Column(coordinate) == 0 }

// IsSecondColumn reports whether coordinate is on the b-file.
func IsSecondColumn(coordinate int) bool { return Column(coordinate) == 1 }

// IsSeventhColumn reports whether coordinate is on the g-file.
func IsSeventhColumn(coordinate int) bool { return Column(coordinate) == 6 }

// IsEighthColumn reports whether coordinate is on the h-file.
func IsEighthColumn(coordinate int) bool { return Column(coordinate) == 7 }

// SquareName returns the algebraic name of a coordinate, e.g. "e2".
// Invalid coordinates render as "-".
func SquareName(coordinate int) string {
	if !IsValidCoordinate(coordinate) {
		return "-"
	}
	return string([]byte{
		byte('a' + Column(coordinate)),
		byte('8' - Row(coordinate)),
	})
}

// Distance returns the king-move distance between two coordinates.
func Distance(a, b int) int {
	return max(abs(Row(a)-Row(b)), abs(Column(a)-Column(b)))
}

// IsLightSquare returns true if the given coordinate is a light square.
func IsLightSquare(coordinate int) bool {
	return (Row(coordinate)+Column(coordinate))%2 == 0
}

// ParseSquare returns the coordinate named by an algebraic square such as
// "e2"; ok is false for anything else.
func ParseSquare(name string) (coordinate int, ok bool) {
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		return -1, false
	}
	return Coordinate(int('8'-name[1]), int(name[0]-'a')), true
}
