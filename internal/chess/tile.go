package chess

// Tile is one square of a board: either empty or holding a piece.
type Tile struct {
	coordinate int
	piece      Piece
	occupied   bool
}

// emptyTiles is the read-only table of empty tiles shared by every board.
var emptyTiles = func() [NumTiles]Tile {
	var tiles [NumTiles]Tile
	for i := range tiles {
		tiles[i] = Tile{coordinate: i}
	}
	return tiles
}()

// EmptyTile returns the shared empty tile for a coordinate.
func EmptyTile(coordinate int) Tile {
	return emptyTiles[coordinate]
}

func occupiedTile(coordinate int, p Piece) Tile {
	return Tile{coordinate: coordinate, piece: p, occupied: true}
}

// Coordinate returns the tile index.
func (t Tile) Coordinate() int { return t.coordinate }

// Occupied reports whether a piece stands on the tile.
func (t Tile) Occupied() bool { return t.occupied }

// Piece returns the occupant; ok is false for an empty tile.
func (t Tile) Piece() (p Piece, ok bool) {
	return t.piece, t.occupied
}

// String renders the tile as its piece letter, or "-" when empty.
func (t Tile) String() string {
	if !t.occupied {
		return "-"
	}
	return string(t.piece.Letter())
}
