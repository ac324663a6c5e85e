package chess

import "strings"

// Board represents one position: 64 tiles, the pieces of each side and the
// side to move. A Board is never modified after Build returns; every move
// produces a sibling Board.
type Board struct {
	tiles       [NumTiles]Tile
	whitePieces []Piece
	blackPieces []Piece
	sideToMove  Side

	// Coordinate of the pawn that may be captured en passant, -1 if none.
	enPassant int

	// The half-move clock since the last pawn move or capture.
	halfmoveClock int

	// The current move number.
	fullmoveNumber int

	// Pseudo-legal moves of each side, castling included. Computed once in
	// Build; they are part of the position, not a cache.
	whiteMoves []Move
	blackMoves []Move
}

// Builder collects a sparse piece placement and produces a Board.
type Builder struct {
	config         map[int]Piece
	nextMoveMaker  Side
	enPassant      int
	halfmoveClock  int
	fullmoveNumber int
}

// NewBuilder creates an empty builder with White to move.
func NewBuilder() *Builder {
	return &Builder{
		config:         make(map[int]Piece, NumTiles),
		nextMoveMaker:  White,
		enPassant:      -1,
		fullmoveNumber: 1,
	}
}

// SetPiece places a piece on its Position. Placing a second piece on the
// same coordinate replaces the first (last writer wins); pieces with an
// invalid position are ignored.
func (b *Builder) SetPiece(p Piece) *Builder {
	if IsValidCoordinate(p.Position) {
		b.config[p.Position] = p
	}
	return b
}

// SetMoveMaker sets the side to move.
func (b *Builder) SetMoveMaker(side Side) *Builder {
	b.nextMoveMaker = side
	return b
}

// SetEnPassantPawn marks p as the pawn that has just jumped two tiles and may
// be captured en passant on the next ply.
func (b *Builder) SetEnPassantPawn(p Piece) *Builder {
	b.enPassant = p.Position
	return b
}

// SetClocks sets the half-move clock and the move number.
func (b *Builder) SetClocks(halfmoveClock, fullmoveNumber int) *Builder {
	b.halfmoveClock = halfmoveClock
	b.fullmoveNumber = fullmoveNumber
	return b
}

// Build creates the Board described by the builder.
func (b *Builder) Build() *Board {
	board := &Board{
		sideToMove:     b.nextMoveMaker,
		enPassant:      -1,
		halfmoveClock:  b.halfmoveClock,
		fullmoveNumber: b.fullmoveNumber,
	}
	for i := 0; i < NumTiles; i++ {
		if p, ok := b.config[i]; ok {
			board.tiles[i] = occupiedTile(i, p)
		} else {
			board.tiles[i] = EmptyTile(i)
		}
	}
	board.whitePieces = activePieces(&board.tiles, White)
	board.blackPieces = activePieces(&board.tiles, Black)

	// Only a pawn of the side that just moved can be taken en passant.
	if IsValidCoordinate(b.enPassant) {
		if p, ok := board.tiles[b.enPassant].Piece(); ok && p.Kind == Pawn && p.Side != board.sideToMove {
			board.enPassant = b.enPassant
		}
	}

	board.whiteMoves = castleMoves(board, White, generateMoves(board, board.whitePieces))
	board.blackMoves = castleMoves(board, Black, generateMoves(board, board.blackPieces))
	return board
}

// activePieces lists the pieces of one side in tile order.
func activePieces(tiles *[NumTiles]Tile, side Side) []Piece {
	pieces := make([]Piece, 0, 16)
	for _, t := range tiles {
		if p, ok := t.Piece(); ok && p.Side == side {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// CreateStandardBoard creates the standard chess starting position.
func CreateStandardBoard() *Board {
	b := NewBuilder()
	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, kind := range backRank {
		b.SetPiece(NewPiece(kind, Coordinate(0, col), Black))
		b.SetPiece(NewPiece(Pawn, Coordinate(1, col), Black))
		b.SetPiece(NewPiece(Pawn, Coordinate(6, col), White))
		b.SetPiece(NewPiece(kind, Coordinate(7, col), White))
	}
	b.SetMoveMaker(White)
	return b.Build()
}

// Tile returns the tile at coordinate. An invalid coordinate yields an
// unoccupied tile carrying that coordinate.
func (b *Board) Tile(coordinate int) Tile {
	if !IsValidCoordinate(coordinate) {
		return Tile{coordinate: coordinate}
	}
	return b.tiles[coordinate]
}

// Piece returns the piece standing on coordinate, if any.
func (b *Board) Piece(coordinate int) (Piece, bool) {
	return b.Tile(coordinate).Piece()
}

// SideToMove returns the side whose turn it is.
func (b *Board) SideToMove() Side {
	return b.sideToMove
}

// ActivePieces returns a copy of the pieces of one side in tile order.
func (b *Board) ActivePieces(side Side) []Piece {
	return append([]Piece(nil), b.pieces(side)...)
}

func (b *Board) pieces(side Side) []Piece {
	if side == White {
		return b.whitePieces
	}
	return b.blackPieces
}

// PseudoLegalMoves returns a copy of one side's pseudo-legal moves.
func (b *Board) PseudoLegalMoves(side Side) []Move {
	return append([]Move(nil), b.movesFor(side)...)
}

// MoveCount returns the number of pseudo-legal moves of one side.
func (b *Board) MoveCount(side Side) int {
	return len(b.movesFor(side))
}

func (b *Board) movesFor(side Side) []Move {
	if side == White {
		return b.whiteMoves
	}
	return b.blackMoves
}

// King returns the king of a side; ok is false if the side has none.
func (b *Board) King(side Side) (Piece, bool) {
	for _, p := range b.pieces(side) {
		if p.Kind == King {
			return p, true
		}
	}
	return Piece{}, false
}

// EnPassantPawn returns the pawn that may be captured en passant, if any.
func (b *Board) EnPassantPawn() (Piece, bool) {
	if b.enPassant < 0 {
		return Piece{}, false
	}
	return b.tiles[b.enPassant].Piece()
}

// HalfmoveClock returns the number of plies since the last pawn move or capture.
func (b *Board) HalfmoveClock() int {
	return b.halfmoveClock
}

// FullmoveNumber returns the current move number, starting at 1.
func (b *Board) FullmoveNumber() int {
	return b.fullmoveNumber
}

// WhitePlayer derives White's view of the position.
func (b *Board) WhitePlayer() *Player {
	return newPlayer(b, White)
}

// BlackPlayer derives Black's view of the position.
func (b *Board) BlackPlayer() *Player {
	return newPlayer(b, Black)
}

// CurrentPlayer derives the view of the side to move.
func (b *Board) CurrentPlayer() *Player {
	return newPlayer(b, b.sideToMove)
}

// String renders the board as eight rows of tile letters, Black at the top.
func (b *Board) String() string {
	var sb strings.Builder
	for i, t := range b.tiles {
		sb.WriteString("  ")
		sb.WriteString(t.String())
		if (i+1)%NumTilesPerRow == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
