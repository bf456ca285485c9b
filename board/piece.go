package board

// Color identifies a side.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is a colorless representation of a chess piece.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// Piece is a tag for a concrete (side, type) pair, the empty marker, or one of
// the aggregate pseudo-pieces that only serve as bitboard indices.
//
// Black pieces are encoded as (white piece | 8) so that
//   - piece & 7 gives the type in [1..6]
//   - piece & 8 != 0 indicates Black
//
// Type 7 of each color is that side's aggregate, and the otherwise unused
// black "type 0" slot holds the aggregate of both sides.
type Piece uint8

const (
	NoPiece Piece = 0

	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6
	WhiteAll    Piece = 7

	AllPieces Piece = 8

	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
	BlackAll    Piece = 7 | 8

	NumPieceTags = 16
)

// NewPiece combines a color and a type into a concrete piece.
func NewPiece(c Color, pt PieceType) Piece {
	if pt == NoPieceType || pt > King {
		return NoPiece
	}
	return Piece(c)<<3 | Piece(pt)
}

// Type returns the colorless type; aggregates and NoPiece report NoPieceType.
func (p Piece) Type() PieceType {
	if !p.IsConcrete() {
		return NoPieceType
	}
	return PieceType(p & 7)
}

// Color returns the owning side. NoPiece and AllPieces report White and Black
// respectively and carry no meaning.
func (p Piece) Color() Color { return Color(p >> 3) }

// IsConcrete reports whether p names a real piece rather than NoPiece or an aggregate.
func (p Piece) IsConcrete() bool {
	t := p & 7
	return t >= 1 && t <= 6 && p < NumPieceTags
}

// String returns the FEN letter of a concrete piece, "." for NoPiece and a
// short name for the aggregate tags.
func (p Piece) String() string {
	switch p {
	case NoPiece:
		return "."
	case WhiteAll:
		return "white-all"
	case BlackAll:
		return "black-all"
	case AllPieces:
		return "all"
	}
	if !p.IsConcrete() {
		return "?"
	}
	return string(pieceChar(p))
}

func pieceChar(p Piece) byte {
	const letters = " PNBRQK"
	ch := letters[p&7]
	if p.Color() == Black {
		ch += 'a' - 'A'
	}
	return ch
}

func pieceFromChar(ch byte) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}
