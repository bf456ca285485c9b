package board

// Castle describes one castling wing for one side: where king and rook start
// and land, and the precomputed bitboard deltas of both movements.
type Castle struct {
	KingPre, KingPost Square
	RookPre, RookPost Square

	KingDelta uint64
	RookDelta uint64
	Delta     uint64
}

func newCastle(kingPre, kingPost, rookPre, rookPost Square) Castle {
	kd := kingPre.Bit() | kingPost.Bit()
	rd := rookPre.Bit() | rookPost.Bit()
	return Castle{
		KingPre:   kingPre,
		KingPost:  kingPost,
		RookPre:   rookPre,
		RookPost:  rookPost,
		KingDelta: kd,
		RookDelta: rd,
		Delta:     kd | rd,
	}
}

// Side bundles the per-color constants the apply/undo formulas need, so a
// single body of code serves both colors. Use WhiteSide, BlackSide or SideOf;
// the values are read-only.
type Side struct {
	Color Color

	Pawn, Knight, Bishop, Rook, Queen, King Piece

	// All is the own aggregate tag, OppAll the opponent's.
	All, OppAll Piece
	// OppPawn is the pawn removed by an en passant capture.
	OppPawn Piece

	// Forward is the square offset of one pawn step; Backward is its negation.
	Forward, Backward Square

	KingSide  Castle // O-O
	QueenSide Castle // O-O-O
}

var WhiteSide = &Side{
	Color:     White,
	Pawn:      WhitePawn,
	Knight:    WhiteKnight,
	Bishop:    WhiteBishop,
	Rook:      WhiteRook,
	Queen:     WhiteQueen,
	King:      WhiteKing,
	All:       WhiteAll,
	OppAll:    BlackAll,
	OppPawn:   BlackPawn,
	Forward:   8,
	Backward:  -8,
	KingSide:  newCastle(E1, G1, H1, F1),
	QueenSide: newCastle(E1, C1, A1, D1),
}

var BlackSide = &Side{
	Color:     Black,
	Pawn:      BlackPawn,
	Knight:    BlackKnight,
	Bishop:    BlackBishop,
	Rook:      BlackRook,
	Queen:     BlackQueen,
	King:      BlackKing,
	All:       BlackAll,
	OppAll:    WhiteAll,
	OppPawn:   WhitePawn,
	Forward:   -8,
	Backward:  8,
	KingSide:  newCastle(E8, G8, H8, F8),
	QueenSide: newCastle(E8, C8, A8, D8),
}

var sides = [2]*Side{WhiteSide, BlackSide}

// SideOf returns the descriptor of c.
func SideOf(c Color) *Side { return sides[c&1] }

// Other returns the opponent's descriptor.
func (s *Side) Other() *Side { return sides[s.Color^1] }

// Promoted returns the own piece tag for a promotion target type.
func (s *Side) Promoted(pt PieceType) Piece {
	switch pt {
	case Knight:
		return s.Knight
	case Bishop:
		return s.Bishop
	case Rook:
		return s.Rook
	case Queen:
		return s.Queen
	default:
		return NoPiece
	}
}

// Castle returns the descriptor for a castle category, or nil for any other flag.
func (s *Side) Castle(f Flag) *Castle {
	switch f {
	case ShortCastle:
		return &s.KingSide
	case LongCastle:
		return &s.QueenSide
	default:
		return nil
	}
}
