package board

import "fmt"

// Flag is the move category. Every category has its own apply/undo formula.
type Flag uint8

const (
	Quiet Flag = iota
	Capture
	PawnDouble
	ShortCastle
	LongCastle
	KnightPromo
	BishopPromo
	RookPromo
	QueenPromo
	KnightPromoCapture
	BishopPromoCapture
	RookPromoCapture
	QueenPromoCapture
	EnPassant

	NumFlags
)

var flagNames = [NumFlags]string{
	Quiet:              "quiet",
	Capture:            "capture",
	PawnDouble:         "pawn-double",
	ShortCastle:        "short-castle",
	LongCastle:         "long-castle",
	KnightPromo:        "knight-promo",
	BishopPromo:        "bishop-promo",
	RookPromo:          "rook-promo",
	QueenPromo:         "queen-promo",
	KnightPromoCapture: "knight-promo-capture",
	BishopPromoCapture: "bishop-promo-capture",
	RookPromoCapture:   "rook-promo-capture",
	QueenPromoCapture:  "queen-promo-capture",
	EnPassant:          "en-passant",
}

func (f Flag) String() string {
	if f >= NumFlags {
		return fmt.Sprintf("flag(%d)", uint8(f))
	}
	return flagNames[f]
}

// IsCapture reports whether the category removes an opponent piece.
func (f Flag) IsCapture() bool {
	return f == Capture || f == EnPassant || (f >= KnightPromoCapture && f <= QueenPromoCapture)
}

// IsPromotion reports whether the category turns a pawn into another piece.
func (f Flag) IsPromotion() bool { return f >= KnightPromo && f <= QueenPromoCapture }

// IsCastle reports whether the category is a castle on either wing.
func (f Flag) IsCastle() bool { return f == ShortCastle || f == LongCastle }

// PromotionType returns the piece type a promotion produces, or NoPieceType.
func (f Flag) PromotionType() PieceType {
	switch f {
	case KnightPromo, KnightPromoCapture:
		return Knight
	case BishopPromo, BishopPromoCapture:
		return Bishop
	case RookPromo, RookPromoCapture:
		return Rook
	case QueenPromo, QueenPromoCapture:
		return Queen
	default:
		return NoPieceType
	}
}

// PromotionFlag returns the promotion category for pt, with or without capture.
// It returns NumFlags when pt is not a promotion target.
func PromotionFlag(pt PieceType, capture bool) Flag {
	if pt < Knight || pt > Queen {
		return NumFlags
	}
	f := KnightPromo + Flag(pt-Knight)
	if capture {
		f += KnightPromoCapture - KnightPromo
	}
	return f
}

// Move is an immutable description of one ply. The single-bit masks of both
// squares are computed once at construction so Apply and Undo never shift.
type Move struct {
	fromBit  uint64
	toBit    uint64
	from     uint8
	to       uint8
	flag     Flag
	captured Piece
}

// NoMove is the zero Move.
var NoMove Move

// NewMove constructs a Move. captured is only read for capture, promotion
// capture and en passant categories; pass NoPiece otherwise.
func NewMove(from, to Square, flag Flag, captured Piece) Move {
	return Move{
		fromBit:  from.Bit(),
		toBit:    to.Bit(),
		from:     uint8(from),
		to:       uint8(to),
		flag:     flag,
		captured: captured,
	}
}

// From returns the origin square.
func (m Move) From() Square { return Square(m.from) }

// To returns the destination square.
func (m Move) To() Square { return Square(m.to) }

// Flag returns the move category.
func (m Move) Flag() Flag { return m.flag }

// Captured returns the captured piece tag (NoPiece for non-captures).
func (m Move) Captured() Piece { return m.captured }

// FromBit returns the origin square as a bitboard.
func (m Move) FromBit() uint64 { return m.fromBit }

// ToBit returns the destination square as a bitboard.
func (m Move) ToBit() uint64 { return m.toBit }

// String returns the UCI form of the move, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	switch m.flag.PromotionType() {
	case Knight:
		s += "n"
	case Bishop:
		s += "b"
	case Rook:
		s += "r"
	case Queen:
		s += "q"
	}
	return s
}
