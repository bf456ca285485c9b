package board

import "fmt"

// Undo takes back m, which must be the most recent move applied to b by side s.
func (b *Board) Undo(m Move, s *Side) {
	switch m.Flag() {
	case Quiet:
		b.undoQuiet(m, s)
	case Capture:
		b.undoCapture(m, s)
	case PawnDouble:
		b.undoPawnDouble(m, s)

	case ShortCastle:
		b.undoCastle(s, &s.KingSide)
	case LongCastle:
		b.undoCastle(s, &s.QueenSide)

	case KnightPromo:
		b.undoPromo(m, s, s.Knight)
	case BishopPromo:
		b.undoPromo(m, s, s.Bishop)
	case RookPromo:
		b.undoPromo(m, s, s.Rook)
	case QueenPromo:
		b.undoPromo(m, s, s.Queen)

	case KnightPromoCapture:
		b.undoPromoCapture(m, s, s.Knight)
	case BishopPromoCapture:
		b.undoPromoCapture(m, s, s.Bishop)
	case RookPromoCapture:
		b.undoPromoCapture(m, s, s.Rook)
	case QueenPromoCapture:
		b.undoPromoCapture(m, s, s.Queen)

	case EnPassant:
		b.undoEnPassant(m, s)

	default:
		panic(fmt.Sprintf("board.Undo: unknown move flag %d", uint8(m.Flag())))
	}
}

func (b *Board) undoQuiet(m Move, s *Side) {
	from, to := m.From(), m.To()
	b.fromCounters[from]--

	piece := b.squares[to]
	b.squares[from] = piece
	b.squares[to] = NoPiece

	bitDiff := m.FromBit() | m.ToBit()
	b.bitboards[piece] ^= bitDiff
	b.bitboards[s.All] ^= bitDiff
	b.bitboards[AllPieces] ^= bitDiff
}

func (b *Board) undoPawnDouble(m Move, s *Side) {
	to := m.To()
	from := to + 2*s.Backward
	b.squares[from] = s.Pawn
	b.squares[to] = NoPiece

	bitDiff := from.Bit() | m.ToBit()
	b.bitboards[s.Pawn] ^= bitDiff
	b.bitboards[s.All] ^= bitDiff
	b.bitboards[AllPieces] ^= bitDiff
}

func (b *Board) undoCapture(m Move, s *Side) {
	from, to := m.From(), m.To()
	b.fromCounters[from]--

	piece := b.squares[to]
	capture := m.Captured()
	b.squares[from] = piece
	b.squares[to] = capture

	fromBit, toBit := m.FromBit(), m.ToBit()
	// re-add captured piece.
	b.bitboards[capture] ^= toBit
	b.bitboards[s.OppAll] ^= toBit
	// move capturing piece.
	bitDiff := fromBit | toBit
	b.bitboards[piece] ^= bitDiff
	b.bitboards[s.All] ^= bitDiff
	// overall change.
	b.bitboards[AllPieces] ^= fromBit
}

func (b *Board) undoCastle(s *Side, c *Castle) {
	b.fromCounters[c.KingPre]--

	b.squares[c.KingPost] = NoPiece
	b.squares[c.RookPost] = NoPiece
	b.squares[c.KingPre] = s.King
	b.squares[c.RookPre] = s.Rook

	b.bitboards[s.King] ^= c.KingDelta
	b.bitboards[s.Rook] ^= c.RookDelta
	b.bitboards[s.All] ^= c.Delta
	b.bitboards[AllPieces] ^= c.Delta
}

func (b *Board) undoPromo(m Move, s *Side, promo Piece) {
	from := m.To() + s.Backward
	b.squares[from] = s.Pawn
	b.squares[m.To()] = NoPiece

	fromBit, toBit := from.Bit(), m.ToBit()
	b.bitboards[s.Pawn] ^= fromBit
	b.bitboards[promo] ^= toBit
	bitDiff := fromBit | toBit
	b.bitboards[s.All] ^= bitDiff
	b.bitboards[AllPieces] ^= bitDiff
}

func (b *Board) undoPromoCapture(m Move, s *Side, promo Piece) {
	capture := m.Captured()
	b.squares[m.From()] = s.Pawn
	b.squares[m.To()] = capture

	fromBit, toBit := m.FromBit(), m.ToBit()
	b.bitboards[s.Pawn] ^= fromBit
	b.bitboards[promo] ^= toBit
	b.bitboards[capture] ^= toBit
	b.bitboards[s.OppAll] ^= toBit
	b.bitboards[s.All] ^= fromBit | toBit
	b.bitboards[AllPieces] = b.bitboards[s.All] | b.bitboards[s.OppAll]
}

func (b *Board) undoEnPassant(m Move, s *Side) {
	epSquare := m.To() + s.Backward
	b.squares[m.From()] = s.Pawn
	b.squares[m.To()] = NoPiece
	b.squares[epSquare] = s.OppPawn

	bitDiff := m.FromBit() | m.ToBit()
	b.bitboards[s.Pawn] ^= bitDiff
	b.bitboards[s.All] ^= bitDiff

	epBit := epSquare.Bit()
	b.bitboards[s.OppPawn] ^= epBit
	b.bitboards[s.OppAll] ^= epBit
	b.bitboards[AllPieces] = b.bitboards[s.OppAll] | b.bitboards[s.All]
}
