package board

import "fmt"

// Apply plays m for side s. The move is trusted: it must have been produced
// for this exact position, otherwise the board is silently corrupted.
func (b *Board) Apply(m Move, s *Side) {
	switch m.Flag() {
	case Quiet:
		b.applyQuiet(m, s)
	case Capture:
		b.applyCapture(m, s)
	case PawnDouble:
		b.applyPawnDouble(m, s)

	case ShortCastle:
		b.applyCastle(s, &s.KingSide)
	case LongCastle:
		b.applyCastle(s, &s.QueenSide)

	case KnightPromo:
		b.applyPromo(m, s, s.Knight)
	case BishopPromo:
		b.applyPromo(m, s, s.Bishop)
	case RookPromo:
		b.applyPromo(m, s, s.Rook)
	case QueenPromo:
		b.applyPromo(m, s, s.Queen)

	case KnightPromoCapture:
		b.applyPromoCapture(m, s, s.Knight)
	case BishopPromoCapture:
		b.applyPromoCapture(m, s, s.Bishop)
	case RookPromoCapture:
		b.applyPromoCapture(m, s, s.Rook)
	case QueenPromoCapture:
		b.applyPromoCapture(m, s, s.Queen)

	case EnPassant:
		b.applyEnPassant(m, s)

	default:
		panic(fmt.Sprintf("board.Apply: unknown move flag %d", uint8(m.Flag())))
	}
}

func (b *Board) applyQuiet(m Move, s *Side) {
	from, to := m.From(), m.To()
	b.fromCounters[from]++

	piece := b.squares[from]
	b.squares[to] = piece
	b.squares[from] = NoPiece

	bitDiff := m.FromBit() | m.ToBit()
	b.bitboards[piece] ^= bitDiff
	b.bitboards[s.All] ^= bitDiff
	b.bitboards[AllPieces] ^= bitDiff
}

func (b *Board) applyPawnDouble(m Move, s *Side) {
	b.squares[m.To()] = s.Pawn
	b.squares[m.From()] = NoPiece

	bitDiff := m.FromBit() | m.ToBit()
	b.bitboards[s.Pawn] ^= bitDiff
	b.bitboards[s.All] ^= bitDiff
	b.bitboards[AllPieces] ^= bitDiff
}

func (b *Board) applyCapture(m Move, s *Side) {
	from, to := m.From(), m.To()
	b.fromCounters[from]++

	piece := b.squares[from]
	capture := m.Captured()
	b.squares[to] = piece
	b.squares[from] = NoPiece

	fromBit, toBit := m.FromBit(), m.ToBit()
	// take the captured piece off.
	b.bitboards[capture] ^= toBit
	b.bitboards[s.OppAll] ^= toBit
	// move the capturing piece.
	bitDiff := fromBit | toBit
	b.bitboards[piece] ^= bitDiff
	b.bitboards[s.All] ^= bitDiff
	// the destination stays occupied, only the origin empties.
	b.bitboards[AllPieces] ^= fromBit
}

func (b *Board) applyCastle(s *Side, c *Castle) {
	b.fromCounters[c.KingPre]++

	b.squares[c.KingPre] = NoPiece
	b.squares[c.RookPre] = NoPiece
	b.squares[c.KingPost] = s.King
	b.squares[c.RookPost] = s.Rook

	b.bitboards[s.King] ^= c.KingDelta
	b.bitboards[s.Rook] ^= c.RookDelta
	b.bitboards[s.All] ^= c.Delta
	b.bitboards[AllPieces] ^= c.Delta
}

func (b *Board) applyPromo(m Move, s *Side, promo Piece) {
	b.squares[m.From()] = NoPiece
	b.squares[m.To()] = promo

	fromBit, toBit := m.FromBit(), m.ToBit()
	b.bitboards[s.Pawn] ^= fromBit
	b.bitboards[promo] ^= toBit
	bitDiff := fromBit | toBit
	b.bitboards[s.All] ^= bitDiff
	b.bitboards[AllPieces] ^= bitDiff
}

func (b *Board) applyPromoCapture(m Move, s *Side, promo Piece) {
	capture := m.Captured()
	b.squares[m.From()] = NoPiece
	b.squares[m.To()] = promo

	fromBit, toBit := m.FromBit(), m.ToBit()
	b.bitboards[s.Pawn] ^= fromBit
	b.bitboards[promo] ^= toBit
	b.bitboards[capture] ^= toBit
	b.bitboards[s.OppAll] ^= toBit
	b.bitboards[s.All] ^= fromBit | toBit
	// three pieces touch the destination; rebuild from the side aggregates.
	b.bitboards[AllPieces] = b.bitboards[s.All] | b.bitboards[s.OppAll]
}

func (b *Board) applyEnPassant(m Move, s *Side) {
	epSquare := m.To() + s.Backward
	b.squares[m.From()] = NoPiece
	b.squares[m.To()] = s.Pawn
	b.squares[epSquare] = NoPiece

	bitDiff := m.FromBit() | m.ToBit()
	b.bitboards[s.Pawn] ^= bitDiff
	b.bitboards[s.All] ^= bitDiff

	epBit := epSquare.Bit()
	b.bitboards[s.OppPawn] ^= epBit
	b.bitboards[s.OppAll] ^= epBit
	// the captured pawn is on neither move square.
	b.bitboards[AllPieces] = b.bitboards[s.All] | b.bitboards[s.OppAll]
}
