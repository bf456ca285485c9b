package board

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInconsistent is wrapped by every Validate failure.
var ErrInconsistent = errors.New("board: inconsistent state")

// Board is the mutable position: the square array, one bitboard per piece tag
// (concrete pieces plus the three aggregates) and a per-origin-square counter.
//
// Board is a plain value type; two boards compare equal with == exactly when
// every square, bitboard and counter matches.
type Board struct {
	squares      [64]Piece
	bitboards    [NumPieceTags]uint64
	fromCounters [64]int32
}

// New returns an empty board.
func New() *Board { return &Board{} }

// NewStart returns the standard initial position.
func NewStart() *Board {
	b, _, err := ParseFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return b
}

// PieceAt returns the piece on a square, or NoPiece.
func (b *Board) PieceAt(sq Square) Piece { return b.squares[sq] }

// Occupancy returns the bitboard of a concrete piece tag or of one of the
// aggregates WhiteAll, BlackAll and AllPieces.
func (b *Board) Occupancy(tag Piece) uint64 { return b.bitboards[tag] }

// FromCount returns how many applied, not yet undone, quiet moves, captures
// and castles started on sq.
func (b *Board) FromCount(sq Square) int32 { return b.fromCounters[sq] }

// Put places p on sq, replacing whatever stood there. It is a setup helper for
// building arbitrary positions and is not used by Apply or Undo.
func (b *Board) Put(sq Square, p Piece) {
	b.Remove(sq)
	if !p.IsConcrete() {
		return
	}
	bit := sq.Bit()
	b.squares[sq] = p
	b.bitboards[p] |= bit
	b.bitboards[p.Color()<<3|7] |= bit
	b.bitboards[AllPieces] |= bit
}

// Remove clears sq and returns the piece that stood there.
func (b *Board) Remove(sq Square) Piece {
	p := b.squares[sq]
	if p == NoPiece {
		return NoPiece
	}
	mask := ^sq.Bit()
	b.squares[sq] = NoPiece
	b.bitboards[p] &= mask
	b.bitboards[p.Color()<<3|7] &= mask
	b.bitboards[AllPieces] &= mask
	return p
}

// Clear empties the board and zeroes every counter.
func (b *Board) Clear() { *b = Board{} }

// Validate checks that the square array, the concrete piece bitboards and the
// aggregates agree. It returns nil for a consistent board and otherwise an
// error wrapping ErrInconsistent that names the first violation found.
func (b *Board) Validate() error {
	if b.bitboards[NoPiece] != 0 {
		return fmt.Errorf("%w: NoPiece bitboard is %#016x", ErrInconsistent, b.bitboards[NoPiece])
	}
	var aggregate [2]uint64
	for sq := A1; sq <= H8; sq++ {
		p := b.squares[sq]
		if p != NoPiece && !p.IsConcrete() {
			return fmt.Errorf("%w: square %s holds tag %d", ErrInconsistent, sq, uint8(p))
		}
		bit := sq.Bit()
		for _, c := range [2]Color{White, Black} {
			for pt := Pawn; pt <= King; pt++ {
				tag := NewPiece(c, pt)
				set := b.bitboards[tag]&bit != 0
				if set != (tag == p) {
					return fmt.Errorf("%w: square %s holds %s but %s bitboard bit is %t",
						ErrInconsistent, sq, p, tag, set)
				}
			}
		}
		if p != NoPiece {
			aggregate[p.Color()] |= bit
		}
	}
	if b.bitboards[WhiteAll] != aggregate[White] {
		return fmt.Errorf("%w: white aggregate %#016x, pieces %#016x", ErrInconsistent, b.bitboards[WhiteAll], aggregate[White])
	}
	if b.bitboards[BlackAll] != aggregate[Black] {
		return fmt.Errorf("%w: black aggregate %#016x, pieces %#016x", ErrInconsistent, b.bitboards[BlackAll], aggregate[Black])
	}
	if all := b.bitboards[WhiteAll] | b.bitboards[BlackAll]; b.bitboards[AllPieces] != all {
		return fmt.Errorf("%w: all-pieces %#016x, side union %#016x", ErrInconsistent, b.bitboards[AllPieces], all)
	}
	return nil
}

// String draws the board from White's side, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		sb.WriteString("  ")
		for file := 0; file < 8; file++ {
			sb.WriteString(b.squares[NewSquare(file, rank)].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n")
	return sb.String()
}
