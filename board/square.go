// Package board holds the bitboard position representation and the
// make/unmake engine that mutates it.
package board

import (
	"fmt"
	"math/bits"
)

// Square represents a board position (0-63), a1=0, h1=7, a8=56, h8=63.
type Square int

const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// Bit returns a bitboard with only this square set.
func (sq Square) Bit() uint64 { return uint64(1) << uint(sq) }

// SquareOf returns the square of the lowest set bit in mask, or NoSquare for an empty mask.
func SquareOf(mask uint64) Square {
	if mask == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(mask))
}

// File returns 0 for the a-file through 7 for the h-file.
func (sq Square) File() int { return int(sq) & 7 }

// Rank returns 0 for the first rank through 7 for the eighth.
func (sq Square) Rank() int { return int(sq) >> 3 }

// IsValid reports whether sq is on the board.
func (sq Square) IsValid() bool { return sq >= A1 && sq <= H8 }

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// NewSquare builds a square from 0-indexed file and rank.
func NewSquare(file, rank int) Square { return Square(rank*8 + file) }

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	file := int(s[0]) - 'a'
	rank := int(s[1]) - '1'
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return NewSquare(file, rank), nil
}
