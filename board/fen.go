package board

import (
	"errors"
	"fmt"
	"strings"
)

// StartFEN is the FEN string for the standard initial chess position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrFEN is wrapped by every ParseFEN failure.
var ErrFEN = errors.New("board: invalid FEN")

// ParseFEN builds a board from the placement field of fen and returns the
// descriptor of the side to move. Castling rights, the en passant square and
// the clocks are accepted but not stored: the board has no use for them.
func ParseFEN(fen string) (*Board, *Side, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return nil, nil, fmt.Errorf("%w: need placement and side to move", ErrFEN)
	}

	b := New()
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, nil, fmt.Errorf("%w: %d ranks", ErrFEN, len(ranks))
	}
	for i, rankStr := range ranks {
		if len(rankStr) == 0 {
			return nil, nil, fmt.Errorf("%w: empty rank description", ErrFEN)
		}
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece := pieceFromChar(ch)
			if piece == NoPiece {
				return nil, nil, fmt.Errorf("%w: unrecognized piece character %q", ErrFEN, ch)
			}
			if file >= 8 {
				return nil, nil, fmt.Errorf("%w: too many squares in rank %d", ErrFEN, rank+1)
			}
			b.Put(NewSquare(file, rank), piece)
			file++
		}
		if file != 8 {
			return nil, nil, fmt.Errorf("%w: rank %d does not have 8 columns", ErrFEN, rank+1)
		}
	}

	switch fields[1] {
	case "w":
		return b, WhiteSide, nil
	case "b":
		return b, BlackSide, nil
	default:
		return nil, nil, fmt.Errorf("%w: side to move must be 'w' or 'b', got %q", ErrFEN, fields[1])
	}
}

// FEN returns the piece placement field of the board.
func (b *Board) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.squares[NewSquare(file, rank)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(pieceChar(p))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
