// Package movegen connects third-party legal move generators to the board
// package. Each Generator keeps its own native position in step with a
// board.Board and reports legal moves as board.Move values, so the board's
// Apply and Undo can be driven over a whole game tree and cross-checked.
package movegen

import (
	"errors"
	"fmt"

	"chess-core/board"
)

// ErrUnknownGenerator is returned by NewGenerator for an unregistered name.
var ErrUnknownGenerator = errors.New("movegen: unknown generator")

// Generator produces legal moves for a position it tracks itself.
//
// Moves appends the legal moves of the current position to dst. b and s are
// the caller's board and side to move, which must describe the same position;
// generators whose native moves lack the category use them to classify.
// Play and Takeback mirror Apply and Undo on the generator's own position.
type Generator interface {
	Name() string
	Moves(b *board.Board, s *board.Side, dst []board.Move) []board.Move
	Play(m board.Move)
	Takeback()
}

// placer is implemented by generators that can report their placement field,
// which lets verification compare piece placement and not only node counts.
type placer interface {
	Placement() string
}

const (
	NameDragontooth = "dragontooth"
	NameGoose       = "goose"
	NameNotnil      = "notnil"
)

// Names lists the registered generators.
func Names() []string {
	return []string{NameDragontooth, NameGoose, NameNotnil}
}

// NewGenerator builds the named generator set up at fen.
func NewGenerator(name, fen string) (Generator, error) {
	switch name {
	case NameDragontooth:
		return NewDragontooth(fen), nil
	case NameGoose:
		return NewGoose(fen)
	case NameNotnil:
		return NewNotnil(fen)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
}

// Classify builds the board.Move for a from/to/promotion triple by inspecting
// the board before the move: a king stepping onto a castle descriptor's
// destination is a castle, a pawn moving two ranks is a double advance, and a
// pawn moving diagonally onto an empty square captures en passant.
func Classify(b *board.Board, s *board.Side, from, to board.Square, promo board.PieceType) board.Move {
	target := b.PieceAt(to)
	if promo != board.NoPieceType {
		return board.NewMove(from, to, board.PromotionFlag(promo, target != board.NoPiece), target)
	}

	switch b.PieceAt(from) {
	case s.King:
		if from == s.KingSide.KingPre && to == s.KingSide.KingPost {
			return board.NewMove(from, to, board.ShortCastle, board.NoPiece)
		}
		if from == s.QueenSide.KingPre && to == s.QueenSide.KingPost {
			return board.NewMove(from, to, board.LongCastle, board.NoPiece)
		}
	case s.Pawn:
		if to-from == 2*s.Forward {
			return board.NewMove(from, to, board.PawnDouble, board.NoPiece)
		}
		if target == board.NoPiece && to.File() != from.File() {
			return board.NewMove(from, to, board.EnPassant, s.OppPawn)
		}
	}

	if target != board.NoPiece {
		return board.NewMove(from, to, board.Capture, target)
	}
	return board.NewMove(from, to, board.Quiet, board.NoPiece)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
