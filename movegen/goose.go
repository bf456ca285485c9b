package movegen

import (
	"fmt"
	"strings"

	"github.com/Oliverans/GooseEngineMG/goosemg"

	"chess-core/board"
)

type gooseState struct {
	move goosemg.Move
	st   goosemg.MoveState
}

// Goose wraps a goosemg board. goosemg moves carry the moved and captured
// pieces and castle/en passant flags, so they translate without Classify.
type Goose struct {
	board  *goosemg.Board
	states []gooseState
	buf    []goosemg.Move
}

// NewGoose sets up a goosemg board at fen.
func NewGoose(fen string) (*Goose, error) {
	b, err := goosemg.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("goosemg: %w", err)
	}
	return &Goose{
		board:  b,
		states: make([]gooseState, 0, 64),
		buf:    make([]goosemg.Move, 0, 128),
	}, nil
}

func (g *Goose) Name() string { return NameGoose }

func (g *Goose) Moves(_ *board.Board, _ *board.Side, dst []board.Move) []board.Move {
	g.buf = g.board.GenerateMovesInto(g.buf[:0])
	for _, nm := range g.buf {
		dst = append(dst, fromGoose(nm))
	}
	return dst
}

// goosemg encodes pieces exactly like board: type in the low three bits and
// 8 for Black, so concrete pieces convert directly.
func fromGoose(nm goosemg.Move) board.Move {
	from := board.Square(nm.From())
	to := board.Square(nm.To())
	moved := board.Piece(nm.MovedPiece())
	captured := board.Piece(nm.CapturedPiece())

	switch {
	case nm.Flags() == goosemg.FlagCastle:
		if to.File() == 6 {
			return board.NewMove(from, to, board.ShortCastle, board.NoPiece)
		}
		return board.NewMove(from, to, board.LongCastle, board.NoPiece)
	case nm.Flags() == goosemg.FlagEnPassant:
		return board.NewMove(from, to, board.EnPassant, board.NewPiece(moved.Color().Other(), board.Pawn))
	case nm.PromotionPieceType() != goosemg.PieceTypeNone:
		pt := board.PieceType(nm.PromotionPieceType())
		return board.NewMove(from, to, board.PromotionFlag(pt, captured != board.NoPiece), captured)
	case captured != board.NoPiece:
		return board.NewMove(from, to, board.Capture, captured)
	case moved.Type() == board.Pawn && abs(int(to-from)) == 16:
		return board.NewMove(from, to, board.PawnDouble, board.NoPiece)
	default:
		return board.NewMove(from, to, board.Quiet, board.NoPiece)
	}
}

func (g *Goose) Play(m board.Move) {
	from := goosemg.Square(m.From())
	to := goosemg.Square(m.To())
	moved := g.board.PieceAt(from)
	captured := goosemg.NoPiece
	promo := goosemg.NoPiece
	var flag uint8 = goosemg.FlagNone

	switch f := m.Flag(); {
	case f.IsCastle():
		flag = goosemg.FlagCastle
	case f == board.EnPassant:
		flag = goosemg.FlagEnPassant
		captured = goosemg.PieceFromType(moved.Color()^1, goosemg.PieceTypePawn)
	default:
		captured = g.board.PieceAt(to)
	}
	if pt := m.Flag().PromotionType(); pt != board.NoPieceType {
		promo = goosemg.PieceFromType(moved.Color(), goosemg.PieceType(pt))
	}

	nm := goosemg.NewMove(from, to, moved, captured, promo, flag)
	ok, st := g.board.MakeMove(nm)
	if !ok {
		panic(fmt.Sprintf("Goose.Play: %v is illegal in %s", m, g.board.ToFEN()))
	}
	g.states = append(g.states, gooseState{move: nm, st: st})
}

func (g *Goose) Takeback() {
	n := len(g.states)
	if n == 0 {
		panic("Goose.Takeback: nothing to take back")
	}
	last := g.states[n-1]
	g.states = g.states[:n-1]
	g.board.UnmakeMove(last.move, last.st)
}

// Placement returns goosemg's FEN placement field.
func (g *Goose) Placement() string {
	return strings.Fields(g.board.ToFEN())[0]
}
