package movegen

import (
	"fmt"

	"github.com/notnil/chess"

	"chess-core/board"
)

// Notnil wraps notnil/chess. Its positions are immutable, so Play pushes the
// successor position and Takeback drops it.
type Notnil struct {
	positions []*chess.Position
}

// NewNotnil sets up a notnil/chess position at fen.
func NewNotnil(fen string) (*Notnil, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("notnil/chess: %w", err)
	}
	game := chess.NewGame(opt)
	positions := make([]*chess.Position, 1, 64)
	positions[0] = game.Position()
	return &Notnil{positions: positions}, nil
}

func (n *Notnil) Name() string { return NameNotnil }

func (n *Notnil) top() *chess.Position { return n.positions[len(n.positions)-1] }

func (n *Notnil) Moves(_ *board.Board, _ *board.Side, dst []board.Move) []board.Move {
	pos := n.top()
	for _, nm := range pos.ValidMoves() {
		dst = append(dst, fromNotnil(pos, nm))
	}
	return dst
}

func fromNotnil(pos *chess.Position, nm *chess.Move) board.Move {
	from := board.Square(nm.S1())
	to := board.Square(nm.S2())
	moved := pieceFromNotnil(pos.Board().Piece(nm.S1()))
	target := pieceFromNotnil(pos.Board().Piece(nm.S2()))

	switch {
	case nm.HasTag(chess.KingSideCastle):
		return board.NewMove(from, to, board.ShortCastle, board.NoPiece)
	case nm.HasTag(chess.QueenSideCastle):
		return board.NewMove(from, to, board.LongCastle, board.NoPiece)
	case nm.HasTag(chess.EnPassant):
		return board.NewMove(from, to, board.EnPassant, board.NewPiece(moved.Color().Other(), board.Pawn))
	case nm.Promo() != chess.NoPieceType:
		return board.NewMove(from, to, board.PromotionFlag(pieceTypeFromNotnil(nm.Promo()), target != board.NoPiece), target)
	case nm.HasTag(chess.Capture):
		return board.NewMove(from, to, board.Capture, target)
	case moved.Type() == board.Pawn && abs(int(to-from)) == 16:
		return board.NewMove(from, to, board.PawnDouble, board.NoPiece)
	default:
		return board.NewMove(from, to, board.Quiet, board.NoPiece)
	}
}

func (n *Notnil) Play(m board.Move) {
	pos := n.top()
	nm := findNotnil(pos, m)
	if nm == nil {
		panic(fmt.Sprintf("Notnil.Play: %v is illegal in %s", m, pos))
	}
	n.positions = append(n.positions, pos.Update(nm))
}

func findNotnil(pos *chess.Position, m board.Move) *chess.Move {
	from, to := chess.Square(m.From()), chess.Square(m.To())
	promo := notnilPieceType(m.Flag().PromotionType())
	for _, nm := range pos.ValidMoves() {
		if nm.S1() == from && nm.S2() == to && nm.Promo() == promo {
			return nm
		}
	}
	return nil
}

func (n *Notnil) Takeback() {
	if len(n.positions) == 1 {
		panic("Notnil.Takeback: nothing to take back")
	}
	n.positions = n.positions[:len(n.positions)-1]
}

// Placement returns notnil's FEN placement field.
func (n *Notnil) Placement() string { return n.top().Board().String() }

func pieceTypeFromNotnil(pt chess.PieceType) board.PieceType {
	switch pt {
	case chess.Pawn:
		return board.Pawn
	case chess.Knight:
		return board.Knight
	case chess.Bishop:
		return board.Bishop
	case chess.Rook:
		return board.Rook
	case chess.Queen:
		return board.Queen
	case chess.King:
		return board.King
	default:
		return board.NoPieceType
	}
}

func notnilPieceType(pt board.PieceType) chess.PieceType {
	switch pt {
	case board.Pawn:
		return chess.Pawn
	case board.Knight:
		return chess.Knight
	case board.Bishop:
		return chess.Bishop
	case board.Rook:
		return chess.Rook
	case board.Queen:
		return chess.Queen
	case board.King:
		return chess.King
	default:
		return chess.NoPieceType
	}
}

func pieceFromNotnil(p chess.Piece) board.Piece {
	if p == chess.NoPiece {
		return board.NoPiece
	}
	c := board.White
	if p.Color() == chess.Black {
		c = board.Black
	}
	return board.NewPiece(c, pieceTypeFromNotnil(p.Type()))
}

// FromNotnil converts a notnil/chess move played from pos, for callers that
// already hold notnil moves, such as decoded PGN games.
func FromNotnil(pos *chess.Position, nm *chess.Move) board.Move { return fromNotnil(pos, nm) }
