package movegen

import (
	"github.com/dylhunn/dragontoothmg"

	"chess-core/board"
)

// Dragontooth wraps a dragontoothmg board. Its moves only carry squares and
// the promotion piece, so categories come from Classify.
type Dragontooth struct {
	board   dragontoothmg.Board
	unapply []func()
}

// NewDragontooth sets up a dragontoothmg board at fen.
func NewDragontooth(fen string) *Dragontooth {
	return &Dragontooth{
		board:   dragontoothmg.ParseFen(fen),
		unapply: make([]func(), 0, 64),
	}
}

func (d *Dragontooth) Name() string { return NameDragontooth }

func (d *Dragontooth) Moves(b *board.Board, s *board.Side, dst []board.Move) []board.Move {
	for _, nm := range d.board.GenerateLegalMoves() {
		from := board.Square(nm.From())
		to := board.Square(nm.To())
		dst = append(dst, Classify(b, s, from, to, board.PieceType(nm.Promote())))
	}
	return dst
}

func (d *Dragontooth) Play(m board.Move) {
	var nm dragontoothmg.Move
	nm.Setfrom(dragontoothmg.Square(m.From())).Setto(dragontoothmg.Square(m.To()))
	if pt := m.Flag().PromotionType(); pt != board.NoPieceType {
		// dragontoothmg numbers piece types the same way as board.PieceType.
		nm.Setpromote(dragontoothmg.Piece(pt))
	}
	d.unapply = append(d.unapply, d.board.Apply(nm))
}

func (d *Dragontooth) Takeback() {
	n := len(d.unapply)
	if n == 0 {
		panic("Dragontooth.Takeback: nothing to take back")
	}
	undo := d.unapply[n-1]
	d.unapply = d.unapply[:n-1]
	undo()
}

// Occupancy returns dragontoothmg's view of the occupied squares.
func (d *Dragontooth) Occupancy() uint64 {
	return d.board.White.All | d.board.Black.All
}
