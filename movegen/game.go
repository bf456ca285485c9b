package movegen

import (
	"errors"
	"fmt"

	"chess-core/board"
)

// ErrMismatch reports that the board and its generator disagree after a
// move was applied or undone.
var ErrMismatch = errors.New("movegen: board and generator disagree")

// occupier is implemented by generators that expose their occupied squares.
type occupier interface {
	Occupancy() uint64
}

// Game keeps a board.Board and a Generator in step. Push applies a move to
// both and Pop undoes it on both.
type Game struct {
	board *board.Board
	side  *board.Side
	gen   Generator
	stack *board.Stack
	bufs  [][]board.Move
}

// NewGame sets up fen on a fresh board and on the named generator.
func NewGame(fen, genName string) (*Game, error) {
	gen, err := NewGenerator(genName, fen)
	if err != nil {
		return nil, err
	}
	return NewGameWith(fen, gen)
}

// NewGameWith pairs a board parsed from fen with an existing generator that
// must already be set up at the same position.
func NewGameWith(fen string, gen Generator) (*Game, error) {
	b, s, err := board.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{
		board: b,
		side:  s,
		gen:   gen,
		stack: board.NewStack(64),
	}, nil
}

func (g *Game) Board() *board.Board { return g.board }

// Side returns the side to move.
func (g *Game) Side() *board.Side { return g.side }

func (g *Game) Generator() Generator { return g.gen }

// Ply returns the number of moves pushed.
func (g *Game) Ply() int { return g.stack.Len() }

// Moves returns the legal moves of the current position.
func (g *Game) Moves() []board.Move { return g.gen.Moves(g.board, g.side, nil) }

// movesAt fills the buffer reserved for ply so recursion does not allocate.
func (g *Game) movesAt(ply int) []board.Move {
	for len(g.bufs) <= ply {
		g.bufs = append(g.bufs, make([]board.Move, 0, 64))
	}
	g.bufs[ply] = g.gen.Moves(g.board, g.side, g.bufs[ply][:0])
	return g.bufs[ply]
}

// Push plays m for the side to move.
func (g *Game) Push(m board.Move) {
	g.stack.Push(g.board, m, g.side)
	g.gen.Play(m)
	g.side = g.side.Other()
}

// Pop takes back the last move and returns it. It panics when no move has
// been pushed.
func (g *Game) Pop() board.Move {
	m, s := g.stack.Pop(g.board)
	g.gen.Takeback()
	g.side = s
	return m
}

// Perft counts the leaf nodes of the legal move tree to depth.
func (g *Game) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := g.movesAt(g.Ply())
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		g.Push(m)
		nodes += g.Perft(depth - 1)
		g.Pop()
	}
	return nodes
}

// Divide returns the perft count below each root move, keyed by the move in
// UCI notation.
func (g *Game) Divide(depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth <= 0 {
		return out
	}
	for _, m := range g.Moves() {
		g.Push(m)
		out[m.String()] = g.Perft(depth - 1)
		g.Pop()
	}
	return out
}

// VerifiedPerft is Perft with the board validated after every Push and Pop.
// After each Pop the board must equal the snapshot taken before the Push, and
// when the generator reports its own placement or occupancy that must match
// the board as well. The first failure is returned with the game restored to
// the position VerifiedPerft started from.
func (g *Game) VerifiedPerft(depth int) (uint64, error) {
	if err := g.check(board.NoMove, "start"); err != nil {
		return 0, err
	}
	return g.verifiedPerft(depth)
}

func (g *Game) verifiedPerft(depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	moves := g.movesAt(g.Ply())
	var nodes uint64
	for _, m := range moves {
		before := *g.board
		g.Push(m)
		if err := g.check(m, "apply"); err != nil {
			g.Pop()
			return nodes, err
		}
		n, err := g.verifiedPerft(depth - 1)
		nodes += n
		g.Pop()
		if err != nil {
			return nodes, err
		}
		if *g.board != before {
			return nodes, fmt.Errorf("%w: undo %v (%v) did not restore %s", ErrMismatch, m, m.Flag(), before.FEN())
		}
		if err := g.check(m, "undo"); err != nil {
			return nodes, err
		}
	}
	return nodes, nil
}

func (g *Game) check(m board.Move, stage string) error {
	if err := g.board.Validate(); err != nil {
		return fmt.Errorf("%w: %s %v (%v): %w", ErrMismatch, stage, m, m.Flag(), err)
	}
	if p, ok := g.gen.(placer); ok {
		if want, got := p.Placement(), g.board.FEN(); want != got {
			return fmt.Errorf("%w: %s %v (%v): %s placement %s, board %s", ErrMismatch, stage, m, m.Flag(), g.gen.Name(), want, got)
		}
	}
	if o, ok := g.gen.(occupier); ok {
		if want, got := o.Occupancy(), g.board.Occupancy(board.AllPieces); want != got {
			return fmt.Errorf("%w: %s %v (%v): %s occupancy %#x, board %#x", ErrMismatch, stage, m, m.Flag(), g.gen.Name(), want, got)
		}
	}
	return nil
}
