package board

type stackEntry struct {
	move Move
	side *Side
}

// Stack records applied moves so they can be undone in strict LIFO order.
type Stack struct {
	entries []stackEntry
}

// NewStack returns a stack with room for capacity plies before it grows.
func NewStack(capacity int) *Stack {
	return &Stack{entries: make([]stackEntry, 0, capacity)}
}

// Push applies m for side s and records it.
func (st *Stack) Push(b *Board, m Move, s *Side) {
	b.Apply(m, s)
	st.entries = append(st.entries, stackEntry{move: m, side: s})
}

// Pop undoes the last pushed move and returns it with the side that played it.
// It panics if the stack is empty.
func (st *Stack) Pop(b *Board) (Move, *Side) {
	n := len(st.entries)
	if n == 0 {
		panic("Stack.Pop: empty stack")
	}
	e := st.entries[n-1]
	st.entries = st.entries[:n-1]
	b.Undo(e.move, e.side)
	return e.move, e.side
}

// Len returns the number of moves currently applied through the stack.
func (st *Stack) Len() int { return len(st.entries) }

// Last returns the most recent move, or NoMove when the stack is empty.
func (st *Stack) Last() Move {
	if len(st.entries) == 0 {
		return NoMove
	}
	return st.entries[len(st.entries)-1].move
}

// Unwind pops every recorded move, leaving b as it was before the first Push.
func (st *Stack) Unwind(b *Board) {
	for len(st.entries) > 0 {
		st.Pop(b)
	}
}
