package vm

import (
	"fmt"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/stackitem"
)

// Stack is a LIFO of stack items backed by a slice, with index 0 of the
// underlying slice holding the stack's bottom, matching teacher's
// append-to-push/truncate-to-pop model.
type Stack struct {
	elems []stackitem.Item
}

// NewStack returns an empty Stack.
func NewStack() *Stack {
	return &Stack{elems: make([]stackitem.Item, 0, 16)}
}

// Len reports the number of items on the stack.
func (s *Stack) Len() int { return len(s.elems) }

// Push pushes an item onto the top of the stack.
func (s *Stack) Push(it stackitem.Item) {
	s.elems = append(s.elems, it)
}

// Pop removes and returns the top item.
func (s *Stack) Pop() (stackitem.Item, error) {
	if len(s.elems) == 0 {
		return nil, fmt.Errorf("%w: pop from empty stack", ErrStackUnderflow)
	}
	it := s.elems[len(s.elems)-1]
	s.elems = s.elems[:len(s.elems)-1]
	return it, nil
}

// Peek returns the item n positions from the top (0 = top) without
// removing it.
func (s *Stack) Peek(n int) (stackitem.Item, error) {
	idx := len(s.elems) - 1 - n
	if idx < 0 || idx >= len(s.elems) {
		return nil, fmt.Errorf("%w: peek(%d) out of range", ErrStackUnderflow, n)
	}
	return s.elems[idx], nil
}

// Remove removes and returns the item n positions from the top (0 = top),
// shifting items above it down (ROLL, XDROP).
func (s *Stack) Remove(n int) (stackitem.Item, error) {
	idx := len(s.elems) - 1 - n
	if idx < 0 || idx >= len(s.elems) {
		return nil, fmt.Errorf("%w: remove(%d) out of range", ErrStackUnderflow, n)
	}
	it := s.elems[idx]
	s.elems = append(s.elems[:idx], s.elems[idx+1:]...)
	return it, nil
}

// Insert inserts it at n positions from the top (0 = top becomes it,
// pushing the previous top down), used by XTUCK/TUCK.
func (s *Stack) Insert(n int, it stackitem.Item) error {
	idx := len(s.elems) - n
	if idx < 0 || idx > len(s.elems) {
		return fmt.Errorf("%w: insert(%d) out of range", ErrStackUnderflow, n)
	}
	s.elems = append(s.elems, nil)
	copy(s.elems[idx+1:], s.elems[idx:])
	s.elems[idx] = it
	return nil
}

// Swap exchanges the items at positions m and n from the top.
func (s *Stack) Swap(m, n int) error {
	im, in := len(s.elems)-1-m, len(s.elems)-1-n
	if im < 0 || im >= len(s.elems) || in < 0 || in >= len(s.elems) {
		return fmt.Errorf("%w: swap(%d,%d) out of range", ErrStackUnderflow, m, n)
	}
	s.elems[im], s.elems[in] = s.elems[in], s.elems[im]
	return nil
}
