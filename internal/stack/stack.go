// Package stack provides the bounded LIFO used by the parser to track
// in-progress elements and attributes. Capacity is fixed at creation and
// is the maximum combined element and attribute nesting depth.
package stack

import "errors"

// ErrFull is returned by Push when the stack is at capacity.
var ErrFull = errors.New("stack full")

// Bounded is a fixed-capacity LIFO stack.
type Bounded[T any] struct {
	items []T
	cap   int
}

// NewBounded creates a stack holding at most capacity values.
func NewBounded[T any](capacity int) *Bounded[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Bounded[T]{items: make([]T, 0, capacity), cap: capacity}
}

// Push adds one value to the stack top. It fails if the stack is full.
func (s *Bounded[T]) Push(value T) error {
	if len(s.items) >= s.cap {
		return ErrFull
	}
	s.items = append(s.items, value)
	return nil
}

// Pop removes and returns the top value.
func (s *Bounded[T]) Pop() (T, bool) {
	var zero T
	if s == nil || len(s.items) == 0 {
		return zero, false
	}
	last := len(s.items) - 1
	value := s.items[last]
	s.items[last] = zero
	s.items = s.items[:last]
	return value, true
}

// Peek returns the top value without removing it.
func (s *Bounded[T]) Peek() (T, bool) {
	var zero T
	if s == nil || len(s.items) == 0 {
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Len reports the current stack depth.
func (s *Bounded[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Cap reports the fixed capacity.
func (s *Bounded[T]) Cap() int {
	if s == nil {
		return 0
	}
	return s.cap
}

// Reset clears the stack while retaining capacity.
func (s *Bounded[T]) Reset() {
	if s == nil {
		return
	}
	clear(s.items)
	s.items = s.items[:0]
}
