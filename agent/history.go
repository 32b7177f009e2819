package agent

import "github.com/jerry930829/ML-pingpong/oerror"

// History is a fixed-capacity ring of the most recent values, oldest first.
type History[T any] struct {
	items []T
	head  int
	size  int
}

// NewHistory creates a history holding at most capacity values. A capacity
// below one holds a single value.
func NewHistory[T any](capacity int) *History[T] {
	return &History[T]{items: make([]T, max(capacity, 1))}
}

// Append adds a value, dropping the oldest one if the history is full.
func (h *History[T]) Append(v T) {
	tail := (h.head + h.size) % len(h.items)
	h.items[tail] = v
	if h.size == len(h.items) {
		h.head = (h.head + 1) % len(h.items)
	} else {
		h.size++
	}
}

// Get returns the value at index, 0 being the oldest.
func (h *History[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= h.size {
		return zero, oerror.New("history: index %d out of range [0, %d)", index, h.size)
	}
	return h.items[(h.head+index)%len(h.items)], nil
}

// Len returns the number of values held.
func (h *History[T]) Len() int {
	return h.size
}

// Clear drops every value.
func (h *History[T]) Clear() {
	clear(h.items)
	h.head, h.size = 0, 0
}
