// Package heap provides a typed binary min-heap.
package heap

// MinHeap is an array-backed binary heap ordered by a caller-supplied less function.
//
// Ties are broken arbitrarily. Pop and Peek on an empty heap panic; callers are
// expected to check Len first.
type MinHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

// New creates an empty heap with room for capacity items before it grows.
func New[T any](capacity int, less func(a, b T) bool) *MinHeap[T] {
	return &MinHeap[T]{
		items: make([]T, 0, capacity),
		less:  less,
	}
}

// Len returns the number of items in the heap.
func (h *MinHeap[T]) Len() int {
	return len(h.items)
}

// Push inserts v in O(log n).
func (h *MinHeap[T]) Push(v T) {
	h.items = append(h.items, v)
	h.up(len(h.items) - 1)
}

// Pop removes and returns the minimum item in O(log n).
func (h *MinHeap[T]) Pop() T {
	n := len(h.items)
	if n == 0 {
		panic("heap: Pop called on empty heap")
	}

	top := h.items[0]
	last := n - 1
	h.items[0] = h.items[last]

	var zero T
	h.items[last] = zero
	h.items = h.items[:last]

	if last > 0 {
		h.down(0)
	}

	return top
}

// Peek returns the minimum item without removing it.
func (h *MinHeap[T]) Peek() T {
	if len(h.items) == 0 {
		panic("heap: Peek called on empty heap")
	}

	return h.items[0]
}

func (h *MinHeap[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.items[i], h.items[parent]) {
			return
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *MinHeap[T]) down(i int) {
	n := len(h.items)
	for {
		smallest := i
		left := 2*i + 1
		right := left + 1

		if left < n && h.less(h.items[left], h.items[smallest]) {
			smallest = left
		}
		if right < n && h.less(h.items[right], h.items[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}

		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
