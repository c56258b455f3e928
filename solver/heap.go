package solver

import "github.com/kmarius/dplls/internal/assert"

// maxHeap is a 1-indexed max-heap over variable indices. Index 0 is an
// unused sentinel so that a variable's heapPos of 0 unambiguously means "not
// in the heap" (spec §4.1). The heap does not own priorities: it asks the
// active heuristic to compare two variables by whatever fields that
// heuristic cares about, so any code that changes a priority-affecting
// field must sift the affected variable itself.
type maxHeap struct {
	s     *Solver
	items []int // items[0] is unused; variables live at items[1:]
}

func newMaxHeap(s *Solver) *maxHeap {
	return &maxHeap{s: s, items: []int{0}}
}

func (h *maxHeap) len() int {
	return len(h.items) - 1
}

func (h *maxHeap) greater(a, b int) bool {
	return h.s.greaterThan(a, b)
}

// peek returns the variable at the root (the current max), or noVar if the
// heap is empty.
func (h *maxHeap) peek() int {
	if h.len() == 0 {
		return noVar
	}
	return h.items[1]
}

// insert appends v and sifts it up into place.
func (h *maxHeap) insert(v int) {
	h.items = append(h.items, v)
	pos := len(h.items) - 1
	h.s.variables[v].heapPos = pos
	h.siftUp(pos)
}

// remove takes v out of the heap: swap with the tail, pop, then sift the
// displaced element down from v's old slot.
func (h *maxHeap) remove(v int) {
	pos := h.s.variables[v].heapPos
	assert.That(pos > 0 && pos < len(h.items) && h.items[pos] == v, "remove(%d): heapPos out of sync", v)
	last := len(h.items) - 1

	h.swap(pos, last)
	h.items = h.items[:last]
	h.s.variables[v].heapPos = 0

	if pos <= h.len() {
		h.siftDown(pos)
		h.siftUp(pos)
	}
}

func (h *maxHeap) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.s.variables[h.items[i]].heapPos = i
	h.s.variables[h.items[j]].heapPos = j
}

// siftUpVar sifts a variable already present in the heap up from its
// current position. Used by activity bookkeeping after a priority increase.
func (h *maxHeap) siftUpVar(v int) {
	h.siftUp(h.s.variables[v].heapPos)
}

// siftDownVar sifts a variable already present in the heap down from its
// current position. Used by activity bookkeeping after a priority decrease.
func (h *maxHeap) siftDownVar(v int) {
	h.siftDown(h.s.variables[v].heapPos)
}

func (h *maxHeap) siftUp(i int) {
	for i > 1 {
		parent := i / 2
		if !h.greater(h.items[i], h.items[parent]) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *maxHeap) siftDown(i int) {
	n := h.len()
	for {
		left, right := 2*i, 2*i+1
		largest := i

		if left <= n && h.greater(h.items[left], h.items[largest]) {
			largest = left
		}
		if right <= n && h.greater(h.items[right], h.items[largest]) {
			largest = right
		}
		if largest == i {
			break
		}
		h.swap(i, largest)
		i = largest
	}
}
