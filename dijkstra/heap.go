// SPDX-License-Identifier: MIT
//
// File: heap.go
// Role: index-aware binary min-heap over *Node.
//
// Layout: elements[1..size] hold the heap; elements[0] is unused so that the
// parent of i is i/2 and its children are 2i and 2i+1. Every write of a node
// into a slot also writes the slot number into node.index, which is what lets
// DecreaseKey start from the node's position instead of searching for it.

package dijkstra

// defaultHeapCapacity is the initial capacity when NewBinaryHeap gets n < 1.
const defaultHeapCapacity = 10

// BinaryHeap is a 1-indexed binary min-heap ordered by Node.Distance.
type BinaryHeap struct {
	elements []*Node
	size     int
}

// NewBinaryHeap returns an empty heap with room for capacity nodes.
func NewBinaryHeap(capacity int) *BinaryHeap {
	if capacity < 1 {
		capacity = defaultHeapCapacity
	}

	return &BinaryHeap{elements: make([]*Node, capacity+1)}
}

// Len returns the number of nodes in the heap.
func (h *BinaryHeap) Len() int { return h.size }

// Min returns the root without removing it, or nil when empty.
func (h *BinaryHeap) Min() *Node {
	if h.size == 0 {
		return nil
	}
	return h.elements[1]
}

// Insert appends n and percolates it up. The backing array doubles when full.
// Complexity: O(log n) amortized.
func (h *BinaryHeap) Insert(n *Node) {
	if h.size+1 >= len(h.elements) {
		grown := make([]*Node, 2*len(h.elements))
		copy(grown, h.elements)
		h.elements = grown
	}

	h.size++
	h.place(n, h.size)
	h.percolateUp(h.size)
}

// ExtractMin removes and returns the root.
// Complexity: O(log n).
func (h *BinaryHeap) ExtractMin() (*Node, error) {
	if h.size == 0 {
		return nil, ErrEmptyStructure
	}

	root := h.elements[1]
	last := h.elements[h.size]
	h.elements[h.size] = nil
	h.size--
	if h.size > 0 {
		h.place(last, 1)
		h.percolateDown(1)
	}
	root.index = 0

	return root, nil
}

// DecreaseKey moves n toward the root after its distance was lowered.
// n must currently be in this heap.
// Complexity: O(log n).
func (h *BinaryHeap) DecreaseKey(n *Node) {
	h.percolateUp(n.index)
}

// place writes n into slot i and records the slot on the node.
func (h *BinaryHeap) place(n *Node, i int) {
	h.elements[i] = n
	n.index = i
}

// percolateUp sifts the node at slot i toward the root while it is strictly
// smaller than its parent.
func (h *BinaryHeap) percolateUp(i int) {
	n := h.elements[i]
	for i > 1 {
		parent := h.elements[i/2]
		if n.dist >= parent.dist {
			break
		}
		h.place(parent, i)
		i /= 2
	}
	h.place(n, i)
}

// percolateDown sifts the node at slot i toward the leaves, always following
// the smaller child (left on ties).
func (h *BinaryHeap) percolateDown(i int) {
	n := h.elements[i]
	for 2*i <= h.size {
		child := 2 * i
		if child != h.size && h.elements[child+1].dist < h.elements[child].dist {
			child++
		}
		if h.elements[child].dist >= n.dist {
			break
		}
		h.place(h.elements[child], i)
		i = child
	}
	h.place(n, i)
}
