// SPDX-License-Identifier: MIT
//
// File: queue.go
// Role: the capability contract shared by the priority structures.

package dijkstra

// Queue is a min-priority structure keyed by Node.Distance.
//
//   - Insert adds a node that is not currently queued.
//   - ExtractMin removes and returns a node of minimum distance, or
//     ErrEmptyStructure when nothing extractable remains.
//   - DecreaseKey repositions a queued node right after its distance was lowered.
//   - Len reports the number of queued nodes.
//
// Order among nodes of equal distance is unspecified.
type Queue interface {
	Insert(n *Node)
	ExtractMin() (*Node, error)
	DecreaseKey(n *Node)
	Len() int
}

var (
	_ Queue = (*BinaryHeap)(nil)
	_ Queue = (*BucketQueue)(nil)
)
