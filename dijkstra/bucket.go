// SPDX-License-Identifier: MIT
//
// File: bucket.go
// Role: Dial's bucket queue for bounded non-negative integer distances.
//
// buckets[d] holds the nodes whose tentative distance is exactly d. Nodes at
// Infinity are parked outside the array: they can only leave the parked set
// through DecreaseKey and are never extracted, so a run stops as soon as every
// reachable vertex is finalized. Within a bucket removal is swap-with-last,
// node.index tracking the slot.

package dijkstra

import "fmt"

// BucketQueue is a monotone bucket priority queue.
//
// The cursor only moves forward, so every key inserted after an extraction
// must be at least the last extracted key; Dijkstra over non-negative weights
// guarantees this.
type BucketQueue struct {
	buckets [][]*Node
	parked  []*Node
	cursor  int64
	queued  int // nodes inside buckets
}

// NewBucketQueue returns a queue accepting finite distances 0..maxDistance.
// Panics if maxDistance < 0.
func NewBucketQueue(maxDistance int64) *BucketQueue {
	if maxDistance < 0 {
		panic(fmt.Sprintf("dijkstra: bucket queue max distance %d < 0", maxDistance))
	}

	return &BucketQueue{buckets: make([][]*Node, maxDistance+1)}
}

// Len returns the number of queued nodes, parked ones included.
func (q *BucketQueue) Len() int { return q.queued + len(q.parked) }

// MaxDistance returns the largest finite key the queue accepts.
func (q *BucketQueue) MaxDistance() int64 { return int64(len(q.buckets)) - 1 }

// Insert files n under its distance.
// Complexity: O(1) amortized.
func (q *BucketQueue) Insert(n *Node) {
	if n.dist == Infinity {
		n.bucket = Infinity
		n.index = len(q.parked)
		q.parked = append(q.parked, n)
		return
	}

	q.checkKey(n.dist)
	n.bucket = n.dist
	n.index = len(q.buckets[n.dist])
	q.buckets[n.dist] = append(q.buckets[n.dist], n)
	q.queued++
}

// ExtractMin advances the cursor to the first non-empty bucket and removes
// one node from it.
// Complexity: O(1) amortized plus the cursor advance; O(D) over a whole run.
func (q *BucketQueue) ExtractMin() (*Node, error) {
	if q.queued == 0 {
		return nil, ErrEmptyStructure
	}
	for len(q.buckets[q.cursor]) == 0 {
		q.cursor++
	}

	bucket := q.buckets[q.cursor]
	n := bucket[len(bucket)-1]
	bucket[len(bucket)-1] = nil
	q.buckets[q.cursor] = bucket[:len(bucket)-1]
	q.queued--
	n.index = -1

	return n, nil
}

// DecreaseKey moves n from the bucket it was filed under to the bucket of its
// new distance.
// Complexity: O(1).
func (q *BucketQueue) DecreaseKey(n *Node) {
	q.checkKey(n.dist)
	if n.bucket == Infinity {
		q.parked = detach(q.parked, n.index)
	} else {
		q.buckets[n.bucket] = detach(q.buckets[n.bucket], n.index)
		q.queued--
	}

	q.Insert(n)
}

// checkKey panics on keys the queue cannot hold; the engine sizes the queue so
// that neither case is reachable.
func (q *BucketQueue) checkKey(d int64) {
	if d < q.cursor || d >= int64(len(q.buckets)) {
		panic(fmt.Sprintf("dijkstra: bucket key %d outside [%d, %d]", d, q.cursor, len(q.buckets)-1))
	}
}

// detach swap-removes slot i and fixes the index of the node moved into it.
func detach(list []*Node, i int) []*Node {
	last := len(list) - 1
	if i != last {
		list[i] = list[last]
		list[i].index = i
	}
	list[last] = nil

	return list[:last]
}
