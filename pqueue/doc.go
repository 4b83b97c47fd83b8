// Package pqueue provides keyed min-priority queues used as the search
// frontier by the dijkstra package.
//
// A queue is built from two functions:
//
//   - key(T) K           extracts the identity of an item; at most one item per
//     key lives in the queue, and membership, lookup, update and removal all go
//     through the key only.
//   - less(a, b T) bool  orders items; Pop returns the least item.
//
// Keeping the key separate from the ordering means an item's priority can change
// (decrease-key) without affecting its identity.
//
// Implementations:
//
//   - NewHeap: indexed binary heap over container/heap. Push, Pop, Update and
//     Remove are O(log n); Get and Contains are O(1).
//   - NewList: insertion-ordered slice with linear scans. Every operation is
//     O(n). Among equal items Pop returns the earliest inserted one. It is the
//     simple baseline and a reference for cross-checking the heap.
//
// Errors:
//
//	ErrDuplicateKey - Push of a key that is already queued; use Update instead.
//
// Neither implementation is safe for concurrent use.
package pqueue
