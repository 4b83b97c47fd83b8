package pqueue

import "errors"

// ErrDuplicateKey indicates a Push for a key that is already queued.
var ErrDuplicateKey = errors.New("pqueue: key already queued")

// Queue is a min-priority queue holding at most one item per key.
type Queue[K comparable, T any] interface {
	// Len returns the number of queued items.
	Len() int

	// Push inserts item. It fails with ErrDuplicateKey when key(item) is queued.
	Push(item T) error

	// Pop removes and returns the least item; ok is false on an empty queue.
	Pop() (item T, ok bool)

	// Peek returns the least item without removing it.
	Peek() (item T, ok bool)

	// Get returns the queued item with key k.
	Get(k K) (item T, ok bool)

	// Contains reports whether an item with key k is queued.
	Contains(k K) bool

	// Remove deletes and returns the item with key k.
	Remove(k K) (item T, ok bool)

	// Update replaces the queued item sharing key(item) and restores ordering
	// (decrease-key or increase-key). It returns false when no such item exists.
	Update(item T) bool
}
