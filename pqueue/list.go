package pqueue

import "fmt"

// List is an insertion-ordered queue that finds the minimum by linear scan.
type List[K comparable, T any] struct {
	key   func(T) K
	less  func(a, b T) bool
	items []T
}

// NewList returns an empty linear-scan queue.
func NewList[K comparable, T any](key func(T) K, less func(a, b T) bool) *List[K, T] {
	return &List[K, T]{key: key, less: less}
}

// Len returns the number of queued items.
func (q *List[K, T]) Len() int { return len(q.items) }

// find returns the slice position of k, or -1.
func (q *List[K, T]) find(k K) int {
	for i := range q.items {
		if q.key(q.items[i]) == k {
			return i
		}
	}

	return -1
}

// min returns the position of the first least item, or -1 when empty.
func (q *List[K, T]) min() int {
	if len(q.items) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(q.items); i++ {
		if q.less(q.items[i], q.items[best]) {
			best = i
		}
	}

	return best
}

// removeAt deletes position i keeping insertion order.
func (q *List[K, T]) removeAt(i int) T {
	item := q.items[i]
	q.items = append(q.items[:i], q.items[i+1:]...)

	return item
}

// Push appends item in O(n) (duplicate-key scan).
func (q *List[K, T]) Push(item T) error {
	k := q.key(item)
	if q.find(k) >= 0 {
		return fmt.Errorf("List.Push(%v): %w", k, ErrDuplicateKey)
	}
	q.items = append(q.items, item)

	return nil
}

// Pop removes the least item; ties go to the earliest inserted.
func (q *List[K, T]) Pop() (T, bool) {
	i := q.min()
	if i < 0 {
		var zero T
		return zero, false
	}

	return q.removeAt(i), true
}

// Peek returns the least item without removing it.
func (q *List[K, T]) Peek() (T, bool) {
	i := q.min()
	if i < 0 {
		var zero T
		return zero, false
	}

	return q.items[i], true
}

// Get returns the item queued under k.
func (q *List[K, T]) Get(k K) (T, bool) {
	i := q.find(k)
	if i < 0 {
		var zero T
		return zero, false
	}

	return q.items[i], true
}

// Contains reports whether k is queued.
func (q *List[K, T]) Contains(k K) bool { return q.find(k) >= 0 }

// Remove deletes the item queued under k.
func (q *List[K, T]) Remove(k K) (T, bool) {
	i := q.find(k)
	if i < 0 {
		var zero T
		return zero, false
	}

	return q.removeAt(i), true
}

// Update removes the entry sharing key(item) and appends item, so a
// re-prioritised entry ranks after older entries of equal priority.
func (q *List[K, T]) Update(item T) bool {
	i := q.find(q.key(item))
	if i < 0 {
		return false
	}
	q.removeAt(i)
	q.items = append(q.items, item)

	return true
}
