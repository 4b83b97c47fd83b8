package pqueue

import (
	"container/heap"
	"fmt"
)

// slot is one heap cell; index tracks its position so Fix/Remove can find it.
type slot[T any] struct {
	item  T
	index int
}

// slots implements heap.Interface over *slot, keeping index in sync on Swap.
type slots[T any] struct {
	data []*slot[T]
	less func(a, b T) bool
}

func (s *slots[T]) Len() int { return len(s.data) }
func (s *slots[T]) Less(i, j int) bool { return s.less(s.data[i].item, s.data[j].item) }
func (s *slots[T]) Swap(i, j int) {
	s.data[i], s.data[j] = s.data[j], s.data[i]
	s.data[i].index = i
	s.data[j].index = j
}

// Push is called by heap.Push; x must be *slot[T].
func (s *slots[T]) Push(x any) {
	sl := x.(*slot[T])
	sl.index = len(s.data)
	s.data = append(s.data, sl)
}

// Pop is called by heap.Pop and returns the last cell.
func (s *slots[T]) Pop() any {
	old := s.data
	n := len(old)
	sl := old[n-1]
	old[n-1] = nil
	s.data = old[:n-1]
	sl.index = -1

	return sl
}

// Heap is an indexed binary min-heap keyed by K.
type Heap[K comparable, T any] struct {
	key  func(T) K
	h    slots[T]
	byID map[K]*slot[T]
}

// NewHeap returns an empty indexed heap.
func NewHeap[K comparable, T any](key func(T) K, less func(a, b T) bool) *Heap[K, T] {
	return &Heap[K, T]{
		key:  key,
		h:    slots[T]{less: less},
		byID: make(map[K]*slot[T]),
	}
}

// Len returns the number of queued items.
func (q *Heap[K, T]) Len() int { return q.h.Len() }

// Push inserts item in O(log n).
func (q *Heap[K, T]) Push(item T) error {
	k := q.key(item)
	if _, ok := q.byID[k]; ok {
		return fmt.Errorf("Heap.Push(%v): %w", k, ErrDuplicateKey)
	}
	sl := &slot[T]{item: item}
	q.byID[k] = sl
	heap.Push(&q.h, sl)

	return nil
}

// Pop removes the least item in O(log n).
func (q *Heap[K, T]) Pop() (T, bool) {
	var zero T
	if q.h.Len() == 0 {
		return zero, false
	}
	sl := heap.Pop(&q.h).(*slot[T])
	delete(q.byID, q.key(sl.item))

	return sl.item, true
}

// Peek returns the least item in O(1).
func (q *Heap[K, T]) Peek() (T, bool) {
	var zero T
	if q.h.Len() == 0 {
		return zero, false
	}

	return q.h.data[0].item, true
}

// Get returns the item queued under k in O(1).
func (q *Heap[K, T]) Get(k K) (T, bool) {
	sl, ok := q.byID[k]
	if !ok {
		var zero T
		return zero, false
	}

	return sl.item, true
}

// Contains reports whether k is queued.
func (q *Heap[K, T]) Contains(k K) bool {
	_, ok := q.byID[k]

	return ok
}

// Remove deletes the item queued under k in O(log n).
func (q *Heap[K, T]) Remove(k K) (T, bool) {
	sl, ok := q.byID[k]
	if !ok {
		var zero T
		return zero, false
	}
	heap.Remove(&q.h, sl.index)
	delete(q.byID, k)

	return sl.item, true
}

// Update swaps in item for the entry with the same key and re-heapifies
// from its position (heap.Fix) in O(log n).
func (q *Heap[K, T]) Update(item T) bool {
	sl, ok := q.byID[q.key(item)]
	if !ok {
		return false
	}
	sl.item = item
	heap.Fix(&q.h, sl.index)

	return true
}
