package pq

import (
	"container/heap"
	"errors"

	"github.com/zyedidia/generic/mapset"
)

// ErrEmpty is returned by Pop and Peek on an empty queue.
var ErrEmpty = errors.New("pq: queue is empty")

// Item is a payload with the priority it was pushed at.
type Item[T any] struct {
	Priority float64
	Value    T
}

// itemHeap implements heap.Interface, ordered by ascending Priority.
type itemHeap[T any] []Item[T]

// Len returns the number of items in the heap.
func (h itemHeap[T]) Len() int { return len(h) }

// Less orders by priority; smaller is served first.
func (h itemHeap[T]) Less(i, j int) bool { return h[i].Priority < h[j].Priority }

// Swap swaps two elements in the heap.
func (h itemHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x; called by heap.Push.
func (h *itemHeap[T]) Push(x interface{}) { *h = append(*h, x.(Item[T])) }

// Pop removes the last element; called by heap.Pop.
func (h *itemHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// Queue is a plain min-priority queue. It may hold duplicate payloads.
type Queue[T any] struct {
	items itemHeap[T]
}

// New returns an empty Queue with room for capacity items.
func New[T any](capacity int) *Queue[T] {
	q := &Queue[T]{items: make(itemHeap[T], 0, capacity)}
	heap.Init(&q.items)
	return q
}

// Len returns the number of queued entries, duplicates included.
func (q *Queue[T]) Len() int { return q.items.Len() }

// Push inserts v at priority. It always inserts and reports true.
func (q *Queue[T]) Push(priority float64, v T) bool {
	heap.Push(&q.items, Item[T]{Priority: priority, Value: v})
	return true
}

// Pop removes and returns the entry with the smallest priority.
func (q *Queue[T]) Pop() (Item[T], error) {
	if q.items.Len() == 0 {
		return Item[T]{}, ErrEmpty
	}
	return heap.Pop(&q.items).(Item[T]), nil
}

// Peek returns the entry with the smallest priority without removing it.
func (q *Queue[T]) Peek() (Item[T], error) {
	if q.items.Len() == 0 {
		return Item[T]{}, ErrEmpty
	}
	return q.items[0], nil
}

// Dedup is a min-priority queue holding at most one entry per key.
type Dedup[T any, K comparable] struct {
	q       Queue[T]
	key     func(T) K
	present mapset.Set[K]
}

// NewDedup returns an empty Dedup that identifies payloads by key.
func NewDedup[T any, K comparable](capacity int, key func(T) K) *Dedup[T, K] {
	return &Dedup[T, K]{
		q:       Queue[T]{items: make(itemHeap[T], 0, capacity)},
		key:     key,
		present: mapset.New[K](),
	}
}

// Len returns the number of queued entries.
func (d *Dedup[T, K]) Len() int { return d.q.Len() }

// Contains reports whether an entry for k is queued.
func (d *Dedup[T, K]) Contains(k K) bool { return d.present.Has(k) }

// Push inserts v at priority unless an entry with the same key is already
// queued. It reports whether v was inserted.
func (d *Dedup[T, K]) Push(priority float64, v T) bool {
	k := d.key(v)
	if d.present.Has(k) {
		return false
	}
	d.present.Put(k)
	d.q.Push(priority, v)
	return true
}

// Pop removes and returns the entry with the smallest priority, releasing its
// key for future pushes.
func (d *Dedup[T, K]) Pop() (Item[T], error) {
	it, err := d.q.Pop()
	if err != nil {
		return it, err
	}
	d.present.Remove(d.key(it.Value))
	return it, nil
}

// Peek returns the entry with the smallest priority without removing it.
func (d *Dedup[T, K]) Peek() (Item[T], error) { return d.q.Peek() }
