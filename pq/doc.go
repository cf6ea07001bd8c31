// Package pq provides the two min-priority queues a grid search orders its
// frontier with.
//
//   - Queue is a plain binary min-heap: every Push inserts, so the same payload
//     may sit in the heap several times with different priorities. Consumers
//     skip stale entries themselves ("lazy decrease-key").
//   - Dedup holds at most one entry per key: a Push for a key already present
//     is a no-op, even when the new priority is lower. The first-seen priority
//     wins until that entry is popped.
//
// Ties are broken arbitrarily. Pop and Peek on an empty queue return ErrEmpty.
//
// Complexity: Push/Pop O(log n), Len/Peek/Contains O(1).
package pq
