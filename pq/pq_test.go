package pq_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/pq"
)

type node struct {
	id   string
	dist float64
}

func byID(n node) string { return n.id }

// TestQueue_Order pops random priorities in ascending order.
func TestQueue_Order(t *testing.T) {
	q := pq.New[int](0)
	rng := rand.New(rand.NewSource(7))
	var want []float64
	for i := 0; i < 200; i++ {
		p := rng.Float64() * 100
		want = append(want, p)
		assert.True(t, q.Push(p, i))
	}
	sort.Float64s(want)

	for _, w := range want {
		it, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, w, it.Priority)
	}
	assert.Zero(t, q.Len())
}

// TestQueue_Duplicates keeps every push, including repeated payloads.
func TestQueue_Duplicates(t *testing.T) {
	q := pq.New[node](4)
	q.Push(5, node{id: "X", dist: 5})
	q.Push(2, node{id: "X", dist: 2})
	require.Equal(t, 2, q.Len())

	top, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, 2.0, top.Priority)

	first, _ := q.Pop()
	second, _ := q.Pop()
	assert.Equal(t, "X", first.Value.id)
	assert.Equal(t, 2.0, first.Priority)
	assert.Equal(t, 5.0, second.Priority)
}

// TestQueue_Empty returns ErrEmpty rather than panicking.
func TestQueue_Empty(t *testing.T) {
	q := pq.New[int](0)
	_, err := q.Pop()
	assert.ErrorIs(t, err, pq.ErrEmpty)
	_, err = q.Peek()
	assert.ErrorIs(t, err, pq.ErrEmpty)
}

// TestDedup_FirstWriteWins pushes X at 5 then at 2: only the first entry stays.
func TestDedup_FirstWriteWins(t *testing.T) {
	d := pq.NewDedup[node, string](4, byID)
	assert.True(t, d.Push(5, node{id: "X", dist: 5}))
	assert.False(t, d.Push(2, node{id: "X", dist: 2}))
	require.Equal(t, 1, d.Len())
	assert.True(t, d.Contains("X"))

	it, err := d.Pop()
	require.NoError(t, err)
	assert.Equal(t, 5.0, it.Priority)
	assert.Equal(t, 5.0, it.Value.dist)
	assert.False(t, d.Contains("X"))

	_, err = d.Pop()
	assert.ErrorIs(t, err, pq.ErrEmpty)
}

// TestDedup_ReinsertAfterPop accepts a key again once its entry left the queue.
func TestDedup_ReinsertAfterPop(t *testing.T) {
	d := pq.NewDedup[node, string](0, byID)
	d.Push(1, node{id: "A"})
	d.Push(3, node{id: "B"})
	it, _ := d.Pop()
	require.Equal(t, "A", it.Value.id)

	assert.True(t, d.Push(4, node{id: "A"}))
	assert.False(t, d.Push(0, node{id: "B"}))

	var order []string
	for d.Len() > 0 {
		it, err := d.Pop()
		require.NoError(t, err)
		order = append(order, it.Value.id)
	}
	assert.Equal(t, []string{"B", "A"}, order)
}
