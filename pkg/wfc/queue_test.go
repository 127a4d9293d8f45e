package wfc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueueFIFOOrder(t *testing.T) {
	q := newQueue(3)
	q.Push(2)
	q.Push(0)
	q.Push(1)

	require.Equal(t, 2, q.Pop())
	require.Equal(t, 0, q.Pop())
	require.Equal(t, 1, q.Pop())
	require.True(t, q.Empty())
}

func TestQueueHasMembership(t *testing.T) {
	q := newQueue(3)
	q.Push(1)
	require.True(t, q.Has(1))
	require.False(t, q.Has(2))
	q.Pop()
	require.False(t, q.Has(1))
}

func TestQueueCheckpointRestore(t *testing.T) {
	q := newQueue(4)
	q.Push(0)
	cp := q.Checkpoint()
	q.Push(1)
	q.Push(2)
	require.False(t, q.Empty())

	q.Restore(cp)
	require.Equal(t, 0, q.Pop())
	require.True(t, q.Empty())
}

func TestQueuePushDuplicatePanics(t *testing.T) {
	q := newQueue(4)
	q.Push(1)
	require.Panics(t, func() { q.Push(1) })
}

func TestQueuePushFullPanics(t *testing.T) {
	q := newQueue(1)
	q.Push(1)
	require.Panics(t, func() { q.Push(2) })
}

func TestQueuePopEmptyPanics(t *testing.T) {
	q := newQueue(1)
	require.Panics(t, func() { q.Pop() })
}
