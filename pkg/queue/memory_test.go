package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryQueue(t *testing.T) {
	q := NewInMemoryQueue[int](2)

	assert.True(t, q.Enqueue(1))
	assert.True(t, q.Enqueue(2))
	assert.False(t, q.Enqueue(3), "queue should be full")
	assert.Equal(t, 2, q.Size())

	item, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, 1, item)

	assert.True(t, q.Enqueue(4))
	assert.Equal(t, []int{2, 4}, q.ReadAllMessages())
	assert.Equal(t, 0, q.Size())

	_, ok = q.Dequeue()
	assert.False(t, ok)
}

func TestInMemoryQueue_unbounded(t *testing.T) {
	q := NewInMemoryQueue[string](0)
	for i := 0; i < 100; i++ {
		assert.True(t, q.Enqueue("x"))
	}
	assert.Equal(t, 100, q.Size())
	q.ClearQueue()
	assert.Equal(t, 0, q.Size())
}
