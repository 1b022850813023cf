// queue package

package queue

// InMemoryQueue implements a bounded in-memory FIFO queue.
// It is not safe for concurrent use; the game loop owns it.
type InMemoryQueue[T any] struct {
	items    []T
	capacity int
}

var _ Queue[int] = &InMemoryQueue[int]{}

// NewInMemoryQueue creates a new queue holding at most capacity items.
// A capacity of zero or less means the queue is unbounded.
func NewInMemoryQueue[T any](capacity int) *InMemoryQueue[T] {
	return &InMemoryQueue[T]{
		capacity: capacity,
	}
}

// Enqueue adds an item to the end of the queue.
// It returns false and drops the item if the queue is full.
func (q *InMemoryQueue[T]) Enqueue(item T) bool {
	if q.capacity > 0 && len(q.items) >= q.capacity {
		return false
	}
	q.items = append(q.items, item)
	return true
}

// Dequeue removes and returns the item from the front of the queue.
func (q *InMemoryQueue[T]) Dequeue() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	item := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	return item, true
}

// Size returns the current size of the queue.
func (q *InMemoryQueue[T]) Size() int {
	return len(q.items)
}

// ReadAllMessages removes and returns all pending items in the queue
func (q *InMemoryQueue[T]) ReadAllMessages() []T {
	items := q.items
	q.items = nil
	return items
}

// ClearQueue clears all items from the queue.
func (q *InMemoryQueue[T]) ClearQueue() {
	q.items = nil
}
