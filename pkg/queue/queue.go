package queue

// Queue represents a basic FIFO queue.
type Queue[T any] interface {
	Enqueue(item T) bool
	Dequeue() (T, bool)
	Size() int
	ReadAllMessages() []T
	ClearQueue()
}
