package snake

import (
	"github.com/cbodonnell/arcade/pkg/game/constants"
	"github.com/cbodonnell/arcade/pkg/game/types"
	"github.com/cbodonnell/arcade/pkg/queue"
)

// InputBuffer holds direction changes requested between steps.
// One change is applied per step, oldest first.
type InputBuffer struct {
	queue queue.Queue[types.Direction]
}

func NewInputBuffer() *InputBuffer {
	return &InputBuffer{
		queue: queue.NewInMemoryQueue[types.Direction](constants.InputBufferDepth),
	}
}

// Enqueue queues requested unless it reverses current.
// It reports whether the request was queued.
func (b *InputBuffer) Enqueue(requested, current types.Direction) bool {
	if !requested.Valid() || requested.IsOpposite(current) {
		return false
	}
	return b.queue.Enqueue(requested)
}

// Next pops the oldest queued direction, or returns current if none is pending.
func (b *InputBuffer) Next(current types.Direction) types.Direction {
	if d, ok := b.queue.Dequeue(); ok {
		return d
	}
	return current
}

func (b *InputBuffer) Pending() int {
	return b.queue.Size()
}

func (b *InputBuffer) Clear() {
	b.queue.ClearQueue()
}
