package event

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/resonance-arena/parameter"
)

// EventQueue is a bounded FIFO of game events
// A full queue overwrites its oldest entry and counts the loss
type EventQueue struct {
	mu    sync.Mutex
	ring  [parameter.EventQueueSize]GameEvent
	start int
	count int

	dropped atomic.Int64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends ev, evicting the oldest pending event when full
func (q *EventQueue) Push(ev GameEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == parameter.EventQueueSize {
		q.ring[q.start] = GameEvent{}
		q.start = (q.start + 1) & parameter.EventBufferMask
		q.count--
		q.dropped.Add(1)
	}
	q.ring[(q.start+q.count)&parameter.EventBufferMask] = ev
	q.count++
}

// Consume drains every pending event in FIFO order, nil when empty
func (q *EventQueue) Consume() []GameEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == 0 {
		return nil
	}
	out := make([]GameEvent, q.count)
	for i := range out {
		idx := (q.start + i) & parameter.EventBufferMask
		out[i] = q.ring[idx]
		q.ring[idx] = GameEvent{}
	}
	q.start = (q.start + q.count) & parameter.EventBufferMask
	q.count = 0
	return out
}

// Len returns the pending event count
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// Dropped returns how many events were evicted by overflow
func (q *EventQueue) Dropped() int64 {
	return q.dropped.Load()
}
