package core

import (
	"container/heap"

	"github.com/comalice/collisionx/internal/primitives"
)

// queuedEvent pairs an event with its insertion sequence for deterministic ties.
type queuedEvent struct {
	event primitives.Event
	seq   uint64
}

// eventHeap implements heap.Interface ordered by (Time, seq).
type eventHeap []queuedEvent

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].event.Before(h[j].event) {
		return true
	}
	if h[j].event.Before(h[i].event) {
		return false
	}
	// Earlier insertion first (FIFO for simultaneous events)
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) { *h = append(*h, x.(queuedEvent)) }

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// EventQueue is a time-ordered multiset of candidate events.
// Push and Pop are O(log n). Not safe for concurrent use.
type EventQueue struct {
	events eventHeap
	seq    uint64
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make(eventHeap, 0, 64)}
}

// Push inserts e.
func (q *EventQueue) Push(e primitives.Event) {
	heap.Push(&q.events, queuedEvent{event: e, seq: q.seq})
	q.seq++
}

// Pop removes and returns the earliest event.
func (q *EventQueue) Pop() (primitives.Event, bool) {
	if len(q.events) == 0 {
		return primitives.Event{}, false
	}
	return heap.Pop(&q.events).(queuedEvent).event, true
}

// Peek returns the earliest event without removing it.
func (q *EventQueue) Peek() (primitives.Event, bool) {
	if len(q.events) == 0 {
		return primitives.Event{}, false
	}
	return q.events[0].event, true
}

func (q *EventQueue) Len() int { return len(q.events) }

// Reset discards every queued event. The sequence counter keeps running.
func (q *EventQueue) Reset() {
	clear(q.events)
	q.events = q.events[:0]
}
