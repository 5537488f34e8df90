package sched

import (
	"container/heap"

	"github.com/sarchlab/ticksim/idgen"
)

// A TickQueue is a tick-ordered priority queue with tombstone cancellation.
// Entries are ordered by tick ascending, then priority descending, then
// insertion order, so same-tick same-priority entries drain deterministically
// in the order they were pushed.
//
// MarkCancelled only removes the ID from the active set; the entry stays in
// the backing heap until a PopDue reaches its tick. A queue that is cancelled
// heavily but drained rarely therefore accumulates tombstone memory.
type TickQueue[T any] struct {
	entries entryHeap[T]
	active  map[idgen.ID]struct{}
	nextSeq uint64
}

// NewTickQueue creates an empty TickQueue.
func NewTickQueue[T any]() *TickQueue[T] {
	q := &TickQueue[T]{
		active: make(map[idgen.ID]struct{}),
	}
	heap.Init(&q.entries)

	return q
}

// Push inserts a payload keyed by (tick, priority). The ID must be unique for
// the lifetime of the queue.
func (q *TickQueue[T]) Push(id idgen.ID, tick Tick, priority int, payload T) {
	entry := queueEntry[T]{
		id:       id,
		tick:     tick,
		priority: priority,
		seq:      q.nextSeq,
		payload:  payload,
	}
	q.nextSeq++

	heap.Push(&q.entries, entry)
	q.active[id] = struct{}{}
}

// MarkCancelled removes an ID from the active set in O(1). It returns true
// iff the ID was active. The heap entry becomes a tombstone that is discarded
// silently when popped.
func (q *TickQueue[T]) MarkCancelled(id idgen.ID) bool {
	if _, ok := q.active[id]; !ok {
		return false
	}

	delete(q.active, id)

	return true
}

// Active reports whether the ID is still pending.
func (q *TickQueue[T]) Active(id idgen.ID) bool {
	_, ok := q.active[id]
	return ok
}

// PopDue removes and returns the next active entry with tick <= now. Any
// tombstones encountered on the way are physically discarded. The removed
// entry leaves the active set, so it can never be returned twice.
func (q *TickQueue[T]) PopDue(now Tick) (idgen.ID, T, bool) {
	for q.entries.Len() > 0 && q.entries[0].tick <= now {
		entry := heap.Pop(&q.entries).(queueEntry[T])

		if _, ok := q.active[entry.id]; !ok {
			continue
		}

		delete(q.active, entry.id)

		return entry.id, entry.payload, true
	}

	var zero T

	return 0, zero, false
}

// Len returns the number of entries physically resident in the queue,
// including tombstones.
func (q *TickQueue[T]) Len() int {
	return q.entries.Len()
}

// NumActive returns the number of pending entries.
func (q *TickQueue[T]) NumActive() int {
	return len(q.active)
}

// Clear discards all entries, active and tombstoned alike.
func (q *TickQueue[T]) Clear() {
	q.entries = nil
	heap.Init(&q.entries)
	q.active = make(map[idgen.ID]struct{})
}

type queueEntry[T any] struct {
	id       idgen.ID
	tick     Tick
	priority int
	seq      uint64
	payload  T
}

type entryHeap[T any] []queueEntry[T]

// Len returns the number of entries in the heap.
func (h entryHeap[T]) Len() int {
	return len(h)
}

// Less orders entries by tick ascending, then priority descending, then
// insertion order.
func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].tick != h[j].tick {
		return h[i].tick < h[j].tick
	}

	if h[i].priority != h[j].priority {
		return h[i].priority > h[j].priority
	}

	return h[i].seq < h[j].seq
}

// Swap changes the position of two entries in the heap.
func (h entryHeap[T]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// Push adds an entry into the heap.
func (h *entryHeap[T]) Push(x interface{}) {
	entry := x.(queueEntry[T])
	*h = append(*h, entry)
}

// Pop removes and returns the entry with the smallest key.
func (h *entryHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[0 : n-1]

	return entry
}
