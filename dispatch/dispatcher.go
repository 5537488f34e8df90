// Package dispatch provides a buffered, type-indexed event bus. Producers
// enqueue event values; Dispatch later delivers them, in order, to the
// listeners subscribed to each event's concrete type.
package dispatch

import "reflect"

// A Dispatcher buffers events and delivers them to typed subscribers.
//
// The zero value is not usable; create one with New.
type Dispatcher struct {
	listeners map[reflect.Type][]func(interface{})
	pending   []interface{}
}

// New creates an empty Dispatcher.
func New() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[reflect.Type][]func(interface{})),
	}
}

// Subscribe registers a listener for events of type T. Listeners for the same
// type are invoked in subscription order.
func Subscribe[T any](d *Dispatcher, listener func(T)) {
	key := reflect.TypeOf((*T)(nil)).Elem()
	d.listeners[key] = append(d.listeners[key], func(evt interface{}) {
		listener(evt.(T))
	})
}

// Enqueue buffers an event for later delivery. Events with no subscribers are
// silently discarded at dispatch time.
func (d *Dispatcher) Enqueue(evt interface{}) {
	d.pending = append(d.pending, evt)
}

// Publish delivers an event to its subscribers immediately, bypassing the
// buffer.
func (d *Dispatcher) Publish(evt interface{}) {
	d.deliver(evt)
}

// Dispatch delivers all buffered events in FIFO order and empties the buffer.
// Events enqueued by a listener during Dispatch are delivered in the same
// pass.
func (d *Dispatcher) Dispatch() {
	for len(d.pending) > 0 {
		evt := d.pending[0]
		d.pending = d.pending[1:]
		d.deliver(evt)
	}
}

// Pending returns the number of buffered events.
func (d *Dispatcher) Pending() int {
	return len(d.pending)
}

// Clear discards all buffered events without delivering them.
func (d *Dispatcher) Clear() {
	d.pending = nil
}

func (d *Dispatcher) deliver(evt interface{}) {
	for _, listener := range d.listeners[reflect.TypeOf(evt)] {
		listener(evt)
	}
}
