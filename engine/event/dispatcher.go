// Package event provides a typed publish/subscribe registry used by controls and input hosts.
package event

import (
	"sync"
	"sync/atomic"
)

// SubscriptionID identifies a single handler registration. IDs are unique per process.
type SubscriptionID uint64

// subscriptionCount is an atomic counter used to hand out unique subscription IDs.
var subscriptionCount atomic.Uint64

// Handler receives a dispatched event.
type Handler[E any] func(e E)

type subscription[E any] struct {
	id      SubscriptionID
	handler Handler[E]

	// removed is set by Unsubscribe so dispatches already in progress skip the handler
	removed *atomic.Bool
}

// Dispatcher is a registry of handlers keyed by event kind.
// Handlers for a kind are invoked synchronously in registration order.
// Safe for concurrent use; handlers are invoked without the registry lock held, so a handler
// may subscribe or unsubscribe during dispatch. A handler subscribed during a dispatch first runs on
// the next one; a handler unsubscribed during a dispatch is not called again, even by the
// dispatch in progress.
type Dispatcher[K comparable, E any] struct {
	mu       *sync.Mutex
	handlers map[K][]subscription[E]
}

// NewDispatcher creates an empty Dispatcher.
//
// Returns:
//   - *Dispatcher[K, E]: the new dispatcher
func NewDispatcher[K comparable, E any]() *Dispatcher[K, E] {
	return &Dispatcher[K, E]{
		mu:       &sync.Mutex{},
		handlers: make(map[K][]subscription[E]),
	}
}

// Subscribe registers a handler for the given kind.
// A nil handler is ignored and yields the zero SubscriptionID.
//
// Parameters:
//   - kind: the event kind to listen for
//   - handler: the function invoked on dispatch
//
// Returns:
//   - SubscriptionID: the token used to remove this exact registration
func (d *Dispatcher[K, E]) Subscribe(kind K, handler Handler[E]) SubscriptionID {
	if handler == nil {
		return 0
	}
	id := SubscriptionID(subscriptionCount.Add(1))

	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[kind] = append(d.handlers[kind], subscription[E]{id: id, handler: handler, removed: &atomic.Bool{}})
	return id
}

// Unsubscribe removes the registration identified by id from the given kind.
//
// Parameters:
//   - kind: the event kind the handler was registered for
//   - id: the token returned by Subscribe
//
// Returns:
//   - bool: true if a registration was removed
func (d *Dispatcher[K, E]) Unsubscribe(kind K, id SubscriptionID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	subs := d.handlers[kind]
	for i, s := range subs {
		if s.id != id {
			continue
		}
		s.removed.Store(true)
		// copy-on-write so an in-flight Dispatch keeps its snapshot
		next := make([]subscription[E], 0, len(subs)-1)
		next = append(next, subs[:i]...)
		next = append(next, subs[i+1:]...)
		if len(next) == 0 {
			delete(d.handlers, kind)
		} else {
			d.handlers[kind] = next
		}
		return true
	}
	return false
}

// Dispatch invokes every handler registered for kind, in registration order.
//
// Parameters:
//   - kind: the event kind
//   - e: the event value passed to each handler
func (d *Dispatcher[K, E]) Dispatch(kind K, e E) {
	d.mu.Lock()
	subs := d.handlers[kind]
	d.mu.Unlock()

	for _, s := range subs {
		if s.removed.Load() {
			continue
		}
		s.handler(e)
	}
}

// Count returns the number of handlers registered for kind.
//
// Parameters:
//   - kind: the event kind
//
// Returns:
//   - int: number of active registrations
func (d *Dispatcher[K, E]) Count(kind K) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.handlers[kind])
}
