// Package notify provides the in-process change broadcast consumed by
// presentation layers. The event carries no payload; subscribers re-query
// the store. Delivery is fire-and-forget and never load-bearing.
package notify

import "sync"

// Broadcaster implements secondary.ChangeNotifier with a mutex-guarded
// subscriber list.
type Broadcaster struct {
	mu          sync.Mutex
	subscribers []func()
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// Subscribe registers a callback invoked on every broadcast. Callbacks run
// synchronously on the broadcasting goroutine and must be quick.
func (b *Broadcaster) Subscribe(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
}

// Broadcast notifies every subscriber that something changed.
func (b *Broadcaster) Broadcast() {
	b.mu.Lock()
	subs := make([]func(), len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
