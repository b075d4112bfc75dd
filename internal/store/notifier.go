package store

import "sync"

// Notifier is the change-notification registry owned by a record store.
// Publish invokes current subscribers synchronously, in registration order,
// on the caller's goroutine. Missed events are not replayed: an observer
// that subscribes after a publish sees nothing until the next change.
type Notifier struct {
	mu     sync.Mutex
	nextID int
	subs   []subscription
}

type subscription struct {
	id int
	fn func()
}

// NewNotifier creates an empty registry.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers fn and returns a deregistration func. Unsubscribing
// is idempotent and does not affect other subscriptions.
func (n *Notifier) Subscribe(fn func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.subs = append(n.subs, subscription{id: id, fn: fn})

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		for i, sub := range n.subs {
			if sub.id == id {
				n.subs = append(n.subs[:i], n.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish invokes every current subscriber once, in registration order.
func (n *Notifier) Publish() {
	n.mu.Lock()
	snapshot := make([]subscription, len(n.subs))
	copy(snapshot, n.subs)
	n.mu.Unlock()

	// Called outside the lock so an observer may subscribe or unsubscribe
	// from within its callback.
	for _, sub := range snapshot {
		sub.fn()
	}
}
