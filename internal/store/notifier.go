package store

import "sync"

// Notifier fans state snapshots out to subscribers.
type Notifier[S any] struct {
	mu   sync.Mutex
	next int
	subs map[int]func(S)
}

// Subscribe registers fn and returns a func that removes it.
func (n *Notifier[S]) Subscribe(fn func(S)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.subs == nil {
		n.subs = make(map[int]func(S))
	}
	id := n.next
	n.next++
	n.subs[id] = fn
	return func() {
		n.mu.Lock()
		delete(n.subs, id)
		n.mu.Unlock()
	}
}

// Publish calls every subscriber with s. It must not be called while holding
// the owning store's lock.
func (n *Notifier[S]) Publish(s S) {
	n.mu.Lock()
	fns := make([]func(S), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()
	for _, fn := range fns {
		fn(s)
	}
}
