package events

import "sync"

// Broadcaster is a process-wide, payload-less signal fan-out. Listeners
// receive every Publish; delivery order among listeners is unspecified and
// duplicate signals are possible (two requests failing with 401 at the same
// time each publish), so listeners must be idempotent.
type Broadcaster struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

// Default is the broadcaster used for session-invalidation signals.
var Default = &Broadcaster{}

// Subscribe registers fn and returns a function that removes it again.
func (b *Broadcaster) Subscribe(fn func()) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs == nil {
		b.subs = make(map[int]func())
	}
	id := b.next
	b.next++
	b.subs[id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Publish invokes every subscriber. Callbacks run outside the lock so a
// listener may subscribe or unsubscribe without deadlocking.
func (b *Broadcaster) Publish() {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
