package keymap

// Handler receives a key string and reports whether it consumed it.
type Handler func(key string) bool

type subscription struct {
	id      uint64
	handler Handler
}

// Bus routes key events to scoped subscribers, most recent first.
// It is the terminal counterpart of a document-level key listener: a
// component subscribes while it is interested in keys and calls the
// returned function to stop receiving them. Bus is not safe for concurrent
// use; it lives on the bubbletea event loop.
type Bus struct {
	subs   []subscription
	nextID uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers h and returns its unsubscribe function.
// Calling the unsubscribe function more than once is a no-op.
func (b *Bus) Subscribe(h Handler) (unsubscribe func()) {
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, handler: h})
	return func() { b.remove(id) }
}

func (b *Bus) remove(id uint64) {
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Dispatch offers key to subscribers from the most recent to the oldest
// and stops at the first one that consumes it. Handlers may unsubscribe
// themselves (or others) while being dispatched to.
func (b *Bus) Dispatch(key string) bool {
	snapshot := make([]subscription, len(b.subs))
	copy(snapshot, b.subs)
	for i := len(snapshot) - 1; i >= 0; i-- {
		if !b.active(snapshot[i].id) {
			continue
		}
		if snapshot[i].handler(key) {
			return true
		}
	}
	return false
}

func (b *Bus) active(id uint64) bool {
	for _, s := range b.subs {
		if s.id == id {
			return true
		}
	}
	return false
}

// Len returns the number of active subscriptions.
func (b *Bus) Len() int {
	return len(b.subs)
}

// Active reports whether any subscriber is registered.
func (b *Bus) Active() bool {
	return len(b.subs) > 0
}
