package notify

import (
	"sync"

	"github.com/google/uuid"
)

// WatchlistChanged is the one signal the broadcaster carries. It has no
// payload; subscribers re-query the store to learn the new state.
const WatchlistChanged = "watchlist changed"

// Broadcaster fans a named signal out to all current subscribers.
// Publishing is fire-and-forget: a slow or absent subscriber never
// blocks the writer, it just misses the tick and catches up on the next
// one.
type Broadcaster struct {
	mu          sync.Mutex
	subscribers map[string]chan string
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan string),
	}
}

// Subscribe registers a listener and returns its channel plus a cancel
// func. The channel is buffered with capacity one; consecutive signals
// coalesce while the subscriber is busy.
func (b *Broadcaster) Subscribe() (<-chan string, func()) {
	id := uuid.NewString()
	ch := make(chan string, 1)

	b.mu.Lock()
	b.subscribers[id] = ch
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if existing, ok := b.subscribers[id]; ok {
			delete(b.subscribers, id)
			close(existing)
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers the signal to every subscriber that has buffer room.
func (b *Broadcaster) Publish(signal string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subscribers {
		select {
		case ch <- signal:
		default:
		}
	}
}
