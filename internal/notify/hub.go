package notify

import (
	"context"
	"sync"
)

// Hub fans notices out to in-process subscribers such as SSE streams.
// Slow subscribers whose buffer is full miss the notice instead of
// blocking the publisher.
type Hub struct {
	mu     sync.Mutex
	subs   map[chan Notice]struct{}
	buffer int
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 10
	}
	return &Hub{subs: make(map[chan Notice]struct{}), buffer: buffer}
}

// Subscribe registers a new subscriber. The returned func unregisters it
// and closes the channel; it is safe to call more than once.
func (h *Hub) Subscribe() (<-chan Notice, func()) {
	ch := make(chan Notice, h.buffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
}

func (h *Hub) Notify(_ context.Context, n Notice) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- n:
		default:
		}
	}
	return nil
}

func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
