package events

import (
	"sync"
)

const defaultBufferSize = 256

// Publisher is the producer side of the bus, implemented by *Bus
type Publisher interface {
	// Publish broadcasts an event to every live subscriber without blocking
	Publish(ev Event)
}

// Config holds configuration for the event bus
type Config struct {
	// BufferSize is the per-subscriber channel capacity
	BufferSize int
}

// Bus is an in-process broadcast channel. Every subscriber gets its own
// bounded buffer; a subscriber that cannot keep up loses its backlog and
// resumes from the newest event, so producers never block and memory never
// grows unbounded. Delivery is at-most-once by design: the dashboard can
// always re-fetch authoritative state from the store.
type Bus struct {
	mu     sync.Mutex
	subs   map[*Subscriber]struct{}
	buffer int
}

// Subscriber is one consumer of the broadcast
type Subscriber struct {
	bus *Bus
	ch  chan Event
}

// New creates a new event bus
func New(cfg *Config) *Bus {
	buffer := defaultBufferSize
	if cfg != nil && cfg.BufferSize > 0 {
		buffer = cfg.BufferSize
	}

	return &Bus{
		subs:   make(map[*Subscriber]struct{}),
		buffer: buffer,
	}
}

// Publish broadcasts an event to every live subscriber without blocking
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for sub := range b.subs {
		select {
		case sub.ch <- ev:
		default:
			// Lagging consumer: skip its backlog so it resumes from the
			// newest event instead of blocking the producer.
			b.drain(sub)
			select {
			case sub.ch <- ev:
			default:
			}
		}
	}
}

// Subscribe registers a new consumer on the broadcast
func (b *Bus) Subscribe() *Subscriber {
	sub := &Subscriber{
		bus: b,
		ch:  make(chan Event, b.buffer),
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[sub] = struct{}{}

	return sub
}

// drain empties a subscriber's buffer. Caller holds b.mu, so no concurrent
// publish can be refilling it; concurrent reads by the consumer only help.
func (b *Bus) drain(sub *Subscriber) {
	for {
		select {
		case <-sub.ch:
		default:
			return
		}
	}
}

// Events is the channel this subscriber receives on. It is closed when the
// subscriber is closed.
func (s *Subscriber) Events() <-chan Event {
	return s.ch
}

// Close removes the subscriber from the bus and closes its channel
func (s *Subscriber) Close() {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()

	if _, ok := s.bus.subs[s]; !ok {
		return
	}

	delete(s.bus.subs, s)
	close(s.ch)
}
