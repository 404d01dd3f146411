// Package events carries the "data changed" signal that admin mutations
// broadcast so storefront views refetch.
package events

import (
	"context"
	"sync"
	"time"
)

const KindDataChanged = "db:changed"

type Event struct {
	Kind   string    `json:"kind"`
	Entity string    `json:"entity,omitempty"`
	ID     string    `json:"id,omitempty"`
	At     time.Time `json:"at"`
}

func DataChanged(entity, id string) Event {
	return Event{Kind: KindDataChanged, Entity: entity, ID: id, At: time.Now().UTC()}
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

type Bus interface {
	Publisher
	// Subscribe returns a channel of events and a func that ends the subscription.
	Subscribe(ctx context.Context) (<-chan Event, func())
}

// LocalBus fans events out in process. A subscriber whose buffer is full misses the event.
type LocalBus struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
	size int
}

func NewLocalBus() *LocalBus {
	return &LocalBus{subs: make(map[chan Event]struct{}), size: 16}
}

func (b *LocalBus) Publish(_ context.Context, ev Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	return nil
}

func (b *LocalBus) Subscribe(ctx context.Context) (<-chan Event, func()) {
	ch := make(chan Event, b.size)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	done := make(chan struct{})
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, ch)
			close(ch)
			b.mu.Unlock()
			close(done)
		})
	}
	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-done:
		}
	}()
	return ch, cancel
}
