package catalog

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/MikeMC777/snackshop/internal/events"
)

// Registry owns the live Browser of every session.
type Registry struct {
	src   Source
	limit int

	mu       sync.Mutex
	browsers map[string]*entry
	now      func() time.Time
}

type entry struct {
	b        *Browser
	lastUsed time.Time
}

func NewRegistry(src Source, limit int) *Registry {
	return &Registry{src: src, limit: limit, browsers: make(map[string]*entry), now: time.Now}
}

// Get returns the session's browser, creating it on first use.
func (r *Registry) Get(sid string) *Browser {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.browsers[sid]
	if !ok {
		e = &entry{b: NewBrowser(r.src, r.limit)}
		r.browsers[sid] = e
	}
	e.lastUsed = r.now()
	return e.b
}

func (r *Registry) Forget(sid string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.browsers, sid)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.browsers)
}

// Sweep drops browsers unused for longer than maxIdle.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.now().Add(-maxIdle)
	n := 0
	for sid, e := range r.browsers {
		if e.lastUsed.Before(cutoff) {
			delete(r.browsers, sid)
			n++
		}
	}
	return n
}

// RefreshAll refetches every loaded browser. Failures are logged and skipped.
func (r *Registry) RefreshAll(ctx context.Context) int {
	r.mu.Lock()
	live := make([]*Browser, 0, len(r.browsers))
	for _, e := range r.browsers {
		live = append(live, e.b)
	}
	r.mu.Unlock()

	n := 0
	for _, b := range live {
		if !b.Loaded() {
			continue
		}
		if _, err := b.Refresh(ctx); err != nil {
			log.Printf("[catalog] refresh failed: %v", err)
			continue
		}
		n++
	}
	return n
}

const (
	resubscribeMin = time.Second
	resubscribeMax = time.Minute
)

// Watch refreshes all browsers whenever a data-changed event arrives and
// sweeps idle ones every maxIdle/2. A closed event stream is resubscribed
// with backoff; sweeping goes on meanwhile. It returns when ctx ends.
func (r *Registry) Watch(ctx context.Context, bus events.Bus, maxIdle time.Duration) {
	if maxIdle <= 0 {
		maxIdle = 30 * time.Minute
	}
	ch, cancel := bus.Subscribe(ctx)
	defer func() { cancel() }()

	tick := time.NewTicker(maxIdle / 2)
	defer tick.Stop()

	var retry <-chan time.Time
	backoff := resubscribeMin

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ch:
			if !ok {
				cancel()
				ch, cancel = nil, func() {}
				log.Printf("[catalog] event stream closed, resubscribing in %s", backoff)
				retry = time.After(backoff)
				backoff = min(backoff*2, resubscribeMax)
				continue
			}
			backoff = resubscribeMin
			if ev.Kind != events.KindDataChanged {
				continue
			}
			n := r.RefreshAll(ctx)
			log.Printf("[catalog] %s %s/%s refreshed=%d", ev.Kind, ev.Entity, ev.ID, n)
		case <-retry:
			retry = nil
			ch, cancel = bus.Subscribe(ctx)
		case <-tick.C:
			if n := r.Sweep(maxIdle); n > 0 {
				log.Printf("[catalog] swept %d idle browsers", n)
			}
		}
	}
}
