package catalog

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/snackshop/internal/events"
)

func TestRegistry_GetIsPerSession(t *testing.T) {
	r := NewRegistry(&countingSource{}, 4)
	a := r.Get("a")
	assert.Same(t, a, r.Get("a"))
	assert.NotSame(t, a, r.Get("b"))
	assert.Equal(t, 2, r.Len())

	r.Forget("a")
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_Sweep(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(&countingSource{}, 4)
	r.now = func() time.Time { return now }

	r.Get("old")
	now = now.Add(time.Hour)
	r.Get("new")

	assert.Equal(t, 1, r.Sweep(30*time.Minute))
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_RefreshAllSkipsUnloaded(t *testing.T) {
	src := &countingSource{perCat: 2, pages: 1, total: 2}
	r := NewRegistry(src, 4)
	_, err := r.Get("a").SelectCategory(context.Background(), "Salty")
	require.NoError(t, err)
	r.Get("b")

	assert.Equal(t, 1, r.RefreshAll(context.Background()))
	assert.Equal(t, 2, src.callCount())
}

func TestRegistry_WatchRefreshesOnDataChanged(t *testing.T) {
	src := &countingSource{perCat: 2, pages: 1, total: 2}
	r := NewRegistry(src, 4)
	_, err := r.Get("a").SelectCategory(context.Background(), "Salty")
	require.NoError(t, err)

	bus := events.NewLocalBus()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Watch(ctx, bus, time.Hour)
		close(done)
	}()

	// wait for the subscription before publishing
	require.Eventually(t, func() bool {
		bus.Publish(ctx, events.Event{Kind: "other"})
		bus.Publish(ctx, events.DataChanged("product", "p1"))
		return src.callCount() >= 2
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

// deadBus hands out event streams that are already closed.
type deadBus struct {
	subs atomic.Int32
}

func (b *deadBus) Publish(context.Context, events.Event) error { return nil }

func (b *deadBus) Subscribe(context.Context) (<-chan events.Event, func()) {
	b.subs.Add(1)
	ch := make(chan events.Event)
	close(ch)
	return ch, func() {}
}

func TestRegistry_WatchSurvivesClosedStream(t *testing.T) {
	r := NewRegistry(&countingSource{}, 4)
	r.Get("idle")

	bus := &deadBus{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Watch(ctx, bus, 20*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return r.Len() == 0 }, time.Second, 5*time.Millisecond)
	select {
	case <-done:
		t.Fatal("Watch returned while ctx was live")
	default:
	}
	require.Eventually(t, func() bool { return bus.subs.Load() >= 2 }, 3*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
