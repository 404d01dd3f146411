package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/MikeMC777/snackshop/internal/session"
)

// Service loads, mutates and saves a session's cart. Operations on the same
// session are serialized.
type Service struct {
	store session.Store

	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func NewService(store session.Store) *Service {
	return &Service{store: store, locks: make(map[string]*sessionLock)}
}

func (s *Service) Get(ctx context.Context, sid string) (*Cart, error) {
	unlock := s.lock(sid)
	defer unlock()
	return s.load(ctx, sid)
}

func (s *Service) Add(ctx context.Context, sid string, it Item) (*Cart, error) {
	return s.mutate(ctx, sid, func(c *Cart) error { return c.Add(it) })
}

func (s *Service) Remove(ctx context.Context, sid, id string) (*Cart, error) {
	return s.mutate(ctx, sid, func(c *Cart) error {
		c.Remove(id)
		return nil
	})
}

func (s *Service) Clear(ctx context.Context, sid string) (*Cart, error) {
	unlock := s.lock(sid)
	defer unlock()
	if err := s.store.Delete(ctx, sid, session.KeyCart); err != nil {
		log.Printf("[cart] clear sid=%s: %v", sid, err)
		return nil, err
	}
	return New(), nil
}

func (s *Service) mutate(ctx context.Context, sid string, fn func(*Cart) error) (*Cart, error) {
	unlock := s.lock(sid)
	defer unlock()

	c, err := s.load(ctx, sid)
	if err != nil {
		return nil, err
	}
	if err := fn(c); err != nil {
		return nil, err
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal cart failed: %w", err)
	}
	if err := s.store.Set(ctx, sid, session.KeyCart, raw); err != nil {
		log.Printf("[cart] save sid=%s: %v", sid, err)
		return nil, err
	}
	return c, nil
}

func (s *Service) load(ctx context.Context, sid string) (*Cart, error) {
	raw, err := s.store.Get(ctx, sid, session.KeyCart)
	if errors.Is(err, session.ErrNotFound) {
		return New(), nil
	}
	if err != nil {
		return nil, err
	}
	c := New()
	if err := json.Unmarshal(raw, c); err != nil {
		log.Printf("[cart] discarding unreadable cart sid=%s: %v", sid, err)
		return New(), nil
	}
	return c, nil
}

func (s *Service) lock(sid string) func() {
	s.mu.Lock()
	l, ok := s.locks[sid]
	if !ok {
		l = &sessionLock{}
		s.locks[sid] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, sid)
		}
		s.mu.Unlock()
	}
}
