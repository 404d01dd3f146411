// Package session is the server-side stand-in for browser local storage:
// small values (cart, auth token, profile, recently viewed) keyed by session id.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var ErrNotFound = errors.New("session key not found")

// Well-known keys.
const (
	KeyCart   = "cart"
	KeyToken  = "token"
	KeyUser   = "user"
	KeyRecent = "recent"
)

type Store interface {
	Get(ctx context.Context, sid, key string) ([]byte, error)
	Set(ctx context.Context, sid, key string, value []byte) error
	Delete(ctx context.Context, sid, key string) error
	Clear(ctx context.Context, sid string) error
}

// MemoryStore keeps everything in process. Safe for concurrent use.
// Every read or write marks the session as used; Purge drops idle ones.
type MemoryStore struct {
	mu       sync.Mutex
	data     map[string]map[string][]byte
	lastUsed map[string]time.Time
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data:     make(map[string]map[string][]byte),
		lastUsed: make(map[string]time.Time),
		now:      time.Now,
	}
}

func (m *MemoryStore) Get(_ context.Context, sid, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[sid][key]
	if !ok {
		return nil, ErrNotFound
	}
	m.lastUsed[sid] = m.now()
	return append([]byte(nil), v...), nil
}

func (m *MemoryStore) Set(_ context.Context, sid, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kv, ok := m.data[sid]
	if !ok {
		kv = make(map[string][]byte)
		m.data[sid] = kv
	}
	kv[key] = append([]byte(nil), value...)
	m.lastUsed[sid] = m.now()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, sid, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data[sid], key)
	return nil
}

func (m *MemoryStore) Clear(_ context.Context, sid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, sid)
	delete(m.lastUsed, sid)
	return nil
}

// Purge removes sessions idle for longer than ttl and reports how many went.
func (m *MemoryStore) Purge(_ context.Context, ttl time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := m.now().Add(-ttl)
	var n int64
	for sid, at := range m.lastUsed {
		if at.Before(cutoff) {
			delete(m.data, sid)
			delete(m.lastUsed, sid)
			n++
		}
	}
	return n, nil
}

func validate(sid, key string) error {
	if sid == "" || key == "" {
		return fmt.Errorf("session: empty sid or key")
	}
	return nil
}
