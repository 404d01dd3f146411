// Package recent keeps a short most-recent-first list of viewed products per session.
package recent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/snackshop/internal/catalog"
	"github.com/MikeMC777/snackshop/internal/session"
)

const DefaultLimit = 8

// swagger:model RecentItem
type Item struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price" swaggertype:"number"`
	ImageURL string          `json:"imageURL,omitempty"`
}

func FromProduct(p catalog.Product) Item {
	return Item{ID: p.ID, Name: p.Name, Price: p.Price, ImageURL: p.ImageURL}
}

type List struct {
	store session.Store
	limit int
	mu    sync.Mutex
}

func NewList(store session.Store, limit int) *List {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &List{store: store, limit: limit}
}

// Items returns the session's list, most recent first.
func (l *List) Items(ctx context.Context, sid string) ([]Item, error) {
	raw, err := l.store.Get(ctx, sid, session.KeyRecent)
	if errors.Is(err, session.ErrNotFound) {
		return []Item{}, nil
	}
	if err != nil {
		return nil, err
	}
	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("[recent] sid=%s dropping corrupt list: %v", sid, err)
		return []Item{}, nil
	}
	return items, nil
}

// Record puts it at the front, removing any older entry with the same id.
func (l *List) Record(ctx context.Context, sid string, it Item) ([]Item, error) {
	it.ID = strings.TrimSpace(it.ID)
	if it.ID == "" {
		return nil, fmt.Errorf("recent: empty product id")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	items, err := l.Items(ctx, sid)
	if err != nil {
		return nil, err
	}
	next := make([]Item, 0, l.limit)
	next = append(next, it)
	for _, old := range items {
		if len(next) == l.limit {
			break
		}
		if old.ID != it.ID {
			next = append(next, old)
		}
	}
	raw, err := json.Marshal(next)
	if err != nil {
		return nil, err
	}
	if err := l.store.Set(ctx, sid, session.KeyRecent, raw); err != nil {
		return nil, fmt.Errorf("save recent: %w", err)
	}
	return next, nil
}
