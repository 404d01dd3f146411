package catalog

import (
	"context"
	"errors"
	"sync"
)

const (
	initialVisible = 6
	visibleStep    = 12
)

var ErrOutOfRange = errors.New("product index out of range")

// State is a snapshot of a Browser.
// swagger:model BrowseState
type State struct {
	CategoryID  string    `json:"categoryId"`
	Items       []Product `json:"items"`
	Page        int       `json:"page"`
	Pages       int       `json:"pages"`
	Total       int       `json:"total"`
	Featured    int       `json:"featured"`
	Direction   int       `json:"direction"`
	Visible     int       `json:"visible"`
	CanLoadMore bool      `json:"canLoadMore"`
	Main        *Product  `json:"main,omitempty"`
}

// Browser is one visitor's view of the catalog: the selected category, the
// current page, the featured product and the visible grid window.
// Calls are serialized; a failed fetch leaves the state as it was.
type Browser struct {
	src   Source
	limit int

	mu        sync.Mutex
	loaded    bool
	category  string
	page      Page
	featured  int
	direction int
	visible   int
}

func NewBrowser(src Source, limit int) *Browser {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Browser{src: src, limit: limit, direction: 1, visible: initialVisible}
}

// SelectCategory switches to category id and loads its first page. The
// featured index goes back to 0. Re-selecting the loaded category only
// resets the featured index.
func (b *Browser) SelectCategory(ctx context.Context, id string) (State, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.loaded && id == b.category {
		b.resetView()
		return b.snapshot(), nil
	}
	p, err := b.fetch(ctx, id, 1)
	if err != nil {
		return b.snapshot(), err
	}
	b.category = id
	b.commit(p)
	b.resetView()
	return b.snapshot(), nil
}

// GoToPage loads page n of the current category. n is clamped to [1, pages].
func (b *Browser) GoToPage(ctx context.Context, n int) (State, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.loaded && n > b.page.Pages {
		n = b.page.Pages
	}
	if n < 1 {
		n = 1
	}
	p, err := b.fetch(ctx, b.category, n)
	if err != nil {
		return b.snapshot(), err
	}
	b.commit(p)
	b.resetView()
	return b.snapshot(), nil
}

// Refresh refetches the current page. The featured index survives when it
// still points at an item.
func (b *Browser) Refresh(ctx context.Context) (State, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 1
	if b.loaded {
		n = b.page.Page
	}
	p, err := b.fetch(ctx, b.category, n)
	if err != nil {
		return b.snapshot(), err
	}
	b.commit(p)
	if b.featured >= len(b.page.Items) {
		b.featured = 0
	}
	return b.snapshot(), nil
}

// Next moves the featured index forward, wrapping around.
func (b *Browser) Next() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n := len(b.page.Items); n > 0 {
		b.direction = 1
		b.featured = (b.featured + 1) % n
	}
	return b.snapshot()
}

// Prev moves the featured index backward, wrapping around.
func (b *Browser) Prev() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n := len(b.page.Items); n > 0 {
		b.direction = -1
		b.featured = (b.featured - 1 + n) % n
	}
	return b.snapshot()
}

// Feature makes item idx the featured one. Direction follows the sign of the move.
func (b *Browser) Feature(idx int) (State, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if idx < 0 || idx >= len(b.page.Items) {
		return b.snapshot(), ErrOutOfRange
	}
	switch diff := idx - b.featured; {
	case diff > 0:
		b.direction = 1
	case diff < 0:
		b.direction = -1
	}
	b.featured = idx
	return b.snapshot(), nil
}

// LoadMore widens the visible grid window.
func (b *Browser) LoadMore() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.visible < len(b.page.Items) {
		b.visible += visibleStep
		if b.visible > len(b.page.Items) {
			b.visible = len(b.page.Items)
		}
	}
	return b.snapshot()
}

// Featured returns the featured product, if any.
func (b *Browser) Featured() (Product, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.featured < len(b.page.Items) {
		return b.page.Items[b.featured], true
	}
	return Product{}, false
}

func (b *Browser) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshot()
}

// Loaded reports whether any page has been fetched yet.
func (b *Browser) Loaded() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loaded
}

func (b *Browser) fetch(ctx context.Context, category string, n int) (*Page, error) {
	return b.src.Products(ctx, Query{CategoryID: category, Page: n, Limit: b.limit})
}

func (b *Browser) commit(p *Page) {
	b.page = *p
	b.loaded = true
}

func (b *Browser) resetView() {
	b.featured = 0
	b.direction = 1
	b.visible = initialVisible
}

func (b *Browser) snapshot() State {
	s := State{
		CategoryID: b.category,
		Items:      append([]Product{}, b.page.Items...),
		Page:       b.page.Page,
		Pages:      b.page.Pages,
		Total:      b.page.Total,
		Featured:   b.featured,
		Direction:  b.direction,
		Visible:    b.visible,
	}
	if s.Visible > len(s.Items) {
		s.Visible = len(s.Items)
	}
	s.CanLoadMore = s.Visible < len(s.Items)
	if b.featured < len(s.Items) {
		main := s.Items[b.featured]
		s.Main = &main
	}
	return s
}
