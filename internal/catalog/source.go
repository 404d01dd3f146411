// Package catalog reads categories and product pages from the catalog API
// (or the bundled static dataset) and keeps each visitor's browsing state.
package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/MikeMC777/snackshop/internal/backend"
)

const (
	DefaultLimit = 24
	SearchLimit  = 50
)

type Source interface {
	Categories(ctx context.Context) ([]Category, error)
	Products(ctx context.Context, q Query) (*Page, error)
}

// APIClient is a Source backed by GET /categories and GET /products.
// Identical in-flight requests share one round trip. The shared call is
// detached from any single caller's cancellation and bounded by the backend
// client timeout; each caller still stops waiting when its own ctx ends.
type APIClient struct {
	api *backend.Client
	sfg singleflight.Group
}

func NewAPIClient(api *backend.Client) *APIClient {
	return &APIClient{api: api}
}

func (c *APIClient) Categories(ctx context.Context) ([]Category, error) {
	v, err := c.shared(ctx, "categories", func(ctx context.Context) (interface{}, error) {
		var out []Category
		if err := c.api.GetJSON(ctx, "/categories", "", &out); err != nil {
			return nil, fmt.Errorf("fetch categories: %w", err)
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return append([]Category(nil), v.([]Category)...), nil
}

func (c *APIClient) Products(ctx context.Context, q Query) (*Page, error) {
	path := "/products?" + q.Values().Encode()
	v, err := c.shared(ctx, path, func(ctx context.Context) (interface{}, error) {
		var p Page
		if err := c.api.GetJSON(ctx, path, "", &p); err != nil {
			return nil, fmt.Errorf("fetch products: %w", err)
		}
		if p.Items == nil {
			p.Items = []Product{}
		}
		return &p, nil
	})
	if err != nil {
		return nil, err
	}
	cp := *v.(*Page)
	cp.Items = append([]Product(nil), cp.Items...)
	return &cp, nil
}

func (c *APIClient) shared(ctx context.Context, key string, fn func(context.Context) (interface{}, error)) (interface{}, error) {
	flight := context.WithoutCancel(ctx)
	ch := c.sfg.DoChan(key, func() (interface{}, error) { return fn(flight) })
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}

// Values encodes q as /products query parameters.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.CategoryID != "" {
		v.Set("categoryId", q.CategoryID)
	}
	if s := strings.TrimSpace(q.Q); s != "" {
		v.Set("q", s)
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	v.Set("page", strconv.Itoa(page))
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	v.Set("limit", strconv.Itoa(limit))
	return v
}

// Search looks for q across all categories. A blank query matches nothing
// and does not reach the source.
func Search(ctx context.Context, src Source, q string) ([]Product, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []Product{}, nil
	}
	p, err := src.Products(ctx, Query{Q: q, Page: 1, Limit: SearchLimit})
	if err != nil {
		return nil, err
	}
	return p.Items, nil
}
