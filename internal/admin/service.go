// Package admin runs the admin console operations against the catalog API.
// Every successful change is announced on the event bus.
package admin

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/MikeMC777/snackshop/internal/backend"
	"github.com/MikeMC777/snackshop/internal/catalog"
	"github.com/MikeMC777/snackshop/internal/events"
)

const ListLimit = 24

type Service struct {
	api *backend.Client
	src catalog.Source
	pub events.Publisher
}

func NewService(api *backend.Client, src catalog.Source, pub events.Publisher) *Service {
	return &Service{api: api, src: src, pub: pub}
}

// ListProducts is the admin product table: optional search, 24 per page.
func (s *Service) ListProducts(ctx context.Context, q string, page int) (*catalog.Page, error) {
	return s.src.Products(ctx, catalog.Query{Q: q, Page: page, Limit: ListLimit})
}

func (s *Service) CreateProduct(ctx context.Context, token string, in ProductInput) (*catalog.Product, error) {
	body, err := in.normalize()
	if err != nil {
		return nil, err
	}
	var out catalog.Product
	if err := s.api.SendJSON(ctx, http.MethodPost, "/admin/products", body, token, &out); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	s.changed(ctx, "product", out.ID)
	return &out, nil
}

func (s *Service) UpdateProduct(ctx context.Context, token, id string, in ProductInput) (*catalog.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: product id is required", ErrInvalid)
	}
	body, err := in.normalize()
	if err != nil {
		return nil, err
	}
	var out catalog.Product
	if err := s.api.SendJSON(ctx, http.MethodPut, "/admin/products/"+url.PathEscape(id), body, token, &out); err != nil {
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}
	if out.ID == "" {
		out.ID = id
	}
	s.changed(ctx, "product", id)
	return &out, nil
}

func (s *Service) DeleteProduct(ctx context.Context, token, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: product id is required", ErrInvalid)
	}
	if err := s.api.SendJSON(ctx, http.MethodDelete, "/admin/products/"+url.PathEscape(id), nil, token, nil); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	s.changed(ctx, "product", id)
	return nil
}

func (s *Service) CreateCategory(ctx context.Context, token, name string) (*catalog.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrInvalid)
	}
	var out catalog.Category
	if err := s.api.SendJSON(ctx, http.MethodPost, "/admin/categories", CategoryInput{Name: name}, token, &out); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	s.changed(ctx, "category", out.ID)
	return &out, nil
}

// changed publishes db:changed. Publish failures are only logged.
func (s *Service) changed(ctx context.Context, entity, id string) {
	if s.pub == nil {
		return
	}
	if err := s.pub.Publish(ctx, events.DataChanged(entity, id)); err != nil {
		log.Printf("[admin] publish %s %s: %v", entity, id, err)
	}
}
