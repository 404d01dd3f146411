package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var bundled []byte

type dataset struct {
	Categories []Category           `yaml:"categories"`
	Products   map[string][]Product `yaml:"products"`
	Reviews    []Review             `yaml:"reviews"`
}

// StaticSource serves an in-memory catalog. Products keep dataset order.
type StaticSource struct {
	categories []Category
	products   []Product
	reviews    []Review
}

// LoadStatic reads a dataset file, or the bundled one when path is empty.
func LoadStatic(path string) (*StaticSource, error) {
	raw := bundled
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		raw = b
	}
	return ParseStatic(raw)
}

func ParseStatic(raw []byte) (*StaticSource, error) {
	var ds dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	s := &StaticSource{categories: ds.Categories, reviews: ds.Reviews}
	// products are grouped by category in the file; walk categories for a stable order
	seen := make(map[string]bool)
	for _, c := range ds.Categories {
		s.appendGroup(c.ID, ds.Products[c.ID])
		seen[c.ID] = true
	}
	for id := range ds.Products {
		if !seen[id] {
			return nil, fmt.Errorf("parse catalog: products for unknown category %q", id)
		}
	}
	return s, nil
}

func (s *StaticSource) appendGroup(categoryID string, group []Product) {
	for _, p := range group {
		p.CategoryID = categoryID
		p.Freshness = ParseFreshness(string(p.Freshness))
		if p.ID == "" {
			p.ID = categoryID + "-" + strings.ToLower(strings.ReplaceAll(p.Name, " ", "-"))
		}
		s.products = append(s.products, p)
	}
}

func (s *StaticSource) Categories(context.Context) ([]Category, error) {
	return append([]Category(nil), s.categories...), nil
}

func (s *StaticSource) Reviews() []Review {
	return append([]Review(nil), s.reviews...)
}

func (s *StaticSource) Products(_ context.Context, q Query) (*Page, error) {
	needle := strings.ToLower(strings.TrimSpace(q.Q))
	matched := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if q.CategoryID != "" && p.CategoryID != q.CategoryID {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}
		matched = append(matched, p)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	pages := (len(matched) + limit - 1) / limit
	if pages == 0 {
		pages = 1
	}
	start := (page - 1) * limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return &Page{
		Items: append([]Product{}, matched[start:end]...),
		Total: len(matched),
		Page:  page,
		Pages: pages,
		Limit: limit,
	}, nil
}
