package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Freshness string

const (
	Hot   Freshness = "hot"
	Fresh Freshness = "fresh"
	Cold  Freshness = "cold"
)

func (f Freshness) Valid() bool {
	switch f {
	case Hot, Fresh, Cold:
		return true
	}
	return false
}

// ParseFreshness normalizes s; unknown values map to Fresh.
func ParseFreshness(s string) Freshness {
	f := Freshness(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return Fresh
	}
	return f
}

// Product as served by the catalog API.
// swagger:model Product
type Product struct {
	ID          string          `json:"_id"                  yaml:"id"`
	Name        string          `json:"name"                 yaml:"name"`
	Price       decimal.Decimal `json:"price"                yaml:"price"       swaggertype:"number" example:"8.49"`
	Description string          `json:"description,omitempty" yaml:"description"`
	ImageURL    string          `json:"imageURL,omitempty"   yaml:"image"`
	Rating      float64         `json:"rating"               yaml:"rating"      example:"4.5"`
	Freshness   Freshness       `json:"freshness,omitempty"  yaml:"freshness"   example:"hot"`
	CategoryID  string          `json:"categoryId,omitempty" yaml:"-"`
	Stock       *int            `json:"stock,omitempty"      yaml:"stock,omitempty"`
}

// Category as served by the catalog API.
// swagger:model Category
type Category struct {
	ID   string `json:"_id"  yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Page is one page of products. Page, Pages and Total are copied from the server.
// swagger:model ProductPage
type Page struct {
	Items []Product `json:"items"`
	Total int       `json:"total"`
	Page  int       `json:"page"`
	Pages int       `json:"pages"`
	Limit int       `json:"limit,omitempty"`
}

// Query selects a page of products. Empty fields are not sent.
type Query struct {
	CategoryID string
	Q          string
	Page       int
	Limit      int
}

// Review shown in the reviews panel.
// swagger:model Review
type Review struct {
	Name   string `json:"name"   yaml:"name"`
	Text   string `json:"review" yaml:"review"`
	Rating int    `json:"rating" yaml:"rating"`
	Avatar string `json:"avatar" yaml:"avatar"`
}
