package admin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/snackshop/internal/catalog"
)

const defaultStock = 100

var ErrInvalid = errors.New("invalid admin input")

// ProductInput is the admin product form.
// swagger:model ProductInput
type ProductInput struct {
	Name        string          `json:"name"        example:"Golden Fries"`
	Price       decimal.Decimal `json:"price"       swaggertype:"number" example:"3.49"`
	ImageURL    string          `json:"imageURL"`
	Description string          `json:"description"`
	Rating      *float64        `json:"rating"      example:"5"`
	Freshness   string          `json:"freshness"   example:"fresh"`
	Stock       *int            `json:"stock"       example:"100"`
	CategoryID  string          `json:"categoryId"`
}

// productPayload is what the catalog API receives; it wants a numeric price.
type productPayload struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageURL"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Freshness   string  `json:"freshness"`
	Stock       int     `json:"stock"`
	CategoryID  string  `json:"categoryId"`
}

// normalize trims fields, fills defaults and checks ranges.
func (in ProductInput) normalize() (productPayload, error) {
	p := productPayload{
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price.InexactFloat64(),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Description: strings.TrimSpace(in.Description),
		Rating:      5,
		Stock:       defaultStock,
		CategoryID:  strings.TrimSpace(in.CategoryID),
	}
	if p.Name == "" {
		return p, fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if p.CategoryID == "" {
		return p, fmt.Errorf("%w: please select a category", ErrInvalid)
	}
	if in.Price.IsNegative() {
		return p, fmt.Errorf("%w: price must not be negative", ErrInvalid)
	}
	if in.Rating != nil {
		p.Rating = *in.Rating
	}
	if p.Rating < 0 || p.Rating > 5 {
		return p, fmt.Errorf("%w: rating must be between 0 and 5", ErrInvalid)
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if p.Stock < 0 {
		return p, fmt.Errorf("%w: stock must not be negative", ErrInvalid)
	}
	f := strings.ToLower(strings.TrimSpace(in.Freshness))
	if f != "" && !catalog.Freshness(f).Valid() {
		return p, fmt.Errorf("%w: freshness must be hot, fresh or cold", ErrInvalid)
	}
	p.Freshness = string(catalog.ParseFreshness(f))
	return p, nil
}

// swagger:model CategoryInput
type CategoryInput struct {
	Name string `json:"name" example:"Spicy"`
}
