package cart

import "github.com/shopspring/decimal"

// Item is one cart line. Price is the unit price.
// swagger:model CartItem
type Item struct {
	ID    string          `json:"id"    example:"66f1c0"`
	Title string          `json:"title" example:"Golden Fries"`
	Price decimal.Decimal `json:"price" swaggertype:"string" example:"3.49"`
	Qty   int             `json:"qty"   example:"1"`
	Image string          `json:"image,omitempty"`
}

// Total is Price * Qty.
func (it Item) Total() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Qty)))
}

// View is the cart as served to the storefront.
// swagger:model CartView
type View struct {
	Items    []Item `json:"items"`
	Count    int    `json:"count"`
	Subtotal string `json:"subtotal" example:"15.00"`
}

// AddItemRequest payload for adding to the cart.
// swagger:model AddItemRequest
type AddItemRequest struct {
	ID    string `json:"id"    example:"66f1c0"`
	Title string `json:"title" example:"Golden Fries"`
	Price string `json:"price" example:"3.49"`
	Qty   int    `json:"qty"   example:"1"`
	Image string `json:"image"`
}
