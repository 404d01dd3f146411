// Package cart holds the storefront cart: a keyed collection of line items
// (one line per product id) and the per-session service that persists it.
package cart

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxQty caps the quantity of a single line.
const MaxQty = 999

var ErrInvalidItem = errors.New("invalid cart item")

// Cart keeps lines in insertion order, unique per product id.
// The zero value is an empty cart.
type Cart struct {
	order []string
	lines map[string]Item
}

func New() *Cart {
	return &Cart{lines: make(map[string]Item)}
}

// Add merges it into the cart. An existing line keeps its position and gets
// its quantity increased; every other field is taken from it. A merge past
// MaxQty is rejected and leaves the cart unchanged.
func (c *Cart) Add(it Item) error {
	it.ID = strings.TrimSpace(it.ID)
	if it.ID == "" || it.Price.IsNegative() {
		return ErrInvalidItem
	}
	if it.Qty <= 0 {
		it.Qty = 1
	}
	if it.Qty > MaxQty {
		return ErrInvalidItem
	}
	if c.lines == nil {
		c.lines = make(map[string]Item)
	}
	if cur, ok := c.lines[it.ID]; ok {
		if it.Qty > MaxQty-cur.Qty {
			return ErrInvalidItem
		}
		it.Qty += cur.Qty
	} else {
		c.order = append(c.order, it.ID)
	}
	c.lines[it.ID] = it
	return nil
}

// Remove deletes the line for id. Unknown ids are ignored.
func (c *Cart) Remove(id string) {
	id = strings.TrimSpace(id)
	if _, ok := c.lines[id]; !ok {
		return
	}
	delete(c.lines, id)
	for i, k := range c.order {
		if k == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Cart) Clear() {
	c.order = nil
	c.lines = make(map[string]Item)
}

func (c *Cart) Get(id string) (Item, bool) {
	it, ok := c.lines[strings.TrimSpace(id)]
	return it, ok
}

func (c *Cart) Len() int { return len(c.order) }

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.lines[id])
	}
	return out
}

// Count is the total quantity across lines.
func (c *Cart) Count() int {
	n := 0
	for _, it := range c.lines {
		n += it.Qty
	}
	return n
}

func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range c.lines {
		sum = sum.Add(it.Total())
	}
	return sum
}

func (c *Cart) View() View {
	return View{
		Items:    c.Items(),
		Count:    c.Count(),
		Subtotal: c.Subtotal().StringFixed(2),
	}
}

// MarshalJSON encodes the cart as its ordered list of lines.
func (c *Cart) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Items())
}

func (c *Cart) UnmarshalJSON(b []byte) error {
	var items []Item
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	c.Clear()
	for _, it := range items {
		if err := c.Add(it); err != nil {
			return err
		}
	}
	return nil
}
