package cart

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id string, price string, qty int) Item {
	return Item{ID: id, Title: "Snack " + id, Price: decimal.RequireFromString(price), Qty: qty}
}

func TestAdd_SameIDMergesQuantity(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(item("1", "5", 2)))
	require.NoError(t, c.Add(item("1", "5", 1)))

	require.Equal(t, 1, c.Len())
	got, ok := c.Get("1")
	require.True(t, ok)
	assert.Equal(t, 3, got.Qty)
	assert.Equal(t, "15.00", c.Subtotal().StringFixed(2))
}

func TestAdd_DefaultsQuantityToOne(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(item("a", "2.50", 0)))
	require.NoError(t, c.Add(item("a", "2.50", -4)))

	got, _ := c.Get("a")
	assert.Equal(t, 2, got.Qty)
	assert.Equal(t, 2, c.Count())
}

func TestAdd_NewFieldsOverwriteExisting(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(Item{ID: "x", Title: "Old", Price: decimal.NewFromInt(1), Qty: 1}))
	require.NoError(t, c.Add(Item{ID: "x", Title: "New", Price: decimal.NewFromInt(2), Qty: 1, Image: "img"}))

	got, _ := c.Get("x")
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, "img", got.Image)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, 2, got.Qty)
}

func TestAdd_Rejects(t *testing.T) {
	c := New()
	assert.ErrorIs(t, c.Add(item(" ", "1", 1)), ErrInvalidItem)
	assert.ErrorIs(t, c.Add(item("n", "-1", 1)), ErrInvalidItem)
	assert.Equal(t, 0, c.Len())
}

func TestAdd_QuantityStaysBounded(t *testing.T) {
	c := New()
	assert.ErrorIs(t, c.Add(item("1", "5", math.MaxInt)), ErrInvalidItem)
	assert.Equal(t, 0, c.Len())

	require.NoError(t, c.Add(item("1", "5", MaxQty-1)))
	require.NoError(t, c.Add(item("1", "5", 1)))
	assert.ErrorIs(t, c.Add(item("1", "5", 1)), ErrInvalidItem)
	assert.ErrorIs(t, c.Add(item("1", "5", math.MaxInt)), ErrInvalidItem)

	got, _ := c.Get("1")
	assert.Equal(t, MaxQty, got.Qty)
	assert.Equal(t, MaxQty, c.Count())
	assert.True(t, c.Subtotal().IsPositive())
}

func TestRemove_TrimsID(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(item(" 1", "5", 1)))
	_, ok := c.Get(" 1")
	require.True(t, ok)

	c.Remove(" 1 ")
	assert.Equal(t, 0, c.Len())
}

func TestRemove_UnknownIsNoop(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(item("1", "5", 1)))
	c.Remove("nope")
	assert.Equal(t, 1, c.Len())

	c.Remove("1")
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Count())
}

func TestItems_KeepInsertionOrder(t *testing.T) {
	c := New()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, c.Add(item(id, "1", 1)))
	}
	require.NoError(t, c.Add(item("c", "1", 1)))
	c.Remove("a")

	var ids []string
	for _, it := range c.Items() {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"c", "b"}, ids)
}

func TestClearAndZeroValue(t *testing.T) {
	var c Cart
	require.NoError(t, c.Add(item("1", "1.25", 4)))
	assert.Equal(t, "5.00", c.View().Subtotal)

	c.Clear()
	v := c.View()
	assert.Empty(t, v.Items)
	assert.Equal(t, 0, v.Count)
	assert.Equal(t, "0.00", v.Subtotal)
}

func TestJSONRoundTripKeepsOrderAndQuantities(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(item("b", "3.49", 2)))
	require.NoError(t, c.Add(item("a", "6.99", 1)))

	raw, err := json.Marshal(c)
	require.NoError(t, err)

	back := New()
	require.NoError(t, json.Unmarshal(raw, back))
	assert.Equal(t, c.Items()[0].ID, back.Items()[0].ID)
	assert.Equal(t, c.Count(), back.Count())
	assert.True(t, c.Subtotal().Equal(back.Subtotal()))
}
