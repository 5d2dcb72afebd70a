package cart

import (
	"testing"

	"github.com/ikkim/creme-backend/internal/app/menu"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func secondary(v float64) *float64 { return &v }

var (
	cappuccino = menu.Product{
		ID:               "2",
		Name:             "Classic Cappuccino",
		Price:            4.50,
		SecondaryPrice:   secondary(5.00),
		AvailableOptions: []string{"Hot", "Cold"},
		IsVisible:        true,
	}
	croissant = menu.Product{
		ID:        "b-2",
		Name:      "Classic Butter Croissant",
		Price:     3.80,
		IsVisible: true,
	}
)

func TestCart_AddSamePairTwiceMerges(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(cappuccino, "Hot"))
	require.NoError(t, c.Add(cappuccino, "Hot"))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Hot", items[0].SelectedOption)
}

func TestCart_DifferentOptionsAreSeparateLines(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(cappuccino, "Hot"))
	require.NoError(t, c.Add(cappuccino, "Cold"))

	items := c.Items()
	require.Len(t, items, 2)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("4.5")))
	assert.True(t, items[1].Price.Equal(decimal.RequireFromString("5")))
	assert.Equal(t, 2, c.Count())
}

func TestCart_AddUnknownOption(t *testing.T) {
	c := New()
	assert.ErrorIs(t, c.Add(cappuccino, "Iced"), ErrUnknownOption)
	assert.Empty(t, c.Items())
}

func TestCart_UpdateQuantity(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(croissant, ""))

	c.UpdateQuantity("b-2", "", 2)
	assert.Equal(t, 3, c.Count())

	c.UpdateQuantity("b-2", "", -2)
	assert.Equal(t, 1, c.Count())

	c.UpdateQuantity("b-2", "", -1)
	assert.Empty(t, c.Items())

	// Unknown lines are ignored.
	c.UpdateQuantity("nope", "", 1)
	assert.Empty(t, c.Items())
}

func TestCart_RemoveAndTotal(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(cappuccino, "Cold"))
	require.NoError(t, c.Add(cappuccino, "Cold"))
	require.NoError(t, c.Add(croissant, ""))

	assert.Equal(t, "13.8", FormatPrice(c.Total()))

	c.Remove("2", "Cold")
	assert.Equal(t, "3.8", FormatPrice(c.Total()))
	assert.Equal(t, 1, c.Count())
}
