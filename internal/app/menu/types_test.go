package menu

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_PriceList(t *testing.T) {
	single := Product{Name: "Croissant", Price: 6.5, Category: "bakery"}
	assert.Equal(t, []PriceEntry{{Price: 6.5}}, single.PriceList())

	hotOnly := Product{Name: "Espresso", Price: 4, Category: "coffee", AvailableOptions: []string{"Hot"}}
	assert.Equal(t, []PriceEntry{{Option: "Hot", Price: 4}}, hotOnly.PriceList())

	secondary := 5.0
	dual := Product{
		Name: "Cappuccino", Price: 4.5, SecondaryPrice: &secondary,
		Category: "coffee", AvailableOptions: []string{"Hot", "Cold"},
	}
	assert.Equal(t, []PriceEntry{{Option: "Hot", Price: 4.5}, {Option: "Cold", Price: 5}}, dual.PriceList())

	price, ok := dual.PriceFor("Cold")
	assert.True(t, ok)
	assert.Equal(t, 5.0, price)

	_, ok = dual.PriceFor("Iced")
	assert.False(t, ok)
}

func TestProduct_Validate(t *testing.T) {
	secondary := 5.0
	negative := -1.0

	tests := []struct {
		name    string
		product Product
		valid   bool
	}{
		{"plain", Product{Name: "Toast", Category: "savory", Price: 10}, true},
		{"missing name", Product{Category: "savory"}, false},
		{"missing category", Product{Name: "Toast"}, false},
		{"negative price", Product{Name: "Toast", Category: "savory", Price: -1}, false},
		{"dual without options", Product{Name: "Latte", Category: "coffee", SecondaryPrice: &secondary}, false},
		{"dual negative", Product{Name: "Latte", Category: "coffee", SecondaryPrice: &negative, AvailableOptions: []string{"Hot", "Cold"}}, false},
		{"dual", Product{Name: "Latte", Category: "coffee", SecondaryPrice: &secondary, AvailableOptions: []string{"Hot", "Cold"}}, true},
		{"single with two options", Product{Name: "Tea", Category: "tea", AvailableOptions: []string{"Hot", "Cold"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidProduct)
			}
		})
	}
}

func TestProductPatch_NullClearsSecondaryPrice(t *testing.T) {
	secondary := 5.0
	p := Product{
		Name: "Latte", Price: 4.5, SecondaryPrice: &secondary,
		Category: "coffee", AvailableOptions: []string{"Hot", "Cold"},
	}

	var absent ProductPatch
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Flat White"}`), &absent))
	assert.False(t, absent.SecondaryPrice.Set)
	updated := absent.Apply(p)
	assert.Equal(t, "Flat White", updated.Name)
	require.NotNil(t, updated.SecondaryPrice)

	var cleared ProductPatch
	require.NoError(t, json.Unmarshal([]byte(`{"secondaryPrice": null, "availableOptions": ["Hot"]}`), &cleared))
	assert.True(t, cleared.SecondaryPrice.Set)
	assert.False(t, cleared.SecondaryPrice.Valid)
	require.NoError(t, cleared.Validate())

	updated = cleared.Apply(p)
	assert.Nil(t, updated.SecondaryPrice)
	assert.Equal(t, []string{"Hot"}, updated.AvailableOptions)
	assert.NoError(t, updated.Validate())
	assert.NotNil(t, p.SecondaryPrice, "apply must not mutate the original")
}

func TestFallbackData(t *testing.T) {
	products := FallbackProducts()
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.NoError(t, p.Validate(), p.ID)
	}

	categories := FallbackCategories()
	require.NotEmpty(t, categories)
	assert.Equal(t, CategoryAll, categories[0].ID)

	products[0].Name = "mutated"
	assert.NotEqual(t, "mutated", FallbackProducts()[0].Name)
}
