package cart

import (
	"errors"
	"sync"

	"github.com/ikkim/creme-backend/internal/app/menu"
	"github.com/shopspring/decimal"
)

var ErrUnknownOption = errors.New("option not offered for this product")

// Item is one cart line. Lines are keyed by (ID, SelectedOption).
type Item struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Image          string          `json:"image"`
	Quantity       int             `json:"quantity"`
	SelectedOption string          `json:"selectedOption,omitempty"`
}

// Subtotal is Price times Quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is a client-side cart. It is never persisted.
type Cart struct {
	mu    sync.Mutex
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Add puts one unit of product with the chosen option into the cart, merging
// with an existing line for the same (id, option) pair.
func (c *Cart) Add(product menu.Product, option string) error {
	price, ok := product.PriceFor(option)
	if !ok {
		return ErrUnknownOption
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(product.ID, option); i >= 0 {
		c.items[i].Quantity++
		return nil
	}
	c.items = append(c.items, Item{
		ID:             product.ID,
		Name:           product.Name,
		Price:          decimal.NewFromFloat(price),
		Image:          product.Image,
		Quantity:       1,
		SelectedOption: option,
	})
	return nil
}

// UpdateQuantity changes a line by delta. A line whose quantity would drop
// below 1 is removed.
func (c *Cart) UpdateQuantity(id, option string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id, option)
	if i < 0 {
		return
	}
	next := c.items[i].Quantity + delta
	if next < 1 {
		c.items = append(c.items[:i], c.items[i+1:]...)
		return
	}
	c.items[i].Quantity = next
}

func (c *Cart) Remove(id, option string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(id, option); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Item(nil), c.items...)
}

func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Total(c.items)
}

// Count is the number of units across all lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

func (c *Cart) indexOf(id, option string) int {
	for i, item := range c.items {
		if item.ID == id && item.SelectedOption == option {
			return i
		}
	}
	return -1
}

func Total(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
