package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ikkim/creme-backend/internal/app/menu"
	"github.com/ikkim/creme-backend/internal/cart"
	"github.com/ikkim/creme-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var ErrEmptyOrder = errors.New("order has no items")

// MenuSection is one grouped category block on the storefront.
type MenuSection struct {
	ID    string         `json:"id"`
	Label string         `json:"label"`
	Items []menu.Product `json:"items"`
}

// FeaturedRail is the chef's choice block shown above the sections.
type FeaturedRail struct {
	Label string         `json:"label"`
	Items []menu.Product `json:"items"`
}

// MenuView is everything the storefront renders for one query.
type MenuView struct {
	Theme         menu.ThemeConfig   `json:"theme"`
	App           menu.AppConfig     `json:"app"`
	Social        menu.SocialConfig  `json:"social"`
	Address       menu.AddressConfig `json:"address"`
	Categories    []menu.Category    `json:"categories"`
	Featured      *FeaturedRail      `json:"featured,omitempty"`
	Sections      []MenuSection      `json:"sections"`
	Query         string             `json:"query,omitempty"`
	SearchResults []menu.Product     `json:"searchResults,omitempty"`
}

// OrderLine is a requested checkout line.
type OrderLine struct {
	ProductID string `json:"productId" binding:"required"`
	Option    string `json:"option"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// CheckoutResult is the chat handoff for an order. Nothing is stored.
type CheckoutResult struct {
	Items   []cart.Item     `json:"items"`
	Total   decimal.Decimal `json:"total"`
	Message string          `json:"message"`
	Link    string          `json:"link"`
}

type StorefrontService interface {
	MenuView(ctx context.Context, query string) MenuView
	Search(ctx context.Context, query string) []menu.Product
	Checkout(ctx context.Context, lines []OrderLine) (*CheckoutResult, error)
}

type storefrontService struct {
	gateway  MenuGateway
	phone    string
	currency string
}

func NewStorefrontService(gateway MenuGateway, whatsAppPhone, currency string) StorefrontService {
	return &storefrontService{
		gateway:  gateway,
		phone:    whatsAppPhone,
		currency: currency,
	}
}

func (s *storefrontService) MenuView(ctx context.Context, query string) MenuView {
	var (
		products   []menu.Product
		categories []menu.Category
		app        menu.AppConfig
		config     menu.AllConfig
		group      errgroup.Group
	)
	group.Go(func() error { products = s.gateway.FetchProducts(ctx); return nil })
	group.Go(func() error { categories = s.gateway.FetchCategories(ctx); return nil })
	group.Go(func() error { app = s.gateway.FetchAppConfig(ctx); return nil })
	group.Go(func() error { config = s.gateway.FetchAllConfig(ctx); return nil })
	_ = group.Wait()

	view := BuildMenuView(products, categories, query)
	view.Theme = config.Theme
	view.Social = config.Social
	view.Address = config.Address
	view.App = app
	return view
}

func (s *storefrontService) Search(ctx context.Context, query string) []menu.Product {
	return FilterProducts(menu.VisibleOnly(s.gateway.FetchProducts(ctx)), query)
}

// Checkout prices the requested lines against the current menu and builds
// the chat link. Unknown products or options reject the whole order.
func (s *storefrontService) Checkout(ctx context.Context, lines []OrderLine) (*CheckoutResult, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	byID := make(map[string]menu.Product)
	for _, p := range s.gateway.FetchProducts(ctx) {
		byID[p.ID] = p
	}

	c := cart.New()
	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, line.ProductID)
		}
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidProduct)
		}
		if err := c.Add(product, line.Option); err != nil {
			return nil, fmt.Errorf("%s: %w", product.Name, err)
		}
		c.UpdateQuantity(product.ID, line.Option, line.Quantity-1)
	}

	items := c.Items()
	message := cart.Message(items, s.currency)
	result := &CheckoutResult{
		Items:   items,
		Total:   c.Total(),
		Message: message,
		Link:    cart.Link(s.phone, message),
	}

	logger.Info("Checkout link built", map[string]interface{}{
		"lines": len(items),
		"units": c.Count(),
		"total": cart.FormatPrice(result.Total),
	})
	return result, nil
}

// BuildMenuView groups visible products by category order. The "all" and
// "chefs-choice" categories never get a section, empty groups are omitted
// and the featured rail is hidden while a query is active.
func BuildMenuView(products []menu.Product, categories []menu.Category, query string) MenuView {
	visible := menu.VisibleOnly(products)
	view := MenuView{
		Categories: make([]menu.Category, 0, len(categories)),
		Sections:   make([]MenuSection, 0),
		Query:      query,
	}

	featuredLabel := "Chef's Choice"
	for _, c := range categories {
		if c.ID == menu.CategoryChefsChoice {
			featuredLabel = c.Label
		}
		if c.ID != menu.CategoryAll {
			view.Categories = append(view.Categories, c)
		}
	}

	if query != "" {
		view.SearchResults = FilterProducts(visible, query)
		return view
	}

	featured := productsIn(visible, menu.CategoryChefsChoice)
	if len(featured) > 0 {
		view.Featured = &FeaturedRail{Label: featuredLabel, Items: featured}
	}

	for _, c := range categories {
		if c.ID == menu.CategoryAll || c.ID == menu.CategoryChefsChoice {
			continue
		}
		items := productsIn(visible, c.ID)
		if len(items) == 0 {
			continue
		}
		view.Sections = append(view.Sections, MenuSection{ID: c.ID, Label: c.Label, Items: items})
	}
	return view
}

// FilterProducts keeps visible products whose name or description contains
// query, ignoring case.
func FilterProducts(products []menu.Product, query string) []menu.Product {
	q := strings.ToLower(query)
	out := make([]menu.Product, 0)
	for _, p := range products {
		if !p.IsVisible {
			continue
		}
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

func productsIn(products []menu.Product, categoryID string) []menu.Product {
	out := make([]menu.Product, 0)
	for _, p := range products {
		if p.Category == categoryID {
			out = append(out, p)
		}
	}
	return out
}
