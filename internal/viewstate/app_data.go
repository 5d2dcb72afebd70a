package viewstate

import (
	"context"

	"github.com/ikkim/creme-backend/internal/app/menu"
)

// MenuSource is what the storefront reads its initial data from.
type MenuSource interface {
	FetchProducts(ctx context.Context) []menu.Product
	FetchCategories(ctx context.Context) []menu.Category
	FetchThemeConfig(ctx context.Context) menu.ThemeConfig
}

// AppDataState combines the three storefront resources.
type AppDataState struct {
	Products   []menu.Product
	Categories []menu.Category
	Theme      menu.ThemeConfig
	Loading    bool
	Err        error
}

// AppData loads products, categories and theme together. Only the products
// resource reports errors.
type AppData struct {
	Products   *Resource[[]menu.Product]
	Categories *Resource[[]menu.Category]
	Theme      *Resource[menu.ThemeConfig]
}

func NewAppData() *AppData {
	return &AppData{
		Products:   NewResource(menu.FallbackVisibleProducts(), CaptureErrors()),
		Categories: NewResource(menu.FallbackCategories()),
		Theme:      NewResource(menu.FallbackTheme()),
	}
}

func (a *AppData) Load(ctx context.Context, src MenuSource) {
	a.Products.Load(ctx, func(ctx context.Context) ([]menu.Product, error) {
		return src.FetchProducts(ctx), nil
	})
	a.Categories.Load(ctx, func(ctx context.Context) ([]menu.Category, error) {
		return src.FetchCategories(ctx), nil
	})
	a.Theme.Load(ctx, func(ctx context.Context) (menu.ThemeConfig, error) {
		return src.FetchThemeConfig(ctx), nil
	})
}

func (a *AppData) Unmount() {
	a.Products.Unmount()
	a.Categories.Unmount()
	a.Theme.Unmount()
}

// Wait blocks until all three fetches have returned or ctx is done.
func (a *AppData) Wait(ctx context.Context) error {
	for _, done := range []<-chan struct{}{a.Products.Done(), a.Categories.Done(), a.Theme.Done()} {
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (a *AppData) Snapshot() AppDataState {
	products := a.Products.Snapshot()
	categories := a.Categories.Snapshot()
	theme := a.Theme.Snapshot()

	return AppDataState{
		Products:   products.Data,
		Categories: categories.Data,
		Theme:      theme.Data,
		Loading:    products.Loading || categories.Loading || theme.Loading,
		Err:        products.Err,
	}
}
