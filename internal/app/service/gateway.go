package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/ikkim/creme-backend/internal/app/menu"
	"github.com/ikkim/creme-backend/internal/app/model"
	"github.com/ikkim/creme-backend/internal/app/repository"
	"github.com/ikkim/creme-backend/pkg/logger"
	"github.com/ikkim/creme-backend/pkg/util"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrStoreNotConfigured = errors.New("menu store not configured")
	ErrProductNotFound    = errors.New("product not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryExists     = errors.New("category already exists")
	ErrInvalidCategory    = errors.New("category id and label are required")
	ErrInvalidProduct     = menu.ErrInvalidProduct
)

// MenuGateway is the single access point to the remote menu store.
//
// Reads never fail: an unconfigured store or any read error yields the static
// fallback for that resource. Writes return ErrStoreNotConfigured when there
// is no store and otherwise surface the store error to the caller.
type MenuGateway interface {
	Configured() bool
	Ping(ctx context.Context) error

	FetchProducts(ctx context.Context) []menu.Product
	FetchAllProducts(ctx context.Context) []menu.Product
	FetchCategories(ctx context.Context) []menu.Category
	FetchThemeConfig(ctx context.Context) menu.ThemeConfig
	FetchSocialConfig(ctx context.Context) menu.SocialConfig
	FetchAddressConfig(ctx context.Context) menu.AddressConfig
	FetchAppConfig(ctx context.Context) menu.AppConfig
	FetchAllConfig(ctx context.Context) menu.AllConfig

	CreateProduct(ctx context.Context, product menu.Product) (*menu.Product, error)
	UpdateProduct(ctx context.Context, id string, patch menu.ProductPatch) error
	DeleteProduct(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, category menu.Category) (*menu.Category, error)
	UpdateCategory(ctx context.Context, id, label string) error
	DeleteCategory(ctx context.Context, id string) error
	UpdateCategoryOrder(ctx context.Context, categories []menu.Category) error

	UpdateAppConfig(ctx context.Context, patch menu.AppConfigPatch) error
	UpdateThemeConfig(ctx context.Context, patch menu.ThemePatch) error
	UpdateSocialConfig(ctx context.Context, patch menu.SocialPatch) error
	UpdateAddressConfig(ctx context.Context, patch menu.AddressPatch) error
}

// StoreRepositories groups the repositories backing the gateway. A nil
// Products repository marks the store as unconfigured.
type StoreRepositories struct {
	Products   repository.ProductRepository
	Categories repository.CategoryRepository
	SiteConfig repository.SiteConfigRepository
}

// NewStoreRepositories builds the repositories for db, or an empty set when db
// is nil.
func NewStoreRepositories(db *gorm.DB) StoreRepositories {
	if db == nil {
		return StoreRepositories{}
	}
	return StoreRepositories{
		Products:   repository.NewProductRepository(db),
		Categories: repository.NewCategoryRepository(db),
		SiteConfig: repository.NewSiteConfigRepository(db),
	}
}

type menuGateway struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	siteConfig repository.SiteConfigRepository
	events     EventPublisher
}

func NewMenuGateway(repos StoreRepositories, events EventPublisher) MenuGateway {
	if events == nil {
		events = noopPublisher{}
	}
	return &menuGateway{
		products:   repos.Products,
		categories: repos.Categories,
		siteConfig: repos.SiteConfig,
		events:     events,
	}
}

func (g *menuGateway) Configured() bool {
	return g.products != nil && g.categories != nil && g.siteConfig != nil
}

func (g *menuGateway) Ping(ctx context.Context) error {
	if !g.Configured() {
		return ErrStoreNotConfigured
	}
	return g.siteConfig.Ping(ctx)
}

// Reads

func (g *menuGateway) FetchProducts(ctx context.Context) []menu.Product {
	if !g.Configured() {
		logger.Debug("Using fallback product data", nil)
		return menu.FallbackVisibleProducts()
	}

	rows, err := g.products.FindVisible(ctx)
	if err != nil {
		logger.Warn("Error fetching products, serving fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return menu.FallbackVisibleProducts()
	}
	return toMenuProducts(rows)
}

func (g *menuGateway) FetchAllProducts(ctx context.Context) []menu.Product {
	if !g.Configured() {
		return menu.FallbackProducts()
	}

	rows, err := g.products.FindAll(ctx)
	if err != nil {
		logger.Warn("Error fetching all products, serving fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return menu.FallbackProducts()
	}
	return toMenuProducts(rows)
}

func (g *menuGateway) FetchCategories(ctx context.Context) []menu.Category {
	if !g.Configured() {
		logger.Debug("Using fallback category data", nil)
		return menu.FallbackCategories()
	}

	rows, err := g.categories.FindAll(ctx)
	if err != nil {
		logger.Warn("Error fetching categories, serving fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return menu.FallbackCategories()
	}

	categories := make([]menu.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, row.ToMenu())
	}
	return categories
}

func (g *menuGateway) FetchThemeConfig(ctx context.Context) menu.ThemeConfig {
	if !g.Configured() {
		return menu.FallbackTheme()
	}
	row, err := g.siteConfig.FindTheme(ctx)
	if err != nil {
		logFallback("theme", err)
		return menu.FallbackTheme()
	}
	return row.ToMenu()
}

func (g *menuGateway) FetchSocialConfig(ctx context.Context) menu.SocialConfig {
	if !g.Configured() {
		return menu.FallbackSocial()
	}
	row, err := g.siteConfig.FindSocial(ctx)
	if err != nil {
		logFallback("social", err)
		return menu.FallbackSocial()
	}
	return row.ToMenu()
}

func (g *menuGateway) FetchAddressConfig(ctx context.Context) menu.AddressConfig {
	if !g.Configured() {
		return menu.FallbackAddress()
	}
	row, err := g.siteConfig.FindAddress(ctx)
	if err != nil {
		logFallback("address", err)
		return menu.FallbackAddress()
	}
	return row.ToMenu()
}

func (g *menuGateway) FetchAppConfig(ctx context.Context) menu.AppConfig {
	if !g.Configured() {
		return menu.FallbackAppConfig()
	}
	row, err := g.siteConfig.FindApp(ctx)
	if err != nil {
		logFallback("app", err)
		return menu.FallbackAppConfig()
	}
	return row.ToMenu()
}

// FetchAllConfig loads theme, social and address concurrently.
func (g *menuGateway) FetchAllConfig(ctx context.Context) menu.AllConfig {
	var all menu.AllConfig
	var group errgroup.Group

	group.Go(func() error {
		all.Theme = g.FetchThemeConfig(ctx)
		return nil
	})
	group.Go(func() error {
		all.Social = g.FetchSocialConfig(ctx)
		return nil
	})
	group.Go(func() error {
		all.Address = g.FetchAddressConfig(ctx)
		return nil
	})
	_ = group.Wait()

	return all
}

// Product writes

func (g *menuGateway) CreateProduct(ctx context.Context, product menu.Product) (*menu.Product, error) {
	if !g.Configured() {
		return nil, ErrStoreNotConfigured
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	product.ID = uuid.NewString()
	row := model.ProductFromMenu(product)

	logger.Info("Creating product", map[string]interface{}{
		"product_id": row.ID,
		"name":       row.Name,
		"category":   row.Category,
	})

	if err := g.products.Create(ctx, &row); err != nil {
		logger.Error("Failed to create product", err, map[string]interface{}{
			"payload": product,
		})
		return nil, err
	}

	created := row.ToMenu()
	g.events.Publish(EventMenuUpdated, map[string]interface{}{"product_id": created.ID, "action": "created"})
	return &created, nil
}

func (g *menuGateway) UpdateProduct(ctx context.Context, id string, patch menu.ProductPatch) error {
	if !g.Configured() {
		return ErrStoreNotConfigured
	}
	if err := patch.Validate(); err != nil {
		return err
	}

	// A patch touching only one side of the dual-price pair is checked
	// against the stored product.
	if patch.SecondaryPrice.Set != (patch.AvailableOptions != nil) {
		existing, err := g.products.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}
		if err := patch.Apply(existing.ToMenu()).Validate(); err != nil {
			return err
		}
	}

	columns := model.ProductColumns(patch)
	if len(columns) == 0 {
		// Nothing to write, but an unknown id is still reported.
		if _, err := g.products.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}
		return nil
	}

	logger.Info("Updating product", map[string]interface{}{
		"product_id": id,
		"columns":    len(columns),
	})

	if err := g.products.Update(ctx, id, columns); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot update: product not found", map[string]interface{}{
				"product_id": id,
			})
			return ErrProductNotFound
		}
		logger.Error("Failed to update product", err, map[string]interface{}{
			"product_id": id,
			"payload":    patch,
		})
		return err
	}

	g.events.Publish(EventMenuUpdated, map[string]interface{}{"product_id": id, "action": "updated"})
	return nil
}

func (g *menuGateway) DeleteProduct(ctx context.Context, id string) error {
	if !g.Configured() {
		return ErrStoreNotConfigured
	}

	logger.Info("Deleting product", map[string]interface{}{
		"product_id": id,
	})

	if err := g.products.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		logger.Error("Failed to delete product", err, map[string]interface{}{
			"product_id": id,
		})
		return err
	}

	g.events.Publish(EventMenuUpdated, map[string]interface{}{"product_id": id, "action": "deleted"})
	return nil
}

// Category writes

// CreateCategory stores a new category at the end of the current order. The
// id is slugified before the collision check.
func (g *menuGateway) CreateCategory(ctx context.Context, category menu.Category) (*menu.Category, error) {
	if !g.Configured() {
		return nil, ErrStoreNotConfigured
	}

	category.ID = util.Slugify(category.ID)
	if category.ID == "" || category.Label == "" {
		return nil, ErrInvalidCategory
	}

	if _, err := g.categories.FindByID(ctx, category.ID); err == nil {
		return nil, ErrCategoryExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check category existence", err, map[string]interface{}{
			"category_id": category.ID,
		})
		return nil, err
	}

	existing, err := g.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	category.SortOrder = len(existing)

	row := model.CategoryFromMenu(category)
	if err := g.categories.Create(ctx, &row); err != nil {
		logger.Error("Failed to create category", err, map[string]interface{}{
			"payload": category,
		})
		return nil, err
	}

	logger.Info("Category created", map[string]interface{}{
		"category_id": row.ID,
		"sort_order":  row.SortOrder,
	})

	created := row.ToMenu()
	g.events.Publish(EventMenuUpdated, map[string]interface{}{"category_id": created.ID, "action": "created"})
	return &created, nil
}

func (g *menuGateway) UpdateCategory(ctx context.Context, id, label string) error {
	if !g.Configured() {
		return ErrStoreNotConfigured
	}
	if id == "" || label == "" {
		return ErrInvalidCategory
	}

	if err := g.categories.UpdateLabel(ctx, id, label); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		logger.Error("Failed to update category", err, map[string]interface{}{
			"category_id": id,
			"label":       label,
		})
		return err
	}

	g.events.Publish(EventMenuUpdated, map[string]interface{}{"category_id": id, "action": "updated"})
	return nil
}

// DeleteCategory removes the category row only. Products keep their category
// id and drop out of the grouped sections.
func (g *menuGateway) DeleteCategory(ctx context.Context, id string) error {
	if !g.Configured() {
		return ErrStoreNotConfigured
	}

	if err := g.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		logger.Error("Failed to delete category", err, map[string]interface{}{
			"category_id": id,
		})
		return err
	}

	g.events.Publish(EventMenuUpdated, map[string]interface{}{"category_id": id, "action": "deleted"})
	return nil
}

// UpdateCategoryOrder rewrites sort_order of every row to its index in the
// given list.
func (g *menuGateway) UpdateCategoryOrder(ctx context.Context, categories []menu.Category) error {
	if !g.Configured() {
		return ErrStoreNotConfigured
	}

	rows := make([]model.Category, 0, len(categories))
	for i, c := range categories {
		if c.ID == "" {
			return fmt.Errorf("%w: empty id at position %d", ErrInvalidCategory, i)
		}
		label := c.Label
		if label == "" {
			label = c.ID
		}
		rows = append(rows, model.Category{ID: c.ID, Label: label, SortOrder: i})
	}

	if err := g.categories.UpdateOrder(ctx, rows); err != nil {
		logger.Error("Failed to update category order", err, map[string]interface{}{
			"count": len(rows),
		})
		return err
	}

	g.events.Publish(EventMenuUpdated, map[string]interface{}{"action": "reordered"})
	return nil
}

// Singleton upserts. The row is created from the defaults merged with the
// patch when it does not exist yet.

func (g *menuGateway) UpdateAppConfig(ctx context.Context, patch menu.AppConfigPatch) error {
	if !g.Configured() {
		return ErrStoreNotConfigured
	}
	seed := model.AppConfigFromMenu(patch.Apply(menu.FallbackAppConfig()))
	if err := g.siteConfig.SaveApp(ctx, &seed, model.AppConfigColumns(patch)); err != nil {
		logger.Error("Failed to update app config", err, map[string]interface{}{
			"payload": patch,
		})
		return err
	}
	g.events.Publish(EventAppConfigUpdated, g.FetchAppConfig(ctx))
	return nil
}

func (g *menuGateway) UpdateThemeConfig(ctx context.Context, patch menu.ThemePatch) error {
	if !g.Configured() {
		return ErrStoreNotConfigured
	}
	seed := model.ThemeConfigFromMenu(patch.Apply(menu.FallbackTheme()))
	if err := g.siteConfig.SaveTheme(ctx, &seed, model.ThemeColumns(patch)); err != nil {
		logger.Error("Failed to update theme config", err, map[string]interface{}{
			"payload": patch,
		})
		return err
	}
	g.events.Publish(EventThemeUpdated, g.FetchThemeConfig(ctx))
	return nil
}

func (g *menuGateway) UpdateSocialConfig(ctx context.Context, patch menu.SocialPatch) error {
	if !g.Configured() {
		return ErrStoreNotConfigured
	}
	seed := model.SocialConfigFromMenu(patch.Apply(menu.FallbackSocial()))
	if err := g.siteConfig.SaveSocial(ctx, &seed, model.SocialColumns(patch)); err != nil {
		logger.Error("Failed to update social config", err, map[string]interface{}{
			"payload": patch,
		})
		return err
	}
	g.events.Publish(EventSocialUpdated, g.FetchSocialConfig(ctx))
	return nil
}

func (g *menuGateway) UpdateAddressConfig(ctx context.Context, patch menu.AddressPatch) error {
	if !g.Configured() {
		return ErrStoreNotConfigured
	}
	seed := model.AddressConfigFromMenu(patch.Apply(menu.FallbackAddress()))
	if err := g.siteConfig.SaveAddress(ctx, &seed, model.AddressColumns(patch)); err != nil {
		logger.Error("Failed to update address config", err, map[string]interface{}{
			"payload": patch,
		})
		return err
	}
	g.events.Publish(EventAddressUpdated, g.FetchAddressConfig(ctx))
	return nil
}

func toMenuProducts(rows []model.Product) []menu.Product {
	products := make([]menu.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.ToMenu())
	}
	return products
}

func logFallback(resource string, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Debug("Config row missing, serving defaults", map[string]interface{}{
			"resource": resource,
		})
		return
	}
	logger.Warn("Error fetching config, serving defaults", map[string]interface{}{
		"resource": resource,
		"error":    err.Error(),
	})
}
