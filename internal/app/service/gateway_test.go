package service

import (
	"context"
	"sync"
	"testing"

	"github.com/ikkim/creme-backend/config"
	"github.com/ikkim/creme-backend/internal/app/menu"
	"github.com/ikkim/creme-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordedEvent struct {
	Type    string
	Payload interface{}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *recordingPublisher) Publish(eventType string, payload interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{Type: eventType, Payload: payload})
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func setupGatewayTest(t *testing.T) (*gorm.DB, MenuGateway, *recordingPublisher) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	events := &recordingPublisher{}
	gateway := NewMenuGateway(NewStoreRepositories(testDB), events)
	return testDB, gateway, events
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestMenuGateway_UnconfiguredReadsServeFallback(t *testing.T) {
	gateway := NewMenuGateway(NewStoreRepositories(nil), nil)
	ctx := context.Background()

	assert.False(t, gateway.Configured())
	assert.Equal(t, menu.FallbackVisibleProducts(), gateway.FetchProducts(ctx))
	assert.Equal(t, menu.FallbackProducts(), gateway.FetchAllProducts(ctx))
	assert.Equal(t, menu.FallbackCategories(), gateway.FetchCategories(ctx))
	assert.Equal(t, menu.FallbackTheme(), gateway.FetchThemeConfig(ctx))
	assert.Equal(t, menu.FallbackSocial(), gateway.FetchSocialConfig(ctx))
	assert.Equal(t, menu.FallbackAddress(), gateway.FetchAddressConfig(ctx))
	assert.Equal(t, menu.FallbackAppConfig(), gateway.FetchAppConfig(ctx))

	all := gateway.FetchAllConfig(ctx)
	assert.Equal(t, menu.FallbackTheme(), all.Theme)
	assert.Equal(t, menu.FallbackSocial(), all.Social)
	assert.Equal(t, menu.FallbackAddress(), all.Address)
}

func TestMenuGateway_UnconfiguredWritesAreRefused(t *testing.T) {
	gateway := NewMenuGateway(NewStoreRepositories(nil), nil)
	ctx := context.Background()

	_, err := gateway.CreateProduct(ctx, menu.Product{Name: "Mocha", Category: "coffee", Price: 5})
	assert.ErrorIs(t, err, ErrStoreNotConfigured)
	assert.ErrorIs(t, gateway.UpdateProduct(ctx, "1", menu.ProductPatch{Name: strPtr("x")}), ErrStoreNotConfigured)
	assert.ErrorIs(t, gateway.DeleteProduct(ctx, "1"), ErrStoreNotConfigured)
	_, err = gateway.CreateCategory(ctx, menu.Category{ID: "tea", Label: "Tea"})
	assert.ErrorIs(t, err, ErrStoreNotConfigured)
	assert.ErrorIs(t, gateway.UpdateCategory(ctx, "tea", "Tea"), ErrStoreNotConfigured)
	assert.ErrorIs(t, gateway.DeleteCategory(ctx, "tea"), ErrStoreNotConfigured)
	assert.ErrorIs(t, gateway.UpdateCategoryOrder(ctx, menu.FallbackCategories()), ErrStoreNotConfigured)
	assert.ErrorIs(t, gateway.UpdateAppConfig(ctx, menu.AppConfigPatch{}), ErrStoreNotConfigured)
	assert.ErrorIs(t, gateway.UpdateThemeConfig(ctx, menu.ThemePatch{}), ErrStoreNotConfigured)
	assert.ErrorIs(t, gateway.UpdateSocialConfig(ctx, menu.SocialPatch{}), ErrStoreNotConfigured)
	assert.ErrorIs(t, gateway.UpdateAddressConfig(ctx, menu.AddressPatch{}), ErrStoreNotConfigured)
	assert.ErrorIs(t, gateway.Ping(ctx), ErrStoreNotConfigured)
}

func TestMenuGateway_ReadErrorServesFallback(t *testing.T) {
	testDB, gateway, _ := setupGatewayTest(t)
	ctx := context.Background()

	// A closed pool turns every query into an error.
	db.CleanupTestDB(testDB)

	assert.True(t, gateway.Configured())
	assert.Equal(t, menu.FallbackVisibleProducts(), gateway.FetchProducts(ctx))
	assert.Equal(t, menu.FallbackProducts(), gateway.FetchAllProducts(ctx))
	assert.Equal(t, menu.FallbackCategories(), gateway.FetchCategories(ctx))
	assert.Equal(t, menu.FallbackTheme(), gateway.FetchThemeConfig(ctx))
	assert.Equal(t, menu.FallbackSocial(), gateway.FetchSocialConfig(ctx))
	assert.Equal(t, menu.FallbackAddress(), gateway.FetchAddressConfig(ctx))
	assert.Equal(t, menu.FallbackAppConfig(), gateway.FetchAppConfig(ctx))

	all := gateway.FetchAllConfig(ctx)
	assert.Equal(t, menu.FallbackTheme(), all.Theme)
	assert.Equal(t, menu.FallbackSocial(), all.Social)
	assert.Equal(t, menu.FallbackAddress(), all.Address)

	assert.Error(t, gateway.Ping(ctx))
}

func TestMenuGateway_UnreachableStoreServesFallback(t *testing.T) {
	gdb, err := db.Open(&config.DatabaseConfig{
		Host: "127.0.0.1", Port: "1", User: "creme", Password: "creme", DBName: "creme", SSLMode: "disable",
	})
	require.NoError(t, err)
	defer db.CleanupTestDB(gdb)

	gateway := NewMenuGateway(NewStoreRepositories(gdb), nil)
	ctx := context.Background()

	assert.True(t, gateway.Configured())
	assert.Equal(t, menu.FallbackVisibleProducts(), gateway.FetchProducts(ctx))
	assert.Equal(t, menu.FallbackCategories(), gateway.FetchCategories(ctx))
	assert.Equal(t, menu.FallbackTheme(), gateway.FetchThemeConfig(ctx))
	assert.Equal(t, menu.FallbackAppConfig(), gateway.FetchAppConfig(ctx))
	assert.Error(t, gateway.Ping(ctx))

	// Writes report the outage instead of pretending to succeed.
	_, err = gateway.CreateCategory(ctx, menu.Category{ID: "tea", Label: "Tea"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrStoreNotConfigured)
}

func TestMenuGateway_MissingSingletonsServeDefaults(t *testing.T) {
	testDB, gateway, _ := setupGatewayTest(t)
	defer db.CleanupTestDB(testDB)
	ctx := context.Background()

	assert.Equal(t, menu.FallbackTheme(), gateway.FetchThemeConfig(ctx))
	assert.Equal(t, menu.FallbackSocial(), gateway.FetchSocialConfig(ctx))
	assert.Equal(t, menu.FallbackAddress(), gateway.FetchAddressConfig(ctx))

	// An empty but healthy products table is not a failure.
	assert.Empty(t, gateway.FetchProducts(ctx))
}

func TestMenuGateway_ProductLifecycle(t *testing.T) {
	testDB, gateway, events := setupGatewayTest(t)
	defer db.CleanupTestDB(testDB)
	ctx := context.Background()

	created, err := gateway.CreateProduct(ctx, menu.Product{
		ID:               "ignored",
		Name:             "Iced Mocha",
		Description:      "Chocolate and espresso",
		Price:            5.5,
		SecondaryPrice:   floatPtr(6),
		Category:         "coffee",
		IsVisible:        true,
		AvailableOptions: []string{"Hot", "Cold"},
	})
	require.NoError(t, err)
	assert.NotEqual(t, "ignored", created.ID)
	assert.Len(t, created.ID, 36)

	products := gateway.FetchProducts(ctx)
	require.Len(t, products, 1)
	assert.Equal(t, 5.5, products[0].Price)
	require.NotNil(t, products[0].SecondaryPrice)
	assert.Equal(t, 6.0, *products[0].SecondaryPrice)
	assert.Equal(t, []string{"Hot", "Cold"}, products[0].AvailableOptions)

	t.Run("sparse update keeps other fields", func(t *testing.T) {
		err := gateway.UpdateProduct(ctx, created.ID, menu.ProductPatch{Name: strPtr("Mocha")})
		require.NoError(t, err)

		all := gateway.FetchAllProducts(ctx)
		require.Len(t, all, 1)
		assert.Equal(t, "Mocha", all[0].Name)
		assert.Equal(t, "Chocolate and espresso", all[0].Description)
		assert.Equal(t, 5.5, all[0].Price)
	})

	t.Run("clearing secondary price alone breaks the option invariant", func(t *testing.T) {
		patch := menu.ProductPatch{SecondaryPrice: menu.NullableFloat{Set: true}}
		err := gateway.UpdateProduct(ctx, created.ID, patch)
		assert.ErrorIs(t, err, ErrInvalidProduct)
	})

	t.Run("switching to single price with one option", func(t *testing.T) {
		options := []string{"Hot"}
		patch := menu.ProductPatch{
			SecondaryPrice:   menu.NullableFloat{Set: true},
			AvailableOptions: &options,
		}
		require.NoError(t, gateway.UpdateProduct(ctx, created.ID, patch))

		all := gateway.FetchAllProducts(ctx)
		require.Len(t, all, 1)
		assert.Nil(t, all[0].SecondaryPrice)
		assert.Equal(t, []string{"Hot"}, all[0].AvailableOptions)
	})

	t.Run("hidden products drop off the storefront", func(t *testing.T) {
		require.NoError(t, gateway.UpdateProduct(ctx, created.ID, menu.ProductPatch{IsVisible: boolPtr(false)}))
		assert.Empty(t, gateway.FetchProducts(ctx))
		assert.Len(t, gateway.FetchAllProducts(ctx), 1)
	})

	t.Run("update of unknown product", func(t *testing.T) {
		err := gateway.UpdateProduct(ctx, "missing", menu.ProductPatch{Name: strPtr("x")})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("empty patch checks the product exists", func(t *testing.T) {
		assert.NoError(t, gateway.UpdateProduct(ctx, created.ID, menu.ProductPatch{}))
		assert.ErrorIs(t, gateway.UpdateProduct(ctx, "missing", menu.ProductPatch{}), ErrProductNotFound)
	})

	require.NoError(t, gateway.DeleteProduct(ctx, created.ID))
	assert.ErrorIs(t, gateway.DeleteProduct(ctx, created.ID), ErrProductNotFound)

	assert.Contains(t, events.types(), EventMenuUpdated)
}

func TestMenuGateway_CreateProductValidates(t *testing.T) {
	testDB, gateway, events := setupGatewayTest(t)
	defer db.CleanupTestDB(testDB)

	_, err := gateway.CreateProduct(context.Background(), menu.Product{
		Name:             "Latte",
		Category:         "coffee",
		Price:            4,
		SecondaryPrice:   floatPtr(4.5),
		AvailableOptions: []string{"Hot"},
	})
	assert.ErrorIs(t, err, ErrInvalidProduct)
	assert.Empty(t, events.types())
}

func TestMenuGateway_CategoryLifecycle(t *testing.T) {
	testDB, gateway, _ := setupGatewayTest(t)
	defer db.CleanupTestDB(testDB)
	ctx := context.Background()

	first, err := gateway.CreateCategory(ctx, menu.Category{ID: "Iced Drinks", Label: "Iced Drinks"})
	require.NoError(t, err)
	assert.Equal(t, "iced-drinks", first.ID)
	assert.Equal(t, 0, first.SortOrder)

	second, err := gateway.CreateCategory(ctx, menu.Category{ID: "tea", Label: "Tea"})
	require.NoError(t, err)
	assert.Equal(t, 1, second.SortOrder)

	_, err = gateway.CreateCategory(ctx, menu.Category{ID: "iced drinks", Label: "Again"})
	assert.ErrorIs(t, err, ErrCategoryExists)

	_, err = gateway.CreateCategory(ctx, menu.Category{ID: "", Label: "No id"})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	require.NoError(t, gateway.UpdateCategory(ctx, "tea", "Premium Teas"))
	assert.ErrorIs(t, gateway.UpdateCategory(ctx, "missing", "x"), ErrCategoryNotFound)

	categories := gateway.FetchCategories(ctx)
	require.Len(t, categories, 2)
	assert.Equal(t, "Premium Teas", categories[1].Label)

	// Reverse the order.
	reordered := []menu.Category{categories[1], categories[0]}
	require.NoError(t, gateway.UpdateCategoryOrder(ctx, reordered))

	categories = gateway.FetchCategories(ctx)
	require.Len(t, categories, 2)
	assert.Equal(t, "tea", categories[0].ID)
	assert.Equal(t, 0, categories[0].SortOrder)
	assert.Equal(t, "iced-drinks", categories[1].ID)
	assert.Equal(t, 1, categories[1].SortOrder)

	require.NoError(t, gateway.DeleteCategory(ctx, "tea"))
	assert.ErrorIs(t, gateway.DeleteCategory(ctx, "tea"), ErrCategoryNotFound)
}

func TestMenuGateway_ConfigUpserts(t *testing.T) {
	testDB, gateway, events := setupGatewayTest(t)
	defer db.CleanupTestDB(testDB)
	ctx := context.Background()

	require.NoError(t, gateway.UpdateThemeConfig(ctx, menu.ThemePatch{PrimaryColor: strPtr("#123456")}))
	theme := gateway.FetchThemeConfig(ctx)
	assert.Equal(t, "#123456", theme.PrimaryColor)
	assert.Equal(t, menu.FallbackTheme().FontFamily, theme.FontFamily)

	require.NoError(t, gateway.UpdateThemeConfig(ctx, menu.ThemePatch{FontFamily: strPtr("Inter")}))
	theme = gateway.FetchThemeConfig(ctx)
	assert.Equal(t, "#123456", theme.PrimaryColor)
	assert.Equal(t, "Inter", theme.FontFamily)

	require.NoError(t, gateway.UpdateSocialConfig(ctx, menu.SocialPatch{Instagram: strPtr("https://instagram.com/creme")}))
	social := gateway.FetchSocialConfig(ctx)
	assert.Equal(t, "https://instagram.com/creme", social.Instagram)
	assert.Equal(t, menu.FallbackSocial().Facebook, social.Facebook)

	require.NoError(t, gateway.UpdateAddressConfig(ctx, menu.AddressPatch{Text: strPtr("1 Jalan Kopi")}))
	assert.Equal(t, "1 Jalan Kopi", gateway.FetchAddressConfig(ctx).Text)

	require.NoError(t, gateway.UpdateAppConfig(ctx, menu.AppConfigPatch{ShowLogo: boolPtr(false), BrandName: strPtr("Creme")}))
	app := gateway.FetchAppConfig(ctx)
	assert.False(t, app.ShowLogo)
	assert.Equal(t, "Creme", app.BrandName)
	assert.Equal(t, 16, app.FontSizeBase)

	assert.Equal(t, []string{
		EventThemeUpdated,
		EventThemeUpdated,
		EventSocialUpdated,
		EventAddressUpdated,
		EventAppConfigUpdated,
	}, events.types())
}
