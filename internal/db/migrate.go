package db

import (
	"github.com/ikkim/creme-backend/internal/app/menu"
	"github.com/ikkim/creme-backend/internal/app/model"
	"github.com/ikkim/creme-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Models lists every table owned by the menu store.
func Models() []interface{} {
	return []interface{}{
		&model.Product{},
		&model.Category{},
		&model.ThemeConfig{},
		&model.SocialConfig{},
		&model.AddressConfig{},
		&model.AppConfig{},
	}
}

// Migrate runs database migrations
func Migrate() error {
	if DB == nil {
		logger.Info("Skipping migrations, no menu store configured")
		return nil
	}

	logger.Info("Running database migrations...")

	models := Models()
	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// Seed copies the fallback menu into empty tables.
func Seed() error {
	if DB == nil {
		return nil
	}
	return SeedFallback(DB)
}

// SeedFallback fills each empty table with the static fallback dataset.
// Tables that already hold rows are left alone.
func SeedFallback(gdb *gorm.DB) error {
	logger.Info("Seeding fallback menu...")

	if err := seedCategories(gdb); err != nil {
		logger.Error("Failed to seed categories", err)
		return err
	}
	if err := seedProducts(gdb); err != nil {
		logger.Error("Failed to seed products", err)
		return err
	}
	if err := seedSingletons(gdb); err != nil {
		logger.Error("Failed to seed site config", err)
		return err
	}

	logger.Info("Fallback menu seeded successfully")
	return nil
}

func isEmpty(gdb *gorm.DB, m interface{}) (bool, error) {
	var count int64
	if err := gdb.Model(m).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

func seedCategories(gdb *gorm.DB) error {
	empty, err := isEmpty(gdb, &model.Category{})
	if err != nil || !empty {
		return err
	}

	rows := make([]model.Category, 0)
	for _, c := range menu.FallbackCategories() {
		rows = append(rows, model.CategoryFromMenu(c))
	}
	if err := gdb.Create(&rows).Error; err != nil {
		return err
	}

	logger.Info("Categories seeded", map[string]interface{}{
		"total_categories": len(rows),
	})
	return nil
}

func seedProducts(gdb *gorm.DB) error {
	empty, err := isEmpty(gdb, &model.Product{})
	if err != nil || !empty {
		return err
	}

	rows := make([]model.Product, 0)
	for _, p := range menu.FallbackProducts() {
		rows = append(rows, model.ProductFromMenu(p))
	}
	if err := gdb.Create(&rows).Error; err != nil {
		return err
	}

	logger.Info("Products seeded", map[string]interface{}{
		"total_products": len(rows),
	})
	return nil
}

func seedSingletons(gdb *gorm.DB) error {
	theme := model.ThemeConfigFromMenu(menu.FallbackTheme())
	social := model.SocialConfigFromMenu(menu.FallbackSocial())
	address := model.AddressConfigFromMenu(menu.FallbackAddress())
	app := model.AppConfigFromMenu(menu.FallbackAppConfig())

	for _, row := range []interface{}{&theme, &social, &address, &app} {
		if err := gdb.Clauses(clause.OnConflict{DoNothing: true}).Create(row).Error; err != nil {
			return err
		}
	}
	return nil
}
