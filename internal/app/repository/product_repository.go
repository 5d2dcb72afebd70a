package repository

import (
	"context"

	"github.com/ikkim/creme-backend/internal/app/model"
	"github.com/ikkim/creme-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindVisible(ctx context.Context) ([]model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	Update(ctx context.Context, id string, columns map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	Upsert(ctx context.Context, products []model.Product) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	logger.Debug("Creating product in database", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
		"category":   product.Category,
	})

	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		logger.Error("Failed to create product in database", err, map[string]interface{}{
			"product_id": product.ID,
			"name":       product.Name,
		})
		return err
	}
	return nil
}

// FindVisible returns products shown on the storefront, ordered by name.
func (r *productRepository) FindVisible(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("is_visible = ?", true).
		Order("name ASC").
		Find(&products).Error
	if err != nil {
		logger.Error("Failed to fetch visible products from database", err)
		return nil, err
	}

	logger.Debug("Visible products fetched from database", map[string]interface{}{
		"count": len(products),
	})
	return products, nil
}

func (r *productRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&products).Error; err != nil {
		logger.Error("Failed to fetch products from database", err)
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Error("Failed to fetch product from database", err, map[string]interface{}{
				"product_id": id,
			})
		}
		return nil, err
	}
	return &product, nil
}

// Update writes only the given columns. A missing row yields
// gorm.ErrRecordNotFound.
func (r *productRepository) Update(ctx context.Context, id string, columns map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		logger.Error("Failed to update product in database", result.Error, map[string]interface{}{
			"product_id": id,
			"columns":    columns,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id)
	if result.Error != nil {
		logger.Error("Failed to delete product from database", result.Error, map[string]interface{}{
			"product_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	logger.Debug("Product deleted from database", map[string]interface{}{
		"product_id": id,
	})
	return nil
}

// Upsert inserts or fully overwrites products keyed by id.
func (r *productRepository) Upsert(ctx context.Context, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "price", "secondary_price", "image",
			"category", "is_featured", "is_visible", "available_options", "updated_at",
		}),
	}).Create(&products).Error
	if err != nil {
		logger.Error("Failed to upsert products", err, map[string]interface{}{
			"count": len(products),
		})
		return err
	}
	return nil
}
