package repository

import (
	"context"

	"github.com/ikkim/creme-backend/internal/app/model"
	"github.com/ikkim/creme-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id string) (*model.Category, error)
	Create(ctx context.Context, category *model.Category) error
	UpdateLabel(ctx context.Context, id, label string) error
	Delete(ctx context.Context, id string) error
	UpdateOrder(ctx context.Context, categories []model.Category) error
	Upsert(ctx context.Context, categories []model.Category) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// FindAll returns categories by sort_order, id breaking ties.
func (r *categoryRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).
		Order("sort_order ASC").
		Order("id ASC").
		Find(&categories).Error
	if err != nil {
		logger.Error("Failed to fetch categories from database", err)
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id string) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		logger.Error("Failed to create category in database", err, map[string]interface{}{
			"category_id": category.ID,
			"label":       category.Label,
		})
		return err
	}
	return nil
}

func (r *categoryRepository) UpdateLabel(ctx context.Context, id, label string) error {
	result := r.db.WithContext(ctx).
		Model(&model.Category{}).
		Where("id = ?", id).
		Update("label", label)
	if result.Error != nil {
		logger.Error("Failed to update category in database", result.Error, map[string]interface{}{
			"category_id": id,
			"label":       label,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.Category{}, "id = ?", id)
	if result.Error != nil {
		logger.Error("Failed to delete category from database", result.Error, map[string]interface{}{
			"category_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateOrder rewrites sort_order for every given row in one batch upsert.
// Labels are sent along so new rows satisfy NOT NULL; existing labels are kept.
func (r *categoryRepository) UpdateOrder(ctx context.Context, categories []model.Category) error {
	if len(categories) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"sort_order"}),
	}).Create(&categories).Error
	if err != nil {
		logger.Error("Failed to update category order", err, map[string]interface{}{
			"count": len(categories),
		})
		return err
	}
	return nil
}

// Upsert inserts categories or overwrites label and sort_order.
func (r *categoryRepository) Upsert(ctx context.Context, categories []model.Category) error {
	if len(categories) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"label", "sort_order"}),
	}).Create(&categories).Error
}
