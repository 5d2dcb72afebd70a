package repository

import (
	"context"

	"github.com/ikkim/creme-backend/internal/app/model"
	"github.com/ikkim/creme-backend/pkg/logger"
	"gorm.io/gorm"
)

// SiteConfigRepository reads and writes the singleton config rows.
type SiteConfigRepository interface {
	FindTheme(ctx context.Context) (*model.ThemeConfig, error)
	FindSocial(ctx context.Context) (*model.SocialConfig, error)
	FindAddress(ctx context.Context) (*model.AddressConfig, error)
	FindApp(ctx context.Context) (*model.AppConfig, error)

	// Save* update the given columns of row 1, inserting seed when the row
	// does not exist yet.
	SaveTheme(ctx context.Context, seed *model.ThemeConfig, columns map[string]interface{}) error
	SaveSocial(ctx context.Context, seed *model.SocialConfig, columns map[string]interface{}) error
	SaveAddress(ctx context.Context, seed *model.AddressConfig, columns map[string]interface{}) error
	SaveApp(ctx context.Context, seed *model.AppConfig, columns map[string]interface{}) error

	Ping(ctx context.Context) error
}

type siteConfigRepository struct {
	db *gorm.DB
}

func NewSiteConfigRepository(db *gorm.DB) SiteConfigRepository {
	return &siteConfigRepository{db: db}
}

func (r *siteConfigRepository) FindTheme(ctx context.Context) (*model.ThemeConfig, error) {
	var row model.ThemeConfig
	if err := r.findSingleton(ctx, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *siteConfigRepository) FindSocial(ctx context.Context) (*model.SocialConfig, error) {
	var row model.SocialConfig
	if err := r.findSingleton(ctx, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *siteConfigRepository) FindAddress(ctx context.Context) (*model.AddressConfig, error) {
	var row model.AddressConfig
	if err := r.findSingleton(ctx, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *siteConfigRepository) FindApp(ctx context.Context) (*model.AppConfig, error) {
	var row model.AppConfig
	if err := r.findSingleton(ctx, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *siteConfigRepository) SaveTheme(ctx context.Context, seed *model.ThemeConfig, columns map[string]interface{}) error {
	return r.saveSingleton(ctx, &model.ThemeConfig{}, seed, columns)
}

func (r *siteConfigRepository) SaveSocial(ctx context.Context, seed *model.SocialConfig, columns map[string]interface{}) error {
	return r.saveSingleton(ctx, &model.SocialConfig{}, seed, columns)
}

func (r *siteConfigRepository) SaveAddress(ctx context.Context, seed *model.AddressConfig, columns map[string]interface{}) error {
	return r.saveSingleton(ctx, &model.AddressConfig{}, seed, columns)
}

func (r *siteConfigRepository) SaveApp(ctx context.Context, seed *model.AppConfig, columns map[string]interface{}) error {
	return r.saveSingleton(ctx, &model.AppConfig{}, seed, columns)
}

// Ping checks that the store is reachable.
func (r *siteConfigRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *siteConfigRepository) findSingleton(ctx context.Context, dest interface{}) error {
	return r.db.WithContext(ctx).Where("id = ?", model.SingletonID).Take(dest).Error
}

func (r *siteConfigRepository) saveSingleton(ctx context.Context, table, seed interface{}, columns map[string]interface{}) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(columns) > 0 {
			result := tx.Model(table).Where("id = ?", model.SingletonID).Updates(columns)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected > 0 {
				return nil
			}
		} else {
			var count int64
			if err := tx.Model(table).Where("id = ?", model.SingletonID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return nil
			}
		}
		return tx.Create(seed).Error
	})
	if err != nil {
		logger.Error("Failed to save site config", err, map[string]interface{}{
			"columns": columns,
		})
		return err
	}
	return nil
}
