package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Product is a menu item row. SecondaryPrice is set only for dual-price items.
type Product struct {
	ID               string                      `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name             string                      `gorm:"not null" json:"name"`
	Description      string                      `gorm:"type:text" json:"description"`
	Price            decimal.Decimal             `gorm:"type:numeric(10,2);not null" json:"price"`
	SecondaryPrice   decimal.NullDecimal         `gorm:"type:numeric(10,2)" json:"secondary_price"`
	Image            string                      `json:"image"`
	Category         string                      `gorm:"type:varchar(64);index" json:"category"`
	IsFeatured       bool                        `gorm:"not null" json:"is_featured"`
	IsVisible        bool                        `gorm:"not null" json:"is_visible"`
	AvailableOptions datatypes.JSONSlice[string] `json:"available_options"`
	CreatedAt        time.Time                   `json:"created_at"`
	UpdatedAt        time.Time                   `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
