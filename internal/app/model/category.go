package model

type Category struct {
	ID        string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Label     string `gorm:"not null" json:"label"`
	SortOrder int    `gorm:"not null;default:0;index" json:"sort_order"`
}

func (Category) TableName() string {
	return "categories"
}
