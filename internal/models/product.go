package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a sellable catalog item. The cart treats products as read-only
// external data; price is always taken from the catalog at read time.
type Product struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	Name          string         `gorm:"type:varchar(30);uniqueIndex;not null" json:"name"`
	Slug          string         `gorm:"type:varchar(30);uniqueIndex;not null" json:"slug"`
	Price         Money          `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	SubcategoryID uint           `gorm:"not null;index" json:"subcategory_id"`
	ImageLarge    string         `gorm:"type:varchar(500)" json:"image_large"`
	ImageMedium   string         `gorm:"type:varchar(500)" json:"image_medium"`
	ImageSmall    string         `gorm:"type:varchar(500)" json:"image_small"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Subcategory Subcategory `gorm:"foreignKey:SubcategoryID;constraint:OnDelete:RESTRICT" json:"subcategory,omitempty"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}
