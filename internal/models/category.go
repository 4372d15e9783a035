package models

import (
	"time"

	"gorm.io/gorm"
)

// Category is the top level of the catalog tree.
type Category struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"type:varchar(30);uniqueIndex;not null" json:"name"`
	Slug      string         `gorm:"type:varchar(30);uniqueIndex;not null" json:"slug"`
	Image     string         `gorm:"type:varchar(500)" json:"image"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Category) TableName() string {
	return "categories"
}

// Subcategory is the second level of the catalog tree. Deleting a category
// that still has subcategories is rejected at the storage layer.
type Subcategory struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	Name       string         `gorm:"type:varchar(30);uniqueIndex;not null" json:"name"`
	Slug       string         `gorm:"type:varchar(30);uniqueIndex;not null" json:"slug"`
	Image      string         `gorm:"type:varchar(500)" json:"image"`
	CategoryID uint           `gorm:"not null;index" json:"category_id"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Category Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT" json:"category,omitempty"`
}

// TableName sets the table name.
func (Subcategory) TableName() string {
	return "subcategories"
}
