package models

import "time"

// CartLine is one product's presence in a user's cart. At most one line may
// exist per (user, product); the unique index backs up service validation
// against concurrent writers. Lines are hard-deleted; the uniqueness
// constraint must hold over live rows only, so there is no soft-delete
// column here.
type CartLine struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
}

// TableName sets the table name.
func (CartLine) TableName() string {
	return "cart_lines"
}
