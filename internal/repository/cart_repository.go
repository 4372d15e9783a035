package repository

import (
	"database/sql"

	"github.com/freshmart-next/internal/models"

	"gorm.io/gorm"
)

// CartRepository is the cart data access interface. The delete+insert pair
// of a cart replacement runs inside one transaction owned by the service,
// via Transaction and WithTx.
type CartRepository interface {
	ListByUser(userID uint) ([]models.CartLine, error)
	ClearByUser(userID uint) (int64, error)
	InsertAll(lines []models.CartLine) ([]models.CartLine, error)
	DeleteOrphanLines() (int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository is the GORM implementation.
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a cart repository.
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// Transaction runs fn inside a serializable transaction. The delete+insert
// pair of a cart replacement must not interleave with another writer for the
// same user; under read committed two concurrent replacements can each miss
// the other's inserts and commit a mixed cart. SQLite transactions are
// serializable regardless, so the option only matters on postgres.
func (r *GormCartRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

// ListByUser returns the user's cart lines in insertion order, product
// and its catalog tree preloaded. Lines whose product has been removed from
// the catalog are skipped at read time; DeleteOrphanLines reaps them later.
func (r *GormCartRepository) ListByUser(userID uint) ([]models.CartLine, error) {
	var lines []models.CartLine
	if err := r.db.Preload("Product").Preload("Product.Subcategory").Preload("Product.Subcategory.Category").
		Joins("JOIN products ON products.id = cart_lines.product_id AND products.deleted_at IS NULL").
		Where("cart_lines.user_id = ?", userID).Order("cart_lines.id ASC").Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// ClearByUser deletes all of the user's cart lines and reports how many
// rows went away. Deleting from an empty cart is not an error.
func (r *GormCartRepository) ClearByUser(userID uint) (int64, error) {
	result := r.db.Where("user_id = ?", userID).Delete(&models.CartLine{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// InsertAll bulk-creates cart lines as a set; primary keys are assigned on
// the passed records. A single failed row fails the whole insert.
func (r *GormCartRepository) InsertAll(lines []models.CartLine) ([]models.CartLine, error) {
	if len(lines) == 0 {
		return []models.CartLine{}, nil
	}
	if err := r.db.Create(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// DeleteOrphanLines removes cart lines whose product no longer exists,
// including products that were soft-deleted from the catalog.
func (r *GormCartRepository) DeleteOrphanLines() (int64, error) {
	result := r.db.Where(
		"product_id NOT IN (?)",
		r.db.Session(&gorm.Session{NewDB: true}).Model(&models.Product{}).Select("id"),
	).Delete(&models.CartLine{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
