package repository

import (
	"errors"
	"strings"

	"github.com/freshmart-next/internal/models"

	"gorm.io/gorm"
)

// SubcategoryRepository is the subcategory data access interface.
type SubcategoryRepository interface {
	List(filter SubcategoryListFilter) ([]models.Subcategory, int64, error)
	GetByID(id uint) (*models.Subcategory, error)
	GetBySlug(slug string) (*models.Subcategory, error)
	Create(subcategory *models.Subcategory) error
	Delete(id uint) error
	CountBySlug(slug string, excludeID *uint) (int64, error)
	CountProducts(subcategoryID uint) (int64, error)
}

// GormSubcategoryRepository is the GORM implementation.
type GormSubcategoryRepository struct {
	db *gorm.DB
}

// NewSubcategoryRepository creates a subcategory repository.
func NewSubcategoryRepository(db *gorm.DB) *GormSubcategoryRepository {
	return &GormSubcategoryRepository{db: db}
}

// List returns subcategories ordered by name, parent category preloaded.
func (r *GormSubcategoryRepository) List(filter SubcategoryListFilter) ([]models.Subcategory, int64, error) {
	query := r.db.Model(&models.Subcategory{})
	if categorySlug := strings.TrimSpace(filter.CategorySlug); categorySlug != "" {
		query = query.Joins("JOIN categories ON categories.id = subcategories.category_id").
			Where("categories.slug = ?", categorySlug)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("subcategories.name LIKE ? OR subcategories.slug LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subcategories []models.Subcategory
	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Preload("Category").Order("subcategories.name ASC").Find(&subcategories).Error; err != nil {
		return nil, 0, err
	}
	return subcategories, total, nil
}

// GetByID fetches a subcategory by primary key.
func (r *GormSubcategoryRepository) GetByID(id uint) (*models.Subcategory, error) {
	var subcategory models.Subcategory
	if err := r.db.Preload("Category").First(&subcategory, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subcategory, nil
}

// GetBySlug fetches a subcategory by slug.
func (r *GormSubcategoryRepository) GetBySlug(slug string) (*models.Subcategory, error) {
	var subcategory models.Subcategory
	if err := r.db.Preload("Category").Where("slug = ?", slug).First(&subcategory).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subcategory, nil
}

// Create inserts a subcategory.
func (r *GormSubcategoryRepository) Create(subcategory *models.Subcategory) error {
	return r.db.Create(subcategory).Error
}

// Delete removes a subcategory.
func (r *GormSubcategoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Subcategory{}, id).Error
}

// CountBySlug counts subcategories with the given slug.
func (r *GormSubcategoryRepository) CountBySlug(slug string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Subcategory{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountProducts counts products referencing a subcategory.
func (r *GormSubcategoryRepository) CountProducts(subcategoryID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("subcategory_id = ?", subcategoryID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
