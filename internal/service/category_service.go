package service

import (
	"github.com/freshmart-next/internal/constants"
	"github.com/freshmart-next/internal/models"
	"github.com/freshmart-next/internal/repository"
)

type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) List(filter repository.CategoryListFilter) ([]models.Category, int64, error) {
	return s.categoryRepo.List(filter)
}

func (s *CategoryService) GetBySlug(slug string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// Create inserts a category after checking name length and slug uniqueness.
func (s *CategoryService) Create(category *models.Category) error {
	if len(category.Name) > constants.NameMaxLen || len(category.Slug) > constants.SlugMaxLen {
		return ErrNameTooLong
	}
	count, err := s.categoryRepo.CountBySlug(category.Slug, nil)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrSlugExists
	}
	return s.categoryRepo.Create(category)
}

// Delete refuses to remove a category that still has subcategories.
func (s *CategoryService) Delete(id uint) error {
	count, err := s.categoryRepo.CountSubcategories(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	return s.categoryRepo.Delete(id)
}
