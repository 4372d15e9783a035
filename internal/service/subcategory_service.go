package service

import (
	"github.com/freshmart-next/internal/constants"
	"github.com/freshmart-next/internal/models"
	"github.com/freshmart-next/internal/repository"
)

type SubcategoryService struct {
	subcategoryRepo repository.SubcategoryRepository
}

func NewSubcategoryService(subcategoryRepo repository.SubcategoryRepository) *SubcategoryService {
	return &SubcategoryService{subcategoryRepo: subcategoryRepo}
}

func (s *SubcategoryService) List(filter repository.SubcategoryListFilter) ([]models.Subcategory, int64, error) {
	return s.subcategoryRepo.List(filter)
}

func (s *SubcategoryService) GetBySlug(slug string) (*models.Subcategory, error) {
	subcategory, err := s.subcategoryRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, ErrNotFound
	}
	return subcategory, nil
}

func (s *SubcategoryService) Create(subcategory *models.Subcategory) error {
	if len(subcategory.Name) > constants.NameMaxLen || len(subcategory.Slug) > constants.SlugMaxLen {
		return ErrNameTooLong
	}
	count, err := s.subcategoryRepo.CountBySlug(subcategory.Slug, nil)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrSlugExists
	}
	return s.subcategoryRepo.Create(subcategory)
}

// Delete refuses to remove a subcategory that still has products.
func (s *SubcategoryService) Delete(id uint) error {
	count, err := s.subcategoryRepo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrSubcategoryInUse
	}
	return s.subcategoryRepo.Delete(id)
}
