package service

import (
	"context"
	"fmt"
	"time"

	"github.com/freshmart-next/internal/cache"
	"github.com/freshmart-next/internal/config"
	"github.com/freshmart-next/internal/constants"
	"github.com/freshmart-next/internal/logger"
	"github.com/freshmart-next/internal/models"
	"github.com/freshmart-next/internal/repository"
)

// ProductService serves the product catalog. List pages are cached in redis
// for a short TTL when a cache is configured; the database stays the source
// of truth and stale pages simply expire.
type ProductService struct {
	productRepo repository.ProductRepository
	catalogCfg  config.CatalogConfig
}

func NewProductService(productRepo repository.ProductRepository, catalogCfg config.CatalogConfig) *ProductService {
	return &ProductService{productRepo: productRepo, catalogCfg: catalogCfg}
}

type productPage struct {
	Items []models.Product `json:"items"`
	Total int64            `json:"total"`
}

func (s *ProductService) List(ctx context.Context, filter repository.ProductListFilter) ([]models.Product, int64, error) {
	ttl := time.Duration(s.catalogCfg.ListCacheSeconds) * time.Second
	key := fmt.Sprintf("catalog:products:%s:%s:%d:%d",
		filter.SubcategorySlug, filter.Search, filter.Page, filter.PageSize)

	if cache.Enabled() && ttl > 0 {
		var page productPage
		hit, err := cache.GetJSON(ctx, key, &page)
		if err != nil {
			logger.Warnw("product list cache read failed", "err", err)
		} else if hit {
			return page.Items, page.Total, nil
		}
	}

	items, total, err := s.productRepo.List(filter)
	if err != nil {
		return nil, 0, err
	}

	if cache.Enabled() && ttl > 0 {
		if err := cache.SetJSON(ctx, key, productPage{Items: items, Total: total}, ttl); err != nil {
			logger.Warnw("product list cache write failed", "err", err)
		}
	}
	return items, total, nil
}

func (s *ProductService) GetBySlug(slug string) (*models.Product, error) {
	product, err := s.productRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

func (s *ProductService) Create(product *models.Product) error {
	if len(product.Name) > constants.NameMaxLen || len(product.Slug) > constants.SlugMaxLen {
		return ErrNameTooLong
	}
	count, err := s.productRepo.CountBySlug(product.Slug, nil)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrSlugExists
	}
	return s.productRepo.Create(product)
}
