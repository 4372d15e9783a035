package public

import (
	"strconv"

	handlershared "github.com/freshmart-next/internal/http/handlers/shared"
	"github.com/freshmart-next/internal/http/response"
	"github.com/freshmart-next/internal/models"
	"github.com/freshmart-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// CategoryResponse mirrors the category read model.
type CategoryResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image"`
}

// SubcategoryResponse nests the full parent category.
type SubcategoryResponse struct {
	ID       uint             `json:"id"`
	Name     string           `json:"name"`
	Slug     string           `json:"slug"`
	Category CategoryResponse `json:"category"`
	Image    string           `json:"image"`
}

// ProductSubcategory is the reduced subcategory shape used on products.
type ProductSubcategory struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	ParentCategory string `json:"parent_category"`
}

// ProductResponse carries the price and the three image renditions.
type ProductResponse struct {
	ID          uint               `json:"id"`
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	Price       models.Money       `json:"price"`
	Subcategory ProductSubcategory `json:"subcategory"`
	ImageLarge  string             `json:"image_large"`
	ImageMedium string             `json:"image_medium"`
	ImageSmall  string             `json:"image_small"`
}

func toCategoryResponse(category *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:    category.ID,
		Name:  category.Name,
		Slug:  category.Slug,
		Image: category.Image,
	}
}

func toSubcategoryResponse(subcategory *models.Subcategory) SubcategoryResponse {
	return SubcategoryResponse{
		ID:       subcategory.ID,
		Name:     subcategory.Name,
		Slug:     subcategory.Slug,
		Category: toCategoryResponse(&subcategory.Category),
		Image:    subcategory.Image,
	}
}

func toProductResponse(product *models.Product) ProductResponse {
	return ProductResponse{
		ID:    product.ID,
		Name:  product.Name,
		Slug:  product.Slug,
		Price: product.Price,
		Subcategory: ProductSubcategory{
			ID:             product.Subcategory.ID,
			Name:           product.Subcategory.Name,
			Slug:           product.Subcategory.Slug,
			ParentCategory: product.Subcategory.Category.Name,
		},
		ImageLarge:  product.ImageLarge,
		ImageMedium: product.ImageMedium,
		ImageSmall:  product.ImageSmall,
	}
}

func paginationQuery(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return handlershared.NormalizePagination(page, pageSize)
}

// ListCategories handles GET /categories.
func (h *Handler) ListCategories(c *gin.Context) {
	page, pageSize := paginationQuery(c)
	filter := repository.CategoryListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
	}
	categories, total, err := h.CategoryService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list categories", err)
		return
	}
	items := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		items = append(items, toCategoryResponse(&categories[i]))
	}
	response.SuccessWithPage(c, items, response.NewPagination(page, pageSize, total))
}

// ListSubcategories handles GET /subcategories.
func (h *Handler) ListSubcategories(c *gin.Context) {
	page, pageSize := paginationQuery(c)
	filter := repository.SubcategoryListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategorySlug: c.Query("category"),
		Search:       c.Query("search"),
	}
	subcategories, total, err := h.SubcategoryService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list subcategories", err)
		return
	}
	items := make([]SubcategoryResponse, 0, len(subcategories))
	for i := range subcategories {
		items = append(items, toSubcategoryResponse(&subcategories[i]))
	}
	response.SuccessWithPage(c, items, response.NewPagination(page, pageSize, total))
}

// ListProducts handles GET /products.
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := paginationQuery(c)
	filter := repository.ProductListFilter{
		Page:            page,
		PageSize:        pageSize,
		SubcategorySlug: c.Query("subcategory"),
		Search:          c.Query("search"),
	}
	products, total, err := h.ProductService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list products", err)
		return
	}
	items := make([]ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, toProductResponse(&products[i]))
	}
	response.SuccessWithPage(c, items, response.NewPagination(page, pageSize, total))
}

// GetProduct handles GET /products/:slug.
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.ProductService.GetBySlug(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, toProductResponse(product))
}
