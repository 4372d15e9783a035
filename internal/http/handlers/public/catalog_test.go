package public

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/freshmart-next/internal/config"
	"github.com/freshmart-next/internal/models"
	"github.com/freshmart-next/internal/provider"
	"github.com/freshmart-next/internal/repository"
	"github.com/freshmart-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCatalogHandlerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Subcategory{}, &models.Product{}); err != nil {
		t.Fatalf("migrate models failed: %v", err)
	}

	container := &provider.Container{
		CategoryService:    service.NewCategoryService(repository.NewCategoryRepository(db)),
		SubcategoryService: service.NewSubcategoryService(repository.NewSubcategoryRepository(db)),
		ProductService:     service.NewProductService(repository.NewProductRepository(db), config.CatalogConfig{}),
	}
	handler := New(container)

	r := gin.New()
	api := r.Group("/api/v1")
	api.GET("/categories", handler.ListCategories)
	api.GET("/subcategories", handler.ListSubcategories)
	api.GET("/products", handler.ListProducts)
	api.GET("/products/:slug", handler.GetProduct)
	return r, db
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	bakery := &models.Category{Name: "Bakery", Slug: "bakery", Image: "/uploads/bakery.png"}
	dairy := &models.Category{Name: "Dairy", Slug: "dairy"}
	for _, c := range []*models.Category{bakery, dairy} {
		if err := db.Create(c).Error; err != nil {
			t.Fatalf("create category failed: %v", err)
		}
	}
	bread := &models.Subcategory{Name: "Bread", Slug: "bread", CategoryID: bakery.ID}
	milk := &models.Subcategory{Name: "Milk", Slug: "milk", CategoryID: dairy.ID}
	for _, s := range []*models.Subcategory{bread, milk} {
		if err := db.Create(s).Error; err != nil {
			t.Fatalf("create subcategory failed: %v", err)
		}
	}
	products := []*models.Product{
		{Name: "White bread", Slug: "white-bread",
			Price: models.NewMoneyFromDecimal(decimal.RequireFromString("50.00")), SubcategoryID: bread.ID,
			ImageLarge: "/uploads/wb-lg.png", ImageMedium: "/uploads/wb-md.png", ImageSmall: "/uploads/wb-sm.png"},
		{Name: "Whole milk", Slug: "whole-milk",
			Price: models.NewMoneyFromDecimal(decimal.RequireFromString("80.00")), SubcategoryID: milk.ID},
	}
	for _, p := range products {
		if err := db.Create(p).Error; err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}
}

func getJSON(t *testing.T, r *gin.Engine, path string, dest interface{}) int {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	if dest != nil {
		if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
			t.Fatalf("unmarshal %s failed: %v (body %s)", path, err, w.Body.String())
		}
	}
	return w.Code
}

func TestListCategories(t *testing.T) {
	r, db := setupCatalogHandlerTest(t)
	seedCatalog(t, db)

	var resp struct {
		Data []struct {
			ID    uint   `json:"id"`
			Name  string `json:"name"`
			Slug  string `json:"slug"`
			Image string `json:"image"`
		} `json:"data"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	if code := getJSON(t, r, "/api/v1/categories", &resp); code != http.StatusOK {
		t.Fatalf("status want 200 got %d", code)
	}
	if len(resp.Data) != 2 || resp.Pagination.Total != 2 {
		t.Fatalf("want 2 categories got %+v", resp)
	}
	if resp.Data[0].Name != "Bakery" || resp.Data[0].Image != "/uploads/bakery.png" {
		t.Fatalf("unexpected first category %+v", resp.Data[0])
	}
}

func TestListSubcategoriesNestsCategory(t *testing.T) {
	r, db := setupCatalogHandlerTest(t)
	seedCatalog(t, db)

	var resp struct {
		Data []struct {
			Name     string `json:"name"`
			Slug     string `json:"slug"`
			Category struct {
				Name string `json:"name"`
				Slug string `json:"slug"`
			} `json:"category"`
		} `json:"data"`
	}
	if code := getJSON(t, r, "/api/v1/subcategories?category=bakery", &resp); code != http.StatusOK {
		t.Fatalf("status want 200 got %d", code)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("want 1 subcategory for bakery got %d", len(resp.Data))
	}
	if resp.Data[0].Slug != "bread" || resp.Data[0].Category.Slug != "bakery" {
		t.Fatalf("unexpected subcategory %+v", resp.Data[0])
	}
}

func TestListProductsFilterAndShape(t *testing.T) {
	r, db := setupCatalogHandlerTest(t)
	seedCatalog(t, db)

	var resp struct {
		Data []struct {
			Name        string `json:"name"`
			Slug        string `json:"slug"`
			Price       string `json:"price"`
			Subcategory struct {
				Name           string `json:"name"`
				ParentCategory string `json:"parent_category"`
			} `json:"subcategory"`
			ImageLarge string `json:"image_large"`
		} `json:"data"`
	}
	if code := getJSON(t, r, "/api/v1/products?subcategory=bread", &resp); code != http.StatusOK {
		t.Fatalf("status want 200 got %d", code)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("want 1 product for bread got %d", len(resp.Data))
	}
	got := resp.Data[0]
	if got.Slug != "white-bread" || got.Price != "50.00" {
		t.Fatalf("unexpected product %+v", got)
	}
	if got.Subcategory.Name != "Bread" || got.Subcategory.ParentCategory != "Bakery" {
		t.Fatalf("product should nest the reduced subcategory, got %+v", got.Subcategory)
	}
	if got.ImageLarge != "/uploads/wb-lg.png" {
		t.Fatalf("unexpected image %q", got.ImageLarge)
	}

	if code := getJSON(t, r, "/api/v1/products?search=milk", &resp); code != http.StatusOK {
		t.Fatalf("search status want 200 got %d", code)
	}
	if len(resp.Data) != 1 || resp.Data[0].Slug != "whole-milk" {
		t.Fatalf("search want whole-milk got %+v", resp.Data)
	}
}

func TestGetProductBySlug(t *testing.T) {
	r, db := setupCatalogHandlerTest(t)
	seedCatalog(t, db)

	var product struct {
		Name  string `json:"name"`
		Price string `json:"price"`
	}
	if code := getJSON(t, r, "/api/v1/products/whole-milk", &product); code != http.StatusOK {
		t.Fatalf("status want 200 got %d", code)
	}
	if product.Name != "Whole milk" || product.Price != "80.00" {
		t.Fatalf("unexpected product %+v", product)
	}

	var errResp map[string]string
	if code := getJSON(t, r, "/api/v1/products/missing", &errResp); code != http.StatusNotFound {
		t.Fatalf("missing slug status want 404 got %d", code)
	}
	if errResp["error"] == "" {
		t.Fatalf("404 body should carry an error message")
	}
}
