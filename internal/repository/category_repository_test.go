package repository

import (
	"testing"

	"github.com/freshmart-next/internal/models"
)

func TestCategoryListSearchAndOrder(t *testing.T) {
	db := setupCatalogRepositoryTest(t)
	seedCatalogTree(t, db)
	repo := NewCategoryRepository(db)

	categories, total, err := repo.List(CategoryListFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 || categories[0].Slug != "bakery" {
		t.Fatalf("want bakery first of 2 got total=%d %+v", total, categories)
	}

	categories, total, err = repo.List(CategoryListFilter{Search: "dai"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 1 || categories[0].Slug != "dairy" {
		t.Fatalf("search want dairy got %+v", categories)
	}
}

func TestCategoryCountSubcategories(t *testing.T) {
	db := setupCatalogRepositoryTest(t)
	bread, _ := seedCatalogTree(t, db)
	repo := NewCategoryRepository(db)

	count, err := repo.CountSubcategories(bread.CategoryID)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("bakery subcategory count want 1 got %d", count)
	}

	var empty models.Category
	empty.Name = "Empty"
	empty.Slug = "empty"
	if err := db.Create(&empty).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	count, err = repo.CountSubcategories(empty.ID)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("empty category count want 0 got %d", count)
	}
}

func TestCategoryCountBySlug(t *testing.T) {
	db := setupCatalogRepositoryTest(t)
	seedCatalogTree(t, db)
	repo := NewCategoryRepository(db)

	count, err := repo.CountBySlug("bakery", nil)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("slug bakery count want 1 got %d", count)
	}

	var bakery models.Category
	if err := db.Where("slug = ?", "bakery").First(&bakery).Error; err != nil {
		t.Fatalf("load bakery failed: %v", err)
	}
	count, err = repo.CountBySlug("bakery", &bakery.ID)
	if err != nil {
		t.Fatalf("count with exclusion failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("excluding itself the count should be 0, got %d", count)
	}
}
