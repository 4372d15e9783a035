package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/freshmart-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartRepositoryTest(t *testing.T) (*GormCartRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Subcategory{},
		&models.Product{}, &models.CartLine{}); err != nil {
		t.Fatalf("migrate cart models failed: %v", err)
	}
	return NewCartRepository(db), db
}

func seedCartProduct(t *testing.T, db *gorm.DB, slug string, price string) *models.Product {
	t.Helper()
	category := &models.Category{Name: "cat-" + slug, Slug: "cat-" + slug}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	subcategory := &models.Subcategory{Name: "sub-" + slug, Slug: "sub-" + slug, CategoryID: category.ID}
	if err := db.Create(subcategory).Error; err != nil {
		t.Fatalf("create subcategory failed: %v", err)
	}
	amount, err := decimal.NewFromString(price)
	if err != nil {
		t.Fatalf("parse price failed: %v", err)
	}
	product := &models.Product{
		Name:          "product-" + slug,
		Slug:          slug,
		Price:         models.NewMoneyFromDecimal(amount),
		SubcategoryID: subcategory.ID,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestCartRepositoryInsertAndListOrdered(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	bread := seedCartProduct(t, db, "white-bread", "50.00")
	milk := seedCartProduct(t, db, "whole-milk", "80.00")

	inserted, err := repo.InsertAll([]models.CartLine{
		{UserID: 1, ProductID: bread.ID, Quantity: 2},
		{UserID: 1, ProductID: milk.ID, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("insert lines failed: %v", err)
	}
	if len(inserted) != 2 {
		t.Fatalf("inserted want 2 got %d", len(inserted))
	}

	lines, err := repo.ListByUser(1)
	if err != nil {
		t.Fatalf("list lines failed: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("lines want 2 got %d", len(lines))
	}
	if lines[0].ProductID != bread.ID || lines[1].ProductID != milk.ID {
		t.Fatalf("lines should come back in insert order")
	}
	if lines[0].Product.Name != "product-white-bread" {
		t.Fatalf("product should be preloaded, got %q", lines[0].Product.Name)
	}
	if !lines[0].Product.Price.Decimal.Equal(decimal.RequireFromString("50.00")) {
		t.Fatalf("preloaded price want 50.00 got %s", lines[0].Product.Price)
	}
}

func TestCartRepositoryClearByUserScopesToUser(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	bread := seedCartProduct(t, db, "white-bread", "50.00")

	if _, err := repo.InsertAll([]models.CartLine{
		{UserID: 1, ProductID: bread.ID, Quantity: 2},
	}); err != nil {
		t.Fatalf("insert user 1 failed: %v", err)
	}
	if _, err := repo.InsertAll([]models.CartLine{
		{UserID: 2, ProductID: bread.ID, Quantity: 5},
	}); err != nil {
		t.Fatalf("insert user 2 failed: %v", err)
	}

	deleted, err := repo.ClearByUser(1)
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("deleted want 1 got %d", deleted)
	}

	other, err := repo.ListByUser(2)
	if err != nil {
		t.Fatalf("list user 2 failed: %v", err)
	}
	if len(other) != 1 || other[0].Quantity != 5 {
		t.Fatalf("other user's cart must be untouched")
	}

	deleted, err = repo.ClearByUser(1)
	if err != nil {
		t.Fatalf("clearing an empty cart should succeed: %v", err)
	}
	if deleted != 0 {
		t.Fatalf("second clear deleted want 0 got %d", deleted)
	}
}

func TestCartRepositoryTransactionRollsBackOnFailure(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	bread := seedCartProduct(t, db, "white-bread", "50.00")

	if _, err := repo.InsertAll([]models.CartLine{
		{UserID: 1, ProductID: bread.ID, Quantity: 3},
	}); err != nil {
		t.Fatalf("seed cart failed: %v", err)
	}

	boom := errors.New("boom")
	err := repo.Transaction(func(tx *gorm.DB) error {
		txRepo := repo.WithTx(tx)
		if _, err := txRepo.ClearByUser(1); err != nil {
			return err
		}
		if _, err := txRepo.InsertAll([]models.CartLine{
			{UserID: 1, ProductID: bread.ID, Quantity: 9},
		}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("transaction should surface the inner error, got %v", err)
	}

	lines, err := repo.ListByUser(1)
	if err != nil {
		t.Fatalf("list after rollback failed: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 3 {
		t.Fatalf("rollback should restore the original cart, got %+v", lines)
	}
}

func TestCartRepositoryUniqueUserProduct(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	bread := seedCartProduct(t, db, "white-bread", "50.00")

	if _, err := repo.InsertAll([]models.CartLine{
		{UserID: 1, ProductID: bread.ID, Quantity: 1},
	}); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	if _, err := repo.InsertAll([]models.CartLine{
		{UserID: 1, ProductID: bread.ID, Quantity: 2},
	}); err == nil {
		t.Fatalf("duplicate (user, product) insert should violate the unique index")
	}
	if _, err := repo.InsertAll([]models.CartLine{
		{UserID: 2, ProductID: bread.ID, Quantity: 2},
	}); err != nil {
		t.Fatalf("same product for another user must insert: %v", err)
	}
}

func TestCartRepositoryDeleteOrphanLines(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	bread := seedCartProduct(t, db, "white-bread", "50.00")
	milk := seedCartProduct(t, db, "whole-milk", "80.00")

	if _, err := repo.InsertAll([]models.CartLine{
		{UserID: 1, ProductID: bread.ID, Quantity: 1},
		{UserID: 1, ProductID: milk.ID, Quantity: 1},
	}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if err := db.Unscoped().Delete(&models.Product{}, milk.ID).Error; err != nil {
		t.Fatalf("delete product failed: %v", err)
	}

	removed, err := repo.DeleteOrphanLines()
	if err != nil {
		t.Fatalf("prune failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed want 1 got %d", removed)
	}

	lines, err := repo.ListByUser(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(lines) != 1 || lines[0].ProductID != bread.ID {
		t.Fatalf("only the orphan line should be gone, got %+v", lines)
	}
}

// beginRecorder wraps the raw connection pool and records the options of
// the most recent BeginTx call.
type beginRecorder struct {
	*sql.DB
	lastOpts *sql.TxOptions
}

func (r *beginRecorder) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	r.lastOpts = opts
	return r.DB.BeginTx(ctx, opts)
}

func TestCartRepositoryTransactionUsesSerializableIsolation(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open raw sqlite failed: %v", err)
	}
	recorder := &beginRecorder{DB: sqlDB}
	db, err := gorm.Open(sqlite.Dialector{DSN: dsn, Conn: recorder}, &gorm.Config{})
	if err != nil {
		t.Fatalf("open gorm failed: %v", err)
	}
	if err := db.AutoMigrate(&models.CartLine{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	repo := NewCartRepository(db)
	if err := repo.Transaction(func(tx *gorm.DB) error { return nil }); err != nil {
		t.Fatalf("transaction failed: %v", err)
	}
	if recorder.lastOpts == nil {
		t.Fatal("transaction did not pass options to BeginTx")
	}
	if recorder.lastOpts.Isolation != sql.LevelSerializable {
		t.Fatalf("want serializable isolation, got %v", recorder.lastOpts.Isolation)
	}
}

func TestCartRepositoryListSkipsSoftDeletedProducts(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	bread := seedCartProduct(t, db, "white-bread", "50.00")
	milk := seedCartProduct(t, db, "whole-milk", "80.00")

	_, err := repo.InsertAll([]models.CartLine{
		{UserID: 42, ProductID: bread.ID, Quantity: 2},
		{UserID: 42, ProductID: milk.ID, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if err := db.Delete(bread).Error; err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}

	lines, err := repo.ListByUser(42)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("want 1 line after product removal, got %d", len(lines))
	}
	if lines[0].ProductID != milk.ID || lines[0].Product.Slug != "whole-milk" {
		t.Fatalf("remaining line should be the live product, got %+v", lines[0])
	}
}
