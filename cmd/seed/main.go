package main

import (
	"github.com/freshmart-next/internal/config"
	"github.com/freshmart-next/internal/logger"
	"github.com/freshmart-next/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	categories := []models.Category{
		{Name: "Bakery", Slug: "bakery", Image: "/uploads/categories/bakery.png"},
		{Name: "Dairy", Slug: "dairy", Image: "/uploads/categories/dairy.png"},
		{Name: "Produce", Slug: "produce", Image: "/uploads/categories/produce.png"},
	}
	for i := range categories {
		if err := models.DB.Where("slug = ?", categories[i].Slug).
			FirstOrCreate(&categories[i]).Error; err != nil {
			stdLog.Fatalf("failed to seed category %s: %v", categories[i].Slug, err)
		}
	}

	subcategories := []models.Subcategory{
		{Name: "Bread", Slug: "bread", CategoryID: categories[0].ID, Image: "/uploads/subcategories/bread.png"},
		{Name: "Pastry", Slug: "pastry", CategoryID: categories[0].ID, Image: "/uploads/subcategories/pastry.png"},
		{Name: "Milk", Slug: "milk", CategoryID: categories[1].ID, Image: "/uploads/subcategories/milk.png"},
		{Name: "Cheese", Slug: "cheese", CategoryID: categories[1].ID, Image: "/uploads/subcategories/cheese.png"},
		{Name: "Fruit", Slug: "fruit", CategoryID: categories[2].ID, Image: "/uploads/subcategories/fruit.png"},
	}
	for i := range subcategories {
		if err := models.DB.Where("slug = ?", subcategories[i].Slug).
			FirstOrCreate(&subcategories[i]).Error; err != nil {
			stdLog.Fatalf("failed to seed subcategory %s: %v", subcategories[i].Slug, err)
		}
	}

	products := []models.Product{
		{
			Name: "White bread", Slug: "white-bread",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(50.00)),
			SubcategoryID: subcategories[0].ID,
			ImageLarge:    "/uploads/products/white-bread-lg.png",
			ImageMedium:   "/uploads/products/white-bread-md.png",
			ImageSmall:    "/uploads/products/white-bread-sm.png",
		},
		{
			Name: "Croissant", Slug: "croissant",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(35.50)),
			SubcategoryID: subcategories[1].ID,
			ImageLarge:    "/uploads/products/croissant-lg.png",
			ImageMedium:   "/uploads/products/croissant-md.png",
			ImageSmall:    "/uploads/products/croissant-sm.png",
		},
		{
			Name: "Whole milk", Slug: "whole-milk",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(80.00)),
			SubcategoryID: subcategories[2].ID,
			ImageLarge:    "/uploads/products/whole-milk-lg.png",
			ImageMedium:   "/uploads/products/whole-milk-md.png",
			ImageSmall:    "/uploads/products/whole-milk-sm.png",
		},
		{
			Name: "Gouda cheese", Slug: "gouda-cheese",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(120.90)),
			SubcategoryID: subcategories[3].ID,
			ImageLarge:    "/uploads/products/gouda-cheese-lg.png",
			ImageMedium:   "/uploads/products/gouda-cheese-md.png",
			ImageSmall:    "/uploads/products/gouda-cheese-sm.png",
		},
		{
			Name: "Red apples", Slug: "red-apples",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(42.30)),
			SubcategoryID: subcategories[4].ID,
			ImageLarge:    "/uploads/products/red-apples-lg.png",
			ImageMedium:   "/uploads/products/red-apples-md.png",
			ImageSmall:    "/uploads/products/red-apples-sm.png",
		},
	}
	for i := range products {
		if err := models.DB.Where("slug = ?", products[i].Slug).
			FirstOrCreate(&products[i]).Error; err != nil {
			stdLog.Fatalf("failed to seed product %s: %v", products[i].Slug, err)
		}
	}

	if err := models.InitDefaultUser("", ""); err != nil {
		stdLog.Fatalf("failed to seed default user: %v", err)
	}

	stdLog.Printf("seed finished: %d categories, %d subcategories, %d products",
		len(categories), len(subcategories), len(products))
}
