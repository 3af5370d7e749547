package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/savdo-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupRepositoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repository_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.CategoryScroll{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductRate{},
		&models.Order{},
		&models.OrderItem{},
		&models.LikeProduct{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func seedRepositoryProduct(t *testing.T, db *gorm.DB, name, price string, quantity int64, discount *int64, categoryID uint) models.Product {
	t.Helper()

	d, err := decimal.NewFromString(price)
	if err != nil {
		t.Fatalf("parse price %q failed: %v", price, err)
	}
	product := models.Product{
		Name:        name,
		Description: name + " 描述",
		Price:       models.NewMoneyFromDecimal(d),
		Discount:    discount,
		Quantity:    quantity,
		CategoryID:  categoryID,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}
