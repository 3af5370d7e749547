package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/savdo-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// setupServiceTestDB 打开独立的内存数据库并迁移全部表。
// TranslateError 与生产配置保持一致，唯一索引冲突才能映射为业务错误。
func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:service_%d?mode=memory&cache=shared", time.Now().UnixNano())
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

func createTestUser(t *testing.T, db *gorm.DB, number string) models.User {
	t.Helper()

	user := models.User{Number: number, Name: "user " + number}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create test user failed: %v", err)
	}
	return user
}

func createTestCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()

	category := models.Category{Name: name}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create test category failed: %v", err)
	}
	return category
}

func createTestProduct(t *testing.T, db *gorm.DB, name, price string, discount *int64, categoryID uint) models.Product {
	t.Helper()

	d, err := decimal.NewFromString(price)
	if err != nil {
		t.Fatalf("parse price %q failed: %v", price, err)
	}
	product := models.Product{
		Name:       name,
		Price:      models.NewMoneyFromDecimal(d),
		Discount:   discount,
		Quantity:   10,
		CategoryID: categoryID,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create test product failed: %v", err)
	}
	return product
}
