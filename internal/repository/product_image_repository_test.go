package repository

import (
	"testing"

	"github.com/savdo-next/internal/models"
)

func TestSaveAsMainDemotesPreviousMain(t *testing.T) {
	db := setupRepositoryTestDB(t)
	category := models.Category{Name: "热菜"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := seedRepositoryProduct(t, db, "商品", "10.00", 5, nil, category.ID)

	repo := NewProductImageRepository(db)

	first := models.ProductImage{ProductID: product.ID, Image: "a.png", IsMain: true}
	if err := repo.SaveAsMain(&first); err != nil {
		t.Fatalf("save first main failed: %v", err)
	}

	second := models.ProductImage{ProductID: product.ID, Image: "b.png", IsMain: true}
	if err := repo.SaveAsMain(&second); err != nil {
		t.Fatalf("save second main failed: %v", err)
	}

	var mains []models.ProductImage
	if err := db.Where("product_id = ? AND is_main = ?", product.ID, true).Find(&mains).Error; err != nil {
		t.Fatalf("load main images failed: %v", err)
	}
	if len(mains) != 1 || mains[0].ID != second.ID {
		t.Fatalf("expected single main image %d, got %d mains", second.ID, len(mains))
	}
}

func TestSaveAsMainScopedToProduct(t *testing.T) {
	db := setupRepositoryTestDB(t)
	category := models.Category{Name: "凉菜"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	first := seedRepositoryProduct(t, db, "甲", "10.00", 5, nil, category.ID)
	second := seedRepositoryProduct(t, db, "乙", "12.00", 5, nil, category.ID)

	repo := NewProductImageRepository(db)

	firstMain := models.ProductImage{ProductID: first.ID, Image: "a.png", IsMain: true}
	if err := repo.SaveAsMain(&firstMain); err != nil {
		t.Fatalf("save main for first product failed: %v", err)
	}
	secondMain := models.ProductImage{ProductID: second.ID, Image: "b.png", IsMain: true}
	if err := repo.SaveAsMain(&secondMain); err != nil {
		t.Fatalf("save main for second product failed: %v", err)
	}

	// 不同商品的封面互不影响
	var reloaded models.ProductImage
	if err := db.First(&reloaded, firstMain.ID).Error; err != nil {
		t.Fatalf("reload first main failed: %v", err)
	}
	if !reloaded.IsMain {
		t.Fatalf("expected first product main untouched")
	}
}
