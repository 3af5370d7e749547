package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"

	"gorm.io/gorm"
)

func setupScrollServiceTest(t *testing.T) (*CategoryScrollService, *gorm.DB) {
	t.Helper()

	db := setupServiceTestDB(t)
	return NewCategoryScrollService(repository.NewCategoryScrollRepository(db)), db
}

func TestCreateScrollDuplicateName(t *testing.T) {
	svc, _ := setupScrollServiceTest(t)

	if _, err := svc.Create(CreateScrollInput{Name: "今日推荐"}); err != nil {
		t.Fatalf("create scroll failed: %v", err)
	}
	if _, err := svc.Create(CreateScrollInput{Name: "今日推荐"}); !errors.Is(err, ErrScrollNameExists) {
		t.Fatalf("expected ErrScrollNameExists, got %v", err)
	}
}

func TestUpdateScrollKeepOwnName(t *testing.T) {
	svc, _ := setupScrollServiceTest(t)

	scroll, err := svc.Create(CreateScrollInput{Name: "新品上架", Image: "a.png"})
	if err != nil {
		t.Fatalf("create scroll failed: %v", err)
	}

	// 名称不变时更新不应触发唯一性冲突
	updated, err := svc.Update(fmt.Sprintf("%d", scroll.ID), CreateScrollInput{Name: "新品上架", Image: "b.png"})
	if err != nil {
		t.Fatalf("update scroll failed: %v", err)
	}
	if updated.Image != "b.png" {
		t.Fatalf("expected image b.png, got %s", updated.Image)
	}
}

func TestDeleteScrollDetachesProducts(t *testing.T) {
	svc, db := setupScrollServiceTest(t)
	category := createTestCategory(t, db, "热菜")

	scroll, err := svc.Create(CreateScrollInput{Name: "今日推荐"})
	if err != nil {
		t.Fatalf("create scroll failed: %v", err)
	}
	product := createTestProduct(t, db, "商品", "10.00", nil, category.ID)
	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("category_scroll_id", scroll.ID).Error; err != nil {
		t.Fatalf("attach product failed: %v", err)
	}

	if err := svc.Delete(fmt.Sprintf("%d", scroll.ID)); err != nil {
		t.Fatalf("delete scroll failed: %v", err)
	}

	var reloaded models.Product
	if err := db.First(&reloaded, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if reloaded.CategoryScrollID != nil {
		t.Fatalf("expected product detached from scroll, got %v", *reloaded.CategoryScrollID)
	}
}
