package service

import (
	"errors"
	"testing"

	"github.com/savdo-next/internal/repository"

	"gorm.io/gorm"
)

func setupRatingServiceTest(t *testing.T) (*RatingService, *gorm.DB) {
	t.Helper()

	db := setupServiceTestDB(t)
	svc := NewRatingService(
		repository.NewProductRateRepository(db),
		repository.NewProductRepository(db),
	)
	return svc, db
}

func TestCreateRating(t *testing.T) {
	svc, db := setupRatingServiceTest(t)
	category := createTestCategory(t, db, "热菜")
	product := createTestProduct(t, db, "商品", "20.00", nil, category.ID)

	rate, err := svc.Create(CreateRatingInput{UserNumber: 13800000001, ProductID: product.ID, Rate: 4})
	if err != nil {
		t.Fatalf("create rating failed: %v", err)
	}
	if rate.Rate != 4 {
		t.Fatalf("expected rate 4, got %d", rate.Rate)
	}
}

func TestCreateRatingDuplicate(t *testing.T) {
	svc, db := setupRatingServiceTest(t)
	category := createTestCategory(t, db, "凉菜")
	product := createTestProduct(t, db, "商品", "20.00", nil, category.ID)

	if _, err := svc.Create(CreateRatingInput{UserNumber: 13800000002, ProductID: product.ID, Rate: 5}); err != nil {
		t.Fatalf("first rating failed: %v", err)
	}
	if _, err := svc.Create(CreateRatingInput{UserNumber: 13800000002, ProductID: product.ID, Rate: 3}); !errors.Is(err, ErrRateExists) {
		t.Fatalf("expected ErrRateExists, got %v", err)
	}

	// 其他用户仍可评分
	if _, err := svc.Create(CreateRatingInput{UserNumber: 13800000003, ProductID: product.ID, Rate: 3}); err != nil {
		t.Fatalf("rating by another user failed: %v", err)
	}
}

func TestCreateRatingValidation(t *testing.T) {
	svc, db := setupRatingServiceTest(t)
	category := createTestCategory(t, db, "饮品")
	product := createTestProduct(t, db, "商品", "20.00", nil, category.ID)

	if _, err := svc.Create(CreateRatingInput{UserNumber: 1, ProductID: product.ID, Rate: 0}); !errors.Is(err, ErrRateOutOfRange) {
		t.Fatalf("expected ErrRateOutOfRange for 0, got %v", err)
	}
	if _, err := svc.Create(CreateRatingInput{UserNumber: 1, ProductID: product.ID, Rate: 6}); !errors.Is(err, ErrRateOutOfRange) {
		t.Fatalf("expected ErrRateOutOfRange for 6, got %v", err)
	}
	if _, err := svc.Create(CreateRatingInput{UserNumber: 1, ProductID: product.ID + 100, Rate: 3}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
