package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"

	"gorm.io/gorm"
)

func setupProductServiceTest(t *testing.T) (*ProductService, *gorm.DB) {
	t.Helper()

	db := setupServiceTestDB(t)
	svc := NewProductService(
		repository.NewProductRepository(db),
		repository.NewProductRateRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewCategoryScrollRepository(db),
	)
	return svc, db
}

func TestProductListPriceRangeUsesFinalPrice(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	category := createTestCategory(t, db, "热菜")

	discount := int64(20)
	createTestProduct(t, db, "折扣商品", "100.00", &discount, category.ID) // 折后 80
	createTestProduct(t, db, "低价商品", "50.00", nil, category.ID)
	createTestProduct(t, db, "高价商品", "120.00", nil, category.ID)

	details, total, err := svc.List(ListProductsInput{
		Page:     1,
		PageSize: 20,
		MinPrice: "60",
		MaxPrice: "100",
	})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if len(details) != 1 || details[0].Product.Name != "折扣商品" {
		t.Fatalf("expected only the discounted product in range, got %d results", len(details))
	}
	if details[0].FinalPrice.String() != "80.00" {
		t.Fatalf("expected final price 80.00, got %s", details[0].FinalPrice.String())
	}
	// 区间过滤只作用于当前页结果，total 仍为数据库计数
	if total != 3 {
		t.Fatalf("expected total 3, got %d", total)
	}
}

func TestProductListInvalidPriceRange(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	if _, _, err := svc.List(ListProductsInput{Page: 1, PageSize: 20, MinPrice: "abc"}); !errors.Is(err, ErrPriceInvalid) {
		t.Fatalf("expected ErrPriceInvalid, got %v", err)
	}
}

func TestProductAverageRating(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	category := createTestCategory(t, db, "凉菜")
	rated := createTestProduct(t, db, "有评分", "30.00", nil, category.ID)
	unrated := createTestProduct(t, db, "无评分", "20.00", nil, category.ID)

	for i, rate := range []int{4, 5} {
		row := models.ProductRate{UserNumber: int64(1000 + i), ProductID: rated.ID, Rate: rate}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("create rating failed: %v", err)
		}
	}

	detail, err := svc.Get(fmt.Sprintf("%d", rated.ID))
	if err != nil {
		t.Fatalf("get rated product failed: %v", err)
	}
	if detail.AverageRating == nil || *detail.AverageRating != 4.5 {
		t.Fatalf("expected average rating 4.5, got %+v", detail.AverageRating)
	}

	detail, err = svc.Get(fmt.Sprintf("%d", unrated.ID))
	if err != nil {
		t.Fatalf("get unrated product failed: %v", err)
	}
	if detail.AverageRating != nil {
		t.Fatalf("expected null average rating for unrated product, got %v", *detail.AverageRating)
	}
}

func TestProductCreateValidation(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	category := createTestCategory(t, db, "饮品")

	badDiscount := int64(150)
	cases := []struct {
		name  string
		input CreateProductInput
		want  error
	}{
		{"empty name", CreateProductInput{Name: " ", Price: money(t, "10.00"), CategoryID: category.ID}, ErrNameRequired},
		{"negative price", CreateProductInput{Name: "a", Price: money(t, "-1.00"), CategoryID: category.ID}, ErrPriceInvalid},
		{"discount out of range", CreateProductInput{Name: "a", Price: money(t, "10.00"), Discount: &badDiscount, CategoryID: category.ID}, ErrDiscountInvalid},
		{"negative quantity", CreateProductInput{Name: "a", Price: money(t, "10.00"), Quantity: -1, CategoryID: category.ID}, ErrQuantityInvalid},
		{"missing category", CreateProductInput{Name: "a", Price: money(t, "10.00"), CategoryID: category.ID + 100}, ErrCategoryNotFound},
	}
	for _, tc := range cases {
		if _, err := svc.Create(tc.input); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestProductDeleteCascades(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	category := createTestCategory(t, db, "热菜")
	product := createTestProduct(t, db, "待删除", "10.00", nil, category.ID)

	image := models.ProductImage{ProductID: product.ID, Image: "a.png"}
	if err := db.Create(&image).Error; err != nil {
		t.Fatalf("create image failed: %v", err)
	}
	rate := models.ProductRate{UserNumber: 1, ProductID: product.ID, Rate: 5}
	if err := db.Create(&rate).Error; err != nil {
		t.Fatalf("create rating failed: %v", err)
	}

	if err := svc.Delete(fmt.Sprintf("%d", product.ID)); err != nil {
		t.Fatalf("delete product failed: %v", err)
	}

	var imageCount, rateCount int64
	db.Model(&models.ProductImage{}).Where("product_id = ?", product.ID).Count(&imageCount)
	db.Model(&models.ProductRate{}).Where("product_id = ?", product.ID).Count(&rateCount)
	if imageCount != 0 || rateCount != 0 {
		t.Fatalf("expected cascaded delete, got images=%d rates=%d", imageCount, rateCount)
	}

	if _, err := svc.Get(fmt.Sprintf("%d", product.ID)); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound after delete, got %v", err)
	}
}
