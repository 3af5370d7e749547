package repository

import (
	"strconv"
	"testing"

	"github.com/savdo-next/internal/models"
)

func TestProductListOrderingWhitelist(t *testing.T) {
	db := setupRepositoryTestDB(t)
	category := models.Category{Name: "热菜"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	seedRepositoryProduct(t, db, "便宜", "10.00", 5, nil, category.ID)
	seedRepositoryProduct(t, db, "中等", "20.00", 3, nil, category.ID)
	seedRepositoryProduct(t, db, "最贵", "30.00", 1, nil, category.ID)

	repo := NewProductRepository(db)

	products, _, err := repo.List(ProductListFilter{Page: 1, PageSize: 20, Ordering: "price"})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if len(products) != 3 || products[0].Name != "便宜" || products[2].Name != "最贵" {
		t.Fatalf("expected ascending price order, got %+v", productNames(products))
	}

	products, _, err = repo.List(ProductListFilter{Page: 1, PageSize: 20, Ordering: "-price"})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if products[0].Name != "最贵" {
		t.Fatalf("expected descending price order, got %+v", productNames(products))
	}

	// 白名单之外的字段回退到创建时间倒序，不允许注入任意列
	if _, _, err := repo.List(ProductListFilter{Page: 1, PageSize: 20, Ordering: "name; DROP TABLE products"}); err != nil {
		t.Fatalf("list with junk ordering failed: %v", err)
	}
}

func TestProductListSearch(t *testing.T) {
	db := setupRepositoryTestDB(t)
	category := models.Category{Name: "凉菜"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	spicy := seedRepositoryProduct(t, db, "Spicy Chicken", "25.00", 5, nil, category.ID)
	seedRepositoryProduct(t, db, "Cold Noodle", "15.00", 5, nil, category.ID)

	repo := NewProductRepository(db)

	products, total, err := repo.List(ProductListFilter{Page: 1, PageSize: 20, Search: "spicy"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 1 || len(products) != 1 || products[0].ID != spicy.ID {
		t.Fatalf("expected case-insensitive match for spicy, got total=%d", total)
	}

	// 描述也参与搜索
	products, total, err = repo.List(ProductListFilter{Page: 1, PageSize: 20, Search: "NOODLE"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 1 || products[0].Name != "Cold Noodle" {
		t.Fatalf("expected description match, got total=%d", total)
	}
}

func TestProductListExactFilters(t *testing.T) {
	db := setupRepositoryTestDB(t)
	first := models.Category{Name: "热菜"}
	second := models.Category{Name: "饮品"}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if err := db.Create(&second).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	discount := int64(10)
	seedRepositoryProduct(t, db, "甲", "10.00", 5, &discount, first.ID)
	seedRepositoryProduct(t, db, "乙", "10.00", 3, nil, second.ID)
	seedRepositoryProduct(t, db, "丙", "20.00", 5, nil, first.ID)

	repo := NewProductRepository(db)

	_, total, err := repo.List(ProductListFilter{Page: 1, PageSize: 20, CategoryID: itoa(first.ID)})
	if err != nil {
		t.Fatalf("filter by category failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 products in category, got %d", total)
	}

	_, total, err = repo.List(ProductListFilter{Page: 1, PageSize: 20, Price: "10.00"})
	if err != nil {
		t.Fatalf("filter by price failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 products at price 10.00, got %d", total)
	}

	_, total, err = repo.List(ProductListFilter{Page: 1, PageSize: 20, Quantity: "5", Discount: "10"})
	if err != nil {
		t.Fatalf("combined filter failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 product for combined filter, got %d", total)
	}
}

func TestProductListPagination(t *testing.T) {
	db := setupRepositoryTestDB(t)
	category := models.Category{Name: "热菜"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		seedRepositoryProduct(t, db, itoa(uint(i)), "10.00", 1, nil, category.ID)
	}

	repo := NewProductRepository(db)

	products, total, err := repo.List(ProductListFilter{Page: 2, PageSize: 2, Ordering: "price"})
	if err != nil {
		t.Fatalf("paginated list failed: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected total 5, got %d", total)
	}
	if len(products) != 2 {
		t.Fatalf("expected page of 2, got %d", len(products))
	}
}

func productNames(products []models.Product) []string {
	names := make([]string, 0, len(products))
	for _, product := range products {
		names = append(names, product.Name)
	}
	return names
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
