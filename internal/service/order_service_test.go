package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"

	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()

	db := setupServiceTestDB(t)
	svc := NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewOrderItemRepository(db),
		repository.NewUserRepository(db),
		repository.NewProductRepository(db),
	)
	return svc, db
}

func cachedFinalPrice(t *testing.T, db *gorm.DB, orderID uint) string {
	t.Helper()

	var order models.Order
	if err := db.First(&order, orderID).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	return order.FinalPrice.String()
}

func TestCreateOrderGeneratesTrackingCode(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	user := createTestUser(t, db, "13800000001")

	first, err := svc.CreateForUser(user.ID)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	want := fmt.Sprintf("TRK%d0001", user.ID)
	if first.Order.TrackingCode != want {
		t.Fatalf("expected tracking code %s, got %s", want, first.Order.TrackingCode)
	}

	second, err := svc.CreateForUser(user.ID)
	if err != nil {
		t.Fatalf("create second order failed: %v", err)
	}
	want = fmt.Sprintf("TRK%d0002", user.ID)
	if second.Order.TrackingCode != want {
		t.Fatalf("expected tracking code %s, got %s", want, second.Order.TrackingCode)
	}
}

func TestCreateOrderUnknownUser(t *testing.T) {
	svc, _ := setupOrderServiceTest(t)

	if _, err := svc.CreateForUser(999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestOrderTotalCacheFollowsItems(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	user := createTestUser(t, db, "13800000002")
	category := createTestCategory(t, db, "热菜")

	discount := int64(20)
	discounted := createTestProduct(t, db, "折扣商品", "100.00", &discount, category.ID) // 折后 80
	plain := createTestProduct(t, db, "普通商品", "50.00", nil, category.ID)

	order, err := svc.CreateForUser(user.ID)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	orderID := order.Order.ID
	if cachedFinalPrice(t, db, orderID) != "0.00" {
		t.Fatalf("expected empty order cache 0.00, got %s", cachedFinalPrice(t, db, orderID))
	}

	item, err := svc.CreateItem(CreateOrderItemInput{OrderID: orderID, ProductID: discounted.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("create item failed: %v", err)
	}
	if cachedFinalPrice(t, db, orderID) != "160.00" {
		t.Fatalf("expected cache 160.00 after first item, got %s", cachedFinalPrice(t, db, orderID))
	}

	if _, err := svc.CreateItem(CreateOrderItemInput{OrderID: orderID, ProductID: plain.ID, Quantity: 1}); err != nil {
		t.Fatalf("create second item failed: %v", err)
	}
	if cachedFinalPrice(t, db, orderID) != "210.00" {
		t.Fatalf("expected cache 210.00, got %s", cachedFinalPrice(t, db, orderID))
	}

	// 读时汇总与缓存一致
	detail, err := svc.Get(fmt.Sprintf("%d", orderID))
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if detail.Total.String() != "210.00" {
		t.Fatalf("expected computed total 210.00, got %s", detail.Total.String())
	}

	// 更新数量后缓存刷新
	if _, err := svc.PatchItem(fmt.Sprintf("%d", item.ID), PatchOrderItemInput{Quantity: int64Ptr(1)}); err != nil {
		t.Fatalf("patch item failed: %v", err)
	}
	if cachedFinalPrice(t, db, orderID) != "130.00" {
		t.Fatalf("expected cache 130.00 after patch, got %s", cachedFinalPrice(t, db, orderID))
	}

	// 删除后缓存刷新
	if err := svc.DeleteItem(fmt.Sprintf("%d", item.ID)); err != nil {
		t.Fatalf("delete item failed: %v", err)
	}
	if cachedFinalPrice(t, db, orderID) != "50.00" {
		t.Fatalf("expected cache 50.00 after delete, got %s", cachedFinalPrice(t, db, orderID))
	}
}

func TestCreateItemValidation(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	user := createTestUser(t, db, "13800000003")
	category := createTestCategory(t, db, "凉菜")
	product := createTestProduct(t, db, "商品", "10.00", nil, category.ID)

	order, err := svc.CreateForUser(user.ID)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if _, err := svc.CreateItem(CreateOrderItemInput{OrderID: order.Order.ID, ProductID: product.ID, Quantity: 0}); !errors.Is(err, ErrItemQuantityInvalid) {
		t.Fatalf("expected ErrItemQuantityInvalid, got %v", err)
	}
	if _, err := svc.CreateItem(CreateOrderItemInput{OrderID: order.Order.ID + 100, ProductID: product.ID, Quantity: 1}); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	if _, err := svc.CreateItem(CreateOrderItemInput{OrderID: order.Order.ID, ProductID: product.ID + 100, Quantity: 1}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestDeleteOrderCascadesItems(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	user := createTestUser(t, db, "13800000004")
	category := createTestCategory(t, db, "饮品")
	product := createTestProduct(t, db, "商品", "8.00", nil, category.ID)

	order, err := svc.CreateForUser(user.ID)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if _, err := svc.CreateItem(CreateOrderItemInput{OrderID: order.Order.ID, ProductID: product.ID, Quantity: 3}); err != nil {
		t.Fatalf("create item failed: %v", err)
	}

	if err := svc.Delete(fmt.Sprintf("%d", order.Order.ID)); err != nil {
		t.Fatalf("delete order failed: %v", err)
	}

	var itemCount int64
	db.Model(&models.OrderItem{}).Where("order_id = ?", order.Order.ID).Count(&itemCount)
	if itemCount != 0 {
		t.Fatalf("expected order items removed, got %d", itemCount)
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}
