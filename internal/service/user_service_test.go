package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"

	"gorm.io/gorm"
)

func setupUserServiceTest(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()

	db := setupServiceTestDB(t)
	return NewUserService(repository.NewUserRepository(db)), db
}

func TestCreateUserDuplicateNumber(t *testing.T) {
	svc, _ := setupUserServiceTest(t)

	if _, err := svc.Create(CreateUserInput{Number: "13800000020", Name: "甲"}); err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if _, err := svc.Create(CreateUserInput{Number: "13800000020", Name: "乙"}); !errors.Is(err, ErrUserNumberExists) {
		t.Fatalf("expected ErrUserNumberExists, got %v", err)
	}
}

func TestCreateUserNumberRequired(t *testing.T) {
	svc, _ := setupUserServiceTest(t)

	if _, err := svc.Create(CreateUserInput{Number: "  ", Name: "甲"}); !errors.Is(err, ErrNumberRequired) {
		t.Fatalf("expected ErrNumberRequired, got %v", err)
	}
}

func TestUserListFilterByNumber(t *testing.T) {
	svc, db := setupUserServiceTest(t)
	createTestUser(t, db, "13800000021")
	createTestUser(t, db, "13800000022")

	users, total, err := svc.List("13800000022", 1, 20)
	if err != nil {
		t.Fatalf("list users failed: %v", err)
	}
	if total != 1 || len(users) != 1 || users[0].Number != "13800000022" {
		t.Fatalf("expected single match for number filter, got total=%d len=%d", total, len(users))
	}
}

func TestDeleteUserCascades(t *testing.T) {
	svc, db := setupUserServiceTest(t)
	user := createTestUser(t, db, "13800000023")
	category := createTestCategory(t, db, "热菜")
	product := createTestProduct(t, db, "商品", "10.00", nil, category.ID)

	order := models.Order{UserID: user.ID, TrackingCode: "TRK10001"}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	item := models.OrderItem{OrderID: order.ID, ProductID: product.ID, Quantity: 1}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create order item failed: %v", err)
	}
	like := models.LikeProduct{UserID: user.ID, ProductID: product.ID}
	if err := db.Create(&like).Error; err != nil {
		t.Fatalf("create like failed: %v", err)
	}

	if err := svc.Delete(fmt.Sprintf("%d", user.ID)); err != nil {
		t.Fatalf("delete user failed: %v", err)
	}

	var orderCount, itemCount, likeCount int64
	db.Model(&models.Order{}).Where("user_id = ?", user.ID).Count(&orderCount)
	db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount)
	db.Model(&models.LikeProduct{}).Where("user_id = ?", user.ID).Count(&likeCount)
	if orderCount != 0 || itemCount != 0 || likeCount != 0 {
		t.Fatalf("expected cascaded delete, got orders=%d items=%d likes=%d", orderCount, itemCount, likeCount)
	}
}
