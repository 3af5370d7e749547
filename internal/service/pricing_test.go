package service

import (
	"testing"

	"github.com/savdo-next/internal/models"

	"github.com/shopspring/decimal"
)

func money(t *testing.T, value string) models.Money {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("parse decimal %q failed: %v", value, err)
	}
	return models.NewMoneyFromDecimal(d)
}

func TestFinalPriceWithDiscount(t *testing.T) {
	discount := int64(20)
	got := FinalPrice(money(t, "100.00"), &discount)
	if got.String() != "80.00" {
		t.Fatalf("expected final price 80.00, got %s", got.String())
	}
}

func TestFinalPriceWithoutDiscount(t *testing.T) {
	if got := FinalPrice(money(t, "50.00"), nil); got.String() != "50.00" {
		t.Fatalf("expected final price 50.00 for nil discount, got %s", got.String())
	}

	zero := int64(0)
	if got := FinalPrice(money(t, "50.00"), &zero); got.String() != "50.00" {
		t.Fatalf("expected final price 50.00 for zero discount, got %s", got.String())
	}
}

func TestFinalPriceRounding(t *testing.T) {
	discount := int64(33)
	got := FinalPrice(money(t, "9.99"), &discount)
	// 9.99 - 9.99*0.33 = 6.6933 -> 6.69
	if got.String() != "6.69" {
		t.Fatalf("expected final price 6.69, got %s", got.String())
	}
}

func TestOrderTotal(t *testing.T) {
	discount := int64(20)
	items := []models.OrderItem{
		{
			Quantity: 2,
			Product:  models.Product{Price: money(t, "100.00"), Discount: &discount},
		},
		{
			Quantity: 1,
			Product:  models.Product{Price: money(t, "50.00")},
		},
	}

	// 80*2 + 50*1 = 210
	if got := OrderTotal(items); got.String() != "210.00" {
		t.Fatalf("expected order total 210.00, got %s", got.String())
	}
}

func TestOrderTotalEmpty(t *testing.T) {
	if got := OrderTotal(nil); got.String() != "0.00" {
		t.Fatalf("expected empty order total 0.00, got %s", got.String())
	}
}

func TestRoundRating(t *testing.T) {
	if got := RoundRating(4.666666); got != 4.67 {
		t.Fatalf("expected rounded rating 4.67, got %v", got)
	}
	if got := RoundRating(3.0); got != 3.0 {
		t.Fatalf("expected rounded rating 3, got %v", got)
	}
}
