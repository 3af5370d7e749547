package service

import (
	"math"

	"github.com/savdo-next/internal/models"

	"github.com/shopspring/decimal"
)

// FinalPrice 计算折后价：discount > 0 时为 price - price*discount/100，否则为原价。
// 结果保留 2 位小数。
func FinalPrice(price models.Money, discount *int64) models.Money {
	if discount == nil || *discount <= 0 {
		return models.NewMoneyFromDecimal(price.Decimal)
	}
	d := decimal.NewFromInt(*discount)
	off := price.Decimal.Mul(d).Div(decimal.NewFromInt(100))
	return models.NewMoneyFromDecimal(price.Decimal.Sub(off))
}

// Subtotal 计算订单项小计：折后价 × 数量。
func Subtotal(product models.Product, quantity int64) models.Money {
	final := FinalPrice(product.Price, product.Discount)
	return models.NewMoneyFromDecimal(final.Decimal.Mul(decimal.NewFromInt(quantity)))
}

// OrderTotal 汇总订单项小计得到订单总额。
// 订单总额以读时汇总为准，orders.final_price 只是缓存列。
func OrderTotal(items []models.OrderItem) models.Money {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(Subtotal(item.Product, item.Quantity).Decimal)
	}
	return models.NewMoneyFromDecimal(total)
}

// RoundRating 将平均评分保留 2 位小数。
func RoundRating(average float64) float64 {
	return math.Round(average*100) / 100
}
