package models

import "time"

// ProductRate 商品评分表
type ProductRate struct {
	ID         uint      `gorm:"primarykey" json:"id"`                                            // 主键
	UserNumber int64     `gorm:"not null;uniqueIndex:idx_rate_user_product" json:"user_number"`   // 评分人号码（非外键）
	ProductID  uint      `gorm:"not null;index;uniqueIndex:idx_rate_user_product" json:"product"` // 商品ID
	Rate       int       `gorm:"not null" json:"rate"`                                            // 评分（1-5）
	CreatedAt  time.Time `json:"created_at"`                                                      // 创建时间
}

// TableName 指定表名
func (ProductRate) TableName() string {
	return "product_rates"
}
