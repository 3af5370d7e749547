package models

import "time"

// Order 订单表
// FinalPrice 是按订单项实时汇总的缓存列，订单项增删改时在同一事务内刷新。
type Order struct {
	ID           uint      `gorm:"primarykey" json:"id"`                                     // 主键
	UserID       uint      `gorm:"not null;index" json:"user_id"`                            // 用户ID
	TrackingCode string    `gorm:"type:varchar(20);not null;index" json:"tracking_code"`     // 跟踪号（创建时生成）
	FinalPrice   Money     `gorm:"type:decimal(10,2);not null;default:0" json:"final_price"` // 订单总额缓存
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                                  // 创建时间

	// 关联
	User  User        `gorm:"foreignKey:UserID" json:"-"`                // 下单用户
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
