package models

// OrderItem 订单项表
type OrderItem struct {
	ID        uint  `gorm:"primarykey" json:"id"`               // 主键
	OrderID   uint  `gorm:"not null;index" json:"order_id"`     // 订单ID
	ProductID uint  `gorm:"not null;index" json:"product_id"`   // 商品ID
	Quantity  int64 `gorm:"not null;default:1" json:"quantity"` // 数量（≥1）

	// 关联
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 商品信息
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
