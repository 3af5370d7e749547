package models

import "time"

// Product 商品表
type Product struct {
	ID               uint      `gorm:"primarykey" json:"id"`                               // 主键
	Name             string    `gorm:"type:varchar(255);not null;index" json:"name"`       // 商品名称
	Description      string    `gorm:"type:text" json:"desc"`                              // 商品描述
	Price            Money     `gorm:"type:decimal(10,2);not null;default:0" json:"price"` // 原价
	Discount         *int64    `json:"discount,omitempty"`                                 // 折扣百分比（0-100，可空表示无折扣）
	Quantity         int64     `gorm:"not null;default:0" json:"quantity"`                 // 库存数量（非负）
	CategoryID       uint      `gorm:"not null;index" json:"category"`                     // 分类ID
	CategoryScrollID *uint     `gorm:"index" json:"category_scroll,omitempty"`             // 滚动分类ID（可空）
	CreatedAt        time.Time `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt        time.Time `json:"updated_at"`                                         // 更新时间

	// 关联
	Category       Category        `gorm:"foreignKey:CategoryID" json:"-"`                // 所属分类
	CategoryScroll *CategoryScroll `gorm:"foreignKey:CategoryScrollID" json:"-"`          // 所属滚动分类
	Images         []ProductImage  `gorm:"foreignKey:ProductID" json:"images,omitempty"`  // 图片列表
	Ratings        []ProductRate   `gorm:"foreignKey:ProductID" json:"ratings,omitempty"` // 评分列表
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
