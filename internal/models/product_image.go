package models

// ProductImage 商品图片表
type ProductImage struct {
	ID        uint   `gorm:"primarykey" json:"id"`           // 主键
	ProductID uint   `gorm:"not null;index" json:"product"`  // 商品ID
	Image     string `gorm:"type:varchar(500)" json:"image"` // 图片引用
	IsMain    bool   `gorm:"default:false" json:"is_main"`   // 是否封面图（每个商品至多一张）
}

// TableName 指定表名
func (ProductImage) TableName() string {
	return "product_images"
}
