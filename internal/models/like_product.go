package models

// LikeProduct 商品点赞表
// (user_id, product_id) 组合唯一：点赞要么存在要么不存在，
// 并发重复创建由唯一索引兜底。
type LikeProduct struct {
	ID        uint `gorm:"primarykey" json:"id"`                                               // 主键
	UserID    uint `gorm:"not null;uniqueIndex:idx_like_user_product" json:"user_id"`          // 用户ID
	ProductID uint `gorm:"not null;index;uniqueIndex:idx_like_user_product" json:"product_id"` // 商品ID

	// 关联
	User    User    `gorm:"foreignKey:UserID" json:"-"`    // 点赞用户
	Product Product `gorm:"foreignKey:ProductID" json:"-"` // 被点赞商品
}

// TableName 指定表名
func (LikeProduct) TableName() string {
	return "like_products"
}
