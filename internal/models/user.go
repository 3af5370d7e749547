package models

// User 用户表
type User struct {
	ID     uint   `gorm:"primarykey" json:"id"`                                // 主键
	Number string `gorm:"type:varchar(20);uniqueIndex;not null" json:"number"` // 手机号（全局唯一）
	Name   string `gorm:"type:varchar(100);not null" json:"name"`              // 昵称

	// 关联
	Orders []Order       `gorm:"foreignKey:UserID" json:"orders,omitempty"` // 订单列表
	Likes  []LikeProduct `gorm:"foreignKey:UserID" json:"likes,omitempty"`  // 点赞列表
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
