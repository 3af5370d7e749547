package models

// CategoryScroll 滚动推广分类表（首页横幅位）
type CategoryScroll struct {
	ID    uint   `gorm:"primarykey" json:"id"`                               // 主键
	Name  string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"` // 名称（唯一）
	Image string `gorm:"type:varchar(500)" json:"image"`                     // 图片引用

	// 关联
	Products []Product `gorm:"foreignKey:CategoryScrollID" json:"products,omitempty"` // 挂载商品
}

// TableName 指定表名
func (CategoryScroll) TableName() string {
	return "category_scrolls"
}
