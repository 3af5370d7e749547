package models

// Category 商品分类表（可通过 ParentID 组成层级）
type Category struct {
	ID       uint   `gorm:"primarykey" json:"id"`                   // 主键
	Name     string `gorm:"type:varchar(255);not null" json:"name"` // 分类名称
	ParentID *uint  `gorm:"index" json:"parent_id,omitempty"`       // 上级分类ID（可空）

	// 关联
	Parent   *Category `gorm:"foreignKey:ParentID" json:"parent,omitempty"`     // 上级分类
	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"` // 商品列表
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
