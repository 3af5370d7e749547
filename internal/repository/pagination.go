package repository

import "gorm.io/gorm"

// applyPagination 应用分页参数；pageSize 不合法时返回原查询（不分页）。
func applyPagination(tx *gorm.DB, page, pageSize int) *gorm.DB {
	if tx == nil || pageSize <= 0 {
		return tx
	}
	if page < 1 {
		page = 1
	}
	return tx.Limit(pageSize).Offset((page - 1) * pageSize)
}
