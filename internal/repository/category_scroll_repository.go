package repository

import (
	"errors"

	"github.com/savdo-next/internal/models"

	"gorm.io/gorm"
)

// CategoryScrollRepository 滚动分类数据访问接口
type CategoryScrollRepository interface {
	List(page, pageSize int) ([]models.CategoryScroll, int64, error)
	GetByID(id string) (*models.CategoryScroll, error)
	Create(scroll *models.CategoryScroll) error
	Update(scroll *models.CategoryScroll) error
	Delete(id string) error
	CountByName(name string, excludeID *string) (int64, error)
}

// GormCategoryScrollRepository GORM 实现
type GormCategoryScrollRepository struct {
	db *gorm.DB
}

// NewCategoryScrollRepository 创建滚动分类仓库
func NewCategoryScrollRepository(db *gorm.DB) *GormCategoryScrollRepository {
	return &GormCategoryScrollRepository{db: db}
}

// List 滚动分类列表
func (r *GormCategoryScrollRepository) List(page, pageSize int) ([]models.CategoryScroll, int64, error) {
	var scrolls []models.CategoryScroll

	query := r.db.Model(&models.CategoryScroll{})
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, page, pageSize)
	if err := query.Order("id ASC").Find(&scrolls).Error; err != nil {
		return nil, 0, err
	}
	return scrolls, total, nil
}

// GetByID 根据 ID 获取滚动分类
func (r *GormCategoryScrollRepository) GetByID(id string) (*models.CategoryScroll, error) {
	var scroll models.CategoryScroll
	if err := r.db.First(&scroll, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &scroll, nil
}

// Create 创建滚动分类
func (r *GormCategoryScrollRepository) Create(scroll *models.CategoryScroll) error {
	return r.db.Create(scroll).Error
}

// Update 更新滚动分类
func (r *GormCategoryScrollRepository) Update(scroll *models.CategoryScroll) error {
	return r.db.Save(scroll).Error
}

// Delete 删除滚动分类；挂载的商品仅解除引用
func (r *GormCategoryScrollRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Product{}).Where("category_scroll_id = ?", id).
			Update("category_scroll_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.CategoryScroll{}, id).Error
	})
}

// CountByName 统计同名滚动分类数量
func (r *GormCategoryScrollRepository) CountByName(name string, excludeID *string) (int64, error) {
	var count int64
	query := r.db.Model(&models.CategoryScroll{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
