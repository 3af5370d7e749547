package repository

import (
	"errors"
	"strings"

	"github.com/savdo-next/internal/models"

	"gorm.io/gorm"
)

// LikeRepository 商品点赞数据访问接口
type LikeRepository interface {
	List(filter LikeListFilter) ([]models.LikeProduct, int64, error)
	GetByID(id string) (*models.LikeProduct, error)
	GetByUserAndProduct(userID, productID uint) (*models.LikeProduct, error)
	Create(like *models.LikeProduct) error
	Update(like *models.LikeProduct) error
	Delete(id string) error
	DeleteByID(id uint) error
	CountByProduct(productID uint) (int64, error)
}

// GormLikeRepository GORM 实现
type GormLikeRepository struct {
	db *gorm.DB
}

// NewLikeRepository 创建点赞仓库
func NewLikeRepository(db *gorm.DB) *GormLikeRepository {
	return &GormLikeRepository{db: db}
}

// List 点赞列表（可按用户号码与商品过滤）
func (r *GormLikeRepository) List(filter LikeListFilter) ([]models.LikeProduct, int64, error) {
	var likes []models.LikeProduct

	query := r.db.Model(&models.LikeProduct{}).Preload("User")
	if number := strings.TrimSpace(filter.UserNumber); number != "" {
		query = query.Where("user_id IN (?)",
			r.db.Model(&models.User{}).Select("id").Where("number = ?", number))
	}
	if productID := strings.TrimSpace(filter.ProductID); productID != "" {
		query = query.Where("product_id = ?", productID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("id ASC").Find(&likes).Error; err != nil {
		return nil, 0, err
	}
	return likes, total, nil
}

// GetByID 根据 ID 获取点赞
func (r *GormLikeRepository) GetByID(id string) (*models.LikeProduct, error) {
	var like models.LikeProduct
	if err := r.db.Preload("User").First(&like, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

// GetByUserAndProduct 根据 (用户, 商品) 获取点赞
func (r *GormLikeRepository) GetByUserAndProduct(userID, productID uint) (*models.LikeProduct, error) {
	var like models.LikeProduct
	if err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		First(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

// Create 创建点赞；(user_id, product_id) 重复时返回 gorm.ErrDuplicatedKey
func (r *GormLikeRepository) Create(like *models.LikeProduct) error {
	return r.db.Create(like).Error
}

// Update 更新点赞
func (r *GormLikeRepository) Update(like *models.LikeProduct) error {
	return r.db.Save(like).Error
}

// Delete 删除点赞
func (r *GormLikeRepository) Delete(id string) error {
	return r.db.Delete(&models.LikeProduct{}, id).Error
}

// DeleteByID 按数值主键删除点赞
func (r *GormLikeRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.LikeProduct{}, id).Error
}

// CountByProduct 统计某商品的点赞数
func (r *GormLikeRepository) CountByProduct(productID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.LikeProduct{}).
		Where("product_id = ?", productID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
