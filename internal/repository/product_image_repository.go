package repository

import (
	"errors"

	"github.com/savdo-next/internal/models"

	"gorm.io/gorm"
)

// ProductImageRepository 商品图片数据访问接口
type ProductImageRepository interface {
	List(page, pageSize int) ([]models.ProductImage, int64, error)
	ListByProduct(productID uint) ([]models.ProductImage, error)
	GetByID(id string) (*models.ProductImage, error)
	Create(image *models.ProductImage) error
	Update(image *models.ProductImage) error
	Delete(id string) error
	SaveAsMain(image *models.ProductImage) error
}

// GormProductImageRepository GORM 实现
type GormProductImageRepository struct {
	db *gorm.DB
}

// NewProductImageRepository 创建商品图片仓库
func NewProductImageRepository(db *gorm.DB) *GormProductImageRepository {
	return &GormProductImageRepository{db: db}
}

// List 图片列表
func (r *GormProductImageRepository) List(page, pageSize int) ([]models.ProductImage, int64, error) {
	var images []models.ProductImage

	query := r.db.Model(&models.ProductImage{})
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, page, pageSize)
	if err := query.Order("id ASC").Find(&images).Error; err != nil {
		return nil, 0, err
	}
	return images, total, nil
}

// ListByProduct 某商品的图片列表
func (r *GormProductImageRepository) ListByProduct(productID uint) ([]models.ProductImage, error) {
	var images []models.ProductImage
	if err := r.db.Where("product_id = ?", productID).
		Order("is_main DESC, id ASC").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// GetByID 根据 ID 获取图片
func (r *GormProductImageRepository) GetByID(id string) (*models.ProductImage, error) {
	var image models.ProductImage
	if err := r.db.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

// Create 创建图片
func (r *GormProductImageRepository) Create(image *models.ProductImage) error {
	return r.db.Create(image).Error
}

// Update 更新图片
func (r *GormProductImageRepository) Update(image *models.ProductImage) error {
	return r.db.Save(image).Error
}

// Delete 删除图片
func (r *GormProductImageRepository) Delete(id string) error {
	return r.db.Delete(&models.ProductImage{}, id).Error
}

// SaveAsMain 保存封面图并在同一事务内取消同商品其余封面标记。
// 每个商品至多一张封面图的约束由这里保证。
func (r *GormProductImageRepository) SaveAsMain(image *models.ProductImage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		demote := tx.Model(&models.ProductImage{}).
			Where("product_id = ? AND is_main = ?", image.ProductID, true)
		if image.ID != 0 {
			demote = demote.Where("id != ?", image.ID)
		}
		if err := demote.Update("is_main", false).Error; err != nil {
			return err
		}
		return tx.Save(image).Error
	})
}
