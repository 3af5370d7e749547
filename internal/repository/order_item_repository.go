package repository

import (
	"errors"

	"github.com/savdo-next/internal/models"

	"gorm.io/gorm"
)

// OrderItemRepository 订单项数据访问接口
type OrderItemRepository interface {
	List(page, pageSize int) ([]models.OrderItem, int64, error)
	ListByOrder(tx *gorm.DB, orderID uint) ([]models.OrderItem, error)
	GetByID(id string) (*models.OrderItem, error)
	Create(tx *gorm.DB, item *models.OrderItem) error
	Update(tx *gorm.DB, item *models.OrderItem) error
	Delete(tx *gorm.DB, id string) error
}

// GormOrderItemRepository GORM 实现
type GormOrderItemRepository struct {
	db *gorm.DB
}

// NewOrderItemRepository 创建订单项仓库
func NewOrderItemRepository(db *gorm.DB) *GormOrderItemRepository {
	return &GormOrderItemRepository{db: db}
}

func (r *GormOrderItemRepository) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// List 订单项列表
func (r *GormOrderItemRepository) List(page, pageSize int) ([]models.OrderItem, int64, error) {
	var items []models.OrderItem

	query := r.db.Model(&models.OrderItem{})
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Preload("Product").Preload("Product.Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("is_main DESC, id ASC")
	})
	query = applyPagination(query, page, pageSize)
	if err := query.Order("id ASC").Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListByOrder 某订单的订单项（带商品，用于汇总）
func (r *GormOrderItemRepository) ListByOrder(tx *gorm.DB, orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := r.conn(tx).Preload("Product").
		Where("order_id = ?", orderID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID 根据 ID 获取订单项
func (r *GormOrderItemRepository) GetByID(id string) (*models.OrderItem, error) {
	var item models.OrderItem
	if err := r.db.Preload("Product").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Create 创建订单项
func (r *GormOrderItemRepository) Create(tx *gorm.DB, item *models.OrderItem) error {
	return r.conn(tx).Create(item).Error
}

// Update 更新订单项
func (r *GormOrderItemRepository) Update(tx *gorm.DB, item *models.OrderItem) error {
	return r.conn(tx).Save(item).Error
}

// Delete 删除订单项
func (r *GormOrderItemRepository) Delete(tx *gorm.DB, id string) error {
	return r.conn(tx).Delete(&models.OrderItem{}, id).Error
}
