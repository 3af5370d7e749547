package repository

import (
	"github.com/savdo-next/internal/models"

	"gorm.io/gorm"
)

// RatingAverage 某商品的评分聚合
type RatingAverage struct {
	ProductID uint
	Average   float64
	Count     int64
}

// ProductRateRepository 商品评分数据访问接口
type ProductRateRepository interface {
	Create(rate *models.ProductRate) error
	ListByProduct(productID uint) ([]models.ProductRate, error)
	AverageByProductIDs(productIDs []uint) (map[uint]RatingAverage, error)
}

// GormProductRateRepository GORM 实现
type GormProductRateRepository struct {
	db *gorm.DB
}

// NewProductRateRepository 创建商品评分仓库
func NewProductRateRepository(db *gorm.DB) *GormProductRateRepository {
	return &GormProductRateRepository{db: db}
}

// Create 创建评分；(user_number, product_id) 重复时返回 gorm.ErrDuplicatedKey
func (r *GormProductRateRepository) Create(rate *models.ProductRate) error {
	return r.db.Create(rate).Error
}

// ListByProduct 某商品的评分列表
func (r *GormProductRateRepository) ListByProduct(productID uint) ([]models.ProductRate, error) {
	var rates []models.ProductRate
	if err := r.db.Where("product_id = ?", productID).Order("id ASC").Find(&rates).Error; err != nil {
		return nil, err
	}
	return rates, nil
}

// AverageByProductIDs 批量聚合商品平均评分
func (r *GormProductRateRepository) AverageByProductIDs(productIDs []uint) (map[uint]RatingAverage, error) {
	result := make(map[uint]RatingAverage, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		ProductID uint
		Average   float64
		Count     int64
	}
	if err := r.db.Model(&models.ProductRate{}).
		Select("product_id AS product_id, AVG(rate) AS average, COUNT(*) AS count").
		Where("product_id IN ?", productIDs).
		Group("product_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.ProductID] = RatingAverage{
			ProductID: row.ProductID,
			Average:   row.Average,
			Count:     row.Count,
		}
	}
	return result, nil
}
