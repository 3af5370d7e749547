package service

import (
	"errors"
	"strconv"

	"github.com/savdo-next/internal/constants"
	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"

	"gorm.io/gorm"
)

// RatingService 商品评分业务服务
type RatingService struct {
	repo     repository.ProductRateRepository
	products repository.ProductRepository
}

// NewRatingService 创建评分服务
func NewRatingService(repo repository.ProductRateRepository, products repository.ProductRepository) *RatingService {
	return &RatingService{repo: repo, products: products}
}

// CreateRatingInput 提交评分输入
type CreateRatingInput struct {
	UserNumber int64
	ProductID  uint
	Rate       int
}

// Create 提交评分。每个 (用户号码, 商品) 至多一条，重复提交返回 ErrRateExists。
func (s *RatingService) Create(input CreateRatingInput) (*models.ProductRate, error) {
	if input.Rate < constants.RateMin || input.Rate > constants.RateMax {
		return nil, ErrRateOutOfRange
	}

	product, err := s.products.GetByID(strconv.FormatUint(uint64(input.ProductID), 10))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	rate := models.ProductRate{
		UserNumber: input.UserNumber,
		ProductID:  input.ProductID,
		Rate:       input.Rate,
	}
	if err := s.repo.Create(&rate); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRateExists
		}
		return nil, err
	}
	return &rate, nil
}

// ListByProduct 某商品的评分列表
func (s *RatingService) ListByProduct(productID uint) ([]models.ProductRate, error) {
	return s.repo.ListByProduct(productID)
}
