package service

import (
	"errors"
	"strconv"

	"github.com/savdo-next/internal/constants"
	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"

	"gorm.io/gorm"
)

// LikeService 商品点赞业务服务
type LikeService struct {
	repo     repository.LikeRepository
	users    repository.UserRepository
	products repository.ProductRepository
}

// NewLikeService 创建点赞服务
func NewLikeService(
	repo repository.LikeRepository,
	users repository.UserRepository,
	products repository.ProductRepository,
) *LikeService {
	return &LikeService{repo: repo, users: users, products: products}
}

// CreateLikeInput 创建点赞输入
type CreateLikeInput struct {
	UserNumber string
	ProductID  uint
}

// ToggleResult 点赞开关结果
type ToggleResult struct {
	Status     string
	ProductID  uint
	Like       *models.LikeProduct
	LikesCount int64
}

// List 点赞列表
func (s *LikeService) List(filter repository.LikeListFilter) ([]models.LikeProduct, int64, error) {
	return s.repo.List(filter)
}

// Get 点赞详情
func (s *LikeService) Get(id string) (*models.LikeProduct, error) {
	like, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if like == nil {
		return nil, ErrNotFound
	}
	return like, nil
}

// Create 创建点赞；同一 (用户, 商品) 重复创建返回 ErrAlreadyLiked
func (s *LikeService) Create(input CreateLikeInput) (*models.LikeProduct, error) {
	user, product, err := s.resolve(input.UserNumber, input.ProductID)
	if err != nil {
		return nil, err
	}

	like := models.LikeProduct{
		UserID:    user.ID,
		ProductID: product.ID,
	}
	if err := s.repo.Create(&like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyLiked
		}
		return nil, err
	}
	return s.Get(strconv.FormatUint(uint64(like.ID), 10))
}

// Update 整体更新点赞归属
func (s *LikeService) Update(id string, input CreateLikeInput) (*models.LikeProduct, error) {
	like, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	user, product, err := s.resolve(input.UserNumber, input.ProductID)
	if err != nil {
		return nil, err
	}

	like.UserID = user.ID
	like.ProductID = product.ID
	like.User = models.User{}
	if err := s.repo.Update(like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyLiked
		}
		return nil, err
	}
	return s.Get(id)
}

// Delete 删除点赞
func (s *LikeService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// Toggle 点赞开关：未点赞则点赞，已点赞则取消。
// 并发下唯一索引冲突按"已点赞"处理，保证结果状态一致。
func (s *LikeService) Toggle(userNumber string, productID uint) (*ToggleResult, error) {
	user, product, err := s.resolve(userNumber, productID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByUserAndProduct(user.ID, product.ID)
	if err != nil {
		return nil, err
	}

	result := &ToggleResult{ProductID: product.ID}
	if existing != nil {
		if err := s.repo.DeleteByID(existing.ID); err != nil {
			return nil, err
		}
		result.Status = constants.LikeStatusUnliked
	} else {
		like := models.LikeProduct{UserID: user.ID, ProductID: product.ID}
		if err := s.repo.Create(&like); err != nil {
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, err
			}
			if winner, getErr := s.repo.GetByUserAndProduct(user.ID, product.ID); getErr == nil && winner != nil {
				like = *winner
			}
		}
		if loaded, err := s.repo.GetByID(strconv.FormatUint(uint64(like.ID), 10)); err == nil && loaded != nil {
			like = *loaded
		}
		result.Status = constants.LikeStatusLiked
		result.Like = &like
	}

	count, err := s.repo.CountByProduct(product.ID)
	if err != nil {
		return nil, err
	}
	result.LikesCount = count
	return result, nil
}

func (s *LikeService) resolve(userNumber string, productID uint) (*models.User, *models.Product, error) {
	user, err := s.users.GetByNumber(userNumber)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	product, err := s.products.GetByID(strconv.FormatUint(uint64(productID), 10))
	if err != nil {
		return nil, nil, err
	}
	if product == nil {
		return nil, nil, ErrProductNotFound
	}
	return user, product, nil
}
