package service

import (
	"strconv"
	"strings"

	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"
)

// ProductImageService 商品图片业务服务
type ProductImageService struct {
	repo     repository.ProductImageRepository
	products repository.ProductRepository
}

// NewProductImageService 创建商品图片服务
func NewProductImageService(repo repository.ProductImageRepository, products repository.ProductRepository) *ProductImageService {
	return &ProductImageService{repo: repo, products: products}
}

// CreateImageInput 创建/整体更新商品图片输入
type CreateImageInput struct {
	ProductID uint
	Image     string
	IsMain    bool
}

// PatchImageInput 局部更新商品图片输入
type PatchImageInput struct {
	ProductID *uint
	Image     *string
	IsMain    *bool
}

// List 图片列表
func (s *ProductImageService) List(page, pageSize int) ([]models.ProductImage, int64, error) {
	return s.repo.List(page, pageSize)
}

// Get 图片详情
func (s *ProductImageService) Get(id string) (*models.ProductImage, error) {
	image, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, ErrNotFound
	}
	return image, nil
}

// Create 创建图片；is_main 为真时同商品其余封面标记被取消
func (s *ProductImageService) Create(input CreateImageInput) (*models.ProductImage, error) {
	if err := s.ensureProduct(input.ProductID); err != nil {
		return nil, err
	}

	image := models.ProductImage{
		ProductID: input.ProductID,
		Image:     strings.TrimSpace(input.Image),
		IsMain:    input.IsMain,
	}
	if input.IsMain {
		if err := s.repo.SaveAsMain(&image); err != nil {
			return nil, err
		}
		return &image, nil
	}
	if err := s.repo.Create(&image); err != nil {
		return nil, err
	}
	return &image, nil
}

// Update 整体更新图片
func (s *ProductImageService) Update(id string, input CreateImageInput) (*models.ProductImage, error) {
	image, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureProduct(input.ProductID); err != nil {
		return nil, err
	}

	image.ProductID = input.ProductID
	image.Image = strings.TrimSpace(input.Image)
	image.IsMain = input.IsMain
	return s.save(image)
}

// Patch 局部更新图片
func (s *ProductImageService) Patch(id string, input PatchImageInput) (*models.ProductImage, error) {
	image, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.ProductID != nil {
		if err := s.ensureProduct(*input.ProductID); err != nil {
			return nil, err
		}
		image.ProductID = *input.ProductID
	}
	if input.Image != nil {
		image.Image = strings.TrimSpace(*input.Image)
	}
	if input.IsMain != nil {
		image.IsMain = *input.IsMain
	}
	return s.save(image)
}

// Delete 删除图片
func (s *ProductImageService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *ProductImageService) save(image *models.ProductImage) (*models.ProductImage, error) {
	if image.IsMain {
		if err := s.repo.SaveAsMain(image); err != nil {
			return nil, err
		}
		return image, nil
	}
	if err := s.repo.Update(image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *ProductImageService) ensureProduct(id uint) error {
	product, err := s.products.GetByID(strconv.FormatUint(uint64(id), 10))
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return nil
}
