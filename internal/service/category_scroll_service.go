package service

import (
	"errors"
	"strings"

	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"

	"gorm.io/gorm"
)

// CategoryScrollService 滚动分类业务服务
type CategoryScrollService struct {
	repo repository.CategoryScrollRepository
}

// NewCategoryScrollService 创建滚动分类服务
func NewCategoryScrollService(repo repository.CategoryScrollRepository) *CategoryScrollService {
	return &CategoryScrollService{repo: repo}
}

// CreateScrollInput 创建/更新滚动分类输入
type CreateScrollInput struct {
	Name  string
	Image string
}

// PatchScrollInput 局部更新滚动分类输入
type PatchScrollInput struct {
	Name  *string
	Image *string
}

// List 获取滚动分类列表
func (s *CategoryScrollService) List(page, pageSize int) ([]models.CategoryScroll, int64, error) {
	return s.repo.List(page, pageSize)
}

// Get 获取滚动分类详情
func (s *CategoryScrollService) Get(id string) (*models.CategoryScroll, error) {
	scroll, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if scroll == nil {
		return nil, ErrScrollNotFound
	}
	return scroll, nil
}

// Create 创建滚动分类；名称全局唯一
func (s *CategoryScrollService) Create(input CreateScrollInput) (*models.CategoryScroll, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	count, err := s.repo.CountByName(name, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrScrollNameExists
	}

	scroll := models.CategoryScroll{
		Name:  name,
		Image: strings.TrimSpace(input.Image),
	}
	if err := s.repo.Create(&scroll); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrScrollNameExists
		}
		return nil, err
	}
	return &scroll, nil
}

// Update 整体更新滚动分类
func (s *CategoryScrollService) Update(id string, input CreateScrollInput) (*models.CategoryScroll, error) {
	scroll, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	count, err := s.repo.CountByName(name, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrScrollNameExists
	}

	scroll.Name = name
	scroll.Image = strings.TrimSpace(input.Image)
	if err := s.repo.Update(scroll); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrScrollNameExists
		}
		return nil, err
	}
	return scroll, nil
}

// Patch 局部更新滚动分类
func (s *CategoryScrollService) Patch(id string, input PatchScrollInput) (*models.CategoryScroll, error) {
	scroll, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		count, err := s.repo.CountByName(name, &id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrScrollNameExists
		}
		scroll.Name = name
	}
	if input.Image != nil {
		scroll.Image = strings.TrimSpace(*input.Image)
	}

	if err := s.repo.Update(scroll); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrScrollNameExists
		}
		return nil, err
	}
	return scroll, nil
}

// Delete 删除滚动分类
func (s *CategoryScrollService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
