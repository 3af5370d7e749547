package service

import (
	"strconv"
	"strings"

	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"
)

// CategoryService 分类业务服务
type CategoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// CreateCategoryInput 创建/更新分类输入
type CreateCategoryInput struct {
	Name     string
	ParentID *uint
}

// PatchCategoryInput 局部更新分类输入
type PatchCategoryInput struct {
	Name     *string
	ParentID *uint
	// ClearParent 为 true 时解除上级分类
	ClearParent bool
}

// List 获取分类列表
func (s *CategoryService) List(page, pageSize int) ([]models.Category, int64, error) {
	return s.repo.List(page, pageSize)
}

// Get 获取分类详情
func (s *CategoryService) Get(id string) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// Create 创建分类
func (s *CategoryService) Create(input CreateCategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if err := s.ensureParent(input.ParentID); err != nil {
		return nil, err
	}

	category := models.Category{
		Name:     name,
		ParentID: input.ParentID,
	}
	if err := s.repo.Create(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Update 整体更新分类
func (s *CategoryService) Update(id string, input CreateCategoryInput) (*models.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if err := s.ensureParent(input.ParentID); err != nil {
		return nil, err
	}

	category.Name = name
	category.ParentID = input.ParentID
	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Patch 局部更新分类
func (s *CategoryService) Patch(id string, input PatchCategoryInput) (*models.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		category.Name = name
	}
	if input.ClearParent {
		category.ParentID = nil
	} else if input.ParentID != nil {
		if err := s.ensureParent(input.ParentID); err != nil {
			return nil, err
		}
		category.ParentID = input.ParentID
	}

	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete 删除分类（商品及其附属数据级联）
func (s *CategoryService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *CategoryService) ensureParent(parentID *uint) error {
	if parentID == nil {
		return nil
	}
	parent, err := s.repo.GetByID(strconv.FormatUint(uint64(*parentID), 10))
	if err != nil {
		return err
	}
	if parent == nil {
		return ErrCategoryNotFound
	}
	return nil
}
