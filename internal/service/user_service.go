package service

import (
	"errors"
	"strings"

	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"

	"gorm.io/gorm"
)

// UserService 用户业务服务
type UserService struct {
	repo repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// CreateUserInput 创建/更新用户输入
type CreateUserInput struct {
	Number string
	Name   string
}

// PatchUserInput 局部更新用户输入
type PatchUserInput struct {
	Number *string
	Name   *string
}

// List 获取用户列表（可按手机号精确过滤）
func (s *UserService) List(number string, page, pageSize int) ([]models.User, int64, error) {
	return s.repo.List(repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Number:   number,
	})
}

// Get 获取用户详情
func (s *UserService) Get(id string) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Create 创建用户；手机号全局唯一
func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	number := strings.TrimSpace(input.Number)
	if number == "" {
		return nil, ErrNumberRequired
	}

	user := models.User{
		Number: number,
		Name:   strings.TrimSpace(input.Name),
	}
	if err := s.repo.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserNumberExists
		}
		return nil, err
	}
	return &user, nil
}

// Update 整体更新用户
func (s *UserService) Update(id string, input CreateUserInput) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	number := strings.TrimSpace(input.Number)
	if number == "" {
		return nil, ErrNumberRequired
	}

	user.Number = number
	user.Name = strings.TrimSpace(input.Name)
	if err := s.repo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserNumberExists
		}
		return nil, err
	}
	return user, nil
}

// Patch 局部更新用户
func (s *UserService) Patch(id string, input PatchUserInput) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Number != nil {
		number := strings.TrimSpace(*input.Number)
		if number == "" {
			return nil, ErrNumberRequired
		}
		user.Number = number
	}
	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}

	if err := s.repo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserNumberExists
		}
		return nil, err
	}
	return user, nil
}

// Delete 删除用户（订单、点赞级联）
func (s *UserService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
