package provider

import (
	"github.com/savdo-next/internal/config"
	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"
	"github.com/savdo-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	UserRepo         repository.UserRepository
	CategoryRepo     repository.CategoryRepository
	ScrollRepo       repository.CategoryScrollRepository
	ProductRepo      repository.ProductRepository
	ProductImageRepo repository.ProductImageRepository
	ProductRateRepo  repository.ProductRateRepository
	LikeRepo         repository.LikeRepository
	OrderRepo        repository.OrderRepository
	OrderItemRepo    repository.OrderItemRepository

	// Services
	UserService         *service.UserService
	CategoryService     *service.CategoryService
	ScrollService       *service.CategoryScrollService
	ProductService      *service.ProductService
	ProductImageService *service.ProductImageService
	RatingService       *service.RatingService
	LikeService         *service.LikeService
	OrderService        *service.OrderService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ScrollRepo = repository.NewCategoryScrollRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.ProductImageRepo = repository.NewProductImageRepository(db)
	c.ProductRateRepo = repository.NewProductRateRepository(db)
	c.LikeRepo = repository.NewLikeRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.OrderItemRepo = repository.NewOrderItemRepository(db)
}

func (c *Container) initServices() {
	c.UserService = service.NewUserService(c.UserRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ScrollService = service.NewCategoryScrollService(c.ScrollRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.ProductRateRepo, c.CategoryRepo, c.ScrollRepo)
	c.ProductImageService = service.NewProductImageService(c.ProductImageRepo, c.ProductRepo)
	c.RatingService = service.NewRatingService(c.ProductRateRepo, c.ProductRepo)
	c.LikeService = service.NewLikeService(c.LikeRepo, c.UserRepo, c.ProductRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.OrderItemRepo, c.UserRepo, c.ProductRepo)
}
