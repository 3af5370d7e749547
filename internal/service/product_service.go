package service

import (
	"strconv"
	"strings"

	"github.com/savdo-next/internal/constants"
	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService 商品业务服务
type ProductService struct {
	repo       repository.ProductRepository
	rates      repository.ProductRateRepository
	categories repository.CategoryRepository
	scrolls    repository.CategoryScrollRepository
}

// NewProductService 创建商品服务
func NewProductService(
	repo repository.ProductRepository,
	rates repository.ProductRateRepository,
	categories repository.CategoryRepository,
	scrolls repository.CategoryScrollRepository,
) *ProductService {
	return &ProductService{
		repo:       repo,
		rates:      rates,
		categories: categories,
		scrolls:    scrolls,
	}
}

// ProductDetail 商品及其派生字段（折后价、平均评分）
type ProductDetail struct {
	Product       models.Product
	FinalPrice    models.Money
	AverageRating *float64
}

// ListProductsInput 商品列表查询输入
type ListProductsInput struct {
	Page       int
	PageSize   int
	CategoryID string
	Price      string
	Quantity   string
	Discount   string
	Search     string
	Ordering   string
	MinPrice   string
	MaxPrice   string
}

// CreateProductInput 创建/整体更新商品输入
type CreateProductInput struct {
	Name             string
	Description      string
	Price            models.Money
	Discount         *int64
	Quantity         int64
	CategoryID       uint
	CategoryScrollID *uint
}

// PatchProductInput 局部更新商品输入
type PatchProductInput struct {
	Name             *string
	Description      *string
	Price            *models.Money
	Discount         *int64
	ClearDiscount    bool
	Quantity         *int64
	CategoryID       *uint
	CategoryScrollID *uint
	ClearScroll      bool
}

// List 商品列表。精确过滤与排序在数据库完成；
// min_price/max_price 基于折后价，对当前页结果在内存中过滤，total 不随之变化。
func (s *ProductService) List(input ListProductsInput) ([]ProductDetail, int64, error) {
	minPrice, maxPrice, err := parsePriceRange(input.MinPrice, input.MaxPrice)
	if err != nil {
		return nil, 0, err
	}

	products, total, err := s.repo.List(repository.ProductListFilter{
		Page:       input.Page,
		PageSize:   input.PageSize,
		CategoryID: input.CategoryID,
		Price:      input.Price,
		Quantity:   input.Quantity,
		Discount:   input.Discount,
		Search:     input.Search,
		Ordering:   input.Ordering,
		WithImages: true,
	})
	if err != nil {
		return nil, 0, err
	}

	details, err := s.attachDerived(products)
	if err != nil {
		return nil, 0, err
	}

	if minPrice != nil || maxPrice != nil {
		filtered := make([]ProductDetail, 0, len(details))
		for _, detail := range details {
			if minPrice != nil && detail.FinalPrice.Decimal.LessThan(*minPrice) {
				continue
			}
			if maxPrice != nil && detail.FinalPrice.Decimal.GreaterThan(*maxPrice) {
				continue
			}
			filtered = append(filtered, detail)
		}
		details = filtered
	}
	return details, total, nil
}

// Get 商品详情
func (s *ProductService) Get(id string) (*ProductDetail, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	details, err := s.attachDerived([]models.Product{*product})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// Create 创建商品
func (s *ProductService) Create(input CreateProductInput) (*ProductDetail, error) {
	if err := s.validateProduct(input.Name, input.Price, input.Discount, input.Quantity); err != nil {
		return nil, err
	}
	if err := s.ensureCategory(input.CategoryID); err != nil {
		return nil, err
	}
	if err := s.ensureScroll(input.CategoryScrollID); err != nil {
		return nil, err
	}

	product := models.Product{
		Name:             strings.TrimSpace(input.Name),
		Description:      input.Description,
		Price:            input.Price,
		Discount:         input.Discount,
		Quantity:         input.Quantity,
		CategoryID:       input.CategoryID,
		CategoryScrollID: input.CategoryScrollID,
	}
	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}
	return s.Get(strconv.FormatUint(uint64(product.ID), 10))
}

// Update 整体更新商品
func (s *ProductService) Update(id string, input CreateProductInput) (*ProductDetail, error) {
	detail, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.validateProduct(input.Name, input.Price, input.Discount, input.Quantity); err != nil {
		return nil, err
	}
	if err := s.ensureCategory(input.CategoryID); err != nil {
		return nil, err
	}
	if err := s.ensureScroll(input.CategoryScrollID); err != nil {
		return nil, err
	}

	product := detail.Product
	product.Name = strings.TrimSpace(input.Name)
	product.Description = input.Description
	product.Price = input.Price
	product.Discount = input.Discount
	product.Quantity = input.Quantity
	product.CategoryID = input.CategoryID
	product.CategoryScrollID = input.CategoryScrollID
	// Save 会连带写入预加载的关联，先清掉
	product.Images = nil
	product.Ratings = nil
	if err := s.repo.Update(&product); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Patch 局部更新商品
func (s *ProductService) Patch(id string, input PatchProductInput) (*ProductDetail, error) {
	detail, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	product := detail.Product

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		product.Name = name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		if input.Price.Decimal.IsNegative() {
			return nil, ErrPriceInvalid
		}
		product.Price = *input.Price
	}
	if input.ClearDiscount {
		product.Discount = nil
	} else if input.Discount != nil {
		if *input.Discount < constants.DiscountMin || *input.Discount > constants.DiscountMax {
			return nil, ErrDiscountInvalid
		}
		product.Discount = input.Discount
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, ErrQuantityInvalid
		}
		product.Quantity = *input.Quantity
	}
	if input.CategoryID != nil {
		if err := s.ensureCategory(*input.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *input.CategoryID
	}
	if input.ClearScroll {
		product.CategoryScrollID = nil
	} else if input.CategoryScrollID != nil {
		if err := s.ensureScroll(input.CategoryScrollID); err != nil {
			return nil, err
		}
		product.CategoryScrollID = input.CategoryScrollID
	}

	// Save 会连带写入预加载的关联，先清掉
	product.Images = nil
	product.Ratings = nil
	if err := s.repo.Update(&product); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete 删除商品及其关联数据
func (s *ProductService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// attachDerived 为商品批量补齐折后价与平均评分
func (s *ProductService) attachDerived(products []models.Product) ([]ProductDetail, error) {
	ids := make([]uint, 0, len(products))
	for _, product := range products {
		ids = append(ids, product.ID)
	}
	averages, err := s.rates.AverageByProductIDs(ids)
	if err != nil {
		return nil, err
	}

	details := make([]ProductDetail, 0, len(products))
	for _, product := range products {
		detail := ProductDetail{
			Product:    product,
			FinalPrice: FinalPrice(product.Price, product.Discount),
		}
		if avg, ok := averages[product.ID]; ok && avg.Count > 0 {
			rounded := RoundRating(avg.Average)
			detail.AverageRating = &rounded
		}
		details = append(details, detail)
	}
	return details, nil
}

func (s *ProductService) validateProduct(name string, price models.Money, discount *int64, quantity int64) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	if price.Decimal.IsNegative() {
		return ErrPriceInvalid
	}
	if discount != nil && (*discount < constants.DiscountMin || *discount > constants.DiscountMax) {
		return ErrDiscountInvalid
	}
	if quantity < 0 {
		return ErrQuantityInvalid
	}
	return nil
}

func (s *ProductService) ensureCategory(id uint) error {
	category, err := s.categories.GetByID(strconv.FormatUint(uint64(id), 10))
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *ProductService) ensureScroll(id *uint) error {
	if id == nil {
		return nil
	}
	scroll, err := s.scrolls.GetByID(strconv.FormatUint(uint64(*id), 10))
	if err != nil {
		return err
	}
	if scroll == nil {
		return ErrScrollNotFound
	}
	return nil
}

// parsePriceRange 解析 min_price/max_price 查询参数
func parsePriceRange(minRaw, maxRaw string) (*decimal.Decimal, *decimal.Decimal, error) {
	var minPrice, maxPrice *decimal.Decimal
	if v := strings.TrimSpace(minRaw); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, nil, ErrPriceInvalid
		}
		minPrice = &d
	}
	if v := strings.TrimSpace(maxRaw); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, nil, ErrPriceInvalid
		}
		maxPrice = &d
	}
	return minPrice, maxPrice, nil
}
