package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/savdo-next/internal/constants"
	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/repository"

	"gorm.io/gorm"
)

// OrderService 订单业务服务
type OrderService struct {
	repo     repository.OrderRepository
	items    repository.OrderItemRepository
	users    repository.UserRepository
	products repository.ProductRepository
}

// NewOrderService 创建订单服务
func NewOrderService(
	repo repository.OrderRepository,
	items repository.OrderItemRepository,
	users repository.UserRepository,
	products repository.ProductRepository,
) *OrderService {
	return &OrderService{repo: repo, items: items, users: users, products: products}
}

// OrderDetail 订单及读时汇总的总额
type OrderDetail struct {
	Order models.Order
	Total models.Money
}

// UpdateOrderInput 整体更新订单输入
type UpdateOrderInput struct {
	UserID       uint
	TrackingCode string
}

// PatchOrderInput 局部更新订单输入
type PatchOrderInput struct {
	UserID       *uint
	TrackingCode *string
}

// CreateOrderItemInput 创建/整体更新订单项输入
type CreateOrderItemInput struct {
	OrderID   uint
	ProductID uint
	Quantity  int64
}

// PatchOrderItemInput 局部更新订单项输入
type PatchOrderItemInput struct {
	OrderID   *uint
	ProductID *uint
	Quantity  *int64
}

// List 订单列表，总额以订单项读时汇总为准
func (s *OrderService) List(filter repository.OrderListFilter) ([]OrderDetail, int64, error) {
	orders, total, err := s.repo.List(filter)
	if err != nil {
		return nil, 0, err
	}

	details := make([]OrderDetail, 0, len(orders))
	for _, order := range orders {
		details = append(details, OrderDetail{
			Order: order,
			Total: OrderTotal(order.Items),
		})
	}
	return details, total, nil
}

// Get 订单详情
func (s *OrderService) Get(id string) (*OrderDetail, error) {
	order, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return &OrderDetail{Order: *order, Total: OrderTotal(order.Items)}, nil
}

// CreateForUser 为用户创建空订单并生成跟踪号。
// 跟踪号格式：TRK{用户ID}{全局序号，4 位零填充}。
func (s *OrderService) CreateForUser(userID uint) (*OrderDetail, error) {
	user, err := s.users.GetByID(strconv.FormatUint(uint64(userID), 10))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	seq, err := s.repo.CountAll()
	if err != nil {
		return nil, err
	}

	order := models.Order{
		UserID: user.ID,
		TrackingCode: fmt.Sprintf("%s%d%0*d",
			constants.TrackingCodePrefix, user.ID, constants.DefaultSeqPadWidth, seq+1),
	}
	if err := s.repo.Create(&order); err != nil {
		return nil, err
	}
	return s.Get(strconv.FormatUint(uint64(order.ID), 10))
}

// Update 整体更新订单
func (s *OrderService) Update(id string, input UpdateOrderInput) (*OrderDetail, error) {
	detail, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	trackingCode := strings.TrimSpace(input.TrackingCode)
	if err := s.ensureUser(input.UserID); err != nil {
		return nil, err
	}

	order := detail.Order
	order.UserID = input.UserID
	order.TrackingCode = trackingCode
	if err := s.repo.Update(&order); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Patch 局部更新订单
func (s *OrderService) Patch(id string, input PatchOrderInput) (*OrderDetail, error) {
	detail, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	order := detail.Order

	if input.UserID != nil {
		if err := s.ensureUser(*input.UserID); err != nil {
			return nil, err
		}
		order.UserID = *input.UserID
	}
	if input.TrackingCode != nil {
		order.TrackingCode = strings.TrimSpace(*input.TrackingCode)
	}

	if err := s.repo.Update(&order); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete 删除订单及其订单项
func (s *OrderService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// ListItems 订单项列表
func (s *OrderService) ListItems(page, pageSize int) ([]models.OrderItem, int64, error) {
	return s.items.List(page, pageSize)
}

// GetItem 订单项详情
func (s *OrderService) GetItem(id string) (*models.OrderItem, error) {
	item, err := s.items.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

// CreateItem 创建订单项，并在同一事务内刷新订单总额缓存列
func (s *OrderService) CreateItem(input CreateOrderItemInput) (*models.OrderItem, error) {
	if input.Quantity < 1 {
		return nil, ErrItemQuantityInvalid
	}
	if err := s.ensureOrder(input.OrderID); err != nil {
		return nil, err
	}
	if err := s.ensureProduct(input.ProductID); err != nil {
		return nil, err
	}

	item := models.OrderItem{
		OrderID:   input.OrderID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
	}
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		if err := s.items.Create(tx, &item); err != nil {
			return err
		}
		return s.refreshOrderTotal(tx, item.OrderID)
	})
	if err != nil {
		return nil, err
	}
	return s.GetItem(strconv.FormatUint(uint64(item.ID), 10))
}

// UpdateItem 整体更新订单项；订单变更时新旧订单的总额缓存都会刷新
func (s *OrderService) UpdateItem(id string, input CreateOrderItemInput) (*models.OrderItem, error) {
	item, err := s.GetItem(id)
	if err != nil {
		return nil, err
	}
	if input.Quantity < 1 {
		return nil, ErrItemQuantityInvalid
	}
	if err := s.ensureOrder(input.OrderID); err != nil {
		return nil, err
	}
	if err := s.ensureProduct(input.ProductID); err != nil {
		return nil, err
	}

	previousOrderID := item.OrderID
	item.OrderID = input.OrderID
	item.ProductID = input.ProductID
	item.Quantity = input.Quantity
	if err := s.saveItem(item, previousOrderID); err != nil {
		return nil, err
	}
	return s.GetItem(id)
}

// PatchItem 局部更新订单项
func (s *OrderService) PatchItem(id string, input PatchOrderItemInput) (*models.OrderItem, error) {
	item, err := s.GetItem(id)
	if err != nil {
		return nil, err
	}
	previousOrderID := item.OrderID

	if input.OrderID != nil {
		if err := s.ensureOrder(*input.OrderID); err != nil {
			return nil, err
		}
		item.OrderID = *input.OrderID
	}
	if input.ProductID != nil {
		if err := s.ensureProduct(*input.ProductID); err != nil {
			return nil, err
		}
		item.ProductID = *input.ProductID
	}
	if input.Quantity != nil {
		if *input.Quantity < 1 {
			return nil, ErrItemQuantityInvalid
		}
		item.Quantity = *input.Quantity
	}

	if err := s.saveItem(item, previousOrderID); err != nil {
		return nil, err
	}
	return s.GetItem(id)
}

// DeleteItem 删除订单项并刷新订单总额缓存
func (s *OrderService) DeleteItem(id string) error {
	item, err := s.GetItem(id)
	if err != nil {
		return err
	}
	return s.repo.Transaction(func(tx *gorm.DB) error {
		if err := s.items.Delete(tx, id); err != nil {
			return err
		}
		return s.refreshOrderTotal(tx, item.OrderID)
	})
}

func (s *OrderService) saveItem(item *models.OrderItem, previousOrderID uint) error {
	return s.repo.Transaction(func(tx *gorm.DB) error {
		// Save 会连带写入预加载的 Product 关联，先清掉
		item.Product = models.Product{}
		if err := s.items.Update(tx, item); err != nil {
			return err
		}
		if err := s.refreshOrderTotal(tx, item.OrderID); err != nil {
			return err
		}
		if previousOrderID != item.OrderID {
			return s.refreshOrderTotal(tx, previousOrderID)
		}
		return nil
	})
}

// refreshOrderTotal 按当前订单项重算总额并写入缓存列
func (s *OrderService) refreshOrderTotal(tx *gorm.DB, orderID uint) error {
	items, err := s.items.ListByOrder(tx, orderID)
	if err != nil {
		return err
	}
	return s.repo.UpdateFinalPrice(tx, orderID, OrderTotal(items))
}

func (s *OrderService) ensureUser(id uint) error {
	user, err := s.users.GetByID(strconv.FormatUint(uint64(id), 10))
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return nil
}

func (s *OrderService) ensureOrder(id uint) error {
	order, err := s.repo.GetByID(strconv.FormatUint(uint64(id), 10))
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	return nil
}

func (s *OrderService) ensureProduct(id uint) error {
	product, err := s.products.GetByID(strconv.FormatUint(uint64(id), 10))
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return nil
}
