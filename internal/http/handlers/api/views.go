package api

import (
	"time"

	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/service"
)

// UserView 用户响应结构
type UserView struct {
	ID     uint   `json:"id"`
	Number string `json:"number"`
	Name   string `json:"name"`
}

// CategoryView 分类响应结构
type CategoryView struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	ParentID *uint  `json:"parent_id"`
}

// ScrollView 滚动分类响应结构
type ScrollView struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// ImageView 商品图片响应结构
type ImageView struct {
	ID        uint   `json:"id"`
	ProductID uint   `json:"product"`
	Image     string `json:"image"`
	IsMain    bool   `json:"is_main"`
}

// RateView 商品评分响应结构
type RateView struct {
	ID         uint      `json:"id"`
	UserNumber int64     `json:"user_number"`
	ProductID  uint      `json:"product"`
	Rate       int       `json:"rate"`
	CreatedAt  time.Time `json:"created_at"`
}

// ProductView 商品响应结构，含折后价与平均评分两个派生字段
type ProductView struct {
	ID            uint         `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"desc"`
	Price         models.Money `json:"price"`
	Discount      *int64       `json:"discount"`
	FinalPrice    models.Money `json:"final_price"`
	AverageRating *float64     `json:"average_rating"`
	Quantity      int64        `json:"quantity"`
	CategoryID    uint         `json:"category"`
	ScrollID      *uint        `json:"category_scroll"`
	Images        []ImageView  `json:"images"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// OrderItemView 订单项响应结构，小计按折后价计算
type OrderItemView struct {
	ID       uint         `json:"id"`
	OrderID  uint         `json:"order_id"`
	Product  ProductView  `json:"product"`
	Quantity int64        `json:"quantity"`
	Subtotal models.Money `json:"subtotal"`
}

// OrderView 订单响应结构，总额为订单项读时汇总
type OrderView struct {
	ID           uint            `json:"id"`
	UserID       uint            `json:"user_id"`
	UserNumber   string          `json:"user_number,omitempty"`
	TrackingCode string          `json:"tracking_code"`
	FinalPrice   models.Money    `json:"final_price"`
	Items        []OrderItemView `json:"items"`
	CreatedAt    time.Time       `json:"created_at"`
}

// LikeView 点赞响应结构
type LikeView struct {
	ID        uint     `json:"id"`
	ProductID uint     `json:"product_id"`
	User      UserView `json:"user"`
}

// ToggleView 点赞开关响应结构
type ToggleView struct {
	Status     string    `json:"status"`
	ProductID  uint      `json:"product_id"`
	Like       *LikeView `json:"like,omitempty"`
	LikesCount int64     `json:"likes_count"`
}

func newUserView(user models.User) UserView {
	return UserView{ID: user.ID, Number: user.Number, Name: user.Name}
}

func newUserViews(users []models.User) []UserView {
	views := make([]UserView, 0, len(users))
	for _, user := range users {
		views = append(views, newUserView(user))
	}
	return views
}

func newCategoryView(category models.Category) CategoryView {
	return CategoryView{ID: category.ID, Name: category.Name, ParentID: category.ParentID}
}

func newCategoryViews(categories []models.Category) []CategoryView {
	views := make([]CategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, newCategoryView(category))
	}
	return views
}

func newScrollView(scroll models.CategoryScroll) ScrollView {
	return ScrollView{ID: scroll.ID, Name: scroll.Name, Image: scroll.Image}
}

func newScrollViews(scrolls []models.CategoryScroll) []ScrollView {
	views := make([]ScrollView, 0, len(scrolls))
	for _, scroll := range scrolls {
		views = append(views, newScrollView(scroll))
	}
	return views
}

func newImageView(image models.ProductImage) ImageView {
	return ImageView{
		ID:        image.ID,
		ProductID: image.ProductID,
		Image:     image.Image,
		IsMain:    image.IsMain,
	}
}

func newImageViews(images []models.ProductImage) []ImageView {
	views := make([]ImageView, 0, len(images))
	for _, image := range images {
		views = append(views, newImageView(image))
	}
	return views
}

func newRateView(rate models.ProductRate) RateView {
	return RateView{
		ID:         rate.ID,
		UserNumber: rate.UserNumber,
		ProductID:  rate.ProductID,
		Rate:       rate.Rate,
		CreatedAt:  rate.CreatedAt,
	}
}

func newRateViews(rates []models.ProductRate) []RateView {
	views := make([]RateView, 0, len(rates))
	for _, rate := range rates {
		views = append(views, newRateView(rate))
	}
	return views
}

func newProductView(detail service.ProductDetail) ProductView {
	product := detail.Product
	return ProductView{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		Discount:      product.Discount,
		FinalPrice:    detail.FinalPrice,
		AverageRating: detail.AverageRating,
		Quantity:      product.Quantity,
		CategoryID:    product.CategoryID,
		ScrollID:      product.CategoryScrollID,
		Images:        newImageViews(product.Images),
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

func newProductViews(details []service.ProductDetail) []ProductView {
	views := make([]ProductView, 0, len(details))
	for _, detail := range details {
		views = append(views, newProductView(detail))
	}
	return views
}

// newOrderItemView 由已预加载商品的订单项构建视图，平均评分不在订单里展开
func newOrderItemView(item models.OrderItem) OrderItemView {
	return OrderItemView{
		ID:      item.ID,
		OrderID: item.OrderID,
		Product: newProductView(service.ProductDetail{
			Product:    item.Product,
			FinalPrice: service.FinalPrice(item.Product.Price, item.Product.Discount),
		}),
		Quantity: item.Quantity,
		Subtotal: service.Subtotal(item.Product, item.Quantity),
	}
}

func newOrderItemViews(items []models.OrderItem) []OrderItemView {
	views := make([]OrderItemView, 0, len(items))
	for _, item := range items {
		views = append(views, newOrderItemView(item))
	}
	return views
}

func newOrderView(detail service.OrderDetail) OrderView {
	order := detail.Order
	return OrderView{
		ID:           order.ID,
		UserID:       order.UserID,
		UserNumber:   order.User.Number,
		TrackingCode: order.TrackingCode,
		FinalPrice:   detail.Total,
		Items:        newOrderItemViews(order.Items),
		CreatedAt:    order.CreatedAt,
	}
}

func newOrderViews(details []service.OrderDetail) []OrderView {
	views := make([]OrderView, 0, len(details))
	for _, detail := range details {
		views = append(views, newOrderView(detail))
	}
	return views
}

func newLikeView(like models.LikeProduct) LikeView {
	return LikeView{
		ID:        like.ID,
		ProductID: like.ProductID,
		User:      newUserView(like.User),
	}
}

func newLikeViews(likes []models.LikeProduct) []LikeView {
	views := make([]LikeView, 0, len(likes))
	for _, like := range likes {
		views = append(views, newLikeView(like))
	}
	return views
}
