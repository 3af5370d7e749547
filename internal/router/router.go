package router

import (
	"github.com/savdo-next/internal/config"
	apihandlers "github.com/savdo-next/internal/http/handlers/api"
	"github.com/savdo-next/internal/logger"
	"github.com/savdo-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := apihandlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		users := apiV1.Group("/users")
		{
			users.GET("", handler.GetUsers)
			users.GET("/:id", handler.GetUser)
			users.POST("", handler.CreateUser)
			users.PUT("/:id", handler.UpdateUser)
			users.PATCH("/:id", handler.PatchUser)
			users.DELETE("/:id", handler.DeleteUser)
		}

		categories := apiV1.Group("/categories")
		{
			categories.GET("", handler.GetCategories)
			categories.GET("/:id", handler.GetCategory)
			categories.POST("", handler.CreateCategory)
			categories.PUT("/:id", handler.UpdateCategory)
			categories.PATCH("/:id", handler.PatchCategory)
			categories.DELETE("/:id", handler.DeleteCategory)
		}

		scrolls := apiV1.Group("/category-scrolls")
		{
			scrolls.GET("", handler.GetCategoryScrolls)
			scrolls.GET("/:id", handler.GetCategoryScroll)
			scrolls.POST("", handler.CreateCategoryScroll)
			scrolls.PUT("/:id", handler.UpdateCategoryScroll)
			scrolls.PATCH("/:id", handler.PatchCategoryScroll)
			scrolls.DELETE("/:id", handler.DeleteCategoryScroll)
		}

		products := apiV1.Group("/products")
		{
			products.GET("", handler.GetProducts)
			products.GET("/:id", handler.GetProduct)
			products.POST("", handler.CreateProduct)
			products.PUT("/:id", handler.UpdateProduct)
			products.PATCH("/:id", handler.PatchProduct)
			products.DELETE("/:id", handler.DeleteProduct)
		}

		images := apiV1.Group("/images")
		{
			images.GET("", handler.GetProductImages)
			images.GET("/:id", handler.GetProductImage)
			images.POST("", handler.CreateProductImage)
			images.PUT("/:id", handler.UpdateProductImage)
			images.PATCH("/:id", handler.PatchProductImage)
			images.DELETE("/:id", handler.DeleteProductImage)
		}

		apiV1.GET("/ratings", handler.GetRatings)
		apiV1.POST("/ratings", handler.CreateRating)

		likes := apiV1.Group("/likes")
		{
			likes.GET("", handler.GetLikes)
			likes.GET("/:id", handler.GetLike)
			likes.POST("", handler.CreateLike)
			likes.PUT("/:id", handler.UpdateLike)
			likes.PATCH("/:id", handler.UpdateLike)
			likes.DELETE("/:id", handler.DeleteLike)
			likes.POST("/toggle_like", handler.ToggleLike)
		}

		orders := apiV1.Group("/orders")
		{
			orders.GET("", handler.GetOrders)
			orders.GET("/:id", handler.GetOrder)
			orders.POST("", handler.CreateOrder)
			orders.PUT("/:id", handler.UpdateOrder)
			orders.PATCH("/:id", handler.PatchOrder)
			orders.DELETE("/:id", handler.DeleteOrder)
		}

		items := apiV1.Group("/order-items")
		{
			items.GET("", handler.GetOrderItems)
			items.GET("/:id", handler.GetOrderItem)
			items.POST("", handler.CreateOrderItem)
			items.PUT("/:id", handler.UpdateOrderItem)
			items.PATCH("/:id", handler.PatchOrderItem)
			items.DELETE("/:id", handler.DeleteOrderItem)
		}

		// 下单入口：订单与订单项走独立的创建端点
		apiV1.POST("/create-order", handler.CreateOrder)
		apiV1.POST("/create-order_item", handler.CreateOrderItem)
	}

	return r
}
