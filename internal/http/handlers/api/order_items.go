package api

import (
	"strconv"

	"github.com/savdo-next/internal/http/handlers/shared"
	"github.com/savdo-next/internal/http/response"
	"github.com/savdo-next/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderItemUpsertRequest 订单项创建/整体更新请求
type OrderItemUpsertRequest struct {
	OrderID   uint  `json:"order_id" binding:"required"`
	ProductID uint  `json:"product_id" binding:"required"`
	Quantity  int64 `json:"quantity" binding:"required"`
}

// OrderItemPatchRequest 订单项局部更新请求
type OrderItemPatchRequest struct {
	OrderID   *uint  `json:"order_id"`
	ProductID *uint  `json:"product_id"`
	Quantity  *int64 `json:"quantity"`
}

// GetOrderItems 订单项列表
func (h *Handler) GetOrderItems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	items, total, err := h.OrderService.ListItems(page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "order item fetch failed", err)
		return
	}

	response.SuccessWithPage(c, newOrderItemViews(items), newPagination(page, pageSize, total))
}

// GetOrderItem 订单项详情
func (h *Handler) GetOrderItem(c *gin.Context) {
	item, err := h.OrderService.GetItem(c.Param("id"))
	if err != nil {
		respondWithMappedError(c, err, orderItemErrorRules, response.CodeInternal, "order item fetch failed")
		return
	}
	response.Success(c, newOrderItemView(*item))
}

// CreateOrderItem 创建订单项并刷新订单总额
func (h *Handler) CreateOrderItem(c *gin.Context) {
	var req OrderItemUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	item, err := h.OrderService.CreateItem(service.CreateOrderItemInput{
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondWithMappedError(c, err, orderItemErrorRules, response.CodeInternal, "order item create failed")
		return
	}
	response.Created(c, newOrderItemView(*item))
}

// UpdateOrderItem 整体更新订单项并刷新订单总额
func (h *Handler) UpdateOrderItem(c *gin.Context) {
	var req OrderItemUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	item, err := h.OrderService.UpdateItem(c.Param("id"), service.CreateOrderItemInput{
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondWithMappedError(c, err, orderItemErrorRules, response.CodeInternal, "order item update failed")
		return
	}
	response.Success(c, newOrderItemView(*item))
}

// PatchOrderItem 局部更新订单项并刷新订单总额
func (h *Handler) PatchOrderItem(c *gin.Context) {
	var req OrderItemPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	item, err := h.OrderService.PatchItem(c.Param("id"), service.PatchOrderItemInput{
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondWithMappedError(c, err, orderItemErrorRules, response.CodeInternal, "order item update failed")
		return
	}
	response.Success(c, newOrderItemView(*item))
}

// DeleteOrderItem 删除订单项并刷新订单总额
func (h *Handler) DeleteOrderItem(c *gin.Context) {
	if err := h.OrderService.DeleteItem(c.Param("id")); err != nil {
		respondWithMappedError(c, err, orderItemErrorRules, response.CodeInternal, "order item delete failed")
		return
	}
	response.NoContent(c)
}
