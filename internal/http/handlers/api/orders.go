package api

import (
	"strconv"

	"github.com/savdo-next/internal/http/handlers/shared"
	"github.com/savdo-next/internal/http/response"
	"github.com/savdo-next/internal/repository"
	"github.com/savdo-next/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderCreateRequest 创建订单请求（跟踪号由服务端生成）
type OrderCreateRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// OrderUpsertRequest 订单整体更新请求
type OrderUpsertRequest struct {
	UserID       uint   `json:"user_id" binding:"required"`
	TrackingCode string `json:"tracking_code"`
}

// OrderPatchRequest 订单局部更新请求
type OrderPatchRequest struct {
	UserID       *uint   `json:"user_id"`
	TrackingCode *string `json:"tracking_code"`
}

// GetOrders 订单列表（可按用户过滤）
func (h *Handler) GetOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	details, total, err := h.OrderService.List(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   c.Query("user_id"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "order fetch failed", err)
		return
	}

	response.SuccessWithPage(c, newOrderViews(details), newPagination(page, pageSize, total))
}

// GetOrder 订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	detail, err := h.OrderService.Get(c.Param("id"))
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "order fetch failed")
		return
	}
	response.Success(c, newOrderView(*detail))
}

// CreateOrder 为用户创建空订单并生成跟踪号
func (h *Handler) CreateOrder(c *gin.Context) {
	var req OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	detail, err := h.OrderService.CreateForUser(req.UserID)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "order create failed")
		return
	}
	response.Created(c, newOrderView(*detail))
}

// UpdateOrder 整体更新订单
func (h *Handler) UpdateOrder(c *gin.Context) {
	var req OrderUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	detail, err := h.OrderService.Update(c.Param("id"), service.UpdateOrderInput{
		UserID:       req.UserID,
		TrackingCode: req.TrackingCode,
	})
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "order update failed")
		return
	}
	response.Success(c, newOrderView(*detail))
}

// PatchOrder 局部更新订单
func (h *Handler) PatchOrder(c *gin.Context) {
	var req OrderPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	detail, err := h.OrderService.Patch(c.Param("id"), service.PatchOrderInput{
		UserID:       req.UserID,
		TrackingCode: req.TrackingCode,
	})
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "order update failed")
		return
	}
	response.Success(c, newOrderView(*detail))
}

// DeleteOrder 删除订单及其订单项
func (h *Handler) DeleteOrder(c *gin.Context) {
	if err := h.OrderService.Delete(c.Param("id")); err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "order delete failed")
		return
	}
	response.NoContent(c)
}
