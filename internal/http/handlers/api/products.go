package api

import (
	"encoding/json"
	"strconv"

	"github.com/savdo-next/internal/http/handlers/shared"
	"github.com/savdo-next/internal/http/response"
	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductUpsertRequest 商品创建/整体更新请求
type ProductUpsertRequest struct {
	Name        string       `json:"name" binding:"required"`
	Description string       `json:"desc"`
	Price       models.Money `json:"price"`
	Discount    *int64       `json:"discount"`
	Quantity    int64        `json:"quantity"`
	CategoryID  uint         `json:"category" binding:"required"`
	ScrollID    *uint        `json:"category_scroll"`
}

// ProductPatchRequest 商品局部更新请求。
// discount 与 category_scroll 用原始 JSON 接收，以区分字段缺省与显式 null（null 表示清除）。
type ProductPatchRequest struct {
	Name        *string         `json:"name"`
	Description *string         `json:"desc"`
	Price       *models.Money   `json:"price"`
	Discount    json.RawMessage `json:"discount"`
	Quantity    *int64          `json:"quantity"`
	CategoryID  *uint           `json:"category"`
	ScrollID    json.RawMessage `json:"category_scroll"`
}

func nullableInt64(raw json.RawMessage) (*int64, bool, error) {
	if len(raw) == 0 {
		return nil, false, nil
	}
	if string(raw) == "null" {
		return nil, true, nil
	}
	var value int64
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, false, err
	}
	return &value, false, nil
}

func nullableUint(raw json.RawMessage) (*uint, bool, error) {
	if len(raw) == 0 {
		return nil, false, nil
	}
	if string(raw) == "null" {
		return nil, true, nil
	}
	var value uint
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, false, err
	}
	return &value, false, nil
}

// GetProducts 商品列表。支持精确过滤、名称/描述搜索、白名单排序，
// 以及基于折后价的 min_price/max_price 过滤。
func (h *Handler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	details, total, err := h.ProductService.List(service.ListProductsInput{
		Page:       page,
		PageSize:   pageSize,
		CategoryID: c.Query("category"),
		Price:      c.Query("price"),
		Quantity:   c.Query("quantity"),
		Discount:   c.Query("discount"),
		Search:     c.Query("search"),
		Ordering:   c.Query("ordering"),
		MinPrice:   c.Query("min_price"),
		MaxPrice:   c.Query("max_price"),
	})
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "product fetch failed")
		return
	}

	response.SuccessWithPage(c, newProductViews(details), newPagination(page, pageSize, total))
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	detail, err := h.ProductService.Get(c.Param("id"))
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "product fetch failed")
		return
	}
	response.Success(c, newProductView(*detail))
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	detail, err := h.ProductService.Create(service.CreateProductInput{
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		Discount:         req.Discount,
		Quantity:         req.Quantity,
		CategoryID:       req.CategoryID,
		CategoryScrollID: req.ScrollID,
	})
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "product create failed")
		return
	}
	response.Created(c, newProductView(*detail))
}

// UpdateProduct 整体更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	var req ProductUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	detail, err := h.ProductService.Update(c.Param("id"), service.CreateProductInput{
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		Discount:         req.Discount,
		Quantity:         req.Quantity,
		CategoryID:       req.CategoryID,
		CategoryScrollID: req.ScrollID,
	})
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "product update failed")
		return
	}
	response.Success(c, newProductView(*detail))
}

// PatchProduct 局部更新商品
func (h *Handler) PatchProduct(c *gin.Context) {
	var req ProductPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	discount, clearDiscount, err := nullableInt64(req.Discount)
	if err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	scrollID, clearScroll, err := nullableUint(req.ScrollID)
	if err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	detail, err := h.ProductService.Patch(c.Param("id"), service.PatchProductInput{
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		Discount:         discount,
		ClearDiscount:    clearDiscount,
		Quantity:         req.Quantity,
		CategoryID:       req.CategoryID,
		CategoryScrollID: scrollID,
		ClearScroll:      clearScroll,
	})
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "product update failed")
		return
	}
	response.Success(c, newProductView(*detail))
}

// DeleteProduct 删除商品及其图片、评分、点赞、订单项
func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.ProductService.Delete(c.Param("id")); err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "product delete failed")
		return
	}
	response.NoContent(c)
}
