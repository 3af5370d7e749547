package api

import (
	"strconv"

	"github.com/savdo-next/internal/http/handlers/shared"
	"github.com/savdo-next/internal/http/response"
	"github.com/savdo-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ImageUpsertRequest 商品图片创建/整体更新请求
type ImageUpsertRequest struct {
	ProductID uint   `json:"product" binding:"required"`
	Image     string `json:"image" binding:"required"`
	IsMain    bool   `json:"is_main"`
}

// ImagePatchRequest 商品图片局部更新请求
type ImagePatchRequest struct {
	ProductID *uint   `json:"product"`
	Image     *string `json:"image"`
	IsMain    *bool   `json:"is_main"`
}

// GetProductImages 图片列表
func (h *Handler) GetProductImages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	images, total, err := h.ProductImageService.List(page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "product image fetch failed", err)
		return
	}

	response.SuccessWithPage(c, newImageViews(images), newPagination(page, pageSize, total))
}

// GetProductImage 图片详情
func (h *Handler) GetProductImage(c *gin.Context) {
	image, err := h.ProductImageService.Get(c.Param("id"))
	if err != nil {
		respondWithMappedError(c, err, imageErrorRules, response.CodeInternal, "product image fetch failed")
		return
	}
	response.Success(c, newImageView(*image))
}

// CreateProductImage 创建图片；is_main 为真时顶替原封面
func (h *Handler) CreateProductImage(c *gin.Context) {
	var req ImageUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	image, err := h.ProductImageService.Create(service.CreateImageInput{
		ProductID: req.ProductID,
		Image:     req.Image,
		IsMain:    req.IsMain,
	})
	if err != nil {
		respondWithMappedError(c, err, imageErrorRules, response.CodeInternal, "product image create failed")
		return
	}
	response.Created(c, newImageView(*image))
}

// UpdateProductImage 整体更新图片
func (h *Handler) UpdateProductImage(c *gin.Context) {
	var req ImageUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	image, err := h.ProductImageService.Update(c.Param("id"), service.CreateImageInput{
		ProductID: req.ProductID,
		Image:     req.Image,
		IsMain:    req.IsMain,
	})
	if err != nil {
		respondWithMappedError(c, err, imageErrorRules, response.CodeInternal, "product image update failed")
		return
	}
	response.Success(c, newImageView(*image))
}

// PatchProductImage 局部更新图片
func (h *Handler) PatchProductImage(c *gin.Context) {
	var req ImagePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	image, err := h.ProductImageService.Patch(c.Param("id"), service.PatchImageInput{
		ProductID: req.ProductID,
		Image:     req.Image,
		IsMain:    req.IsMain,
	})
	if err != nil {
		respondWithMappedError(c, err, imageErrorRules, response.CodeInternal, "product image update failed")
		return
	}
	response.Success(c, newImageView(*image))
}

// DeleteProductImage 删除图片
func (h *Handler) DeleteProductImage(c *gin.Context) {
	if err := h.ProductImageService.Delete(c.Param("id")); err != nil {
		respondWithMappedError(c, err, imageErrorRules, response.CodeInternal, "product image delete failed")
		return
	}
	response.NoContent(c)
}
