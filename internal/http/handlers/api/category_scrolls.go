package api

import (
	"strconv"

	"github.com/savdo-next/internal/http/handlers/shared"
	"github.com/savdo-next/internal/http/response"
	"github.com/savdo-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ScrollUpsertRequest 滚动分类创建/整体更新请求
type ScrollUpsertRequest struct {
	Name  string `json:"name" binding:"required"`
	Image string `json:"image"`
}

// ScrollPatchRequest 滚动分类局部更新请求
type ScrollPatchRequest struct {
	Name  *string `json:"name"`
	Image *string `json:"image"`
}

// GetCategoryScrolls 滚动分类列表
func (h *Handler) GetCategoryScrolls(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	scrolls, total, err := h.ScrollService.List(page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "category scroll fetch failed", err)
		return
	}

	response.SuccessWithPage(c, newScrollViews(scrolls), newPagination(page, pageSize, total))
}

// GetCategoryScroll 滚动分类详情
func (h *Handler) GetCategoryScroll(c *gin.Context) {
	scroll, err := h.ScrollService.Get(c.Param("id"))
	if err != nil {
		respondWithMappedError(c, err, scrollErrorRules, response.CodeInternal, "category scroll fetch failed")
		return
	}
	response.Success(c, newScrollView(*scroll))
}

// CreateCategoryScroll 创建滚动分类
func (h *Handler) CreateCategoryScroll(c *gin.Context) {
	var req ScrollUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	scroll, err := h.ScrollService.Create(service.CreateScrollInput{
		Name:  req.Name,
		Image: req.Image,
	})
	if err != nil {
		respondWithMappedError(c, err, scrollErrorRules, response.CodeInternal, "category scroll create failed")
		return
	}
	response.Created(c, newScrollView(*scroll))
}

// UpdateCategoryScroll 整体更新滚动分类
func (h *Handler) UpdateCategoryScroll(c *gin.Context) {
	var req ScrollUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	scroll, err := h.ScrollService.Update(c.Param("id"), service.CreateScrollInput{
		Name:  req.Name,
		Image: req.Image,
	})
	if err != nil {
		respondWithMappedError(c, err, scrollErrorRules, response.CodeInternal, "category scroll update failed")
		return
	}
	response.Success(c, newScrollView(*scroll))
}

// PatchCategoryScroll 局部更新滚动分类
func (h *Handler) PatchCategoryScroll(c *gin.Context) {
	var req ScrollPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	scroll, err := h.ScrollService.Patch(c.Param("id"), service.PatchScrollInput{
		Name:  req.Name,
		Image: req.Image,
	})
	if err != nil {
		respondWithMappedError(c, err, scrollErrorRules, response.CodeInternal, "category scroll update failed")
		return
	}
	response.Success(c, newScrollView(*scroll))
}

// DeleteCategoryScroll 删除滚动分类（商品引用置空）
func (h *Handler) DeleteCategoryScroll(c *gin.Context) {
	if err := h.ScrollService.Delete(c.Param("id")); err != nil {
		respondWithMappedError(c, err, scrollErrorRules, response.CodeInternal, "category scroll delete failed")
		return
	}
	response.NoContent(c)
}
