package api

import (
	"strconv"

	"github.com/savdo-next/internal/http/handlers/shared"
	"github.com/savdo-next/internal/http/response"
	"github.com/savdo-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryUpsertRequest 分类创建/整体更新请求
type CategoryUpsertRequest struct {
	Name     string `json:"name" binding:"required"`
	ParentID *uint  `json:"parent_id"`
}

// CategoryPatchRequest 分类局部更新请求
type CategoryPatchRequest struct {
	Name     *string `json:"name"`
	ParentID *uint   `json:"parent_id"`
}

// GetCategories 分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	categories, total, err := h.CategoryService.List(page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "category fetch failed", err)
		return
	}

	response.SuccessWithPage(c, newCategoryViews(categories), newPagination(page, pageSize, total))
}

// GetCategory 分类详情
func (h *Handler) GetCategory(c *gin.Context) {
	category, err := h.CategoryService.Get(c.Param("id"))
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "category fetch failed")
		return
	}
	response.Success(c, newCategoryView(*category))
}

// CreateCategory 创建分类
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	category, err := h.CategoryService.Create(service.CreateCategoryInput{
		Name:     req.Name,
		ParentID: req.ParentID,
	})
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "category create failed")
		return
	}
	response.Created(c, newCategoryView(*category))
}

// UpdateCategory 整体更新分类
func (h *Handler) UpdateCategory(c *gin.Context) {
	var req CategoryUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	category, err := h.CategoryService.Update(c.Param("id"), service.CreateCategoryInput{
		Name:     req.Name,
		ParentID: req.ParentID,
	})
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "category update failed")
		return
	}
	response.Success(c, newCategoryView(*category))
}

// PatchCategory 局部更新分类
func (h *Handler) PatchCategory(c *gin.Context) {
	var req CategoryPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	category, err := h.CategoryService.Patch(c.Param("id"), service.PatchCategoryInput{
		Name:     req.Name,
		ParentID: req.ParentID,
	})
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "category update failed")
		return
	}
	response.Success(c, newCategoryView(*category))
}

// DeleteCategory 删除分类及其商品
func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.CategoryService.Delete(c.Param("id")); err != nil {
		respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "category delete failed")
		return
	}
	response.NoContent(c)
}
