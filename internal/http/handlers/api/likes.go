package api

import (
	"strconv"

	"github.com/savdo-next/internal/http/handlers/shared"
	"github.com/savdo-next/internal/http/response"
	"github.com/savdo-next/internal/repository"
	"github.com/savdo-next/internal/service"

	"github.com/gin-gonic/gin"
)

// LikeCreateRequest 创建点赞请求
type LikeCreateRequest struct {
	UserNumber string `json:"user_number" binding:"required"`
	ProductID  uint   `json:"product" binding:"required"`
}

// LikeToggleRequest 点赞开关请求
type LikeToggleRequest struct {
	UserNumber string `json:"user_number" binding:"required"`
	ProductID  uint   `json:"product" binding:"required"`
}

// GetLikes 点赞列表（可按用户号码与商品过滤）
func (h *Handler) GetLikes(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	likes, total, err := h.LikeService.List(repository.LikeListFilter{
		Page:       page,
		PageSize:   pageSize,
		UserNumber: c.Query("user_number"),
		ProductID:  c.Query("product"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "like fetch failed", err)
		return
	}

	response.SuccessWithPage(c, newLikeViews(likes), newPagination(page, pageSize, total))
}

// GetLike 点赞详情
func (h *Handler) GetLike(c *gin.Context) {
	like, err := h.LikeService.Get(c.Param("id"))
	if err != nil {
		respondWithMappedError(c, err, likeErrorRules, response.CodeInternal, "like fetch failed")
		return
	}
	response.Success(c, newLikeView(*like))
}

// CreateLike 创建点赞
func (h *Handler) CreateLike(c *gin.Context) {
	var req LikeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	like, err := h.LikeService.Create(service.CreateLikeInput{
		UserNumber: req.UserNumber,
		ProductID:  req.ProductID,
	})
	if err != nil {
		respondWithMappedError(c, err, likeErrorRules, response.CodeInternal, "like create failed")
		return
	}
	response.Created(c, newLikeView(*like))
}

// UpdateLike 整体更新点赞归属
func (h *Handler) UpdateLike(c *gin.Context) {
	var req LikeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	like, err := h.LikeService.Update(c.Param("id"), service.CreateLikeInput{
		UserNumber: req.UserNumber,
		ProductID:  req.ProductID,
	})
	if err != nil {
		respondWithMappedError(c, err, likeErrorRules, response.CodeInternal, "like update failed")
		return
	}
	response.Success(c, newLikeView(*like))
}

// DeleteLike 删除点赞
func (h *Handler) DeleteLike(c *gin.Context) {
	if err := h.LikeService.Delete(c.Param("id")); err != nil {
		respondWithMappedError(c, err, likeErrorRules, response.CodeInternal, "like delete failed")
		return
	}
	response.NoContent(c)
}

// ToggleLike 点赞开关：未点赞则点赞，已点赞则取消
func (h *Handler) ToggleLike(c *gin.Context) {
	var req LikeToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	result, err := h.LikeService.Toggle(req.UserNumber, req.ProductID)
	if err != nil {
		respondWithMappedError(c, err, likeErrorRules, response.CodeInternal, "like toggle failed")
		return
	}

	view := ToggleView{
		Status:     result.Status,
		ProductID:  result.ProductID,
		LikesCount: result.LikesCount,
	}
	if result.Like != nil {
		like := newLikeView(*result.Like)
		view.Like = &like
	}
	response.Success(c, view)
}
