package api

import (
	"strconv"

	"github.com/savdo-next/internal/http/handlers/shared"
	"github.com/savdo-next/internal/http/response"
	"github.com/savdo-next/internal/service"

	"github.com/gin-gonic/gin"
)

// UserUpsertRequest 用户创建/整体更新请求
type UserUpsertRequest struct {
	Number string `json:"number" binding:"required"`
	Name   string `json:"name"`
}

// UserPatchRequest 用户局部更新请求
type UserPatchRequest struct {
	Number *string `json:"number"`
	Name   *string `json:"name"`
}

// GetUsers 用户列表（可按号码过滤）
func (h *Handler) GetUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	users, total, err := h.UserService.List(c.Query("number"), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "user fetch failed", err)
		return
	}

	response.SuccessWithPage(c, newUserViews(users), newPagination(page, pageSize, total))
}

// GetUser 用户详情
func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.UserService.Get(c.Param("id"))
	if err != nil {
		respondWithMappedError(c, err, userErrorRules, response.CodeInternal, "user fetch failed")
		return
	}
	response.Success(c, newUserView(*user))
}

// CreateUser 创建用户
func (h *Handler) CreateUser(c *gin.Context) {
	var req UserUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	user, err := h.UserService.Create(service.CreateUserInput{
		Number: req.Number,
		Name:   req.Name,
	})
	if err != nil {
		respondWithMappedError(c, err, userErrorRules, response.CodeInternal, "user create failed")
		return
	}
	response.Created(c, newUserView(*user))
}

// UpdateUser 整体更新用户
func (h *Handler) UpdateUser(c *gin.Context) {
	var req UserUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	user, err := h.UserService.Update(c.Param("id"), service.CreateUserInput{
		Number: req.Number,
		Name:   req.Name,
	})
	if err != nil {
		respondWithMappedError(c, err, userErrorRules, response.CodeInternal, "user update failed")
		return
	}
	response.Success(c, newUserView(*user))
}

// PatchUser 局部更新用户
func (h *Handler) PatchUser(c *gin.Context) {
	var req UserPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	user, err := h.UserService.Patch(c.Param("id"), service.PatchUserInput{
		Number: req.Number,
		Name:   req.Name,
	})
	if err != nil {
		respondWithMappedError(c, err, userErrorRules, response.CodeInternal, "user update failed")
		return
	}
	response.Success(c, newUserView(*user))
}

// DeleteUser 删除用户及其订单、点赞
func (h *Handler) DeleteUser(c *gin.Context) {
	if err := h.UserService.Delete(c.Param("id")); err != nil {
		respondWithMappedError(c, err, userErrorRules, response.CodeInternal, "user delete failed")
		return
	}
	response.NoContent(c)
}
