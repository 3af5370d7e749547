package api

import (
	"github.com/savdo-next/internal/http/handlers/shared"
	"github.com/savdo-next/internal/http/response"
	"github.com/savdo-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// Handler API 处理器入口
type Handler struct {
	*provider.Container
}

// New 创建 API 处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func respondError(c *gin.Context, code int, msg string, err error) {
	shared.RespondError(c, code, msg, err)
}

func newPagination(page, pageSize int, total int64) response.Pagination {
	return response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
}
