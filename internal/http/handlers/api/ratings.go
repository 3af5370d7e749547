package api

import (
	"strconv"

	"github.com/savdo-next/internal/http/response"
	"github.com/savdo-next/internal/service"

	"github.com/gin-gonic/gin"
)

// RatingCreateRequest 提交评分请求
type RatingCreateRequest struct {
	UserNumber int64 `json:"user_number" binding:"required"`
	ProductID  uint  `json:"product" binding:"required"`
	Rate       int   `json:"rate" binding:"required"`
}

// CreateRating 提交商品评分；同一用户对同一商品只能评一次
func (h *Handler) CreateRating(c *gin.Context) {
	var req RatingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	rate, err := h.RatingService.Create(service.CreateRatingInput{
		UserNumber: req.UserNumber,
		ProductID:  req.ProductID,
		Rate:       req.Rate,
	})
	if err != nil {
		respondWithMappedError(c, err, ratingErrorRules, response.CodeInternal, "rating create failed")
		return
	}
	response.Created(c, newRateView(*rate))
}

// GetRatings 某商品的评分列表
func (h *Handler) GetRatings(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Query("product"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "product is required", err)
		return
	}

	rates, err := h.RatingService.ListByProduct(uint(productID))
	if err != nil {
		respondError(c, response.CodeInternal, "rating fetch failed", err)
		return
	}
	response.Success(c, newRateViews(rates))
}
