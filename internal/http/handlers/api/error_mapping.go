package api

import (
	"errors"

	"github.com/savdo-next/internal/http/response"
	"github.com/savdo-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var userErrorRules = []mappedHandlerError{
	{target: service.ErrUserNotFound, code: response.CodeNotFound, msg: "user not found"},
	{target: service.ErrNumberRequired, code: response.CodeBadRequest, msg: "number is required"},
	{target: service.ErrUserNumberExists, code: response.CodeConflict, msg: "user number already exists"},
}

var categoryErrorRules = []mappedHandlerError{
	{target: service.ErrCategoryNotFound, code: response.CodeNotFound, msg: "category not found"},
	{target: service.ErrNameRequired, code: response.CodeBadRequest, msg: "name is required"},
}

var scrollErrorRules = []mappedHandlerError{
	{target: service.ErrScrollNotFound, code: response.CodeNotFound, msg: "category scroll not found"},
	{target: service.ErrNameRequired, code: response.CodeBadRequest, msg: "name is required"},
	{target: service.ErrScrollNameExists, code: response.CodeConflict, msg: "category scroll name already exists"},
}

var productErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "product not found"},
	{target: service.ErrCategoryNotFound, code: response.CodeBadRequest, msg: "category not found"},
	{target: service.ErrScrollNotFound, code: response.CodeBadRequest, msg: "category scroll not found"},
	{target: service.ErrNameRequired, code: response.CodeBadRequest, msg: "name is required"},
	{target: service.ErrPriceInvalid, code: response.CodeBadRequest, msg: "price must not be negative"},
	{target: service.ErrDiscountInvalid, code: response.CodeBadRequest, msg: "discount must be between 0 and 100"},
	{target: service.ErrQuantityInvalid, code: response.CodeBadRequest, msg: "quantity must not be negative"},
}

var imageErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "product image not found"},
	{target: service.ErrProductNotFound, code: response.CodeBadRequest, msg: "product not found"},
}

var ratingErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "product not found"},
	{target: service.ErrRateOutOfRange, code: response.CodeBadRequest, msg: "rate must be between 1 and 5"},
	{target: service.ErrRateExists, code: response.CodeConflict, msg: "rating already exists for this user and product"},
}

var likeErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "like not found"},
	{target: service.ErrUserNotFound, code: response.CodeNotFound, msg: "user not found"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "product not found"},
	{target: service.ErrAlreadyLiked, code: response.CodeConflict, msg: "product already liked by this user"},
}

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, msg: "order not found"},
	{target: service.ErrUserNotFound, code: response.CodeNotFound, msg: "user not found"},
}

var orderItemErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "order item not found"},
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, msg: "order not found"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "product not found"},
	{target: service.ErrItemQuantityInvalid, code: response.CodeBadRequest, msg: "quantity must be at least 1"},
}
