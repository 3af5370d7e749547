package service

import "errors"

// 业务哨兵错误：handler 层通过 errors.Is 映射为响应码。
var (
	ErrNotFound         = errors.New("record not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrScrollNotFound   = errors.New("category scroll not found")

	ErrUserNumberExists = errors.New("user number already exists")
	ErrScrollNameExists = errors.New("category scroll name already exists")
	ErrRateExists       = errors.New("rating already exists for this user and product")
	ErrAlreadyLiked     = errors.New("product already liked by this user")

	ErrNumberRequired      = errors.New("number is required")
	ErrNameRequired        = errors.New("name is required")
	ErrRateOutOfRange      = errors.New("rate must be between 1 and 5")
	ErrQuantityInvalid     = errors.New("quantity must not be negative")
	ErrItemQuantityInvalid = errors.New("quantity must be at least 1")
	ErrPriceInvalid        = errors.New("price must not be negative")
	ErrDiscountInvalid     = errors.New("discount must be between 0 and 100")
)
