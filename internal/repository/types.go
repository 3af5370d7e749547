package repository

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page       int
	PageSize   int
	CategoryID string
	Price      string
	Quantity   string
	Discount   string
	Search     string
	Ordering   string
	WithImages bool
}

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page     int
	PageSize int
	Number   string
}

// LikeListFilter 查询点赞列表的过滤条件
type LikeListFilter struct {
	Page       int
	PageSize   int
	UserNumber string
	ProductID  string
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page     int
	PageSize int
	UserID   string
}
