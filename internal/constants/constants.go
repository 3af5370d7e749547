package constants

// 评分取值范围
const (
	RateMin = 1
	RateMax = 5
)

// 折扣百分比取值范围
const (
	DiscountMin = 0
	DiscountMax = 100
)

// TrackingCodePrefix 订单跟踪号前缀
const TrackingCodePrefix = "TRK"

// 分页默认值
const (
	DefaultPage        = 1
	DefaultPageSize    = 20
	MaxPageSize        = 100
	DefaultSeqPadWidth = 4
)

// 商品排序白名单字段
const (
	OrderingPrice     = "price"
	OrderingQuantity  = "quantity"
	OrderingDiscount  = "discount"
	OrderingCreatedAt = "created_at"
)

// 点赞切换结果状态
const (
	LikeStatusLiked   = "liked"
	LikeStatusUnliked = "unliked"
)
