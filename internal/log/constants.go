package log

const (
	KeyAppName            = "app"
	KeyBooking            = "booking"
	KeyBookingID          = "bookingId"
	KeyCacheKey           = "cacheKey"
	KeyCart               = "cart"
	KeyCartItemID         = "cartItemId"
	KeyCartItems          = "cartItems"
	KeyCategoryID         = "categoryId"
	KeyConfig             = "config"
	KeyEmail              = "email"
	KeyOrder              = "order"
	KeyOrderID            = "orderId"
	KeyOrderItems         = "orderItems"
	KeyPage               = "page"
	KeyProcess            = "process"
	KeyProduct            = "product"
	KeyProductID          = "productId"
	KeyProducts           = "products"
	KeyQuery              = "query"
	KeyRequestBody        = "requestBody"
	KeyRequestHeader      = "requestHeader"
	KeyRequestHost        = "host"
	KeyRequestID          = "requestId"
	KeyRequestIp          = "requesterIP"
	KeyRequestMethod      = "requestMethod"
	KeyRequestProcessedAt = "requestProcessedAt"
	KeyRequestURI         = "requestURI"
	KeyRequestURL         = "requestURL"
	KeyReviews            = "reviews"
	KeyService            = "service"
	KeySpanID             = "spanId"
	KeyTag                = "tag"
	KeyToken              = "token"
	KeyTraceID            = "traceId"
	KeyUserID             = "userId"
)
