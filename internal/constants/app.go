package constants

const (
	AppMainStorefront = "storefront"
	AppUserService    = "user-service"
	AppCatalogService = "catalog-service"
	AppCartService    = "cart-service"
	AppBookingService = "booking-service"
	AppOrderService   = "order-service"

	AudienceUser = "user"

	URLUserService  = "http://user-service:8080/users"
	URLOrderService = "http://order-service:8080/orders"
)

const (
	// Shown to buyers that chose the mobile-wallet payment path; transfers
	// are confirmed manually at pickup.
	GcashRecipientNumber = "0915 736 2648"

	ContactPhone       = "+63 915 736 2648"
	ContactEmail       = "tropicspoolsandlandscape@gmail.com"
	ContactAddress     = "Tropics Pools & Landscape, Davao City, Philippines"
	ContactFacebookURL = "https://www.facebook.com/tropicspoolsandlandscape"
)

const (
	PaymentMethodPickup = "pickup"
	PaymentMethodGcash  = "gcash"
)

const (
	// Stand-ins for cart rows whose product was removed from the catalog.
	UnknownProductName      = "Unknown Product"
	FallbackProductImageURL = "https://images.unsplash.com/photo-1566014633661-349c6fae61e9?w=400"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusApproved  = "approved"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"

	OrderStatusPending   = "pending"
	OrderStatusApproved  = "approved"
	OrderStatusCompleted = "completed"
)
