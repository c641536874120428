// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// API errors
	KeyDataUnavailable = "api.data_unavailable"
	KeyRateLimited     = "api.rate_limited"
	KeyNotFound        = "api.not_found"

	// Gallery
	KeyGalleryLoadFailed = "gallery.load_failed"
	KeyGalleryEmpty      = "gallery.empty"
	KeyGalleryAddToCart  = "gallery.add_to_cart"
	KeyGalleryViewDetail = "gallery.view_detail"

	// Detail panel
	KeyDetailHeading    = "detail.heading"
	KeyDetailNoProducts = "detail.no_products"
	KeyDetailAddToCart  = "detail.add_to_cart"
	KeyDetailClose      = "detail.close"

	// Cart
	KeyCartHeading  = "cart.heading"
	KeyCartEmpty    = "cart.empty"
	KeyCartTotal    = "cart.total"
	KeyCartRemove   = "cart.remove"
	KeyCartCheckout = "cart.checkout"

	// Checkout
	KeyCheckoutChooseFirst = "checkout.choose_first"
	KeyCheckoutPreview     = "checkout.preview"

	// Menu
	KeyMenuLoadFailed = "menu.load_failed"
	KeyMenuAddToOrder = "menu.add_to_order"
)
