package request

// AddCartItemRequest is the payload for adding a product to the session cart.
// Prices travel as integer centavos end to end.

type AddCartItemRequest struct {
	ProductID      string `json:"product_id" binding:"required"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}

// ApplyCouponRequest carries the coupon code typed by the customer.

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// SelectFreightRequest picks one of the previously quoted freight options by
// its index in the quote list.

type SelectFreightRequest struct {
	Index *int `json:"index" binding:"required"`
}
