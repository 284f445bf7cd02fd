package entities

// CouponMode distinguishes the two coupon semantics supported by the store.
//
//   - CouponModePercentage: items are sent to the gateway already discounted.
//   - CouponModePriceOverride: items are sent at their original list price and
//     the discount is absorbed into the shipping figure of the order payload.
//
// The mode is an explicit field on the coupon; the checkout payload builder
// consumes a one-shot session marker derived from it.

type CouponMode string

const (
	CouponModePercentage    CouponMode = "percentage"
	CouponModePriceOverride CouponMode = "price_override"
)

// Coupon is a named discount rule fetched from the remote catalog.
// Immutable once fetched. At most one coupon is active per cart at any time;
// the coupon usecase enforces that, not storage.
//
// Discount application order is fixed: multiply the line-item subtotal by
// Multiplier first, then subtract SubtractCents, never below zero.

type Coupon struct {
	Code          string     `json:"code"`
	Multiplier    float64    `json:"multiplier"`
	SubtractCents int64      `json:"subtract_cents"`
	Mode          CouponMode `json:"mode"`
}

func (c Coupon) IsValid() bool {
	return c.Code != "" && c.Multiplier > 0 && c.Multiplier <= 1 && c.SubtractCents >= 0
}

// Equivalent reports whether two coupons produce the same price transform.
// Re-applying an equivalent coupon is an idempotent no-op.
func (c Coupon) Equivalent(other Coupon) bool {
	return c.Code == other.Code &&
		c.Multiplier == other.Multiplier &&
		c.SubtractCents == other.SubtractCents &&
		c.Mode == other.Mode
}
