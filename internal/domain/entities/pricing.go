package entities

import "math"

// PricingResult is the authoritative money breakdown for a cart. It is
// derived, never persisted; recompute it from the cart, the active coupon and
// the freight selection on every read.
//
// Invariant: TotalCents == SubtotalCents - DiscountCents + ShippingFeeCents,
// always >= 0.

type PricingResult struct {
	SubtotalCents    int64 `json:"subtotal_cents"`
	DiscountCents    int64 `json:"discount_cents"`
	ShippingFeeCents int64 `json:"shipping_fee_cents"`
	TotalCents       int64 `json:"total_cents"`
}

// ComputePricing turns {cart lines, at most one coupon, freight selection}
// into the money breakdown. Pure and deterministic; all arithmetic is integer
// centavos.
//
// Application order is fixed: the coupon multiplier applies to the line-item
// subtotal first (half-up rounding), then the flat subtract amount, clamped
// at zero. The shipping fee is added after the discount and is never
// discounted. A freeShippingThresholdCents > 0 waives the fee once the
// discounted subtotal reaches it.
func ComputePricing(lines []CartLine, coupon *Coupon, freight *FreightQuote, freeShippingThresholdCents int64) PricingResult {
	var subtotal int64
	for _, l := range lines {
		subtotal += l.UnitPriceCents * int64(l.Quantity)
	}

	var discount int64
	if coupon != nil && coupon.IsValid() {
		discounted := int64(math.Round(float64(subtotal) * coupon.Multiplier))
		discount = subtotal - discounted + coupon.SubtractCents
		if discount > subtotal {
			discount = subtotal
		}
		if discount < 0 {
			discount = 0
		}
	}

	var shipping int64
	if freight != nil {
		shipping = freight.PriceCents
	}
	if freeShippingThresholdCents > 0 && subtotal-discount >= freeShippingThresholdCents {
		shipping = 0
	}

	return PricingResult{
		SubtotalCents:    subtotal,
		DiscountCents:    discount,
		ShippingFeeCents: shipping,
		TotalCents:       subtotal - discount + shipping,
	}
}
