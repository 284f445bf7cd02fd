package response

import "loja_checkout/internal/domain/entities"

type CartLineResponse struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}

type CartResponse struct {
	SessionID     string             `json:"session_id"`
	Lines         []CartLineResponse `json:"lines"`
	SubtotalCents int64              `json:"subtotal_cents"`
}

func FromCart(cart entities.Cart) CartResponse {
	lines := make([]CartLineResponse, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		lines = append(lines, CartLineResponse{
			ProductID:      l.ProductID,
			Name:           l.Name,
			UnitPriceCents: l.UnitPriceCents,
			Quantity:       l.Quantity,
		})
	}
	return CartResponse{
		SessionID:     cart.SessionID,
		Lines:         lines,
		SubtotalCents: cart.SubtotalCents(),
	}
}

// PricingResponse mirrors the ledger identity: total = subtotal - discount +
// shipping.

type PricingResponse struct {
	SubtotalCents    int64 `json:"subtotal_cents"`
	DiscountCents    int64 `json:"discount_cents"`
	ShippingFeeCents int64 `json:"shipping_fee_cents"`
	TotalCents       int64 `json:"total_cents"`
}

func FromPricing(p entities.PricingResult) PricingResponse {
	return PricingResponse{
		SubtotalCents:    p.SubtotalCents,
		DiscountCents:    p.DiscountCents,
		ShippingFeeCents: p.ShippingFeeCents,
		TotalCents:       p.TotalCents,
	}
}
