package response

import (
	"time"

	"loja_checkout/internal/domain/entities"
)

// OrderResponse is the order as confirmed to the storefront. Item prices and
// the freight figure reproduce exactly what was sent to the payment gateway,
// so the sum of items plus frete always equals total_pedido_centavos.

type OrderItemResponse struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}

type OrderResponse struct {
	ID                  string              `json:"id"`
	Nome                string              `json:"nome"`
	Sobrenome           string              `json:"sobrenome"`
	Email               string              `json:"email"`
	Items               []OrderItemResponse `json:"items"`
	Cupons              []string            `json:"cupons,omitempty"`
	FreteCalculadoCents int64               `json:"frete_calculado_centavos"`
	TotalPedidoCents    int64               `json:"total_pedido_centavos"`
	CreatedAt           time.Time           `json:"created_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		items = append(items, OrderItemResponse{
			ProductID:      l.ProductID,
			Name:           l.Name,
			UnitPriceCents: l.UnitPriceCents,
			Quantity:       l.Quantity,
		})
	}
	return OrderResponse{
		ID:                  o.ID,
		Nome:                o.Customer.FirstName,
		Sobrenome:           o.Customer.LastName,
		Email:               o.Customer.Email,
		Items:               items,
		Cupons:              o.CouponCodes,
		FreteCalculadoCents: o.ShippingFeeCents,
		TotalPedidoCents:    o.TotalAtCreationCents,
		CreatedAt:           o.CreatedAt,
	}
}
