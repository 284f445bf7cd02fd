package response

import (
	"time"

	"loja_checkout/internal/domain/entities"
)

type ChargeResponse struct {
	OrderID       string    `json:"order_id"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	AmountCents   int64     `json:"amount_cents"`
	FailureReason string    `json:"failure_reason,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromCharge(c entities.Charge) ChargeResponse {
	return ChargeResponse{
		OrderID:       c.OrderID,
		Method:        string(c.Method),
		Status:        string(c.Status),
		AmountCents:   c.AmountCents,
		FailureReason: c.FailureReason,
		UpdatedAt:     c.UpdatedAt,
	}
}
