package interfaces

import (
	"context"
	"errors"

	"loja_checkout/internal/domain/entities"
)

// ErrChargeRejected is returned by gateway adapters when the provider refuses
// the charge outright (invalid card token, rejected payload). It is terminal
// for the charge attempt and is never retried automatically; the user must
// resubmit.
var ErrChargeRejected = errors.New("charge rejected by payment gateway")

// IPaymentGateway abstracts the external payment provider (Mercado Pago in
// production). Provider statuses are already mapped to the domain vocabulary
// when they cross this boundary.

type IPaymentGateway interface {
	CreateCharge(ctx context.Context, req entities.GatewayChargeRequest) (gatewayChargeID string, status entities.GatewayStatus, err error)
	GetChargeStatus(ctx context.Context, gatewayChargeID string) (entities.GatewayStatus, error)
}
