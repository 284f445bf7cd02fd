package interfaces

import (
	"context"

	"loja_checkout/internal/domain/entities"
)

// IChargeRepository abstracts DynamoDB persistence for Charge.
//
// TransitionStatus is the compare-and-swap write both the polling loop and
// the webhook go through: it applies the transition only while the stored
// status is non-terminal and the move is legal, and reports whether the write
// happened. Re-applying the current terminal status is a no-op with
// applied=false and no error.

type IChargeRepository interface {
	Create(ctx context.Context, c entities.Charge) (entities.Charge, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.Charge, error)
	AttachGatewayCharge(ctx context.Context, orderID, gatewayChargeID string) (entities.Charge, error)
	TransitionStatus(ctx context.Context, orderID string, next entities.ChargeStatus, reason string) (entities.Charge, bool, error)
}
