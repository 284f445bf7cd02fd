package entities

import "time"

// ChargeStatus is the per-charge state machine:
//
//	CREATED -> PENDING -> {PAID | DECLINED | CANCELED | EXPIRED}
//
// PAID, DECLINED, CANCELED and EXPIRED are terminal. Once terminal, further
// writes are no-ops; non-terminal -> terminal transitions are applied with a
// conditional update so concurrent webhook and poll arrivals cannot clobber
// each other.

type ChargeStatus string

const (
	ChargeStatusCreated  ChargeStatus = "CREATED"
	ChargeStatusPending  ChargeStatus = "PENDING"
	ChargeStatusPaid     ChargeStatus = "PAID"
	ChargeStatusDeclined ChargeStatus = "DECLINED"
	ChargeStatusCanceled ChargeStatus = "CANCELED"
	ChargeStatusExpired  ChargeStatus = "EXPIRED"
)

func (s ChargeStatus) IsTerminal() bool {
	switch s {
	case ChargeStatusPaid, ChargeStatusDeclined, ChargeStatusCanceled, ChargeStatusExpired:
		return true
	}
	return false
}

// CanTransitionTo enforces monotonic transitions: terminal states absorb all
// writes, and re-applying the current status is an idempotent no-op handled
// by the caller.
func (s ChargeStatus) CanTransitionTo(next ChargeStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch s {
	case ChargeStatusCreated:
		return next == ChargeStatusPending || next.IsTerminal()
	case ChargeStatusPending:
		return next.IsTerminal()
	}
	return false
}

// PaymentMethod is the tagged payment-method type. Branching on it must be
// exhaustive at the payment session manager boundary.

type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "credit_card"
	PaymentMethodPix  PaymentMethod = "pix"
)

func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCard || m == PaymentMethodPix
}

// Charge is a single attempt to collect payment for an order via one payment
// method. Created and owned exclusively by the payment session manager; the
// HTTP layer only observes status.

type Charge struct {
	OrderID         string        `json:"order_id"`
	GatewayChargeID string        `json:"gateway_charge_id"`
	Method          PaymentMethod `json:"method"`
	Status          ChargeStatus  `json:"status"`
	AmountCents     int64         `json:"amount_cents"`
	FailureReason   string        `json:"failure_reason,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
