package entities

// GatewayStatus is the status vocabulary spoken at the payment gateway
// boundary. The payment session manager owns the mapping into ChargeStatus:
// PAID and AUTHORIZED both count as collected.

type GatewayStatus string

const (
	GatewayStatusPaid       GatewayStatus = "PAID"
	GatewayStatusAuthorized GatewayStatus = "AUTHORIZED"
	GatewayStatusDeclined   GatewayStatus = "DECLINED"
	GatewayStatusCanceled   GatewayStatus = "CANCELED"
	GatewayStatusPending    GatewayStatus = "PENDING"
)

// GatewayChargeRequest is the provider-agnostic charge creation command sent
// to the payment gateway adapter.
//
// CardToken is the opaque blob produced by the gateway's client-side card
// tokenization; it is never inspected here. For PIX charges it is empty and
// Installments is ignored.

type GatewayChargeRequest struct {
	OrderID      string
	Method       PaymentMethod
	AmountCents  int64
	Description  string
	CardToken    string
	Installments int
	PayerEmail   string
	PayerCPF     string
}
