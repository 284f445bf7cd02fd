package request

// CreateChargeRequest starts a payment attempt for an order. For credit card
// the token comes from the gateway's client-side tokenization; PIX needs no
// extra fields.

type CreateChargeRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
	CardToken     string `json:"card_token"`
	Installments  int    `json:"installments"`
}

// WebhookRequest is the slice of the gateway notification we act on. The
// order id rides in external_reference; everything else is re-fetched from
// the gateway, never trusted from the notification body.

type WebhookRequest struct {
	Action            string `json:"action"`
	ExternalReference string `json:"external_reference"`
	Data              struct {
		ID string `json:"id"`
	} `json:"data"`
}
