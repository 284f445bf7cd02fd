package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"loja_checkout/internal/domain/entities"
	"loja_checkout/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// MercadoPagoGateway implements IPaymentGateway over the Mercado Pago SDK.
//
// Amounts cross this boundary as integer centavos and are converted to the
// decimal reais the SDK expects here, nowhere else. Provider statuses are
// mapped to the domain gateway vocabulary before they leave the adapter.

type MercadoPagoGateway struct {
	client payment.Client
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreateCharge(ctx context.Context, req entities.GatewayChargeRequest) (string, entities.GatewayStatus, error) {
	log.Printf("[payment][gateway] create start order_id=%s method=%s amount_cents=%d", req.OrderID, req.Method, req.AmountCents)

	mpReq := payment.Request{
		TransactionAmount: centsToAmount(req.AmountCents),
		Description:       req.Description,
		ExternalReference: req.OrderID,
		Payer: &payment.PayerRequest{
			Email: req.PayerEmail,
			Identification: &payment.IdentificationRequest{
				Type:   "CPF",
				Number: onlyDigits(req.PayerCPF),
			},
		},
	}

	switch req.Method {
	case entities.PaymentMethodCard:
		mpReq.Token = req.CardToken
		mpReq.Installments = req.Installments
		if mpReq.Installments < 1 {
			mpReq.Installments = 1
		}
	case entities.PaymentMethodPix:
		mpReq.PaymentMethodID = "pix"
	default:
		return "", "", fmt.Errorf("unsupported payment method %q", req.Method)
	}

	resp, err := g.client.Create(ctx, mpReq)
	if err != nil {
		if isProviderValidationError(err) {
			log.Printf("[payment][gateway] create rejected order_id=%s err=%v", req.OrderID, err)
			return "", "", fmt.Errorf("%w: %v", interfaces.ErrChargeRejected, err)
		}
		log.Printf("[payment][gateway] sdk create failed order_id=%s err=%v", req.OrderID, err)
		return "", "", err
	}

	status := mapProviderStatus(resp.Status)
	log.Printf("[payment][gateway] create success order_id=%s provider_payment_id=%d provider_status=%s", req.OrderID, resp.ID, resp.Status)
	return strconv.Itoa(resp.ID), status, nil
}

func (g *MercadoPagoGateway) GetChargeStatus(ctx context.Context, gatewayChargeID string) (entities.GatewayStatus, error) {
	id, err := strconv.Atoi(gatewayChargeID)
	if err != nil {
		return "", fmt.Errorf("malformed gateway charge id %q: %w", gatewayChargeID, err)
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return mapProviderStatus(resp.Status), nil
}

// mapProviderStatus folds Mercado Pago statuses into the gateway vocabulary.
// "rejected" after creation means a hard decline; "cancelled" covers both
// user cancellation and provider-side expiry of the PIX code.
func mapProviderStatus(status string) entities.GatewayStatus {
	switch strings.ToLower(status) {
	case "approved":
		return entities.GatewayStatusPaid
	case "authorized":
		return entities.GatewayStatusAuthorized
	case "rejected":
		return entities.GatewayStatusDeclined
	case "cancelled":
		return entities.GatewayStatusCanceled
	default:
		// pending, in_process, in_mediation
		return entities.GatewayStatusPending
	}
}

func isProviderValidationError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"status\":400") ||
		strings.Contains(msg, "\"error\":\"bad_request\"") ||
		strings.Contains(msg, "invalid card token") ||
		strings.Contains(msg, "invalid_token")
}

func centsToAmount(cents int64) float64 {
	return float64(cents) / 100
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
