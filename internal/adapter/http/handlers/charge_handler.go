package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "loja_checkout/internal/adapter/http/dto/request"
	response "loja_checkout/internal/adapter/http/dto/response"
	"loja_checkout/internal/domain/entities"
	"loja_checkout/internal/usecase"
	"loja_checkout/pkg"

	"github.com/gin-gonic/gin"
)

// ChargeHandler drives payment attempts. Creating a charge also starts its
// supervision loop; the storefront then observes progress via GET.

type ChargeHandler struct {
	usecase usecase.IChargeUseCase
}

func NewChargeHandler(uc usecase.IChargeUseCase) *ChargeHandler {
	return &ChargeHandler{usecase: uc}
}

// CreateCharge godoc
// @Summary      Start a payment attempt for an order
// @Tags         charges
// @Accept       json
// @Produce      json
// @Param        order_id  path  string                      true  "Order ID"
// @Param        payload   body  request.CreateChargeRequest true  "Payment method"
// @Success      201  {object}  response.ChargeResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      402  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /v1/charges/{order_id} [post]
func (h *ChargeHandler) CreateCharge(c *gin.Context) {
	orderID := c.Param("order_id")
	var payload request.CreateChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	method := entities.PaymentMethod(strings.ToLower(strings.TrimSpace(payload.PaymentMethod)))
	var card *usecase.CardDetails
	if method == entities.PaymentMethodCard {
		card = &usecase.CardDetails{Token: payload.CardToken, Installments: payload.Installments}
	}

	charge, err := h.usecase.CreateCharge(c.Request.Context(), orderID, method, card)
	if err != nil {
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if !charge.Status.IsTerminal() {
		h.usecase.Supervise(charge,
			func(paid entities.Charge) {
				log.Printf("[charge][handler] supervision confirmed payment order_id=%s", paid.OrderID)
			},
			func(failed entities.Charge, reason string) {
				log.Printf("[charge][handler] supervision gave up order_id=%s status=%s reason=%s", failed.OrderID, failed.Status, reason)
			},
			0, 0)
	}

	c.JSON(http.StatusCreated, response.FromCharge(charge))
}

// CheckCharge godoc
// @Summary      Re-check a charge against the gateway
// @Description  Manual "já paguei" verification: fetches the gateway status once and applies the usual transition rules.
// @Tags         charges
// @Produce      json
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  response.ChargeResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /v1/charges/{order_id} [get]
func (h *ChargeHandler) CheckCharge(c *gin.Context) {
	orderID := c.Param("order_id")

	charge, err := h.usecase.CheckStatus(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCharge(charge))
}

// Webhook godoc
// @Summary      Gateway payment notification
// @Description  Idempotent alternate writer: the charge is re-fetched from the gateway, the notification body is never trusted.
// @Tags         webhook
// @Accept       json
// @Produce      json
// @Param        payload  body  request.WebhookRequest  true  "Notification"
// @Success      200  {object}  response.ChargeResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /v1/webhook [post]
func (h *ChargeHandler) Webhook(c *gin.Context) {
	var payload request.WebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	orderID := strings.TrimSpace(payload.ExternalReference)
	if orderID == "" {
		orderID = strings.TrimSpace(c.Query("order_id"))
	}
	log.Printf("[webhook][handler] received action=%s order_id=%s", payload.Action, orderID)

	charge, err := h.usecase.ApplyWebhook(c.Request.Context(), orderID)
	if err != nil {
		// Unknown orders answer 200 so the gateway stops retrying a
		// notification we will never be able to apply.
		if errors.Is(err, usecase.ErrChargeNotFound) {
			c.Status(http.StatusOK)
			return
		}
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCharge(charge))
}

func mapChargeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidPaymentMethod), errors.Is(err, usecase.ErrCardDetailsRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Pedido não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChargeNotFound):
		return pkg.NewDomainErrorSimple("CHARGE_NOT_FOUND", "Cobrança não encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChargeAlreadyPaid):
		return pkg.NewDomainErrorSimple("CHARGE_ALREADY_PAID", "Este pedido já está pago", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentRejected):
		return pkg.NewDomainErrorSimple("PAYMENT_REJECTED", usecase.ReasonDeclined, http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Pagamentos temporariamente indisponíveis", http.StatusServiceUnavailable)
	default:
		log.Printf("[charge][handler] unexpected error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
