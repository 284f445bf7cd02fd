package handlers

import (
	"errors"
	"log"
	"net/http"

	request "loja_checkout/internal/adapter/http/dto/request"
	response "loja_checkout/internal/adapter/http/dto/response"
	"loja_checkout/internal/usecase"
	"loja_checkout/pkg"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles order submission and retrieval.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary      Submit the checkout and create the order
// @Tags         pedido
// @Accept       json
// @Produce      json
// @Param        payload  body  request.CheckoutRequest  true  "Checkout form"
// @Success      201  {object}  response.OrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /v1/pedido [post]
func (h *CheckoutHandler) CreateOrder(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.Submit(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] order created order_id=%s total_cents=%d", order.ID, order.TotalAtCreationCents)
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// GetOrder godoc
// @Summary      Read an order
// @Tags         pedido
// @Produce      json
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /v1/pedido/{order_id} [get]
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	order, err := h.usecase.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapCheckoutError(err error) *pkg.AppError {
	var vErr *usecase.CheckoutValidationError
	switch {
	case errors.As(err, &vErr):
		return pkg.NewValidationError("CHECKOUT_VALIDATION_FAILED", "Alguns campos precisam de correção", http.StatusUnprocessableEntity, vErr.Fields)
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Pedido não encontrado", http.StatusNotFound)
	default:
		log.Printf("[checkout][handler] unexpected error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
