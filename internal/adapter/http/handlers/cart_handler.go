package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "loja_checkout/internal/adapter/http/dto/request"
	response "loja_checkout/internal/adapter/http/dto/response"
	"loja_checkout/internal/domain/entities"
	"loja_checkout/internal/usecase"
	"loja_checkout/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCartPayload = pkg.NewDomainErrorSimple("INVALID_CART_INPUT", "Invalid cart payload", http.StatusBadRequest)

// CartHandler handles HTTP requests for the session cart.

type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

// AddItem godoc
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                     true  "Session ID"
// @Param        payload     body      request.AddCartItemRequest true  "Item"
// @Success      200  {object}  response.CartResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /v1/cart/{session_id}/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID := c.Param("session_id")
	var payload request.AddCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	cart, err := h.usecase.AddItem(c.Request.Context(), sessionID, payload.ProductID, payload.Name, payload.UnitPriceCents, payload.Quantity)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

// IncrementItem godoc
// @Summary      Increment an item's quantity
// @Tags         cart
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Param        product_id  path  string  true  "Product ID"
// @Success      200  {object}  response.CartResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /v1/cart/{session_id}/items/{product_id}/increment [patch]
func (h *CartHandler) IncrementItem(c *gin.Context) {
	h.mutate(c, h.usecase.IncrementItem)
}

// DecrementItem godoc
// @Summary      Decrement an item's quantity (removes it at zero)
// @Tags         cart
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Param        product_id  path  string  true  "Product ID"
// @Success      200  {object}  response.CartResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /v1/cart/{session_id}/items/{product_id}/decrement [patch]
func (h *CartHandler) DecrementItem(c *gin.Context) {
	h.mutate(c, h.usecase.DecrementItem)
}

// RemoveItem godoc
// @Summary      Remove an item from the cart
// @Tags         cart
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Param        product_id  path  string  true  "Product ID"
// @Success      200  {object}  response.CartResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /v1/cart/{session_id}/items/{product_id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.mutate(c, h.usecase.RemoveItem)
}

func (h *CartHandler) mutate(c *gin.Context, op func(ctx context.Context, sessionID, productID string) (entities.Cart, error)) {
	sessionID := c.Param("session_id")
	productID := c.Param("product_id")

	cart, err := op(c.Request.Context(), sessionID, productID)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

// GetCart godoc
// @Summary      Read the session cart
// @Tags         cart
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Success      200  {object}  response.CartResponse
// @Router       /v1/cart/{session_id} [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := c.Param("session_id")
	cart, err := h.usecase.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

// GetPricing godoc
// @Summary      Read the authoritative pricing breakdown
// @Tags         cart
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Success      200  {object}  response.PricingResponse
// @Router       /v1/cart/{session_id}/pricing [get]
func (h *CartHandler) GetPricing(c *gin.Context) {
	sessionID := c.Param("session_id")
	pricing, err := h.usecase.GetPricing(c.Request.Context(), sessionID)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPricing(pricing))
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidCartItem):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCartItemNotFound):
		return pkg.NewDomainErrorSimple("CART_ITEM_NOT_FOUND", "Item not found in cart", http.StatusNotFound)
	default:
		log.Printf("[cart][handler] unexpected error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
