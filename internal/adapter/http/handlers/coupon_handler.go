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

// CouponHandler handles HTTP requests for coupon apply/remove.

type CouponHandler struct {
	usecase usecase.ICouponUseCase
}

func NewCouponHandler(uc usecase.ICouponUseCase) *CouponHandler {
	return &CouponHandler{usecase: uc}
}

// Apply godoc
// @Summary      Apply a coupon to the session
// @Tags         coupons
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                     true  "Session ID"
// @Param        payload     body  request.ApplyCouponRequest true  "Coupon code"
// @Success      200  {object}  response.CouponResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /v1/cart/{session_id}/coupons [post]
func (h *CouponHandler) Apply(c *gin.Context) {
	sessionID := c.Param("session_id")
	var payload request.ApplyCouponRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	app, err := h.usecase.Apply(c.Request.Context(), sessionID, payload.Code)
	if err != nil {
		appErr := mapCouponError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCouponApplication(app))
}

// Remove godoc
// @Summary      Remove the active coupon
// @Tags         coupons
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Param        code        path  string  true  "Coupon code"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /v1/cart/{session_id}/coupons/{code} [delete]
func (h *CouponHandler) Remove(c *gin.Context) {
	sessionID := c.Param("session_id")
	code := c.Param("code")

	if err := h.usecase.Remove(c.Request.Context(), sessionID, code); err != nil {
		appErr := mapCouponError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCouponError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidCouponCode):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCouponNotFound):
		return pkg.NewDomainErrorSimple("COUPON_NOT_FOUND", "Cupom não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCouponLimitExceeded):
		return pkg.NewDomainErrorSimple("COUPON_LIMIT_EXCEEDED", "Apenas um cupom pode ser aplicado por pedido", http.StatusConflict)
	case errors.Is(err, usecase.ErrCouponNotActive):
		return pkg.NewDomainErrorSimple("COUPON_NOT_ACTIVE", "Este cupom não está aplicado", http.StatusNotFound)
	default:
		log.Printf("[coupon][handler] unexpected error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
