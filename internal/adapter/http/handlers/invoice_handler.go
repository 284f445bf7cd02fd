package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"loja_checkout/internal/usecase"
	"loja_checkout/pkg"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler exposes the ERP token lifecycle for operators: one-time
// activation with an authorization code and a token status probe.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

type activateERPRequest struct {
	AuthorizationCode string `json:"authorization_code" binding:"required"`
}

type erpTokenResponse struct {
	Provider  string    `json:"provider"`
	ExpiresAt time.Time `json:"expires_at"`
	Active    bool      `json:"active"`
}

// Activate godoc
// @Summary      Activate ERP invoicing with a one-time authorization code
// @Tags         erp
// @Accept       json
// @Produce      json
// @Success      200  {object}  handlers.erpTokenResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /v1/erp/activate [post]
func (h *InvoiceHandler) Activate(c *gin.Context) {
	var payload activateERPRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	tok, err := h.usecase.Activate(c.Request.Context(), payload.AuthorizationCode)
	if err != nil {
		log.Printf("[erp][handler] activation failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("ERP_ACTIVATION_FAILED", "Não foi possível ativar a integração com o ERP", http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, erpTokenResponse{Provider: tok.Provider, ExpiresAt: tok.ExpiresAt, Active: tok.IsActive})
}

// TokenStatus godoc
// @Summary      Probe the ERP token status
// @Tags         erp
// @Produce      json
// @Success      200  {object}  handlers.erpTokenResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /v1/erp/token [get]
func (h *InvoiceHandler) TokenStatus(c *gin.Context) {
	tok, err := h.usecase.GetCurrentToken(c.Request.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrTokenUnavailable) {
			appErr := pkg.NewDomainErrorSimple("ERP_TOKEN_UNAVAILABLE", "Integração com o ERP precisa ser reativada", http.StatusNotFound)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		log.Printf("[erp][handler] token status failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, erpTokenResponse{Provider: tok.Provider, ExpiresAt: tok.ExpiresAt, Active: tok.IsActive})
}
