package handlers

import (
	"errors"
	"log"
	"net/http"

	request "loja_checkout/internal/adapter/http/dto/request"
	response "loja_checkout/internal/adapter/http/dto/response"
	"loja_checkout/internal/usecase"
	"loja_checkout/internal/usecase/interfaces"
	"loja_checkout/pkg"

	"github.com/gin-gonic/gin"
)

// FreightHandler handles freight quoting/selection plus the CEP address
// prefill lookup.

type FreightHandler struct {
	usecase usecase.IFreightUseCase
	lookup  interfaces.IPostalLookup
}

func NewFreightHandler(uc usecase.IFreightUseCase, lookup interfaces.IPostalLookup) *FreightHandler {
	return &FreightHandler{usecase: uc, lookup: lookup}
}

// Quote godoc
// @Summary      Quote freight services for a CEP
// @Tags         freight
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Param        cep         path  string  true  "Postal code (CEP)"
// @Success      200  {array}   response.FreightQuoteResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /v1/freight/{session_id}/quotes/{cep} [get]
func (h *FreightHandler) Quote(c *gin.Context) {
	sessionID := c.Param("session_id")
	cep := c.Param("cep")

	quotes, err := h.usecase.Quote(c.Request.Context(), sessionID, cep)
	if err != nil {
		appErr := mapFreightError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFreightQuotes(quotes))
}

// Select godoc
// @Summary      Select a quoted freight option
// @Tags         freight
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                       true  "Session ID"
// @Param        payload     body  request.SelectFreightRequest true  "Quote index"
// @Success      200  {object}  response.FreightQuoteResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /v1/freight/{session_id}/select [patch]
func (h *FreightHandler) Select(c *gin.Context) {
	sessionID := c.Param("session_id")
	var payload request.SelectFreightRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Index == nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quote, err := h.usecase.Select(c.Request.Context(), sessionID, *payload.Index)
	if err != nil {
		appErr := mapFreightError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFreightQuote(quote))
}

// LookupAddress godoc
// @Summary      Prefill an address from a CEP
// @Tags         address
// @Produce      json
// @Param        cep  path  string  true  "Postal code (CEP)"
// @Success      200  {object}  response.AddressResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /v1/address/{cep} [get]
func (h *FreightHandler) LookupAddress(c *gin.Context) {
	cep := usecase.NormalizeCEP(c.Param("cep"))

	addr, err := h.lookup.Lookup(c.Request.Context(), cep)
	if err != nil {
		log.Printf("[address][handler] lookup failed cep=%s err=%v", cep, err)
		appErr := pkg.NewDomainErrorSimple("ADDRESS_LOOKUP_UNAVAILABLE", "Serviço de CEP indisponível", http.StatusServiceUnavailable)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	// An unknown CEP is not an error: an empty prefill lets the customer type
	// the address by hand.
	c.JSON(http.StatusOK, response.FromAddress(addr))
}

func mapFreightError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidPostalCode),
		errors.Is(err, usecase.ErrFreightIndexOutOfRange), errors.Is(err, usecase.ErrFreightQuoteNotRequested):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFreightUnavailable):
		return pkg.NewDomainErrorSimple("FREIGHT_UNAVAILABLE", "Não foi possível calcular o frete agora", http.StatusServiceUnavailable)
	default:
		log.Printf("[freight][handler] unexpected error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
