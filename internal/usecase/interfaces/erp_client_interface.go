package interfaces

import (
	"context"
	"errors"

	"loja_checkout/internal/domain/entities"
)

// ErrInvoiceUnauthorized is returned by the invoice client on a 401 from the
// ERP; the token lifecycle refreshes once and retries exactly once.
var ErrInvoiceUnauthorized = errors.New("invoice request unauthorized")

// IERPAuthClient abstracts the ERP OAuth endpoint (POST /oauth/token with
// Basic-auth client credentials).

type IERPAuthClient interface {
	ExchangeAuthorizationCode(ctx context.Context, code string) (entities.AuthToken, error)
	RefreshToken(ctx context.Context, refreshToken string) (entities.AuthToken, error)
}

// IInvoiceClient fires the best-effort invoice generation call for a paid
// order, authenticated with the current access token.

type IInvoiceClient interface {
	GenerateInvoice(ctx context.Context, accessToken string, order entities.Order) error
}
