package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"loja_checkout/internal/domain/entities"
	"loja_checkout/internal/usecase/interfaces"
)

var (
	ErrTokenUnavailable = errors.New("no usable erp token")
	ErrRefreshFailed    = errors.New("erp token refresh failed")
)

// IInvoiceUseCase maintains the OAuth access/refresh pair for the ERP and
// fires the best-effort invoice generation after a charge is paid. Nothing
// here may ever block or fail order completion.

type IInvoiceUseCase interface {
	Activate(ctx context.Context, authorizationCode string) (entities.AuthToken, error)
	GetCurrentToken(ctx context.Context) (entities.AuthToken, error)
	Refresh(ctx context.Context) (entities.AuthToken, error)
	GenerateForOrder(ctx context.Context, orderID string)
}

type InvoiceUseCase struct {
	tokens   interfaces.IAuthTokenRepository
	auth     interfaces.IERPAuthClient
	invoices interfaces.IInvoiceClient
	orders   interfaces.IOrderRepository
	provider string

	// Serializes refreshes so two concurrent 401s cannot race and invalidate
	// each other's refresh token.
	refreshMu sync.Mutex

	now func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)
var _ IInvoiceTrigger = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(tokens interfaces.IAuthTokenRepository, auth interfaces.IERPAuthClient, invoices interfaces.IInvoiceClient, orders interfaces.IOrderRepository, provider string) *InvoiceUseCase {
	return &InvoiceUseCase{
		tokens:   tokens,
		auth:     auth,
		invoices: invoices,
		orders:   orders,
		provider: provider,
		now:      time.Now,
	}
}

// Activate exchanges a one-time authorization code for the initial token pair
// and persists it as the provider's single active row.
func (u *InvoiceUseCase) Activate(ctx context.Context, authorizationCode string) (entities.AuthToken, error) {
	tok, err := u.auth.ExchangeAuthorizationCode(ctx, authorizationCode)
	if err != nil {
		log.Printf("[invoice][usecase] activation failed provider=%s err=%v", u.provider, err)
		return entities.AuthToken{}, err
	}
	tok.Provider = u.provider
	tok.IsActive = true
	stored, err := u.tokens.Upsert(ctx, tok)
	if err != nil {
		return entities.AuthToken{}, err
	}
	log.Printf("[invoice][usecase] activation success provider=%s expires_at=%s", u.provider, stored.ExpiresAt.Format(time.RFC3339))
	return stored, nil
}

// GetCurrentToken returns the active token while it is outside the safety
// margin; an expired access token is refreshed transparently when the refresh
// token is still alive. With both expired it returns ErrTokenUnavailable and
// the caller must treat invoicing as unavailable, not fatal.
func (u *InvoiceUseCase) GetCurrentToken(ctx context.Context) (entities.AuthToken, error) {
	tok, err := u.tokens.GetByProvider(ctx, u.provider)
	if err != nil {
		return entities.AuthToken{}, err
	}
	now := u.now().UTC()
	if tok.IsUsable(now) {
		return tok, nil
	}
	if !tok.CanRefresh(now) {
		return entities.AuthToken{}, ErrTokenUnavailable
	}
	return u.Refresh(ctx)
}

// Refresh exchanges the refresh token for a new pair and atomically replaces
// the stored row. On failure the old token is left untouched.
func (u *InvoiceUseCase) Refresh(ctx context.Context) (entities.AuthToken, error) {
	return u.refresh(ctx, "")
}

// refresh holds the lock for the whole exchange. rejectedAccessToken marks a
// token the ERP already refused with 401: when the stored row still carries
// it, the local expiry check is skipped and the exchange is forced, because a
// revoked or clock-skewed token can look usable locally while being dead
// server-side. A concurrent caller may have refreshed while we waited for the
// lock, in which case the stored token differs and is returned as-is.
func (u *InvoiceUseCase) refresh(ctx context.Context, rejectedAccessToken string) (entities.AuthToken, error) {
	u.refreshMu.Lock()
	defer u.refreshMu.Unlock()

	tok, err := u.tokens.GetByProvider(ctx, u.provider)
	if err != nil {
		return entities.AuthToken{}, err
	}
	now := u.now().UTC()
	rejected := rejectedAccessToken != "" && tok.AccessToken == rejectedAccessToken
	if tok.IsUsable(now) && !rejected {
		return tok, nil
	}
	if !tok.CanRefresh(now) {
		return entities.AuthToken{}, ErrTokenUnavailable
	}

	fresh, err := u.auth.RefreshToken(ctx, tok.RefreshToken)
	if err != nil {
		log.Printf("[invoice][usecase] refresh failed provider=%s err=%v", u.provider, err)
		return entities.AuthToken{}, errors.Join(ErrRefreshFailed, err)
	}
	fresh.Provider = u.provider
	fresh.IsActive = true
	stored, err := u.tokens.Upsert(ctx, fresh)
	if err != nil {
		return entities.AuthToken{}, err
	}
	log.Printf("[invoice][usecase] refresh success provider=%s expires_at=%s", u.provider, stored.ExpiresAt.Format(time.RFC3339))
	return stored, nil
}

// GenerateForOrder fires the invoice call for a paid order. Best-effort by
// contract: every failure is logged and swallowed, invisible to the buyer.
func (u *InvoiceUseCase) GenerateForOrder(ctx context.Context, orderID string) {
	if err := u.generate(ctx, orderID); err != nil {
		log.Printf("[invoice][usecase] generation skipped order_id=%s err=%v", orderID, err)
		return
	}
	log.Printf("[invoice][usecase] generation success order_id=%s", orderID)
}

// generate attaches the current token and retries exactly once after a
// refresh on 401; a second 401 is a hard failure.
func (u *InvoiceUseCase) generate(ctx context.Context, orderID string) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.ID == "" {
		return ErrOrderNotFound
	}

	tok, err := u.GetCurrentToken(ctx)
	if err != nil {
		return err
	}

	err = u.invoices.GenerateInvoice(ctx, tok.AccessToken, order)
	if !errors.Is(err, interfaces.ErrInvoiceUnauthorized) {
		return err
	}

	log.Printf("[invoice][usecase] 401 from erp, refreshing once order_id=%s", orderID)
	tok, err = u.refresh(ctx, tok.AccessToken)
	if err != nil {
		return err
	}
	return u.invoices.GenerateInvoice(ctx, tok.AccessToken, order)
}
