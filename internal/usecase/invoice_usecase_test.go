package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"loja_checkout/internal/domain/entities"
	"loja_checkout/internal/usecase/interfaces"
	"loja_checkout/internal/usecase/interfaces/mocks"
)

func newInvoiceFixture(t *testing.T) (*InvoiceUseCase, *mocks.MockIAuthTokenRepository, *mocks.MockIERPAuthClient, *mocks.MockIInvoiceClient, *mocks.MockIOrderRepository) {
	ctrl := gomock.NewController(t)
	tokens := mocks.NewMockIAuthTokenRepository(ctrl)
	auth := mocks.NewMockIERPAuthClient(ctrl)
	invoices := mocks.NewMockIInvoiceClient(ctrl)
	orders := mocks.NewMockIOrderRepository(ctrl)
	uc := NewInvoiceUseCase(tokens, auth, invoices, orders, "erp")
	return uc, tokens, auth, invoices, orders
}

func usableToken(now time.Time) entities.AuthToken {
	return entities.AuthToken{
		Provider:         "erp",
		AccessToken:      "at-1",
		RefreshToken:     "rt-1",
		ExpiresAt:        now.Add(time.Hour),
		RefreshExpiresAt: now.Add(30 * 24 * time.Hour),
		IsActive:         true,
	}
}

func staleToken(now time.Time) entities.AuthToken {
	tok := usableToken(now)
	tok.ExpiresAt = now.Add(-time.Minute)
	return tok
}

func TestInvoiceActivate(t *testing.T) {
	uc, tokens, auth, _, _ := newInvoiceFixture(t)

	now := time.Now()
	issued := usableToken(now)
	issued.Provider = ""
	auth.EXPECT().ExchangeAuthorizationCode(gomock.Any(), "code-1").Return(issued, nil)
	tokens.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tok entities.AuthToken) (entities.AuthToken, error) {
			if tok.Provider != "erp" || !tok.IsActive {
				t.Errorf("expected provider set on upsert, got %+v", tok)
			}
			return tok, nil
		})

	tok, err := uc.Activate(context.Background(), "code-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.AccessToken != "at-1" {
		t.Errorf("unexpected token: %+v", tok)
	}
}

func TestGetCurrentTokenUsable(t *testing.T) {
	uc, tokens, _, _, _ := newInvoiceFixture(t)

	now := time.Now()
	tokens.EXPECT().GetByProvider(gomock.Any(), "erp").Return(usableToken(now), nil)

	tok, err := uc.GetCurrentToken(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.AccessToken != "at-1" {
		t.Errorf("expected stored token, got %+v", tok)
	}
}

func TestGetCurrentTokenWithinSafetyMarginRefreshes(t *testing.T) {
	uc, tokens, auth, _, _ := newInvoiceFixture(t)

	now := time.Now()
	nearExpiry := usableToken(now)
	// Inside the safety margin: technically alive, treated as expired.
	nearExpiry.ExpiresAt = now.Add(entities.AuthTokenSafetyMargin / 2)

	tokens.EXPECT().GetByProvider(gomock.Any(), "erp").Return(nearExpiry, nil).Times(2)
	auth.EXPECT().RefreshToken(gomock.Any(), "rt-1").Return(entities.AuthToken{
		AccessToken:      "at-2",
		RefreshToken:     "rt-2",
		ExpiresAt:        now.Add(time.Hour),
		RefreshExpiresAt: now.Add(30 * 24 * time.Hour),
	}, nil)
	tokens.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tok entities.AuthToken) (entities.AuthToken, error) { return tok, nil })

	tok, err := uc.GetCurrentToken(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.AccessToken != "at-2" {
		t.Errorf("expected refreshed token, got %+v", tok)
	}
}

func TestGetCurrentTokenBothExpired(t *testing.T) {
	uc, tokens, _, _, _ := newInvoiceFixture(t)

	now := time.Now()
	dead := staleToken(now)
	dead.RefreshExpiresAt = now.Add(-time.Minute)
	tokens.EXPECT().GetByProvider(gomock.Any(), "erp").Return(dead, nil)

	if _, err := uc.GetCurrentToken(context.Background()); !errors.Is(err, ErrTokenUnavailable) {
		t.Errorf("expected ErrTokenUnavailable, got %v", err)
	}
}

func TestRefreshFailureKeepsOldToken(t *testing.T) {
	uc, tokens, auth, _, _ := newInvoiceFixture(t)

	now := time.Now()
	tokens.EXPECT().GetByProvider(gomock.Any(), "erp").Return(staleToken(now), nil)
	auth.EXPECT().RefreshToken(gomock.Any(), "rt-1").Return(entities.AuthToken{}, errors.New("erp down"))
	// No Upsert expectation: a failed refresh must not touch the stored row.

	if _, err := uc.Refresh(context.Background()); !errors.Is(err, ErrRefreshFailed) {
		t.Errorf("expected ErrRefreshFailed, got %v", err)
	}
}

func TestRefreshRecheckAfterLock(t *testing.T) {
	uc, tokens, _, _, _ := newInvoiceFixture(t)

	// The re-check under the lock finds a token a concurrent caller already
	// refreshed; no network call happens.
	now := time.Now()
	tokens.EXPECT().GetByProvider(gomock.Any(), "erp").Return(usableToken(now), nil)

	tok, err := uc.Refresh(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.AccessToken != "at-1" {
		t.Errorf("expected existing token without refresh, got %+v", tok)
	}
}

func TestGenerateForOrderRetriesOnceOn401(t *testing.T) {
	uc, tokens, auth, invoices, orders := newInvoiceFixture(t)

	now := time.Now()
	order := entities.Order{ID: "order-1", TotalAtCreationCents: 5000}
	orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil)
	gomock.InOrder(
		tokens.EXPECT().GetByProvider(gomock.Any(), "erp").Return(usableToken(now), nil),
		invoices.EXPECT().GenerateInvoice(gomock.Any(), "at-1", order).Return(interfaces.ErrInvoiceUnauthorized),
		tokens.EXPECT().GetByProvider(gomock.Any(), "erp").Return(staleToken(now), nil),
		auth.EXPECT().RefreshToken(gomock.Any(), "rt-1").Return(entities.AuthToken{
			AccessToken:      "at-2",
			RefreshToken:     "rt-2",
			ExpiresAt:        now.Add(time.Hour),
			RefreshExpiresAt: now.Add(30 * 24 * time.Hour),
		}, nil),
		tokens.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tok entities.AuthToken) (entities.AuthToken, error) { return tok, nil }),
		invoices.EXPECT().GenerateInvoice(gomock.Any(), "at-2", order).Return(nil),
	)

	uc.GenerateForOrder(context.Background(), "order-1")
}

func TestGenerateForOrder401ForcesExchangeOfLocallyUsableToken(t *testing.T) {
	uc, tokens, auth, invoices, orders := newInvoiceFixture(t)

	// A token revoked server-side (or skewed past the safety margin) still
	// looks usable locally. The 401 retry must exchange it, never resend the
	// access token the ERP just refused.
	now := time.Now()
	order := entities.Order{ID: "order-1", TotalAtCreationCents: 5000}
	orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil)
	gomock.InOrder(
		tokens.EXPECT().GetByProvider(gomock.Any(), "erp").Return(usableToken(now), nil),
		invoices.EXPECT().GenerateInvoice(gomock.Any(), "at-1", order).Return(interfaces.ErrInvoiceUnauthorized),
		tokens.EXPECT().GetByProvider(gomock.Any(), "erp").Return(usableToken(now), nil),
		auth.EXPECT().RefreshToken(gomock.Any(), "rt-1").Return(entities.AuthToken{
			AccessToken:      "at-2",
			RefreshToken:     "rt-2",
			ExpiresAt:        now.Add(time.Hour),
			RefreshExpiresAt: now.Add(30 * 24 * time.Hour),
		}, nil),
		tokens.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tok entities.AuthToken) (entities.AuthToken, error) { return tok, nil }),
		invoices.EXPECT().GenerateInvoice(gomock.Any(), "at-2", order).Return(nil),
	)

	uc.GenerateForOrder(context.Background(), "order-1")
}

func TestGenerateForOrder401UsesConcurrentlyRefreshedToken(t *testing.T) {
	uc, tokens, _, invoices, orders := newInvoiceFixture(t)

	// The post-lock re-read finds a token another caller already exchanged:
	// no network refresh, the retry carries the new token.
	now := time.Now()
	replaced := usableToken(now)
	replaced.AccessToken = "at-3"
	order := entities.Order{ID: "order-1"}
	orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil)
	gomock.InOrder(
		tokens.EXPECT().GetByProvider(gomock.Any(), "erp").Return(usableToken(now), nil),
		invoices.EXPECT().GenerateInvoice(gomock.Any(), "at-1", order).Return(interfaces.ErrInvoiceUnauthorized),
		tokens.EXPECT().GetByProvider(gomock.Any(), "erp").Return(replaced, nil),
		invoices.EXPECT().GenerateInvoice(gomock.Any(), "at-3", order).Return(nil),
	)

	uc.GenerateForOrder(context.Background(), "order-1")
}

func TestGenerateForOrderSecondUnauthorizedSwallowed(t *testing.T) {
	uc, tokens, auth, invoices, orders := newInvoiceFixture(t)

	now := time.Now()
	order := entities.Order{ID: "order-1"}
	orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil)
	gomock.InOrder(
		tokens.EXPECT().GetByProvider(gomock.Any(), "erp").Return(usableToken(now), nil),
		invoices.EXPECT().GenerateInvoice(gomock.Any(), "at-1", order).Return(interfaces.ErrInvoiceUnauthorized),
		tokens.EXPECT().GetByProvider(gomock.Any(), "erp").Return(staleToken(now), nil),
		auth.EXPECT().RefreshToken(gomock.Any(), "rt-1").Return(entities.AuthToken{
			AccessToken:      "at-2",
			RefreshToken:     "rt-2",
			ExpiresAt:        now.Add(time.Hour),
			RefreshExpiresAt: now.Add(30 * 24 * time.Hour),
		}, nil),
		tokens.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tok entities.AuthToken) (entities.AuthToken, error) { return tok, nil }),
		// The single retry also fails: swallowed, never surfaced.
		invoices.EXPECT().GenerateInvoice(gomock.Any(), "at-2", order).Return(interfaces.ErrInvoiceUnauthorized),
	)

	uc.GenerateForOrder(context.Background(), "order-1")
}

func TestGenerateForOrderMissingOrderSwallowed(t *testing.T) {
	uc, _, _, _, orders := newInvoiceFixture(t)

	orders.EXPECT().GetByID(gomock.Any(), "order-9").Return(entities.Order{}, nil)
	// Must not panic or call the ERP.
	uc.GenerateForOrder(context.Background(), "order-9")
}
