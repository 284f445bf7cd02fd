package usecase

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"

	"loja_checkout/internal/domain/entities"
	"loja_checkout/internal/usecase/interfaces"
)

var (
	ErrInvalidPostalCode        = errors.New("invalid postal code")
	ErrFreightUnavailable       = errors.New("freight service unavailable")
	ErrFreightIndexOutOfRange   = errors.New("freight quote index out of range")
	ErrFreightQuoteNotRequested = errors.New("no freight quotes for this session")
)

var cepPattern = regexp.MustCompile(`^[0-9]{8}$`)

// IFreightUseCase fetches carrier quotes per postal code, caches them in the
// session and holds the user's selection. The selected price is trusted
// downstream, so the selection is re-read from the session on every
// checkout-adjacent load instead of being re-fetched.

type IFreightUseCase interface {
	Quote(ctx context.Context, sessionID, postalCode string) ([]entities.FreightQuote, error)
	Select(ctx context.Context, sessionID string, index int) (entities.FreightQuote, error)
	Selection(ctx context.Context, sessionID string) (*entities.FreightSelection, error)
}

type FreightUseCase struct {
	store   interfaces.ISessionStore
	carrier interfaces.IFreightService
}

var _ IFreightUseCase = (*FreightUseCase)(nil)

func NewFreightUseCase(store interfaces.ISessionStore, carrier interfaces.IFreightService) *FreightUseCase {
	return &FreightUseCase{store: store, carrier: carrier}
}

// NormalizeCEP strips the conventional dash ("01310-100" -> "01310100").
func NormalizeCEP(cep string) string {
	return strings.ReplaceAll(strings.TrimSpace(cep), "-", "")
}

func (u *FreightUseCase) Quote(ctx context.Context, sessionID, postalCode string) ([]entities.FreightQuote, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	cep := NormalizeCEP(postalCode)
	if !cepPattern.MatchString(cep) {
		return nil, ErrInvalidPostalCode
	}

	// Cached quotes are reused while the postal code is unchanged.
	sel, err := u.store.GetFreightSelection(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sel != nil && sel.PostalCode == cep && len(sel.Quotes) > 0 {
		log.Printf("[freight][usecase] quote cache-hit session_id=%s cep=%s quotes=%d", sessionID, cep, len(sel.Quotes))
		return sel.Quotes, nil
	}

	quotes, err := u.carrier.Quote(ctx, cep)
	if err != nil {
		log.Printf("[freight][usecase] carrier failed session_id=%s cep=%s err=%v", sessionID, cep, err)
		return nil, ErrFreightUnavailable
	}
	for i := range quotes {
		quotes[i].Index = i
	}

	// A new postal code drops the previous selection.
	if err := u.store.SaveFreightSelection(ctx, sessionID, entities.FreightSelection{
		PostalCode:    cep,
		Quotes:        quotes,
		SelectedIndex: -1,
	}); err != nil {
		return nil, err
	}
	log.Printf("[freight][usecase] quote success session_id=%s cep=%s quotes=%d", sessionID, cep, len(quotes))
	return quotes, nil
}

// Select is a pure state update; an out-of-range index is a programmer error
// and is rejected, never clamped.
func (u *FreightUseCase) Select(ctx context.Context, sessionID string, index int) (entities.FreightQuote, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.FreightQuote{}, ErrInvalidSessionID
	}

	sel, err := u.store.GetFreightSelection(ctx, sessionID)
	if err != nil {
		return entities.FreightQuote{}, err
	}
	if sel == nil || len(sel.Quotes) == 0 {
		return entities.FreightQuote{}, ErrFreightQuoteNotRequested
	}
	if index < 0 || index >= len(sel.Quotes) {
		return entities.FreightQuote{}, ErrFreightIndexOutOfRange
	}

	sel.SelectedIndex = index
	if err := u.store.SaveFreightSelection(ctx, sessionID, *sel); err != nil {
		return entities.FreightQuote{}, err
	}
	log.Printf("[freight][usecase] select success session_id=%s index=%d service=%s", sessionID, index, sel.Quotes[index].ServiceName)
	return sel.Quotes[index], nil
}

func (u *FreightUseCase) Selection(ctx context.Context, sessionID string) (*entities.FreightSelection, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	return u.store.GetFreightSelection(ctx, sessionID)
}
