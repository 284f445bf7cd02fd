package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"loja_checkout/internal/domain/entities"
	"loja_checkout/internal/usecase/interfaces"
)

var (
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrInvalidCartItem  = errors.New("invalid cart item")
	ErrCartItemNotFound = errors.New("cart item not found")
)

// ICartUseCase owns the cart aggregate: lines are mutated only through these
// operations, and the authoritative pricing is recomputed from session state
// on every read.

type ICartUseCase interface {
	AddItem(ctx context.Context, sessionID, productID, name string, unitPriceCents int64, quantity int) (entities.Cart, error)
	IncrementItem(ctx context.Context, sessionID, productID string) (entities.Cart, error)
	DecrementItem(ctx context.Context, sessionID, productID string) (entities.Cart, error)
	RemoveItem(ctx context.Context, sessionID, productID string) (entities.Cart, error)
	GetCart(ctx context.Context, sessionID string) (entities.Cart, error)
	GetPricing(ctx context.Context, sessionID string) (entities.PricingResult, error)
}

type CartUseCase struct {
	store                      interfaces.ISessionStore
	freeShippingThresholdCents int64
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(store interfaces.ISessionStore, freeShippingThresholdCents int64) *CartUseCase {
	return &CartUseCase{store: store, freeShippingThresholdCents: freeShippingThresholdCents}
}

func (u *CartUseCase) AddItem(ctx context.Context, sessionID, productID, name string, unitPriceCents int64, quantity int) (entities.Cart, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Cart{}, ErrInvalidSessionID
	}
	if strings.TrimSpace(productID) == "" {
		return entities.Cart{}, ErrInvalidCartItem
	}

	cart, err := u.store.GetCart(ctx, sessionID)
	if err != nil {
		return entities.Cart{}, err
	}
	cart.SessionID = sessionID
	if err := cart.Add(productID, name, unitPriceCents, quantity); err != nil {
		log.Printf("[cart][usecase] add rejected session_id=%s product_id=%s err=%v", sessionID, productID, err)
		return entities.Cart{}, errors.Join(ErrInvalidCartItem, err)
	}
	if err := u.store.SaveCart(ctx, cart); err != nil {
		return entities.Cart{}, err
	}
	log.Printf("[cart][usecase] add success session_id=%s product_id=%s qty=%d lines=%d", sessionID, productID, quantity, len(cart.Lines))
	return cart, nil
}

func (u *CartUseCase) IncrementItem(ctx context.Context, sessionID, productID string) (entities.Cart, error) {
	return u.mutateLine(ctx, sessionID, productID, "increment", (*entities.Cart).Increment)
}

func (u *CartUseCase) DecrementItem(ctx context.Context, sessionID, productID string) (entities.Cart, error) {
	return u.mutateLine(ctx, sessionID, productID, "decrement", (*entities.Cart).Decrement)
}

func (u *CartUseCase) RemoveItem(ctx context.Context, sessionID, productID string) (entities.Cart, error) {
	return u.mutateLine(ctx, sessionID, productID, "remove", (*entities.Cart).Remove)
}

func (u *CartUseCase) mutateLine(ctx context.Context, sessionID, productID, op string, mutate func(*entities.Cart, string) error) (entities.Cart, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Cart{}, ErrInvalidSessionID
	}

	cart, err := u.store.GetCart(ctx, sessionID)
	if err != nil {
		return entities.Cart{}, err
	}
	cart.SessionID = sessionID
	if err := mutate(&cart, productID); err != nil {
		if errors.Is(err, entities.ErrCartLineNotFound) {
			return entities.Cart{}, ErrCartItemNotFound
		}
		return entities.Cart{}, err
	}
	if err := u.store.SaveCart(ctx, cart); err != nil {
		return entities.Cart{}, err
	}
	log.Printf("[cart][usecase] %s success session_id=%s product_id=%s lines=%d", op, sessionID, productID, len(cart.Lines))
	return cart, nil
}

func (u *CartUseCase) GetCart(ctx context.Context, sessionID string) (entities.Cart, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Cart{}, ErrInvalidSessionID
	}
	cart, err := u.store.GetCart(ctx, sessionID)
	if err != nil {
		return entities.Cart{}, err
	}
	cart.SessionID = sessionID
	return cart, nil
}

// GetPricing recomputes the money breakdown from {cart, active coupon,
// freight selection}. Derived, never stored.
func (u *CartUseCase) GetPricing(ctx context.Context, sessionID string) (entities.PricingResult, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.PricingResult{}, ErrInvalidSessionID
	}
	return computeSessionPricing(ctx, u.store, sessionID, u.freeShippingThresholdCents)
}

// computeSessionPricing is shared by the cart and checkout usecases so both
// always agree with the pricing ledger.
func computeSessionPricing(ctx context.Context, store interfaces.ISessionStore, sessionID string, freeShippingThresholdCents int64) (entities.PricingResult, error) {
	cart, err := store.GetCart(ctx, sessionID)
	if err != nil {
		return entities.PricingResult{}, err
	}
	coupon, err := store.GetActiveCoupon(ctx, sessionID)
	if err != nil {
		return entities.PricingResult{}, err
	}
	sel, err := store.GetFreightSelection(ctx, sessionID)
	if err != nil {
		return entities.PricingResult{}, err
	}

	var freight *entities.FreightQuote
	if sel != nil && sel.HasSelection() {
		q := sel.Selected()
		freight = &q
	}
	return entities.ComputePricing(cart.Lines, coupon, freight, freeShippingThresholdCents), nil
}
