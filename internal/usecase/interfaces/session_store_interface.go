package interfaces

import (
	"context"

	"loja_checkout/internal/domain/entities"
)

// ISessionStore abstracts the Redis-backed session state shared across
// checkout-adjacent pages: the cart aggregate, the active coupon (at most
// one), the one-shot price-override marker and the freight selection.
//
// Getters return zero values (nil pointer / empty cart) when nothing is
// stored; "not found" is not an error at this layer.

type ISessionStore interface {
	GetCart(ctx context.Context, sessionID string) (entities.Cart, error)
	SaveCart(ctx context.Context, cart entities.Cart) error

	GetActiveCoupon(ctx context.Context, sessionID string) (*entities.Coupon, error)
	SaveActiveCoupon(ctx context.Context, sessionID string, coupon entities.Coupon) error
	ClearActiveCoupon(ctx context.Context, sessionID string) error

	// SetPriceOverrideMarker records that a price-override coupon was applied.
	// ConsumePriceOverrideMarker reads and clears it in one step; the marker
	// is consumed exactly once, by the checkout payload builder.
	SetPriceOverrideMarker(ctx context.Context, sessionID string) error
	ConsumePriceOverrideMarker(ctx context.Context, sessionID string) (bool, error)
	ClearPriceOverrideMarker(ctx context.Context, sessionID string) error

	GetFreightSelection(ctx context.Context, sessionID string) (*entities.FreightSelection, error)
	SaveFreightSelection(ctx context.Context, sessionID string, sel entities.FreightSelection) error
}
