package interfaces

import (
	"context"

	"loja_checkout/internal/domain/entities"
)

// ICouponCatalog abstracts the remote coupon catalog.
//
// FindByCode returns a zero-value Coupon (empty Code) when the catalog has no
// matching code; the usecase maps that to its NotFound sentinel.

type ICouponCatalog interface {
	FindByCode(ctx context.Context, code string) (entities.Coupon, error)
}
