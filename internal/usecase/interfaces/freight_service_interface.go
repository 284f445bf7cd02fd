package interfaces

import (
	"context"

	"loja_checkout/internal/domain/entities"
)

// IFreightService abstracts the carrier API that prices shipping services for
// a postal code. Transport failures surface as errors; the usecase maps them
// to its ServiceUnavailable sentinel.

type IFreightService interface {
	Quote(ctx context.Context, postalCode string) ([]entities.FreightQuote, error)
}
