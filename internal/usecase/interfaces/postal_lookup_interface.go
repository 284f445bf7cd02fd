package interfaces

import (
	"context"

	"loja_checkout/internal/domain/entities"
)

// IPostalLookup abstracts the ViaCEP-style address lookup, consumed as a
// black box. The returned Address carries street/district/city/state; a CEP
// unknown to the service yields a zero-value Address with no error.

type IPostalLookup interface {
	Lookup(ctx context.Context, cep string) (entities.Address, error)
}
