package interfaces

import (
	"context"

	"loja_checkout/internal/domain/entities"
)

// IAuthTokenRepository abstracts DynamoDB persistence for AuthToken.
//
// One row per provider; Upsert atomically replaces the stored pair so a
// refresh never leaves two active tokens behind.

type IAuthTokenRepository interface {
	GetByProvider(ctx context.Context, provider string) (entities.AuthToken, error)
	Upsert(ctx context.Context, t entities.AuthToken) (entities.AuthToken, error)
}
