package interfaces

import (
	"context"

	"loja_checkout/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Orders are created once by the checkout payload builder and never mutated
// afterwards; charge state lives in its own table.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
}
