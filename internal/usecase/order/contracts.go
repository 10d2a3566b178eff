package order

import (
	"context"

	"delivery/internal/entity"
)

// Transactor runs fn inside a single storage transaction. The completion
// batch relies on it: the first failing claim rolls back every earlier
// insert of the same request.
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type OrderRepository interface {
	BatchCreate(ctx context.Context, orders []entity.Order) (*[]entity.Order, error)
	FindById(ctx context.Context, id uint64) (*entity.Order, error)
	PaginatedFetchAll(ctx context.Context, offset, limit int32) (*[]entity.Order, error)
	FindCompletedByIds(ctx context.Context, ids []uint64) (*[]entity.Order, error)
}

type CourierRepository interface {
	FindById(ctx context.Context, id uint64) (*entity.Courier, error)
}

type CompletionRepository interface {
	Create(ctx context.Context, c entity.CompletedOrder) (*entity.CompletedOrder, error)
	FindByOrderId(ctx context.Context, orderID uint64) (*entity.CompletedOrder, error)
}
