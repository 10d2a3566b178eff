package courier

import (
	"context"
	"time"

	"delivery/internal/entity"
)

// Transactor runs fn inside a single storage transaction.
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type CourierRepository interface {
	BatchCreate(ctx context.Context, couriers []entity.Courier) (*[]entity.Courier, error)
	FindById(ctx context.Context, id uint64) (*entity.Courier, error)
	PaginatedFetchAll(ctx context.Context, offset, limit int32) (*[]entity.Courier, error)
}

// CompletionStats exposes the aggregates the metrics computation needs.
// Both queries use the half-open interval [start, end).
type CompletionStats interface {
	CountInIntervalByCourierId(ctx context.Context, courierID uint64, start, end time.Time) (uint64, error)
	CostInIntervalByCourierId(ctx context.Context, courierID uint64, start, end time.Time) (uint64, error)
}
