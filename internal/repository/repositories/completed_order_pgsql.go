package repositories

import (
	"context"
	"errors"
	"time"

	trmgorm "github.com/avito-tech/go-transaction-manager/gorm"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"delivery"
	"delivery/internal/entity"
)

// @migration
type CompletedOrder struct {
	ID           uint64    `gorm:"primaryKey"`
	CourierID    uint64    `gorm:"not null;index"`
	Courier      *Courier  `gorm:"foreignKey:CourierID"`
	OrderID      uint64    `gorm:"not null;uniqueIndex"`
	Order        *Order    `gorm:"foreignKey:OrderID"`
	CompleteTime time.Time `gorm:"not null"`
}

type CompletedOrderRepo struct {
	gorm   *gorm.DB
	getter *trmgorm.CtxGetter
}

func NewCompletedOrderRepo(grm *gorm.DB, getter *trmgorm.CtxGetter) *CompletedOrderRepo {
	return &CompletedOrderRepo{
		gorm:   grm,
		getter: getter,
	}
}

func (s *CompletedOrderRepo) db(ctx context.Context) *gorm.DB {
	return s.getter.DefaultTrOrDB(ctx, s.gorm).WithContext(ctx)
}

// Create inserts one completion record. The unique index on order_id is the
// authoritative duplicate check: a violation surfaces as ECONFLICT even when
// a racing request passed the pre-insert read.
func (s *CompletedOrderRepo) Create(ctx context.Context, c entity.CompletedOrder) (*entity.CompletedOrder, error) {

	row := CompletedOrder{
		CourierID:    c.CourierID,
		OrderID:      c.OrderID,
		CompleteTime: c.CompleteTime.UTC(),
	}

	if err := s.db(ctx).Create(&row).Error; err != nil {
		return nil, completionInsertError(err)
	}

	return &entity.CompletedOrder{
		ID:           row.ID,
		CourierID:    row.CourierID,
		OrderID:      row.OrderID,
		CompleteTime: row.CompleteTime,
	}, nil
}

// completionInsertError maps a unique violation on order_id to the conflict
// the caller reports: the request that loses a racing insert sees the same
// error as a plain double completion.
func completionInsertError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return &delivery.Error{
			Code:    delivery.ECONFLICT,
			Message: "Order already completed",
			Err:     err,
		}
	}

	return err
}

func (s *CompletedOrderRepo) FindByOrderId(ctx context.Context, orderID uint64) (*entity.CompletedOrder, error) {

	var row CompletedOrder

	err := s.db(ctx).Where("order_id = ?", orderID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &delivery.Error{
				Code:    delivery.ENOTFOUND,
				Message: "Completion record not found",
				Err:     err,
			}
		}

		return nil, err
	}

	return &entity.CompletedOrder{
		ID:           row.ID,
		CourierID:    row.CourierID,
		OrderID:      row.OrderID,
		CompleteTime: row.CompleteTime,
	}, nil
}

// CountInIntervalByCourierId counts completions in the half-open interval
// [start, end).
func (s *CompletedOrderRepo) CountInIntervalByCourierId(
	ctx context.Context,
	courierID uint64,
	start, end time.Time,
) (uint64, error) {

	var count int64

	err := s.db(ctx).
		Model(&CompletedOrder{}).
		Where("courier_id = ? AND complete_time >= ? AND complete_time < ?", courierID, start, end).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return uint64(count), nil
}

// CostInIntervalByCourierId sums the cost of orders completed by the courier
// in the half-open interval [start, end).
func (s *CompletedOrderRepo) CostInIntervalByCourierId(
	ctx context.Context,
	courierID uint64,
	start, end time.Time,
) (uint64, error) {

	var cost *uint64

	err := s.db(ctx).Raw(`
		SELECT SUM("o"."cost") AS "cost" FROM "completed_orders" AS "co"
		JOIN "orders" AS "o" ON "o"."id" = "co"."order_id"
		WHERE "co"."courier_id" = ?
			AND "co"."complete_time" >= ?
			AND "co"."complete_time" < ?`,
		courierID,
		start,
		end,
	).Scan(&cost).Error

	if err != nil {
		return 0, err
	}

	if cost == nil {
		return 0, nil
	}

	return *cost, nil
}
