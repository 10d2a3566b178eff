package repositories

import (
	"context"
	"time"

	trmgorm "github.com/avito-tech/go-transaction-manager/gorm"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"delivery"
	"delivery/internal/entity"
)

// @migration
type Order struct {
	ID            uint64         `gorm:"primaryKey"`
	Weight        float64        `gorm:"not null"`
	Regions       int32          `gorm:"not null"`
	DeliveryHours pq.StringArray `gorm:"type:text[];not null"`
	Cost          uint32         `gorm:"not null"`
}

// orderRow carries an order joined with its completion record, if any.
type orderRow struct {
	ID            uint64
	Weight        float64
	Regions       int32
	DeliveryHours pq.StringArray `gorm:"type:text[]"`
	Cost          uint32
	CompletedTime *time.Time
}

const orderWithCompletionSelect = `
	SELECT
		"o"."id",
		"o"."weight",
		"o"."regions",
		"o"."delivery_hours",
		"o"."cost",
		"co"."complete_time" AS "completed_time"
	FROM "orders" AS "o"
	LEFT JOIN "completed_orders" AS "co"
		ON "co"."order_id" = "o"."id"`

type OrderRepo struct {
	gorm   *gorm.DB
	getter *trmgorm.CtxGetter
}

func NewOrderRepo(grm *gorm.DB, getter *trmgorm.CtxGetter) *OrderRepo {
	return &OrderRepo{
		gorm:   grm,
		getter: getter,
	}
}

func (s *OrderRepo) db(ctx context.Context) *gorm.DB {
	return s.getter.DefaultTrOrDB(ctx, s.gorm).WithContext(ctx)
}

func (s *OrderRepo) BatchCreate(ctx context.Context, newOrders []entity.Order) (*[]entity.Order, error) {

	orders := make([]Order, 0, len(newOrders))
	for _, o := range newOrders {
		orders = append(orders, Order{
			Weight:        o.Weight,
			Regions:       o.Regions,
			DeliveryHours: pq.StringArray(o.DeliveryHours),
			Cost:          o.Cost,
		})
	}

	if err := s.db(ctx).CreateInBatches(&orders, 20).Error; err != nil {
		return nil, err
	}

	res := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, entity.Order{
			ID:            o.ID,
			Weight:        o.Weight,
			Regions:       o.Regions,
			DeliveryHours: o.DeliveryHours,
			Cost:          o.Cost,
		})
	}

	return &res, nil
}

func (s *OrderRepo) FindById(ctx context.Context, id uint64) (*entity.Order, error) {

	var rows []orderRow

	err := s.db(ctx).
		Raw(orderWithCompletionSelect+` WHERE "o"."id" = ?`, id).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, &delivery.Error{
			Code:    delivery.ENOTFOUND,
			Message: "Order not found",
		}
	}

	res := orderRowToEntity(rows[0])
	return &res, nil
}

func (s *OrderRepo) PaginatedFetchAll(ctx context.Context, offset, limit int32) (*[]entity.Order, error) {

	rows := []orderRow{}

	err := s.db(ctx).
		Raw(orderWithCompletionSelect+` ORDER BY "o"."id" ASC LIMIT ? OFFSET ?`, limit, offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]entity.Order, 0, len(rows))
	for _, r := range rows {
		res = append(res, orderRowToEntity(r))
	}

	return &res, nil
}

// FindCompletedByIds hydrates the result of a completion batch: every id is
// expected to have a completion record already.
func (s *OrderRepo) FindCompletedByIds(ctx context.Context, ids []uint64) (*[]entity.Order, error) {

	res := []entity.Order{}
	if len(ids) == 0 {
		return &res, nil
	}

	rows := []orderRow{}

	err := s.db(ctx).
		Raw(orderWithCompletionSelect+` WHERE "o"."id" IN ? ORDER BY "o"."id" ASC`, ids).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		res = append(res, orderRowToEntity(r))
	}

	return &res, nil
}

func orderRowToEntity(r orderRow) entity.Order {
	return entity.Order{
		ID:            r.ID,
		Weight:        r.Weight,
		Regions:       r.Regions,
		DeliveryHours: r.DeliveryHours,
		Cost:          r.Cost,
		CompletedTime: r.CompletedTime,
	}
}
