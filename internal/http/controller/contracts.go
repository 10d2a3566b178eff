package controller

import (
	"context"
	"time"

	"delivery/internal/entity"
	"delivery/internal/usecase/courier"
	"delivery/internal/usecase/order"
)

type courierUsecase interface {
	CreateCouriers(ctx context.Context, couriers []courier.CourierToCreateDTO) (*[]entity.Courier, error)
	GetById(ctx context.Context, id uint64) (*entity.Courier, error)
	PaginatedGetAll(ctx context.Context, offset, limit int32) (*[]entity.Courier, error)
	MetaInInterval(ctx context.Context, c *entity.Courier, startDate, endDate time.Time) (*courier.CourierMetaDTO, error)
}

type orderUsecase interface {
	CreateOrders(ctx context.Context, orders []order.OrderToCreateDTO) (*[]entity.Order, error)
	GetById(ctx context.Context, id uint64) (*entity.Order, error)
	PaginatedGetAll(ctx context.Context, offset, limit int32) (*[]entity.Order, error)
	Complete(ctx context.Context, toComplete []order.OrderToCompleteDTO) (*[]entity.Order, error)
}
