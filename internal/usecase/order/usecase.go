package order

import (
	"context"

	"gopkg.in/go-playground/validator.v9"

	"delivery"
	"delivery/internal/entity"
	"delivery/pkg/validations"
)

type OrderUseCase struct {
	trm            Transactor
	validator      *validator.Validate
	OrderRepo      OrderRepository
	CourierRepo    CourierRepository
	CompletionRepo CompletionRepository
}

func New(
	trm Transactor,
	ordrepo OrderRepository,
	courrepo CourierRepository,
	comprepo CompletionRepository,
) *OrderUseCase {

	v := validator.New()
	v.RegisterValidation("each_HH_MM_HH_MM_time_interval", validations.Each_HH_MM_HH_MM_time_interval)

	return &OrderUseCase{
		trm:            trm,
		OrderRepo:      ordrepo,
		CourierRepo:    courrepo,
		CompletionRepo: comprepo,
		validator:      v,
	}
}

func (uc *OrderUseCase) CreateOrders(ctx context.Context, orders []OrderToCreateDTO) (*[]entity.Order, error) {
	op := "OrderUseCase.CreateOrders"

	toCreate := []entity.Order{}
	for _, o := range orders {
		if err := uc.validator.Struct(o); err != nil {
			return nil, delivery.ErrorWithCode(delivery.OpError(op, err), delivery.EINVALID)
		}

		toCreate = append(toCreate, entity.Order{
			Weight:        o.Weight,
			Regions:       o.Regions,
			DeliveryHours: o.DeliveryHours,
			Cost:          o.Cost,
		})
	}

	var savedOrders *[]entity.Order
	var err error
	err = uc.trm.Do(ctx, func(ctx context.Context) error {
		savedOrders, err = uc.OrderRepo.BatchCreate(ctx, toCreate)
		return err
	})
	if err != nil {
		return nil, delivery.OpError(op, err)
	}

	return savedOrders, nil
}

func (uc *OrderUseCase) GetById(ctx context.Context, id uint64) (*entity.Order, error) {
	const op = "OrderUseCase.GetById"

	order, err := uc.OrderRepo.FindById(ctx, id)
	if err != nil {
		return nil, delivery.OpError(op, err)
	}

	return order, nil
}

func (uc *OrderUseCase) PaginatedGetAll(ctx context.Context, offset, limit int32) (*[]entity.Order, error) {
	op := "OrderUseCase.PaginatedGetAll"

	orders, err := uc.OrderRepo.PaginatedFetchAll(ctx, offset, limit)
	if err != nil {
		return nil, delivery.OpError(op, err)
	}

	return orders, nil
}

// Complete processes completion claims in input order inside one
// transaction. Each claim must reference an existing order that has no
// completion record yet and an existing courier; the first failing claim
// aborts the batch and rolls back the claims before it. All three failure
// kinds answer with a distinct message. On success the just-created records
// are re-read joined with their orders.
func (uc *OrderUseCase) Complete(ctx context.Context, toComplete []OrderToCompleteDTO) (*[]entity.Order, error) {
	const op = "OrderUseCase.Complete"

	var res *[]entity.Order

	err := uc.trm.Do(ctx, func(ctx context.Context) error {

		completedIDs := make([]uint64, 0, len(toComplete))

		for _, i := range toComplete {
			if err := uc.validator.Struct(i); err != nil {
				return &delivery.Error{Op: op, Err: err, Code: delivery.EINVALID}
			}

			orderEntity, err := uc.OrderRepo.FindById(ctx, uint64(i.OrderId))
			if err != nil {
				if delivery.ErrorCode(err) == delivery.ENOTFOUND {
					return &delivery.Error{
						Op:      op,
						Code:    delivery.EINVALID,
						Message: "Order not found",
						Fields:  map[string]interface{}{"order_id": i.OrderId},
					}
				}
				return delivery.OpError(op, err)
			}

			_, err = uc.CompletionRepo.FindByOrderId(ctx, orderEntity.ID)
			if err == nil {
				return &delivery.Error{
					Op:      op,
					Code:    delivery.ECONFLICT,
					Message: "Order already completed",
					Fields:  map[string]interface{}{"order_id": i.OrderId},
				}
			}
			if delivery.ErrorCode(err) != delivery.ENOTFOUND {
				return delivery.OpError(op, err)
			}

			_, err = uc.CourierRepo.FindById(ctx, uint64(i.CourierId))
			if err != nil {
				if delivery.ErrorCode(err) == delivery.ENOTFOUND {
					return &delivery.Error{
						Op:      op,
						Code:    delivery.EINVALID,
						Message: "Courier not found",
						Fields:  map[string]interface{}{"courier_id": i.CourierId},
					}
				}
				return delivery.OpError(op, err)
			}

			completion, err := uc.CompletionRepo.Create(ctx, entity.CompletedOrder{
				CourierID:    uint64(i.CourierId),
				OrderID:      orderEntity.ID,
				CompleteTime: i.CompleteTime,
			})
			if err != nil {
				return delivery.OpError(op, err)
			}

			completedIDs = append(completedIDs, completion.OrderID)
		}

		var err error
		res, err = uc.OrderRepo.FindCompletedByIds(ctx, completedIDs)
		if err != nil {
			return delivery.OpError(op, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
