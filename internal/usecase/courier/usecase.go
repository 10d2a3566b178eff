package courier

import (
	"context"
	"time"

	"gopkg.in/go-playground/validator.v9"

	"delivery"
	"delivery/internal/entity"
	"delivery/pkg/validations"
)

type CourierUseCase struct {
	trm            Transactor
	validator      *validator.Validate
	CourierRepo    CourierRepository
	CompletionRepo CompletionStats
}

func New(
	trm Transactor,
	curstrg CourierRepository,
	comprepo CompletionStats,
) *CourierUseCase {

	v := validator.New()
	v.RegisterValidation("each_HH_MM_time", validations.Each_HH_MM_time)
	v.RegisterValidation("each_HH_MM_HH_MM_time_interval", validations.Each_HH_MM_HH_MM_time_interval)
	v.RegisterValidation("courier_type", courier_type)

	return &CourierUseCase{
		trm:            trm,
		CourierRepo:    curstrg,
		CompletionRepo: comprepo,
		validator:      v,
	}
}

func (uc *CourierUseCase) CreateCouriers(ctx context.Context, couriers []CourierToCreateDTO) (*[]entity.Courier, error) {
	op := "CourierUseCase.CreateCouriers"

	toCreate := []entity.Courier{}
	for _, c := range couriers {
		if err := uc.validator.Struct(c); err != nil {
			return nil, delivery.ErrorWithCode(delivery.OpError(op, err), delivery.EINVALID)
		}

		toCreate = append(toCreate, entity.Courier{
			CourierType:  entity.CourierType(c.CourierType),
			Regions:      c.Regions,
			WorkingHours: c.WorkingHours,
		})
	}

	var savedCouriers *[]entity.Courier
	var err error

	err = uc.trm.Do(ctx, func(ctx context.Context) error {
		savedCouriers, err = uc.CourierRepo.BatchCreate(ctx, toCreate)
		return err
	})
	if err != nil {
		return nil, delivery.OpError(op, err)
	}

	return savedCouriers, nil
}

func (uc *CourierUseCase) GetById(ctx context.Context, id uint64) (*entity.Courier, error) {
	op := "CourierUseCase.GetById"

	courier, err := uc.CourierRepo.FindById(ctx, id)
	if err != nil {
		return nil, delivery.OpError(op, err)
	}

	return courier, nil
}

func (uc *CourierUseCase) PaginatedGetAll(ctx context.Context, offset, limit int32) (*[]entity.Courier, error) {
	op := "CourierUseCase.PaginatedGetAll"

	couriers, err := uc.CourierRepo.PaginatedFetchAll(ctx, offset, limit)
	if err != nil {
		return nil, delivery.OpError(op, err)
	}

	return couriers, nil
}

// MetaInInterval computes the courier's rating and earnings over the
// half-open interval [startDate, endDate). With no completions in the window
// both values stay unset. The rating is completed orders per hour times the
// rating coefficient, truncated to an integer; earnings are the summed order
// cost times the payment coefficient.
func (uc *CourierUseCase) MetaInInterval(ctx context.Context, courier *entity.Courier, startDate, endDate time.Time) (*CourierMetaDTO, error) {
	op := "CourierUseCase.MetaInInterval"

	startDate = startDate.UTC()
	endDate = endDate.UTC()

	if !endDate.After(startDate) {
		return nil, &delivery.Error{
			Op:      op,
			Code:    delivery.EINVALID,
			Message: "Invalid date range: end_date must be after start_date",
		}
	}

	res := CourierMetaDTO{}

	ordersCount, err := uc.CompletionRepo.CountInIntervalByCourierId(ctx, courier.ID, startDate, endDate)
	if err != nil {
		return nil, delivery.OpError(op, err)
	}
	if ordersCount == 0 {
		return &res, nil
	}

	ratingRatio, err := courier.RatingCoefficient()
	if err != nil {
		return nil, delivery.OpError(op, err)
	}

	hours := endDate.Sub(startDate).Hours()
	rating := int32(float64(ordersCount) / hours * float64(ratingRatio))
	res.Rating = &rating

	ordersCost, err := uc.CompletionRepo.CostInIntervalByCourierId(ctx, courier.ID, startDate, endDate)
	if err != nil {
		return nil, delivery.OpError(op, err)
	}

	paymentRatio, err := courier.PaymentCoefficient()
	if err != nil {
		return nil, delivery.OpError(op, err)
	}

	earnings := int32(ordersCost * uint64(paymentRatio))
	res.Earnings = &earnings

	return &res, nil
}
