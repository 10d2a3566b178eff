package repositories

import (
	"context"
	"errors"

	trmgorm "github.com/avito-tech/go-transaction-manager/gorm"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"delivery"
	"delivery/internal/entity"
)

// @migration
type Courier struct {
	ID           uint64         `gorm:"primaryKey"`
	CourierType  string         `gorm:"not null"`
	Regions      pq.Int32Array  `gorm:"type:integer[];not null"`
	WorkingHours pq.StringArray `gorm:"type:text[];not null"`
}

type CourierRepo struct {
	gorm   *gorm.DB
	getter *trmgorm.CtxGetter
}

func NewCourierRepo(grm *gorm.DB, getter *trmgorm.CtxGetter) *CourierRepo {
	return &CourierRepo{
		gorm:   grm,
		getter: getter,
	}
}

// db returns the transaction bound to ctx, if the transaction manager opened
// one, and the plain handle otherwise.
func (s *CourierRepo) db(ctx context.Context) *gorm.DB {
	return s.getter.DefaultTrOrDB(ctx, s.gorm).WithContext(ctx)
}

func (s *CourierRepo) BatchCreate(ctx context.Context, newCouriers []entity.Courier) (*[]entity.Courier, error) {

	couriers := make([]Courier, 0, len(newCouriers))
	for _, c := range newCouriers {
		couriers = append(couriers, Courier{
			CourierType:  string(c.CourierType),
			Regions:      pq.Int32Array(c.Regions),
			WorkingHours: pq.StringArray(c.WorkingHours),
		})
	}

	if err := s.db(ctx).CreateInBatches(&couriers, 20).Error; err != nil {
		return nil, err
	}

	res := make([]entity.Courier, 0, len(couriers))
	for _, c := range couriers {
		res = append(res, courierToEntity(c))
	}

	return &res, nil
}

func (s *CourierRepo) FindById(ctx context.Context, id uint64) (*entity.Courier, error) {

	var courier Courier

	err := s.db(ctx).First(&courier, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &delivery.Error{
				Code:    delivery.ENOTFOUND,
				Message: "Courier not found",
				Err:     err,
			}
		}

		return nil, err
	}

	res := courierToEntity(courier)
	return &res, nil
}

func (s *CourierRepo) PaginatedFetchAll(ctx context.Context, offset, limit int32) (*[]entity.Courier, error) {

	couriers := []Courier{}

	err := s.db(ctx).
		Model(&Courier{}).
		Order("id ASC").
		Limit(int(limit)).
		Offset(int(offset)).
		Find(&couriers).Error
	if err != nil {
		return nil, err
	}

	res := make([]entity.Courier, 0, len(couriers))
	for _, c := range couriers {
		res = append(res, courierToEntity(c))
	}

	return &res, nil
}

func courierToEntity(c Courier) entity.Courier {
	return entity.Courier{
		ID:           c.ID,
		CourierType:  entity.CourierType(c.CourierType),
		Regions:      c.Regions,
		WorkingHours: c.WorkingHours,
	}
}
