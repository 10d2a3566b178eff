package entity

import "delivery"

type Courier struct {
	ID           uint64
	CourierType  CourierType
	Regions      []int32
	WorkingHours []string
}

// CourierType is a closed set; the payment and rating coefficients below are
// the only place its members carry numeric meaning.
type CourierType string

const (
	FOOT CourierType = "FOOT"
	BIKE CourierType = "BIKE"
	AUTO CourierType = "AUTO"
)

func ValidCourierTypes() []string {
	return []string{
		string(FOOT),
		string(BIKE),
		string(AUTO),
	}
}

func IsValidCourierType(t string) bool {
	validTypes := ValidCourierTypes()
	for _, validType := range validTypes {
		if validType == t {
			return true
		}
	}
	return false
}

// PaymentCoefficient is the per-order cost multiplier used for earnings.
func (c *Courier) PaymentCoefficient() (uint, error) {
	switch c.CourierType {
	case FOOT:
		return 2, nil
	case BIKE:
		return 3, nil
	case AUTO:
		return 4, nil
	default:
		return 0, &delivery.Error{
			Code:    delivery.EINTERNAL,
			Message: "invalid courier type",
		}
	}
}

// RatingCoefficient is the multiplier applied to completed orders per hour.
func (c *Courier) RatingCoefficient() (uint, error) {
	switch c.CourierType {
	case FOOT:
		return 3, nil
	case BIKE:
		return 2, nil
	case AUTO:
		return 1, nil
	default:
		return 0, &delivery.Error{
			Code:    delivery.EINTERNAL,
			Message: "invalid courier type",
		}
	}
}
