package entity

import "time"

type Order struct {
	ID            uint64
	Weight        float64
	Regions       int32
	DeliveryHours []string
	Cost          uint32
	CompletedTime *time.Time
}

// CompletedOrder records a delivery. An order is completed at most once:
// the store enforces uniqueness of OrderID.
type CompletedOrder struct {
	ID           uint64
	CourierID    uint64
	OrderID      uint64
	CompleteTime time.Time
}
