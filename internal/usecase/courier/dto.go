package courier

// Regions and working hours keep the order and duplicates the client
// supplied; only the interval format is checked.
type CourierToCreateDTO struct {
	CourierType  string   `validate:"required,courier_type"`
	Regions      []int32  `validate:"required"`
	WorkingHours []string `validate:"required,each_HH_MM_HH_MM_time_interval"`
}

type CourierMetaDTO struct {
	Rating   *int32
	Earnings *int32
}
