package models

// Event is the canonical wire form: dates are Unix epoch seconds,
// price is an integer amount of minor currency units (cents).
// The validate tags are applied to every record decoded from the API.
type Event struct {
	ID        int    `json:"id" validate:"required,gt=0"`
	Title     string `json:"title" validate:"required,min=3,max=255"`
	Price     int64  `json:"price" validate:"gte=0"`
	Status    Status `json:"status" validate:"omitempty,oneof=started paused completed"`
	StartDate int64  `json:"startDate" validate:"required"`
	EndDate   int64  `json:"endDate" validate:"required,gtfield=StartDate"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	UpdatedAt int64  `json:"updatedAt,omitempty"`
}
