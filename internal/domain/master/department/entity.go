package department

import "time"

type Department struct {
	ID          string
	Name        string
	Code        *string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	CreatedBy   string
	UpdatedAt   time.Time
	UpdatedBy   *string
}
