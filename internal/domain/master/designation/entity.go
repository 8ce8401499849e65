package designation

import "time"

type Designation struct {
	ID          string
	Title       string
	Code        *string
	Description *string
	Level       int
	IsActive    bool
	CreatedAt   time.Time
	CreatedBy   string
	UpdatedAt   time.Time
	UpdatedBy   *string
}
