package template

import "time"

// Template is a versioned HTML offer letter body with {{KEY}} placeholders.
// At most one template is the default.
type Template struct {
	ID          string
	Name        string
	Description string
	Content     string
	Category    *string
	IsActive    bool
	IsDefault   bool
	Version     int
	CreatedAt   time.Time
	CreatedBy   string
	UpdatedAt   time.Time
	UpdatedBy   *string
	DeletedAt   *time.Time
}

// CloneName is the name given to a copy of a template.
func CloneName(name string) string {
	return name + " (Copy)"
}
