package designation

import "github.com/workaxis/hrms-backend-go/internal/pkg/validator"

type CreateDesignationRequest struct {
	Title       string  `json:"title"`
	Code        *string `json:"code"`
	Description *string `json:"description"`
	Level       int     `json:"level"`
	IsActive    *bool   `json:"is_active"`
}

func (r *CreateDesignationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs.Add("title", "title is required")
	} else if len(r.Title) > 100 {
		errs.Add("title", "title must not exceed 100 characters")
	}
	if r.Code != nil && len(*r.Code) > 20 {
		errs.Add("code", "code must not exceed 20 characters")
	}
	if r.Level < 0 {
		errs.Add("level", "level must not be negative")
	}

	return errs.Err()
}

type UpdateDesignationRequest struct {
	ID string `json:"-"`
	CreateDesignationRequest
}

func (r *UpdateDesignationRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if err := r.CreateDesignationRequest.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}
	return errs.Err()
}

type DesignationResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Code        *string `json:"code,omitempty"`
	Description *string `json:"description,omitempty"`
	Level       int     `json:"level"`
	IsActive    bool    `json:"is_active"`
}

func NewDesignationResponse(d Designation) DesignationResponse {
	return DesignationResponse{
		ID:          d.ID,
		Title:       d.Title,
		Code:        d.Code,
		Description: d.Description,
		Level:       d.Level,
		IsActive:    d.IsActive,
	}
}
