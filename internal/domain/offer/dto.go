package offer

import (
	"time"

	"github.com/workaxis/hrms-backend-go/internal/domain/salary"
	"github.com/workaxis/hrms-backend-go/internal/pkg/validator"
)

type CreateOfferLetterRequest struct {
	// EmployeeID links the offer to an existing draft employee.
	EmployeeID       *string `json:"employee_id"`
	TemplateID       *string `json:"template_id"`
	CandidateName    string  `json:"candidate_name"`
	CandidateEmail   string  `json:"candidate_email"`
	CandidatePhone   *string `json:"candidate_phone"`
	CandidateAddress *string `json:"candidate_address"`
	DepartmentID     string  `json:"department_id"`
	DesignationID    string  `json:"designation_id"`
	JoiningDate      string  `json:"joining_date"`
	Location         *string `json:"location"`
	salary.Components
}

func (r *CreateOfferLetterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CandidateName) {
		errs.Add("candidate_name", "candidate_name is required")
	} else if len(r.CandidateName) > 200 {
		errs.Add("candidate_name", "candidate_name must not exceed 200 characters")
	}
	if validator.IsEmpty(r.CandidateEmail) {
		errs.Add("candidate_email", "candidate_email is required")
	} else if !validator.IsValidEmail(r.CandidateEmail) {
		errs.Add("candidate_email", "candidate_email is invalid")
	}
	if r.CandidatePhone != nil && *r.CandidatePhone != "" && !validator.IsValidPhoneNumber(*r.CandidatePhone) {
		errs.Add("candidate_phone", "candidate_phone is invalid")
	}
	if validator.IsEmpty(r.DepartmentID) {
		errs.Add("department_id", "department_id is required")
	}
	if validator.IsEmpty(r.DesignationID) {
		errs.Add("designation_id", "designation_id is required")
	}
	if validator.IsEmpty(r.JoiningDate) {
		errs.Add("joining_date", "joining_date is required")
	} else if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
		errs.Add("joining_date", "joining_date must be in YYYY-MM-DD format")
	}
	if r.EmployeeID != nil && !validator.IsValidUUID(*r.EmployeeID) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}
	if r.TemplateID != nil && !validator.IsValidUUID(*r.TemplateID) {
		errs.Add("template_id", "template_id must be a valid UUID")
	}
	errs = append(errs, salary.ValidateComponents(r.Components)...)

	return errs.Err()
}

// BulkGenerateRequest creates one offer per candidate. TemplateID applies to
// every candidate that does not name its own template.
type BulkGenerateRequest struct {
	TemplateID *string                    `json:"template_id"`
	Candidates []CreateOfferLetterRequest `json:"candidates"`
}

func (r *BulkGenerateRequest) Validate() error {
	var errs validator.ValidationErrors
	if len(r.Candidates) == 0 {
		errs.Add("candidates", "at least one candidate is required")
	}
	if r.TemplateID != nil && !validator.IsValidUUID(*r.TemplateID) {
		errs.Add("template_id", "template_id must be a valid UUID")
	}
	return errs.Err()
}

type BulkGenerateResponse struct {
	Requested    int                   `json:"requested"`
	Generated    int                   `json:"generated"`
	OfferLetters []OfferLetterResponse `json:"offer_letters"`
	Errors       []string              `json:"errors,omitempty"`
	Message      string                `json:"message"`
}

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if validator.IsEmpty(r.Status) {
		errs.Add("status", "status is required")
	} else if !Status(r.Status).IsValid() {
		errs.Add("status", "status must be one of draft, sent, accepted, rejected, withdrawn")
	}
	return errs.Err()
}

type AcceptOfferResponse struct {
	OfferLetter  OfferLetterResponse `json:"offer_letter"`
	EmployeeID   string              `json:"employee_id"`
	EmployeeCode string              `json:"employee_code"`
	SalaryID     string              `json:"salary_id"`
	Message      string              `json:"message"`
}

type OfferLetterFilter struct {
	Status     *Status
	EmployeeID *string
}

type OfferLetterResponse struct {
	ID               string  `json:"id"`
	CandidateName    string  `json:"candidate_name"`
	CandidateEmail   string  `json:"candidate_email"`
	CandidatePhone   *string `json:"candidate_phone,omitempty"`
	CandidateAddress *string `json:"candidate_address,omitempty"`
	DepartmentID     string  `json:"department_id"`
	DepartmentName   *string `json:"department_name,omitempty"`
	DesignationID    string  `json:"designation_id"`
	DesignationTitle *string `json:"designation_title,omitempty"`
	JoiningDate      string  `json:"joining_date"`
	Location         *string `json:"location,omitempty"`
	salary.AmountsResponse
	Status                 Status     `json:"status"`
	EmployeeID             *string    `json:"employee_id,omitempty"`
	EmployeeCode           *string    `json:"employee_code,omitempty"`
	TemplateID             *string    `json:"template_id,omitempty"`
	GeneratedContent       string     `json:"generated_content"`
	UnresolvedPlaceholders []string   `json:"unresolved_placeholders"`
	FilePath               *string    `json:"file_path,omitempty"`
	GeneratedOn            time.Time  `json:"generated_on"`
	GeneratedBy            string     `json:"generated_by"`
	SentOn                 *time.Time `json:"sent_on,omitempty"`
	AcceptedOn             *time.Time `json:"accepted_on,omitempty"`
}

func NewOfferLetterResponse(o OfferLetter) OfferLetterResponse {
	unresolved := o.UnresolvedPlaceholders
	if unresolved == nil {
		unresolved = []string{}
	}
	return OfferLetterResponse{
		ID:                     o.ID,
		CandidateName:          o.CandidateName,
		CandidateEmail:         o.CandidateEmail,
		CandidatePhone:         o.CandidatePhone,
		CandidateAddress:       o.CandidateAddress,
		DepartmentID:           o.DepartmentID,
		DepartmentName:         o.DepartmentName,
		DesignationID:          o.DesignationID,
		DesignationTitle:       o.DesignationTitle,
		JoiningDate:            o.JoiningDate.Format(validator.DateLayout),
		Location:               o.Location,
		AmountsResponse:        salary.NewAmountsResponse(o.Components, o.Totals),
		Status:                 o.Status,
		EmployeeID:             o.EmployeeID,
		EmployeeCode:           o.EmployeeCode,
		TemplateID:             o.TemplateID,
		GeneratedContent:       o.GeneratedContent,
		UnresolvedPlaceholders: unresolved,
		FilePath:               o.FilePath,
		GeneratedOn:            o.GeneratedOn,
		GeneratedBy:            o.GeneratedBy,
		SentOn:                 o.SentOn,
		AcceptedOn:             o.AcceptedOn,
	}
}
