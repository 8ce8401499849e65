package payroll

import "github.com/workaxis/hrms-backend-go/internal/pkg/apperror"

var (
	ErrPayrollNotFound      = apperror.NotFound("Payroll not found")
	ErrPayrollAlreadyExists = apperror.Duplicate("Payroll already exists for this period")
	ErrEmployeeNotFound     = apperror.NotFound("Employee not found")
)

// Skip reasons reported by generation.
const (
	SkipReasonAlreadyGenerated = "payroll already generated for this period"
	SkipReasonNoActiveSalary   = "no active salary"
)
