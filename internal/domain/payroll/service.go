package payroll

import "context"

type PayrollService interface {
	GeneratePayroll(ctx context.Context, req GeneratePayrollRequest, createdBy string) (GeneratePayrollResponse, error)
	GetPayroll(ctx context.Context, id string) (PayrollResponse, error)
	ListPayrolls(ctx context.Context, filter PayrollFilter) ([]PayrollResponse, error)
	DeletePayroll(ctx context.Context, id string) error
	Payslip(ctx context.Context, id string) (PayslipDocument, error)
}

// PayslipRenderer turns a payroll record into a printable document.
type PayslipRenderer interface {
	RenderPayslip(p Payroll) ([]byte, error)
}

type PayslipDocument struct {
	FileName string
	Content  []byte
}
