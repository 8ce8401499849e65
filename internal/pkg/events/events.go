package events

import "time"

const (
	OfferAcceptedTopic    = "hrms.offer.accepted"
	PayrollGeneratedTopic = "hrms.payroll.generated"
)

// Event is anything that can be published to the broker.
type Event interface {
	Topic() string
	Key() string
	Type() string
}

type OfferAcceptedEvent struct {
	OfferLetterID string    `json:"offer_letter_id"`
	EmployeeID    string    `json:"employee_id"`
	EmployeeCode  string    `json:"employee_code"`
	SalaryID      string    `json:"salary_id"`
	AcceptedBy    string    `json:"accepted_by"`
	AcceptedOn    time.Time `json:"accepted_on"`
}

func (OfferAcceptedEvent) Topic() string { return OfferAcceptedTopic }
func (e OfferAcceptedEvent) Key() string { return e.EmployeeID }
func (OfferAcceptedEvent) Type() string  { return "offer.accepted" }

type PayrollGeneratedEvent struct {
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	PayrollIDs  []string  `json:"payroll_ids"`
	Generated   int       `json:"generated"`
	Skipped     int       `json:"skipped"`
	GeneratedBy string    `json:"generated_by"`
	GeneratedAt time.Time `json:"generated_at"`
}

func (PayrollGeneratedEvent) Topic() string { return PayrollGeneratedTopic }
func (e PayrollGeneratedEvent) Key() string {
	return time.Date(e.Year, time.Month(e.Month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}
func (PayrollGeneratedEvent) Type() string { return "payroll.generated" }
