package offer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workaxis/hrms-backend-go/internal/domain/salary"
	"github.com/workaxis/hrms-backend-go/internal/domain/template"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusDraft, StatusSent, true},
		{StatusDraft, StatusWithdrawn, true},
		{StatusDraft, StatusAccepted, false},
		{StatusDraft, StatusRejected, false},
		{StatusSent, StatusAccepted, true},
		{StatusSent, StatusRejected, true},
		{StatusSent, StatusWithdrawn, true},
		{StatusSent, StatusDraft, false},
		{StatusAccepted, StatusWithdrawn, false},
		{StatusRejected, StatusSent, false},
		{StatusWithdrawn, StatusDraft, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}

	assert.True(t, StatusAccepted.IsTerminal())
	assert.False(t, StatusSent.IsTerminal())
	assert.True(t, StatusWithdrawn.IsDeletable())
	assert.False(t, StatusSent.IsDeletable())
}

func TestBuildPlaceholders(t *testing.T) {
	phone := "9876543210"
	o := OfferLetter{
		CandidateName:  "Asha Rao",
		CandidateEmail: "asha@example.com",
		CandidatePhone: &phone,
		JoiningDate:    time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
		Components: salary.Components{
			BasicSalary: decimal.NewFromInt(600000),
			HRA:         decimal.NewFromInt(240000),
			PF:          decimal.NewFromInt(72000),
			TDS:         decimal.NewFromInt(50000),
		},
	}
	o.Recalculate()

	values := BuildPlaceholders(o, PlaceholderContext{
		DepartmentName:   "Engineering",
		DesignationTitle: "Software Engineer",
		Now:              time.Date(2024, time.June, 5, 14, 30, 0, 0, time.UTC),
	})

	assert.Equal(t, "Asha Rao", values[template.KeyCandidateName])
	assert.Equal(t, "9876543210", values[template.KeyCandidatePhone])
	assert.Equal(t, "", values[template.KeyCandidateAddress])
	assert.Equal(t, "", values[template.KeyLocation])
	assert.Equal(t, "Engineering", values[template.KeyDepartment])
	assert.Equal(t, "Software Engineer", values[template.KeyDesignation])
	assert.Equal(t, DefaultCompanyName, values[template.KeyCompanyName])
	assert.Equal(t, "01 July 2024", values[template.KeyJoiningDate])
	assert.Equal(t, "05 June 2024", values[template.KeyTodayDate])
	assert.Equal(t, "02:30 PM", values[template.KeyTodayTime])
	assert.Equal(t, "2024", values[template.KeyCurrentYear])

	assert.Equal(t, "600,000.00", values[template.KeyBasicSalary])
	assert.Equal(t, "50,000.00", values["BASIC_SALARY_MONTHLY"])
	assert.Equal(t, "840,000.00", values[template.KeyGrossSalary])
	assert.Equal(t, "122,000.00", values[template.KeyTotalDeductions])
	assert.Equal(t, "718,000.00", values[template.KeyNetSalary])
	assert.Equal(t, "59,833.33", values["NET_SALARY_MONTHLY"])
	assert.Equal(t, "912,000.00", values[template.KeyCTC])
	assert.Equal(t, "0.00", values["CONVEYANCE_MONTHLY"])
}

func TestBuildPlaceholders_RendersFullTemplate(t *testing.T) {
	o := OfferLetter{CandidateName: "Ravi", JoiningDate: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)}
	o.Recalculate()

	result := template.Render("{{CANDIDATE_NAME}} joins {{COMPANY_NAME}} on {{JOINING_DATE}} {{SIGNATORY}}", BuildPlaceholders(o, PlaceholderContext{CompanyName: "Acme", Now: time.Now()}))

	assert.Equal(t, "Ravi joins Acme on 15 January 2024 {{SIGNATORY}}", result.Content)
	assert.Equal(t, []string{"SIGNATORY"}, result.Unresolved)
}

func TestCreateOfferLetterRequest_Validate(t *testing.T) {
	req := CreateOfferLetterRequest{
		CandidateName:  "Asha Rao",
		CandidateEmail: "asha@example.com",
		DepartmentID:   "8a0f7c1e-1b7a-4c1d-9a57-2f4d1c1f0b11",
		DesignationID:  "5d1c7a0e-2b7a-4c1d-9a57-2f4d1c1f0b22",
		JoiningDate:    "2024-07-01",
	}
	require.NoError(t, req.Validate())

	req.CandidateEmail = "not-an-email"
	req.JoiningDate = "01/07/2024"
	req.PF = decimal.NewFromInt(-1)
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "candidate_email")
	assert.Contains(t, err.Error(), "joining_date")
	assert.Contains(t, err.Error(), "pf")
}

func TestDocumentFileName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Asha Rao", "offer_letter_asha_rao.pdf"},
		{"  Asha   Rao  ", "offer_letter_asha_rao.pdf"},
		{"../../etc/passwd", "offer_letter_etc_passwd.pdf"},
		{"O'Brien-Smith 2", "offer_letter_o_brien_smith_2.pdf"},
		{"Zoë", "offer_letter_zo.pdf"},
		{"///", "offer_letter_candidate.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DocumentFileName(tt.name))
		})
	}
}
