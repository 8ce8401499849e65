package template

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	content := "<p>Dear {{CANDIDATE_NAME}},</p><p>Welcome to {{COMPANY_NAME}}. CTC {{CTC}} / {{ CTC }}. {{UNKNOWN}} {{CANDIDATE_NAME}} {{UNKNOWN}} {{ALSO_MISSING}}</p>"

	result := Render(content, map[string]string{
		"CANDIDATE_NAME": "Asha Rao",
		"COMPANY_NAME":   "WorkAxis HRMS",
		"CTC":            "1,200,000.00",
	})

	assert.Equal(t, "<p>Dear Asha Rao,</p><p>Welcome to WorkAxis HRMS. CTC 1,200,000.00 / {{ CTC }}. {{UNKNOWN}} Asha Rao {{UNKNOWN}} {{ALSO_MISSING}}</p>", result.Content)
	assert.Equal(t, []string{"CTC", "UNKNOWN", "ALSO_MISSING"}, result.Unresolved)
}

func TestRender_NoEscaping(t *testing.T) {
	result := Render("{{CANDIDATE_NAME}}", map[string]string{"CANDIDATE_NAME": "<b>A & B</b>"})

	assert.Equal(t, "<b>A & B</b>", result.Content)
	assert.Empty(t, result.Unresolved)
}

func TestRender_EmptyValue(t *testing.T) {
	result := Render("Phone: {{CANDIDATE_PHONE}}.", map[string]string{"CANDIDATE_PHONE": ""})

	assert.Equal(t, "Phone: .", result.Content)
	assert.Empty(t, result.Unresolved)
}

func TestFormatAmount(t *testing.T) {
	tests := map[string]string{
		"0":           "0.00",
		"5":           "5.00",
		"999.999":     "1,000.00",
		"1234.5":      "1,234.50",
		"600000":      "600,000.00",
		"1234567.891": "1,234,567.89",
		"-4500.5":     "-4,500.50",
		"4166.666666": "4,166.67",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatAmount(decimal.RequireFromString(in)), in)
	}
}

func TestMonthlyKey(t *testing.T) {
	assert.Equal(t, "BASIC_SALARY_MONTHLY", MonthlyKey(KeyBasicSalary))
	assert.Equal(t, "CONVEYANCE_MONTHLY", MonthlyKey(KeyConveyanceAllowance))
	assert.Equal(t, "MEDICAL_MONTHLY", MonthlyKey(KeyMedicalAllowance))
	assert.Equal(t, "SPECIAL_MONTHLY", MonthlyKey(KeySpecialAllowance))
	assert.Equal(t, "OTHER_ALLOWANCES_MONTHLY", MonthlyKey(KeyOtherAllowances))
	assert.Equal(t, "CTC_MONTHLY", MonthlyKey(KeyCTC))
}

func TestCatalog(t *testing.T) {
	keys := make(map[string]bool)
	for _, p := range Catalog() {
		assert.False(t, keys[p.Key], "duplicate key %s", p.Key)
		keys[p.Key] = true
	}

	assert.Len(t, keys, 9+2*len(AmountKeys)+3)
	assert.True(t, keys["NET_SALARY_MONTHLY"])
	assert.True(t, keys[KeyTodayTime])
}

func TestCloneName(t *testing.T) {
	assert.Equal(t, "Standard Offer (Copy)", CloneName("Standard Offer"))
}
