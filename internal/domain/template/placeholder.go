package template

// Placeholder keys understood by offer letter templates.
const (
	KeyCandidateName    = "CANDIDATE_NAME"
	KeyCandidateEmail   = "CANDIDATE_EMAIL"
	KeyCandidatePhone   = "CANDIDATE_PHONE"
	KeyCandidateAddress = "CANDIDATE_ADDRESS"

	KeyDesignation = "DESIGNATION"
	KeyDepartment  = "DEPARTMENT"
	KeyJoiningDate = "JOINING_DATE"
	KeyLocation    = "LOCATION"
	KeyCompanyName = "COMPANY_NAME"

	KeyBasicSalary         = "BASIC_SALARY"
	KeyHRA                 = "HRA"
	KeyConveyanceAllowance = "CONVEYANCE_ALLOWANCE"
	KeyMedicalAllowance    = "MEDICAL_ALLOWANCE"
	KeySpecialAllowance    = "SPECIAL_ALLOWANCE"
	KeyOtherAllowances     = "OTHER_ALLOWANCES"
	KeyGrossSalary         = "GROSS_SALARY"
	KeyPF                  = "PF"
	KeyESI                 = "ESI"
	KeyProfessionalTax     = "PROFESSIONAL_TAX"
	KeyTDS                 = "TDS"
	KeyOtherDeductions     = "OTHER_DEDUCTIONS"
	KeyTotalDeductions     = "TOTAL_DEDUCTIONS"
	KeyNetSalary           = "NET_SALARY"
	KeyCTC                 = "CTC"

	KeyTodayDate   = "TODAY_DATE"
	KeyTodayTime   = "TODAY_TIME"
	KeyCurrentYear = "CURRENT_YEAR"
)

// MonthlyKey returns the key of the monthly variant of an annual amount.
// The allowance keys drop their _ALLOWANCE suffix (CONVEYANCE_MONTHLY).
func MonthlyKey(annualKey string) string {
	switch annualKey {
	case KeyConveyanceAllowance:
		return "CONVEYANCE_MONTHLY"
	case KeyMedicalAllowance:
		return "MEDICAL_MONTHLY"
	case KeySpecialAllowance:
		return "SPECIAL_MONTHLY"
	}
	return annualKey + "_MONTHLY"
}

const (
	DateFormat = "02 January 2006"
	TimeFormat = "03:04 PM"
)

type PlaceholderCategory string

const (
	CategoryCandidate PlaceholderCategory = "candidate"
	CategoryJob       PlaceholderCategory = "job"
	CategorySalary    PlaceholderCategory = "salary"
	CategoryCustom    PlaceholderCategory = "custom"
)

type Placeholder struct {
	Key         string              `json:"key"`
	DisplayName string              `json:"display_name"`
	Category    PlaceholderCategory `json:"category"`
	Description string              `json:"description"`
	SampleValue string              `json:"sample_value"`
}

// AmountKeys are the annual salary keys in display order.
var AmountKeys = []string{
	KeyBasicSalary, KeyHRA, KeyConveyanceAllowance, KeyMedicalAllowance,
	KeySpecialAllowance, KeyOtherAllowances, KeyGrossSalary,
	KeyPF, KeyESI, KeyProfessionalTax, KeyTDS, KeyOtherDeductions,
	KeyTotalDeductions, KeyNetSalary, KeyCTC,
}

var amountNames = map[string]string{
	KeyBasicSalary:         "Basic Salary",
	KeyHRA:                 "HRA",
	KeyConveyanceAllowance: "Conveyance Allowance",
	KeyMedicalAllowance:    "Medical Allowance",
	KeySpecialAllowance:    "Special Allowance",
	KeyOtherAllowances:     "Other Allowances",
	KeyGrossSalary:         "Gross Salary",
	KeyPF:                  "Provident Fund",
	KeyESI:                 "ESI",
	KeyProfessionalTax:     "Professional Tax",
	KeyTDS:                 "TDS",
	KeyOtherDeductions:     "Other Deductions",
	KeyTotalDeductions:     "Total Deductions",
	KeyNetSalary:           "Net Salary",
	KeyCTC:                 "Cost to Company",
}

// Catalog lists every supported placeholder. Dynamic date and time samples are rendered by the caller.
func Catalog() []Placeholder {
	list := []Placeholder{
		{KeyCandidateName, "Candidate Name", CategoryCandidate, "Full name of the candidate", "Asha Rao"},
		{KeyCandidateEmail, "Candidate Email", CategoryCandidate, "Email address of the candidate", "asha.rao@example.com"},
		{KeyCandidatePhone, "Candidate Phone", CategoryCandidate, "Phone number of the candidate", "+91 98765 43210"},
		{KeyCandidateAddress, "Candidate Address", CategoryCandidate, "Postal address of the candidate", "12 MG Road, Bengaluru"},
		{KeyDesignation, "Designation", CategoryJob, "Offered designation", "Software Engineer"},
		{KeyDepartment, "Department", CategoryJob, "Offered department", "Engineering"},
		{KeyJoiningDate, "Joining Date", CategoryJob, "Date of joining", "01 July 2024"},
		{KeyLocation, "Location", CategoryJob, "Work location", "Bengaluru"},
		{KeyCompanyName, "Company Name", CategoryJob, "Name of the company", "WorkAxis HRMS"},
	}
	for _, key := range AmountKeys {
		name := amountNames[key]
		list = append(list,
			Placeholder{key, name, CategorySalary, "Annual " + name, "600,000.00"},
			Placeholder{MonthlyKey(key), name + " (Monthly)", CategorySalary, "Monthly " + name, "50,000.00"},
		)
	}
	return append(list,
		Placeholder{KeyTodayDate, "Today's Date", CategoryCustom, "Current date", ""},
		Placeholder{KeyTodayTime, "Today's Time", CategoryCustom, "Current time", ""},
		Placeholder{KeyCurrentYear, "Current Year", CategoryCustom, "Current year", ""},
	)
}
