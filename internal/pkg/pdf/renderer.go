// Package pdf renders payslips and offer letters with gofpdf.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/workaxis/hrms-backend-go/internal/domain/offer"
	"github.com/workaxis/hrms-backend-go/internal/domain/payroll"
	"github.com/workaxis/hrms-backend-go/internal/domain/salary"
	"github.com/workaxis/hrms-backend-go/internal/domain/template"
)

const (
	fontFamily   = "Helvetica"
	pageWidth    = 210.0
	marginSide   = 15.0
	contentWidth = pageWidth - 2*marginSide
	lineHeight   = 7.0

	payslipFooter = "This is a computer-generated payslip and does not require a signature."
)

// Renderer implements payroll.PayslipRenderer and offer.DocumentRenderer.
type Renderer struct {
	companyName string
	compress    bool
}

func NewRenderer(companyName string) *Renderer {
	if companyName == "" {
		companyName = offer.DefaultCompanyName
	}
	return &Renderer{companyName: companyName, compress: true}
}

type document struct {
	*gofpdf.Fpdf
	tr func(string) string
}

func (r *Renderer) newDocument() document {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginSide, 15, marginSide)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetCompression(r.compress)
	pdf.AddPage()
	return document{Fpdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (d document) text(w, h float64, s, border string, ln int, align string, fill bool) {
	d.CellFormat(w, h, d.tr(s), border, ln, align, fill, 0, "")
}

func (d document) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPayslip implements payroll.PayslipRenderer.
func (r *Renderer) RenderPayslip(p payroll.Payroll) ([]byte, error) {
	doc := r.newDocument()

	doc.SetFont(fontFamily, "B", 16)
	doc.text(0, 9, r.companyName, "", 1, "C", false)
	doc.SetFont(fontFamily, "B", 13)
	doc.text(0, 8, "Payslip", "", 1, "C", false)
	doc.SetFont(fontFamily, "", 11)
	doc.text(0, 7, "For the month of "+p.PeriodLabel(), "", 1, "C", false)
	doc.Ln(5)

	details := [][2]string{
		{"Employee Code", deref(p.EmployeeCode)},
		{"Employee Name", deref(p.EmployeeName)},
		{"Department", deref(p.DepartmentName)},
		{"Designation", deref(p.DesignationName)},
		{"Joining Date", p.JoiningDate.Format(template.DateFormat)},
		{"Working Days", fmt.Sprintf("%d", p.WorkingDays)},
		{"Paid Days", fmt.Sprintf("%d of %d", p.PaidDays, p.TotalCalendarDays)},
	}
	labelWidth := contentWidth * 0.35
	for _, row := range details {
		doc.SetFont(fontFamily, "B", 10)
		doc.text(labelWidth, lineHeight, row[0], "1", 0, "L", false)
		doc.SetFont(fontFamily, "", 10)
		doc.text(contentWidth-labelWidth, lineHeight, row[1], "1", 1, "L", false)
	}

	if p.IsProRated {
		doc.Ln(3)
		doc.SetFont(fontFamily, "I", 10)
		doc.text(0, lineHeight, fmt.Sprintf("Pro-Rated Salary: paid for %d of %d days (per day %s)",
			p.PaidDays, p.TotalCalendarDays, template.FormatAmount(p.PerDaySalary)), "", 1, "L", false)
	}
	doc.Ln(4)

	r.writeAmountTable(doc, p.Components, p.Totals())

	doc.Ln(3)
	doc.SetFont(fontFamily, "B", 12)
	doc.SetFillColor(230, 236, 245)
	doc.text(contentWidth*0.7, 9, "Net Salary", "1", 0, "L", true)
	doc.text(contentWidth*0.3, 9, template.FormatAmount(p.NetSalary), "1", 1, "R", true)

	doc.Ln(10)
	doc.SetFont(fontFamily, "I", 9)
	doc.text(0, 6, payslipFooter, "", 1, "C", false)

	return doc.bytes()
}

// writeAmountTable prints earnings and deductions side by side with their totals.
func (r *Renderer) writeAmountTable(doc document, c salary.Components, t salary.Totals) {
	nameWidth := contentWidth * 0.3
	amountWidth := contentWidth * 0.2

	doc.SetFont(fontFamily, "B", 10)
	doc.SetFillColor(240, 240, 240)
	doc.text(nameWidth, lineHeight, "Earnings", "1", 0, "L", true)
	doc.text(amountWidth, lineHeight, "Amount", "1", 0, "R", true)
	doc.text(nameWidth, lineHeight, "Deductions", "1", 0, "L", true)
	doc.text(amountWidth, lineHeight, "Amount", "1", 1, "R", true)

	earnings, deductions := c.Earnings(), c.Deductions()
	rows := max(len(earnings), len(deductions))

	doc.SetFont(fontFamily, "", 10)
	for i := 0; i < rows; i++ {
		writeAmountCells(doc, earnings, i, nameWidth, amountWidth, 0)
		writeAmountCells(doc, deductions, i, nameWidth, amountWidth, 1)
	}

	doc.SetFont(fontFamily, "B", 10)
	doc.text(nameWidth, lineHeight, "Gross Salary", "1", 0, "L", false)
	doc.text(amountWidth, lineHeight, template.FormatAmount(t.GrossSalary), "1", 0, "R", false)
	doc.text(nameWidth, lineHeight, "Total Deductions", "1", 0, "L", false)
	doc.text(amountWidth, lineHeight, template.FormatAmount(t.TotalDeductions), "1", 1, "R", false)
}

func writeAmountCells(doc document, items []salary.NamedAmount, i int, nameWidth, amountWidth float64, ln int) {
	if i >= len(items) {
		doc.text(nameWidth, lineHeight, "", "1", 0, "L", false)
		doc.text(amountWidth, lineHeight, "", "1", ln, "R", false)
		return
	}
	doc.text(nameWidth, lineHeight, items[i].Name, "1", 0, "L", false)
	doc.text(amountWidth, lineHeight, template.FormatAmount(items[i].Amount), "1", ln, "R", false)
}

// RenderOfferLetter implements offer.DocumentRenderer. Letters without
// generated content get a standard layout built from the offer's fields.
func (r *Renderer) RenderOfferLetter(o offer.OfferLetter) ([]byte, error) {
	doc := r.newDocument()

	doc.SetFont(fontFamily, "B", 16)
	doc.text(0, 9, r.companyName, "", 1, "C", false)
	doc.Ln(6)

	if content := strings.TrimSpace(htmlToText(o.GeneratedContent)); content != "" {
		doc.SetFont(fontFamily, "", 11)
		doc.MultiCell(0, 6, doc.tr(content), "", "L", false)
		return doc.bytes()
	}

	r.writeStandardOffer(doc, o)
	return doc.bytes()
}

func (r *Renderer) writeStandardOffer(doc document, o offer.OfferLetter) {
	doc.SetFont(fontFamily, "B", 13)
	doc.text(0, 8, "Offer of Employment", "", 1, "L", false)
	doc.SetFont(fontFamily, "", 10)
	doc.text(0, 6, o.GeneratedOn.Format(template.DateFormat), "", 1, "L", false)
	doc.Ln(4)

	doc.SetFont(fontFamily, "", 11)
	doc.text(0, 6, fmt.Sprintf("Dear %s,", o.CandidateName), "", 1, "L", false)
	doc.Ln(2)

	body := fmt.Sprintf("We are pleased to offer you the position of %s in the %s department at %s. "+
		"Your expected date of joining is %s.",
		deref(o.DesignationTitle), deref(o.DepartmentName), r.companyName,
		o.JoiningDate.Format(template.DateFormat))
	if o.Location != nil && *o.Location != "" {
		body += fmt.Sprintf(" You will be based at %s.", *o.Location)
	}
	doc.MultiCell(0, 6, doc.tr(body), "", "L", false)
	doc.Ln(4)

	doc.SetFont(fontFamily, "B", 11)
	doc.text(0, 7, "Annual Compensation", "", 1, "L", false)
	r.writeAmountTable(doc, o.Components, o.Totals)

	doc.SetFont(fontFamily, "B", 10)
	for _, row := range []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Net Salary", o.NetSalary},
		{"Cost to Company", o.CTC},
	} {
		doc.text(contentWidth*0.7, lineHeight, row.label, "1", 0, "L", false)
		doc.text(contentWidth*0.3, lineHeight, template.FormatAmount(row.amount), "1", 1, "R", false)
	}

	doc.Ln(8)
	doc.SetFont(fontFamily, "", 11)
	doc.text(0, 6, "Sincerely,", "", 1, "L", false)
	doc.text(0, 6, r.companyName, "", 1, "L", false)
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
