// Package export renders quotes and technical reports to multi-page A4 PDFs.
package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"orcaobra/internal/domain/entities"
	"orcaobra/internal/usecase/interfaces"
)

type PDFExporter struct{}

var _ interfaces.IDocumentExporter = (*PDFExporter)(nil)

func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

const (
	pageMargin = 15.0
	lineHeight = 6.0
)

// QuotePDF renders the quote document: company header, client block, summary,
// line item table and derived totals. Pagination happens automatically when a
// row would overflow the page.
func (e *PDFExporter) QuotePDF(q entities.Quote, s entities.UserSettings) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	writeCompanyHeader(pdf, tr, s)

	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(0, 10, tr(q.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, lineHeight, tr(fmt.Sprintf("%s - %s - %s", q.ClientName, q.City, q.Date)), "", 1, "L", false, 0, "")
	if q.ClientAddress != "" || q.ClientContact != "" {
		pdf.CellFormat(0, lineHeight, tr(fmt.Sprintf("%s  %s", q.ClientAddress, q.ClientContact)), "", 1, "L", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	if q.Summary != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, lineHeight, tr(q.Summary), "", "L", false)
		pdf.Ln(4)
	}

	// Line item table.
	const (
		colDesc  = 85.0
		colQty   = 18.0
		colPrice = 28.0
		colTax   = 18.0
		colTotal = 31.0
	)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(colDesc, 8, tr("Step"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(colQty, 8, tr("Qty"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(colPrice, 8, tr("Unit price"), "1", 0, "R", true, 0, "")
	pdf.CellFormat(colTax, 8, tr("Tax %"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(colTotal, 8, tr("Total"), "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, step := range q.Steps {
		label := step.Title
		if step.SuggestedUnit != "" {
			label = fmt.Sprintf("%s (%s)", step.Title, step.SuggestedUnit)
		}
		pdf.CellFormat(colDesc, 8, tr(label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colQty, 8, trimFloat(step.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colPrice, 8, tr(formatAmount(q.Currency, step.UserPrice)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colTax, 8, trimFloat(step.TaxRate), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colTotal, 8, tr(formatAmount(q.Currency, step.LineTotalWithTax())), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	writeTotalLine(pdf, tr, "Subtotal", formatAmount(q.Currency, q.Subtotal()), false)
	writeTotalLine(pdf, tr, "Tax", formatAmount(q.Currency, q.TotalTax()), false)
	writeTotalLine(pdf, tr, "Grand total", formatAmount(q.Currency, q.GrandTotal()), true)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, lineHeight, tr(fmt.Sprintf("Execution time: %s", q.ExecutionTime)), "", "L", false)
	pdf.MultiCell(0, lineHeight, tr(fmt.Sprintf("Payment terms: %s", q.PaymentTerms)), "", "L", false)

	return output(pdf)
}

// ReportPDF renders the technical report. The photo analysis and conclusion
// sections are flagged to start on a new page.
func (e *PDFExporter) ReportPDF(r entities.TechnicalReport, s entities.UserSettings) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	writeCompanyHeader(pdf, tr, s)

	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(0, 10, tr("Technical Inspection Report"), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, lineHeight, tr(fmt.Sprintf("Client: %s", r.ClientInfo.Name)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, lineHeight, tr(fmt.Sprintf("Address: %s", r.ClientInfo.Address)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, lineHeight, tr(fmt.Sprintf("Date: %s", r.ClientInfo.Date)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeSectionTitle(pdf, tr, "1. Objective")
	pdf.MultiCell(0, lineHeight, tr(r.Objective), "", "L", false)
	pdf.Ln(2)

	writeSectionTitle(pdf, tr, "2. Methodology")
	for i, m := range r.Methodology {
		pdf.MultiCell(0, lineHeight, tr(fmt.Sprintf("%d. %s", i+1, m)), "", "L", false)
	}
	pdf.Ln(2)

	writeSectionTitle(pdf, tr, "3. Development")
	for _, sec := range r.Development {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.MultiCell(0, lineHeight, tr(sec.Title), "", "L", false)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, lineHeight, tr(sec.Content), "", "L", false)
		pdf.Ln(1)
	}

	// Flagged sections start on a fresh page.
	pdf.AddPage()
	writeSectionTitle(pdf, tr, "4. Photo Analysis")
	for _, p := range r.PhotoAnalyses {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.MultiCell(0, lineHeight, tr(fmt.Sprintf("Photo %d - %s", p.PhotoIndex+1, p.Legend)), "", "L", false)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, lineHeight, tr(p.Description), "", "L", false)
		pdf.Ln(1)
	}

	pdf.AddPage()
	writeSectionTitle(pdf, tr, "5. Conclusion")
	pdf.MultiCell(0, lineHeight, tr(fmt.Sprintf("Diagnosis: %s", r.Conclusion.Diagnosis)), "", "L", false)
	pdf.MultiCell(0, lineHeight, tr(fmt.Sprintf("Technical proof: %s", r.Conclusion.TechnicalProof)), "", "L", false)
	pdf.MultiCell(0, lineHeight, tr(fmt.Sprintf("Consequences: %s", r.Conclusion.Consequences)), "", "L", false)
	leak := "No"
	if r.Conclusion.ActiveLeak {
		leak = "Yes"
	}
	pdf.MultiCell(0, lineHeight, tr(fmt.Sprintf("Active leak: %s", leak)), "", "L", false)
	pdf.Ln(2)

	writeSectionTitle(pdf, tr, "6. Recommendations")
	pdf.MultiCell(0, lineHeight, tr(fmt.Sprintf("Repair type: %s", r.Recommendations.RepairType)), "", "L", false)
	for _, m := range r.Recommendations.Materials {
		pdf.MultiCell(0, lineHeight, tr("- "+m), "", "L", false)
	}
	pdf.MultiCell(0, lineHeight, tr(fmt.Sprintf("Estimated time: %s", r.Recommendations.EstimatedTime)), "", "L", false)
	if r.Recommendations.Notes != "" {
		pdf.MultiCell(0, lineHeight, tr(fmt.Sprintf("Notes: %s", r.Recommendations.Notes)), "", "L", false)
	}

	return output(pdf)
}

func writeCompanyHeader(pdf *gofpdf.Fpdf, tr func(string) string, s entities.UserSettings) {
	if s.CompanyName == "" {
		return
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, lineHeight, tr(s.CompanyName), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	if s.CompanyAddress != "" {
		pdf.CellFormat(0, 5, tr(s.CompanyAddress), "", 1, "L", false, 0, "")
	}
	if s.CompanyTaxID != "" {
		pdf.CellFormat(0, 5, tr(fmt.Sprintf("Tax ID: %s", s.CompanyTaxID)), "", 1, "L", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)
}

func writeSectionTitle(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
}

func writeTotalLine(pdf *gofpdf.Fpdf, tr func(string) string, label, amount string, emphasize bool) {
	style := ""
	if emphasize {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, 11)
	pdf.CellFormat(149, 7, tr(label), "", 0, "R", false, 0, "")
	pdf.CellFormat(31, 7, tr(amount), "", 1, "R", false, 0, "")
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatAmount renders an amount with the locale conventions of the quote's
// currency. Formatting only; never conversion.
func formatAmount(c entities.Currency, v float64) string {
	p := message.NewPrinter(localeFor(c))
	return p.Sprintf("%s %.2f", symbolFor(c), v)
}

func localeFor(c entities.Currency) language.Tag {
	switch c {
	case entities.CurrencyBRL:
		return language.BrazilianPortuguese
	case entities.CurrencyEUR:
		return language.EuropeanPortuguese
	default:
		return language.AmericanEnglish
	}
}

func symbolFor(c entities.Currency) string {
	switch c {
	case entities.CurrencyBRL:
		return "R$"
	case entities.CurrencyEUR:
		return "€"
	default:
		return "$"
	}
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
