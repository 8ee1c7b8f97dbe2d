// Package pdf renders invoice documents as A4 PDFs.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/trw5157-hue/garage/internal/core/ports"
)

// Workshop letterhead. Core PDF fonts are Latin-1, so the rupee sign is
// spelled out as INR in the rendered tables.
const (
	workshopName    = "ICD TUNING"
	workshopTagline = "Performance Tuning | ECU Remaps | Custom Builds"
	workshopCity    = "Chennai, Tamil Nadu"
	workshopContact = "+91 98765 43210 | icdtuning@gmail.com"
	workshopTerms   = "All tuning work done by ICD Tuning is tested and verified for safety and performance."
)

// InvoiceRenderer implements ports.InvoiceRenderer with fpdf.
type InvoiceRenderer struct{}

func NewInvoiceRenderer() *InvoiceRenderer {
	return &InvoiceRenderer{}
}

func (r *InvoiceRenderer) Render(doc ports.InvoiceDocument) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	usable := pageWidth - 24

	// Letterhead
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(211, 47, 47)
	pdf.CellFormat(usable, 12, workshopName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(60, 60, 60)
	for _, line := range []string{workshopTagline, workshopCity, workshopContact} {
		pdf.CellFormat(usable, 6, line, "", 1, "C", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(211, 47, 47)
	pdf.CellFormat(usable, 10, "INVOICE", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Invoice / customer / vehicle details
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(26, 26, 26)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetDrawColor(211, 47, 47)

	details := [][4]string{
		{"Invoice No:", doc.Number, "Date:", doc.Date.Format("02/01/2006")},
		{"Customer:", doc.CustomerName, "Contact:", doc.ContactNumber},
		{"Vehicle:", doc.Vehicle, "Reg No:", doc.RegistrationNumber},
	}
	colWidths := [4]float64{32, 76, 24, usable - 132}
	for _, row := range details {
		for i, cell := range row {
			pdf.CellFormat(colWidths[i], 10, cell, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	// Work description
	pdf.SetFillColor(211, 47, 47)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(usable, 9, "Work Description", "1", 1, "L", true, 0, "")
	pdf.SetFillColor(42, 42, 42)
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(usable, 9, doc.WorkDescription, "1", "L", true)
	pdf.Ln(6)

	// Charges table
	descWidth := usable * 0.6
	amountWidth := usable - descWidth

	pdf.SetFillColor(211, 47, 47)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(descWidth, 9, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(amountWidth, 9, "Amount (INR)", "1", 1, "R", true, 0, "")

	pdf.SetFillColor(42, 42, 42)
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range doc.Lines {
		pdf.CellFormat(descWidth, 8, line.Description, "1", 0, "L", true, 0, "")
		pdf.CellFormat(amountWidth, 8, line.Amount.StringFixed(2), "1", 1, "R", true, 0, "")
	}

	pdf.CellFormat(descWidth, 8, "Subtotal", "1", 0, "L", true, 0, "")
	pdf.CellFormat(amountWidth, 8, doc.Totals.Subtotal.StringFixed(2), "1", 1, "R", true, 0, "")
	pdf.CellFormat(descWidth, 8, fmt.Sprintf("GST (%g%%)", doc.Totals.GSTRate), "1", 0, "L", true, 0, "")
	pdf.CellFormat(amountWidth, 8, doc.Totals.Tax.StringFixed(2), "1", 1, "R", true, 0, "")

	pdf.SetFillColor(211, 47, 47)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(descWidth, 10, "GRAND TOTAL", "1", 0, "L", true, 0, "")
	pdf.CellFormat(amountWidth, 10, "INR "+doc.Totals.Total.StringFixed(2), "1", 1, "R", true, 0, "")
	pdf.Ln(10)

	// Footer
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(153, 153, 153)
	pdf.CellFormat(usable, 5, "Terms & Conditions:", "", 1, "C", false, 0, "")
	pdf.MultiCell(usable, 5, workshopTerms, "", "C", false)
	pdf.Ln(4)
	pdf.CellFormat(usable, 5, "Thank you for choosing ICD Tuning!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice: %w", err)
	}
	return buf.Bytes(), nil
}
