package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultGSTRate is applied when the caller omits a rate. An explicit zero
// rate is honoured as-is and produces a tax-free invoice.
const DefaultGSTRate = 18.0

// CustomCharge is one free-form line item on an invoice.
type CustomCharge struct {
	Description string
	Amount      float64
}

// InvoiceCharges is the itemised input to the invoice calculator. Amounts
// arrive as JSON numbers; all arithmetic is done in decimal so totals are
// identical across runs and platforms.
type InvoiceCharges struct {
	LabourCost    float64
	PartsCost     float64
	TuningCost    float64
	OtherCharges  float64
	CustomCharges []CustomCharge
	GSTRate       float64
}

// InvoiceTotals holds the derived amounts, rounded to two decimal places.
type InvoiceTotals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
	GSTRate  float64
}

// Totals computes subtotal, GST and grand total from the charges. The rate
// is applied exactly as given; defaulting an omitted rate is the caller's
// concern.
func (c InvoiceCharges) Totals() InvoiceTotals {
	subtotal := decimal.NewFromFloat(c.LabourCost).
		Add(decimal.NewFromFloat(c.PartsCost)).
		Add(decimal.NewFromFloat(c.TuningCost)).
		Add(decimal.NewFromFloat(c.OtherCharges))
	for _, cc := range c.CustomCharges {
		subtotal = subtotal.Add(decimal.NewFromFloat(cc.Amount))
	}
	subtotal = subtotal.Round(2)

	tax := subtotal.Mul(decimal.NewFromFloat(c.GSTRate)).Div(decimal.NewFromInt(100)).Round(2)

	return InvoiceTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax).Round(2),
		GSTRate:  c.GSTRate,
	}
}

// InvoiceNumber derives the deterministic invoice number for a job:
// ICD-<year>-<first 8 chars of the job id, uppercased>.
func InvoiceNumber(jobID string, now time.Time) string {
	short := jobID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("ICD-%d-%s", now.Year(), strings.ToUpper(short))
}
