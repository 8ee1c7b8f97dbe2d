package domain

import (
	"testing"
	"time"
)

func TestInvoiceCharges_Totals(t *testing.T) {
	charges := InvoiceCharges{
		LabourCost: 1000,
		PartsCost:  500,
		GSTRate:    18,
	}

	totals := charges.Totals()
	if got := totals.Subtotal.StringFixed(2); got != "1500.00" {
		t.Fatalf("subtotal = %s, want 1500.00", got)
	}
	if got := totals.Tax.StringFixed(2); got != "270.00" {
		t.Fatalf("tax = %s, want 270.00", got)
	}
	if got := totals.Total.StringFixed(2); got != "1770.00" {
		t.Fatalf("total = %s, want 1770.00", got)
	}
}

func TestInvoiceCharges_Totals_CustomCharges(t *testing.T) {
	charges := InvoiceCharges{
		LabourCost: 2000,
		TuningCost: 15000,
		CustomCharges: []CustomCharge{
			{Description: "Dyno session", Amount: 3500},
			{Description: "Consumables", Amount: 250.50},
		},
		GSTRate: 18,
	}

	totals := charges.Totals()
	if got := totals.Subtotal.StringFixed(2); got != "20750.50" {
		t.Fatalf("subtotal = %s, want 20750.50", got)
	}
	if got := totals.Tax.StringFixed(2); got != "3735.09" {
		t.Fatalf("tax = %s, want 3735.09", got)
	}
	if got := totals.Total.StringFixed(2); got != "24485.59" {
		t.Fatalf("total = %s, want 24485.59", got)
	}
}

func TestInvoiceCharges_Totals_ZeroRate(t *testing.T) {
	// A zero rate means a tax-free invoice, not "use the default".
	totals := InvoiceCharges{LabourCost: 1000}.Totals()
	if totals.GSTRate != 0 {
		t.Fatalf("rate = %v, want 0", totals.GSTRate)
	}
	if got := totals.Tax.StringFixed(2); got != "0.00" {
		t.Fatalf("tax = %s, want 0.00", got)
	}
	if got := totals.Total.StringFixed(2); got != "1000.00" {
		t.Fatalf("total = %s, want 1000.00", got)
	}
}

func TestInvoiceCharges_Totals_FloatRounding(t *testing.T) {
	// 0.1 + 0.2 style inputs must not drift.
	totals := InvoiceCharges{LabourCost: 0.1, PartsCost: 0.2, GSTRate: 18}.Totals()
	if got := totals.Subtotal.StringFixed(2); got != "0.30" {
		t.Fatalf("subtotal = %s, want 0.30", got)
	}
	if got := totals.Total.StringFixed(2); got != "0.35" {
		t.Fatalf("total = %s, want 0.35", got)
	}
}

func TestInvoiceNumber(t *testing.T) {
	now := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	got := InvoiceNumber("a1b2c3d4-e5f6-7890", now)
	if got != "ICD-2026-A1B2C3D4" {
		t.Fatalf("invoice number = %s, want ICD-2026-A1B2C3D4", got)
	}

	// Short ids are used whole.
	got = InvoiceNumber("abc", now)
	if got != "ICD-2026-ABC" {
		t.Fatalf("invoice number = %s, want ICD-2026-ABC", got)
	}
}
