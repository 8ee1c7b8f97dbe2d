package handler

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/trw5157-hue/garage/internal/core/domain"
	"github.com/trw5157-hue/garage/internal/core/ports"
)

type stubInvoiceService struct {
	pdf         *ports.InvoicePDF
	err         error
	lastCharges domain.InvoiceCharges
}

func (s *stubInvoiceService) Generate(_ context.Context, _ string, charges domain.InvoiceCharges) (*ports.InvoicePDF, error) {
	s.lastCharges = charges
	if s.err != nil {
		return nil, s.err
	}
	return s.pdf, nil
}

func TestInvoiceHandler_Generate(t *testing.T) {
	svc := &stubInvoiceService{pdf: &ports.InvoicePDF{
		Number:  "ICD-2026-A1B2C3D4",
		Content: []byte("%PDF-stub"),
	}}
	h := NewInvoiceHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/jobs/j1/invoice",
		`{"labour_cost":1000,"parts_cost":500,"gst_rate":18}`)
	c.SetParamNames("id")
	c.SetParamValues("j1")

	if err := h.Generate(c); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "application/pdf" {
		t.Fatalf("content type = %q, want application/pdf", ct)
	}
	if cd := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(cd, "invoice_ICD-2026-A1B2C3D4.pdf") {
		t.Fatalf("unexpected content disposition %q", cd)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Fatalf("body is not a PDF stream")
	}
	if svc.lastCharges.GSTRate != 18 {
		t.Fatalf("charges not forwarded: %+v", svc.lastCharges)
	}
}

func TestInvoiceHandler_Generate_DefaultGSTRate(t *testing.T) {
	svc := &stubInvoiceService{pdf: &ports.InvoicePDF{Number: "N", Content: []byte("%PDF")}}
	h := NewInvoiceHandler(svc)

	c, _ := newTestContext(t, http.MethodPost, "/jobs/j1/invoice", `{"labour_cost":1000}`)
	c.SetParamNames("id")
	c.SetParamValues("j1")

	if err := h.Generate(c); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if svc.lastCharges.GSTRate != domain.DefaultGSTRate {
		t.Fatalf("omitted gst_rate should default to %v, got %v", domain.DefaultGSTRate, svc.lastCharges.GSTRate)
	}
}

func TestInvoiceHandler_Generate_ExplicitZeroGSTRate(t *testing.T) {
	// "gst_rate": 0 is a present value, not an omission: the invoice is
	// generated tax-free rather than at the default rate.
	svc := &stubInvoiceService{pdf: &ports.InvoicePDF{Number: "N", Content: []byte("%PDF")}}
	h := NewInvoiceHandler(svc)

	c, _ := newTestContext(t, http.MethodPost, "/jobs/j1/invoice", `{"labour_cost":1000,"gst_rate":0}`)
	c.SetParamNames("id")
	c.SetParamValues("j1")

	if err := h.Generate(c); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if svc.lastCharges.GSTRate != 0 {
		t.Fatalf("explicit zero gst_rate must be preserved, got %v", svc.lastCharges.GSTRate)
	}
	if got := svc.lastCharges.Totals().Tax.StringFixed(2); got != "0.00" {
		t.Fatalf("tax = %s, want 0.00", got)
	}
}

func TestInvoiceHandler_Generate_JobNotFound(t *testing.T) {
	h := NewInvoiceHandler(&stubInvoiceService{err: domain.ErrJobNotFound})

	c, _ := newTestContext(t, http.MethodPost, "/jobs/missing/invoice", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Generate(c); err != domain.ErrJobNotFound {
		t.Fatalf("expected raw ErrJobNotFound, got %v", err)
	}
}
