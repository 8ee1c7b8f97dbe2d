package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/trw5157-hue/garage/internal/core/domain"
	"github.com/trw5157-hue/garage/internal/core/ports"
)

type captureRenderer struct {
	doc ports.InvoiceDocument
	err error
}

func (r *captureRenderer) Render(doc ports.InvoiceDocument) ([]byte, error) {
	r.doc = doc
	if r.err != nil {
		return nil, r.err
	}
	return []byte("%PDF-stub"), nil
}

func TestInvoiceService_Generate(t *testing.T) {
	repo := newStubJobRepo()
	renderer := &captureRenderer{}
	svc := NewInvoiceService(repo, renderer, zerolog.Nop())

	seedJob(t, repo, "a1b2c3d4-ffff", "suresh", domain.StatusDone, time.Now().UTC())

	pdf, err := svc.Generate(context.Background(), "a1b2c3d4-ffff", domain.InvoiceCharges{
		LabourCost: 1000,
		PartsCost:  500,
		GSTRate:    18,
		CustomCharges: []domain.CustomCharge{
			{Description: "", Amount: 100},
		},
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !strings.HasPrefix(string(pdf.Content), "%PDF") {
		t.Fatalf("expected PDF content, got %q", pdf.Content)
	}
	if !strings.HasPrefix(pdf.Number, "ICD-") || !strings.Contains(pdf.Number, "A1B2C3D4") {
		t.Fatalf("unexpected invoice number %s", pdf.Number)
	}

	doc := renderer.doc
	if doc.CustomerName != "Arjun Menon" {
		t.Fatalf("unexpected customer: %s", doc.CustomerName)
	}
	if doc.Vehicle != "Hyundai Creta (2021)" {
		t.Fatalf("unexpected vehicle line: %s", doc.Vehicle)
	}
	if len(doc.Lines) != 5 {
		t.Fatalf("expected 4 standard rows plus 1 custom, got %d", len(doc.Lines))
	}
	if doc.Lines[0].Description != "Labour Charges" {
		t.Fatalf("unexpected first row: %s", doc.Lines[0].Description)
	}
	if doc.Lines[4].Description != "Custom Charge" {
		t.Fatalf("blank custom description not defaulted: %s", doc.Lines[4].Description)
	}
	if got := doc.Totals.Total.StringFixed(2); got != "1888.00" {
		t.Fatalf("total = %s, want 1888.00", got)
	}
}

func TestInvoiceService_Generate_JobNotFound(t *testing.T) {
	svc := NewInvoiceService(newStubJobRepo(), &captureRenderer{}, zerolog.Nop())

	if _, err := svc.Generate(context.Background(), "missing", domain.InvoiceCharges{}); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestInvoiceService_Generate_RendererError(t *testing.T) {
	repo := newStubJobRepo()
	renderErr := errors.New("layout failed")
	svc := NewInvoiceService(repo, &captureRenderer{err: renderErr}, zerolog.Nop())

	seedJob(t, repo, "j1", "suresh", domain.StatusDone, time.Now().UTC())

	if _, err := svc.Generate(context.Background(), "j1", domain.InvoiceCharges{}); !errors.Is(err, renderErr) {
		t.Fatalf("expected renderer error, got %v", err)
	}
}
