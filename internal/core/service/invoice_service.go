package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/trw5157-hue/garage/internal/core/domain"
	"github.com/trw5157-hue/garage/internal/core/ports"
)

// InvoiceService assembles invoice documents from a job plus itemised
// charges and delegates layout to the renderer. Nothing is persisted; the
// PDF is generated on demand and streamed to the caller.
type InvoiceService struct {
	jobs     ports.JobRepository
	renderer ports.InvoiceRenderer
	logger   zerolog.Logger
}

func NewInvoiceService(jobs ports.JobRepository, renderer ports.InvoiceRenderer, logger zerolog.Logger) *InvoiceService {
	return &InvoiceService{jobs: jobs, renderer: renderer, logger: logger}
}

func (s *InvoiceService) Generate(ctx context.Context, jobID string, charges domain.InvoiceCharges) (*ports.InvoicePDF, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	doc := ports.InvoiceDocument{
		Number:             domain.InvoiceNumber(job.ID, now),
		Date:               now,
		CustomerName:       job.CustomerName,
		ContactNumber:      job.ContactNumber,
		Vehicle:            fmt.Sprintf("%s %s (%d)", job.CarBrand, job.CarModel, job.Year),
		RegistrationNumber: job.RegistrationNumber,
		WorkDescription:    job.WorkDescription,
		Lines:              chargeLines(charges),
		Totals:             charges.Totals(),
	}

	content, err := s.renderer.Render(doc)
	if err != nil {
		s.logger.Error().Err(err).Str("job_id", jobID).Msg("invoice rendering failed")
		return nil, err
	}

	s.logger.Info().Str("job_id", jobID).Str("invoice", doc.Number).Str("total", doc.Totals.Total.StringFixed(2)).Msg("invoice generated")
	return &ports.InvoicePDF{Number: doc.Number, Content: content}, nil
}

// chargeLines fixes the four standard rows first, then any custom charges in
// payload order, mirroring the printed charge table.
func chargeLines(c domain.InvoiceCharges) []ports.InvoiceLine {
	lines := []ports.InvoiceLine{
		{Description: "Labour Charges", Amount: decimal.NewFromFloat(c.LabourCost).Round(2)},
		{Description: "Parts/Materials", Amount: decimal.NewFromFloat(c.PartsCost).Round(2)},
		{Description: "Tuning Charges", Amount: decimal.NewFromFloat(c.TuningCost).Round(2)},
		{Description: "Other Charges", Amount: decimal.NewFromFloat(c.OtherCharges).Round(2)},
	}
	for _, cc := range c.CustomCharges {
		desc := cc.Description
		if desc == "" {
			desc = "Custom Charge"
		}
		lines = append(lines, ports.InvoiceLine{Description: desc, Amount: decimal.NewFromFloat(cc.Amount).Round(2)})
	}
	return lines
}
