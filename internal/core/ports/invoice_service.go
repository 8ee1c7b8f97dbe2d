package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trw5157-hue/garage/internal/core/domain"
)

// InvoiceLine is a single row in the rendered charge table.
type InvoiceLine struct {
	Description string
	Amount      decimal.Decimal
}

// InvoiceDocument is everything the renderer needs to lay out an invoice.
// It is assembled by the service; nothing here is persisted.
type InvoiceDocument struct {
	Number             string
	Date               time.Time
	CustomerName       string
	ContactNumber      string
	Vehicle            string
	RegistrationNumber string
	WorkDescription    string
	Lines              []InvoiceLine
	Totals             domain.InvoiceTotals
}

// InvoiceRenderer turns a document into a byte stream (PDF).
type InvoiceRenderer interface {
	Render(doc InvoiceDocument) ([]byte, error)
}

// InvoicePDF is the generated artefact streamed back to the caller.
type InvoicePDF struct {
	Number  string
	Content []byte
}

// InvoiceService generates invoices on demand for existing jobs.
type InvoiceService interface {
	Generate(ctx context.Context, jobID string, charges domain.InvoiceCharges) (*InvoicePDF, error)
}
