package ports

import (
	"context"

	"github.com/trw5157-hue/garage/internal/core/domain"
)

// CreateJobInput carries all data needed to open a new work order.
type CreateJobInput struct {
	CustomerName       string
	ContactNumber      string
	CarBrand           string
	CarModel           string
	Year               int
	RegistrationNumber string
	VIN                string
	Kms                int
	EntryDate          string
	AssignedMechanic   string
	WorkDescription    string
	EstimatedDelivery  string
	InvoiceAmount      *float64
}

// StatusFilterAll is the sentinel value meaning "no status filter".
const StatusFilterAll = "All Status"

// JobStats is the aggregate view returned by Stats.
type JobStats struct {
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// JobService defines use-case operations over work orders. Every operation
// that takes an actor enforces the role capability table: mechanics only see
// and mutate jobs assigned to them, and only within their writable field set.
type JobService interface {
	Create(ctx context.Context, input CreateJobInput) (*domain.Job, error)
	List(ctx context.Context, actor *domain.User, statusFilter string) ([]*domain.Job, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.Job, error)
	Update(ctx context.Context, actor *domain.User, id string, patch domain.JobPatch) (*domain.Job, error)
	// AddPhoto encodes the image bytes as a data URL and appends it to the
	// job's photo list. Returns the stored photo URL.
	AddPhoto(ctx context.Context, id string, image []byte, contentType string) (string, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context, actor *domain.User) (*JobStats, error)
}
