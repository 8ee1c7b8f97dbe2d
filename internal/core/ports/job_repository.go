package ports

import (
	"context"
	"time"

	"github.com/trw5157-hue/garage/internal/core/domain"
)

// JobFilter carries the query parameters for listing jobs.
// AssignedMechanic is enforced by the service layer for mechanic actors.
type JobFilter struct {
	AssignedMechanic string // empty = no scoping (manager)
	Status           string // empty = all statuses
}

// JobRepository defines persistence operations for work orders.
type JobRepository interface {
	Insert(ctx context.Context, job *domain.Job) error
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	// List returns jobs matching filter, ordered by created_at descending.
	List(ctx context.Context, filter JobFilter) ([]*domain.Job, error)
	// Update applies the patch fields in a single write. When completionDate
	// is non-nil it is stamped in the same write. Returns the updated record.
	Update(ctx context.Context, id string, patch domain.JobPatch, completionDate *time.Time) (*domain.Job, error)
	// AppendPhoto pushes one encoded photo onto the job's photo list.
	AppendPhoto(ctx context.Context, id string, photo string) error
	Delete(ctx context.Context, id string) error
}
