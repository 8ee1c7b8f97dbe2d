package service

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/trw5157-hue/garage/internal/core/domain"
	"github.com/trw5157-hue/garage/internal/core/ports"
)

// JobService implements the work-order use cases with role scoping.
type JobService struct {
	repo   ports.JobRepository
	logger zerolog.Logger
}

func NewJobService(repo ports.JobRepository, logger zerolog.Logger) *JobService {
	return &JobService{repo: repo, logger: logger}
}

func (s *JobService) Create(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	job := &domain.Job{
		ID:                 uuid.NewString(),
		CustomerName:       input.CustomerName,
		ContactNumber:      input.ContactNumber,
		CarBrand:           input.CarBrand,
		CarModel:           input.CarModel,
		Year:               input.Year,
		RegistrationNumber: input.RegistrationNumber,
		VIN:                input.VIN,
		Kms:                input.Kms,
		EntryDate:          input.EntryDate,
		AssignedMechanic:   input.AssignedMechanic,
		WorkDescription:    input.WorkDescription,
		EstimatedDelivery:  input.EstimatedDelivery,
		Status:             domain.StatusPending,
		Photos:             []string{},
		InvoiceAmount:      input.InvoiceAmount,
		CreatedAt:          time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, job); err != nil {
		s.logger.Error().Err(err).Msg("failed to create job")
		return nil, err
	}

	s.logger.Info().Str("job_id", job.ID).Str("mechanic", job.AssignedMechanic).Msg("job created")
	return job, nil
}

// List returns the jobs visible to the actor, newest first. Mechanics are
// implicitly scoped to their own assignments before the status filter runs.
func (s *JobService) List(ctx context.Context, actor *domain.User, statusFilter string) ([]*domain.Job, error) {
	return s.repo.List(ctx, s.scopedFilter(actor, statusFilter))
}

func (s *JobService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !job.VisibleTo(actor) {
		return nil, domain.ErrForbidden
	}
	return job, nil
}

// Update applies a partial update. Fields outside the actor's writable set
// are silently dropped. The first transition into Done stamps the completion
// date in the same write.
func (s *JobService) Update(ctx context.Context, actor *domain.User, id string, patch domain.JobPatch) (*domain.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !job.VisibleTo(actor) {
		return nil, domain.ErrForbidden
	}

	patch = patch.Restrict(actor.Role)

	var completionDate *time.Time
	if patch.Status != nil && *patch.Status == domain.StatusDone && job.Status != domain.StatusDone {
		now := time.Now().UTC()
		completionDate = &now
	}

	if patch.IsEmpty() && completionDate == nil {
		return job, nil
	}

	updated, err := s.repo.Update(ctx, id, patch, completionDate)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		s.logger.Info().Str("job_id", id).Str("status", string(*patch.Status)).Str("by", actor.Username).Msg("job status updated")
	}
	return updated, nil
}

// AddPhoto stores the image inline as a base64 data URL, preserving append
// order. There is no size or count cap.
func (s *JobService) AddPhoto(ctx context.Context, id string, image []byte, contentType string) (string, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return "", err
	}

	photo := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(image)
	if err := s.repo.AppendPhoto(ctx, id, photo); err != nil {
		return "", err
	}

	s.logger.Info().Str("job_id", id).Int("bytes", len(image)).Msg("photo added")
	return photo, nil
}

func (s *JobService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("job_id", id).Msg("job deleted")
	return nil
}

// Stats buckets the actor's visible jobs: Pending/In Progress are active,
// Done/Delivered are completed.
func (s *JobService) Stats(ctx context.Context, actor *domain.User) (*ports.JobStats, error) {
	jobs, err := s.repo.List(ctx, s.scopedFilter(actor, ""))
	if err != nil {
		return nil, err
	}

	stats := &ports.JobStats{Total: len(jobs)}
	for _, j := range jobs {
		switch {
		case j.Status.IsActive():
			stats.Active++
		case j.Status.IsCompleted():
			stats.Completed++
		}
	}
	return stats, nil
}

func (s *JobService) scopedFilter(actor *domain.User, statusFilter string) ports.JobFilter {
	filter := ports.JobFilter{}
	if domain.Capabilities[actor.Role].OwnJobsOnly {
		filter.AssignedMechanic = actor.Username
	}
	if statusFilter != "" && statusFilter != ports.StatusFilterAll {
		filter.Status = statusFilter
	}
	return filter
}
