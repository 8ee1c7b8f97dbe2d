package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/trw5157-hue/garage/internal/core/ports"
)

// SendDeduper abstracts the notification dedup store (Redis). Identical
// sends within the TTL window are suppressed rather than re-queued.
type SendDeduper interface {
	IsDuplicate(ctx context.Context, channel, jobID, digest string) (bool, error)
	Mark(ctx context.Context, channel, jobID, digest string) error
}

type notificationService struct {
	jobs       ports.JobRepository
	dispatcher ports.NotificationDispatcher
	dedup      SendDeduper
	log        zerolog.Logger
}

// NewNotificationService returns the mock integration backend: it validates
// the referenced job, queues the send on the dispatcher, and returns the
// canned success payload. No external provider is ever called.
func NewNotificationService(
	jobs ports.JobRepository,
	dispatcher ports.NotificationDispatcher,
	dedup SendDeduper,
	log zerolog.Logger,
) ports.NotificationService {
	return &notificationService{
		jobs:       jobs,
		dispatcher: dispatcher,
		dedup:      dedup,
		log:        log,
	}
}

func (s *notificationService) SendWhatsApp(ctx context.Context, jobID, message string) (*ports.NotificationResult, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	s.queue(ctx, ports.Notification{
		Channel:   ports.ChannelWhatsApp,
		JobID:     job.ID,
		Recipient: job.ContactNumber,
		Message:   message,
	})

	return &ports.NotificationResult{
		Success:   true,
		Message:   "WhatsApp notification queued (mock mode - add API key to enable)",
		Recipient: job.ContactNumber,
	}, nil
}

func (s *notificationService) SendInvoiceEmail(ctx context.Context, jobID string) (*ports.NotificationResult, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	s.queue(ctx, ports.Notification{
		Channel:   ports.ChannelEmail,
		JobID:     job.ID,
		Recipient: job.CustomerName,
		Message:   "invoice for job " + job.ID,
	})

	return &ports.NotificationResult{
		Success:   true,
		Message:   "Invoice email queued (mock mode - add API key to enable)",
		Recipient: job.CustomerName,
	}, nil
}

func (s *notificationService) ExportJobs(ctx context.Context) (*ports.ExportResult, error) {
	jobs, err := s.jobs.List(ctx, ports.JobFilter{})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("job_count", len(jobs)).Msg("[mock] exporting jobs to spreadsheet")

	return &ports.ExportResult{
		Success:  true,
		Message:  fmt.Sprintf("Exported %d jobs (mock mode - add API key to enable)", len(jobs)),
		JobCount: len(jobs),
	}, nil
}

// queue deduplicates and enqueues a single send. Dedup failures are
// non-fatal: a send is queued anyway rather than dropped.
func (s *notificationService) queue(ctx context.Context, n ports.Notification) {
	digest := messageDigest(n.Message)

	isDup, err := s.dedup.IsDuplicate(ctx, n.Channel, n.JobID, digest)
	if err != nil {
		s.log.Warn().Err(err).Str("job_id", n.JobID).Msg("dedup check failed, queuing anyway")
	} else if isDup {
		s.log.Debug().Str("job_id", n.JobID).Str("channel", n.Channel).Msg("duplicate send suppressed")
		return
	}

	if markErr := s.dedup.Mark(ctx, n.Channel, n.JobID, digest); markErr != nil {
		s.log.Warn().Err(markErr).Str("job_id", n.JobID).Msg("failed to set dedup key")
	}

	s.dispatcher.Enqueue(n)
}

func messageDigest(message string) string {
	sum := sha256.Sum256([]byte(message))
	return hex.EncodeToString(sum[:8])
}
