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

type recordingDispatcher struct {
	queued []ports.Notification
}

func (d *recordingDispatcher) Enqueue(n ports.Notification) {
	d.queued = append(d.queued, n)
}

type memoryDeduper struct {
	seen map[string]bool
	err  error
}

func newMemoryDeduper() *memoryDeduper {
	return &memoryDeduper{seen: make(map[string]bool)}
}

func (d *memoryDeduper) key(channel, jobID, digest string) string {
	return channel + ":" + jobID + ":" + digest
}

func (d *memoryDeduper) IsDuplicate(_ context.Context, channel, jobID, digest string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	return d.seen[d.key(channel, jobID, digest)], nil
}

func (d *memoryDeduper) Mark(_ context.Context, channel, jobID, digest string) error {
	if d.err != nil {
		return d.err
	}
	d.seen[d.key(channel, jobID, digest)] = true
	return nil
}

func TestNotificationService_SendWhatsApp(t *testing.T) {
	repo := newStubJobRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewNotificationService(repo, dispatcher, newMemoryDeduper(), zerolog.Nop())

	seedJob(t, repo, "j1", "suresh", domain.StatusDone, time.Now().UTC())

	result, err := svc.SendWhatsApp(context.Background(), "j1", "your car is ready")
	if err != nil {
		t.Fatalf("SendWhatsApp returned error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success")
	}
	if result.Recipient != "+919876543210" {
		t.Fatalf("expected contact number recipient, got %s", result.Recipient)
	}
	if !strings.Contains(result.Message, "mock mode") {
		t.Fatalf("expected mock mode message, got %q", result.Message)
	}
	if len(dispatcher.queued) != 1 {
		t.Fatalf("expected 1 queued notification, got %d", len(dispatcher.queued))
	}
	if dispatcher.queued[0].Channel != ports.ChannelWhatsApp {
		t.Fatalf("unexpected channel %s", dispatcher.queued[0].Channel)
	}
}

func TestNotificationService_DuplicateSuppressed(t *testing.T) {
	repo := newStubJobRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewNotificationService(repo, dispatcher, newMemoryDeduper(), zerolog.Nop())

	seedJob(t, repo, "j1", "suresh", domain.StatusDone, time.Now().UTC())

	if _, err := svc.SendWhatsApp(context.Background(), "j1", "same message"); err != nil {
		t.Fatalf("first send failed: %v", err)
	}
	result, err := svc.SendWhatsApp(context.Background(), "j1", "same message")
	if err != nil {
		t.Fatalf("second send failed: %v", err)
	}
	if !result.Success {
		t.Fatalf("suppressed send still returns success")
	}
	if len(dispatcher.queued) != 1 {
		t.Fatalf("duplicate should not enqueue again, got %d", len(dispatcher.queued))
	}

	// A different message body is not a duplicate.
	if _, err := svc.SendWhatsApp(context.Background(), "j1", "different message"); err != nil {
		t.Fatalf("third send failed: %v", err)
	}
	if len(dispatcher.queued) != 2 {
		t.Fatalf("expected distinct message to be queued, got %d", len(dispatcher.queued))
	}
}

func TestNotificationService_DedupErrorIsNonFatal(t *testing.T) {
	repo := newStubJobRepo()
	dispatcher := &recordingDispatcher{}
	dedup := newMemoryDeduper()
	dedup.err = errors.New("redis down")
	svc := NewNotificationService(repo, dispatcher, dedup, zerolog.Nop())

	seedJob(t, repo, "j1", "suresh", domain.StatusDone, time.Now().UTC())

	if _, err := svc.SendWhatsApp(context.Background(), "j1", "hi"); err != nil {
		t.Fatalf("send should survive dedup failure: %v", err)
	}
	if len(dispatcher.queued) != 1 {
		t.Fatalf("expected notification queued despite dedup failure")
	}
}

func TestNotificationService_SendInvoiceEmail(t *testing.T) {
	repo := newStubJobRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewNotificationService(repo, dispatcher, newMemoryDeduper(), zerolog.Nop())

	seedJob(t, repo, "j1", "suresh", domain.StatusDone, time.Now().UTC())

	result, err := svc.SendInvoiceEmail(context.Background(), "j1")
	if err != nil {
		t.Fatalf("SendInvoiceEmail returned error: %v", err)
	}
	if result.Recipient != "Arjun Menon" {
		t.Fatalf("expected customer name recipient, got %s", result.Recipient)
	}
	if len(dispatcher.queued) != 1 || dispatcher.queued[0].Channel != ports.ChannelEmail {
		t.Fatalf("expected one email notification, got %+v", dispatcher.queued)
	}
}

func TestNotificationService_JobNotFound(t *testing.T) {
	svc := NewNotificationService(newStubJobRepo(), &recordingDispatcher{}, newMemoryDeduper(), zerolog.Nop())

	if _, err := svc.SendWhatsApp(context.Background(), "missing", "hi"); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
	if _, err := svc.SendInvoiceEmail(context.Background(), "missing"); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestNotificationService_ExportJobs(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewNotificationService(repo, &recordingDispatcher{}, newMemoryDeduper(), zerolog.Nop())

	now := time.Now().UTC()
	seedJob(t, repo, "j1", "suresh", domain.StatusDone, now)
	seedJob(t, repo, "j2", "rudhan", domain.StatusPending, now)

	result, err := svc.ExportJobs(context.Background())
	if err != nil {
		t.Fatalf("ExportJobs returned error: %v", err)
	}
	if result.JobCount != 2 {
		t.Fatalf("expected 2 jobs exported, got %d", result.JobCount)
	}
	if !strings.Contains(result.Message, "Exported 2 jobs") {
		t.Fatalf("unexpected message %q", result.Message)
	}
}
