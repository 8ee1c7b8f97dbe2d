package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/trw5157-hue/garage/internal/core/ports"
)

// MockNotifier is the delivery backend for all channels while the real
// provider credentials are absent: it logs the intended send and succeeds.
type MockNotifier struct {
	log zerolog.Logger
}

func NewMockNotifier(log zerolog.Logger) *MockNotifier {
	return &MockNotifier{log: log}
}

func (n *MockNotifier) Deliver(_ context.Context, notification ports.Notification) error {
	n.log.Info().
		Str("channel", notification.Channel).
		Str("job_id", notification.JobID).
		Str("recipient", notification.Recipient).
		Str("message", notification.Message).
		Msg("[mock] notification delivered")
	return nil
}
