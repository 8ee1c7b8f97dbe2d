package ports

import "context"

// Notification channels.
const (
	ChannelWhatsApp = "whatsapp"
	ChannelEmail    = "email"
	ChannelSheets   = "sheets"
)

// Notification is one queued outbound message. Delivery is mocked: the
// notifier logs the intended action instead of calling a provider.
type Notification struct {
	Channel   string
	JobID     string
	Recipient string
	Message   string
}

// NotificationDispatcher enqueues notifications for asynchronous delivery.
type NotificationDispatcher interface {
	Enqueue(n Notification)
}

// Notifier delivers a single notification (mock implementations log only).
type Notifier interface {
	Deliver(ctx context.Context, n Notification) error
}

// NotificationResult is the canned payload returned by the mock endpoints.
type NotificationResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Recipient string `json:"recipient"`
}

// ExportResult is returned by the mock spreadsheet export.
type ExportResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	JobCount int    `json:"job_count"`
}

// NotificationService backs the mocked third-party integration endpoints.
type NotificationService interface {
	SendWhatsApp(ctx context.Context, jobID, message string) (*NotificationResult, error)
	SendInvoiceEmail(ctx context.Context, jobID string) (*NotificationResult, error)
	ExportJobs(ctx context.Context) (*ExportResult, error)
}
