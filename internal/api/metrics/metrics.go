// Package metrics defines and registers all custom Prometheus metrics for
// the garage API. It is the single source of truth for metric names, labels,
// and help strings. Registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "garage"

// JobsCreatedTotal counts newly opened work orders.
var JobsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of jobs created.",
	},
)

// JobStatusUpdatesTotal counts status writes, by target status.
// Label:
//   - status: the status value written (e.g. "Done")
var JobStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_status_updates_total",
		Help:      "Total number of job status updates, by target status.",
	},
	[]string{"status"},
)

// PhotosAddedTotal counts photo attachments.
var PhotosAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "photos_added_total",
		Help:      "Total number of photos attached to jobs.",
	},
)

// InvoicesGeneratedTotal counts on-demand PDF invoice generations.
var InvoicesGeneratedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invoices_generated_total",
		Help:      "Total number of PDF invoices generated.",
	},
)

// NotificationsQueuedTotal counts mock notification sends, by channel.
// Label:
//   - channel: "whatsapp", "email", or "sheets"
var NotificationsQueuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_queued_total",
		Help:      "Total number of mock notifications queued, by channel.",
	},
	[]string{"channel"},
)
