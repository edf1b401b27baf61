// Package metrics defines the Prometheus collectors for the webhook pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// WebhooksReceived counts inbound webhook requests by resource kind,
	// event variant, and HTTP status.
	WebhooksReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iet_webhooks_received_total",
			Help: "The total number of inbound webhook requests",
		},
		[]string{"resource", "event", "status"},
	)

	// NotificationsSent counts outbound Telegram notifications by resource
	// kind and delivery outcome.
	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iet_notifications_sent_total",
			Help: "The total number of outbound Telegram notifications",
		},
		[]string{"resource", "outcome"},
	)

	// WebhookDuration tracks webhook handling duration by resource kind.
	WebhookDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "iet_webhook_duration_seconds",
			Help:    "The duration of webhook handling in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resource"},
	)
)

// Delivery outcome labels.
const (
	OutcomeSent   = "sent"
	OutcomeFailed = "failed"
)
