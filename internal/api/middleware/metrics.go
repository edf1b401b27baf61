package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jgengo/intra-events-telegram/internal/metrics"
	"github.com/jgengo/intra-events-telegram/internal/webhook"
)

// eventLabel maps the X-Event header onto a bounded label set. The header is
// caller-controlled and the wrapper runs for rejected requests too; recording
// it raw would let unauthenticated callers mint unbounded time series.
func eventLabel(h http.Header) string {
	ev, err := webhook.ParseEvent(h.Get(webhook.HeaderEvent))
	if err != nil {
		return "invalid"
	}
	return string(ev)
}

// Metrics wraps a webhook handler with Prometheus instrumentation for the
// given resource kind.
func Metrics(next http.HandlerFunc, resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next(sw, r)

		metrics.WebhookDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())
		metrics.WebhooksReceived.WithLabelValues(resource, eventLabel(r.Header), strconv.Itoa(sw.status)).Inc()
	}
}
