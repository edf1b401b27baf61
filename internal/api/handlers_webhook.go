package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jgengo/intra-events-telegram/internal/format"
	"github.com/jgengo/intra-events-telegram/internal/intra"
	"github.com/jgengo/intra-events-telegram/internal/metrics"
	"github.com/jgengo/intra-events-telegram/internal/telegram"
	"github.com/jgengo/intra-events-telegram/internal/webhook"
)

// Fixed acknowledgement bodies. Success is a marker only; it does not claim
// the notification reached Telegram.
func successBody(message string) map[string]string {
	return map[string]string{"status": "success", "message": message}
}

// handleEventWebhook receives intra event webhooks.
// POST /webhooks/events
func (r *Router) handleEventWebhook(w http.ResponseWriter, req *http.Request) {
	req.Body = http.MaxBytesReader(w, req.Body, 1<<20)

	delivery, ok := r.authenticate(w, req, webhook.KindEvent)
	if !ok {
		return
	}

	var payload intra.EventPayload
	if !r.decodePayload(w, req, &payload) {
		return
	}

	log := r.logger.With("delivery_id", delivery.ID, "event", string(delivery.Event))

	switch delivery.Event {
	case webhook.EventCreate:
		log.Info("event created", "id", payload.ID, "name", payload.Name)
		r.notify(req.Context(), "event", format.EventCreated(&payload))
	case webhook.EventDestroy:
		log.Info("event cancelled", "id", payload.ID, "name", payload.Name)
		r.notify(req.Context(), "event", format.EventCancelled(&payload))
	}

	writeJSON(w, http.StatusOK, successBody("Event processed successfully"))
}

// handleExamWebhook receives intra exam webhooks. Only create triggers a
// notification; destroy is accepted and deliberately ignored.
// POST /webhooks/exams
func (r *Router) handleExamWebhook(w http.ResponseWriter, req *http.Request) {
	req.Body = http.MaxBytesReader(w, req.Body, 1<<20)

	delivery, ok := r.authenticate(w, req, webhook.KindExam)
	if !ok {
		return
	}

	var payload intra.ExamPayload
	if !r.decodePayload(w, req, &payload) {
		return
	}

	log := r.logger.With("delivery_id", delivery.ID, "event", string(delivery.Event))

	switch delivery.Event {
	case webhook.EventCreate:
		log.Info("exam created", "id", payload.ID, "name", payload.Name)
		r.notify(req.Context(), "exam", format.ExamCreated(&payload))
	case webhook.EventDestroy:
		log.Info("exam destroy webhook ignored", "id", payload.ID)
	}

	writeJSON(w, http.StatusOK, successBody("Exam processed successfully"))
}

// authenticate runs the header pipeline for kind and writes the rejection
// response on failure.
func (r *Router) authenticate(w http.ResponseWriter, req *http.Request, kind webhook.Kind) (webhook.Delivery, bool) {
	delivery, err := r.registry.Authenticate(req.Header, kind)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, webhook.ErrUnauthorized) {
			status = http.StatusUnauthorized
		}
		writeJSON(w, status, map[string]string{"message": err.Error()})
		return webhook.Delivery{}, false
	}
	return delivery, true
}

// decodePayload decodes and validates the JSON body into dst. On failure it
// writes a 400 whose details field names the violated fields.
func (r *Router) decodePayload(w http.ResponseWriter, req *http.Request, dst interface{ Validate() error }) bool {
	if err := json.NewDecoder(req.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"details": "invalid JSON body"})
		return false
	}
	if err := dst.Validate(); err != nil {
		var verr *intra.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, map[string]any{"details": verr.Fields})
		} else {
			writeJSON(w, http.StatusBadRequest, map[string]string{"details": err.Error()})
		}
		return false
	}
	return true
}

// notify dispatches one formatted message to the sink. The result is
// recorded in metrics and logs but deliberately discarded for the HTTP
// response: the acknowledgement means "accepted", not "delivered". The
// send runs detached from the request context so a client disconnect
// cannot interrupt an in-flight delivery.
func (r *Router) notify(ctx context.Context, resource, text string) {
	outcome := metrics.OutcomeSent
	if !r.sink.SendMessage(context.WithoutCancel(ctx), text, telegram.ParseModeHTML) {
		outcome = metrics.OutcomeFailed
	}
	metrics.NotificationsSent.WithLabelValues(resource, outcome).Inc()
}
