package webhook

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
)

// pipeline holds the per-kind expectations. The model literal is the kind
// string itself; the secret comes from configuration.
type pipeline struct {
	model  string
	secret string
}

// Registry maps resource kinds to their webhook pipelines. Adding a new
// resource kind is a Register call, not new control flow.
type Registry struct {
	pipelines map[Kind]pipeline
	logger    *slog.Logger
}

// NewRegistry creates an empty Registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		pipelines: make(map[Kind]pipeline),
		logger:    logger.With(slog.String("component", "webhook-auth")),
	}
}

// Register configures the pipeline for a resource kind.
func (r *Registry) Register(kind Kind, secret string) {
	r.pipelines[kind] = pipeline{model: string(kind), secret: secret}
}

// Authenticate validates the header set against the pipeline for kind.
// Checks run in strict order and fail fast: secret, then model, then event.
// The delivery id never fails; an absent X-Delivery becomes DeliveryUnknown.
func (r *Registry) Authenticate(h http.Header, kind Kind) (Delivery, error) {
	p, ok := r.pipelines[kind]
	if !ok {
		return Delivery{}, ErrUnknownKind
	}

	secret := h.Get(HeaderSecret)
	if subtle.ConstantTimeCompare([]byte(secret), []byte(p.secret)) != 1 {
		return Delivery{}, ErrUnauthorized
	}

	if model := h.Get(HeaderModel); model != p.model {
		r.logger.Info("webhook model mismatch",
			slog.String("kind", string(kind)),
			slog.String("model", model),
		)
		return Delivery{}, ErrBadModel
	}

	event, err := ParseEvent(h.Get(HeaderEvent))
	if err != nil {
		r.logger.Info("webhook event mismatch",
			slog.String("kind", string(kind)),
			slog.String("event", h.Get(HeaderEvent)),
		)
		return Delivery{}, ErrBadEvent
	}

	deliveryID := h.Get(HeaderDelivery)
	if deliveryID == "" {
		deliveryID = DeliveryUnknown
	}

	return Delivery{Event: event, ID: deliveryID}, nil
}
