// Package api wires the HTTP surface: the webhook endpoints, health, and
// metrics. Handlers orchestrate authenticate, parse, format, dispatch.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jgengo/intra-events-telegram/internal/api/middleware"
	"github.com/jgengo/intra-events-telegram/internal/webhook"
)

// Notifier is the outbound sink contract the handlers depend on. The
// concrete transport behind it is irrelevant here.
type Notifier interface {
	SendMessage(ctx context.Context, text, parseMode string) bool
}

// RouterDeps bundles all dependencies needed by the HTTP router.
type RouterDeps struct {
	Registry *webhook.Registry
	Sink     Notifier
	Logger   *slog.Logger
	BasePath string
}

// Router sets up all HTTP routes for the application.
type Router struct {
	registry *webhook.Registry
	sink     Notifier
	logger   *slog.Logger
	basePath string
}

// NewRouter creates a new Router with all routes configured.
func NewRouter(deps RouterDeps) *Router {
	return &Router{
		registry: deps.Registry,
		sink:     deps.Sink,
		logger:   deps.Logger,
		basePath: deps.BasePath,
	}
}

// Handler returns the fully configured HTTP handler with middleware applied.
func (r *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	bp := r.basePath

	mux.HandleFunc("POST "+bp+"/webhooks/events", middleware.Metrics(r.handleEventWebhook, "event"))
	mux.HandleFunc("POST "+bp+"/webhooks/exams", middleware.Metrics(r.handleExamWebhook, "exam"))
	mux.Handle("GET "+bp+"/metrics", promhttp.Handler())
	mux.HandleFunc("GET "+bp+"/health", r.handleHealth)
	mux.HandleFunc("GET "+bp+"/{$}", r.handleHealth)

	var handler http.Handler = mux
	handler = middleware.Recover(r.logger)(handler)
	handler = middleware.Logging(r.logger)(handler)
	handler = middleware.RequestID(handler)
	return handler
}
