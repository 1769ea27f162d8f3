// Package httpx exposes the notification API over HTTP.
package httpx

import (
	"log/slog"
	"net/http"
	"time"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Notifications NotificationDispatcher
	// Checks are reported by the readiness endpoint (optional).
	Checks map[string]HealthChecker
	// DatetimePattern is the Go layout for envelope timestamps.
	DatetimePattern string
	MaxRequestBytes int64
	Now             func() time.Time
	Logger          *slog.Logger
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	notificationHandlers := &NotificationHandlers{
		Svc:             services.Notifications,
		DatetimePattern: services.DatetimePattern,
		MaxRequestBytes: services.MaxRequestBytes,
		Now:             services.Now,
		Logger:          logger,
	}
	mux.HandleFunc("POST /v1/notifications/email", notificationHandlers.SendEmail)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	ready := readyHandler(services.Checks, logger)
	mux.Handle("GET /readyz", ready)
	mux.Handle("HEAD /readyz", ready)

	var h http.Handler = mux
	h = Logging(logger)(h)
	h = Recover(logger)(h)
	h = RequestID()(h)
	return h
}
