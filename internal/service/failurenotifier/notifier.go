// Package failurenotifier fans delivery failures out to alert sinks.
package failurenotifier

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/target/print-notifier/internal/core"
	"github.com/target/print-notifier/internal/domain/model"
	obserrors "github.com/target/print-notifier/internal/observability/errors"
	"github.com/target/print-notifier/internal/observability/metrics"
	"github.com/target/print-notifier/internal/observability/notify"
	"github.com/target/print-notifier/internal/service/notification"
)

// SinkRegistration pairs a sink implementation with a human-readable name for logging.
type SinkRegistration struct {
	Name string
	Sink notify.Sink
}

// Options configures the failure notifier service.
type Options struct {
	Logger *slog.Logger
	Sinks  []SinkRegistration
	// Severity is attached to every payload. Defaults to warning.
	Severity string
	// Timeout bounds a single fan-out. Zero means no extra bound.
	Timeout time.Duration
	Now     func() time.Time
}

// Service dispatches failure events to all registered sinks.
type Service struct {
	logger   *slog.Logger
	sinks    []SinkRegistration
	severity string
	timeout  time.Duration
	now      func() time.Time
}

var _ core.FailureObserver = (*Service)(nil)

// NewService constructs a failure notifier.
func NewService(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var sinks []SinkRegistration
	for _, entry := range opts.Sinks {
		if entry.Sink == nil {
			continue
		}
		name := entry.Name
		if name == "" {
			name = "sink"
		}
		sinks = append(sinks, SinkRegistration{Name: name, Sink: entry.Sink})
	}

	severity := opts.Severity
	if severity == "" {
		severity = notify.SeverityWarning
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Service{
		logger:   logger.With("component", "failure_notifier"),
		sinks:    sinks,
		severity: severity,
		timeout:  opts.Timeout,
		now:      now,
	}
}

// DeliveryFailed implements core.FailureObserver.
func (s *Service) DeliveryFailed(ctx context.Context, failure model.DeliveryFailure) {
	if len(s.sinks) == 0 {
		return
	}
	s.Notify(ctx, s.payloadFor(failure))
}

// Notify fans the payload out to all sinks and waits for them. Sink errors are logged.
func (s *Service) Notify(ctx context.Context, payload notify.DeliveryFailurePayload) {
	if len(s.sinks) == 0 {
		return
	}
	if payload.Severity == "" {
		payload.Severity = s.severity
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var wg sync.WaitGroup
	for _, entry := range s.sinks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := entry.Sink.SendDeliveryFailure(ctx, payload); err != nil {
				s.logger.ErrorContext(ctx, "failure notifier delivery error",
					"sink", entry.Name,
					"recipient", payload.Recipient,
					"error", err,
				)
			}
		}()
	}
	wg.Wait()
}

// Enabled reports whether the notifier has any active sinks.
func (s *Service) Enabled() bool {
	return len(s.sinks) > 0
}

func (s *Service) payloadFor(failure model.DeliveryFailure) notify.DeliveryFailurePayload {
	payload := notify.DeliveryFailurePayload{
		Recipient:       failure.Recipient,
		RecipientDomain: metrics.RecipientDomain(failure.Recipient),
		Error:           failure.Reason,
		Severity:        s.severity,
		OccurredAt:      s.now(),
	}
	if failure.Err != nil {
		payload.ErrorClass = obserrors.Classify(failure.Err)
		var de *notification.DeliveryError
		if errors.As(failure.Err, &de) {
			payload.ErrorCode = de.Code
		}
	}
	return payload
}
