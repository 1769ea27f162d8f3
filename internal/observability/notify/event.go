// Package notify defines the alert payloads emitted when an email delivery fails.
package notify

import (
	"context"
	"time"
)

// Severity constants recognised by downstream sinks.
const (
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// DeliveryFailurePayload captures the canonical data we emit for a recipient
// whose email could not be delivered.
type DeliveryFailurePayload struct {
	Recipient       string
	RecipientDomain string
	ErrorCode       string
	Error           string
	ErrorClass      string
	Severity        string
	OccurredAt      time.Time
	Metadata        map[string]string
}

// Sink describes a destination capable of consuming delivery failure notifications.
type Sink interface {
	SendDeliveryFailure(ctx context.Context, payload DeliveryFailurePayload) error
}

// SinkFunc adapts a function to the Sink interface (useful for tests).
type SinkFunc func(ctx context.Context, payload DeliveryFailurePayload) error

// SendDeliveryFailure implements the Sink interface.
func (f SinkFunc) SendDeliveryFailure(ctx context.Context, payload DeliveryFailurePayload) error {
	if f == nil {
		return nil
	}
	return f(ctx, payload)
}
