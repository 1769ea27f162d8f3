package notification

import (
	"errors"
	"fmt"
)

var (
	errTemplatesRequired  = errors.New("notification: template provider is required")
	errGatewayRequired    = errors.New("notification: delivery gateway is required")
	errGatewayURLRequired = errors.New("notification: gateway url is required")
)

// ResolutionError reports that a content or subject template could not be
// resolved. It aborts the whole dispatch.
type ResolutionError struct {
	TemplateID string
	Language   string
	Err        error
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve template %q (lang %s): %v", e.TemplateID, e.Language, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// DeliveryError carries the first structured error the gateway reported for a
// recipient. It never escapes Dispatch; it is logged and recorded as a failure.
type DeliveryError struct {
	Recipient string
	Code      string
	Message   string
}

// Error implements the error interface.
func (e *DeliveryError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("deliver to %s: %s", e.Recipient, e.Message)
	}
	return fmt.Sprintf("deliver to %s: %s: %s", e.Recipient, e.Code, e.Message)
}
