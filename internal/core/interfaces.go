package core

import (
	"context"
	"io"

	"github.com/target/print-notifier/internal/domain/model"
)

// This file contains the ports the notification service consumes.
// Service implementations depend on these interfaces, not on concrete adapters.

// TemplateProvider renders a named template for a language.
// A nil reader with a nil error means the template does not exist.
type TemplateProvider interface {
	GetTemplate(ctx context.Context, templateID string, attributes map[string]any, languageCode string) (io.Reader, error)
}

// DeliveryGateway submits a multipart payload to the external notification gateway.
type DeliveryGateway interface {
	PostMultipart(
		ctx context.Context,
		url, contentType string,
		payload *model.MultipartPayload,
	) (*model.GatewayResponse, error)
}

// FailureObserver is told about every recipient whose delivery failed.
type FailureObserver interface {
	DeliveryFailed(ctx context.Context, failure model.DeliveryFailure)
}
