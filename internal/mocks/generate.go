// Package mocks provides mock implementations of the notification service ports.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the interfaces in internal/core.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	templates := mocks.NewMockTemplateProvider(ctrl)
//	templates.EXPECT().GetTemplate(gomock.Any(), "tpl", gomock.Any(), "eng").Return(strings.NewReader("hi"), nil)
package mocks

// Generate mock for TemplateProvider interface from internal/core package.
// This creates MockTemplateProvider with methods for all TemplateProvider interface methods:
// GetTemplate
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=template_provider_mock.go github.com/target/print-notifier/internal/core TemplateProvider

// Generate mock for DeliveryGateway interface from internal/core package.
// This creates MockDeliveryGateway with methods for all DeliveryGateway interface methods:
// PostMultipart
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=delivery_gateway_mock.go github.com/target/print-notifier/internal/core DeliveryGateway

// Generate mock for FailureObserver interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=failure_observer_mock.go github.com/target/print-notifier/internal/core FailureObserver

// Generate mock for CacheRepository interface from internal/core package.
// This creates MockCacheRepository with methods for all CacheRepository interface methods:
// Set, Get, Delete, Health
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=cache_repository_mock.go github.com/target/print-notifier/internal/core CacheRepository
