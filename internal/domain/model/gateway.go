package model

import (
	"encoding/json"
	"fmt"
)

// ServiceError is one structured error reported by a platform service.
type ServiceError struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

// Error implements the error interface.
func (e ServiceError) Error() string {
	if e.ErrorCode == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}

// GatewayResponse is the envelope returned by the notification gateway.
type GatewayResponse struct {
	ID           string          `json:"id,omitempty"`
	Version      string          `json:"version,omitempty"`
	ResponseTime string          `json:"responsetime,omitempty"`
	Response     json.RawMessage `json:"response,omitempty"`
	Errors       []ServiceError  `json:"errors,omitempty"`
}

// HasErrors reports whether the envelope carries at least one error.
func (r *GatewayResponse) HasErrors() bool {
	return r != nil && len(r.Errors) > 0
}

// FirstError returns the first reported error.
func (r *GatewayResponse) FirstError() (ServiceError, bool) {
	if !r.HasErrors() {
		return ServiceError{}, false
	}
	return r.Errors[0], true
}

// DecodeResult decodes the nested response object into a DeliveryResult.
// An absent or null response yields an empty result.
func (r *GatewayResponse) DecodeResult() (DeliveryResult, error) {
	var out DeliveryResult
	if r == nil || len(r.Response) == 0 || string(r.Response) == "null" {
		return out, nil
	}
	if err := json.Unmarshal(r.Response, &out); err != nil {
		return DeliveryResult{}, fmt.Errorf("decode gateway response: %w", err)
	}
	return out, nil
}
