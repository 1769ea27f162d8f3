package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err: &AppError{
				Code:    ErrCodeValidation,
				Message: "recipients are required",
			},
			want: "recipients are required",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeUpstream,
				Message: "failed to resolve template",
				Cause:   errors.New("underlying error"),
			},
			want: "failed to resolve template: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(cause, ErrCodeInternal, "wrapped error")

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(%v, cause) = false", err)
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, ErrCodeInternal, "nothing"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
}

func TestValidationField(t *testing.T) {
	err := ValidationField("contentTemplate", "content template is required")
	if !IsValidation(err) {
		t.Errorf("IsValidation() = false")
	}
	if GetField(err) != "contentTemplate" {
		t.Errorf("GetField() = %q", GetField(err))
	}
}

func TestGetCodeThroughWrapping(t *testing.T) {
	inner := Wrapf(errors.New("dial tcp: refused"), ErrCodeUpstream, "template %s", "RPR_UIN_CARD_EMAIL")
	wrapped := fmt.Errorf("dispatch: %w", inner)

	if GetCode(wrapped) != ErrCodeUpstream {
		t.Errorf("GetCode() = %v, want %v", GetCode(wrapped), ErrCodeUpstream)
	}
	if !IsUpstream(wrapped) {
		t.Error("IsUpstream() = false")
	}
	if GetCode(errors.New("plain")) != "" {
		t.Error("expected empty code for plain errors")
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{Validation("bad"), http.StatusBadRequest},
		{&AppError{Code: ErrCodeTooLarge}, http.StatusRequestEntityTooLarge},
		{&AppError{Code: ErrCodeUpstream}, http.StatusBadGateway},
		{&AppError{Code: ErrCodeTimeout}, http.StatusGatewayTimeout},
		{&AppError{Code: ErrCodeCanceled}, 499},
		{Internal("boom"), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := HTTPStatus(tt.err); got != tt.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
