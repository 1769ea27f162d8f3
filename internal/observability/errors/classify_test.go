package errors

import (
	"context"
	goerrors "errors"
	"fmt"
	"net"
	"testing"
)

type gatewayFault struct{}

func (gatewayFault) Error() string { return "gateway fault" }

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "deadline", err: fmt.Errorf("post: %w", context.DeadlineExceeded), want: ClassTimeout},
		{name: "canceled", err: context.Canceled, want: ClassCanceled},
		{name: "network", err: &net.OpError{Op: "dial", Err: goerrors.New("refused")}, want: ClassNetwork},
		{name: "wrapped concrete type", err: fmt.Errorf("outer: %w", &gatewayFault{}), want: "errors_gatewayfault"},
		{name: "plain", err: goerrors.New("boom"), want: "errors_errorstring"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tt.err); got != tt.want {
				t.Fatalf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}
