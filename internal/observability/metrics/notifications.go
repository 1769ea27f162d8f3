package metrics

import (
	"strings"
	"time"

	obserrors "github.com/target/print-notifier/internal/observability/errors"
	"github.com/target/print-notifier/internal/observability/statsd"
	"golang.org/x/net/publicsuffix"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultPartial = "partial"
)

// DeliveryMetric captures a single recipient delivery attempt.
type DeliveryMetric struct {
	Recipient string
	Result    string
	Duration  time.Duration
	Err       error
}

// DispatchMetric captures the outcome of one dispatch batch.
type DispatchMetric struct {
	Recipients int
	Sent       int
	Duration   time.Duration
	Err        error
}

// EmitDelivery emits per-recipient delivery metrics.
func EmitDelivery(sink statsd.Sink, in DeliveryMetric) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"result": in.Result,
	}
	if domain := RecipientDomain(in.Recipient); domain != "" {
		tags["recipient_domain"] = domain
	}
	if in.Err != nil && in.Result == ResultError {
		if class := obserrors.Classify(in.Err); class != "" {
			tags["error_class"] = class
		}
	}

	sink.Count("notification.delivery", 1, tags)

	if in.Duration > 0 {
		sink.Timing("notification.delivery.duration", in.Duration, CloneTags(tags))
	}
}

// EmitDispatch emits batch level metrics.
func EmitDispatch(sink statsd.Sink, in DispatchMetric) {
	if sink == nil {
		return
	}

	result := dispatchResult(in)
	tags := map[string]string{"result": result}
	if in.Err != nil {
		if class := obserrors.Classify(in.Err); class != "" {
			tags["error_class"] = class
		}
	}

	sink.Count("notification.dispatch", 1, tags)
	sink.Gauge("notification.dispatch.recipients", float64(in.Recipients), CloneTags(tags))
	if in.Duration > 0 {
		sink.Timing("notification.dispatch.duration", in.Duration, CloneTags(tags))
	}
}

func dispatchResult(in DispatchMetric) string {
	switch {
	case in.Err != nil:
		return ResultError
	case in.Sent < in.Recipients:
		return ResultPartial
	default:
		return ResultSuccess
	}
}

// RecipientDomain reduces an address to its registrable domain so metric tag
// cardinality stays bounded. Unparseable input yields "".
func RecipientDomain(address string) string {
	at := strings.LastIndexByte(address, '@')
	if at < 0 || at == len(address)-1 {
		return ""
	}
	host := strings.ToLower(strings.TrimSpace(address[at+1:]))
	host = strings.TrimSuffix(host, ".")
	if host == "" {
		return ""
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return domain
}

// CloneTags creates a shallow copy of a tag map, filtering out empty keys.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		if k == "" {
			continue
		}
		out[k] = v
	}
	return out
}
