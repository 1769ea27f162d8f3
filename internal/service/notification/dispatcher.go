// Package notification resolves localized email content and delivers it to
// every recipient through the notification gateway.
package notification

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"net/textproto"
	"strings"
	"sync"
	"time"

	"github.com/target/print-notifier/internal/core"
	"github.com/target/print-notifier/internal/domain/model"
	"github.com/target/print-notifier/internal/observability/metrics"
	"github.com/target/print-notifier/internal/observability/statsd"
	"golang.org/x/sync/errgroup"
)

// Fallback texts used when a template does not exist.
const (
	DefaultEmailContent = "Your UIN Card is attached."
	DefaultEmailSubject = "UIN Card Attached!"
)

// Config holds dispatcher settings.
type Config struct {
	// GatewayURL is the notification gateway endpoint for email submissions.
	GatewayURL string
	// PrimaryLanguage is used when no preferred language resolves.
	PrimaryLanguage string
	// PreferredLanguageAttribute names the attribute holding the user's language display name.
	PreferredLanguageAttribute string
	// Concurrency bounds parallel gateway calls. Values below 2 deliver sequentially.
	Concurrency int
}

// Options groups dependencies for Dispatcher.
type Options struct {
	Templates core.TemplateProvider // Required
	Gateway   core.DeliveryGateway  // Required
	Config    Config
	Observer  core.FailureObserver // Optional: told about each failed recipient
	Metrics   statsd.Sink          // Optional
	Logger    *slog.Logger         // Optional
}

// Dispatcher sends one templated email with an optional attachment to a list
// of recipients. A failing recipient never aborts the batch.
type Dispatcher struct {
	templates core.TemplateProvider
	gateway   core.DeliveryGateway
	cfg       Config
	observer  core.FailureObserver
	metrics   statsd.Sink
	logger    *slog.Logger

	alerts sync.WaitGroup
}

// NewDispatcher constructs a Dispatcher.
func NewDispatcher(opts Options) (*Dispatcher, error) {
	if opts.Templates == nil {
		return nil, errTemplatesRequired
	}
	if opts.Gateway == nil {
		return nil, errGatewayRequired
	}

	cfg := opts.Config
	cfg.GatewayURL = strings.TrimSpace(cfg.GatewayURL)
	if cfg.GatewayURL == "" {
		return nil, errGatewayURLRequired
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Dispatcher{
		templates: opts.Templates,
		gateway:   opts.Gateway,
		cfg:       cfg,
		observer:  opts.Observer,
		metrics:   opts.Metrics,
		logger:    logger.With("component", "notification_dispatcher"),
	}, nil
}

// Dispatch delivers the request to every recipient and returns the results of
// the successful deliveries in recipient order. The only error it returns is a
// *ResolutionError; per-recipient failures are logged and omitted.
func (d *Dispatcher) Dispatch(ctx context.Context, req model.DispatchRequest) ([]model.DeliveryResult, error) {
	report, err := d.DispatchWithReport(ctx, req)
	if err != nil {
		return nil, err
	}
	return report.Results, nil
}

// DispatchWithReport behaves like Dispatch and also returns the recipients
// that failed together with the reason.
func (d *Dispatcher) DispatchWithReport(ctx context.Context, req model.DispatchRequest) (*model.DispatchReport, error) {
	start := time.Now()
	d.logger.InfoContext(ctx, "dispatching email notification",
		"recipients", len(req.Recipients),
		"content_template", req.ContentTemplate,
		"subject_template", req.SubjectTemplate,
		"has_attachment", req.HasAttachment())

	content, err := d.resolveContent(ctx, req)
	if err != nil {
		d.logger.ErrorContext(ctx, "failed to resolve notification content", "error", err)
		metrics.EmitDispatch(d.metrics, metrics.DispatchMetric{
			Recipients: len(req.Recipients),
			Duration:   time.Since(start),
			Err:        err,
		})
		return nil, err
	}

	payload := buildPayload(req.Attachment, content)

	d.logger.InfoContext(ctx, "delivering email notification", "gateway_url", d.cfg.GatewayURL)
	report := d.deliverAll(ctx, req.Recipients, payload)

	metrics.EmitDispatch(d.metrics, metrics.DispatchMetric{
		Recipients: len(req.Recipients),
		Sent:       report.Sent(),
		Duration:   time.Since(start),
	})
	if report.Failed() > 0 {
		d.logger.WarnContext(ctx, "email notification partially delivered",
			"recipients", len(req.Recipients),
			"sent", report.Sent(),
			"failed", report.Failed())
	}

	return report, nil
}

// resolveContent renders body and subject exactly once for the batch.
func (d *Dispatcher) resolveContent(ctx context.Context, req model.DispatchRequest) (model.ResolvedContent, error) {
	preferred := preferredLanguage(req.Attributes, d.cfg.PreferredLanguageAttribute)
	lang := templateLanguage(preferred, d.cfg.PrimaryLanguage)

	body, err := d.renderTemplate(ctx, templateLookup{
		id:         req.ContentTemplate,
		attributes: req.Attributes,
		language:   lang,
		fallback:   DefaultEmailContent,
	})
	if err != nil {
		return model.ResolvedContent{}, err
	}

	subject, err := d.renderTemplate(ctx, templateLookup{
		id:         req.SubjectTemplate,
		attributes: req.Attributes,
		language:   lang,
		fallback:   DefaultEmailSubject,
	})
	if err != nil {
		return model.ResolvedContent{}, err
	}

	return model.ResolvedContent{Subject: subject, Body: body}, nil
}

type templateLookup struct {
	id         string
	attributes map[string]any
	language   string
	fallback   string
}

func (d *Dispatcher) renderTemplate(ctx context.Context, in templateLookup) (string, error) {
	r, err := d.templates.GetTemplate(ctx, in.id, in.attributes, in.language)
	if err != nil {
		return "", &ResolutionError{TemplateID: in.id, Language: in.language, Err: err}
	}
	if r == nil {
		d.logger.DebugContext(ctx, "template not found, using default text",
			"template_id", in.id,
			"lang", in.language)
		return in.fallback, nil
	}
	if c, ok := r.(io.Closer); ok {
		defer func() {
			if cerr := c.Close(); cerr != nil {
				d.logger.DebugContext(ctx, "close template reader", "template_id", in.id, "error", cerr)
			}
		}()
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", &ResolutionError{TemplateID: in.id, Language: in.language, Err: err}
	}
	return string(b), nil
}

// buildPayload assembles the parts shared by every recipient.
func buildPayload(attachment *model.Attachment, content model.ResolvedContent) *model.MultipartPayload {
	payload := model.NewMultipartPayload()
	if attachment != nil && attachment.Data != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", mime.FormatMediaType("form-data", map[string]string{
			"name":     model.FieldAttachments,
			"filename": attachment.FileName + ".pdf",
		}))
		header.Set("Content-Type", "application/pdf")
		payload.AddFile(model.FieldAttachments, header, attachment.Data)
	}
	payload.Add(model.FieldMailContent, content.Body)
	payload.Add(model.FieldMailSubject, content.Subject)
	return payload
}

type deliveryOutcome struct {
	result  model.DeliveryResult
	failure *model.DeliveryFailure
}

// deliverAll attempts every recipient. Outcomes are slotted by index so the
// results keep recipient order even when delivered in parallel.
func (d *Dispatcher) deliverAll(ctx context.Context, recipients []string, payload *model.MultipartPayload) *model.DispatchReport {
	outcomes := make([]deliveryOutcome, len(recipients))

	if d.cfg.Concurrency < 2 || len(recipients) < 2 {
		for i, recipient := range recipients {
			outcomes[i] = d.deliver(ctx, recipient, payload)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(d.cfg.Concurrency)
		for i, recipient := range recipients {
			g.Go(func() error {
				outcomes[i] = d.deliver(ctx, recipient, payload)
				return nil
			})
		}
		_ = g.Wait() // deliver never returns an error
	}

	report := &model.DispatchReport{
		Results:  make([]model.DeliveryResult, 0, len(recipients)),
		Failures: make([]model.DeliveryFailure, 0),
	}
	for _, out := range outcomes {
		if out.failure != nil {
			report.Failures = append(report.Failures, *out.failure)
			continue
		}
		report.Results = append(report.Results, out.result)
	}
	return report
}

func (d *Dispatcher) deliver(ctx context.Context, recipient string, shared *model.MultipartPayload) deliveryOutcome {
	start := time.Now()

	payload := shared.Clone()
	payload.Set(model.FieldMailTo, recipient)

	result, err := d.post(ctx, recipient, payload)
	if err != nil {
		d.logger.ErrorContext(ctx, "failed to send notification via email",
			"recipient", recipient,
			"error", err)
		metrics.EmitDelivery(d.metrics, metrics.DeliveryMetric{
			Recipient: recipient,
			Result:    metrics.ResultError,
			Duration:  time.Since(start),
			Err:       err,
		})
		failure := model.DeliveryFailure{Recipient: recipient, Reason: err.Error(), Err: err}
		d.reportFailure(ctx, failure)
		return deliveryOutcome{failure: &failure}
	}

	metrics.EmitDelivery(d.metrics, metrics.DeliveryMetric{
		Recipient: recipient,
		Result:    metrics.ResultSuccess,
		Duration:  time.Since(start),
	})
	return deliveryOutcome{result: result}
}

// reportFailure hands the failure to the observer off the delivery path.
// The observer outlives the request context; it applies its own timeout.
func (d *Dispatcher) reportFailure(ctx context.Context, failure model.DeliveryFailure) {
	if d.observer == nil {
		return
	}
	alertCtx := context.WithoutCancel(ctx)
	d.alerts.Add(1)
	go func() {
		defer d.alerts.Done()
		d.observer.DeliveryFailed(alertCtx, failure)
	}()
}

// Wait blocks until every pending failure report has been handed to the observer.
func (d *Dispatcher) Wait() {
	d.alerts.Wait()
}

func (d *Dispatcher) post(ctx context.Context, recipient string, payload *model.MultipartPayload) (model.DeliveryResult, error) {
	resp, err := d.gateway.PostMultipart(ctx, d.cfg.GatewayURL, model.ContentTypeMultipartForm, payload)
	if err != nil {
		return model.DeliveryResult{}, err
	}
	if first, ok := resp.FirstError(); ok {
		return model.DeliveryResult{}, &DeliveryError{
			Recipient: recipient,
			Code:      first.ErrorCode,
			Message:   first.Message,
		}
	}
	return resp.DecodeResult()
}
