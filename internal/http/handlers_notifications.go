package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/target/print-notifier/internal/domain/model"
	apperrors "github.com/target/print-notifier/internal/errors"
	"github.com/target/print-notifier/internal/service/notification"
)

// Form fields accepted by the email notification endpoint.
const (
	formRecipients      = "recipients"
	formFileName        = "fileName"
	formContentTemplate = "contentTemplate"
	formSubjectTemplate = "subjectTemplate"
	formAttributes      = "attributes"
	formAttachment      = "attachment"
)

const (
	envelopeID      = "print-notifier.notifications.email"
	envelopeVersion = "v1"
	formMemoryBytes = 8 << 20
)

// NotificationDispatcher is the service behind the email endpoint.
type NotificationDispatcher interface {
	DispatchWithReport(ctx context.Context, req model.DispatchRequest) (*model.DispatchReport, error)
}

// Envelope wraps every notification API response.
type Envelope struct {
	ID           string               `json:"id"`
	Version      string               `json:"version"`
	ResponseTime string               `json:"responsetime"`
	Response     any                  `json:"response"`
	Errors       []model.ServiceError `json:"errors"`
}

// NotificationHandlers serves the notification endpoints.
type NotificationHandlers struct {
	Svc             NotificationDispatcher
	DatetimePattern string
	MaxRequestBytes int64
	Now             func() time.Time
	Logger          *slog.Logger
}

// SendEmail parses a multipart request and dispatches it. Per-recipient
// failures are reported in the response body with status 200.
func (h *NotificationHandlers) SendEmail(w http.ResponseWriter, r *http.Request) {
	if h.MaxRequestBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.MaxRequestBytes)
	}

	req, err := parseDispatchRequest(r)
	if err != nil {
		h.writeFailure(w, err)
		return
	}

	report, err := h.Svc.DispatchWithReport(r.Context(), req)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "email notification dispatch failed", "error", err)
		h.writeFailure(w, classifyDispatchError(err))
		return
	}

	WriteJSON(w, http.StatusOK, h.envelope(report, nil))
}

func (h *NotificationHandlers) writeFailure(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	if code == "" {
		code = apperrors.ErrCodeInternal
	}
	WriteJSON(w, apperrors.HTTPStatus(err), h.envelope(nil, []model.ServiceError{{
		ErrorCode: string(code),
		Message:   err.Error(),
	}}))
}

func (h *NotificationHandlers) envelope(response any, errs []model.ServiceError) Envelope {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	layout := h.DatetimePattern
	if layout == "" {
		layout = time.RFC3339
	}
	return Envelope{
		ID:           envelopeID,
		Version:      envelopeVersion,
		ResponseTime: now().UTC().Format(layout),
		Response:     response,
		Errors:       errs,
	}
}

func (h *NotificationHandlers) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

func classifyDispatchError(err error) error {
	var resErr *notification.ResolutionError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.Wrap(err, apperrors.ErrCodeTimeout, "notification dispatch timed out")
	case errors.Is(err, context.Canceled):
		return apperrors.Wrap(err, apperrors.ErrCodeCanceled, "notification dispatch canceled")
	case errors.As(err, &resErr):
		return apperrors.Wrap(err, apperrors.ErrCodeUpstream, "failed to resolve notification template")
	default:
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "notification dispatch failed")
	}
}

func parseDispatchRequest(r *http.Request) (model.DispatchRequest, error) {
	if err := r.ParseMultipartForm(formMemoryBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			return model.DispatchRequest{}, apperrors.Wrap(err, apperrors.ErrCodeTooLarge, "request body too large")
		}
		return model.DispatchRequest{}, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid multipart form")
	}

	form := r.MultipartForm
	req := model.DispatchRequest{
		Recipients:      formRecipientList(form.Value[formRecipients]),
		ContentTemplate: strings.TrimSpace(r.FormValue(formContentTemplate)),
		SubjectTemplate: strings.TrimSpace(r.FormValue(formSubjectTemplate)),
	}

	if raw := strings.TrimSpace(r.FormValue(formAttributes)); raw != "" {
		attrs, err := decodeAttributes(raw)
		if err != nil {
			return model.DispatchRequest{}, err
		}
		req.Attributes = attrs
	}

	attachment, err := readAttachment(form, strings.TrimSpace(r.FormValue(formFileName)))
	if err != nil {
		return model.DispatchRequest{}, err
	}
	req.Attachment = attachment

	if err := req.Validate(); err != nil {
		return model.DispatchRequest{}, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid notification request")
	}
	return req, nil
}

// formRecipientList keeps order and duplicates; each value may hold a
// comma-separated list.
func formRecipientList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, addr := range strings.Split(v, ",") {
			if addr = strings.TrimSpace(addr); addr != "" {
				out = append(out, addr)
			}
		}
	}
	return out
}

func decodeAttributes(raw string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var attrs map[string]any
	if err := dec.Decode(&attrs); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "attributes must be a JSON object")
	}
	return attrs, nil
}

func readAttachment(form *multipart.Form, fileName string) (*model.Attachment, error) {
	files := form.File[formAttachment]
	if len(files) == 0 {
		return nil, nil
	}
	if len(files) > 1 {
		return nil, apperrors.ValidationField(formAttachment, "only one attachment is supported")
	}

	fh := files[0]
	f, err := fh.Open()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "open attachment")
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "read attachment")
	}

	if fileName == "" {
		fileName = strings.TrimSuffix(filepath.Base(fh.Filename), filepath.Ext(fh.Filename))
	}
	if fileName == "" {
		return nil, apperrors.ValidationField(formFileName, fmt.Sprintf("%s is required with an attachment", formFileName))
	}
	return &model.Attachment{Data: data, FileName: fileName}, nil
}
