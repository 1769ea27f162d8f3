package model

import (
	"errors"
	"strings"
)

// Attachment is the document attached identically to every recipient's payload.
type Attachment struct {
	// Data holds the raw document bytes. A nil slice means no attachment.
	Data []byte
	// FileName is the logical name without extension; ".pdf" is appended on send.
	FileName string
}

// DispatchRequest describes one notification batch.
type DispatchRequest struct {
	// Recipients is delivered in order. Duplicates are kept.
	Recipients      []string
	Attachment      *Attachment
	ContentTemplate string
	SubjectTemplate string
	// Attributes feed template substitution and preferred language lookup.
	Attributes map[string]any
}

// Validate checks the request carries the template identifiers.
func (r *DispatchRequest) Validate() error {
	if r == nil {
		return errors.New("dispatch request is required")
	}
	if strings.TrimSpace(r.ContentTemplate) == "" {
		return errors.New("content template is required")
	}
	if strings.TrimSpace(r.SubjectTemplate) == "" {
		return errors.New("subject template is required")
	}
	return nil
}

// HasAttachment reports whether attachment bytes were supplied.
func (r *DispatchRequest) HasAttachment() bool {
	return r != nil && r.Attachment != nil && r.Attachment.Data != nil
}

// ResolvedContent is the rendered subject and body shared by every recipient.
type ResolvedContent struct {
	Subject string
	Body    string
}

// DeliveryResult is the gateway's acknowledgement for one recipient.
type DeliveryResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// DeliveryFailure records a recipient whose delivery did not succeed.
type DeliveryFailure struct {
	Recipient string `json:"recipient"`
	Reason    string `json:"reason"`
	Err       error  `json:"-"`
}

// DispatchReport pairs successful deliveries with the failed recipients.
type DispatchReport struct {
	Results  []DeliveryResult  `json:"results"`
	Failures []DeliveryFailure `json:"failures"`
}

// Sent returns the number of recipients that were delivered.
func (r *DispatchReport) Sent() int {
	if r == nil {
		return 0
	}
	return len(r.Results)
}

// Failed returns the number of recipients that failed.
func (r *DispatchReport) Failed() int {
	if r == nil {
		return 0
	}
	return len(r.Failures)
}
