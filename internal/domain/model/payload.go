package model

import (
	"maps"
	"net/textproto"
)

// Multipart field names understood by the notification gateway.
const (
	FieldAttachments = "attachments"
	FieldMailContent = "mailContent"
	FieldMailSubject = "mailSubject"
	FieldMailTo      = "mailTo"
)

// ContentTypeMultipartForm is the content type used for gateway submissions.
const ContentTypeMultipartForm = "multipart/form-data"

// Part is a single entry of a multipart payload. File parts carry their own
// headers and raw data; text parts carry Value only.
type Part struct {
	Name   string
	Value  string
	Header textproto.MIMEHeader
	Data   []byte
}

// IsFile reports whether the part is a file part with explicit headers.
func (p Part) IsFile() bool {
	return p.Header != nil
}

// MultipartPayload is an ordered set of named parts.
type MultipartPayload struct {
	parts []Part
}

// NewMultipartPayload returns an empty payload.
func NewMultipartPayload() *MultipartPayload {
	return &MultipartPayload{}
}

// Add appends a text field.
func (p *MultipartPayload) Add(name, value string) {
	p.parts = append(p.parts, Part{Name: name, Value: value})
}

// AddFile appends a file part. The data slice is shared, never copied.
func (p *MultipartPayload) AddFile(name string, header textproto.MIMEHeader, data []byte) {
	p.parts = append(p.parts, Part{Name: name, Header: header, Data: data})
}

// Set replaces every text field named name with a single value, or appends it.
func (p *MultipartPayload) Set(name, value string) {
	out := p.parts[:0:0]
	replaced := false
	for _, part := range p.parts {
		if part.Name != name || part.IsFile() {
			out = append(out, part)
			continue
		}
		if !replaced {
			out = append(out, Part{Name: name, Value: value})
			replaced = true
		}
	}
	if !replaced {
		out = append(out, Part{Name: name, Value: value})
	}
	p.parts = out
}

// Get returns the first text value stored under name.
func (p *MultipartPayload) Get(name string) (string, bool) {
	for _, part := range p.parts {
		if part.Name == name && !part.IsFile() {
			return part.Value, true
		}
	}
	return "", false
}

// File returns the first file part stored under name.
func (p *MultipartPayload) File(name string) (Part, bool) {
	for _, part := range p.parts {
		if part.Name == name && part.IsFile() {
			return part, true
		}
	}
	return Part{}, false
}

// Parts returns the parts in insertion order.
func (p *MultipartPayload) Parts() []Part {
	return append([]Part(nil), p.parts...)
}

// Len returns the number of parts.
func (p *MultipartPayload) Len() int {
	return len(p.parts)
}

// Clone returns an independent copy. Headers are copied; file data is shared
// because it is never mutated after construction.
func (p *MultipartPayload) Clone() *MultipartPayload {
	cp := &MultipartPayload{parts: make([]Part, len(p.parts))}
	for i, part := range p.parts {
		if part.Header != nil {
			part.Header = maps.Clone(part.Header)
		}
		cp.parts[i] = part
	}
	return cp
}
