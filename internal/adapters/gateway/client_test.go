package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/target/print-notifier/internal/domain/model"
)

type receivedPart struct {
	name   string
	header textproto.MIMEHeader
	body   string
}

func readParts(t *testing.T, r *http.Request) []receivedPart {
	t.Helper()
	mr, err := r.MultipartReader()
	require.NoError(t, err)

	var parts []receivedPart
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		b, err := io.ReadAll(p)
		require.NoError(t, err)
		parts = append(parts, receivedPart{name: p.FormName(), header: p.Header, body: string(b)})
	}
	return parts
}

func samplePayload() *model.MultipartPayload {
	p := model.NewMultipartPayload()
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", "form-data; name=attachments; filename=card.pdf")
	header.Set("Content-Type", "application/pdf")
	p.AddFile(model.FieldAttachments, header, []byte("%PDF"))
	p.Add(model.FieldMailContent, "body")
	p.Add(model.FieldMailSubject, "subject")
	p.Set(model.FieldMailTo, "jane@example.com")
	return p
}

func TestPostMultipart_EncodesPartsInOrder(t *testing.T) {
	var parts []receivedPart
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data; boundary="))
		requestID = r.Header.Get(RequestIDHeader)
		parts = readParts(t, r)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"mosip.notifier","response":{"status":"success","message":"Email request submitted"},"errors":null}`)
	}))
	defer srv.Close()

	client := NewClient(Config{})
	resp, err := client.PostMultipart(context.Background(), srv.URL, model.ContentTypeMultipartForm, samplePayload())
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.False(t, resp.HasErrors())

	result, err := resp.DecodeResult()
	require.NoError(t, err)
	assert.Equal(t, "success", result.Status)

	assert.NotEmpty(t, requestID)
	require.Len(t, parts, 4)
	assert.Equal(t, model.FieldAttachments, parts[0].name)
	assert.Equal(t, "application/pdf", parts[0].header.Get("Content-Type"))
	assert.Equal(t, "%PDF", parts[0].body)
	assert.Equal(t, model.FieldMailContent, parts[1].name)
	assert.Equal(t, "subject", parts[2].body)
	assert.Equal(t, model.FieldMailTo, parts[3].name)
	assert.Equal(t, "jane@example.com", parts[3].body)
}

func TestPostMultipart_StructuredErrorOnNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(model.GatewayResponse{
			Errors: []model.ServiceError{{ErrorCode: "KER-NOE-001", Message: "invalid email id"}},
		})
	}))
	defer srv.Close()

	resp, err := NewClient(Config{}).PostMultipart(context.Background(), srv.URL, "", samplePayload())
	require.NoError(t, err)
	first, ok := resp.FirstError()
	require.True(t, ok)
	assert.Equal(t, "invalid email id", first.Message)
}

func TestPostMultipart_UnstructuredFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	resp, err := NewClient(Config{}).PostMultipart(context.Background(), srv.URL, "", samplePayload())
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream down")
}

func TestPostMultipart_EmptySuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	resp, err := NewClient(Config{}).PostMultipart(context.Background(), srv.URL, "", samplePayload())
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestPostMultipart_RejectsForeignContentType(t *testing.T) {
	_, err := NewClient(Config{}).PostMultipart(context.Background(), "http://127.0.0.1:1", "application/json", samplePayload())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported gateway content type")
}

func TestPostMultipart_AttachesClientCredentialsToken(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"tok-123","token_type":"Bearer","expires_in":3600}`)
	}))
	defer tokenSrv.Close()

	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = io.WriteString(w, `{"response":{"status":"success"}}`)
	}))
	defer srv.Close()

	client := NewClient(Config{Auth: AuthConfig{
		TokenURL:     tokenSrv.URL,
		ClientID:     "print-notifier",
		ClientSecret: "secret",
	}})
	_, err := client.PostMultipart(context.Background(), srv.URL, model.ContentTypeMultipartForm, samplePayload())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", auth)
}

func TestPostMultipart_NilPayload(t *testing.T) {
	_, err := NewClient(Config{}).PostMultipart(context.Background(), "http://127.0.0.1:1", "", nil)
	require.Error(t, err)
}
