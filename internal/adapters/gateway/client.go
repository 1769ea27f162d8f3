// Package gateway submits multipart email requests to the notification gateway.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/target/print-notifier/internal/core"
	"github.com/target/print-notifier/internal/domain/model"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// RequestIDHeader carries a per-call correlation id to the gateway.
const RequestIDHeader = "X-Request-ID"

const maxResponseBytes = 1 << 20

// AuthConfig enables OAuth2 client-credentials tokens for gateway calls.
type AuthConfig struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
}

// Enabled reports whether enough settings are present to fetch tokens.
func (a AuthConfig) Enabled() bool {
	return strings.TrimSpace(a.TokenURL) != "" && strings.TrimSpace(a.ClientID) != ""
}

// Config captures runtime configuration for the gateway client.
type Config struct {
	Timeout time.Duration
	Auth    AuthConfig
	Client  *http.Client
	Logger  *slog.Logger
}

// Client posts multipart payloads and decodes the gateway response envelope.
type Client struct {
	client *http.Client
	logger *slog.Logger
}

var _ core.DeliveryGateway = (*Client)(nil)

// NewClient builds a gateway client. When auth is enabled the returned client
// attaches a bearer token obtained with the client-credentials grant.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	if cfg.Auth.Enabled() {
		cc := clientcredentials.Config{
			ClientID:     cfg.Auth.ClientID,
			ClientSecret: cfg.Auth.ClientSecret,
			TokenURL:     cfg.Auth.TokenURL,
			Scopes:       cfg.Auth.Scopes,
		}
		// The token source uses hc for token fetches; the wrapping client keeps hc's timeout.
		tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, hc)
		hc = &http.Client{
			Timeout: hc.Timeout,
			Transport: &oauth2.Transport{
				Source: cc.TokenSource(tokenCtx),
				Base:   hc.Transport,
			},
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		client: hc,
		logger: logger.With("component", "notification_gateway"),
	}
}

// PostMultipart encodes payload as multipart/form-data and posts it to url.
// A response body carrying the envelope is decoded even on non-2xx status so
// structured errors reach the caller; any other failure is returned as error.
func (c *Client) PostMultipart(
	ctx context.Context,
	url, contentType string,
	payload *model.MultipartPayload,
) (*model.GatewayResponse, error) {
	if payload == nil {
		return nil, errors.New("gateway payload is required")
	}

	body, boundaryType, err := encodeMultipart(payload)
	if err != nil {
		return nil, err
	}
	if ct := strings.TrimSpace(contentType); ct != "" && !strings.HasPrefix(boundaryType, ct) {
		return nil, fmt.Errorf("unsupported gateway content type %q", ct)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("create gateway request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", boundaryType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway request failed: %w", err)
	}

	return c.readResponse(ctx, resp, requestID)
}

// encodeMultipart writes every part in order. File parts keep their own
// headers; text parts become plain form fields.
func encodeMultipart(payload *model.MultipartPayload) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, part := range payload.Parts() {
		if part.IsFile() {
			pw, err := w.CreatePart(part.Header)
			if err != nil {
				return nil, "", fmt.Errorf("create part %s: %w", part.Name, err)
			}
			if _, err := pw.Write(part.Data); err != nil {
				return nil, "", fmt.Errorf("write part %s: %w", part.Name, err)
			}
			continue
		}
		if err := w.WriteField(part.Name, part.Value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", part.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func (c *Client) readResponse(ctx context.Context, resp *http.Response, requestID string) (*model.GatewayResponse, error) {
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if closeErr := resp.Body.Close(); closeErr != nil {
		c.logger.DebugContext(ctx, "close gateway response body", "error", closeErr)
	}
	if readErr != nil {
		return nil, fmt.Errorf("read gateway response: %w", readErr)
	}

	var envelope model.GatewayResponse
	decodeErr := json.Unmarshal(raw, &envelope)
	success := resp.StatusCode >= 200 && resp.StatusCode < 300

	switch {
	case success && len(bytes.TrimSpace(raw)) == 0:
		return nil, nil
	case success && decodeErr != nil:
		return nil, fmt.Errorf("decode gateway response: %w", decodeErr)
	case success:
		return &envelope, nil
	case decodeErr == nil && envelope.HasErrors():
		c.logger.DebugContext(ctx, "gateway rejected request",
			"status", resp.StatusCode,
			"request_id", requestID)
		return &envelope, nil
	default:
		return nil, fmt.Errorf("gateway %s: %s", resp.Status, strings.TrimSpace(string(raw)))
	}
}
