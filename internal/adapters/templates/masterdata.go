package templates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"
)

// DefaultTextQuery extracts the template body from a masterdata response.
const DefaultTextQuery = "response.templates[0].fileText"

// MasterdataConfig configures the HTTP template source.
type MasterdataConfig struct {
	// BaseURL is the templates endpoint; requests go to {BaseURL}/{lang}/{templateID}.
	BaseURL string
	// TextQuery is a JMESPath expression selecting the template text.
	TextQuery string
	Timeout   time.Duration
	Client    *http.Client
	Logger    *slog.Logger
}

// MasterdataSource fetches template text from the masterdata service.
type MasterdataSource struct {
	baseURL string
	query   string
	client  *http.Client
	logger  *slog.Logger
}

var _ TextSource = (*MasterdataSource)(nil)

// NewMasterdataSource validates the config and compiles the text query.
func NewMasterdataSource(cfg MasterdataConfig) (*MasterdataSource, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("templates base url is required")
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid templates base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid templates base url scheme: %s", u.Scheme)
	}

	query := strings.TrimSpace(cfg.TextQuery)
	if query == "" {
		query = DefaultTextQuery
	}
	if _, err := jmespath.Compile(query); err != nil {
		return nil, fmt.Errorf("invalid template text query: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &MasterdataSource{
		baseURL: base,
		query:   query,
		client:  hc,
		logger:  logger.With("component", "masterdata_templates"),
	}, nil
}

// TemplateText fetches the template. A 404 or an empty query result means the
// template does not exist.
func (s *MasterdataSource) TemplateText(ctx context.Context, templateID, languageCode string) (string, bool, error) {
	endpoint, err := url.JoinPath(s.baseURL, languageCode, templateID)
	if err != nil {
		return "", false, fmt.Errorf("build template url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", false, fmt.Errorf("create template request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("template request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			s.logger.DebugContext(ctx, "close template response body", "error", cerr)
		}
	}()

	if resp.StatusCode == http.StatusNotFound {
		return "", false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", false, fmt.Errorf("templates api %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var doc any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return "", false, fmt.Errorf("decode template response: %w", err)
	}

	return s.extract(doc)
}

func (s *MasterdataSource) extract(doc any) (string, bool, error) {
	res, err := jmespath.Search(s.query, doc)
	if err != nil {
		return "", false, fmt.Errorf("evaluate template text query: %w", err)
	}
	switch v := res.(type) {
	case nil:
		return "", false, nil
	case string:
		if v == "" {
			return "", false, nil
		}
		return v, true, nil
	default:
		return "", false, fmt.Errorf("template text query returned %T, want string", res)
	}
}
