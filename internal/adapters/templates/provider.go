// Package templates resolves and renders notification templates.
package templates

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/target/print-notifier/internal/core"
)

// TextSource fetches raw template text. found is false when the template does
// not exist for the language.
type TextSource interface {
	TemplateText(ctx context.Context, templateID, languageCode string) (text string, found bool, err error)
}

// Provider renders templates from a TextSource with request attributes.
type Provider struct {
	source TextSource
}

var _ core.TemplateProvider = (*Provider)(nil)

// NewProvider wraps a text source.
func NewProvider(source TextSource) (*Provider, error) {
	if source == nil {
		return nil, errors.New("template text source is required")
	}
	return &Provider{source: source}, nil
}

// GetTemplate returns the rendered template, or a nil reader when it does not exist.
func (p *Provider) GetTemplate(
	ctx context.Context,
	templateID string,
	attributes map[string]any,
	languageCode string,
) (io.Reader, error) {
	text, found, err := p.source.TemplateText(ctx, templateID, languageCode)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return strings.NewReader(Render(text, attributes)), nil
}

// placeholderPattern matches ${name} and $name references.
var placeholderPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_.\-]*)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// Render substitutes ${name} and $name with attribute values. References to
// unknown or nil attributes are left untouched.
func Render(text string, attributes map[string]any) string {
	if len(attributes) == 0 || !strings.Contains(text, "$") {
		return text
	}
	return placeholderPattern.ReplaceAllStringFunc(text, func(ref string) string {
		m := placeholderPattern.FindStringSubmatch(ref)
		name := m[1]
		if name == "" {
			name = m[2]
		}
		v, ok := attributes[name]
		if !ok || v == nil {
			return ref
		}
		return fmt.Sprint(v)
	})
}
