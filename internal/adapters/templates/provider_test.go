package templates

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	text  string
	found bool
	err   error
	calls int
}

func (s *stubSource) TemplateText(context.Context, string, string) (string, bool, error) {
	s.calls++
	return s.text, s.found, s.err
}

func TestRender(t *testing.T) {
	attrs := map[string]any{
		"fullName": "Jane Doe",
		"uin":      1234,
		"name.eng": "Jane",
		"missing":  nil,
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "braced", in: "Hello ${fullName}!", want: "Hello Jane Doe!"},
		{name: "bare", in: "UIN $uin ready", want: "UIN 1234 ready"},
		{name: "dotted braced", in: "Hi ${name.eng}", want: "Hi Jane"},
		{name: "unknown kept", in: "Dear $title", want: "Dear $title"},
		{name: "nil kept", in: "Value ${missing}", want: "Value ${missing}"},
		{name: "no placeholders", in: "plain text", want: "plain text"},
		{name: "dollar amount", in: "costs $5", want: "costs $5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.in, attrs))
		})
	}
}

func TestRender_NoAttributes(t *testing.T) {
	assert.Equal(t, "Hello ${fullName}", Render("Hello ${fullName}", nil))
}

func TestProvider_GetTemplate(t *testing.T) {
	src := &stubSource{text: "Hello $fullName", found: true}
	p, err := NewProvider(src)
	require.NoError(t, err)

	r, err := p.GetTemplate(context.Background(), "RPR_UIN_CARD_EMAIL", map[string]any{"fullName": "Jane"}, "eng")
	require.NoError(t, err)
	require.NotNil(t, r)
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Hello Jane", string(b))
}

func TestProvider_NotFoundReturnsNilReader(t *testing.T) {
	p, err := NewProvider(&stubSource{})
	require.NoError(t, err)

	r, err := p.GetTemplate(context.Background(), "missing", nil, "eng")
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestProvider_PropagatesSourceError(t *testing.T) {
	boom := errors.New("boom")
	p, err := NewProvider(&stubSource{err: boom})
	require.NoError(t, err)

	_, err = p.GetTemplate(context.Background(), "id", nil, "eng")
	require.ErrorIs(t, err, boom)
}

func TestNewProvider_RequiresSource(t *testing.T) {
	_, err := NewProvider(nil)
	require.Error(t, err)
}
