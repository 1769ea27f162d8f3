package notification

import "testing"

func TestLanguageCode(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"English":  "eng",
		"français": "fra",
		"Española": "spa",
		"Deutsch":  "",
		"english":  "",
		"":         "",
	}

	for name, want := range tests {
		if got, _ := LanguageCode(name); got != want {
			t.Fatalf("LanguageCode(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestTemplateLanguage(t *testing.T) {
	t.Parallel()

	if got := templateLanguage("fra", "eng"); got != "fra" {
		t.Fatalf("expected preferred language, got %q", got)
	}
	if got := templateLanguage("  ", "eng"); got != "eng" {
		t.Fatalf("expected primary language for blank preference, got %q", got)
	}
}

func TestPreferredLanguageWithoutAttributeName(t *testing.T) {
	t.Parallel()

	attrs := map[string]any{"": "français"}
	if got := preferredLanguage(attrs, ""); got != "" {
		t.Fatalf("expected no language when attribute name unset, got %q", got)
	}
}
