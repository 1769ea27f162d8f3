package notification

import "strings"

// languageCodes maps the display names users pick to template language codes.
// Built once at init and never mutated.
var languageCodes = map[string]string{
	"English":  "eng",
	"français": "fra",
	"Española": "spa",
}

// LanguageCode returns the code for a display name. Unknown names yield "".
func LanguageCode(displayName string) (string, bool) {
	code, ok := languageCodes[displayName]
	return code, ok
}

// preferredLanguage reads the preferred language display name from attributes
// and maps it to a code. Missing, non-string or unmapped values yield "".
func preferredLanguage(attributes map[string]any, attribute string) string {
	if attribute == "" || attributes == nil {
		return ""
	}
	name, ok := attributes[attribute].(string)
	if !ok {
		return ""
	}
	code, _ := LanguageCode(name)
	return code
}

// templateLanguage picks the language passed to the template provider.
func templateLanguage(preferred, primary string) string {
	if strings.TrimSpace(preferred) == "" {
		return primary
	}
	return preferred
}
