package protocol

import (
	"regexp"
	"strings"
)

var uriPlaceholderPattern = regexp.MustCompile(`\{([^}]+)\}`)

// URITemplate is a parsed @http URI pattern like "/{Bucket}/{Key+}".
type URITemplate struct {
	template     string
	placeholders []string
}

// ParseURITemplate extracts the placeholder names in order of appearance.
// Greedy markers ("+") are stripped from the returned names.
func ParseURITemplate(template string) *URITemplate {
	t := &URITemplate{template: template}
	for _, m := range uriPlaceholderPattern.FindAllStringSubmatch(template, -1) {
		t.placeholders = append(t.placeholders, strings.TrimSuffix(m[1], "+"))
	}
	return t
}

// Template returns the original template string.
func (t *URITemplate) Template() string { return t.template }

// Placeholders returns the placeholder names in order of appearance, nil for
// a template without placeholders.
func (t *URITemplate) Placeholders() []string {
	if len(t.placeholders) == 0 {
		return nil
	}
	out := make([]string, len(t.placeholders))
	copy(out, t.placeholders)
	return out
}

// HasPlaceholders reports whether the template contains any placeholder.
func (t *URITemplate) HasPlaceholders() bool { return len(t.placeholders) > 0 }

// IsGreedy reports whether the placeholder spans multiple path segments, in
// which case slashes must not be URL-encoded during substitution.
func (t *URITemplate) IsGreedy(placeholder string) bool {
	return strings.Contains(t.template, "{"+placeholder+"+}")
}
