package protocol

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseURITemplate(t *testing.T) {
	tests := []struct {
		template     string
		placeholders []string
		greedy       map[string]bool
	}{
		{"/", nil, nil},
		{"/items/{id}", []string{"id"}, map[string]bool{"id": false}},
		{"/{Bucket}/{Key+}", []string{"Bucket", "Key"}, map[string]bool{"Bucket": false, "Key": true}},
	}
	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			tmpl := ParseURITemplate(tt.template)
			if diff := cmp.Diff(tt.placeholders, tmpl.Placeholders()); diff != "" {
				t.Errorf("placeholders differ:\n%s", diff)
			}
			for name, want := range tt.greedy {
				if got := tmpl.IsGreedy(name); got != want {
					t.Errorf("IsGreedy(%s) = %v, want %v", name, got, want)
				}
			}
			if tmpl.HasPlaceholders() != (len(tt.placeholders) > 0) {
				t.Errorf("HasPlaceholders = %v", tmpl.HasPlaceholders())
			}
		})
	}
}
