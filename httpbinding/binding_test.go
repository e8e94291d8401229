package httpbinding

import (
	"errors"
	"testing"

	"github.com/unison-codegen/smithygen/model"
)

func member(name string, traits model.Traits) model.Member {
	if traits == nil {
		traits = model.Traits{}
	}
	return model.Member{Name: name, Target: "smithy.api#String", Traits: traits}
}

func TestClassifyPartition(t *testing.T) {
	structure := &model.Shape{
		ID:   "com.example#PutObjectInput",
		Type: model.TypeStructure,
		Members: []model.Member{
			member("bucket", model.Traits{model.TraitHTTPLabel: map[string]any{}}),
			member("key", model.Traits{model.TraitHTTPLabel: map[string]any{}}),
			member("versionId", model.Traits{model.TraitHTTPQuery: "versionId"}),
			member("contentType", model.Traits{model.TraitHTTPHeader: "Content-Type"}),
			member("metadata", model.Traits{model.TraitHTTPPrefixHeaders: "x-amz-meta-"}),
			member("body", model.Traits{model.TraitHTTPPayload: map[string]any{}}),
			member("comment", nil),
		},
	}

	set, err := Classify(structure)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	if set.Len() != len(structure.Members) {
		t.Errorf("bucket union has %d members, structure has %d", set.Len(), len(structure.Members))
	}
	if len(set.Label) != 2 || set.Label[0].Name != "bucket" || set.Label[1].Name != "key" {
		t.Errorf("labels = %v", names(set.Label))
	}
	if len(set.Query) != 1 || set.Query[0].Name != "versionId" {
		t.Errorf("query = %v", names(set.Query))
	}
	if len(set.Header) != 1 || set.Header[0].Name != "contentType" {
		t.Errorf("header = %v", names(set.Header))
	}
	if set.PrefixHeaders == nil || set.PrefixHeaders.Name != "metadata" {
		t.Errorf("prefixHeaders = %v", set.PrefixHeaders)
	}
	if set.Payload == nil || set.Payload.Name != "body" {
		t.Errorf("payload = %v", set.Payload)
	}
	if len(set.Body) != 1 || set.Body[0].Name != "comment" {
		t.Errorf("body = %v", names(set.Body))
	}
}

func TestClassifyConflicts(t *testing.T) {
	tests := []struct {
		name  string
		trait model.ShapeID
		value any
	}{
		{"duplicate payload", model.TraitHTTPPayload, map[string]any{}},
		{"duplicate prefix headers", model.TraitHTTPPrefixHeaders, "x-meta-"},
		{"duplicate response code", model.TraitHTTPResponseCode, map[string]any{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			structure := &model.Shape{
				ID:   "com.example#Bad",
				Type: model.TypeStructure,
				Members: []model.Member{
					member("first", model.Traits{tt.trait: tt.value}),
					member("second", model.Traits{tt.trait: tt.value}),
				},
			}
			_, err := Classify(structure)
			var me *model.ModelError
			if !errors.As(err, &me) {
				t.Fatalf("expected ModelError, got %v", err)
			}
			if me.Shape != "com.example#Bad" {
				t.Errorf("error names shape %q", me.Shape)
			}
		})
	}
}

func TestWireNameDefaults(t *testing.T) {
	q := member("cursor", model.Traits{model.TraitHTTPQuery: ""})
	if got := QueryName(&q); got != "cursor" {
		t.Errorf("QueryName default = %q", got)
	}
	q2 := member("cursor", model.Traits{model.TraitHTTPQuery: "next-token"})
	if got := QueryName(&q2); got != "next-token" {
		t.Errorf("QueryName override = %q", got)
	}
	h := member("etag", model.Traits{model.TraitHTTPHeader: ""})
	if got := HeaderName(&h); got != "etag" {
		t.Errorf("HeaderName default = %q", got)
	}
}

func names(members []*model.Member) []string {
	var out []string
	for _, m := range members {
		out = append(out, m.Name)
	}
	return out
}
