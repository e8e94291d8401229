package model

// Core Smithy trait ids the generator reads. Protocol-family trait ids live
// in the protocol package next to the generators that own them.
const (
	TraitHTTP              ShapeID = "smithy.api#http"
	TraitHTTPLabel         ShapeID = "smithy.api#httpLabel"
	TraitHTTPQuery         ShapeID = "smithy.api#httpQuery"
	TraitHTTPQueryParams   ShapeID = "smithy.api#httpQueryParams"
	TraitHTTPHeader        ShapeID = "smithy.api#httpHeader"
	TraitHTTPPrefixHeaders ShapeID = "smithy.api#httpPrefixHeaders"
	TraitHTTPPayload       ShapeID = "smithy.api#httpPayload"
	TraitHTTPResponseCode  ShapeID = "smithy.api#httpResponseCode"
	TraitRequired          ShapeID = "smithy.api#required"
	TraitDefault           ShapeID = "smithy.api#default"
	TraitError             ShapeID = "smithy.api#error"
	TraitEnum              ShapeID = "smithy.api#enum"
	TraitEnumValue         ShapeID = "smithy.api#enumValue"
	TraitStreaming         ShapeID = "smithy.api#streaming"
	TraitDocumentation     ShapeID = "smithy.api#documentation"
	TraitPaginated         ShapeID = "smithy.api#paginated"

	TraitAwsService ShapeID = "aws.api#service"
	TraitSigV4      ShapeID = "aws.auth#sigv4"
)

// Traits is the declarative metadata attached to a shape or member, keyed by
// trait shape id. Values hold the decoded JSON trait node.
type Traits map[ShapeID]any

// Has reports whether the trait is present.
func (t Traits) Has(id ShapeID) bool {
	_, ok := t[id]
	return ok
}

// Get returns the raw trait node.
func (t Traits) Get(id ShapeID) (any, bool) {
	v, ok := t[id]
	return v, ok
}

// String returns the trait node as a string, or "" when absent or not
// string-valued.
func (t Traits) String(id ShapeID) string {
	if v, ok := t[id].(string); ok {
		return v
	}
	return ""
}

// Object returns the trait node as a JSON object, or nil.
func (t Traits) Object(id ShapeID) map[string]any {
	if v, ok := t[id].(map[string]any); ok {
		return v
	}
	return nil
}

// HTTPTrait is the decoded smithy.api#http trait of an operation.
type HTTPTrait struct {
	Method string
	URI    string
	Code   int
}

// HTTPTrait decodes the shape's @http trait. The second return is false when
// the trait is absent.
func (s *Shape) HTTPTrait() (HTTPTrait, bool) {
	node := s.Traits.Object(TraitHTTP)
	if node == nil {
		return HTTPTrait{}, false
	}
	ht := HTTPTrait{Code: 200}
	if m, ok := node["method"].(string); ok {
		ht.Method = m
	}
	if u, ok := node["uri"].(string); ok {
		ht.URI = u
	}
	if c, ok := node["code"].(float64); ok {
		ht.Code = int(c)
	}
	return ht, true
}
