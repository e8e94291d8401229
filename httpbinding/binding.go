// Package httpbinding partitions a structure's members into their HTTP
// binding roles. Every member lands in exactly one bucket; the payload,
// prefix-headers and response-code buckets hold at most one member each.
package httpbinding

import (
	"github.com/unison-codegen/smithygen/model"
)

// BindingSet is the classification of one structure's members. Slices keep
// the model's declared member order.
type BindingSet struct {
	Label         []*model.Member
	Query         []*model.Member
	Header        []*model.Member
	PrefixHeaders *model.Member
	Payload       *model.Member
	ResponseCode  *model.Member
	Body          []*model.Member
}

// Classify assigns each member of the structure to a binding bucket in a
// single pass. A second claim on payload, prefixHeaders or responseCode is a
// model defect and fails with a ModelError; the classifier never resolves the
// conflict by keeping the last claimant.
func Classify(structure *model.Shape) (*BindingSet, error) {
	set := &BindingSet{}
	for i := range structure.Members {
		member := &structure.Members[i]
		switch {
		case member.Traits.Has(model.TraitHTTPLabel):
			set.Label = append(set.Label, member)
		case member.Traits.Has(model.TraitHTTPQuery), member.Traits.Has(model.TraitHTTPQueryParams):
			set.Query = append(set.Query, member)
		case member.Traits.Has(model.TraitHTTPHeader):
			set.Header = append(set.Header, member)
		case member.Traits.Has(model.TraitHTTPPrefixHeaders):
			if set.PrefixHeaders != nil {
				return nil, conflict(structure, set.PrefixHeaders, member, "httpPrefixHeaders")
			}
			set.PrefixHeaders = member
		case member.Traits.Has(model.TraitHTTPPayload):
			if set.Payload != nil {
				return nil, conflict(structure, set.Payload, member, "httpPayload")
			}
			set.Payload = member
		case member.Traits.Has(model.TraitHTTPResponseCode):
			if set.ResponseCode != nil {
				return nil, conflict(structure, set.ResponseCode, member, "httpResponseCode")
			}
			set.ResponseCode = member
		default:
			set.Body = append(set.Body, member)
		}
	}
	return set, nil
}

func conflict(structure *model.Shape, first, second *model.Member, trait string) error {
	return &model.ModelError{
		Shape:  structure.ID,
		Reason: "members " + first.Name + " and " + second.Name + " both claim @" + trait,
	}
}

// Len returns the total number of classified members.
func (s *BindingSet) Len() int {
	n := len(s.Label) + len(s.Query) + len(s.Header) + len(s.Body)
	if s.PrefixHeaders != nil {
		n++
	}
	if s.Payload != nil {
		n++
	}
	if s.ResponseCode != nil {
		n++
	}
	return n
}

// HasResponseBindings reports whether the set binds headers or the response
// status code, which forces field-by-field response assembly.
func (s *BindingSet) HasResponseBindings() bool {
	return len(s.Header) > 0 || s.ResponseCode != nil
}

// QueryName returns the wire name of a query-bound member: the trait value,
// or the member's own name when the trait carries no override.
func QueryName(member *model.Member) string {
	if v := member.Traits.String(model.TraitHTTPQuery); v != "" {
		return v
	}
	return member.Name
}

// HeaderName returns the wire name of a header-bound member, defaulting to
// the member's own name.
func HeaderName(member *model.Member) string {
	if v := member.Traits.String(model.TraitHTTPHeader); v != "" {
		return v
	}
	return member.Name
}

// HeaderPrefix returns the prefix of a prefix-headers member, or "".
func HeaderPrefix(member *model.Member) string {
	return member.Traits.String(model.TraitHTTPPrefixHeaders)
}
