package protocol

import "github.com/unison-codegen/smithygen/model"

// Protocol trait ids, owned here next to the generators that implement them.
const (
	TraitRestJSON1  model.ShapeID = "aws.protocols#restJson1"
	TraitAwsJSON1_1 model.ShapeID = "aws.protocols#awsJson1_1"
	TraitAwsJSON1_0 model.ShapeID = "aws.protocols#awsJson1_0"
	TraitRestXML    model.ShapeID = "aws.protocols#restXml"
	TraitAwsQuery   model.ShapeID = "aws.protocols#awsQuery"
	TraitEc2Query   model.ShapeID = "aws.protocols#ec2Query"
)

// registry lists every generator in detection priority order. The list is
// assembled statically; there is no runtime service discovery.
var registry = []Generator{
	&restJSONGenerator{},
	&awsJSONGenerator{trait: TraitAwsJSON1_1, version: "1.1"},
	&awsJSONGenerator{trait: TraitAwsJSON1_0, version: "1.0"},
	&restXMLGenerator{},
	&awsQueryGenerator{trait: TraitAwsQuery, name: "awsQuery"},
	&awsQueryGenerator{trait: TraitEc2Query, name: "ec2Query"},
}

// Generators returns the registered generators in detection priority order.
func Generators() []Generator {
	out := make([]Generator, len(registry))
	copy(out, registry)
	return out
}

// Detect selects the generator for a service. An explicit override (the
// settings' protocol field) wins; otherwise the service's protocol traits are
// scanned in registry order. No match is an UnsupportedProtocolError.
func Detect(service *model.Shape, override string) (Generator, error) {
	if override != "" {
		for _, g := range registry {
			if string(g.ID()) == override {
				return g, nil
			}
		}
		return nil, &UnsupportedProtocolError{Service: string(service.ID), Protocol: override}
	}
	for _, g := range registry {
		if g.AppliesTo(service) {
			return g, nil
		}
	}
	return nil, &UnsupportedProtocolError{Service: string(service.ID)}
}

// FullyImplemented reports whether the generator produces complete operation
// bodies. Only restXml does today; the rest emit selectable stubs.
func FullyImplemented(g Generator) bool {
	return g.ID() == TraitRestXML
}

// IsVendorService reports whether the service is an AWS-flavored service,
// which decides whether signing and credential plumbing is generated. Checks
// in priority order: the aws.api#service trait, the aws.auth#sigv4 trait, and
// finally any recognized protocol trait.
func IsVendorService(service *model.Shape) bool {
	if service.HasTrait(model.TraitAwsService) {
		return true
	}
	if service.HasTrait(model.TraitSigV4) {
		return true
	}
	for _, g := range registry {
		if g.AppliesTo(service) {
			return true
		}
	}
	return false
}
