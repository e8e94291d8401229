// Package model holds the immutable Smithy shape graph consumed by the
// generator: shapes, members, traits, operations and services, plus a loader
// for the Smithy JSON AST. The graph is loaded once per run and read-only
// thereafter.
package model

import (
	"fmt"
	"strings"
)

// ShapeType identifies the variant of a shape.
type ShapeType string

const (
	TypeStructure  ShapeType = "structure"
	TypeList       ShapeType = "list"
	TypeSet        ShapeType = "set"
	TypeMap        ShapeType = "map"
	TypeUnion      ShapeType = "union"
	TypeEnum       ShapeType = "enum"
	TypeIntEnum    ShapeType = "intEnum"
	TypeString     ShapeType = "string"
	TypeByte       ShapeType = "byte"
	TypeShort      ShapeType = "short"
	TypeInteger    ShapeType = "integer"
	TypeLong       ShapeType = "long"
	TypeBigInteger ShapeType = "bigInteger"
	TypeFloat      ShapeType = "float"
	TypeDouble     ShapeType = "double"
	TypeBigDecimal ShapeType = "bigDecimal"
	TypeBoolean    ShapeType = "boolean"
	TypeBlob       ShapeType = "blob"
	TypeTimestamp  ShapeType = "timestamp"
	TypeDocument   ShapeType = "document"
	TypeService    ShapeType = "service"
	TypeOperation  ShapeType = "operation"
	TypeResource   ShapeType = "resource"
)

// IsInteger reports whether the type belongs to the integer family.
func (t ShapeType) IsInteger() bool {
	switch t {
	case TypeByte, TypeShort, TypeInteger, TypeLong, TypeBigInteger:
		return true
	}
	return false
}

// IsFloat reports whether the type belongs to the floating-point family.
func (t ShapeType) IsFloat() bool {
	switch t {
	case TypeFloat, TypeDouble, TypeBigDecimal:
		return true
	}
	return false
}

// ShapeID is an absolute shape identifier of the form "namespace#Name" or
// "namespace#Name$member".
type ShapeID string

// ParseShapeID validates and returns a ShapeID.
func ParseShapeID(s string) (ShapeID, error) {
	if !strings.Contains(s, "#") {
		return "", fmt.Errorf("invalid shape id %q: missing namespace separator", s)
	}
	return ShapeID(s), nil
}

// Namespace returns the namespace portion of the id.
func (id ShapeID) Namespace() string {
	if i := strings.Index(string(id), "#"); i >= 0 {
		return string(id)[:i]
	}
	return ""
}

// Name returns the shape name portion of the id, without any member suffix.
func (id ShapeID) Name() string {
	s := string(id)
	if i := strings.Index(s, "#"); i >= 0 {
		s = s[i+1:]
	}
	if i := strings.Index(s, "$"); i >= 0 {
		s = s[:i]
	}
	return s
}

// MemberName returns the member suffix of the id, or "".
func (id ShapeID) MemberName() string {
	if i := strings.Index(string(id), "$"); i >= 0 {
		return string(id)[i+1:]
	}
	return ""
}

func (id ShapeID) String() string { return string(id) }

// Member is a named slot of a structure or union. Members carry their own
// trait set and keep the order in which the model declares them.
type Member struct {
	Name   string
	Target ShapeID
	Traits Traits
}

// EnumValue is one variant of an enum or intEnum shape.
type EnumValue struct {
	Name     string
	Value    string
	IntValue int64
}

// Shape is one node of the shape graph. The meaningful fields depend on Type;
// the zero value of the rest is left untouched.
type Shape struct {
	ID     ShapeID
	Type   ShapeType
	Traits Traits

	// Structure and union members, in declared order.
	Members []Member

	// List element and map key/value members.
	ListMember *Member
	MapKey     *Member
	MapValue   *Member

	// Enum and intEnum variants, in declared order.
	EnumValues []EnumValue

	// Operation bindings. Input/Output are empty when absent.
	Input  ShapeID
	Output ShapeID
	Errors []ShapeID

	// Service bindings, in declared order.
	Operations []ShapeID
	Version    string
}

// HasTrait reports whether the shape carries the given trait.
func (s *Shape) HasTrait(id ShapeID) bool { return s.Traits.Has(id) }

// IsError reports whether the shape is an error structure.
func (s *Shape) IsError() bool { return s.Traits.Has(TraitError) }

// IsEnum reports whether the shape is an enum in either the Smithy 2.0 form
// or the 1.0 string-with-@enum form.
func (s *Shape) IsEnum() bool {
	return s.Type == TypeEnum || (s.Type == TypeString && s.Traits.Has(TraitEnum))
}

// MemberNamed returns the named member, or nil.
func (s *Shape) MemberNamed(name string) *Member {
	for i := range s.Members {
		if s.Members[i].Name == name {
			return &s.Members[i]
		}
	}
	return nil
}
