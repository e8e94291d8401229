// Package symbol maps shapes from the model to Unison type and function
// descriptors. Resolution is pure and deterministic: the same shape and trait
// input always produces the same symbol, and results are cached per shape id
// for the duration of a run.
package symbol

import (
	"github.com/unison-codegen/smithygen/model"
)

// Symbol describes the Unison rendering of one shape: the identifier to use,
// the Unison type expression, the file the definition lands in, and category
// flags the generators branch on.
type Symbol struct {
	// Name is the Unison identifier (PascalCase for types, declared name
	// preserved).
	Name string

	// TypeExpr is the Unison type expression, e.g. "Text", "[Bucket]",
	// "Map Text Int".
	TypeExpr string

	// DefinitionFile is the output file the definition belongs to.
	DefinitionFile string

	IsList      bool
	IsMap       bool
	IsEnum      bool
	IsUnion     bool
	IsStructure bool
	IsTimestamp bool
	IsService   bool
	IsOperation bool
}

// Provider resolves shapes to symbols. It holds the model for resolving
// member targets and a per-run cache; it is not safe for concurrent use,
// which matches the generator's single-threaded fold.
type Provider struct {
	model     *model.Model
	namespace string
	cache     map[model.ShapeID]Symbol
}

// NewProvider returns a provider resolving against the given model. The
// namespace decides definition-file names; pass the settings namespace or a
// service-derived fallback.
func NewProvider(m *model.Model, namespace string) *Provider {
	return &Provider{
		model:     m,
		namespace: namespace,
		cache:     make(map[model.ShapeID]Symbol),
	}
}

// Resolve maps a shape to its symbol. It is total: shapes the mapping does
// not recognize resolve to the generic type parameter "a" rather than an
// error.
func (p *Provider) Resolve(shape *model.Shape) Symbol {
	if cached, ok := p.cache[shape.ID]; ok {
		return cached
	}
	sym := p.resolve(shape)
	p.cache[shape.ID] = sym
	return sym
}

func (p *Provider) resolve(shape *model.Shape) Symbol {
	sym := Symbol{
		Name:           ToTypeName(shape.ID.Name()),
		DefinitionFile: p.definitionFile(shape),
	}

	switch {
	case shape.Type == model.TypeString && shape.IsEnum():
		sym.TypeExpr = sym.Name
		sym.IsEnum = true
	case shape.Type == model.TypeString:
		sym.TypeExpr = "Text"
	case shape.Type.IsInteger():
		sym.TypeExpr = "Int"
	case shape.Type.IsFloat():
		sym.TypeExpr = "Float"
	case shape.Type == model.TypeBoolean:
		sym.TypeExpr = "Boolean"
	case shape.Type == model.TypeBlob:
		sym.TypeExpr = "Bytes"
	case shape.Type == model.TypeTimestamp:
		// No built-in DateTime in Unison; timestamps travel as ISO 8601 text.
		sym.TypeExpr = "Text"
		sym.IsTimestamp = true
	case shape.Type == model.TypeList || shape.Type == model.TypeSet:
		sym.TypeExpr = "[" + p.elementType(shape.ListMember) + "]"
		sym.IsList = true
	case shape.Type == model.TypeMap:
		sym.TypeExpr = "Map " + p.elementType(shape.MapKey) + " " + p.elementType(shape.MapValue)
		sym.IsMap = true
	case shape.Type == model.TypeStructure:
		sym.TypeExpr = sym.Name
		sym.IsStructure = true
	case shape.Type == model.TypeUnion:
		sym.TypeExpr = sym.Name
		sym.IsUnion = true
	case shape.Type == model.TypeEnum || shape.Type == model.TypeIntEnum:
		sym.TypeExpr = sym.Name
		sym.IsEnum = true
	case shape.Type == model.TypeService:
		sym.TypeExpr = "a"
		sym.IsService = true
	case shape.Type == model.TypeOperation:
		sym.Name = ToFunctionName(shape.ID.Name())
		sym.TypeExpr = "a"
		sym.IsOperation = true
	default:
		sym.TypeExpr = "a"
	}

	return sym
}

// ResolveMember resolves the symbol of a member's target shape. Unknown
// targets resolve to the generic "a" symbol.
func (p *Provider) ResolveMember(member *model.Member) Symbol {
	target, ok := p.model.Shape(member.Target)
	if !ok {
		return Symbol{TypeExpr: "a"}
	}
	return p.Resolve(target)
}

// elementType renders the Unison type of a collection element. Nested
// collections collapse to generic parameters, matching how container types
// are declared rather than expanded in place.
func (p *Provider) elementType(member *model.Member) string {
	if member == nil {
		return "a"
	}
	target, ok := p.model.Shape(member.Target)
	if !ok {
		return "a"
	}
	switch {
	case target.IsEnum(), target.Type == model.TypeStructure, target.Type == model.TypeUnion,
		target.Type == model.TypeEnum, target.Type == model.TypeIntEnum:
		return ToTypeName(target.ID.Name())
	case target.Type == model.TypeString:
		return "Text"
	case target.Type.IsInteger():
		return "Int"
	case target.Type.IsFloat():
		return "Float"
	case target.Type == model.TypeBoolean:
		return "Boolean"
	case target.Type == model.TypeBlob:
		return "Bytes"
	case target.Type == model.TypeTimestamp:
		return "Text"
	case target.Type == model.TypeList || target.Type == model.TypeSet:
		return "[a]"
	case target.Type == model.TypeMap:
		return "Map Text a"
	}
	return "a"
}

// definitionFile places services in the client module and everything else in
// the shared types file for the namespace.
func (p *Provider) definitionFile(shape *model.Shape) string {
	base := FileBaseName(p.namespace)
	if shape.Type == model.TypeService {
		return base + "_client.u"
	}
	return base + "_types.u"
}
