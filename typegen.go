package smithygen

import (
	"strings"

	"github.com/unison-codegen/smithygen/model"
	"github.com/unison-codegen/smithygen/symbol"
	"github.com/unison-codegen/smithygen/writer"
)

// referencedShapes holds the shapes reachable from the service's operations,
// split by what kind of Unison definition they become. Each slice keeps
// first-reference order so output is stable across runs.
type referencedShapes struct {
	structures []*model.Shape
	errors     []*model.Shape
	// enums holds enum, intEnum and union shapes, which all become sum types.
	enums []*model.Shape
}

// collectReferenced walks each operation's input, output and error shapes and
// transitively every member target, bucketing the shapes that need a Unison
// definition. Simple prelude types need none and are skipped.
func (c *Context) collectReferenced() *referencedShapes {
	refs := &referencedShapes{}
	visited := make(map[model.ShapeID]bool)

	var visit func(id model.ShapeID)
	visit = func(id model.ShapeID) {
		if id == "" || visited[id] {
			return
		}
		visited[id] = true
		shape, ok := c.Model.Shape(id)
		if !ok {
			return
		}
		switch {
		case shape.Type == model.TypeStructure:
			if shape.IsError() {
				refs.errors = append(refs.errors, shape)
			} else {
				refs.structures = append(refs.structures, shape)
			}
			for i := range shape.Members {
				visit(shape.Members[i].Target)
			}
		case shape.IsEnum(), shape.Type == model.TypeIntEnum:
			refs.enums = append(refs.enums, shape)
		case shape.Type == model.TypeList || shape.Type == model.TypeSet:
			if shape.ListMember != nil {
				visit(shape.ListMember.Target)
			}
		case shape.Type == model.TypeMap:
			if shape.MapKey != nil {
				visit(shape.MapKey.Target)
			}
			if shape.MapValue != nil {
				visit(shape.MapValue.Target)
			}
		case shape.Type == model.TypeUnion:
			refs.enums = append(refs.enums, shape)
			for i := range shape.Members {
				visit(shape.Members[i].Target)
			}
		}
	}

	for _, opID := range c.Service.Operations {
		op, ok := c.Model.Shape(opID)
		if !ok {
			continue
		}
		if op.Input != "" && op.Input.Name() != "Unit" {
			visit(op.Input)
		}
		if op.Output != "" && op.Output.Name() != "Unit" {
			visit(op.Output)
		}
		for _, errID := range op.Errors {
			visit(errID)
		}
	}
	return refs
}

// writeModelTypes emits every referenced definition: sum types first since
// structures refer to them, then structures, then errors with their toFailure
// conversions. XML parsers accompany the structures only when the selected
// protocol actually parses XML bodies.
func (c *Context) writeModelTypes(w *writer.Writer, refs *referencedShapes, xmlParsers bool) {
	if len(refs.enums) > 0 {
		w.WriteComment("=== Enums ===")
		w.WriteBlankLine()
		for _, shape := range refs.enums {
			switch {
			case shape.IsEnum():
				c.writeEnum(w, shape)
			case shape.Type == model.TypeUnion:
				c.writeUnion(w, shape)
			}
			// intEnum shapes carry no wire-text mapping and get no sum type.
		}
	}

	if len(refs.structures) > 0 {
		w.WriteComment("=== Types ===")
		w.WriteBlankLine()
		for _, shape := range refs.structures {
			c.writeStructure(w, shape)
		}
		if xmlParsers {
			w.WriteComment("=== XML Parsers ===")
			w.WriteBlankLine()
			for _, shape := range refs.structures {
				c.writeXMLParser(w, shape)
			}
		}
	}

	if len(refs.errors) > 0 {
		w.WriteComment("=== Errors ===")
		w.WriteBlankLine()
		for _, shape := range refs.errors {
			c.writeStructure(w, shape)
			c.writeErrorToFailure(w, shape)
			w.WriteBlankLine()
		}
	}
}

// writeEnum emits the sum type plus the ToText and FromText conversions.
func (c *Context) writeEnum(w *writer.Writer, shape *model.Shape) {
	typeName := symbol.ToTypeName(shape.ID.Name())
	if doc := shape.Traits.String(model.TraitDocumentation); doc != "" {
		w.WriteDocComment(doc)
	}

	values := enumVariants(shape)
	variants := make([]writer.Variant, len(values))
	for i, v := range values {
		variants[i] = writer.Variant{Name: symbol.ToEnumVariant(typeName, v.Name)}
	}
	w.WriteUnionType(typeName, "", variants)

	fn := symbol.ToFunctionName(typeName)

	w.WriteSignature(fn+"ToText", typeName+" -> Text")
	w.Write("$LToText val = match val with", fn)
	w.Indent()
	for _, v := range values {
		w.Write("$L -> \"$L\"", symbol.ToEnumVariant(typeName, v.Name), v.Value)
	}
	w.Dedent()
	w.WriteBlankLine()

	w.WriteSignature(fn+"FromText", "Text -> Optional "+typeName)
	w.Write("$LFromText t = match t with", fn)
	w.Indent()
	for _, v := range values {
		w.Write("\"$L\" -> Some $L", v.Value, symbol.ToEnumVariant(typeName, v.Name))
	}
	w.Write("_ -> None")
	w.Dedent()
	w.WriteBlankLine()
}

// enumVariants returns the enum's values with usable variant names. Smithy 1.0
// enum entries may lack a declared name, in which case the wire value doubles
// as the name and gets converted to PascalCase here.
func enumVariants(shape *model.Shape) []model.EnumValue {
	out := make([]model.EnumValue, len(shape.EnumValues))
	for i, v := range shape.EnumValues {
		if shape.Type == model.TypeString && v.Name == v.Value {
			v.Name = symbol.ToVariantName(v.Value)
		}
		out[i] = v
	}
	return out
}

// writeUnion emits a Smithy union as a tagged sum type, one variant per
// member with the member's target type as payload.
func (c *Context) writeUnion(w *writer.Writer, shape *model.Shape) {
	typeName := symbol.ToTypeName(shape.ID.Name())
	if doc := shape.Traits.String(model.TraitDocumentation); doc != "" {
		w.WriteDocComment(doc)
	}
	variants := make([]writer.Variant, len(shape.Members))
	for i := range shape.Members {
		member := &shape.Members[i]
		variants[i] = writer.Variant{
			Name:    symbol.ToEnumVariant(typeName, pascal(member.Name)),
			Payload: c.Symbols.ResolveMember(member).TypeExpr,
		}
	}
	w.WriteUnionType(typeName, "", variants)
}

// writeStructure emits a record type. Fields wrap in Optional unless marked
// @required or carrying @default.
func (c *Context) writeStructure(w *writer.Writer, shape *model.Shape) {
	if doc := shape.Traits.String(model.TraitDocumentation); doc != "" {
		w.WriteDocComment(doc)
	}
	fields := make([]writer.TypeField, 0, len(shape.Members))
	for i := range shape.Members {
		member := &shape.Members[i]
		fields = append(fields, writer.TypeField{
			Name: fieldName(member.Name),
			Type: c.fieldType(member),
		})
	}
	w.WriteRecordType(symbol.ToTypeName(shape.ID.Name()), fields)
}

// writeErrorToFailure emits the conversion from an error record to Unison's
// Failure, preferring the error's own message field when it has one.
func (c *Context) writeErrorToFailure(w *writer.Writer, shape *model.Shape) {
	typeName := symbol.ToTypeName(shape.ID.Name())
	fn := typeName + ".toFailure"

	hasMessage := false
	for i := range shape.Members {
		if strings.EqualFold(shape.Members[i].Name, "message") {
			hasMessage = true
			break
		}
	}

	w.WriteSignature(fn, typeName+" -> Failure")
	w.Write("$L err =", fn)
	w.Indent()
	if hasMessage {
		w.Write("Failure (typeLink $L) err.message (Any err)", typeName)
	} else {
		w.Write("Failure (typeLink $L) \"$L error\" (Any err)", typeName, typeName)
	}
	w.Dedent()
}

// fieldName converts a member name to the Unison field convention and escapes
// reserved words.
func fieldName(memberName string) string {
	return symbol.EscapeReserved(symbol.ToFunctionName(memberName))
}

// fieldType renders a member's Unison type with Optional wrapping for
// members that may be absent.
func (c *Context) fieldType(member *model.Member) string {
	base := c.Symbols.ResolveMember(member).TypeExpr
	if member.Traits.Has(model.TraitRequired) || member.Traits.Has(model.TraitDefault) {
		return base
	}
	return "Optional " + wrapIfComplex(base)
}

// wrapIfComplex parenthesizes multi-word type expressions so they survive
// being placed after Optional. Bracketed list types already group.
func wrapIfComplex(t string) string {
	if strings.Contains(t, " ") && !strings.HasPrefix(t, "(") && !strings.HasPrefix(t, "[") {
		return "(" + t + ")"
	}
	return t
}

// pascal upper-cases the first character, which is how Smithy member names
// become Unison variant names.
func pascal(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
