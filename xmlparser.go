package smithygen

import (
	"github.com/unison-codegen/smithygen/model"
	"github.com/unison-codegen/smithygen/symbol"
	"github.com/unison-codegen/smithygen/writer"
)

// writeXMLParser emits the parse<Type>FromXml function for a structure: a
// positional constructor call with one extraction expression per member, in
// declared order. Extraction honors @required and @default; everything else
// stays Optional.
func (c *Context) writeXMLParser(w *writer.Writer, shape *model.Shape) {
	typeName := symbol.ToTypeName(shape.ID.Name())
	fn := "parse" + typeName + "FromXml"

	w.WriteDocComment("Parse " + typeName + " from XML text.")
	w.WriteSignature(fn, "Text -> "+typeName)
	w.Write("$L xml =", fn)
	w.Indent()
	w.Write("$L.$L", typeName, typeName)
	w.Indent()
	for i := range shape.Members {
		w.Write("$L", c.xmlFieldExtraction(&shape.Members[i]))
	}
	w.Dedent()
	w.Dedent()
	w.WriteBlankLine()
}

// xmlFieldExtraction renders the expression extracting one member from the
// XML text. The element name follows the convention of upper-casing the
// member name's first letter.
func (c *Context) xmlFieldExtraction(member *model.Member) string {
	element := pascal(member.Name)
	optional := !member.Traits.Has(model.TraitRequired) && !member.Traits.Has(model.TraitDefault)

	target, ok := c.Model.Shape(member.Target)
	if !ok {
		if optional {
			return "None -- unresolved target " + string(member.Target)
		}
		return "(bug \"unresolved required field target: " + string(member.Target) + "\")"
	}

	switch {
	case target.Type == model.TypeStructure:
		parser := "parse" + symbol.ToTypeName(target.ID.Name()) + "FromXml"
		if optional {
			return "(Aws.Xml.parseNestedFromXml \"" + element + "\" " + parser + " xml)"
		}
		return "(Optional.getOrElse (bug \"Required nested field '" + element + "' not found\") " +
			"(Aws.Xml.parseNestedFromXml \"" + element + "\" " + parser + " xml))"

	case target.Type == model.TypeList || target.Type == model.TypeSet:
		return c.xmlListExtraction(target, element, optional)

	case target.IsEnum():
		fromText := symbol.ToFunctionName(target.ID.Name()) + "FromText"
		if optional {
			return "(Optional.flatMap " + fromText + " (Aws.Xml.extractElementOpt \"" + element + "\" xml))"
		}
		return "(Optional.getOrElse (bug \"Required enum field '" + element + "' not found or invalid\") " +
			"(" + fromText + " (Aws.Xml.extractElement \"" + element + "\" xml)))"

	case target.Type == model.TypeString || target.Type == model.TypeTimestamp:
		if optional {
			return "(Aws.Xml.extractElementOpt \"" + element + "\" xml)"
		}
		return "(Aws.Xml.extractElement \"" + element + "\" xml)"

	case target.Type.IsInteger():
		if optional {
			return "(Aws.Xml.extractInt \"" + element + "\" xml)"
		}
		return "(Optional.getOrElse +0 (Aws.Xml.extractInt \"" + element + "\" xml))"

	case target.Type == model.TypeBoolean:
		if optional {
			return "(Aws.Xml.extractBool \"" + element + "\" xml)"
		}
		return "(Optional.getOrElse false (Aws.Xml.extractBool \"" + element + "\" xml))"

	case target.Type == model.TypeBlob:
		// Blob fields in XML travel as text; decoded bytes via toUtf8.
		if optional {
			return "(Optional.map toUtf8 (Aws.Xml.extractElementOpt \"" + element + "\" xml))"
		}
		return "(toUtf8 (Aws.Xml.extractElement \"" + element + "\" xml))"
	}

	if optional {
		return "None -- " + string(target.Type)
	}
	return "(bug \"unsupported required field type: " + string(target.Type) + "\")"
}

// xmlListExtraction handles list-valued members: wrapped lists of structures
// go through the list parser helpers, enum and string lists extract every
// occurrence of the item element directly.
func (c *Context) xmlListExtraction(list *model.Shape, element string, optional bool) string {
	if list.ListMember == nil {
		if optional {
			return "None -- list without member"
		}
		return "[] -- list without member"
	}
	item := pascal(list.ListMember.Name)
	elemTarget, ok := c.Model.Shape(list.ListMember.Target)
	if !ok {
		if optional {
			return "None -- unresolved list element"
		}
		return "[] -- unresolved list element"
	}

	switch {
	case elemTarget.Type == model.TypeStructure:
		parser := "parse" + symbol.ToTypeName(elemTarget.ID.Name()) + "FromXml"
		if optional {
			return "(Aws.Xml.parseOptionalWrappedListFromXml \"" + element + "\" \"" + item + "\" " + parser + " xml)"
		}
		return "(Aws.Xml.parseWrappedListFromXml \"" + element + "\" \"" + item + "\" " + parser + " xml)"

	case elemTarget.IsEnum():
		fromText := symbol.ToFunctionName(elemTarget.ID.Name()) + "FromText"
		if optional {
			return "(Some (List.filterMap " + fromText + " (Aws.Xml.extractAll \"" + item + "\" xml)))"
		}
		return "(List.filterMap " + fromText + " (Aws.Xml.extractAll \"" + item + "\" xml))"

	case elemTarget.Type == model.TypeString:
		if optional {
			return "(Some (Aws.Xml.extractAll \"" + item + "\" xml))"
		}
		return "(Aws.Xml.extractAll \"" + item + "\" xml)"
	}

	if optional {
		return "None -- list parsing: " + string(elemTarget.Type)
	}
	return "[] -- list parsing: " + string(elemTarget.Type)
}
