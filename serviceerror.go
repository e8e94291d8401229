package smithygen

import (
	"github.com/unison-codegen/smithygen/model"
	"github.com/unison-codegen/smithygen/protocol"
	"github.com/unison-codegen/smithygen/symbol"
	"github.com/unison-codegen/smithygen/writer"
)

// writeServiceErrors emits the per-service error union aggregating every
// error any operation declares, its conversions, and for fully implemented
// protocols the parseError entry point the generated operations call.
func (c *Context) writeServiceErrors(w *writer.Writer, gen protocol.Generator) error {
	typeName := protocol.ServiceErrorTypeName(c.Service)
	errorTypes := c.collectErrorVariants()

	w.WriteDocComment("Aggregated error type for " + c.Service.ID.Name() + " service.\n\n" +
		"Use pattern matching to handle specific error types.")

	variants := make([]writer.Variant, 0, len(errorTypes)+1)
	for _, errType := range errorTypes {
		variants = append(variants, writer.Variant{
			Name:    symbol.ToEnumVariant(typeName, errType),
			Payload: errType,
		})
	}
	unknown := symbol.ToEnumVariant(typeName, "UnknownError")
	variants = append(variants, writer.Variant{Name: unknown, Payload: "Text"})
	w.WriteUnionType(typeName, "", variants)

	// toFailure delegates to each error type's own conversion.
	toFailure := typeName + ".toFailure"
	w.WriteSignature(toFailure, typeName+" -> Failure")
	w.Write("$L = cases", toFailure)
	w.Indent()
	for _, errType := range errorTypes {
		w.Write("$L e -> $L.toFailure e", symbol.ToEnumVariant(typeName, errType), errType)
	}
	w.Write("$L msg -> Failure (typeLink Text) msg (Any msg)", unknown)
	w.Dedent()
	w.WriteBlankLine()

	// fromCodeAndMessage maps wire error codes onto variants. Codes follow
	// the Smithy shape names; anything else lands in the unknown fallback.
	fromCode := typeName + ".fromCodeAndMessage"
	w.WriteSignature(fromCode, "Text -> Text -> "+typeName)
	w.Write("$L code message = match code with", fromCode)
	w.Indent()
	for _, errType := range errorTypes {
		w.Write("\"$L\" -> $L { message }", errType, symbol.ToEnumVariant(typeName, errType))
	}
	w.Write("_ -> $L (code ++ \": \" ++ message)", unknown)
	w.Dedent()
	w.WriteBlankLine()

	if gen.ID() == protocol.TraitRestXML {
		c.writeServiceErrorFromXML(w, typeName)
	}

	if protocol.FullyImplemented(gen) && len(c.Service.Operations) > 0 {
		op, err := c.Model.ExpectShape(c.Service.Operations[0])
		if err != nil {
			return err
		}
		if err := gen.GenerateErrorParser(op, w, c.protoContext()); err != nil {
			return err
		}
	}
	return nil
}

// writeServiceErrorFromXML emits the XML entry point used by REST-XML error
// bodies of the shape <Error><Code>..</Code><Message>..</Message></Error>.
func (c *Context) writeServiceErrorFromXML(w *writer.Writer, typeName string) {
	fn := typeName + ".fromXml"
	w.WriteSignature(fn, "Text -> "+typeName)
	w.Write("$L xmlText =", fn)
	w.Indent()
	w.Write("let")
	w.Indent()
	w.Write("code = Aws.Xml.extractElementOpt \"Code\" xmlText |> Optional.getOrElse \"UnknownError\"")
	w.Write("message = Aws.Xml.extractElementOpt \"Message\" xmlText |> Optional.getOrElse \"\"")
	w.Dedent()
	w.Write("$L.fromCodeAndMessage code message", typeName)
	w.Dedent()
	w.WriteBlankLine()
}

// collectErrorVariants gathers the distinct error type names declared across
// the service's operations, in declaration order. Targets that are not error
// structures are skipped.
func (c *Context) collectErrorVariants() []string {
	seen := make(map[string]bool)
	var out []string
	for _, opID := range c.Service.Operations {
		op, ok := c.Model.Shape(opID)
		if !ok {
			continue
		}
		for _, errID := range op.Errors {
			name := errID.Name()
			if seen[name] {
				continue
			}
			seen[name] = true
			shape, ok := c.Model.Shape(errID)
			if !ok || shape.Type != model.TypeStructure || !shape.IsError() {
				continue
			}
			out = append(out, symbol.ToTypeName(name))
		}
	}
	return out
}
