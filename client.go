package smithygen

import (
	"github.com/unison-codegen/smithygen/model"
	"github.com/unison-codegen/smithygen/protocol"
	"github.com/unison-codegen/smithygen/symbol"
	"github.com/unison-codegen/smithygen/writer"
)

// assembleClientModule builds the complete client module text: header,
// configuration types, referenced model types, the service error union,
// operations and pagination helpers. Everything lands in one file so that a
// single `load` brings in the whole client.
func (c *Context) assembleClientModule(gen protocol.Generator) error {
	w := c.Files.Writer(c.ClientFilename())
	vendor := protocol.IsVendorService(c.Service)
	full := protocol.FullyImplemented(gen)

	w.WriteComment("Generated Unison client for " + c.Service.ID.Name())
	if full {
		w.WriteComment("Protocol: " + gen.Name())
	} else if vendor {
		w.WriteComment("Protocol " + gen.Name() + " - operations are stubs")
	}
	w.WriteBlankLine()

	if vendor {
		c.writeAwsConfigTypes(w)
	} else {
		c.writeGenericConfigType(w)
	}

	refs := c.collectReferenced()
	c.writeModelTypes(w, refs, full)
	if err := c.writeServiceErrors(w, gen); err != nil {
		return err
	}

	pctx := c.protoContext()
	for _, opID := range c.Service.Operations {
		op, err := c.Model.ExpectShape(opID)
		if err != nil {
			return err
		}
		if full {
			if err := gen.GenerateOperation(op, w, pctx); err != nil {
				return err
			}
		} else {
			c.writeOperationStub(op, w)
		}
	}

	return c.writePaginationHelpers(w)
}

// writeAwsConfigTypes emits the Config and Credentials records used by signed
// vendor services.
func (c *Context) writeAwsConfigTypes(w *writer.Writer) {
	w.WriteDocComment("Configuration for the " + c.Service.ID.Name() + " client")
	w.WriteRecordType("Config", []writer.TypeField{
		{Name: "endpoint", Type: "Text"},
		{Name: "region", Type: "Text"},
		{Name: "credentials", Type: "Credentials"},
		{Name: "usePathStyle", Type: "Boolean"},
	})
	w.WriteRecordType("Credentials", []writer.TypeField{
		{Name: "accessKeyId", Type: "Text"},
		{Name: "secretAccessKey", Type: "Text"},
		{Name: "sessionToken", Type: "Optional Text"},
	})
}

// writeGenericConfigType emits the minimal Config for services without vendor
// signing: an endpoint plus caller-supplied headers.
func (c *Context) writeGenericConfigType(w *writer.Writer) {
	w.WriteDocComment("Configuration for the " + c.Service.ID.Name() + " client")
	w.WriteRecordType("Config", []writer.TypeField{
		{Name: "endpoint", Type: "Text"},
		{Name: "headers", Type: "[(Text, Text)]"},
	})
}

// writeOperationStub emits a declarative placeholder for protocols without a
// full generator. The signature is real so callers can compile against it.
func (c *Context) writeOperationStub(op *model.Shape, w *writer.Writer) {
	opName := symbol.ToFunctionName(op.ID.Name())

	inputType := "()"
	if op.Input != "" && op.Input.Name() != "Unit" {
		inputType = symbol.ToTypeName(op.Input.Name())
	}
	outputType := "()"
	if op.Output != "" && op.Output.Name() != "Unit" {
		outputType = symbol.ToTypeName(op.Output.Name())
	}

	w.WriteDocComment(op.ID.Name() + " operation (NOT IMPLEMENTED)\n\n" +
		"Raises exception on error, returns output directly on success.")
	w.WriteSignature(opName, "Config -> "+inputType+" -> '{IO, Exception, Http} "+outputType)
	w.Write("$L config input =", opName)
	w.Indent()
	w.Write("-- TODO: Implement $L operation", op.ID.Name())
	w.Write("-- On success: return $L directly", outputType)
	w.Write("-- On error: Exception.raise (ServiceError.toFailure error)")
	w.Write("bug \"Operation not yet implemented: $L\"", opName)
	w.Dedent()
	w.WriteBlankLine()
}
