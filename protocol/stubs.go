package protocol

import (
	"github.com/unison-codegen/smithygen/model"
	"github.com/unison-codegen/smithygen/symbol"
	"github.com/unison-codegen/smithygen/writer"
)

// The generators below are selectable but emit declarative placeholders only.
// Keeping them in the registry means detection, content types and vendor
// classification already behave correctly for their services.

// restJSONGenerator covers aws.protocols#restJson1 (API Gateway, Step
// Functions).
type restJSONGenerator struct{}

func (g *restJSONGenerator) ID() model.ShapeID               { return TraitRestJSON1 }
func (g *restJSONGenerator) Name() string                    { return "restJson1" }
func (g *restJSONGenerator) ContentType(*model.Shape) string { return "application/json" }
func (g *restJSONGenerator) DefaultMethod() string           { return "" }
func (g *restJSONGenerator) DefaultURI() string              { return "" }

func (g *restJSONGenerator) AppliesTo(service *model.Shape) bool {
	return service.HasTrait(TraitRestJSON1)
}

func (g *restJSONGenerator) GenerateOperation(op *model.Shape, w *writer.Writer, ctx *Context) error {
	w.WriteComment("REST-JSON operation: " + symbol.ToFunctionName(op.ID.Name()) + " (NOT IMPLEMENTED)")
	return nil
}

func (g *restJSONGenerator) GenerateRequestSerializer(op *model.Shape, w *writer.Writer, ctx *Context) error {
	return nil
}

func (g *restJSONGenerator) GenerateResponseDeserializer(op *model.Shape, w *writer.Writer, ctx *Context) error {
	return nil
}

func (g *restJSONGenerator) GenerateErrorParser(op *model.Shape, w *writer.Writer, ctx *Context) error {
	w.WriteComment("REST-JSON error parsing (NOT IMPLEMENTED)")
	return nil
}

// awsJSONGenerator covers both aws.protocols#awsJson1_0 and #awsJson1_1
// (DynamoDB, Lambda, Kinesis). The version decides the content type.
type awsJSONGenerator struct {
	trait   model.ShapeID
	version string
}

func (g *awsJSONGenerator) ID() model.ShapeID { return g.trait }

func (g *awsJSONGenerator) Name() string {
	if g.version == "1.0" {
		return "awsJson1_0"
	}
	return "awsJson1_1"
}

func (g *awsJSONGenerator) ContentType(*model.Shape) string {
	return "application/x-amz-json-" + g.version
}

// JSON-RPC style protocols default every operation to POST /.
func (g *awsJSONGenerator) DefaultMethod() string { return "POST" }
func (g *awsJSONGenerator) DefaultURI() string    { return "/" }

func (g *awsJSONGenerator) AppliesTo(service *model.Shape) bool {
	return service.HasTrait(g.trait)
}

func (g *awsJSONGenerator) GenerateOperation(op *model.Shape, w *writer.Writer, ctx *Context) error {
	w.WriteComment("AWS JSON " + g.version + " operation: " + symbol.ToFunctionName(op.ID.Name()) + " (NOT IMPLEMENTED)")
	return nil
}

func (g *awsJSONGenerator) GenerateRequestSerializer(op *model.Shape, w *writer.Writer, ctx *Context) error {
	return nil
}

func (g *awsJSONGenerator) GenerateResponseDeserializer(op *model.Shape, w *writer.Writer, ctx *Context) error {
	return nil
}

func (g *awsJSONGenerator) GenerateErrorParser(op *model.Shape, w *writer.Writer, ctx *Context) error {
	w.WriteComment("AWS JSON error parsing (NOT IMPLEMENTED)")
	return nil
}

// awsQueryGenerator covers aws.protocols#awsQuery (SQS, SNS) and
// aws.protocols#ec2Query (EC2), which differ only in trait id and list
// serialization details that the placeholder does not reach.
type awsQueryGenerator struct {
	trait model.ShapeID
	name  string
}

func (g *awsQueryGenerator) ID() model.ShapeID { return g.trait }
func (g *awsQueryGenerator) Name() string      { return g.name }

func (g *awsQueryGenerator) ContentType(*model.Shape) string {
	return "application/x-www-form-urlencoded"
}

func (g *awsQueryGenerator) DefaultMethod() string { return "POST" }
func (g *awsQueryGenerator) DefaultURI() string    { return "/" }

func (g *awsQueryGenerator) AppliesTo(service *model.Shape) bool {
	return service.HasTrait(g.trait)
}

func (g *awsQueryGenerator) GenerateOperation(op *model.Shape, w *writer.Writer, ctx *Context) error {
	w.WriteComment("Query protocol operation: " + symbol.ToFunctionName(op.ID.Name()) + " (NOT IMPLEMENTED)")
	return nil
}

func (g *awsQueryGenerator) GenerateRequestSerializer(op *model.Shape, w *writer.Writer, ctx *Context) error {
	return nil
}

func (g *awsQueryGenerator) GenerateResponseDeserializer(op *model.Shape, w *writer.Writer, ctx *Context) error {
	return nil
}

func (g *awsQueryGenerator) GenerateErrorParser(op *model.Shape, w *writer.Writer, ctx *Context) error {
	w.WriteComment("Query protocol error parsing (NOT IMPLEMENTED)")
	return nil
}
