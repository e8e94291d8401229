// Package protocol maps AWS protocol traits to code generators. One
// generator exists per protocol; restXml is the full implementation, the
// remaining protocols are selectable stubs that emit declarative placeholders.
package protocol

import (
	"strings"

	"go.uber.org/zap"

	"github.com/unison-codegen/smithygen/config"
	"github.com/unison-codegen/smithygen/model"
	"github.com/unison-codegen/smithygen/symbol"
	"github.com/unison-codegen/smithygen/writer"
)

// Generator produces Unison client code for one protocol.
type Generator interface {
	// ID is the protocol trait shape id, e.g. "aws.protocols#restXml".
	ID() model.ShapeID

	// Name is the short protocol name, e.g. "restXml".
	Name() string

	// ContentType is the request Content-Type for the service.
	ContentType(service *model.Shape) string

	// DefaultMethod is the HTTP method used when the operation carries no
	// @http trait. Empty for REST protocols, which require the trait.
	DefaultMethod() string

	// DefaultURI is the URI used when the operation carries no @http trait.
	DefaultURI() string

	// AppliesTo reports whether the service declares this protocol's trait.
	AppliesTo(service *model.Shape) bool

	// GenerateOperation emits the complete operation function.
	GenerateOperation(op *model.Shape, w *writer.Writer, ctx *Context) error

	// GenerateRequestSerializer emits just the body-binding let lines.
	GenerateRequestSerializer(op *model.Shape, w *writer.Writer, ctx *Context) error

	// GenerateResponseDeserializer emits just the response-decoding expression.
	GenerateResponseDeserializer(op *model.Shape, w *writer.Writer, ctx *Context) error

	// GenerateErrorParser emits the service's parseError function.
	GenerateErrorParser(op *model.Shape, w *writer.Writer, ctx *Context) error
}

// Context carries the per-run collaborators generators read. The logger is
// threaded explicitly; nothing in this package touches globals.
type Context struct {
	Model    *model.Model
	Service  *model.Shape
	Settings *config.Settings
	Symbols  *symbol.Provider
	Log      *zap.Logger
}

// InputShape resolves the operation's input structure. A missing binding
// returns (nil, nil); a dangling target is a ModelError.
func (c *Context) InputShape(op *model.Shape) (*model.Shape, error) {
	if op.Input == "" || op.Input.Name() == "Unit" {
		return nil, nil
	}
	return c.Model.ExpectStructure(op.Input)
}

// OutputShape resolves the operation's output structure, nil when absent.
func (c *Context) OutputShape(op *model.Shape) (*model.Shape, error) {
	if op.Output == "" || op.Output.Name() == "Unit" {
		return nil, nil
	}
	return c.Model.ExpectStructure(op.Output)
}

// ServiceErrorTypeName returns the name of the per-service error union, e.g.
// "S3ServiceError". A trailing "Service" in the shape name is dropped first so
// "ItemService" yields "ItemServiceError" rather than "ItemServiceServiceError".
func ServiceErrorTypeName(service *model.Shape) string {
	name := service.ID.Name()
	name = strings.TrimSuffix(name, "Service")
	return symbol.ToTypeName(name) + "ServiceError"
}
