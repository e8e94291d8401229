// Package smithygen generates typed Unison HTTP clients from Smithy JSON AST
// service models. A run loads the model, selects the service named by the
// settings, detects its protocol, assembles one client module in memory and
// flushes it through a sink together with the runtime modules the generated
// code depends on.
package smithygen

import (
	"context"

	"go.uber.org/zap"

	"github.com/unison-codegen/smithygen/config"
	"github.com/unison-codegen/smithygen/model"
	"github.com/unison-codegen/smithygen/protocol"
	"github.com/unison-codegen/smithygen/runtime"
	"github.com/unison-codegen/smithygen/symbol"
	"github.com/unison-codegen/smithygen/writer"
)

// Context carries everything one generation run needs. It is built by New,
// used by a single goroutine and discarded afterwards.
type Context struct {
	Model    *model.Model
	Service  *model.Shape
	Settings *config.Settings
	Symbols  *symbol.Provider
	Log      *zap.Logger
	Files    *writer.Delegator
	Runtime  *runtime.Copier

	// namespace is the Unison namespace generated definitions live in: the
	// settings override, or the function-cased service name.
	namespace string

	generator    protocol.Generator
	integrations []Integration
}

// New validates the settings, resolves the target service and assembles a run
// context writing through sink. A nil logger disables logging.
func New(m *model.Model, settings *config.Settings, sink writer.Sink, log *zap.Logger) (*Context, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := settings.Normalize(); err != nil {
		return nil, err
	}
	serviceID, err := model.ParseShapeID(settings.Service)
	if err != nil {
		return nil, err
	}
	service, err := m.ExpectService(serviceID)
	if err != nil {
		return nil, err
	}

	namespace := settings.Namespace
	if namespace == "" {
		namespace = symbol.ToFunctionName(service.ID.Name())
	}

	c := &Context{
		Model:     m,
		Service:   service,
		Settings:  settings,
		Symbols:   symbol.NewProvider(m, namespace),
		Log:       log,
		Files:     writer.NewDelegator(sink),
		Runtime:   runtime.NewCopier(sink, log),
		namespace: namespace,
	}
	c.Register(sigV4Integration())
	c.Register(protocolIntegration())
	c.Register(retryIntegration())
	return c, nil
}

// Namespace returns the Unison namespace of the generated client.
func (c *Context) Namespace() string { return c.namespace }

// ClientFilename returns the output file of the client module, derived from
// the namespace with dots flattened to underscores.
func (c *Context) ClientFilename() string {
	return symbol.FileBaseName(c.namespace) + "_client.u"
}

// Generator returns the protocol generator selected by Generate, nil before
// the first Generate call.
func (c *Context) Generator() protocol.Generator { return c.generator }

// Generate runs the full pipeline: pre hooks, protocol detection, client
// module assembly, file flush, runtime module copy, post hooks. The first
// failure aborts; nothing is retried.
func (c *Context) Generate(ctx context.Context) error {
	c.Log.Info("generating client",
		zap.String("service", string(c.Service.ID)),
		zap.String("namespace", c.namespace))

	if err := c.runPreHooks(); err != nil {
		return err
	}

	gen, err := protocol.Detect(c.Service, c.Settings.Protocol)
	if err != nil {
		return err
	}
	c.generator = gen
	c.Log.Info("protocol selected", zap.String("protocol", gen.Name()))

	if err := c.assembleClientModule(gen); err != nil {
		return err
	}
	if err := c.Files.Flush(ctx); err != nil {
		return err
	}

	vendor := protocol.IsVendorService(c.Service)
	xmlBody := gen.ID() == protocol.TraitRestXML
	bucketAddressing := protocol.UsesBucketAddressing(c.Service, c.Model)
	copied, err := c.Runtime.CopySelected(ctx, vendor, xmlBody, bucketAddressing)
	if err != nil {
		return err
	}
	if len(copied) > 0 {
		c.Log.Info("copied runtime modules", zap.Strings("modules", copied))
	}

	if err := c.runPostHooks(); err != nil {
		return err
	}

	c.Log.Info("generation complete", zap.Strings("files", c.Files.Filenames()))
	return nil
}

// protoContext builds the protocol-level view of this run.
func (c *Context) protoContext() *protocol.Context {
	return &protocol.Context{
		Model:    c.Model,
		Service:  c.Service,
		Settings: c.Settings,
		Symbols:  c.Symbols,
		Log:      c.Log,
	}
}
