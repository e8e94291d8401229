package smithygen

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/unison-codegen/smithygen/model"
	"github.com/unison-codegen/smithygen/protocol"
)

// Integration hooks into the generation pipeline. Pre runs before any text is
// generated, Post after files and runtime modules are written. Higher
// priority runs first; equal priorities keep registration order.
type Integration struct {
	Name     string
	Priority int
	Pre      func(*Context) error
	Post     func(*Context) error
}

// Register adds an integration to the run. Built-in integrations are
// registered by New; callers may add their own before Generate.
func (c *Context) Register(i Integration) {
	c.integrations = append(c.integrations, i)
}

// Integrations returns the registered integrations in execution order.
func (c *Context) Integrations() []Integration {
	out := make([]Integration, len(c.integrations))
	copy(out, c.integrations)
	sort.SliceStable(out, func(a, b int) bool { return out[a].Priority > out[b].Priority })
	return out
}

func (c *Context) runPreHooks() error {
	for _, in := range c.Integrations() {
		if in.Pre == nil {
			continue
		}
		c.Log.Debug("running pre hook", zap.String("integration", in.Name))
		if err := in.Pre(c); err != nil {
			return fmt.Errorf("integration %s: pre: %w", in.Name, err)
		}
	}
	return nil
}

func (c *Context) runPostHooks() error {
	for _, in := range c.Integrations() {
		if in.Post == nil {
			continue
		}
		c.Log.Debug("running post hook", zap.String("integration", in.Name))
		if err := in.Post(c); err != nil {
			return fmt.Errorf("integration %s: post: %w", in.Name, err)
		}
	}
	return nil
}

// sigV4Integration flags vendor services whose model never declares the
// signing trait. Generation still proceeds; the generated client signs either
// way, so the mismatch is worth a warning but not a failure.
func sigV4Integration() Integration {
	return Integration{
		Name:     "AwsSigV4",
		Priority: 64,
		Pre: func(c *Context) error {
			if c.Service.HasTrait(model.TraitAwsService) && !c.Service.HasTrait(model.TraitSigV4) {
				c.Log.Warn("service carries aws.api#service but no aws.auth#sigv4 trait",
					zap.String("service", string(c.Service.ID)))
			}
			return nil
		},
	}
}

// protocolIntegration validates protocol selection before any text is
// generated, so an unsupported protocol fails the run without touching the
// output directory.
func protocolIntegration() Integration {
	return Integration{
		Name:     "AwsProtocol",
		Priority: 32,
		Pre: func(c *Context) error {
			gen, err := protocol.Detect(c.Service, c.Settings.Protocol)
			if err != nil {
				return err
			}
			if !protocol.FullyImplemented(gen) {
				c.Log.Warn("protocol has no full generator, operations will be stubs",
					zap.String("protocol", gen.Name()))
			}
			return nil
		},
	}
}

// retryIntegration reports what was generated. Retry handling lives in the
// Unison runtime, not in generated code, so this hook only observes.
func retryIntegration() Integration {
	return Integration{
		Name:     "AwsRetry",
		Priority: 16,
		Post: func(c *Context) error {
			c.Log.Debug("generated files", zap.Strings("files", c.Files.Filenames()))
			return nil
		},
	}
}
