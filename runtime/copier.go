// Package runtime ships the pre-written Unison support modules generated
// clients call into, and copies the ones a service actually needs to the
// output directory.
package runtime

import (
	"context"
	"embed"

	"go.uber.org/zap"

	"github.com/unison-codegen/smithygen/writer"
)

//go:embed modules/*.u
var modulesFS embed.FS

// Module identifies one embedded runtime module by its output filename.
type Module string

const (
	ModuleSigV4       Module = "aws_sigv4.u"
	ModuleXML         Module = "aws_xml.u"
	ModuleHTTP        Module = "aws_http.u"
	ModuleS3          Module = "aws_s3.u"
	ModuleConfig      Module = "aws_config.u"
	ModuleCredentials Module = "aws_credentials.u"
)

var descriptions = map[Module]string{
	ModuleSigV4:       "AWS SigV4 request signing",
	ModuleXML:         "XML encoding/decoding",
	ModuleHTTP:        "HTTP request helpers",
	ModuleS3:          "S3-specific utilities",
	ModuleConfig:      "Configuration types",
	ModuleCredentials: "Credential loading",
}

// Modules returns every embedded module in a stable order.
func Modules() []Module {
	return []Module{ModuleSigV4, ModuleXML, ModuleHTTP, ModuleS3, ModuleConfig, ModuleCredentials}
}

// Filename returns the output filename of the module.
func (m Module) Filename() string { return string(m) }

// Description returns a short human-readable summary.
func (m Module) Description() string { return descriptions[m] }

// Content returns the embedded source of the module.
func (m Module) Content() (string, error) {
	data, err := modulesFS.ReadFile("modules/" + string(m))
	if err != nil {
		return "", &MissingResourceError{Module: string(m)}
	}
	return string(data), nil
}

// Copier writes runtime modules through a sink. Copies are idempotent within
// a run: a module already copied is skipped.
type Copier struct {
	sink   writer.Sink
	log    *zap.Logger
	copied map[Module]bool
}

// NewCopier creates a copier flushing through sink.
func NewCopier(sink writer.Sink, log *zap.Logger) *Copier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Copier{sink: sink, log: log, copied: make(map[Module]bool)}
}

// Copy writes one module to the output. A missing embedded resource is a
// MissingResourceError; it does not undo files already written.
func (c *Copier) Copy(ctx context.Context, m Module) error {
	if c.copied[m] {
		return nil
	}
	content, err := m.Content()
	if err != nil {
		return err
	}
	if err := c.sink.WriteFile(ctx, m.Filename(), []byte(content)); err != nil {
		return err
	}
	c.copied[m] = true
	c.log.Info("copied runtime module", zap.String("module", m.Filename()))
	return nil
}

// CopyAll writes every embedded module.
func (c *Copier) CopyAll(ctx context.Context) ([]string, error) {
	var copied []string
	for _, m := range Modules() {
		if err := c.Copy(ctx, m); err != nil {
			return copied, err
		}
		copied = append(copied, m.Filename())
	}
	return copied, nil
}

// Copied reports whether the module was already written this run.
func (c *Copier) Copied(m Module) bool { return c.copied[m] }

// Select returns the modules a generated client needs. Vendor services get
// signing, HTTP, config and credential plumbing; xmlBody adds the XML codec
// for body-bearing XML protocols; bucketAddressing adds the S3 URL helpers.
// Non-vendor services need no runtime support.
func Select(vendor, xmlBody, bucketAddressing bool) []Module {
	if !vendor {
		return nil
	}
	modules := []Module{ModuleSigV4, ModuleHTTP, ModuleConfig, ModuleCredentials}
	if xmlBody {
		modules = append(modules, ModuleXML)
	}
	if bucketAddressing {
		modules = append(modules, ModuleS3)
	}
	return modules
}

// CopySelected copies the modules Select picks, returning their filenames.
func (c *Copier) CopySelected(ctx context.Context, vendor, xmlBody, bucketAddressing bool) ([]string, error) {
	var copied []string
	for _, m := range Select(vendor, xmlBody, bucketAddressing) {
		if err := c.Copy(ctx, m); err != nil {
			return copied, err
		}
		copied = append(copied, m.Filename())
	}
	return copied, nil
}
