// Command smithygen generates Unison HTTP clients from Smithy JSON AST
// models.
package main

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unison-codegen/smithygen"
	smithyconfig "github.com/unison-codegen/smithygen/config"
	"github.com/unison-codegen/smithygen/model"
	"github.com/unison-codegen/smithygen/writer"
)

type CLI struct {
	Version  VersionCmd  `cmd:"" help:"Print version information."`
	Generate GenerateCmd `cmd:"" help:"Generate a Unison client from a Smithy JSON AST model."`

	Verbose bool `help:"Enable debug logging." short:"v"`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type GenerateCmd struct {
	Model string `arg:"" help:"Path to the Smithy JSON AST model file."`

	Config    string `help:"Path to a smithygen.yaml or smithygen.json settings file." short:"c"`
	Service   string `help:"Service shape id to generate, e.g. com.amazonaws.s3#AmazonS3." short:"s"`
	Namespace string `help:"Unison namespace override for generated definitions." short:"n"`
	Out       string `help:"Output directory for generated .u files." short:"o"`
	Protocol  string `help:"Force a protocol trait id instead of detecting one."`
}

func (c *GenerateCmd) Run(log *zap.Logger) error {
	settings, err := c.settings()
	if err != nil {
		return err
	}

	m, err := model.LoadFile(c.Model)
	if err != nil {
		return err
	}

	sink := writer.NewFilesystemSink(settings.OutputDir)
	ctx, err := smithygen.New(m, settings, sink, log)
	if err != nil {
		return err
	}
	return ctx.Generate(context.Background())
}

// settings merges the optional config file with the command-line flags; flags
// win where both are set.
func (c *GenerateCmd) settings() (*smithyconfig.Settings, error) {
	settings := &smithyconfig.Settings{}
	if c.Config != "" {
		loaded, err := smithyconfig.Load(c.Config)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}
	if c.Service != "" {
		settings.Service = c.Service
	}
	if c.Namespace != "" {
		settings.Namespace = c.Namespace
	}
	if c.Out != "" {
		settings.OutputDir = c.Out
	}
	if c.Protocol != "" {
		settings.Protocol = c.Protocol
	}
	if err := settings.Normalize(); err != nil {
		return nil, err
	}
	return settings, nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("smithygen"),
		kong.Description("Unison client code generator for Smithy service models."),
		kong.UsageOnError(),
	)

	config := zap.NewProductionConfig()
	if cli.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	log, err := config.Build()
	ctx.FatalIfErrorf(err)
	defer log.Sync()

	err = ctx.Run(log)
	ctx.FatalIfErrorf(err)
}
