// Package config holds the generation settings supplied by the caller,
// either programmatically or loaded from a smithygen.yaml / smithygen.json
// file next to the model.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Settings selects the service to generate and where the output goes.
type Settings struct {
	// Service is the absolute shape id of the service to generate a client
	// for, e.g. "com.amazonaws.s3#AmazonS3".
	Service string `yaml:"service" json:"service" validate:"required,contains=#"`

	// Namespace overrides the Unison namespace for generated definitions.
	// Empty means derive it from the service shape's namespace.
	Namespace string `yaml:"namespace" json:"namespace"`

	// OutputDir is the directory generated .u files are written to.
	OutputDir string `yaml:"outputDir" json:"outputDir"`

	// Protocol forces a protocol instead of detecting one from the service
	// shape's traits, e.g. "aws.protocols#restXml".
	Protocol string `yaml:"protocol" json:"protocol"`
}

// DefaultOutputDir is used when Settings.OutputDir is empty.
const DefaultOutputDir = "src/generated"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Normalize fills defaults and validates the settings.
func (s *Settings) Normalize() error {
	if s.OutputDir == "" {
		s.OutputDir = DefaultOutputDir
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ServiceNamespace returns the namespace part of the service shape id.
func (s *Settings) ServiceNamespace() string {
	if i := strings.Index(s.Service, "#"); i >= 0 {
		return s.Service[:i]
	}
	return s.Service
}

// ClientNamespace returns the Unison namespace generated definitions live in:
// the explicit override when set, otherwise the service shape's namespace.
func (s *Settings) ClientNamespace() string {
	if s.Namespace != "" {
		return s.Namespace
	}
	return s.ServiceNamespace()
}

// Load reads settings from a YAML or JSON file. YAML is a superset of JSON,
// so one decoder covers both extensions.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	s := &Settings{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", filepath.Base(path), err)
	}
	if err := s.Normalize(); err != nil {
		return nil, err
	}
	return s, nil
}
