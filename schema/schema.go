// Package schema loads and validates the API descriptions that drive
// SDK generation.
package schema

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// MaxSchemaFileSize caps schema reads so a runaway file cannot
	// exhaust memory.
	MaxSchemaFileSize = 1 << 20

	// DefaultRuntime is the client runtime package the generated code
	// imports when the schema does not pick one.
	DefaultRuntime = "@apiforge/client-runtime"

	// DefaultVersion is used when the schema does not declare one.
	DefaultVersion = "0.0.0"
)

// Schema describes one API for which a TypeScript SDK is generated.
type Schema struct {
	// Name identifies the API and appears in generated file headers.
	Name string `yaml:"name"`

	// Version is echoed into generated file headers.
	Version string `yaml:"version"`

	// Runtime is the package the generated client imports for
	// createClient and ClientOptions.
	Runtime string `yaml:"runtime"`

	// BaseURL is the default server the generated client talks to.
	BaseURL string `yaml:"baseURL"`

	// Models are the named types exposed by the generated SDK.
	Models []Model `yaml:"models"`

	// Operations are the callable endpoints of the API.
	Operations []Operation `yaml:"operations"`
}

// Model is a named TypeScript type exposed by the generated SDK.
type Model struct {
	Name string `yaml:"name"`

	// Type is TypeScript type text carried into the generated alias
	// verbatim.
	Type string `yaml:"type"`

	// Description becomes the documentation comment of the alias.
	Description string `yaml:"description"`
}

// Operation is one callable endpoint of the API.
type Operation struct {
	Name   string `yaml:"name"`
	Method string `yaml:"method"`
	Path   string `yaml:"path"`

	// Description is surfaced in the generated endpoint table.
	Description string `yaml:"description"`

	// Deprecated operations are left out of the generated SDK.
	Deprecated bool `yaml:"deprecated"`
}

// Load reads, parses and validates a schema file. The size cap is
// checked against the file metadata, so an oversized schema is
// rejected before any of it is read into memory.
func Load(path string) (*Schema, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	if info.Size() > MaxSchemaFileSize {
		return nil, fmt.Errorf("schema %s exceeds maximum size (%d > %d)", path, info.Size(), MaxSchemaFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", path, err)
	}
	return s, nil
}

// Parse parses and validates schema bytes. Unknown fields are
// rejected, which turns a typo like "basUrl" into an error instead of
// a silently wrong SDK.
func Parse(data []byte) (*Schema, error) {
	if len(data) == 0 {
		return nil, errors.New("schema is empty")
	}
	if len(data) > MaxSchemaFileSize {
		return nil, fmt.Errorf("schema exceeds maximum size (%d > %d)", len(data), MaxSchemaFileSize)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Schema
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}

	s.applyDefaults()
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Schema) applyDefaults() {
	if s.Version == "" {
		s.Version = DefaultVersion
	}
	if s.Runtime == "" {
		s.Runtime = DefaultRuntime
	}
}

var allowedMethods = map[string]bool{
	"GET":     true,
	"POST":    true,
	"PUT":     true,
	"PATCH":   true,
	"DELETE":  true,
	"HEAD":    true,
	"OPTIONS": true,
}

func (s *Schema) validate() error {
	if s.Name == "" {
		return errors.New("schema must have a name")
	}
	if s.BaseURL == "" {
		return errors.New("schema must have a baseURL")
	}

	modelNames := make(map[string]bool, len(s.Models))
	for i, m := range s.Models {
		if m.Name == "" {
			return fmt.Errorf("model[%d]: name must not be empty", i)
		}
		if modelNames[m.Name] {
			return fmt.Errorf("model[%d] (%s): name already used by another model", i, m.Name)
		}
		modelNames[m.Name] = true
		if m.Type == "" {
			return fmt.Errorf("model[%d] (%s): type must not be empty", i, m.Name)
		}
	}

	operationNames := make(map[string]bool, len(s.Operations))
	for i, op := range s.Operations {
		if op.Name == "" {
			return fmt.Errorf("operation[%d]: name must not be empty", i)
		}
		if operationNames[op.Name] {
			return fmt.Errorf("operation[%d] (%s): name already used by another operation", i, op.Name)
		}
		operationNames[op.Name] = true
		if !allowedMethods[op.Method] {
			return fmt.Errorf("operation[%d] (%s): method %q is not a known HTTP method", i, op.Name, op.Method)
		}
		if !strings.HasPrefix(op.Path, "/") {
			return fmt.Errorf("operation[%d] (%s): path must start with '/', got %q", i, op.Name, op.Path)
		}
	}
	return nil
}
