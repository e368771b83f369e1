// Package schema ships the default grid vocabulary descriptor embedded
// in the binary and loads descriptor files supplied by operators.
package schema

import (
	_ "embed"
	"os"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/areatab/areatab/pkg/errors"
	"github.com/areatab/areatab/pkg/layout"
)

//go:embed schema.yaml
var raw []byte

var (
	once sync.Once
	def  layout.Schema
)

// Default returns the vocabulary descriptor compiled into the binary.
// The embedded file is parsed once; if it is malformed or fails
// validation, the in-code vocabulary is used instead.
func Default() layout.Schema {
	once.Do(func() {
		s, err := Parse(raw)
		if err != nil {
			def = layout.DefaultSchema()
			return
		}
		def = s
	})
	return def
}

// Parse decodes and validates a YAML vocabulary descriptor.
func Parse(data []byte) (layout.Schema, error) {
	var s layout.Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return layout.Schema{}, errors.NewConfigError("schema", "invalid descriptor", err)
	}
	if err := s.Validate(); err != nil {
		return layout.Schema{}, errors.NewConfigError("schema", "unusable descriptor", err)
	}
	return s, nil
}

// FromFile loads a vocabulary descriptor from a YAML file.
func FromFile(path string) (layout.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return layout.Schema{}, errors.NewNotFoundError("schema descriptor", path)
		}
		return layout.Schema{}, errors.WrapIO("read", path, err)
	}
	return Parse(data)
}
