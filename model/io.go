package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a serialization format for models.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a format from a file extension. Unknown extensions
// are treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ReadFile loads a model from a JSON or YAML file.
func ReadFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model file: %w", err)
	}
	return Decode(data, FormatFromPath(path))
}

// Decode parses a serialized model.
// YAML input must have the same structure as the JSON layout; it is
// converted to JSON before decoding.
func Decode(data []byte, format Format) (*Model, error) {
	if format == FormatYAML {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing YAML model: %w", err)
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("converting YAML model: %w", err)
		}
		data = converted
	}

	m := New()
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parsing model: %w", err)
	}
	return m, nil
}

// Encode writes m as indented JSON followed by a newline.
// Output only depends on the content of m, so encoding the same model twice
// yields identical bytes.
func Encode(w io.Writer, m *Model, indent string) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(m)
}

// Marshal returns the encoded form of m (see Encode).
func Marshal(m *Model, indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, m, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
