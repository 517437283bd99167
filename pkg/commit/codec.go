package commit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a serialization format of the configuration.
type Format int

const (
	// JSONFormat is indented JSON.
	JSONFormat Format = iota
	// YAMLFormat is block style YAML.
	YAMLFormat
)

var FormatIds = map[Format][]string{
	JSONFormat: {"json"},
	YAMLFormat: {"yaml", "yml"},
}

var errEmptyInput = errors.New("empty configuration input")

// ParseFormat parses a string and returns the corresponding Format.
func ParseFormat(s string) (Format, error) {
	for f, ids := range FormatIds {
		for _, id := range ids {
			if strings.EqualFold(id, s) {
				return f, nil
			}
		}
	}
	return Format(0), fmt.Errorf("unknown format: %s", s)
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return Format(0), fmt.Errorf("cannot detect format of %s", path)
	}
	return ParseFormat(ext)
}

// ToString converts the Format value to a string representation.
func (f Format) ToString() string {
	if val, ok := FormatIds[f]; ok {
		return val[0]
	}
	return fmt.Sprintf("UnknownFormat(%d)", f)
}

// Decode reads a configuration in the given format. Unknown fields are
// rejected. The result is not validated.
func Decode(r io.Reader, f Format) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read configuration: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errEmptyInput
	}

	var c Config

	switch f {
	case JSONFormat:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&c); err != nil {
			return nil, fmt.Errorf("decode json configuration: %w", err)
		}
	case YAMLFormat:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errEmptyInput
			}
			return nil, fmt.Errorf("decode yaml configuration: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", f.ToString())
	}

	return &c, nil
}

// Encode writes the configuration in the given format.
func Encode(w io.Writer, f Format, c *Config) error {
	if c == nil {
		return ErrNilConfig
	}

	switch f {
	case JSONFormat:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encode json configuration: %w", err)
		}
	case YAMLFormat:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encode yaml configuration: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml configuration: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s", f.ToString())
	}

	return nil
}
