package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileVersion is the only catalog file version understood.
const fileVersion = 1

// File is the on-disk representation of a catalog.
type File struct {
	Version int                  `json:"version" yaml:"version"`
	Fields  map[string]FieldFile `json:"fields" yaml:"fields"`
}

// FieldFile holds one field's default and ordered options.
type FieldFile struct {
	Default string   `json:"default" yaml:"default"`
	Options []Option `json:"options" yaml:"options"`
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if f.Version != fileVersion {
		return nil, fmt.Errorf("unsupported catalog version: %d (expected %d)", f.Version, fileVersion)
	}

	options := make(map[Field][]Option, len(f.Fields))
	defaults := make(map[Field]string, len(f.Fields))
	for key, ff := range f.Fields {
		field, err := ParseField(key)
		if err != nil {
			return nil, err
		}
		options[field] = ff.Options
		defaults[field] = ff.Default
	}

	c, err := New(options, defaults)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// File returns the on-disk representation of c.
func (c *Catalog) File() File {
	f := File{
		Version: fileVersion,
		Fields:  make(map[string]FieldFile, len(Fields)),
	}
	for _, field := range Fields {
		f.Fields[field.String()] = FieldFile{
			Default: c.defaults.Get(field).Value,
			Options: c.Options(field),
		}
	}
	return f
}

// MarshalYAML encodes c in catalog file format.
func (c *Catalog) MarshalYAML() (interface{}, error) {
	return c.File(), nil
}
