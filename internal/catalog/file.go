package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk form of a catalog.
type File struct {
	Animations []Spec `yaml:"animations"`
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a catalog from YAML.
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(f.Animations...), nil
}

// Marshal encodes c as YAML.
func (c *Catalog) Marshal() ([]byte, error) {
	return yaml.Marshal(File{Animations: c.specs})
}

// Save writes c to path as YAML.
func (c *Catalog) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
