package routetable

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Table is a declarative set of routes. Nested tables are compiled into
// their own routers and mounted.
type Table struct {
	// Default is the fallback pattern tried when a path has no handler.
	Default string  `yaml:"default,omitempty"`
	Routes  []Route `yaml:"routes"`
	Mounts  []Mount `yaml:"mounts,omitempty"`
}

// Route is a canned response bound to a pattern. Body may reference
// captured params as {{name}}.
type Route struct {
	Pattern string            `yaml:"pattern"`
	Status  int               `yaml:"status,omitempty"`
	Body    string            `yaml:"body,omitempty"`
	Headers map[string]string `yaml:"headers,omitempty"`
}

// Mount splices a nested table under a pattern.
type Mount struct {
	At    string `yaml:"at"`
	Table *Table `yaml:"table"`
}

// Parse decodes a YAML document, applies defaults and validates it.
func Parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse route table yaml: %w", err)
	}

	t.applyDefaults()
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("validate route table: %w", err)
	}
	return &t, nil
}

// Load reads a route table file, expanding ${VAR} environment variables.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read route table: %w", err)
	}

	return Parse([]byte(os.ExpandEnv(string(data))))
}
