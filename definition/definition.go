// Package definition provides loading of enums.yaml files, which declare
// enumerations at runtime rather than in Go source.
//
// An enums.yaml file lists each enumeration with its canonical names in
// ordinal order:
//
//	enums:
//	  - name: severity
//	    description: finding severity
//	    values: [Info, Low, Medium, High, Critical]
//	  - name: protocol
//	    values: [TCP, UDP]
//
// Each definition becomes an *enums.Table[int] that can be registered in an
// enums.Catalog and used through it (for example from CEL expressions).
package definition

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zero-day-ai/enums"
)

// File represents an enums.yaml file.
type File struct {
	Enums []Enum `yaml:"enums"`
}

// Enum declares one enumeration.
type Enum struct {
	// Name is the type name used in the catalog (e.g., "severity").
	Name string `yaml:"name"`

	// Description is free-form documentation; it is not interpreted.
	Description string `yaml:"description,omitempty"`

	// Values holds the canonical names in ordinal order.
	Values []string `yaml:"values"`
}

// Validate reports every problem in the file: missing or repeated type
// names, empty value lists and repeated value names within one enumeration.
// Repeated values would make reverse lookup ambiguous, so files reject them.
func (f *File) Validate() error {
	if len(f.Enums) == 0 {
		return fmt.Errorf("%w: no enums declared", enums.ErrInvalidDefinition)
	}

	var errs []error
	seen := make(map[string]int, len(f.Enums))
	for i, e := range f.Enums {
		if e.Name == "" {
			errs = append(errs, fmt.Errorf("enums[%d]: name is required", i))
		} else if prev, dup := seen[e.Name]; dup {
			errs = append(errs, fmt.Errorf("enums[%d]: name %q already declared by enums[%d]", i, e.Name, prev))
		} else {
			seen[e.Name] = i
		}

		if len(e.Values) == 0 {
			errs = append(errs, fmt.Errorf("enums[%d] (%s): values are required", i, e.Name))
			continue
		}

		values := make(map[string]int, len(e.Values))
		for j, v := range e.Values {
			if prev, dup := values[v]; dup {
				errs = append(errs, fmt.Errorf("enums[%d] (%s): value %q repeats ordinal %d at ordinal %d", i, e.Name, v, prev, j))
				continue
			}
			values[v] = j
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", enums.ErrInvalidDefinition, errors.Join(errs...))
	}
	return nil
}

// Tables validates the file and builds one table per enumeration, keyed by
// name. opts are applied to every table after the type name.
func (f *File) Tables(opts ...enums.Option) (map[string]*enums.Table[int], error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	tables := make(map[string]*enums.Table[int], len(f.Enums))
	for _, e := range f.Enums {
		tableOpts := append([]enums.Option{enums.WithTypeName(e.Name)}, opts...)
		t, err := enums.New(len(e.Values), e.Values, tableOpts...)
		if err != nil {
			return nil, err
		}
		tables[e.Name] = t
	}
	return tables, nil
}

// Register builds the file's tables and adds them to catalog. A nil catalog
// means enums.DefaultCatalog. Nothing is registered when the file is invalid.
func (f *File) Register(catalog *enums.Catalog, opts ...enums.Option) error {
	if catalog == nil {
		catalog = enums.DefaultCatalog
	}

	tables, err := f.Tables(opts...)
	if err != nil {
		return err
	}
	for _, t := range tables {
		catalog.Register(t)
	}
	return nil
}

// Parse parses enums.yaml content.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse enums file: %w", err)
	}
	return &f, nil
}

// Load reads and parses an enums file from the given path.
// If the path is a directory, it looks for enums.yaml or enums.yml in that directory.
func Load(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	filePath := path
	if info.IsDir() {
		filePath = ""
		for _, name := range []string{"enums.yaml", "enums.yml"} {
			candidate := filepath.Join(path, name)
			if _, err := os.Stat(candidate); err == nil {
				filePath = candidate
				break
			}
		}
		if filePath == "" {
			return nil, fmt.Errorf("no enums.yaml or enums.yml found in %s", path)
		}
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read enums file: %w", err)
	}

	return Parse(data)
}
