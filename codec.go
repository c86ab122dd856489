package enums

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText returns the canonical name of v. Enum types implement
// encoding.TextMarshaler (and so JSON encoding) by delegating here.
func (t *Table[E]) MarshalText(v E) ([]byte, error) {
	name, err := t.Name(v)
	if err != nil {
		return nil, err
	}
	return []byte(name), nil
}

// UnmarshalText stores in dst the value whose canonical name is text.
// dst is left unchanged on error.
func (t *Table[E]) UnmarshalText(dst *E, text []byte) error {
	v, err := t.Lookup(string(text))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// MarshalYAML returns the canonical name of v as a YAML scalar.
func (t *Table[E]) MarshalYAML(v E) (any, error) {
	name, err := t.Name(v)
	if err != nil {
		return nil, err
	}
	return name, nil
}

// UnmarshalYAML decodes a scalar node holding a canonical name into dst.
func (t *Table[E]) UnmarshalYAML(dst *E, node *yaml.Node) error {
	if node == nil || node.Kind != yaml.ScalarNode {
		return NewDecodeError("UnmarshalYAML", t.typeName, fmt.Errorf("expected a scalar node"))
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return NewDecodeError("UnmarshalYAML", t.typeName, err).WithContext(map[string]any{
			"line": node.Line,
		})
	}

	if err := t.UnmarshalText(dst, []byte(s)); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	return nil
}
