package types

import (
	"github.com/zero-day-ai/enums"
	"gopkg.in/yaml.v3"
)

// Color is a primary color.
type Color int

const (
	Red Color = iota
	Green
	Blue

	colorLimit
)

var colorNames = [...]string{
	Red:   "Red",
	Green: "Green",
	Blue:  "Blue",
}

// A name list out of step with colorLimit fails to compile here.
var (
	_ [len(colorNames) - int(colorLimit)]struct{}
	_ [int(colorLimit) - len(colorNames)]struct{}
)

// ColorTable converts Color values to and from their canonical names.
var ColorTable = enums.Must(colorLimit, colorNames[:])

// String implements fmt.Stringer.
func (c Color) String() string {
	return ColorTable.String(c)
}

// IsValid reports whether c is one of the declared colors.
func (c Color) IsValid() bool {
	return ColorTable.Valid(c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return ColorTable.MarshalText(c)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	return ColorTable.UnmarshalText(c, text)
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) {
	return ColorTable.MarshalYAML(c)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	return ColorTable.UnmarshalYAML(c, node)
}

// ParseColor returns the Color named s. Matching is case sensitive.
func ParseColor(s string) (Color, bool) {
	return ColorTable.Parse(s)
}

// Colors returns the names of all colors in declaration order.
func Colors() []string {
	return ColorTable.Strings()
}
