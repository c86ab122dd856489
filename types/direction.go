package types

import (
	"github.com/zero-day-ai/enums"
	"gopkg.in/yaml.v3"
)

// Direction is one of the four movement directions.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right

	directionLimit
)

var directionNames = [...]string{
	Up:    "Up",
	Down:  "Down",
	Left:  "Left",
	Right: "Right",
}

var (
	_ [len(directionNames) - int(directionLimit)]struct{}
	_ [int(directionLimit) - len(directionNames)]struct{}
)

// DirectionTable converts Direction values to and from their canonical names.
var DirectionTable = enums.Must(directionLimit, directionNames[:])

func (d Direction) String() string {
	return DirectionTable.String(d)
}

// IsValid reports whether d is one of the declared directions.
func (d Direction) IsValid() bool {
	return DirectionTable.Valid(d)
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

func (d Direction) MarshalText() ([]byte, error) {
	return DirectionTable.MarshalText(d)
}

func (d *Direction) UnmarshalText(text []byte) error {
	return DirectionTable.UnmarshalText(d, text)
}

func (d Direction) MarshalYAML() (any, error) {
	return DirectionTable.MarshalYAML(d)
}

func (d *Direction) UnmarshalYAML(node *yaml.Node) error {
	return DirectionTable.UnmarshalYAML(d, node)
}

// ParseDirection returns the Direction named s. Matching is case sensitive.
func ParseDirection(s string) (Direction, bool) {
	return DirectionTable.Parse(s)
}

// Directions returns the names of all directions in declaration order.
func Directions() []string {
	return DirectionTable.Strings()
}
