package types

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/zero-day-ai/enums"
)

// Flag adapts an enum-typed variable to a command-line flag. Only canonical
// names are accepted.
//
//	dir := types.Up
//	flag := types.NewFlag(types.DirectionTable, &dir)
//	fs.Var(flag, "direction", "direction to move "+flag.Allowed())
type Flag[E enums.Ordinal] struct {
	table *enums.Table[E]
	value *E
}

var _ pflag.Value = (*Flag[Color])(nil)

// NewFlag returns a flag that stores into value.
func NewFlag[E enums.Ordinal](table *enums.Table[E], value *E) *Flag[E] {
	return &Flag[E]{table: table, value: value}
}

func (f *Flag[E]) String() string {
	if f == nil || f.value == nil {
		return ""
	}
	return f.table.String(*f.value)
}

// Set parses s and stores the value.
func (f *Flag[E]) Set(s string) error {
	return f.table.UnmarshalText(f.value, []byte(s))
}

// Type returns the enum type name shown in usage output.
func (f *Flag[E]) Type() string {
	return f.table.TypeName()
}

// Get returns the current value.
func (f *Flag[E]) Get() E {
	return *f.value
}

// Allowed lists the accepted names, e.g. "(Up|Down|Left|Right)".
func (f *Flag[E]) Allowed() string {
	return "(" + strings.Join(f.table.Strings(), "|") + ")"
}
