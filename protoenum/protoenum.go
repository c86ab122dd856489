// Package protoenum builds enums tables from protobuf enum descriptors, so
// generated protobuf enums get the same name conversions as hand-declared
// types.
//
// Only descriptors whose values are numbered exactly 0..N-1 in declaration
// order qualify; anything else is rejected with enums.ErrInvalidDefinition.
//
//	tbl, err := protoenum.FromDescriptor[typepb.Field_Cardinality](
//		typepb.Field_CARDINALITY_UNKNOWN.Descriptor())
package protoenum

import (
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/zero-day-ai/enums"
)

// FromDescriptor returns a table for the Go enum type E generated for ed.
// Names are the short value names (e.g. "CARDINALITY_OPTIONAL"). The table's
// type name defaults to the full protobuf name of the enum.
func FromDescriptor[E ~int32](ed protoreflect.EnumDescriptor, opts ...enums.Option) (*enums.Table[E], error) {
	typeName := string(ed.FullName())
	names, err := Names(ed)
	if err != nil {
		return nil, err
	}

	opts = append([]enums.Option{enums.WithTypeName(typeName)}, opts...)
	return enums.New(E(len(names)), names, opts...)
}

// MustFromDescriptor is like FromDescriptor but panics on error.
func MustFromDescriptor[E ~int32](ed protoreflect.EnumDescriptor, opts ...enums.Option) *enums.Table[E] {
	t, err := FromDescriptor[E](ed, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Names returns the value names of ed in ordinal order. It fails when the
// enum has no values or its numbers are not the contiguous range 0..N-1 in
// declaration order (aliases and gaps included).
func Names(ed protoreflect.EnumDescriptor) ([]string, error) {
	values := ed.Values()
	if values.Len() == 0 {
		return nil, enums.NewDefinitionError("protoenum.Names", string(ed.FullName())).WithContext(map[string]any{
			"values": 0,
		})
	}

	names := make([]string, values.Len())
	for i := 0; i < values.Len(); i++ {
		v := values.Get(i)
		if v.Number() != protoreflect.EnumNumber(i) {
			return nil, enums.NewDefinitionError("protoenum.Names", string(ed.FullName())).WithContext(map[string]any{
				"value":  string(v.Name()),
				"number": int32(v.Number()),
				"want":   i,
			})
		}
		names[i] = string(v.Name())
	}
	return names, nil
}
