package protoenum

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/known/typepb"

	"github.com/zero-day-ai/enums"
)

func TestFromDescriptor(t *testing.T) {
	tbl, err := FromDescriptor[typepb.Field_Cardinality](typepb.Field_CARDINALITY_UNKNOWN.Descriptor())
	require.NoError(t, err)

	assert.Equal(t, "google.protobuf.Field.Cardinality", tbl.TypeName())
	assert.Equal(t, []string{
		"CARDINALITY_UNKNOWN",
		"CARDINALITY_OPTIONAL",
		"CARDINALITY_REQUIRED",
		"CARDINALITY_REPEATED",
	}, slices.Collect(tbl.Names()))

	name, err := tbl.Name(typepb.Field_CARDINALITY_REQUIRED)
	require.NoError(t, err)
	assert.Equal(t, "CARDINALITY_REQUIRED", name)

	v, ok := tbl.Parse("CARDINALITY_REPEATED")
	assert.True(t, ok)
	assert.Equal(t, typepb.Field_CARDINALITY_REPEATED, v)
}

func TestFromDescriptor_MatchesGeneratedString(t *testing.T) {
	tbl := MustFromDescriptor[typepb.Field_Cardinality](typepb.Field_CARDINALITY_UNKNOWN.Descriptor())

	for v, name := range tbl.All() {
		assert.Equal(t, v.String(), name)
	}
}

func TestFromDescriptor_TypeNameOverride(t *testing.T) {
	tbl, err := FromDescriptor[typepb.Field_Cardinality](
		typepb.Field_CARDINALITY_UNKNOWN.Descriptor(),
		enums.WithTypeName("cardinality"),
	)
	require.NoError(t, err)
	assert.Equal(t, "cardinality", tbl.TypeName())
}

func TestFromDescriptor_RejectsNonZeroBased(t *testing.T) {
	// FieldDescriptorProto.Type starts at TYPE_DOUBLE = 1.
	_, err := FromDescriptor[descriptorpb.FieldDescriptorProto_Type](
		descriptorpb.FieldDescriptorProto_TYPE_DOUBLE.Descriptor())
	require.Error(t, err)
	assert.True(t, errors.Is(err, enums.ErrInvalidDefinition))

	var enumErr *enums.EnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "TYPE_DOUBLE", enumErr.Context["value"])

	assert.Panics(t, func() {
		MustFromDescriptor[descriptorpb.FieldDescriptorProto_Type](
			descriptorpb.FieldDescriptorProto_TYPE_DOUBLE.Descriptor())
	})
}
