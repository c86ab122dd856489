package enums

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shade int

const (
	shadeRed shade = iota
	shadeGreen
	shadeBlue
	shadeLimit
)

type heading uint8

const (
	headingUp heading = iota
	headingDown
	headingLeft
	headingRight
	headingLimit
)

func newShades(t *testing.T, opts ...Option) *Table[shade] {
	t.Helper()
	tbl, err := New(shadeLimit, []string{"Red", "Green", "Blue"}, opts...)
	require.NoError(t, err)
	return tbl
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		names []string
	}{
		{name: "zero limit", limit: 0, names: nil},
		{name: "negative limit", limit: -1, names: []string{"a"}},
		{name: "too few names", limit: 3, names: []string{"a", "b"}},
		{name: "too many names", limit: 1, names: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := New(tt.limit, tt.names)
			assert.Nil(t, tbl)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDefinition))

			var enumErr *EnumError
			require.True(t, errors.As(err, &enumErr))
			assert.Equal(t, KindDefinition, enumErr.Kind)
			assert.Equal(t, "int", enumErr.Type)
		})
	}
}

func TestNew_UnsignedLimitWiderThanNames(t *testing.T) {
	_, err := New(^uint64(0), []string{"a"})
	assert.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestMust_PanicsOnInvalidDefinition(t *testing.T) {
	assert.Panics(t, func() {
		Must(shadeLimit, []string{"Red"})
	})
	assert.NotPanics(t, func() {
		Must(shadeLimit, []string{"Red", "Green", "Blue"})
	})
}

func TestNew_CopiesNames(t *testing.T) {
	names := []string{"Red", "Green", "Blue"}
	tbl, err := New(shadeLimit, names)
	require.NoError(t, err)

	names[1] = "Mauve"
	assert.Equal(t, "Green", tbl.MustName(shadeGreen))
}

func TestTable_TypeName(t *testing.T) {
	assert.Equal(t, "enums.shade", newShades(t).TypeName())
	assert.Equal(t, "Shade", newShades(t, WithTypeName("Shade")).TypeName())
}

func TestTable_Name(t *testing.T) {
	tbl := newShades(t)

	tests := []struct {
		value shade
		want  string
	}{
		{shadeRed, "Red"},
		{shadeGreen, "Green"},
		{shadeBlue, "Blue"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := tbl.Name(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTable_NameOutOfRange(t *testing.T) {
	tbl := newShades(t)

	for _, v := range []shade{-1, shadeLimit, 100} {
		name, err := tbl.Name(v)
		assert.Empty(t, name)
		assert.ErrorIs(t, err, ErrOrdinalOutOfRange)
		assert.False(t, tbl.Valid(v))
	}

	_, err := tbl.NameOf(3)
	assert.ErrorIs(t, err, ErrOrdinalOutOfRange)
	assert.Panics(t, func() { tbl.MustName(shadeLimit) })
}

func TestTable_String(t *testing.T) {
	tbl := newShades(t)

	assert.Equal(t, "Green", tbl.String(shadeGreen))
	assert.Equal(t, "enums.shade(7)", tbl.String(7))
	assert.Equal(t, "enums.shade(-2)", tbl.String(-2))
}

func TestTable_Parse(t *testing.T) {
	tbl := newShades(t)

	tests := []struct {
		name      string
		input     string
		want      shade
		wantFound bool
	}{
		{name: "first", input: "Red", want: shadeRed, wantFound: true},
		{name: "middle", input: "Green", want: shadeGreen, wantFound: true},
		{name: "last", input: "Blue", want: shadeBlue, wantFound: true},
		{name: "absent", input: "Purple"},
		{name: "lower case", input: "green"},
		{name: "upper case", input: "GREEN"},
		{name: "empty", input: ""},
		{name: "prefix", input: "Gre"},
		{name: "past the end", input: "Zzz"},
		{name: "before the start", input: "Aaa"},
		{name: "trailing space", input: "Red "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := tbl.Parse(tt.input)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.want, got)
			} else {
				assert.Equal(t, shade(0), got)
			}
		})
	}
}

func TestTable_ParseEmptyName(t *testing.T) {
	tbl, err := New(2, []string{"", "set"})
	require.NoError(t, err)

	v, ok := tbl.Parse("")
	assert.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestTable_Lookup(t *testing.T) {
	tbl := newShades(t)

	v, err := tbl.Lookup("Blue")
	require.NoError(t, err)
	assert.Equal(t, shadeBlue, v)

	_, err = tbl.Lookup("Purple")
	require.ErrorIs(t, err, ErrUnknownName)

	var enumErr *EnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, KindNotFound, enumErr.Kind)
	assert.Equal(t, `"Red", "Green", "Blue"`, enumErr.Context["expected"])
	assert.Equal(t, `"Purple"`, enumErr.Context["name"])
}

func TestTable_RoundTrip(t *testing.T) {
	shades := newShades(t)
	for i := range shades.Len() {
		v := shade(i)
		got, ok := shades.Parse(shades.MustName(v))
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}

	headings := Must(headingLimit, []string{"Up", "Down", "Left", "Right"})
	for _, v := range headings.Values() {
		name, err := headings.Name(v)
		require.NoError(t, err)
		got, ok := headings.Parse(name)
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}
}

func TestTable_Names(t *testing.T) {
	tbl := newShades(t)

	first := slices.Collect(tbl.Names())
	assert.Equal(t, []string{"Red", "Green", "Blue"}, first)
	assert.False(t, tbl.IndexBuilt(), "iteration must not build the index")

	_, _ = tbl.Parse("Green")
	assert.True(t, tbl.IndexBuilt())

	second := slices.Collect(tbl.Names())
	assert.Equal(t, first, second)
}

func TestTable_NamesStopsEarly(t *testing.T) {
	tbl := newShades(t)

	var seen []string
	for name := range tbl.Names() {
		seen = append(seen, name)
		if name == "Green" {
			break
		}
	}
	assert.Equal(t, []string{"Red", "Green"}, seen)
}

func TestTable_NamesMatchForwardConversion(t *testing.T) {
	tbl := Must(headingLimit, []string{"Up", "Down", "Left", "Right"})

	var forward []string
	for v := headingUp; v < headingLimit; v++ {
		forward = append(forward, tbl.MustName(v))
	}

	assert.Equal(t, forward, slices.Collect(tbl.Names()))
	assert.Equal(t, []string{"Up", "Down", "Left", "Right"}, forward)
}

func TestTable_All(t *testing.T) {
	tbl := newShades(t)

	var values []shade
	var names []string
	for v, name := range tbl.All() {
		values = append(values, v)
		names = append(names, name)
	}
	assert.Equal(t, []shade{shadeRed, shadeGreen, shadeBlue}, values)
	assert.Equal(t, []string{"Red", "Green", "Blue"}, names)
	assert.Equal(t, values, tbl.Values())
}

func TestTable_StringsIsACopy(t *testing.T) {
	tbl := newShades(t)

	names := tbl.Strings()
	names[0] = "Crimson"

	assert.Equal(t, []string{"Red", "Green", "Blue"}, tbl.Strings())
	assert.Equal(t, 3, tbl.Len())
}

func TestTable_DuplicateNamesResolveToLowestOrdinal(t *testing.T) {
	tbl, err := New(4, []string{"b", "a", "b", "c"})
	require.NoError(t, err)

	v, ok := tbl.Parse("b")
	assert.True(t, ok)
	assert.Equal(t, 0, v)

	v, ok = tbl.OrdinalOf("c")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}
