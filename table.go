package enums

import (
	"context"
	"iter"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/constraints"
)

// Ordinal is the set of underlying types an enumerated type may have.
// Valid values of a registered type are exactly 0..N-1.
type Ordinal interface {
	constraints.Integer
}

// Descriptor is the conversion contract available for a registered
// enumerated type E.
type Descriptor[E Ordinal] interface {
	// Name returns the canonical name of v.
	Name(v E) (string, error)

	// Parse returns the value whose canonical name is exactly s.
	Parse(s string) (E, bool)

	// Names yields every canonical name in ordinal order.
	Names() iter.Seq[string]
}

var _ Descriptor[int] = (*Table[int])(nil)

// Table binds an enumerated type to its canonical names. Forward conversion
// indexes the name table directly; reverse conversion binary-searches a
// sorted index that is built on the first reverse lookup.
//
// A Table is immutable once constructed and safe for concurrent use.
type Table[E Ordinal] struct {
	typeName string
	names    []string

	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *tableMetrics

	once  sync.Once
	index []entry
	built atomic.Bool
}

// New creates the table for E. limit is the cardinality of E and names holds
// one canonical name per ordinal, in ordinal order. A limit that is not
// positive or a names slice whose length differs from limit is rejected
// with ErrInvalidDefinition.
//
// names is copied; later changes to the caller's slice do not affect the table.
func New[E Ordinal](limit E, names []string, opts ...Option) (*Table[E], error) {
	cfg := newConfig(opts)
	typeName := cfg.typeName
	if typeName == "" {
		typeName = reflect.TypeFor[E]().String()
	}

	if limit <= 0 {
		return nil, NewDefinitionError("New", typeName).WithContext(map[string]any{
			"limit": ordinalString(limit),
		})
	}
	// Compared as uint64 so limits of every width are checked exactly.
	if uint64(limit) != uint64(len(names)) {
		return nil, NewDefinitionError("New", typeName).WithContext(map[string]any{
			"limit": ordinalString(limit),
			"names": len(names),
		})
	}

	t := &Table[E]{
		typeName: typeName,
		names:    append([]string(nil), names...),
		logger:   cfg.logger,
		tracer:   cfg.tracer,
	}
	t.metrics = newTableMetrics(cfg.meter, t.logger, typeName)
	return t, nil
}

// Must is like New but panics if the definition is invalid. It is intended
// for package-level declarations:
//
//	var colorTable = enums.Must(colorLimit, colorNames[:])
func Must[E Ordinal](limit E, names []string, opts ...Option) *Table[E] {
	t, err := New(limit, names, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// TypeName returns the name the table reports in errors, logs and the Catalog.
func (t *Table[E]) TypeName() string {
	return t.typeName
}

// Len returns the cardinality of E.
func (t *Table[E]) Len() int {
	return len(t.names)
}

// Valid reports whether v lies in [0, Len()).
func (t *Table[E]) Valid(v E) bool {
	return v >= 0 && uint64(v) < uint64(len(t.names))
}

// Name returns the canonical name of v, or an ErrOrdinalOutOfRange error when
// v is not a value of the type.
func (t *Table[E]) Name(v E) (string, error) {
	if !t.Valid(v) {
		return "", NewRangeError("Name", t.typeName).WithContext(map[string]any{
			"ordinal": ordinalString(v),
			"limit":   len(t.names),
		})
	}
	return t.names[int(v)], nil
}

// MustName is like Name but panics when v is out of range.
func (t *Table[E]) MustName(v E) string {
	name, err := t.Name(v)
	if err != nil {
		panic(err)
	}
	return name
}

// String returns the canonical name of v, or "Type(n)" when v is out of
// range. It suits fmt.Stringer implementations.
func (t *Table[E]) String(v E) string {
	if !t.Valid(v) {
		return t.typeName + "(" + ordinalString(v) + ")"
	}
	return t.names[int(v)]
}

// Parse returns the value whose canonical name is exactly s. Matching is
// byte-wise and case sensitive. When s is not a canonical name, Parse returns
// the zero value and false; the value must not be used in that case.
func (t *Table[E]) Parse(s string) (E, bool) {
	ordinal, ok := search(t.sorted(), s)
	if !ok {
		t.metrics.recordMiss(context.Background())
		return 0, false
	}
	return E(ordinal), true
}

// Lookup is like Parse but reports a miss as an ErrUnknownName error that
// lists the valid names.
func (t *Table[E]) Lookup(s string) (E, error) {
	v, ok := t.Parse(s)
	if !ok {
		return 0, NewNotFoundError("Lookup", t.typeName).WithContext(map[string]any{
			"name":     strconv.Quote(s),
			"expected": t.expected(),
		})
	}
	return v, nil
}

// Names yields every canonical name in ordinal order. The sequence may be
// ranged over any number of times and does not build the sorted index.
func (t *Table[E]) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range t.names {
			if !yield(name) {
				return
			}
		}
	}
}

// All yields every value with its canonical name in ordinal order.
func (t *Table[E]) All() iter.Seq2[E, string] {
	return func(yield func(E, string) bool) {
		for i, name := range t.names {
			if !yield(E(i), name) {
				return
			}
		}
	}
}

// Values returns every value of E in ordinal order.
func (t *Table[E]) Values() []E {
	values := make([]E, len(t.names))
	for i := range values {
		values[i] = E(i)
	}
	return values
}

// Strings returns a copy of the name table.
func (t *Table[E]) Strings() []string {
	return append([]string(nil), t.names...)
}

// IndexBuilt reports whether the sorted index has been built.
func (t *Table[E]) IndexBuilt() bool {
	return t.built.Load()
}

// NameOf is Name for callers that only know the ordinal as an int.
func (t *Table[E]) NameOf(ordinal int) (string, error) {
	if ordinal < 0 || ordinal >= len(t.names) {
		return "", NewRangeError("NameOf", t.typeName).WithContext(map[string]any{
			"ordinal": ordinal,
			"limit":   len(t.names),
		})
	}
	return t.names[ordinal], nil
}

// OrdinalOf is Parse for callers that only need the ordinal as an int.
func (t *Table[E]) OrdinalOf(name string) (int, bool) {
	v, ok := t.Parse(name)
	return int(v), ok
}

// ordinalString formats v without going through any String method of E.
func ordinalString[E Ordinal](v E) string {
	if v < 0 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}

func (t *Table[E]) expected() string {
	return strings.Join(lo.Map(t.names, func(name string, _ int) string {
		return strconv.Quote(name)
	}), ", ")
}

// sorted returns the name index, building it on first use.
func (t *Table[E]) sorted() []entry {
	t.once.Do(t.build)
	return t.index
}

func (t *Table[E]) build() {
	ctx := context.Background()
	if t.tracer != nil {
		var span trace.Span
		ctx, span = t.tracer.Start(ctx, "enums.index.build",
			trace.WithAttributes(
				attribute.String("enum.type", t.typeName),
				attribute.Int("enum.size", len(t.names)),
			))
		defer span.End()
	}

	idx := buildIndex(t.names)
	for name, ordinals := range duplicates(idx) {
		t.logger.Warn("duplicate enum name",
			"type", t.typeName,
			"name", name,
			"ordinals", ordinals)
	}

	t.index = idx
	t.built.Store(true)
	t.metrics.recordBuild(ctx)

	t.logger.Debug("built enum name index",
		"type", t.typeName,
		"size", len(idx))
}
