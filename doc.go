// Package enums converts enumerated-type values to their canonical names and
// back, without each enumerated type hand-writing its own conversion code.
//
// An enumerated type is any Go integer type whose valid values are the
// contiguous ordinals 0..N-1. Its Table binds it to N canonical names, one per
// ordinal, and provides the conversions:
//
//   - Name: value to name, an O(1) index into the name table.
//   - Parse / Lookup: name to value, an O(log N) binary search over a sorted
//     (name, ordinal) index.
//   - Names / All / Strings: the names in ordinal order.
//
// # Declaring a type
//
// One declaration line per type binds it to its names:
//
//	type Color int
//
//	const (
//		Red Color = iota
//		Green
//		Blue
//		colorLimit
//	)
//
//	var colorNames = [...]string{"Red", "Green", "Blue"}
//
//	// Compile-time guard: a name list whose length differs from colorLimit
//	// produces a negative array length.
//	var (
//		_ [len(colorNames) - int(colorLimit)]struct{}
//		_ [int(colorLimit) - len(colorNames)]struct{}
//	)
//
//	var colorTable = enums.Must(colorLimit, colorNames[:])
//
//	func (c Color) String() string { return colorTable.String(c) }
//
// New (and Must) reject a limit that is not positive, or a name list whose
// length differs from the limit, with ErrInvalidDefinition.
//
// # Conversions
//
//	name, err := colorTable.Name(Green)      // "Green", nil
//	_, err = colorTable.Name(Color(7))       // ErrOrdinalOutOfRange
//	c, ok := colorTable.Parse("Green")       // Green, true
//	_, ok = colorTable.Parse("green")        // false: matching is exact
//	for name := range colorTable.Names() {} // "Red", "Green", "Blue"
//
// A miss from Parse is an expected condition and is reported through the
// boolean only; the returned value is the zero value and must not be used.
// Lookup reports the same miss as an ErrUnknownName error instead.
//
// # Thread Safety
//
// Tables are immutable once constructed. The sorted index is built exactly
// once, by the first reverse lookup, under a sync.Once; concurrent first
// callers all observe the completed index. Iteration never builds it.
//
// # Observability
//
// WithLogger, WithTracer and WithMeter attach slog and OpenTelemetry
// collaborators. The index build is logged at debug level, recorded as an
// "enums.index.build" span and counted by "enums.index.builds"; reverse
// lookup misses are counted by "enums.lookup.misses". Duplicate names, which
// make reverse lookup resolve to the lowest ordinal, are logged as warnings.
//
// # Catalog
//
// A Catalog holds tables by type name for callers that only know the type
// at runtime. See the definition, celenum and protoenum packages.
package enums
