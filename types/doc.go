// Package types provides ready-made enumerated types built on the enums
// package.
//
// Each type is a plain Go integer type with a package-level table that gives it
// canonical names, fmt.Stringer, encoding.TextMarshaler (and so JSON) and YAML
// support:
//
//	c, ok := types.ParseColor("Green") // types.Green, true
//	fmt.Println(types.Blue)            // Blue
//	fmt.Println(types.Color(9))        // types.Color(9)
//
// Supported types:
//   - Color: Red, Green, Blue
//   - Direction: Up, Down, Left, Right
//
// Both tables are registered in enums.DefaultCatalog under their Go type
// names ("types.Color", "types.Direction").
//
// Flag adapts any enum table to a pflag.Value so enum-typed variables can be
// set from the command line.
package types
