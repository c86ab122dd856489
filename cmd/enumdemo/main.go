// Command enumdemo prints the names of the bundled enumerations and converts
// between names and ordinals of any enumeration in the catalog.
//
// Usage:
//
//	enumdemo                                   # print colors, round-trip "Green", print directions
//	enumdemo types                             # list registered enum types
//	enumdemo list types.Direction              # names in ordinal order
//	enumdemo name types.Color 2                # Blue
//	enumdemo parse types.Color Green           # 1
//	enumdemo eval 'enum_name("types.Color", 0)'
//	enumdemo --defs ./enums.yaml list severity # enumerations declared in YAML
//	enumdemo move --direction Left             # enum-typed flag
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
