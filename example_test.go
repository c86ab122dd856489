package enums_test

import (
	"fmt"

	"github.com/zero-day-ai/enums"
)

type Color int

const (
	Red Color = iota
	Green
	Blue
	colorLimit
)

var colorNames = [...]string{"Red", "Green", "Blue"}

var (
	_ [len(colorNames) - int(colorLimit)]struct{}
	_ [int(colorLimit) - len(colorNames)]struct{}
)

var colorTable = enums.Must(colorLimit, colorNames[:], enums.WithTypeName("Color"))

func (c Color) String() string { return colorTable.String(c) }

// ExampleNew demonstrates declaring a table and converting in both directions.
func ExampleNew() {
	for name := range colorTable.Names() {
		fmt.Println(name)
	}

	if c, ok := colorTable.Parse("Green"); ok && c == Green {
		fmt.Println("Success!!!")
	}

	if _, ok := colorTable.Parse("green"); !ok {
		fmt.Println("names are case sensitive")
	}

	fmt.Println(Color(7))

	// Output:
	// Red
	// Green
	// Blue
	// Success!!!
	// names are case sensitive
	// Color(7)
}

// ExampleTable_Lookup shows the error reported for an unknown name.
func ExampleTable_Lookup() {
	_, err := colorTable.Lookup("Purple")
	fmt.Println(err)

	// Output:
	// enums: Color.Lookup (not_found): unknown name [context: map[expected:"Red", "Green", "Blue" name:"Purple"]]
}
