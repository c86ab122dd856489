package enums

import (
	"slices"
	"sync"

	"github.com/samber/lo"
)

// Entry is the type-erased view of a registered table. Every *Table[E]
// satisfies it.
type Entry interface {
	TypeName() string
	Len() int
	Strings() []string
	NameOf(ordinal int) (string, error)
	OrdinalOf(name string) (int, bool)
}

var _ Entry = (*Table[uint8])(nil)

// Catalog is a name-keyed set of tables. It lets code that only knows a
// type name at runtime (definition files, CEL expressions, CLIs) convert
// between ordinals and names.
//
// All operations are safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]Entry)}
}

// DefaultCatalog is the process-wide catalog used by the package-level
// Register, Get and TypeNames functions. Enum packages register their
// tables at initialization time.
var DefaultCatalog = NewCatalog()

// Register adds e under e.TypeName(). A previous entry with the same type
// name is replaced.
func (c *Catalog) Register(e Entry) {
	if e == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[e.TypeName()] = e
}

// Unregister removes the entry for typeName and reports whether it existed.
func (c *Catalog) Unregister(typeName string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[typeName]
	delete(c.entries, typeName)
	return ok
}

// Get returns the entry registered for typeName.
func (c *Catalog) Get(typeName string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[typeName]
	return e, ok
}

// Lookup is like Get but reports a missing type as an ErrUnknownName error.
func (c *Catalog) Lookup(typeName string) (Entry, error) {
	e, ok := c.Get(typeName)
	if !ok {
		return nil, NewNotFoundError("Catalog.Lookup", typeName).WithContext(map[string]any{
			"registered": c.TypeNames(),
		})
	}
	return e, nil
}

// TypeNames returns the registered type names in sorted order.
func (c *Catalog) TypeNames() []string {
	c.mu.RLock()
	names := lo.Keys(c.entries)
	c.mu.RUnlock()

	slices.Sort(names)
	return names
}

// Len returns the number of registered types.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Clear removes every entry. This is primarily useful for testing.
func (c *Catalog) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]Entry)
}

// Register adds e to DefaultCatalog.
func Register(e Entry) {
	DefaultCatalog.Register(e)
}

// Get returns the entry registered for typeName in DefaultCatalog.
func Get(typeName string) (Entry, bool) {
	return DefaultCatalog.Get(typeName)
}

// TypeNames returns the type names registered in DefaultCatalog.
func TypeNames() []string {
	return DefaultCatalog.TypeNames()
}
