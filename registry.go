package htable

// DefaultName is the registry key used when a caller asks for a table
// without naming one.
const DefaultName = "default"

// Registry is a keyed cache of named tables with create-on-miss
// semantics. Entries live for the registry's lifetime; eviction, if any,
// is the caller's concern. Like the rest of the package it is not safe
// for concurrent use.
type Registry struct {
	tables map[string]*Table
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[string]*Table)}
}

// Instance returns the table cached under name, forging a new one on the
// first request. The attrs map seeds the new table's attributes and is
// ignored when the name is already cached. An empty name resolves to
// [DefaultName].
func (r *Registry) Instance(name string, attrs map[string]string) *Table {
	if name == "" {
		name = DefaultName
	}
	if t, ok := r.tables[name]; ok {
		return t
	}
	t := NewTable()
	t.Attrs = NewAttrs(attrs)
	r.tables[name] = t
	return t
}

// Has reports whether a table is cached under name.
func (r *Registry) Has(name string) bool {
	if name == "" {
		name = DefaultName
	}
	_, ok := r.tables[name]
	return ok
}

// Len returns the number of cached tables.
func (r *Registry) Len() int { return len(r.tables) }
