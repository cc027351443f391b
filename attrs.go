package htable

import (
	"slices"
	"sort"
	"strings"
)

// Attrs is an ordered attribute store mapping names to values. A name
// appears at most once; names keep their insertion order, which makes
// rendering deterministic. Multi-valued attributes such as "class" hold
// space-separated tokens.
//
// Every node type embeds Attrs, so attribute mutation is available
// directly on tables, sections, rows, and cells. All operations are total:
// unknown names are no-ops on removal and fall back to a default on lookup.
type Attrs struct {
	names  []string
	values map[string]string
}

// Attr is a single rendered name/value pair, as handed to [RenderTag].
type Attr struct {
	Name  string
	Value string
}

// NewAttrs builds an attribute store from an initial map. Map iteration
// order is random, so the initial names are applied in sorted order;
// later mutation appends in call order as usual.
func NewAttrs(init map[string]string) Attrs {
	var a Attrs
	names := make([]string, 0, len(init))
	for name := range init {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		a.Set(name, init[name])
	}
	return a
}

// Set replaces the attribute's value unconditionally, creating the
// attribute if it does not exist.
func (a *Attrs) Set(name, value string) *Attrs {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, ok := a.values[name]; !ok {
		a.names = append(a.names, name)
	}
	a.values[name] = value
	return a
}

// Add appends value as an additional token of the named attribute. A
// missing attribute is created as if by [Attrs.Set]. Adding a token that
// is already present is a no-op, so Add is idempotent.
func (a *Attrs) Add(name, value string) *Attrs {
	return a.merge(name, value, false)
}

// Prepend inserts value as the first token of the named attribute. Like
// [Attrs.Add] it creates missing attributes and skips duplicate tokens.
func (a *Attrs) Prepend(name, value string) *Attrs {
	return a.merge(name, value, true)
}

func (a *Attrs) merge(name, value string, prepend bool) *Attrs {
	cur, ok := a.lookup(name)
	if !ok {
		return a.Set(name, value)
	}
	tokens := strings.Fields(cur)
	if slices.Contains(tokens, value) {
		return a
	}
	if prepend {
		a.values[name] = value + " " + cur
	} else {
		a.values[name] = cur + " " + value
	}
	return a
}

// Remove deletes the matching token from the named attribute. When the
// last token goes, the attribute itself is deleted. Unknown names and
// absent tokens are no-ops.
func (a *Attrs) Remove(name, token string) *Attrs {
	cur, ok := a.lookup(name)
	if !ok {
		return a
	}
	tokens := strings.Fields(cur)
	kept := tokens[:0]
	for _, t := range tokens {
		if t != token {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		return a.Delete(name)
	}
	a.values[name] = strings.Join(kept, " ")
	return a
}

// Delete removes the attribute entirely, whatever its value.
func (a *Attrs) Delete(name string) *Attrs {
	if _, ok := a.lookup(name); !ok {
		return a
	}
	delete(a.values, name)
	a.names = slices.DeleteFunc(a.names, func(n string) bool { return n == name })
	return a
}

// Clear removes all attributes.
func (a *Attrs) Clear() *Attrs {
	a.names = nil
	a.values = nil
	return a
}

// Get returns the attribute's value, or def when it is not set.
func (a *Attrs) Get(name, def string) string {
	if v, ok := a.lookup(name); ok {
		return v
	}
	return def
}

// Has reports whether the attribute is set.
func (a *Attrs) Has(name string) bool {
	_, ok := a.lookup(name)
	return ok
}

// Len returns the number of attributes.
func (a *Attrs) Len() int { return len(a.names) }

func (a *Attrs) lookup(name string) (string, bool) {
	if a.values == nil {
		return "", false
	}
	v, ok := a.values[name]
	return v, ok
}

// pairs returns the attributes as ordered name/value pairs for rendering.
func (a *Attrs) pairs() []Attr {
	out := make([]Attr, len(a.names))
	for i, name := range a.names {
		out[i] = Attr{Name: name, Value: a.values[name]}
	}
	return out
}
