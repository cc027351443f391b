package htable

// Cell is a single content-bearing leaf within a row. Its value is the
// tag's inner content and is distinct from its attributes; both can be
// mutated after creation. Cells are created through [Row.AddCell] and its
// bulk variants and are owned by their row.
type Cell struct {
	Attrs
	value string
}

// NewCell creates a standalone cell. Most callers go through
// [Row.AddCell] instead.
func NewCell(value string) *Cell {
	return &Cell{value: value}
}

// Value returns the cell's content.
func (c *Cell) Value() string { return c.value }

// SetValue replaces the cell's content.
func (c *Cell) SetValue(value string) *Cell {
	c.value = value
	return c
}

// render emits the cell inside the tag its row's kind dictates (th for
// head rows, td otherwise).
func (c *Cell) render(tag string) (string, error) {
	return RenderTag(tag, c.pairs(), c.value)
}
