package htable

import (
	"fmt"
	"strings"
)

// Row is an ordered sequence of cells rendered as one <tr> line of a
// table. The kind of the section it belongs to is fixed at construction
// and picks the cell tag: head rows render <th> cells, body and foot rows
// render <td>.
//
// Cells are append-only. They can be read and removed by index but never
// assigned by index; see [Row.SetCell].
type Row struct {
	Attrs
	kind  Kind
	cells list[*Cell]
}

// NewRow creates a standalone row of the given kind. Most callers go
// through [Section.AddRow] instead.
func NewRow(kind Kind) *Row {
	return &Row{kind: kind}
}

// Kind returns the section kind the row was created for.
func (r *Row) Kind() Kind { return r.kind }

// AddCell appends a new cell with the given content and returns it, so
// further cell-level mutation can chain off the call.
func (r *Row) AddCell(value string) *Cell {
	c := NewCell(value)
	r.cells.add(c)
	return c
}

// AddCells appends one cell per value, in order. An empty call is a no-op.
func (r *Row) AddCells(values ...string) *Row {
	for _, v := range values {
		r.AddCell(v)
	}
	return r
}

// AddCellDefs appends one cell per definition, in order, applying each
// definition's initial attributes.
func (r *Row) AddCellDefs(defs ...CellDef) *Row {
	for _, def := range defs {
		c := r.AddCell(def.Value)
		c.Attrs = NewAttrs(def.Attrs)
	}
	return r
}

// Cell returns the cell at index i, or [ErrIndexNotFound] carrying i.
func (r *Row) Cell(i int) (*Cell, error) {
	c, ok := r.cells.at(i)
	if !ok {
		return nil, fmt.Errorf("%w: cell %d", ErrIndexNotFound, i)
	}
	return c, nil
}

// SetCell always returns [ErrReadOnly]: cells are append-only and can
// never be assigned by index, valid or not.
func (r *Row) SetCell(int, *Cell) error {
	return fmt.Errorf("%w: cells are append-only", ErrReadOnly)
}

// UnsetCell removes the cell at index i. Surviving cells keep their
// indices; a missing index is a no-op, not an error.
func (r *Row) UnsetCell(i int) *Row {
	r.cells.unset(i)
	return r
}

// HasCell reports whether index i names a present cell.
func (r *Row) HasCell(i int) bool { return r.cells.has(i) }

// Len returns the number of currently-present cells.
func (r *Row) Len() int { return r.cells.count() }

// Rewind resets the row's iteration cursor to the first cell. The cursor
// is shared per row; interleaved iteration from two call sites is not
// supported.
func (r *Row) Rewind() { r.cells.rewind() }

// Next returns the cell under the cursor and advances it, reporting false
// once the cursor reaches an absent index.
func (r *Row) Next() (*Cell, bool) { return r.cells.step() }

// Render serializes the row: its cells concatenated in insertion order
// inside a <tr> tag carrying the row's attributes.
func (r *Row) Render() (string, error) {
	tags := tagSets[r.kind]
	var inner strings.Builder
	for _, c := range r.cells.collect() {
		s, err := c.render(tags.cell)
		if err != nil {
			return "", err
		}
		inner.WriteString(s)
	}
	return RenderTag("tr", r.pairs(), inner.String())
}
