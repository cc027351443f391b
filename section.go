package htable

import (
	"fmt"
	"strconv"
	"strings"
)

// Section is one structural division of a table: its head, body, or foot.
// The kind fixes the wrapper tag (thead/tbody/tfoot) and the cell tag its
// rows use; beyond that the three divisions behave identically, so there
// is a single Section type rather than one per kind.
//
// Rows are append-only and follow the same indexed-access contract as
// cells within a row: read and remove by index, never assign. A section
// with zero rows is valid and renders as an empty wrapper tag.
type Section struct {
	Attrs
	kind Kind
	rows list[*Row]
}

// NewSection creates a section of the given kind. When columns are given,
// a first row is created immediately to host one cell per column.
func NewSection(kind Kind, columns ...string) *Section {
	s := &Section{kind: kind}
	if len(columns) > 0 {
		s.AddCells(columns...)
	}
	return s
}

// Kind returns the section's kind.
func (s *Section) Kind() Kind { return s.kind }

// AddRow appends a new row tagged with this section's kind, populates it
// with one cell per value, and returns it.
func (s *Section) AddRow(values ...string) *Row {
	r := NewRow(s.kind)
	s.rows.add(r)
	if len(values) > 0 {
		r.AddCells(values...)
	}
	return r
}

// AddCell appends a cell to the section's last row, creating a first row
// when none exists yet. Cell-level operations on an empty section
// transparently create their row; only an explicit [Section.AddRow]
// starts a new one.
func (s *Section) AddCell(value string) *Cell {
	return s.tailRow().AddCell(value)
}

// AddCells appends one cell per value to the section's last row, creating
// it if needed, and returns that row. An empty call is a no-op and
// returns the current last row, which may be nil.
func (s *Section) AddCells(values ...string) *Row {
	if len(values) == 0 {
		r, _ := s.rows.at(s.rows.lastIndex())
		return r
	}
	return s.tailRow().AddCells(values...)
}

// AddCellDefs is the bulk variant of [Section.AddCell] with per-cell
// initial attributes. Like [Section.AddCells] it is a no-op when empty.
func (s *Section) AddCellDefs(defs ...CellDef) *Row {
	if len(defs) == 0 {
		r, _ := s.rows.at(s.rows.lastIndex())
		return r
	}
	return s.tailRow().AddCellDefs(defs...)
}

// tailRow returns the last row, creating the first one on demand.
func (s *Section) tailRow() *Row {
	if r, ok := s.rows.at(s.rows.lastIndex()); ok {
		return r
	}
	return s.AddRow()
}

// Row returns the row at index i, or [ErrIndexNotFound] carrying i.
func (s *Section) Row(i int) (*Row, error) {
	r, ok := s.rows.at(i)
	if !ok {
		return nil, fmt.Errorf("%w: row %d", ErrIndexNotFound, i)
	}
	return r, nil
}

// SetRow always returns [ErrReadOnly]: rows are append-only and can never
// be assigned by index, valid or not.
func (s *Section) SetRow(int, *Row) error {
	return fmt.Errorf("%w: rows are append-only", ErrReadOnly)
}

// UnsetRow removes the row at index i. Surviving rows keep their indices;
// a missing index is a no-op, not an error.
func (s *Section) UnsetRow(i int) *Section {
	s.rows.unset(i)
	return s
}

// HasRow reports whether index i names a present row.
func (s *Section) HasRow(i int) bool { return s.rows.has(i) }

// Len returns the number of currently-present rows.
func (s *Section) Len() int { return s.rows.count() }

// Rewind resets the section's iteration cursor to the first row. The
// cursor is shared per section; interleaved iteration from two call sites
// is not supported.
func (s *Section) Rewind() { s.rows.rewind() }

// Next returns the row under the cursor and advances it, reporting false
// once the cursor reaches an absent index.
func (s *Section) Next() (*Row, bool) { return s.rows.step() }

// Get resolves structural shorthand keys, falling back to attribute
// lookup:
//
//   - "row"    → the last row (the highest present index)
//   - "row_N"  → the row at index N, or [ErrIndexNotFound]
//   - "row_*" with a non-numeric suffix → [ErrUnknownKey]
//   - anything else → the attribute's value, or "" when unset
//
// Shorthand resolution is a fixed dispatch on the key; no reflection.
func (s *Section) Get(key string) (any, error) {
	if key == "row" {
		return s.Row(s.rows.lastIndex())
	}
	if suffix, ok := strings.CutPrefix(key, "row_"); ok {
		i, err := strconv.Atoi(suffix)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
		}
		return s.Row(i)
	}
	return s.Attrs.Get(key, ""), nil
}

// Render serializes the section: each row's markup on its own line inside
// the kind's wrapper tag. An empty section renders as an empty-bodied
// wrapper.
func (s *Section) Render() (string, error) {
	lines := make([]string, 0, s.rows.count())
	for _, r := range s.rows.collect() {
		line, err := r.Render()
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	return RenderTag(tagSets[s.kind].wrapper, s.pairs(), strings.Join(lines, "\n"))
}
