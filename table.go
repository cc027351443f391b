package htable

import (
	"fmt"
	"strings"
)

// Table is the root of the builder tree. It owns at most one section of
// each kind, created lazily on first access: asking for a section that
// does not exist yet builds it, and the same instance is returned from
// then on. Only the explicit Add{Head,Body,Foot} calls replace an
// existing section.
//
// Row-level operations address the body. A table with no body behaves as
// an empty collection; it does not grow a body until a row is added or
// the body is accessed by name.
type Table struct {
	Attrs
	head *Section
	body *Section
	foot *Section
}

// NewTable creates an empty table with no sections.
func NewTable() *Table {
	return &Table{}
}

// AddHead forges a new head section, replacing any existing one, and
// returns it. This is the one place replacement is allowed; [Table.Head]
// never re-creates a present section.
func (t *Table) AddHead() *Section {
	t.head = NewSection(KindHead)
	return t.head
}

// AddBody forges a new body section, replacing any existing one, and
// returns it.
func (t *Table) AddBody() *Section {
	t.body = NewSection(KindBody)
	return t.body
}

// AddFoot forges a new foot section, replacing any existing one, and
// returns it.
func (t *Table) AddFoot() *Section {
	t.foot = NewSection(KindFoot)
	return t.foot
}

// Head returns the head section, creating it on first access.
func (t *Table) Head() *Section {
	if t.head == nil {
		t.AddHead()
	}
	return t.head
}

// Body returns the body section, creating it on first access.
func (t *Table) Body() *Section {
	if t.body == nil {
		t.AddBody()
	}
	return t.body
}

// Foot returns the foot section, creating it on first access.
func (t *Table) Foot() *Section {
	if t.foot == nil {
		t.AddFoot()
	}
	return t.foot
}

// AddRow appends a row to the body, creating the body if absent, and
// returns the body section rather than the new row. Returning the section
// keeps table-level chains at the section level; use [Section.AddRow]
// when the row itself is needed.
func (t *Table) AddRow(values ...string) *Section {
	body := t.Body()
	body.AddRow(values...)
	return body
}

// Row returns the body row at index i, or [ErrIndexNotFound] carrying i.
// A table with no body has no rows.
func (t *Table) Row(i int) (*Row, error) {
	if t.body == nil {
		return nil, fmt.Errorf("%w: row %d", ErrIndexNotFound, i)
	}
	return t.body.Row(i)
}

// SetRow always returns [ErrReadOnly]: rows are append-only and can never
// be assigned by index, valid or not.
func (t *Table) SetRow(int, *Row) error {
	return fmt.Errorf("%w: rows are append-only", ErrReadOnly)
}

// UnsetRow removes the body row at index i. A missing index, or a missing
// body, is a no-op.
func (t *Table) UnsetRow(i int) *Table {
	if t.body != nil {
		t.body.UnsetRow(i)
	}
	return t
}

// HasRow reports whether index i names a present body row.
func (t *Table) HasRow(i int) bool {
	return t.body != nil && t.body.HasRow(i)
}

// Len returns the number of body rows, zero when the body is absent.
func (t *Table) Len() int {
	if t.body == nil {
		return 0
	}
	return t.body.Len()
}

// Rewind resets the body's iteration cursor. A table with no body is a
// no-op.
func (t *Table) Rewind() {
	if t.body != nil {
		t.body.Rewind()
	}
}

// Next returns the body row under the cursor and advances it, reporting
// false once the cursor reaches an absent index or the body is absent.
func (t *Table) Next() (*Row, bool) {
	if t.body == nil {
		return nil, false
	}
	return t.body.Next()
}

// Get resolves structural shorthand keys, falling back to attribute
// lookup:
//
//   - "head", "body", "foot" → that section, lazily created when absent
//   - "row"   → the last body row
//   - "row_N" → the body row at index N, or [ErrIndexNotFound]
//   - "row_*" with a non-numeric suffix → [ErrUnknownKey]
//   - anything else → the attribute's value, or "" when unset
//
// Row shorthands do not create a body; with no body they resolve against
// an empty collection.
func (t *Table) Get(key string) (any, error) {
	switch key {
	case "head":
		return t.Head(), nil
	case "body":
		return t.Body(), nil
	case "foot":
		return t.Foot(), nil
	}
	if key == "row" || strings.HasPrefix(key, "row_") {
		if t.body == nil {
			return (&Section{kind: KindBody}).Get(key)
		}
		return t.body.Get(key)
	}
	return t.Attrs.Get(key, ""), nil
}

// Render serializes the whole table: its present sections in head, foot,
// body order (tfoot before tbody, per the HTML convention), one per line,
// inside a <table> tag carrying the table's attributes. Any error raised
// while rendering a child is not propagated; its message becomes the
// output instead. This fail-soft boundary exists only here at the root.
func (t *Table) Render() string {
	out, err := t.render()
	if err != nil {
		return err.Error()
	}
	return out
}

func (t *Table) render() (string, error) {
	var lines []string
	for _, s := range []*Section{t.head, t.foot, t.body} {
		if s == nil {
			continue
		}
		line, err := s.Render()
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	return RenderTag("table", t.pairs(), strings.Join(lines, "\n"))
}
