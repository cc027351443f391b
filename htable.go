package htable

import "errors"

// Sentinel errors for programmatic error handling.
var (
	ErrIndexNotFound = errors.New("index not found")
	ErrReadOnly      = errors.New("read-only: cannot assign by index")
	ErrUnknownKey    = errors.New("unknown accessor key")
	ErrInvalidName   = errors.New("invalid markup name")
)

// Kind identifies which structural division of a table a Section or Row
// belongs to. It determines both the section's wrapper tag and the tag
// used for the cells of its rows.
type Kind string

const (
	KindHead Kind = "head"
	KindBody Kind = "body"
	KindFoot Kind = "foot"
)

// String returns the kind name.
func (k Kind) String() string { return string(k) }

type kindTags struct {
	wrapper string // section wrapper tag
	cell    string // tag used for each cell in the section's rows
}

var tagSets = map[Kind]kindTags{
	KindHead: {wrapper: "thead", cell: "th"},
	KindBody: {wrapper: "tbody", cell: "td"},
	KindFoot: {wrapper: "tfoot", cell: "td"},
}

// Kinds returns all section kinds in their rendered order: head, foot, body.
// A table emits tfoot before tbody, matching the HTML convention that
// <tfoot> may precede <tbody>.
func Kinds() []Kind {
	return []Kind{KindHead, KindFoot, KindBody}
}

// CellDef describes one cell for bulk insertion: its content plus optional
// initial attributes. A slice of CellDef replaces a value→attributes map so
// that insertion order is preserved.
type CellDef struct {
	Value string
	Attrs map[string]string
}
