// Package htable builds HTML tables programmatically.
//
// A [Table] owns up to three sections (head, body, foot), each section an
// ordered sequence of rows, each row an ordered sequence of cells. Every
// node carries an ordered attribute store ([Attrs]) with token-merge
// semantics for multi-valued attributes such as "class". The tree is
// mutable while building and serializes to nested markup deterministically.
//
// # Building
//
// Missing children are created lazily: asking a table for its head builds
// the head, and adding a cell to an empty section builds its first row.
// The add operations return the created (or targeted) node so calls chain
// naturally:
//
//	tbl := htable.NewTable()
//	tbl.Set("class", "report")
//	tbl.Head().AddRow("Name", "Age")
//	tbl.AddRow("alice", "34")
//	tbl.AddRow("bob", "41")
//	fmt.Println(tbl.Render())
//
// [Table.AddRow] returns the body section, not the new row, so the chain
// stays at the table/section level; use [Section.AddRow] to get the row.
//
// # Attributes
//
// [Attrs.Set] replaces a value; [Attrs.Add] and [Attrs.Prepend] merge a
// token into a space-separated list, skipping duplicates:
//
//	tbl.Set("class", "active")
//	tbl.Add("class", "highlight") // class="active highlight"
//
// [Attrs.Remove] deletes a single token (the attribute goes away with its
// last token); [Attrs.Delete] removes the attribute outright.
//
// # Indexed access
//
// Rows and cells support read-only access by index: lookups on an absent
// index return [ErrIndexNotFound], assignment by index always returns
// [ErrReadOnly], and removal by index leaves a gap rather than shifting
// later elements. Sequential iteration ([Section.Rewind], [Section.Next])
// starts at index 0 and stops at the first gap. Each collection has one
// iteration cursor; iterating the same instance from two call sites at
// once is not supported, and neither is any other concurrent use.
//
// # Shorthand accessors
//
// [Table.Get] and [Section.Get] resolve structural shorthand strings:
// "head", "body", and "foot" return (lazily creating) the section;
// "row" returns the last row; "row_2" returns the row at index 2. Other
// keys fall back to attribute lookup. A malformed shorthand such as
// "row_x" returns [ErrUnknownKey].
//
// # Rendering
//
// [Table.Render] emits present sections in head, foot, body order (tfoot
// may precede tbody in HTML) and is fail-soft: an error from a child
// render becomes the returned string. Everywhere else errors propagate
// normally. The underlying serializer, [RenderTag], escapes attribute
// values but passes inner content through verbatim.
//
// # Other renditions
//
// [Table.Text] renders an aligned plain-text preview of the cell values
// and [Table.Markdown] a GitHub-flavored Markdown table. [FromYAML]
// builds a table from a declarative YAML definition.
//
// # Named instances
//
// [Registry] caches tables by name with create-on-miss semantics:
//
//	reg := htable.NewRegistry()
//	tbl := reg.Instance("users", map[string]string{"class": "users"})
package htable
