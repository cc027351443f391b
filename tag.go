package htable

import (
	"fmt"
	"html"
	"strings"
)

// RenderTag serializes one markup element: an opening tag carrying the
// given attributes, the inner content verbatim, and the closing tag. It is
// a pure function; every node's render path ultimately funnels through it.
//
// Attribute values are HTML-escaped. Inner content is not; it is expected
// to be already-rendered markup (or a cell value the caller controls).
// Tag and attribute names are validated and yield [ErrInvalidName] when
// they could not produce well-formed markup.
func RenderTag(name string, attrs []Attr, inner string) (string, error) {
	if !validTagName(name) {
		return "", fmt.Errorf("%w: tag %q", ErrInvalidName, name)
	}
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(name)
	for _, attr := range attrs {
		if !validAttrName(attr.Name) {
			return "", fmt.Errorf("%w: attribute %q", ErrInvalidName, attr.Name)
		}
		sb.WriteString(" ")
		sb.WriteString(attr.Name)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(attr.Value))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	sb.WriteString(inner)
	sb.WriteString("</")
	sb.WriteString(name)
	sb.WriteString(">")
	return sb.String(), nil
}

func validTagName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-'):
		default:
			return false
		}
	}
	return true
}

func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsAny(name, " \t\n\"'>/=<")
}
