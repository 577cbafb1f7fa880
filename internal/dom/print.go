package dom

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a human-readable indented rendering of the subtree rooted
// at e. One line per element: name, attributes as (name=value) pairs, then
// the body if present. Children are indented one space per depth level.
func (e *Element) Fprint(w io.Writer) error {
	return e.fprint(w, 0)
}

func (e *Element) fprint(w io.Writer, depth int) error {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", depth+1))
	b.WriteString(e.name)
	b.WriteByte(' ')
	for _, attr := range e.attrs {
		fmt.Fprintf(&b, "(%s=%s) ", attr.name, attr.value)
	}
	if e.hasBody {
		b.WriteString(e.body)
	}
	b.WriteByte('\n')

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	for _, child := range e.children {
		if err := child.fprint(w, depth+1); err != nil {
			return err
		}
	}
	return nil
}
