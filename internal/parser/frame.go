package parser

import "github.com/pauldmccarthy/lilx/internal/dom"

// frameKind tags the two frame shapes that share the construction stack.
// Handlers check the tag before touching a frame, so a grammar or stack
// fault surfaces as a clean parse failure instead of a misread handle.
type frameKind uint8

const (
	frameNone frameKind = iota
	frameElement
	frameAttribute
)

func (k frameKind) String() string {
	switch k {
	case frameElement:
		return "element"
	case frameAttribute:
		return "attribute"
	}
	return "none"
}

// frame is one in-progress node on the construction stack: an element
// awaiting its closing tag, or an attribute awaiting its value.
type frame struct {
	kind frameKind
	elem *dom.Element
	attr *dom.Attribute
}

func elementFrame(e *dom.Element) frame {
	return frame{kind: frameElement, elem: e}
}

func attributeFrame(a *dom.Attribute) frame {
	return frame{kind: frameAttribute, attr: a}
}

// same reports whether two frames reference the identical node. Used as
// the corruption guard when a popped frame must be the one just peeked.
func (f frame) same(other frame) bool {
	return f.kind == other.kind && f.elem == other.elem && f.attr == other.attr
}
