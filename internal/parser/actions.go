package parser

import (
	"strings"

	lilxerrors "github.com/pauldmccarthy/lilx/errors"
	"github.com/pauldmccarthy/lilx/internal/dom"
)

// selfCloseMarker in a winning pattern means the tag closed itself.
const selfCloseMarker = "/>"

func selfClosing(pat string) bool {
	return strings.Contains(pat, selfCloseMarker)
}

// openTag finishes an opening or self-closing tag name: a new element is
// attached as the last child of the element on top of the stack, then
// pushed unless the tag was self-closing.
func (p *parser) openTag(token, pat string) error {
	if token == "" {
		return p.failf(lilxerrors.ErrEmptyName, "element name is empty")
	}

	elem := dom.NewElement(token)
	if parent, ok := p.frames.Peek(); ok {
		if parent.kind != frameElement {
			return p.failf(lilxerrors.ErrUnexpectedFrame, "open tag %q over %s frame", token, parent.kind)
		}
		parent.elem.AppendChild(elem)
	}

	if selfClosing(pat) {
		return nil
	}
	if err := p.frames.Push(elementFrame(elem)); err != nil {
		return p.failf(lilxerrors.ErrDepthExceeded, "element %q exceeds depth %d", token, p.frames.Cap())
	}
	return nil
}

// closeTag finishes a closing tag name: the element on top of the stack
// must match the token exactly, and is popped. The caller-supplied root
// cannot be closed by a tag.
func (p *parser) closeTag(token string) error {
	if token == "" {
		return p.failf(lilxerrors.ErrEmptyName, "closing tag name is empty")
	}

	top, ok := p.frames.Peek()
	if !ok {
		return p.failf(lilxerrors.ErrStackUnderflow, "closing tag %q with no open element", token)
	}
	if top.kind != frameElement {
		return p.failf(lilxerrors.ErrUnexpectedFrame, "closing tag %q over %s frame", token, top.kind)
	}
	if p.frames.Len() == 1 {
		return p.failf(lilxerrors.ErrTagMismatch, "closing tag %q with no open element", token)
	}
	if top.elem.Name() != token {
		return p.failf(lilxerrors.ErrTagMismatch, "closing tag %q does not match open element %q", token, top.elem.Name())
	}

	popped, ok := p.frames.Pop()
	if !ok || !popped.same(top) {
		return p.failf(lilxerrors.ErrUnexpectedFrame, "popped frame is not the open element %q", token)
	}
	return nil
}

// attributeName finishes an attribute name: a new attribute is attached
// to the element on top of the stack, then pushed.
func (p *parser) attributeName(token string) error {
	if token == "" {
		return p.failf(lilxerrors.ErrEmptyName, "attribute name is empty")
	}

	top, ok := p.frames.Peek()
	if !ok {
		return p.failf(lilxerrors.ErrStackUnderflow, "attribute %q with no owning element", token)
	}
	if top.kind != frameElement {
		return p.failf(lilxerrors.ErrUnexpectedFrame, "attribute %q over %s frame", token, top.kind)
	}

	attr := dom.NewAttribute(token)
	top.elem.AppendAttribute(attr)
	if err := p.frames.Push(attributeFrame(attr)); err != nil {
		return p.failf(lilxerrors.ErrDepthExceeded, "attribute %q exceeds depth %d", token, p.frames.Cap())
	}
	return nil
}

// attributeValue finishes an attribute value: the attribute on top of
// the stack receives the token and is popped. A self-closing pattern
// additionally pops the owning element.
func (p *parser) attributeValue(token, pat string) error {
	top, ok := p.frames.Peek()
	if !ok {
		return p.failf(lilxerrors.ErrStackUnderflow, "attribute value with no open attribute")
	}
	if top.kind != frameAttribute {
		return p.failf(lilxerrors.ErrUnexpectedFrame, "attribute value over %s frame", top.kind)
	}
	if !top.attr.SetValue(token) {
		return p.failf(lilxerrors.ErrValueReset, "attribute %q value set twice", top.attr.Name())
	}

	popped, ok := p.frames.Pop()
	if !ok || !popped.same(top) {
		return p.failf(lilxerrors.ErrUnexpectedFrame, "popped frame is not the open attribute %q", top.attr.Name())
	}

	if selfClosing(pat) {
		// The owning tag closed itself, so its element never sees a
		// closing tag and is popped here.
		owner, ok := p.frames.Pop()
		if !ok {
			return p.failf(lilxerrors.ErrStackUnderflow, "self-closing tag with no open element")
		}
		if owner.kind != frameElement {
			return p.failf(lilxerrors.ErrUnexpectedFrame, "self-closing tag over %s frame", owner.kind)
		}
	}
	return nil
}

// elementBody stores loose text on the element on top of the stack,
// replacing any previous body.
func (p *parser) elementBody(token string) error {
	top, ok := p.frames.Peek()
	if !ok {
		return p.failf(lilxerrors.ErrStackUnderflow, "element body with no open element")
	}
	if top.kind != frameElement {
		return p.failf(lilxerrors.ErrUnexpectedFrame, "element body over %s frame", top.kind)
	}
	top.elem.SetBody(token)
	return nil
}
