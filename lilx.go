// Package lilx parses a small, bounded subset of XML into an in-memory
// tree. It is built for constrained inputs: document size, nesting depth,
// and token length are all bounded up front, and exceeding a bound is a
// parse failure, not a crash.
//
// The subset has no namespaces, CDATA, processing instructions, DTDs,
// entity references, or encoding handling, and classification is ASCII
// byte oriented. Comments are accepted and discarded.
package lilx

import (
	"fmt"

	"github.com/pauldmccarthy/lilx/internal/dom"
	"github.com/pauldmccarthy/lilx/internal/parser"
)

// Element is a node in a parsed tree: a name, optional loose text, and
// ordered attributes and children in document order.
type Element = dom.Element

// Attribute is a name/value pair attached to an Element.
type Attribute = dom.Attribute

// RootName is the name carried by every tree root. The root is a
// container supplied by (or returned to) the caller; it does not
// correspond to a tag in the input.
const RootName = parser.RootName

// NewRoot returns an empty element suitable as a CreateTree root.
func NewRoot() *Element {
	return dom.NewElement(RootName)
}

// Parse parses input and returns the root of the resulting tree.
func Parse(input []byte, opts ...Option) (*Element, error) {
	root := NewRoot()
	if err := CreateTree(input, root, opts...); err != nil {
		return nil, err
	}
	return root, nil
}

// ParseString parses input and returns the root of the resulting tree.
func ParseString(input string, opts ...Option) (*Element, error) {
	return Parse([]byte(input), opts...)
}

// CreateTree parses input into the caller-provided root. The input must
// begin with '<'. On failure the root is left in its initial state with
// nothing attached, and no partial tree is exposed.
func CreateTree(input []byte, root *Element, opts ...Option) error {
	if root == nil {
		return fmt.Errorf("parse xml: nil root")
	}
	cfg, err := buildConfig(opts...)
	if err != nil {
		return err
	}
	if err := parser.Parse(input, root, cfg); err != nil {
		return fmt.Errorf("parse xml: %w", err)
	}
	return nil
}
