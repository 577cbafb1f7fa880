// Package dom holds the tree model produced by the parser: elements with
// ordered attributes and children, in document order.
package dom

// Element is a node in the parsed tree.
type Element struct {
	name     string
	body     string
	hasBody  bool
	attrs    []*Attribute
	children []*Element
}

// NewElement returns an element with the given name and nothing attached.
func NewElement(name string) *Element {
	return &Element{name: name}
}

// Name returns the element name.
func (e *Element) Name() string {
	return e.name
}

// Body returns the loose text content of the element, if any.
func (e *Element) Body() string {
	return e.body
}

// HasBody reports whether the element has loose text content.
func (e *Element) HasBody() bool {
	return e.hasBody
}

// SetBody sets the element body, replacing any previous body.
func (e *Element) SetBody(body string) {
	e.body = body
	e.hasBody = true
}

// AppendChild attaches child as the last child of e.
func (e *Element) AppendChild(child *Element) {
	e.children = append(e.children, child)
}

// AppendAttribute attaches attr as the last attribute of e.
func (e *Element) AppendAttribute(attr *Attribute) {
	e.attrs = append(e.attrs, attr)
}

// Children returns a copy of the child element slice in document order.
func (e *Element) Children() []*Element {
	result := make([]*Element, len(e.children))
	copy(result, e.children)
	return result
}

// Attributes returns a copy of the attribute slice in document order.
func (e *Element) Attributes() []*Attribute {
	result := make([]*Attribute, len(e.attrs))
	copy(result, e.attrs)
	return result
}

// Reset returns the element to its freshly constructed state, detaching
// all children and attributes.
func (e *Element) Reset(name string) {
	e.name = name
	e.body = ""
	e.hasBody = false
	e.attrs = nil
	e.children = nil
}

// Attribute is a name/value pair attached to an element.
type Attribute struct {
	name     string
	value    string
	hasValue bool
}

// NewAttribute returns an attribute with the given name and no value.
func NewAttribute(name string) *Attribute {
	return &Attribute{name: name}
}

// Name returns the attribute name.
func (a *Attribute) Name() string {
	return a.name
}

// Value returns the attribute value; empty until set.
func (a *Attribute) Value() string {
	return a.value
}

// HasValue reports whether the attribute value has been set.
func (a *Attribute) HasValue() bool {
	return a.hasValue
}

// SetValue sets the attribute value. It reports false if the value was
// already set; the value is set at most once.
func (a *Attribute) SetValue(value string) bool {
	if a.hasValue {
		return false
	}
	a.value = value
	a.hasValue = true
	return true
}
