package dom

// CountByName returns the number of elements named name in the subtree
// rooted at e, including e itself. Recursion terminates at leaves, whose
// depth is bounded by the parse stack capacity.
func (e *Element) CountByName(name string) int {
	count := 0
	if e.name == name {
		count++
	}
	for _, child := range e.children {
		count += child.CountByName(name)
	}
	return count
}

// CollectByName fills dst with elements named name from the subtree rooted
// at e, depth-first in document order, stopping once dst is full. It
// returns the number of elements written.
func (e *Element) CollectByName(name string, dst []*Element) int {
	if len(dst) == 0 {
		return 0
	}

	found := 0
	if e.name == name {
		dst[0] = e
		dst = dst[1:]
		found++
	}
	for _, child := range e.children {
		n := child.CollectByName(name, dst)
		dst = dst[n:]
		found += n
	}
	return found
}

// AttributeByName returns the first attribute of e named name, or nil if
// there is no such attribute.
func (e *Element) AttributeByName(name string) *Attribute {
	for _, attr := range e.attrs {
		if attr.name == name {
			return attr
		}
	}
	return nil
}
