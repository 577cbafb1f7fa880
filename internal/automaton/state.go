// Package automaton holds the tokenizing state machine: the fixed set of
// states, the transition tables for both attribute quoting styles, and the
// selection of the best-matching transition at an input position.
package automaton

// State identifies a position in the tokenizing automaton. The value of a
// state is its index into the transition tables.
type State uint8

const (
	// TagOpenName is active inside an opening or self-closing tag name.
	TagOpenName State = iota
	// TagCloseName is active inside a closing tag name.
	TagCloseName
	// AttributeName is active inside an attribute name.
	AttributeName
	// AttributeValue is active inside an attribute value.
	AttributeValue
	// ElementBody is active inside loose element text.
	ElementBody
	// Comment is active inside a comment body.
	Comment
	// End is the terminal state: the document has been fully consumed.
	End

	numStates
)

var stateNames = [numStates]string{
	TagOpenName:    "TagOpenName",
	TagCloseName:   "TagCloseName",
	AttributeName:  "AttributeName",
	AttributeValue: "AttributeValue",
	ElementBody:    "ElementBody",
	Comment:        "Comment",
	End:            "End",
}

func (s State) String() string {
	if s < numStates {
		return stateNames[s]
	}
	return "Unknown"
}

// Terminal reports whether s is the terminal state.
func (s State) Terminal() bool {
	return s == End
}
