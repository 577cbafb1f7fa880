package errors

import (
	"errors"
	"fmt"
)

// ParseCode classifies why a parse attempt failed.
type ParseCode string

const (
	// ErrInputNotXML indicates the input does not begin with '<'.
	ErrInputNotXML ParseCode = "input-not-xml"
	// ErrTokenOverflow indicates a token exceeded the configured maximum length.
	ErrTokenOverflow ParseCode = "token-overflow"
	// ErrDepthExceeded indicates the combined element and attribute nesting
	// exceeded the configured stack capacity.
	ErrDepthExceeded ParseCode = "depth-exceeded"
	// ErrStackUnderflow indicates a handler needed a frame the stack did not hold.
	ErrStackUnderflow ParseCode = "stack-underflow"
	// ErrUnexpectedFrame indicates the top stack frame was not the kind the
	// current automaton state requires.
	ErrUnexpectedFrame ParseCode = "unexpected-frame"
	// ErrTagMismatch indicates a closing tag did not match the open element.
	ErrTagMismatch ParseCode = "tag-mismatch"
	// ErrValueReset indicates an attribute value was set a second time.
	ErrValueReset ParseCode = "value-reset"
	// ErrEmptyName indicates an element or attribute name token was empty.
	ErrEmptyName ParseCode = "empty-name"
	// ErrUnexpectedEOF indicates the input ended before the terminal state.
	ErrUnexpectedEOF ParseCode = "unexpected-eof"
	// ErrUnbalanced indicates parsing finished with open elements or
	// attributes still on the stack.
	ErrUnbalanced ParseCode = "unbalanced-document"
)

// Parse describes a parse failure with a code and optional input context.
type Parse struct {
	Code    ParseCode
	Message string
	Offset  int    // byte offset into the input; -1 when unknown
	State   string // automaton state when the failure was detected
}

// Error formats the failure for display, including code and context.
func (e *Parse) Error() string {
	if e == nil {
		return "parse <nil>"
	}
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.State != "" {
		msg += fmt.Sprintf(" in state %s", e.State)
	}
	if e.Offset >= 0 {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
	}
	return msg
}

// NewParse builds a Parse failure with a code and message.
func NewParse(code ParseCode, msg string) *Parse {
	return &Parse{Code: code, Message: msg, Offset: -1}
}

// NewParsef formats a message and builds a Parse failure.
func NewParsef(code ParseCode, format string, args ...any) *Parse {
	return NewParse(code, fmt.Sprintf(format, args...))
}

// AsParse extracts a Parse failure from an error returned by the parser.
func AsParse(err error) (*Parse, bool) {
	if err == nil {
		return nil, false
	}
	var parse *Parse
	if errors.As(err, &parse) && parse != nil {
		return parse, true
	}
	return nil, false
}
