// Package parser drives the tokenizing automaton over raw input and
// assembles the tree. It is single-pass and non-recursive: one bounded
// stack tracks both in-progress elements and in-progress attributes.
package parser

import (
	lilxerrors "github.com/pauldmccarthy/lilx/errors"
	"github.com/pauldmccarthy/lilx/internal/automaton"
	"github.com/pauldmccarthy/lilx/internal/dom"
	"github.com/pauldmccarthy/lilx/internal/stack"
)

// RootName is the sentinel name given to every tree root. The root is
// supplied by the caller and never participates in close-tag matching.
const RootName = "root"

// Trace receives debug output for each automaton step when installed.
type Trace func(format string, args ...any)

// Config bounds and configures a single parse attempt.
type Config struct {
	// Style selects the attribute quoting grammar.
	Style automaton.QuoteStyle
	// MaxTokenLength bounds element names, bodies, attribute names, and
	// attribute values. Exceeding it fails the parse.
	MaxTokenLength int
	// MaxDepth bounds the combined element and attribute nesting depth.
	MaxDepth int
	// Trace, when non-nil, receives one line per automaton step.
	Trace Trace
}

// Parse runs the automaton over input and builds the tree under root.
// On failure root is reset to its initial state, detaching everything
// built during the attempt, and the error is returned.
func Parse(input []byte, root *dom.Element, cfg Config) error {
	root.Reset(RootName)

	if len(input) == 0 || input[0] != '<' {
		return &lilxerrors.Parse{
			Code:    lilxerrors.ErrInputNotXML,
			Message: "input does not begin with '<'",
			Offset:  0,
		}
	}

	p := &parser{
		input:    input,
		pos:      1, // the leading '<' is consumed unconditionally
		state:    automaton.TagOpenName,
		style:    cfg.Style,
		frames:   stack.NewBounded[frame](cfg.MaxDepth),
		token:    make([]byte, 0, 64),
		maxToken: cfg.MaxTokenLength,
		trace:    cfg.Trace,
	}

	if err := p.run(root); err != nil {
		root.Reset(RootName)
		return err
	}
	return nil
}

type parser struct {
	input    []byte
	pos      int
	state    automaton.State
	style    automaton.QuoteStyle
	frames   *stack.Bounded[frame]
	token    []byte
	maxToken int
	trace    Trace
}

func (p *parser) run(root *dom.Element) error {
	if err := p.frames.Push(elementFrame(root)); err != nil {
		return p.failf(lilxerrors.ErrDepthExceeded, "stack capacity %d cannot hold the root", p.frames.Cap())
	}

	for p.state != automaton.End && p.pos < len(p.input) {
		res, ok := automaton.Next(p.style, p.state, p.input, p.pos)
		if !ok {
			// No transition: the current byte extends the pending token.
			if len(p.token) == p.maxToken {
				return p.failf(lilxerrors.ErrTokenOverflow, "token exceeds %d bytes", p.maxToken)
			}
			p.token = append(p.token, p.input[p.pos])
			p.pos++
			continue
		}

		token := string(p.token)
		p.token = p.token[:0]
		p.tracef("%s: token %q -> %s (pattern %q, skip %d)",
			p.state, token, res.Next, res.Pattern, res.Consumed)

		// The handler for the originating state runs before the move.
		if err := p.dispatch(token, res.Pattern); err != nil {
			return err
		}
		p.pos += res.Consumed
		p.state = res.Next
	}

	if p.state != automaton.End {
		return p.failf(lilxerrors.ErrUnexpectedEOF, "input ended before the document was closed")
	}
	if p.frames.Len() != 1 {
		return p.failf(lilxerrors.ErrUnbalanced, "%d frames left open at end of input", p.frames.Len()-1)
	}
	return nil
}

func (p *parser) dispatch(token, pat string) error {
	switch p.state {
	case automaton.TagOpenName:
		return p.openTag(token, pat)
	case automaton.TagCloseName:
		return p.closeTag(token)
	case automaton.AttributeName:
		return p.attributeName(token)
	case automaton.AttributeValue:
		return p.attributeValue(token, pat)
	case automaton.ElementBody:
		return p.elementBody(token)
	case automaton.Comment:
		// Comment bodies are discarded.
		return nil
	}
	// End is terminal and never dispatched.
	return nil
}

func (p *parser) tracef(format string, args ...any) {
	if p.trace != nil {
		p.trace(format, args...)
	}
}

// failf builds a parse failure stamped with the current state and offset.
func (p *parser) failf(code lilxerrors.ParseCode, format string, args ...any) error {
	err := lilxerrors.NewParsef(code, format, args...)
	err.Offset = p.pos
	err.State = p.state.String()
	return err
}
