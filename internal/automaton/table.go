package automaton

// QuoteStyle selects the attribute value delimiter the grammar expects.
// Some devices emit single-quoted attribute values; the choice is made
// once per parse, not per token.
type QuoteStyle uint8

const (
	// DoubleQuotes expects attribute values delimited by '"'.
	DoubleQuotes QuoteStyle = iota
	// SingleQuotes expects attribute values delimited by '\''.
	SingleQuotes
)

// alternatives is the number of pattern slots per (source, target) state
// pair. The second slot carries the self-closing variant where one exists.
const alternatives = 2

// table maps (source state, target state, alternative) to a transition
// pattern. An empty string means no transition.
type table [numStates][numStates][alternatives]string

// The tables are built once at package init and never mutated.
var (
	doubleQuoteTable = buildTable('"')
	singleQuoteTable = buildTable('\'')
)

func transitions(style QuoteStyle) *table {
	if style == SingleQuotes {
		return &singleQuoteTable
	}
	return &doubleQuoteTable
}

// buildTable returns the transition table for the grammar with q as the
// attribute value delimiter. The trailing a/A of a pattern is lookahead:
// it is the first byte of the next token, not part of the boundary.
func buildTable(q byte) table {
	quote := string(q)
	return table{
		TagOpenName: {
			TagOpenName:   {"s>s<a", "s/>s<a"},
			TagCloseName:  {"s>s</a", "s/>s</a"},
			AttributeName: {"Ssa"},
			ElementBody:   {"s>sA"},
			Comment:       {"s>s<!--sA", "s/>s<!--sA"},
			End:           {"s/>s0"},
		},
		TagCloseName: {
			TagOpenName:  {"s>s<a"},
			TagCloseName: {"s>s</a"},
			ElementBody:  {"s>sA"},
			Comment:      {"s>s<!--"},
			End:          {"s>s0"},
		},
		AttributeName: {
			AttributeValue: {"=" + quote + "sA"},
		},
		AttributeValue: {
			TagOpenName:   {quote + "s>s<a", quote + "s/>s<a"},
			TagCloseName:  {quote + "s>s</a", quote + "s/>s</a"},
			AttributeName: {quote + "Ssa"},
			ElementBody:   {quote + "s>A", quote + "s/>sA"},
			Comment:       {quote + "s>s<!--sA", quote + "s/>s<!--sA"},
			End:           {quote + "s/>s0"},
		},
		ElementBody: {
			TagOpenName:  {"s<a"},
			TagCloseName: {"s</a"},
			Comment:      {"<!--sA"},
		},
		Comment: {
			TagOpenName:  {"-->s<a"},
			TagCloseName: {"-->s</a"},
			ElementBody:  {"-->sA"},
			Comment:      {"-->s<!--sA"},
		},
		// End has no outgoing transitions.
	}
}
