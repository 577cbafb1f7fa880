package automaton

import "testing"

func TestNext(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		input    string
		next     State
		consumed int
		pattern  string
		ok       bool
	}{
		{
			name:  "open tag into sibling open tag",
			state: TagOpenName, input: "><b>",
			next: TagOpenName, consumed: 2, pattern: "s>s<a", ok: true,
		},
		{
			name:  "open tag into close tag",
			state: TagOpenName, input: "></a>",
			next: TagCloseName, consumed: 3, pattern: "s>s</a", ok: true,
		},
		{
			name:  "open tag into attribute name",
			state: TagOpenName, input: " k=",
			next: AttributeName, consumed: 1, pattern: "Ssa", ok: true,
		},
		{
			name:  "open tag into body",
			state: TagOpenName, input: "> text",
			next: ElementBody, consumed: 2, pattern: "s>sA", ok: true,
		},
		{
			name:  "open tag into comment",
			state: TagOpenName, input: "><!-- note",
			next: Comment, consumed: 6, pattern: "s>s<!--sA", ok: true,
		},
		{
			name:  "self-closing open tag into close tag",
			state: TagOpenName, input: "/></a>",
			next: TagCloseName, consumed: 4, pattern: "s/>s</a", ok: true,
		},
		{
			name:  "self-closing open tag into end",
			state: TagOpenName, input: "/>",
			next: End, consumed: 1, pattern: "s/>s0", ok: true,
		},
		{
			name:  "close tag into end",
			state: TagCloseName, input: ">",
			next: End, consumed: 0, pattern: "s>s0", ok: true,
		},
		{
			name:  "attribute name into value",
			state: AttributeName, input: `="v`,
			next: AttributeValue, consumed: 2, pattern: `="sA`, ok: true,
		},
		{
			name:  "attribute value into child open tag",
			state: AttributeValue, input: `"><b>`,
			next: TagOpenName, consumed: 3, pattern: `"s>s<a`, ok: true,
		},
		{
			name:  "attribute value on self-closing tag into end",
			state: AttributeValue, input: `"/>`,
			next: End, consumed: 2, pattern: `"s/>s0`, ok: true,
		},
		{
			name:  "body into close tag",
			state: ElementBody, input: " </a>",
			next: TagCloseName, consumed: 3, pattern: "s</a", ok: true,
		},
		{
			name:  "comment into close tag",
			state: TagOpenName, input: "> <!-- c --> </a>",
			next: Comment, consumed: 7, pattern: "s>s<!--sA", ok: true,
		},
		{
			name:  "comment end into close tag",
			state: Comment, input: "--></a>",
			next: TagCloseName, consumed: 5, pattern: "-->s</a", ok: true,
		},
		{
			name:  "no transition mid-name",
			state: TagOpenName, input: "bc>",
			ok:    false,
		},
		{
			name:  "no transition out of terminal state",
			state: End, input: "><a>",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := Next(DoubleQuotes, tt.state, []byte(tt.input), 0)
			if ok != tt.ok {
				t.Fatalf("Next(%v, %q) ok = %v, want %v", tt.state, tt.input, ok, tt.ok)
			}
			if !ok {
				return
			}
			if res.Next != tt.next {
				t.Errorf("Next state = %v, want %v", res.Next, tt.next)
			}
			if res.Consumed != tt.consumed {
				t.Errorf("Consumed = %d, want %d", res.Consumed, tt.consumed)
			}
			if res.Pattern != tt.pattern {
				t.Errorf("Pattern = %q, want %q", res.Pattern, tt.pattern)
			}
		})
	}
}

func TestNext_singleQuotes(t *testing.T) {
	res, ok := Next(SingleQuotes, AttributeName, []byte(`='v`), 0)
	if !ok {
		t.Fatal("Next() found no transition for single-quoted value")
	}
	if res.Next != AttributeValue || res.Pattern != `='sA` {
		t.Errorf("Next() = %+v, want AttributeValue via `='sA`", res)
	}

	// The double-quote table must not accept the single-quote delimiter.
	if _, ok := Next(DoubleQuotes, AttributeName, []byte(`='v`), 0); ok {
		t.Error("double-quote grammar accepted a single-quoted value")
	}
}

// Selection is longest-raw-pattern-wins, with ties going to the earliest
// candidate in target-state then alternative order.
func TestNextIn_selection(t *testing.T) {
	var tbl table
	tbl[TagOpenName][TagOpenName][0] = "s>"
	tbl[TagOpenName][ElementBody][0] = "s>sA"

	res, ok := nextIn(&tbl, TagOpenName, []byte(">x"), 0)
	if !ok {
		t.Fatal("nextIn() found no transition")
	}
	if res.Next != ElementBody {
		t.Errorf("longest pattern lost: next = %v, want %v", res.Next, ElementBody)
	}

	// Equal lengths: the earlier target-state index wins.
	tbl = table{}
	tbl[TagOpenName][TagCloseName][0] = "s>sA"
	tbl[TagOpenName][ElementBody][0] = "s>sA"
	res, ok = nextIn(&tbl, TagOpenName, []byte(">x"), 0)
	if !ok {
		t.Fatal("nextIn() found no transition")
	}
	if res.Next != TagCloseName {
		t.Errorf("tie broke to %v, want first-seen %v", res.Next, TagCloseName)
	}

	// Equal lengths within one target: the first alternative wins.
	tbl = table{}
	tbl[TagOpenName][ElementBody][0] = "s>sA"
	tbl[TagOpenName][ElementBody][1] = ">ssA"
	res, ok = nextIn(&tbl, TagOpenName, []byte(">x"), 0)
	if !ok {
		t.Fatal("nextIn() found no transition")
	}
	if res.Pattern != "s>sA" {
		t.Errorf("tie broke to pattern %q, want first alternative %q", res.Pattern, "s>sA")
	}
}

func TestState_String(t *testing.T) {
	if got := TagOpenName.String(); got != "TagOpenName" {
		t.Errorf("String() = %q, want %q", got, "TagOpenName")
	}
	if got := State(200).String(); got != "Unknown" {
		t.Errorf("String() = %q, want %q", got, "Unknown")
	}
	if !End.Terminal() || TagOpenName.Terminal() {
		t.Error("Terminal() misclassifies states")
	}
}
