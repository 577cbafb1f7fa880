package dom

import "testing"

// buildTestTree returns:
//
//	root
//	  a
//	    b
//	    a
//	      b
//	  b
func buildTestTree() *Element {
	root := NewElement("root")
	a1 := NewElement("a")
	a2 := NewElement("a")
	a1.AppendChild(NewElement("b"))
	a2.AppendChild(NewElement("b"))
	a1.AppendChild(a2)
	root.AppendChild(a1)
	root.AppendChild(NewElement("b"))
	return root
}

func TestCountByName(t *testing.T) {
	root := buildTestTree()

	tests := []struct {
		name string
		want int
	}{
		{"a", 2},
		{"b", 3},
		{"root", 1},
		{"missing", 0},
	}
	for _, tt := range tests {
		if got := root.CountByName(tt.name); got != tt.want {
			t.Errorf("CountByName(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestCollectByName(t *testing.T) {
	root := buildTestTree()

	dst := make([]*Element, 8)
	n := root.CollectByName("b", dst)
	if n != 3 {
		t.Fatalf("CollectByName(b) = %d, want 3", n)
	}
	for i := 0; i < n; i++ {
		if dst[i].Name() != "b" {
			t.Errorf("dst[%d].Name() = %q, want %q", i, dst[i].Name(), "b")
		}
	}
}

func TestCollectByName_stopsWhenFull(t *testing.T) {
	root := buildTestTree()

	dst := make([]*Element, 2)
	if n := root.CollectByName("b", dst); n != 2 {
		t.Errorf("CollectByName(b) into len-2 buffer = %d, want 2", n)
	}
	if n := root.CollectByName("b", nil); n != 0 {
		t.Errorf("CollectByName(b) into nil buffer = %d, want 0", n)
	}
}

// The collected elements must equal a pre-order traversal filtered by name,
// and the collected count must agree with CountByName.
func TestCollectByName_agreesWithCount(t *testing.T) {
	root := buildTestTree()

	for _, name := range []string{"a", "b", "root", "missing"} {
		count := root.CountByName(name)
		dst := make([]*Element, 16)
		collected := root.CollectByName(name, dst)
		if collected != count {
			t.Errorf("name %q: collected %d, counted %d", name, collected, count)
		}

		var preorder []*Element
		var walk func(e *Element)
		walk = func(e *Element) {
			if e.Name() == name {
				preorder = append(preorder, e)
			}
			for _, child := range e.Children() {
				walk(child)
			}
		}
		walk(root)

		for i := 0; i < collected; i++ {
			if dst[i] != preorder[i] {
				t.Errorf("name %q: dst[%d] is not the %d-th pre-order match", name, i, i)
			}
		}
	}
}

func TestAttributeByName(t *testing.T) {
	e := NewElement("a")
	first := NewAttribute("k")
	first.SetValue("1")
	second := NewAttribute("k")
	second.SetValue("2")
	e.AppendAttribute(first)
	e.AppendAttribute(second)
	other := NewAttribute("kx")
	other.SetValue("3")
	e.AppendAttribute(other)

	got := e.AttributeByName("k")
	if got == nil || got.Value() != "1" {
		t.Errorf("AttributeByName(k) = %v, want first attribute with value 1", got)
	}

	// Exact equality: "k" must not match "kx" and vice versa.
	if got := e.AttributeByName("kx"); got == nil || got.Value() != "3" {
		t.Errorf("AttributeByName(kx) = %v, want attribute with value 3", got)
	}
	if got := e.AttributeByName("missing"); got != nil {
		t.Errorf("AttributeByName(missing) = %v, want nil", got)
	}
}
