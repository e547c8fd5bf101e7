package laxml

import "testing"

func TestFindBasic(t *testing.T) {
	root := mustParse(t, "<a><b>hi</b></a>")

	b := root.Find("a/b")
	if b == nil {
		t.Fatalf("Find(a/b) = nil, want element")
	}
	if got := b.Key(); got != "b" {
		t.Fatalf("Find(a/b) key = %q, want b", got)
	}
	if root.Find("a/c") != nil {
		t.Fatalf("Find(a/c) != nil, want nil")
	}
}

func TestFindDocumentOrder(t *testing.T) {
	root := mustParse(t, `<r><x k="1"/><x k="2"/></r>`)

	x := root.Find("r/x")
	if x == nil {
		t.Fatalf("Find(r/x) = nil, want element")
	}
	a := x.FindAttribute("k")
	if a == nil || a.Value() != "1" {
		t.Fatalf("first match k = %v, want 1", a)
	}
}

func TestFindPredicateValue(t *testing.T) {
	root := mustParse(t, `<r><x k="1"/><x k="2"/></r>`)

	x := root.Find("r/x?k=2")
	if x == nil {
		t.Fatalf("Find(r/x?k=2) = nil, want element")
	}
	if a := x.FindAttribute("k"); a == nil || a.Value() != "2" {
		t.Fatalf("matched element k = %v, want 2", a)
	}
	if next := FindNext(x, "r/x"); next != nil {
		t.Fatalf("FindNext after last x = %v, want nil", next)
	}
}

func TestFindPredicates(t *testing.T) {
	root := mustParse(t, `<r><x a/><x b/><x a="1" b/></r>`)

	tests := map[string]struct {
		path string
		want int // index of expected child of r, -1 for miss
	}{
		"presence":           {path: "r/x?b", want: 1},
		"presenceAndValue":   {path: "r/x?a=1&b", want: 2},
		"missingKey":         {path: "r/x?a=1&c", want: -1},
		"valuelessNeverEq":   {path: "r/x?b=1", want: -1},
		"emptyPredicateList": {path: "r/x?", want: -1},
	}
	r := root.FirstChild()
	children := []*Element{}
	for c := r.FirstChild(); c != nil; c = c.NextSibling() {
		children = append(children, c)
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := root.Find(tc.path)
			if tc.want < 0 {
				if got != nil {
					t.Fatalf("Find(%s) = %v, want nil", tc.path, got)
				}
				return
			}
			if got != children[tc.want] {
				t.Fatalf("Find(%s) = child %v, want child %d", tc.path, got, tc.want)
			}
		})
	}
}

func TestFindCaseFolding(t *testing.T) {
	root := mustParse(t, `<Root><Item K="V"/></Root>`)

	if root.Find("root/ITEM") == nil {
		t.Fatalf("element name matching should ignore ASCII case")
	}
	if root.Find("root/item?k=V") != nil {
		t.Fatalf("predicate keys compare exactly; k should not match K")
	}
	if root.Find("root/item?K=v") != nil {
		t.Fatalf("predicate values compare exactly; v should not match V")
	}
	if root.Find("root/item?K=V") == nil {
		t.Fatalf("exact predicate should match")
	}
}

func TestFindEdgeCases(t *testing.T) {
	root := mustParse(t, "<a>text<b/></a>")

	if root.Find("") != nil {
		t.Fatalf("Find(\"\") != nil, want nil")
	}
	if root.Find("a/") != nil {
		t.Fatalf("Find(a/) != nil, want nil: empty remainder matches nothing")
	}
	if root.Find("a/b") == nil {
		t.Fatalf("Find(a/b) = nil, want element past the text island")
	}
	var nilElem *Element
	if nilElem.Find("a") != nil {
		t.Fatalf("nil receiver Find != nil")
	}
}

func TestFindNextEnumeratesSubtrees(t *testing.T) {
	root := mustParse(t, "<r><g><x/><x/></g><g><x/></g><g><y/></g></r>")

	var seen []*Element
	for e := root.Find("r/g/x"); e != nil; e = FindNext(e, "r/g/x") {
		seen = append(seen, e)
	}
	if len(seen) != 3 {
		t.Fatalf("enumerated %d elements, want 3", len(seen))
	}
	for i, e := range seen {
		if got := e.Key(); got != "x" {
			t.Fatalf("match %d key = %q, want x", i, got)
		}
	}
}

func TestFindNextWithoutPath(t *testing.T) {
	root := mustParse(t, "<r><g><x/><x/></g><g><x/></g></r>")

	first := root.Find("r/g/x")
	second := FindNext(first, "")
	if second == nil || second.Key() != "x" {
		t.Fatalf("FindNext without path = %v, want sibling x", second)
	}
	third := FindNext(second, "")
	if third == nil || third.Key() != "x" {
		t.Fatalf("FindNext across subtrees = %v, want x", third)
	}
	if got := FindNext(third, ""); got != nil {
		t.Fatalf("FindNext past last = %v, want nil", got)
	}
}

func TestFindNextDeepPredicates(t *testing.T) {
	root := mustParse(t, `<r><x k="a"/><x k="b"/><x k="a"/></r>`)

	first := root.Find("r/x?k=a")
	if first == nil {
		t.Fatalf("Find(r/x?k=a) = nil, want element")
	}
	next := FindNext(first, "r/x?k=a")
	if next == nil {
		t.Fatalf("FindNext(r/x?k=a) = nil, want third x")
	}
	if next == first || next.FindAttribute("k").Value() != "a" {
		t.Fatalf("FindNext returned wrong element")
	}
	if got := FindNext(next, "r/x?k=a"); got != nil {
		t.Fatalf("FindNext past last = %v, want nil", got)
	}
}

func TestFindNextNil(t *testing.T) {
	if FindNext(nil, "a") != nil {
		t.Fatalf("FindNext(nil) != nil")
	}
}

func TestFindAttribute(t *testing.T) {
	e := firstElem(t, `<e First="1" first="2" other bare>`)

	a := e.FindAttribute("FIRST")
	if a == nil {
		t.Fatalf("FindAttribute(FIRST) = nil, want attribute")
	}
	if got := a.Value(); got != "1" {
		t.Fatalf("FindAttribute(FIRST) value = %q, want first of duplicates", got)
	}
	if e.FindAttribute("missing") != nil {
		t.Fatalf("FindAttribute(missing) != nil")
	}
	if got := FindAttribute(e.FirstAttribute(), "OTHER"); got == nil || got.HasValue() {
		t.Fatalf("FindAttribute list form = %v, want bare attribute", got)
	}
	if FindAttribute(nil, "x") != nil {
		t.Fatalf("FindAttribute(nil list) != nil")
	}
	var nilElem *Element
	if nilElem.FindAttribute("x") != nil {
		t.Fatalf("nil receiver FindAttribute != nil")
	}
}
