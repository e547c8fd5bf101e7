package laxml

import "testing"

// nodeSnapshot is a comparable copy of a parsed subtree used by tests
// to diff trees structurally.
type nodeSnapshot struct {
	Key      string
	HasKey   bool
	Value    string
	Attrs    []attrSnapshot
	Children []nodeSnapshot
}

type attrSnapshot struct {
	Key      string
	Value    string
	HasValue bool
}

func snapshot(e *Element) nodeSnapshot {
	s := nodeSnapshot{Key: e.Key(), HasKey: e.HasKey(), Value: e.Value()}
	for a := e.FirstAttribute(); a != nil; a = a.Next() {
		s.Attrs = append(s.Attrs, attrSnapshot{Key: a.Key(), Value: a.Value(), HasValue: a.HasValue()})
	}
	for c := e.FirstChild(); c != nil; c = c.NextSibling() {
		s.Children = append(s.Children, snapshot(c))
	}
	return s
}

func mustParse(t *testing.T, input string) *Element {
	t.Helper()
	root, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", input, err)
	}
	return root
}

func textNode(value string) nodeSnapshot {
	return nodeSnapshot{Value: value}
}

func elemNode(key string, children ...nodeSnapshot) nodeSnapshot {
	return nodeSnapshot{Key: key, HasKey: true, Children: children}
}

func rootNode(children ...nodeSnapshot) nodeSnapshot {
	return nodeSnapshot{Children: children}
}
