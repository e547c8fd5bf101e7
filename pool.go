package laxml

import "sync"

var elementPool = sync.Pool{
	New: func() any {
		return new(Element)
	},
}

var attributePool = sync.Pool{
	New: func() any {
		return new(Attribute)
	},
}

// acquireElement returns a reusable zeroed element, linked as the last
// child of parent when one is given.
func acquireElement(parent *Element) *Element {
	e := elementPool.Get().(*Element)
	if parent != nil {
		parent.addChild(e)
	}
	return e
}

func acquireAttribute(e *Element) *Attribute {
	a := attributePool.Get().(*Attribute)
	e.addAttribute(a)
	return a
}

// Destroy releases e and its entire subtree for reuse. The element must
// be unlinked from any surviving tree; destroying the root releases the
// whole document. Attribute spans borrow the element's key buffer and
// own nothing of their own.
func Destroy(e *Element) {
	if e == nil {
		return
	}
	for c := e.firstChild; c != nil; {
		n := c.next
		Destroy(c)
		c = n
	}
	for a := e.firstAttribute; a != nil; {
		n := a.next
		*a = Attribute{}
		attributePool.Put(a)
		a = n
	}
	*e = Element{}
	elementPool.Put(e)
}
