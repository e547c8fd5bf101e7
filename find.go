package laxml

// Find returns the first element below e matching the slash-separated
// path, in document order (pre-order, depth-first, left-to-right), or
// nil. Element names match ASCII case-insensitively; ?key=value
// predicates match attributes by exact bytes.
func (e *Element) Find(path string) *Element {
	if e == nil || path == "" {
		return nil
	}
	seg, rest, hasRest := firstPathSegment(path)
	for c := e.firstChild; c != nil; c = c.next {
		if c.key.data == nil || !asciiEqualFold(c.key.data, seg.name) || !c.matchPredicates(seg.preds) {
			continue
		}
		if !hasRest {
			return c
		}
		if m := c.Find(rest); m != nil {
			return m
		}
	}
	return nil
}

// FindNext resumes enumeration after an element previously returned by
// Find or FindNext. Following siblings and later subtrees are scanned
// for elements sharing last's key. When a path is given, its deepest
// segment supplies the attribute predicates and each step up the tree
// consumes the next-shallower segment; ancestor segments of subtrees
// entered on resumption are not re-validated against the full path, so
// callers needing strict ancestor checking should re-run Find and skip
// prior hits. An empty path applies no predicate.
func FindNext(last *Element, path string) *Element {
	return findNextFrom(last, path, -1)
}

func findNextFrom(last *Element, path string, end int) *Element {
	if last == nil {
		return nil
	}
	var seg pathSegment
	if path != "" {
		seg, end = lastPathSegment(path, end)
	}
	for e := last.next; e != nil; e = e.next {
		if matchesLast(e, last, seg.preds) {
			return e
		}
	}
	// Try other branches: locate the next subtree whose root matches
	// one segment up, then scan its children.
	for p := last.parent; p != nil && p.key.data != nil; {
		p = findNextFrom(p, path, end)
		if p == nil {
			break
		}
		for e := p.firstChild; e != nil; e = e.next {
			if matchesLast(e, last, seg.preds) {
				return e
			}
		}
	}
	return nil
}

func matchesLast(e, last *Element, preds []pathPredicate) bool {
	return e.key.data != nil &&
		asciiEqualFoldBytes(e.key.data, last.key.data) &&
		e.matchPredicates(preds)
}

// matchPredicates reports whether every predicate is satisfied by some
// attribute of e. Duplicate attribute keys are each considered; a
// valueless attribute cannot satisfy a key=value predicate.
func (e *Element) matchPredicates(preds []pathPredicate) bool {
	for pi := range preds {
		pr := &preds[pi]
		a := e.firstAttribute
		for ; a != nil; a = a.next {
			if string(a.key) != pr.key {
				continue
			}
			if !pr.hasValue {
				break
			}
			if a.hasValue && string(a.value) == pr.value {
				break
			}
		}
		if a == nil {
			return false
		}
	}
	return true
}

// FindAttribute walks an attribute list for the first attribute whose
// key equals name, ignoring ASCII case.
func FindAttribute(a *Attribute, name string) *Attribute {
	for ; a != nil; a = a.next {
		if asciiEqualFold(a.key, name) {
			return a
		}
	}
	return nil
}

// FindAttribute returns the element's first attribute named name,
// ignoring ASCII case.
func (e *Element) FindAttribute(name string) *Attribute {
	if e == nil {
		return nil
	}
	return FindAttribute(e.firstAttribute, name)
}
