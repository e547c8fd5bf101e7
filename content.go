package laxml

// Content returns the concatenated character data of every text island
// in the subtree below e, in document order. The second result is false
// when the subtree holds no text; a subtree without text yields no
// content rather than an empty string. The returned string is owned by
// the caller.
func (e *Element) Content() (string, bool) {
	if e == nil {
		return "", false
	}
	n := contentLength(e)
	if n < 1 {
		return "", false
	}
	return string(contentAppend(e, make([]byte, 0, n))), true
}

// ContentFind returns the content of the first element matching path
// below e.
func (e *Element) ContentFind(path string) (string, bool) {
	return e.Find(path).Content()
}

// contentLength sums text lengths in one pass so Content copies into a
// buffer sized exactly once.
func contentLength(e *Element) int {
	n := 0
	for c := e.firstChild; c != nil; c = c.next {
		if c.value.data != nil {
			n += len(c.value.data)
		} else {
			n += contentLength(c)
		}
	}
	return n
}

func contentAppend(e *Element, dst []byte) []byte {
	for c := e.firstChild; c != nil; c = c.next {
		if c.value.data != nil {
			dst = append(dst, c.value.data...)
		} else {
			dst = contentAppend(c, dst)
		}
	}
	return dst
}
