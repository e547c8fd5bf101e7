package laxml

// parseAttributes scans the attribute text after the element name and
// appends zero or more attributes in insertion order. The text is a
// writable window of the element's key buffer; keys and values are
// borrowed sub-slices of it, never copies. Values may be absent,
// unquoted, or mixed-quoted across attributes of the same element.
func (p *Parser) parseAttributes(e *Element, text []byte) error {
	count := 0
	i := 0
	for i < len(text) {
		i = skipSpace(text, i)
		n := i
		for n < len(text) && text[n] != '=' && !isSpace(text[n]) {
			n++
		}
		if n == i {
			break
		}
		key := text[i:n]
		i = skipSpace(text, n)
		var value []byte
		hasValue := false
		if i < len(text) && text[i] == '=' {
			i = skipSpace(text, i+1)
			if i >= len(text) {
				break
			}
			switch text[i] {
			case '\'', '"':
				value, i = quotedValue(text, i+1, text[i])
			default:
				n = i
				for n < len(text) && !isSpace(text[n]) {
					n++
				}
				value = text[i:n]
				i = n
			}
			hasValue = true
		}
		count++
		if p.limits.maxAttrs > 0 && count > p.limits.maxAttrs {
			return p.fail(ErrAttrLimit)
		}
		a := acquireAttribute(e)
		a.key = key
		a.value = value
		a.hasValue = hasValue
	}
	return nil
}

// quotedValue scans a quoted value starting at i, just after the
// opening quote. A backslash takes the following byte literally;
// escaped runs are compacted in place so the returned span holds the
// literal content and stays inside the key buffer. The closing quote is
// consumed. An unterminated quote yields an empty value and scanning
// resumes where it began.
func quotedValue(text []byte, i int, q byte) ([]byte, int) {
	escaped := false
	end := -1
	for r := i; r < len(text); r++ {
		if text[r] == '\\' {
			escaped = true
			r++
			continue
		}
		if text[r] == q {
			end = r
			break
		}
	}
	if end < 0 {
		return text[i:i], i
	}
	if !escaped {
		return text[i:end], end + 1
	}
	w := i
	for r := i; r < end; r++ {
		if text[r] == '\\' && r+1 < end {
			r++
		}
		text[w] = text[r]
		w++
	}
	return text[i:w], end + 1
}
