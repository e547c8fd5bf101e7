package laxml

// tagPattern pairs a tag kind with its opening and closing delimiters.
// Opening recognition walks the table in order; overlapping prefixes
// are resolved by the most recently matching pattern.
type tagPattern struct {
	kind  TagKind
	open  string
	close string
}

var tagPatterns = [...]tagPattern{
	{TagElementOpen, "<", ">"},
	{TagElementClose, "</", ">"},
	{TagPI, "<?", "?>"},
	{TagDeclaration, "<!", ">"},
	{TagComment, "<!--", "-->"},
	{TagCDATA, "<![CDATA[", "]]>"},
}

// finishTag finalizes a completed tag body: it restores the closing
// delimiter remainder captured by the cursor, splits element-open keys
// into name and attributes, pops the current element unless the tag
// opens a non-self-closing element, and resets the tag state.
func (p *Parser) finishTag() error {
	closing := p.tag.close
	if p.cursor > 1 {
		if err := p.current.key.appendString(closing[:p.cursor-1], &p.length, p.limits.maxTokenSize); err != nil {
			return p.fail(err)
		}
	}
	if p.tag.kind == TagElementOpen {
		if err := p.parseTagName(); err != nil {
			return err
		}
	}
	if p.tag.kind != TagElementOpen || p.empty {
		p.closeElement()
	}
	p.closeTag()
	return nil
}

// checkEmpty inspects the end of the captured key for a self-closing
// marker, ignoring trailing whitespace.
func (p *Parser) checkEmpty() {
	key := p.current.key.data
	for i := len(key) - 1; i >= 0; i-- {
		if isSpace(key[i]) {
			continue
		}
		if key[i] == '/' {
			p.current.key.data = key[:i]
			p.empty = true
		}
		break
	}
}

// parseTagName splits the captured key at the first whitespace into the
// element name and the attribute text, then parses attributes in place.
// Attribute spans stay inside the key buffer's backing array.
func (p *Parser) parseTagName() error {
	p.checkEmpty()
	key := p.current.key.data
	i := 0
	for i < len(key) && !isSpace(key[i]) {
		i++
	}
	if i == len(key) {
		// The key ends with the name.
		return nil
	}
	p.current.key.data = key[:i]
	rest := key[skipSpace(key, i+1):]
	if len(rest) == 0 {
		return nil
	}
	return p.parseAttributes(p.current, rest)
}
