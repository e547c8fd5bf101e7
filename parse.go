package laxml

import "bytes"

// parseFunc consumes a prefix of the chunk and returns the remainder.
type parseFunc func(p *Parser, d []byte) ([]byte, error)

// Parser is the incremental tag-recognition state machine. The zero
// value is ready for use: feed it with ParseChunk and read the tree
// from Root. A Parser must not be shared between goroutines; two
// concurrent parses need two parsers and build two trees.
type Parser struct {
	root    *Element
	current *Element
	tag     *tagPattern // active tag, nil between tags
	step    parseFunc
	err     error

	length int // accumulated key or value run length
	cursor int // progress into the open or close delimiter
	depth  int
	offset int64
	empty  bool // self-closing marker seen

	limits parserLimits
}

// NewParser returns a parser configured with the given options. The
// zero value of Parser is equivalent to NewParser() and applies no
// limits.
func NewParser(opts ...Options) *Parser {
	return &Parser{limits: resolveOptions(JoinOptions(opts...))}
}

// Parse parses a complete document held in memory and returns the
// synthetic root element whose children are the document's top-level
// elements and text islands. An empty document yields a bare root.
func Parse(data string, opts ...Options) (*Element, error) {
	p := NewParser(opts...)
	if err := p.consume([]byte(data)); err != nil {
		return nil, err
	}
	return p.Root(), nil
}

// ParseChunk consumes the next chunk of the document, updating the
// tree under Root. Chunk boundaries may fall anywhere, including
// inside tag delimiters. A nil chunk is misuse and fails. After a
// failure the parser state is indeterminate; the tree under Root
// remains destroyable and that is the caller's only safe next action.
func (p *Parser) ParseChunk(chunk []byte) error {
	if chunk == nil {
		return p.fail(ErrNilChunk)
	}
	return p.consume(chunk)
}

// Root returns the synthetic root element, nil before the first chunk.
func (p *Parser) Root() *Element {
	return p.root
}

// Reset prepares the parser for a new document, keeping its options.
// The previous tree is abandoned, not destroyed; release it with
// Destroy if it is no longer wanted.
func (p *Parser) Reset() {
	*p = Parser{limits: p.limits}
}

func (p *Parser) consume(chunk []byte) error {
	if p.err != nil {
		return p.err
	}
	if p.root == nil {
		p.root = acquireElement(nil)
		p.current = p.root
	}
	if p.step == nil {
		p.closeTag()
	}
	for len(chunk) > 0 {
		rest, err := p.step(p, chunk)
		if err != nil {
			return err
		}
		p.offset += int64(len(chunk) - len(rest))
		chunk = rest
	}
	return nil
}

func (p *Parser) fail(err error) error {
	wrapped := &SyntaxError{Offset: p.offset, Err: err}
	p.err = wrapped
	return wrapped
}

// closeTag resets the tag state and hands control back to content.
func (p *Parser) closeTag() {
	p.tag = nil
	p.length = 0
	p.cursor = 0
	p.empty = false
	p.step = parseContent
}

// closeElement pops the current element to its parent. The pop clamps
// at the synthetic root so a surplus close tag cannot detach the rest
// of the document.
func (p *Parser) closeElement() {
	if p.current != nil && p.current.parent != nil {
		p.current = p.current.parent
		p.depth--
	}
}

// newChild creates a child of the current element and makes it current.
func (p *Parser) newChild() error {
	if p.limits.maxDepth > 0 && p.depth >= p.limits.maxDepth {
		return p.fail(ErrDepthLimit)
	}
	p.current = acquireElement(p.current)
	p.depth++
	return nil
}

// valueAppend adds character data to the current element, creating a
// text island at the start of each run.
func (p *Parser) valueAppend(d []byte) error {
	if p.length == 0 {
		if err := p.newChild(); err != nil {
			return err
		}
	}
	if err := p.current.value.appendBytes(d, &p.length, p.limits.maxTokenSize); err != nil {
		return p.fail(err)
	}
	return nil
}

// keyAppend adds captured tag-body bytes to the current element's key.
// Close-tag bodies are discarded. The first append for a multi-byte
// opener first records the opener remainder after '<', so declaration
// and comment keys keep their sigils.
func (p *Parser) keyAppend(d []byte) error {
	if p.tag.kind == TagElementClose {
		return nil
	}
	if p.length == 0 && len(p.tag.open) > 1 {
		if err := p.current.key.appendString(p.tag.open[1:], &p.length, p.limits.maxTokenSize); err != nil {
			return p.fail(err)
		}
	}
	if err := p.current.key.appendBytes(d, &p.length, p.limits.maxTokenSize); err != nil {
		return p.fail(err)
	}
	return nil
}

// keyAppendString is keyAppend for delimiter fragments flushed back as
// literal content.
func (p *Parser) keyAppendString(s string) error {
	if p.tag.kind == TagElementClose {
		return nil
	}
	if p.length == 0 && len(p.tag.open) > 1 {
		if err := p.current.key.appendString(p.tag.open[1:], &p.length, p.limits.maxTokenSize); err != nil {
			return p.fail(err)
		}
	}
	if err := p.current.key.appendString(s, &p.length, p.limits.maxTokenSize); err != nil {
		return p.fail(err)
	}
	return nil
}

// parseContent consumes character data up to the next '<' and hands
// off to tag opening.
func parseContent(p *Parser, d []byte) ([]byte, error) {
	end := bytes.IndexByte(d, '<')
	if end < 0 {
		if err := p.valueAppend(d); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if end > 0 {
		if err := p.valueAppend(d[:end]); err != nil {
			return nil, err
		}
	}
	p.step = parseTagOpening
	return d[end:], nil
}

// parseTagOpening advances the cursor across every candidate opening
// delimiter that still matches the incoming byte. When no candidate
// remains, the most recently matching pattern wins; this is how <!DOCTYPE
// is told apart from <!-- without lookahead.
func parseTagOpening(p *Parser, d []byte) ([]byte, error) {
	for len(d) > 0 {
		c := d[0]
		match := -1
		for i := range tagPatterns {
			if len(tagPatterns[i].open) > p.cursor && tagPatterns[i].open[p.cursor] == c {
				match = i
				break
			}
		}
		if match < 0 {
			if p.tag == nil {
				return nil, p.fail(ErrTagStall)
			}
			// Pop the text island left current by a preceding
			// character-data run.
			if p.length > 0 {
				p.closeElement()
			}
			p.length = 0
			p.cursor = 0
			p.step = parseTagBody
			if p.tag.kind != TagElementClose {
				if err := p.newChild(); err != nil {
					return nil, err
				}
			}
			return d, nil
		}
		p.cursor++
		p.tag = &tagPatterns[match]
		d = d[1:]
	}
	return nil, nil
}

// parseTagBody accumulates bytes into the current element's key until
// the closing delimiter completes. Partially matched delimiter bytes
// that turn out to be literal content are flushed back into the key and
// matching restarts at the first delimiter byte.
func parseTagBody(p *Parser, d []byte) ([]byte, error) {
	closing := p.tag.close
	for len(d) > 0 {
		m := -1
		if p.cursor == 0 {
			m = bytes.IndexByte(d, closing[0])
		} else {
			for {
				if closing[p.cursor] == d[0] {
					m = 0
				}
				if m >= 0 || p.cursor == 0 {
					break
				}
				if err := p.keyAppendString(closing[:p.cursor]); err != nil {
					return nil, err
				}
				p.cursor = 0
			}
			if m < 0 && p.cursor == 0 {
				continue
			}
		}
		if m < 0 {
			if err := p.keyAppend(d); err != nil {
				return nil, err
			}
			return nil, nil
		}
		if p.cursor == 0 {
			if err := p.keyAppend(d[:m]); err != nil {
				return nil, err
			}
		}
		d = d[m+1:]
		p.cursor++
		if p.cursor == len(closing) {
			if err := p.finishTag(); err != nil {
				return nil, err
			}
			return d, nil
		}
	}
	return nil, nil
}
