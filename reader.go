package laxml

import "io"

const defaultChunkSize = 32 * 1024

// ParseReader parses a document from r, feeding the state machine in
// fixed-size chunks, and returns the synthetic root element. Chunk
// boundaries imposed by the reader do not affect the resulting tree.
func ParseReader(r io.Reader, opts ...Options) (*Element, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	p := NewParser(opts...)
	buf := make([]byte, defaultChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if perr := p.ParseChunk(buf[:n]); perr != nil {
				return nil, perr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	if p.Root() == nil {
		// Zero-length input still yields the bare root.
		if err := p.ParseChunk([]byte{}); err != nil {
			return nil, err
		}
	}
	return p.Root(), nil
}
