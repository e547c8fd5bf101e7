package laxml

// spanBuffer is a growable byte buffer with run-length accounting shared
// between the tokenizer's key and value accumulators. The zero value is
// ready for use. An untouched buffer stays nil, which is how the tree
// distinguishes tag-originated elements from text islands.
type spanBuffer struct {
	data []byte
}

// appendBytes grows the buffer by src and advances *run. Appending zero
// bytes is a no-op and never allocates. A non-zero limit caps the
// accumulated run length.
func (b *spanBuffer) appendBytes(src []byte, run *int, limit int) error {
	if len(src) == 0 {
		return nil
	}
	if limit > 0 && *run+len(src) > limit {
		return ErrTokenTooLarge
	}
	b.data = append(b.data, src...)
	*run += len(src)
	return nil
}

// appendString is appendBytes for string sources such as delimiter
// fragments.
func (b *spanBuffer) appendString(src string, run *int, limit int) error {
	if len(src) == 0 {
		return nil
	}
	if limit > 0 && *run+len(src) > limit {
		return ErrTokenTooLarge
	}
	b.data = append(b.data, src...)
	*run += len(src)
	return nil
}

func (b *spanBuffer) reset() {
	b.data = nil
}
