package laxml

import (
	"errors"
	"fmt"
)

var (
	// ErrNilChunk reports a nil chunk passed to ParseChunk.
	ErrNilChunk = errors.New("nil XML chunk")
	// ErrNilReader reports a nil reader passed to ParseReader.
	ErrNilReader = errors.New("nil XML reader")
	// ErrTagStall reports a tag opening that matches no known pattern.
	ErrTagStall = errors.New("tag opening matches no known pattern")
	// ErrTokenTooLarge reports a tag body or text run exceeding MaxTokenSize.
	ErrTokenTooLarge = errors.New("tag exceeds MaxTokenSize")
	// ErrDepthLimit reports element nesting exceeding MaxDepth.
	ErrDepthLimit = errors.New("element depth exceeds MaxDepth")
	// ErrAttrLimit reports an attribute count exceeding MaxAttrs.
	ErrAttrLimit = errors.New("attribute count exceeds MaxAttrs")
)

// SyntaxError reports a parse failure with the byte offset of the chunk
// window being consumed when the failure surfaced.
type SyntaxError struct {
	Offset int64
	Err    error
}

// Error formats the syntax error with location and cause.
func (e *SyntaxError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("xml syntax error at offset %d: %v", e.Offset, e.Err)
}

// Unwrap exposes the underlying error.
func (e *SyntaxError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
