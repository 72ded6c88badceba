package pdf

import (
	"errors"
	"fmt"
)

// DecodeError reports that a byte buffer could not be decoded as a PDF:
// bad magic bytes, a corrupted cross-reference table, unsupported encryption,
// or a content stream the decoder can't interpret. It is fatal to the run.
type DecodeError struct {
	Op  string // "header", "validate", "open", "decode" or "page N"
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("pdf decode failed (%s): %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsDecodeError reports whether err (or anything it wraps) is a *DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
