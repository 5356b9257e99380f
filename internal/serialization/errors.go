package serialization

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrCorruptData        = errors.New("serialized data inconsistent with declared shape")
	ErrTypeMismatch       = errors.New("on-disk type does not match requested type")
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
)

// CorruptError carries details about which declared field the payload
// contradicts. It unwraps to ErrCorruptData.
type CorruptError struct {
	Field   string // header field involved (e.g. "nnz", "count")
	Details string
}

// Error implements the error interface.
func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt data: field %q: %s", e.Field, e.Details)
}

// Unwrap makes errors.Is(err, ErrCorruptData) hold for CorruptError values.
func (e *CorruptError) Unwrap() error {
	return ErrCorruptData
}

// corruptf builds a CorruptError with formatted details.
func corruptf(field, format string, args ...any) error {
	return &CorruptError{Field: field, Details: fmt.Sprintf(format, args...)}
}
