// Package serialization implements the acorn binary array format: a small
// self-describing container that persists any dense or sparse array with
// bit-exact numeric content, independent of build configuration.
//
// Layout (all integers little-endian):
//
//	magic "ACRN" | u32 version | u32 flags | u32 kind | u32 dtype
//	[32-byte SHA-256 payload checksum, when FlagChecksum is set]
//	payload (gzip-compressed when FlagCompressed is set)
//
// Dense payload:  u32 rank | u64 dims[rank] | u64 count | elements
//
// Sparse payload: u64 n_rows | u64 n_cols | u64 nnz |
// u64 row_ptr[n_rows+1] | u64 cols[nnz] | values
//
// The checksum always covers the uncompressed payload bytes. Decoding is
// fail-atomic: either a fully reconstructed owning array is returned, or an
// error and no array.
package serialization

import (
	"github.com/acorn-ml/acorn/internal/array"
)

// Format constants.
const (
	MagicBytes    = "ACRN"
	FormatVersion = 1
)

// Kind tags distinguishing the array layouts on disk.
const (
	KindDense     uint32 = 1
	KindSparseCSR uint32 = 2
)

// Flags for the header flags word.
const (
	FlagCompressed uint32 = 1 << 0 // payload is gzip-compressed
	FlagChecksum   uint32 = 1 << 1 // SHA-256 payload checksum present
)

// maxDeclaredElements caps any count a header declares before buffers are
// allocated for it, so a corrupt file cannot demand an absurd allocation.
const maxDeclaredElements = 1 << 32

// Header is the decoded fixed header of a serialized array.
type Header struct {
	Version uint32
	Flags   uint32
	Kind    uint32
	DType   array.DataType
}

// KindString returns a human-readable name for the header's kind tag.
func (h Header) KindString() string {
	switch h.Kind {
	case KindDense:
		return "dense"
	case KindSparseCSR:
		return "sparse-csr"
	default:
		return "unknown"
	}
}

// Wire codes for element types. Zero is deliberately unused so a zeroed
// header never decodes as a valid dtype.
const (
	codeFloat32 uint32 = 1
	codeFloat64 uint32 = 2
	codeInt32   uint32 = 3
	codeInt64   uint32 = 4
)

// dtypeToCode converts array.DataType to its wire code.
func dtypeToCode(dt array.DataType) uint32 {
	switch dt {
	case array.Float32:
		return codeFloat32
	case array.Float64:
		return codeFloat64
	case array.Int32:
		return codeInt32
	case array.Int64:
		return codeInt64
	default:
		panic("unknown data type")
	}
}

// codeToDtype converts a wire code to array.DataType.
func codeToDtype(code uint32) (array.DataType, bool) {
	switch code {
	case codeFloat32:
		return array.Float32, true
	case codeFloat64:
		return array.Float64, true
	case codeInt32:
		return array.Int32, true
	case codeInt64:
		return array.Int64, true
	default:
		return 0, false
	}
}
