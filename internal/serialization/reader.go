package serialization

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/acorn-ml/acorn/internal/array"
)

// ReadHeader reads and validates the fixed header. The stream is left
// positioned at the checksum (if present) or the payload.
func ReadHeader(r io.Reader) (Header, error) {
	magic := make([]byte, len(MagicBytes))
	if _, err := io.ReadFull(r, magic); err != nil {
		return Header{}, fmt.Errorf("failed to read magic bytes: %w", err)
	}
	if string(magic) != MagicBytes {
		return Header{}, ErrInvalidMagic
	}

	var h Header
	var dtypeCode uint32
	for _, dst := range []*uint32{&h.Version, &h.Flags, &h.Kind, &dtypeCode} {
		if err := binary.Read(r, binary.LittleEndian, dst); err != nil {
			return Header{}, fmt.Errorf("failed to read header: %w", err)
		}
	}
	if h.Version != FormatVersion {
		return Header{}, fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, h.Version, FormatVersion)
	}
	dtype, ok := codeToDtype(dtypeCode)
	if !ok {
		return Header{}, corruptf("dtype", "unknown element type code %d", dtypeCode)
	}
	h.DType = dtype
	return h, nil
}

// ReadDense decodes a dense array of element type T from r. The on-disk
// kind and element type must match T exactly; a mismatch fails with
// ErrTypeMismatch before any payload is decoded.
func ReadDense[T array.DType](r io.Reader) (*array.Dense[T], error) {
	payload, h, err := readPayload(r)
	if err != nil {
		return nil, err
	}
	if h.Kind != KindDense {
		return nil, fmt.Errorf("%w: file holds a %s array, requested dense", ErrTypeMismatch, h.KindString())
	}
	if h.DType != array.TypeOf[T]() {
		return nil, fmt.Errorf("%w: file holds %s elements, requested %s", ErrTypeMismatch, h.DType, array.TypeOf[T]())
	}
	return decodeDense[T](bytes.NewReader(payload))
}

// ReadSparse decodes a CSR matrix of element type T from r. The on-disk
// kind and element type must match T exactly.
func ReadSparse[T array.DType](r io.Reader) (*array.Sparse2D[T], error) {
	payload, h, err := readPayload(r)
	if err != nil {
		return nil, err
	}
	if h.Kind != KindSparseCSR {
		return nil, fmt.Errorf("%w: file holds a %s array, requested sparse CSR", ErrTypeMismatch, h.KindString())
	}
	if h.DType != array.TypeOf[T]() {
		return nil, fmt.Errorf("%w: file holds %s elements, requested %s", ErrTypeMismatch, h.DType, array.TypeOf[T]())
	}
	return decodeSparse[T](bytes.NewReader(payload))
}

// LoadDense reads a dense array from a file.
func LoadDense[T array.DType](path string) (*array.Dense[T], error) {
	//nolint:gosec // G304: file path comes from the caller, which is expected for array loading
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return ReadDense[T](f)
}

// LoadSparse reads a CSR matrix from a file.
func LoadSparse[T array.DType](path string) (*array.Sparse2D[T], error) {
	//nolint:gosec // G304: file path comes from the caller, which is expected for array loading
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return ReadSparse[T](f)
}

// readPayload reads the header, the optional checksum and the whole payload,
// decompressing and checksum-validating as the flags dictate.
func readPayload(r io.Reader) ([]byte, Header, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, Header{}, err
	}

	var stored [32]byte
	if h.Flags&FlagChecksum != 0 {
		if _, err := io.ReadFull(r, stored[:]); err != nil {
			return nil, Header{}, corruptf("checksum", "truncated checksum: %v", err)
		}
	}

	body := r
	if h.Flags&FlagCompressed != 0 {
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, Header{}, corruptf("payload", "bad gzip stream: %v", err)
		}
		defer zr.Close()
		body = zr
	}
	payload, err := io.ReadAll(body)
	if err != nil {
		return nil, Header{}, corruptf("payload", "failed to read payload: %v", err)
	}

	if h.Flags&FlagChecksum != 0 {
		if err := ValidateChecksum(ComputeChecksum(payload), stored); err != nil {
			return nil, Header{}, err
		}
	}
	return payload, h, nil
}

func decodeDense[T array.DType](r *bytes.Reader) (*array.Dense[T], error) {
	var rank uint32
	if err := binary.Read(r, binary.LittleEndian, &rank); err != nil {
		return nil, corruptf("rank", "truncated payload: %v", err)
	}
	if rank < 1 || rank > 2 {
		return nil, corruptf("rank", "unsupported rank %d", rank)
	}
	dims := make([]uint64, rank)
	product := uint64(1)
	for i := range dims {
		if err := binary.Read(r, binary.LittleEndian, &dims[i]); err != nil {
			return nil, corruptf("dims", "truncated payload: %v", err)
		}
		if dims[i] == 0 || dims[i] > maxDeclaredElements {
			return nil, corruptf("dims", "dimension %d out of range: %d", i, dims[i])
		}
		// Division form so the running product cannot wrap uint64.
		if product > maxDeclaredElements/dims[i] {
			return nil, corruptf("dims", "declared shape %v too large", dims)
		}
		product *= dims[i]
	}
	var count uint64
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, corruptf("count", "truncated payload: %v", err)
	}
	if count != product || count > maxDeclaredElements {
		return nil, corruptf("count", "declared %d elements for dims %v", count, dims)
	}
	// Bound the allocation by the bytes actually present.
	if count > uint64(r.Len())/uint64(array.TypeOf[T]().Size()) {
		return nil, corruptf("elements", "declared %d elements but payload is shorter", count)
	}

	var d *array.Dense[T]
	var err error
	if rank == 1 {
		d, err = array.NewDense[T](int(dims[0]))
	} else {
		d, err = array.NewDense2D[T](int(dims[0]), int(dims[1]))
	}
	if err != nil {
		return nil, corruptf("dims", "%v", err)
	}
	if err := binary.Read(r, binary.LittleEndian, d.Data()); err != nil {
		return nil, corruptf("elements", "declared %d elements but payload is shorter", count)
	}
	if r.Len() != 0 {
		return nil, corruptf("elements", "%d trailing bytes after %d elements", r.Len(), count)
	}
	return d, nil
}

func decodeSparse[T array.DType](r *bytes.Reader) (*array.Sparse2D[T], error) {
	var nRows, nCols, nnz uint64
	for _, dst := range []*uint64{&nRows, &nCols, &nnz} {
		if err := binary.Read(r, binary.LittleEndian, dst); err != nil {
			return nil, corruptf("shape", "truncated payload: %v", err)
		}
	}
	if nRows == 0 || nCols == 0 || nRows > maxDeclaredElements || nCols > maxDeclaredElements {
		return nil, corruptf("shape", "shape %dx%d out of range", nRows, nCols)
	}
	if nnz > maxDeclaredElements || nnz > nRows*nCols {
		return nil, corruptf("nnz", "declared %d stored entries for shape %dx%d", nnz, nRows, nCols)
	}

	rowPtr, err := readIndexSlice(r, int(nRows)+1)
	if err != nil {
		return nil, corruptf("row_ptr", "declared %d rows but payload is shorter", nRows)
	}
	cols, err := readIndexSlice(r, int(nnz))
	if err != nil {
		return nil, corruptf("cols", "declared nnz %d but fewer column indices encoded", nnz)
	}
	if nnz > uint64(r.Len())/uint64(array.TypeOf[T]().Size()) {
		return nil, corruptf("values", "declared nnz %d but fewer values encoded", nnz)
	}
	vals := make([]T, nnz)
	if err := binary.Read(r, binary.LittleEndian, vals); err != nil {
		return nil, corruptf("values", "declared nnz %d but fewer values encoded", nnz)
	}
	if r.Len() != 0 {
		return nil, corruptf("values", "%d trailing bytes after %d entries", r.Len(), nnz)
	}

	s := array.NewSparse2DCopy(int(nRows), int(nCols), rowPtr, cols, vals)
	if err := s.Validate(); err != nil {
		return nil, corruptf("csr", "%v", err)
	}
	return s, nil
}

// readIndexSlice decodes n u64 indices into the in-memory Index type. The
// count is bounded by the remaining payload so a corrupt header cannot force
// a huge allocation before the short read surfaces.
func readIndexSlice(r *bytes.Reader, n int) ([]array.Index, error) {
	if n > r.Len()/8 {
		return nil, io.ErrUnexpectedEOF
	}
	raw := make([]uint64, n)
	if err := binary.Read(r, binary.LittleEndian, raw); err != nil {
		return nil, err
	}
	idx := make([]array.Index, n)
	for i, v := range raw {
		if v > math.MaxInt64 {
			return nil, fmt.Errorf("index %d overflows int64", v)
		}
		idx[i] = array.Index(v)
	}
	return idx, nil
}
