package serialization

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/acorn-ml/acorn/internal/array"
)

// Options configures how an array is encoded.
type Options struct {
	Compress bool // gzip the payload
	Checksum bool // store a SHA-256 payload checksum
}

// DefaultOptions are used by the Save helpers: checksummed, uncompressed.
func DefaultOptions() Options {
	return Options{Checksum: true}
}

// WriteDense encodes a dense array to w.
func WriteDense[T array.DType](w io.Writer, d *array.Dense[T], opts Options) error {
	payload := new(bytes.Buffer)
	shape := d.Shape()
	if err := binary.Write(payload, binary.LittleEndian, uint32(len(shape))); err != nil {
		return fmt.Errorf("failed to encode rank: %w", err)
	}
	for _, dim := range shape {
		if err := binary.Write(payload, binary.LittleEndian, uint64(dim)); err != nil {
			return fmt.Errorf("failed to encode dimension: %w", err)
		}
	}
	if err := binary.Write(payload, binary.LittleEndian, uint64(d.Size())); err != nil {
		return fmt.Errorf("failed to encode element count: %w", err)
	}
	if err := binary.Write(payload, binary.LittleEndian, d.Data()); err != nil {
		return fmt.Errorf("failed to encode elements: %w", err)
	}
	return writeEncoded(w, KindDense, array.TypeOf[T](), payload.Bytes(), opts)
}

// WriteSparse encodes a CSR matrix to w.
func WriteSparse[T array.DType](w io.Writer, s *array.Sparse2D[T], opts Options) error {
	payload := new(bytes.Buffer)
	for _, v := range []uint64{uint64(s.NRows()), uint64(s.NCols()), uint64(s.NNZ())} {
		if err := binary.Write(payload, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("failed to encode sparse header: %w", err)
		}
	}
	if err := writeIndexSlice(payload, s.RowPtr()); err != nil {
		return fmt.Errorf("failed to encode row pointers: %w", err)
	}
	if err := writeIndexSlice(payload, s.Cols()); err != nil {
		return fmt.Errorf("failed to encode column indices: %w", err)
	}
	if err := binary.Write(payload, binary.LittleEndian, s.Values()); err != nil {
		return fmt.Errorf("failed to encode values: %w", err)
	}
	return writeEncoded(w, KindSparseCSR, array.TypeOf[T](), payload.Bytes(), opts)
}

// SaveDense writes a dense array to a file with default options.
func SaveDense[T array.DType](path string, d *array.Dense[T]) error {
	return saveFile(path, func(f io.Writer) error {
		return WriteDense(f, d, DefaultOptions())
	})
}

// SaveSparse writes a CSR matrix to a file with default options.
func SaveSparse[T array.DType](path string, s *array.Sparse2D[T]) error {
	return saveFile(path, func(f io.Writer) error {
		return WriteSparse(f, s, DefaultOptions())
	})
}

func saveFile(path string, write func(io.Writer) error) error {
	//nolint:gosec // G304: file path comes from the caller, which is expected for array saving
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := write(f); err != nil {
		_ = f.Close() // best effort close, the write error wins
		return err
	}
	return f.Close()
}

// writeEncoded writes the fixed header, optional checksum and payload.
func writeEncoded(w io.Writer, kind uint32, dtype array.DataType, payload []byte, opts Options) error {
	if _, err := io.WriteString(w, MagicBytes); err != nil {
		return fmt.Errorf("failed to write magic bytes: %w", err)
	}
	flags := uint32(0)
	if opts.Compress {
		flags |= FlagCompressed
	}
	if opts.Checksum {
		flags |= FlagChecksum
	}
	for _, v := range []uint32{FormatVersion, flags, kind, dtypeToCode(dtype)} {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	if opts.Checksum {
		sum := ComputeChecksum(payload)
		if _, err := w.Write(sum[:]); err != nil {
			return fmt.Errorf("failed to write checksum: %w", err)
		}
	}
	if opts.Compress {
		zw := gzip.NewWriter(w)
		if _, err := zw.Write(payload); err != nil {
			return fmt.Errorf("failed to write compressed payload: %w", err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("failed to finish compressed payload: %w", err)
		}
		return nil
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}
	return nil
}

// writeIndexSlice encodes CSR indices as u64, the fixed on-disk width.
func writeIndexSlice(w io.Writer, idx []array.Index) error {
	for _, v := range idx {
		if err := binary.Write(w, binary.LittleEndian, uint64(v)); err != nil {
			return err
		}
	}
	return nil
}
