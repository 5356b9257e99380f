package array_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acorn-ml/acorn/array"
)

// Round-trips the CSR example matrix from
// https://en.wikipedia.org/wiki/Sparse_matrix through a file and checks the
// row dot products on both sides of the cycle.
func TestSparseFileRoundTrip(t *testing.T) {
	vals := []float64{10, 20, 30, 40, 50, 60, 70, 80}
	rowPtr := []array.Index{0, 2, 4, 7, 8}
	cols := []array.Index{0, 1, 1, 3, 2, 3, 4, 5}

	sparse := array.NewSparse2D(4, 6, rowPtr, cols, vals)
	x, err := array.FromSlice([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	assert.Equal(t, 50.0, x.DotSparse(sparse.RowView(0)))
	assert.Equal(t, 220.0, x.DotSparse(sparse.RowView(1)))
	assert.Equal(t, 740.0, x.DotSparse(sparse.RowView(2)))
	assert.Equal(t, 480.0, x.DotSparse(sparse.RowView(3)))

	path := filepath.Join(t.TempDir(), "sparse_array_2d.acrn")
	require.NoError(t, array.SaveSparse(path, sparse))

	loaded, err := array.LoadSparse[float64](path)
	require.NoError(t, err)

	assert.Equal(t, 4, loaded.NRows())
	assert.Equal(t, 6, loaded.NCols())
	assert.Equal(t, 50.0, x.DotSparse(loaded.RowView(0)))
	assert.Equal(t, 220.0, x.DotSparse(loaded.RowView(1)))
	assert.Equal(t, 740.0, x.DotSparse(loaded.RowView(2)))
	assert.Equal(t, 480.0, x.DotSparse(loaded.RowView(3)))
}

func TestDenseFileRoundTrip(t *testing.T) {
	d, err := array.FromSlice2D([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dense.acrn")
	require.NoError(t, array.SaveDense(path, d))

	loaded, err := array.LoadDense[float64](path)
	require.NoError(t, err)
	assert.Equal(t, d.Data(), loaded.Data())
	assert.Equal(t, 2, loaded.NRows())

	_, err = array.LoadDense[int32](path)
	assert.ErrorIs(t, err, array.ErrTypeMismatch)
}
