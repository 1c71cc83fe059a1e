package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphcore/matrix"
)

func TestDense_ShapeAndBounds(t *testing.T) {
	_, err := matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	assert.Zero(t, m.Rows())
	assert.True(t, m.IsSymmetric())

	m, err = matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.False(t, m.IsSymmetric(), "non-square")

	require.NoError(t, m.Set(1, 2, 9))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(9), v)
	assert.Equal(t, []int64{0, 0, 9}, m.Row(1))
	assert.Nil(t, m.Row(2))

	assert.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.Equal(t, "[0 0 0]\n[0 0 9]\n", m.String())
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m, _ := matrix.NewDense(2, 2)
	_ = m.Set(0, 1, 4)
	_ = m.Set(1, 0, 4)
	assert.True(t, m.IsSymmetric())

	cp := m.Clone()
	_ = cp.Set(0, 1, 5)
	assert.False(t, cp.IsSymmetric())

	v, _ := m.At(0, 1)
	assert.Equal(t, int64(4), v)
}
