package sstable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixShape(t *testing.T) {
	m := NewMatrix(uint32(2), uint32(3))

	r, c := m.Shape()

	assert.Equal(t, uint32(2), r)
	assert.Equal(t, uint32(3), c)
}

func TestMatrixGet(t *testing.T) {
	m := NewMatrix(uint32(2), uint32(3))

	val := 0.0
	for r := 0; r < 2; r += 1 {
		for c := 0; c < 3; c += 1 {
			m.Set(uint32(r), uint32(c), val)
			val += 1.0
		}
	}

	assert.Equal(t, 0.0, m.Get(0, 0))
	assert.Equal(t, 1.0, m.Get(0, 1))
	assert.Equal(t, 2.0, m.Get(0, 2))
	assert.Equal(t, 3.0, m.Get(1, 0))
	assert.Equal(t, 4.0, m.Get(1, 1))
	assert.Equal(t, 5.0, m.Get(1, 2))

	assert.Equal(t, []float64{3, 4, 5}, m.Row(1))
	assert.Equal(t, []float64{2, 5}, m.Col(2))
}

func TestMatrixBounds(t *testing.T) {
	m := NewMatrix(uint32(2), uint32(2))

	assert.PanicsWithValue(t, ErrIndexOutOfRange, func() { m.Get(2, 0) })
	assert.PanicsWithValue(t, ErrIndexOutOfRange, func() { m.Set(0, 2, 1) })
	assert.PanicsWithValue(t, ErrIndexOutOfRange, func() { m.Col(2) })
	assert.PanicsWithValue(t, ErrBadShape, func() { NewMatrix(0, 3) })
}
