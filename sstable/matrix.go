package sstable

import "gonum.org/v1/gonum/mat"

// Matrix is a dense float64 matrix, e.g. a word-topic weight table
// with one row per word and one column per topic.
type Matrix struct {
	nrow uint32
	ncol uint32
	data *mat.Dense
}

// NewMatrix creates a zero Matrix with r rows and c columns.
// It panics if r or c is zero.
func NewMatrix(r, c uint32) *Matrix {
	if r == 0 || c == 0 {
		panic(ErrBadShape)
	}
	return &Matrix{
		nrow: r,
		ncol: c,
		data: mat.NewDense(int(r), int(c), nil),
	}
}

// get the shape of the matrix
func (m *Matrix) Shape() (uint32, uint32) {
	return m.nrow, m.ncol
}

// get the [r, c]-th element of the matrix
func (m *Matrix) Get(r, c uint32) float64 {
	if r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	return m.data.At(int(r), int(c))
}

// set val to the [r, c]-th element of the matrix
func (m *Matrix) Set(r, c uint32, val float64) {
	if r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	m.data.Set(int(r), int(c), val)
}

// get a copy of the r-th row of the matrix
func (m *Matrix) Row(r uint32) []float64 {
	if r >= m.nrow {
		panic(ErrIndexOutOfRange)
	}
	return mat.Row(nil, int(r), m.data)
}

// get a copy of the c-th column of the matrix
func (m *Matrix) Col(c uint32) []float64 {
	if c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	return mat.Col(nil, int(c), m.data)
}
