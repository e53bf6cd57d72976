// Copyright 2026 go-fmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package linalg

import "github.com/ajroetker/go-fmath/backend"

// Matrix is a C×R matrix stored as C column vectors of dimension R
// (column-major). Element (i, j) is component j of column i.
type Matrix[T Scalar, C, R Dim] struct {
	cols [MaxDim]Vector[T, R]
}

// Common instantiations.
type (
	Mat2f = Matrix[float32, D2, D2]
	Mat3f = Matrix[float32, D3, D3]
	Mat4f = Matrix[float32, D4, D4]
	Mat4d = Matrix[float64, D4, D4]
)

// NewMatrix builds a matrix from a flat column-major list: the first R
// values fill column 0, the next R column 1, and so on. Missing elements are
// zero and extra values are ignored.
func NewMatrix[T Scalar, C, R Dim](values ...T) Matrix[T, C, R] {
	var m Matrix[T, C, R]
	r := dimOf[R]()
	for i := range dimOf[C]() {
		if i*r >= len(values) {
			break
		}
		copy(m.cols[i].lanes(), values[i*r:])
	}
	return m
}

// MatrixFromColumns builds a matrix from up to C column vectors. Missing
// columns are zero and extra columns are ignored.
func MatrixFromColumns[T Scalar, C, R Dim](cols ...Vector[T, R]) Matrix[T, C, R] {
	var m Matrix[T, C, R]
	copy(m.cols[:dimOf[C]()], cols)
	return m
}

// Identity returns the N×N identity matrix.
func Identity[T Scalar, N Dim]() Matrix[T, N, N] {
	var m Matrix[T, N, N]
	for i := range dimOf[N]() {
		m.cols[i].v[i] = 1
	}
	return m
}

// Cols returns C.
func (m Matrix[T, C, R]) Cols() int { return dimOf[C]() }

// Rows returns R.
func (m Matrix[T, C, R]) Rows() int { return dimOf[R]() }

func (m *Matrix[T, C, R]) columns() []Vector[T, R] {
	return m.cols[:dimOf[C]()]
}

// Col returns column i. It panics if i is not in [0, C).
func (m Matrix[T, C, R]) Col(i int) Vector[T, R] {
	return m.columns()[i]
}

// SetCol replaces column i.
func (m *Matrix[T, C, R]) SetCol(i int, v Vector[T, R]) {
	m.columns()[i] = v
}

// At returns element j of column i.
func (m Matrix[T, C, R]) At(i, j int) T {
	return m.columns()[i].At(j)
}

// Set sets element j of column i.
func (m *Matrix[T, C, R]) Set(i, j int, x T) {
	m.columns()[i].Set(j, x)
}

// flat copies the matrix into a C×R row-major buffer (one row per column).
func (m *Matrix[T, C, R]) flat(buf []T) []T {
	r := dimOf[R]()
	for i, col := range m.columns() {
		copy(buf[i*r:(i+1)*r], col.lanes())
	}
	return buf[:dimOf[C]()*r]
}

func fromFlat[T Scalar, C, R Dim](buf []T) Matrix[T, C, R] {
	return NewMatrix[T, C, R](buf...)
}

// Add returns m + n.
func (m Matrix[T, C, R]) Add(n Matrix[T, C, R]) Matrix[T, C, R] {
	var out Matrix[T, C, R]
	for i := range m.Cols() {
		out.cols[i] = m.cols[i].Add(n.cols[i])
	}
	return out
}

// Sub returns m - n.
func (m Matrix[T, C, R]) Sub(n Matrix[T, C, R]) Matrix[T, C, R] {
	var out Matrix[T, C, R]
	for i := range m.Cols() {
		out.cols[i] = m.cols[i].Sub(n.cols[i])
	}
	return out
}

// Scale returns m * s.
func (m Matrix[T, C, R]) Scale(s T) Matrix[T, C, R] {
	var out Matrix[T, C, R]
	for i := range m.Cols() {
		out.cols[i] = m.cols[i].Scale(s)
	}
	return out
}

// Div returns m / s.
func (m Matrix[T, C, R]) Div(s T) Matrix[T, C, R] {
	var out Matrix[T, C, R]
	for i := range m.Cols() {
		out.cols[i] = m.cols[i].Div(s)
	}
	return out
}

// Equal reports whether every element of m and n is within the element
// type's epsilon.
func (m Matrix[T, C, R]) Equal(n Matrix[T, C, R]) bool {
	for i := range m.Cols() {
		if !m.cols[i].Equal(n.cols[i]) {
			return false
		}
	}
	return true
}

// Mul returns the product of a C×R and an R×O matrix:
//
//	out(i, j) = Σ_k a(i, k) * b(k, j)
//
// The shared dimension R is enforced by the type system.
func Mul[T Scalar, C, R, O Dim](a Matrix[T, C, R], b Matrix[T, R, O]) Matrix[T, C, O] {
	var ab, bb, cb [MaxDim * MaxDim]T
	c, r, o := dimOf[C](), dimOf[R](), dimOf[O]()
	backend.MatMul(a.flat(ab[:]), b.flat(bb[:]), cb[:c*o], c, o, r)
	return fromFlat[T, C, O](cb[:c*o])
}

// MulVec returns the C-dimensional vector out(i) = Σ_j m(i, j) * v(j).
func MulVec[T Scalar, C, R Dim](m Matrix[T, C, R], v Vector[T, R]) Vector[T, C] {
	var buf [MaxDim * MaxDim]T
	var out Vector[T, C]
	backend.MatVec(m.flat(buf[:]), dimOf[C](), dimOf[R](), v.lanes(), out.lanes())
	return out
}

// VecMul returns the R-dimensional vector out(j) = Σ_i v(i) * m(i, j).
func VecMul[T Scalar, C, R Dim](v Vector[T, C], m Matrix[T, C, R]) Vector[T, R] {
	var buf [MaxDim * MaxDim]T
	var out Vector[T, R]
	backend.MatTVec(m.flat(buf[:]), dimOf[C](), dimOf[R](), v.lanes(), out.lanes())
	return out
}

// Transpose returns the R×C matrix with out(j, i) = m(i, j).
func Transpose[T Scalar, C, R Dim](m Matrix[T, C, R]) Matrix[T, R, C] {
	var src, dst [MaxDim * MaxDim]T
	c, r := dimOf[C](), dimOf[R]()
	backend.Transpose(m.flat(src[:]), c, r, dst[:c*r])
	return fromFlat[T, R, C](dst[:c*r])
}
