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

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/ajroetker/go-fmath/backend"
)

func randMat[C, R Dim](r *rand.Rand) Matrix[float64, C, R] {
	var m Matrix[float64, C, R]
	for i := range m.Cols() {
		for j := range m.Rows() {
			m.Set(i, j, r.Float64()*2-1)
		}
	}
	return m
}

// dense converts m to a gonum matrix with one row per column vector.
func dense[C, R Dim](m Matrix[float64, C, R]) *mat.Dense {
	d := mat.NewDense(m.Cols(), m.Rows(), nil)
	for i := range m.Cols() {
		for j := range m.Rows() {
			d.Set(i, j, m.At(i, j))
		}
	}
	return d
}

func TestNewMatrix(t *testing.T) {
	m := NewMatrix[float32, D2, D3](1, 2, 3, 4, 5, 6)
	assert.Equal(t, NewVector[float32, D3](1, 2, 3), m.Col(0))
	assert.Equal(t, NewVector[float32, D3](4, 5, 6), m.Col(1))
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, 3, m.Rows())

	short := NewMatrix[float32, D2, D2](1, 2, 3)
	assert.Equal(t, float32(0), short.At(1, 1))

	cols := MatrixFromColumns[float32, D2, D3](NewVector[float32, D3](1, 2, 3), NewVector[float32, D3](4, 5, 6))
	assert.Equal(t, m, cols)

	m.Set(1, 2, 9)
	assert.Equal(t, float32(9), m.At(1, 2))
	m.SetCol(0, NewVector[float32, D3](7, 7, 7))
	assert.Equal(t, float32(7), m.At(0, 1))
	assert.Panics(t, func() { m.Col(2) })
}

func TestIdentityTimesVector(t *testing.T) {
	v := NewVector[float32, D4](1, 2, 3, 4)
	assert.Equal(t, v, MulVec(Identity[float32, D4](), v))
	assert.Equal(t, v, VecMul(v, Identity[float32, D4]()))
}

func TestMulVecShapes(t *testing.T) {
	// Two columns of dimension three.
	m := NewMatrix[float32, D2, D3](1, 2, 3, 4, 5, 6)

	// MulVec dots each column with a 3-vector.
	got := MulVec(m, NewVector[float32, D3](1, 0, 1))
	assert.Equal(t, NewVector[float32, D2](4, 10), got)

	// VecMul weights the columns by a 2-vector.
	got3 := VecMul(NewVector[float32, D2](1, 1), m)
	assert.Equal(t, NewVector[float32, D3](5, 7, 9), got3)
}

func TestTranspose(t *testing.T) {
	m := MatrixFromColumns[float32, D2, D3](
		NewVector[float32, D3](1, 2, 3),
		NewVector[float32, D3](4, 5, 6),
	)
	tr := Transpose(m)
	assert.Equal(t, NewVector[float32, D2](1, 4), tr.Col(0))
	assert.Equal(t, NewVector[float32, D2](2, 5), tr.Col(1))
	assert.Equal(t, NewVector[float32, D2](3, 6), tr.Col(2))
	assert.Equal(t, m, Transpose(tr))
}

func TestTransposeInvolution(t *testing.T) {
	r := rand.New(rand.NewPCG(4, 4))
	for range 50 {
		a := randMat[D3, D4](r)
		require.Equal(t, a, Transpose(Transpose(a)))
	}
}

func TestMulIdentity(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 5))
	for range 50 {
		a := randMat[D4, D3](r)
		require.Equal(t, a, Mul(a, Identity[float64, D3]()))
		require.Equal(t, a, Mul(Identity[float64, D4](), a))
	}
}

func TestMulAssociative(t *testing.T) {
	r := rand.New(rand.NewPCG(6, 6))
	for range 50 {
		a := randMat[D2, D3](r)
		b := randMat[D3, D4](r)
		c := randMat[D4, D2](r)
		left := Mul(Mul(a, b), c)
		right := Mul(a, Mul(b, c))
		require.True(t, mat.EqualApprox(dense(left), dense(right), 1e-12))
	}
}

func TestMulAgainstGonum(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	a := randMat[D2, D3](r)
	b := randMat[D3, D4](r)

	var want mat.Dense
	want.Mul(dense(a), dense(b))
	assert.True(t, mat.EqualApprox(&want, dense(Mul(a, b)), 1e-12))

	var wantVec mat.VecDense
	v := NewVector[float64, D3](0.5, -1, 2)
	wantVec.MulVec(dense(a), mat.NewVecDense(3, v.Slice()))
	got := MulVec(a, v)
	assert.InDelta(t, wantVec.AtVec(0), got.At(0), 1e-12)
	assert.InDelta(t, wantVec.AtVec(1), got.At(1), 1e-12)
}

func TestMatrixArithmetic(t *testing.T) {
	a := NewMatrix[int32, D2, D2](1, 2, 3, 4)
	b := NewMatrix[int32, D2, D2](4, 3, 2, 1)
	assert.Equal(t, NewMatrix[int32, D2, D2](5, 5, 5, 5), a.Add(b))
	assert.Equal(t, NewMatrix[int32, D2, D2](-3, -1, 1, 3), a.Sub(b))
	assert.Equal(t, NewMatrix[int32, D2, D2](2, 4, 6, 8), a.Scale(2))
	assert.Equal(t, NewMatrix[int32, D2, D2](0, 1, 1, 2), a.Div(2))
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))

	// 2x2 integer product, column-major: a = [[1 2] [3 4]] as columns.
	assert.Equal(t, NewMatrix[int32, D2, D2](8, 5, 20, 13), Mul(a, b))
}

func TestMatrixScalarPath(t *testing.T) {
	restore := backend.ForceScalar()
	defer restore()

	m := NewMatrix[float32, D3, D3](2, 0, 0, 0, 3, 0, 0, 0, 4)
	v := NewVector[float32, D3](1, 1, 1)
	assert.Equal(t, NewVector[float32, D3](2, 3, 4), MulVec(m, v))
	assert.Equal(t, m, Mul(m, Identity[float32, D3]()))
}
