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

package backend

import "github.com/ajroetker/go-fmath/fmath"

// The Base* kernels are the portable reference implementations. Element-wise
// kernels process min(len(...)) elements; the matrix kernels panic on short
// slices.

// BaseAdd computes dst[i] = a[i] + b[i].
func BaseAdd[T Lanes](dst, a, b []T) {
	n := min(len(dst), len(a), len(b))
	for i := range n {
		dst[i] = a[i] + b[i]
	}
}

// BaseSub computes dst[i] = a[i] - b[i].
func BaseSub[T Lanes](dst, a, b []T) {
	n := min(len(dst), len(a), len(b))
	for i := range n {
		dst[i] = a[i] - b[i]
	}
}

// BaseMul computes the element-wise product dst[i] = a[i] * b[i].
func BaseMul[T Lanes](dst, a, b []T) {
	n := min(len(dst), len(a), len(b))
	for i := range n {
		dst[i] = a[i] * b[i]
	}
}

// BaseScale computes dst[i] = a[i] * s.
func BaseScale[T Lanes](dst, a []T, s T) {
	n := min(len(dst), len(a))
	for i := range n {
		dst[i] = a[i] * s
	}
}

// BaseDiv computes dst[i] = a[i] / s. Integer division truncates and panics
// when s is zero.
func BaseDiv[T Lanes](dst, a []T, s T) {
	n := min(len(dst), len(a))
	for i := range n {
		dst[i] = a[i] / s
	}
}

// BaseDot computes the dot product of a and b, accumulating left to right.
//
// Example:
//
//	a := []float32{1, 2, 3}
//	b := []float32{4, 5, 6}
//	result := BaseDot(a, b)  // 1*4 + 2*5 + 3*6 = 32
func BaseDot[T Lanes](a, b []T) T {
	n := min(len(a), len(b))
	var sum T
	for i := range n {
		sum += a[i] * b[i]
	}
	return sum
}

// BaseMatVec computes result = M * v for a row-major rows×cols matrix.
//
// Panics if:
//   - len(m) < rows * cols
//   - len(v) < cols
//   - len(result) < rows
//
// Example:
//
//	// 2x3 matrix:
//	//   [1 2 3]
//	//   [4 5 6]
//	m := []float32{1, 2, 3, 4, 5, 6}
//	v := []float32{1, 0, 1}
//	result := make([]float32, 2)
//	BaseMatVec(m, 2, 3, v, result)  // result = [4, 10]
func BaseMatVec[T Lanes](m []T, rows, cols int, v, result []T) {
	checkMatVec(len(m), rows, cols, len(v), cols, len(result), rows)
	for i := range rows {
		result[i] = BaseDot(m[i*cols:(i+1)*cols], v[:cols])
	}
}

// BaseMatTVec computes result = Mᵀ * v for a row-major rows×cols matrix,
// that is result[j] = Σ_i m[i*cols+j] * v[i].
func BaseMatTVec[T Lanes](m []T, rows, cols int, v, result []T) {
	checkMatVec(len(m), rows, cols, len(v), rows, len(result), cols)
	for j := range cols {
		var acc T
		for i := range rows {
			acc += m[i*cols+j] * v[i]
		}
		result[j] = acc
	}
}

// BaseMatMul computes C = A * B with A m×k, B k×n and C m×n, all row-major.
// C[i,j] = sum(A[i,p] * B[p,j]) for p in 0..k-1
func BaseMatMul[T Lanes](a, b, c []T, m, n, k int) {
	if len(a) < m*k || len(b) < k*n || len(c) < m*n {
		panic("backend: matmul slice too small")
	}
	clear(c[:m*n])
	for i := range m {
		for p := range k {
			aip := a[i*k+p]
			for j := range n {
				c[i*n+j] += aip * b[p*n+j]
			}
		}
	}
}

// BaseTranspose transposes the row-major m×k matrix src into the k×m
// matrix dst.
func BaseTranspose[T Lanes](src []T, m, k int, dst []T) {
	if len(src) < m*k || len(dst) < m*k {
		panic("backend: transpose slice too small")
	}
	for i := range m {
		for j := range k {
			dst[j*m+i] = src[i*k+j]
		}
	}
}

// BaseSqrt computes dst[i] = fmath.Sqrt(src[i]).
func BaseSqrt(dst, src []float32) {
	fmath.Transform(src, dst, fmath.Sqrt)
}

// BaseRSqrt computes dst[i] = fmath.RSqrt(src[i]).
func BaseRSqrt(dst, src []float32) {
	fmath.Transform(src, dst, fmath.RSqrt)
}

func checkMatVec(lm, rows, cols, lv, wantV, lr, wantR int) {
	if lm < rows*cols {
		panic("backend: matrix slice too small")
	}
	if lv < wantV {
		panic("backend: vector slice too small")
	}
	if lr < wantR {
		panic("backend: result slice too small")
	}
}
