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

// Vector is an N-dimensional vector of T. Components at index N and above
// are always zero.
type Vector[T Scalar, N Dim] struct {
	v [MaxDim]T
}

// Common instantiations.
type (
	Vec2f = Vector[float32, D2]
	Vec3f = Vector[float32, D3]
	Vec4f = Vector[float32, D4]
	Vec2d = Vector[float64, D2]
	Vec3d = Vector[float64, D3]
	Vec4d = Vector[float64, D4]
	Vec2i = Vector[int32, D2]
	Vec3i = Vector[int32, D3]
	Vec4i = Vector[int32, D4]
)

// NewVector builds a vector from up to N values. Missing components are
// zero and extra values are ignored.
func NewVector[T Scalar, N Dim](values ...T) Vector[T, N] {
	var out Vector[T, N]
	copy(out.v[:dimOf[N]()], values)
	return out
}

// Splat returns a vector with every component set to x.
func Splat[T Scalar, N Dim](x T) Vector[T, N] {
	var out Vector[T, N]
	for i := range dimOf[N]() {
		out.v[i] = x
	}
	return out
}

// Len returns N.
func (a Vector[T, N]) Len() int {
	return dimOf[N]()
}

func (a *Vector[T, N]) lanes() []T {
	return a.v[:dimOf[N]()]
}

// At returns component i. It panics if i is not in [0, N).
func (a Vector[T, N]) At(i int) T {
	return a.lanes()[i]
}

// Set sets component i. It panics if i is not in [0, N).
func (a *Vector[T, N]) Set(i int, x T) {
	a.lanes()[i] = x
}

// Slice returns a copy of the N components.
func (a Vector[T, N]) Slice() []T {
	return append([]T(nil), a.lanes()...)
}

// Add returns a + b.
func (a Vector[T, N]) Add(b Vector[T, N]) Vector[T, N] {
	var out Vector[T, N]
	backend.Add(out.lanes(), a.lanes(), b.lanes())
	return out
}

// Sub returns a - b.
func (a Vector[T, N]) Sub(b Vector[T, N]) Vector[T, N] {
	var out Vector[T, N]
	backend.Sub(out.lanes(), a.lanes(), b.lanes())
	return out
}

// MulElem returns the component-wise product of a and b.
func (a Vector[T, N]) MulElem(b Vector[T, N]) Vector[T, N] {
	var out Vector[T, N]
	backend.Mul(out.lanes(), a.lanes(), b.lanes())
	return out
}

// Scale returns a * s.
func (a Vector[T, N]) Scale(s T) Vector[T, N] {
	var out Vector[T, N]
	backend.Scale(out.lanes(), a.lanes(), s)
	return out
}

// Div returns a / s. Division by zero follows the element type: Inf or NaN
// for floats, a panic for integers.
func (a Vector[T, N]) Div(s T) Vector[T, N] {
	var out Vector[T, N]
	backend.Div(out.lanes(), a.lanes(), s)
	return out
}

// Neg returns -a.
func (a Vector[T, N]) Neg() Vector[T, N] {
	var out Vector[T, N]
	for i := range a.Len() {
		out.v[i] = -a.v[i]
	}
	return out
}

// Dot returns the dot product of a and b.
func (a Vector[T, N]) Dot(b Vector[T, N]) T {
	return backend.Dot(a.lanes(), b.lanes())
}

// Equal reports whether every component of a and b differs by at most the
// element type's epsilon. Integer vectors compare exactly.
func (a Vector[T, N]) Equal(b Vector[T, N]) bool {
	for i := range a.Len() {
		if !approxEqual(a.v[i], b.v[i]) {
			return false
		}
	}
	return true
}

// Dot returns Σ aᵢbᵢ.
func Dot[T Scalar, N Dim](a, b Vector[T, N]) T {
	return a.Dot(b)
}

// Cross returns the cross product of two 3-dimensional vectors.
func Cross[T Scalar](a, b Vector[T, D3]) Vector[T, D3] {
	return Vector[T, D3]{v: [MaxDim]T{
		a.v[1]*b.v[2] - a.v[2]*b.v[1],
		a.v[2]*b.v[0] - a.v[0]*b.v[2],
		a.v[0]*b.v[1] - a.v[1]*b.v[0],
	}}
}

// Length returns sqrt(Dot(a, a)). Float32 vectors use fmath.Sqrt.
func Length[T Float, N Dim](a Vector[T, N]) T {
	return sqrt(a.Dot(a))
}

// Normalize returns a scaled by 1/Length(a), computed with a reciprocal
// square root instead of a division. The zero vector yields non-finite
// components.
func Normalize[T Float, N Dim](a Vector[T, N]) Vector[T, N] {
	return a.Scale(rsqrt(a.Dot(a)))
}
