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

// Complex is a complex number whose parts are stored in a 2-dimensional
// vector, so addition and scaling run on the vector kernels.
type Complex[T Float] struct {
	v Vector[T, D2]
}

// Complexf is a complex number with float32 parts.
type Complexf = Complex[float32]

// NewComplex returns re + im·i.
func NewComplex[T Float](re, im T) Complex[T] {
	return Complex[T]{v: NewVector[T, D2](re, im)}
}

// Imaginary returns the pure imaginary number im·i.
func Imaginary[T Float](im T) Complex[T] {
	return NewComplex(0, im)
}

// Real returns the real part.
func (z Complex[T]) Real() T { return z.v.v[0] }

// Imag returns the imaginary part.
func (z Complex[T]) Imag() T { return z.v.v[1] }

// Add returns z + w.
func (z Complex[T]) Add(w Complex[T]) Complex[T] {
	return Complex[T]{v: z.v.Add(w.v)}
}

// Sub returns z - w.
func (z Complex[T]) Sub(w Complex[T]) Complex[T] {
	return Complex[T]{v: z.v.Sub(w.v)}
}

// Mul returns z * w = (ac - bd) + (ad + bc)i.
func (z Complex[T]) Mul(w Complex[T]) Complex[T] {
	a, b := z.Real(), z.Imag()
	c, d := w.Real(), w.Imag()
	return NewComplex(a*c-b*d, a*d+b*c)
}

// Div returns z / w = [(ac + bd) + (bc - ad)i] / (c² + d²). Dividing by zero
// is not checked and yields non-finite parts.
func (z Complex[T]) Div(w Complex[T]) Complex[T] {
	a, b := z.Real(), z.Imag()
	c, d := w.Real(), w.Imag()
	den := c*c + d*d
	return NewComplex((a*c+b*d)/den, (b*c-a*d)/den)
}

// AddScalar adds x to the real part.
func (z Complex[T]) AddScalar(x T) Complex[T] {
	return NewComplex(z.Real()+x, z.Imag())
}

// SubScalar subtracts x from the real part.
func (z Complex[T]) SubScalar(x T) Complex[T] {
	return NewComplex(z.Real()-x, z.Imag())
}

// Scale multiplies both parts by x.
func (z Complex[T]) Scale(x T) Complex[T] {
	return Complex[T]{v: z.v.Scale(x)}
}

// DivScalar divides both parts by x.
func (z Complex[T]) DivScalar(x T) Complex[T] {
	return Complex[T]{v: z.v.Div(x)}
}

// Conjugate flips the sign of the imaginary part.
func (z Complex[T]) Conjugate() Complex[T] {
	return NewComplex(z.Real(), -z.Imag())
}

// Inv flips the sign of both parts.
func (z Complex[T]) Inv() Complex[T] {
	return Complex[T]{v: z.v.Neg()}
}

// Abs returns the magnitude sqrt(re² + im²). Float32 values use fmath.Sqrt.
func (z Complex[T]) Abs() T {
	return Length(z.v)
}

// Equal reports whether both parts of z and w are within the element type's
// epsilon.
func (z Complex[T]) Equal(w Complex[T]) bool {
	return z.v.Equal(w.v)
}

// EqualScalar reports whether z is within epsilon of the real number x.
func (z Complex[T]) EqualScalar(x T) bool {
	return approxEqual(z.Real(), x) && approxEqual(z.Imag(), 0)
}
