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

package fmath

// Taylor coefficients for sin(h), h = t/9 with |t| <= Pi/2.
const (
	sinC3 float32 = -0.1666666
	sinC5 float32 = 0.0083333
	sinC7 float32 = -0.0001984
	sinC9 float32 = 0.000027553
)

// Taylor coefficients for cos(h), h = t/27 with |t| <= Pi.
const (
	cosC2 float32 = -0.49999999
	cosC4 float32 = 0.04166666
	cosC6 float32 = -0.001388888
	cosC8 float32 = 0.000024797
)

// Taylor coefficients for tan(h), h = t/4 with |t| <= Pi/2.
const (
	tanC3 float32 = 0.333333
	tanC5 float32 = 0.1333333
	tanC7 float32 = 0.05396825
)

// Sin returns an approximation of the sine of x (radians).
//
// Algorithm:
//  1. Reduce |x| to r in [0, Pi/2) and a quadrant d = q mod 4
//  2. Reflect and negate r into t in [-Pi/2, Pi/2] so that sin(|x|) = sin(t).
//     The reflection sign comes from the exponent of |1.5-d|, so no branch
//     is taken on the quadrant
//  3. sin(t/9) from a degree 9 polynomial
//  4. Two triple-angle steps: sin(3a) = sin(a)*(3 - 4*sin²(a))
//  5. Restore the sign of x
func Sin(x float32) float32 {
	s := signOf(x)
	k := Abs(x)

	f := k / HalfPi
	q := int32(f)
	r := (f - float32(q)) * HalfPi
	d := q & 3

	a := 1.5 - float32(d)
	e := int32(fromBits(bitsOf(a)&magMask) + 1)
	m := r - float32(d&1)*HalfPi
	p := uint32(e&1)<<31 | oneBits
	t := fromBits(p) * m

	h := t / 9
	h2 := h * h
	l := (((sinC9*h2+sinC7)*h2+sinC5)*h2+sinC3)*h*h2 + h

	j := l * (3 - 4*l*l)
	y := j * (3 - 4*j*j)
	return s * y
}

// Cos returns an approximation of the cosine of x (radians).
//
// Algorithm:
//  1. Reduce x to r in (-Pi, Pi) and a half-turn parity d
//  2. For odd half-turns reflect t = Pi - r, otherwise t = r
//  3. cos(t/27) from a degree 8 polynomial
//  4. Three triple-angle steps: cos(3a) = cos(a)*(4*cos²(a) - 3)
func Cos(x float32) float32 {
	f := x / Pi
	q := int32(f)
	r := (f - float32(q)) * Pi
	d := uint32(q & 1)
	s := fromBits(d<<31 | oneBits)
	t := s*r + float32(d)*Pi

	h := t / 27
	h2 := h * h
	l := (((cosC8*h2+cosC6)*h2+cosC4)*h2+cosC2)*h2 + 1

	b := l * (4*l*l - 3)
	c := b * (4*b*b - 3)
	return c * (4*c*c - 3)
}

// Tan returns an approximation of the tangent of x (radians).
//
// Algorithm:
//  1. Reduce |x| modulo Pi/2 to r, shifting by -Pi/2 on odd quadrants so that
//     tan(|x|) = tan(t) with t in [-Pi/2, Pi/2)
//  2. tan(t/4) from a degree 7 polynomial
//  3. Quadruple-angle identity: tan(4a) = 4l(1-l²) / (1 - 6l² + l⁴)
//  4. Restore the sign of x
func Tan(x float32) float32 {
	s := signOf(x)
	v := Abs(x)

	f := v / HalfPi
	q := int32(f)
	r := (f - float32(q)) * HalfPi
	d := q & 1
	t := r - float32(d)*HalfPi

	h := t / 4
	h2 := h * h
	l := h * (1 + h2*(tanC3+h2*(tanC5+h2*tanC7)))
	l2 := l * l
	y := (4 * l * (1 - l2)) / (1 - 6*l2 + l2*l2)
	return s * y
}

// Cot returns 1/Tan(x).
func Cot(x float32) float32 {
	return 1 / Tan(x)
}

// Sec returns 1/Cos(x).
func Sec(x float32) float32 {
	return 1 / Cos(x)
}

// Csc returns 1/Sin(x).
func Csc(x float32) float32 {
	return 1 / Sin(x)
}
