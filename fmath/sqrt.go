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

// Magic constants for the first estimate of each root. Adding (or
// subtracting) a shifted bit pattern to these halves, negates or thirds the
// exponent field while keeping the mantissa roughly in place.
const (
	sqrtMagic  uint32 = 0x1fbd1df5
	rsqrtMagic uint32 = 0x5f375a86
	cbrtMagic  uint32 = 0x2a2e5c2f

	cbrtTwoThirds float32 = 0.666666
	cbrtThird     float32 = 0.333333
)

// Sqrt returns an approximation of the square root of x.
//
// Algorithm:
//  1. y = bits(sqrtMagic + bits(x)>>1), which halves the exponent
//  2. Two Newton steps: y = y/2 + (x/2)/y
//
// x must be non-negative. Sqrt(0) returns a tiny positive value, not 0.
func Sqrt(x float32) float32 {
	n := 0.5 * x
	y := fromBits(sqrtMagic + bitsOf(x)>>1)
	y = 0.5*y + n/y
	y = 0.5*y + n/y
	return y
}

// RSqrt returns an approximation of 1/sqrt(x).
//
// Algorithm:
//  1. y = bits(rsqrtMagic - bits(x)>>1)
//  2. Two Newton steps: y = y*(1.5 - (x/2)*y*y)
//
// x must be positive.
func RSqrt(x float32) float32 {
	n := 0.5 * x
	y := fromBits(rsqrtMagic - bitsOf(x)>>1)
	y = y * (1.5 - n*y*y)
	y = y * (1.5 - n*y*y)
	return y
}

// Cbrt returns an approximation of the cube root of x.
//
// The root is computed on |x| and the result is multiplied by a ±1 built from
// the sign bit of x, so Cbrt(-x) == -Cbrt(x) without a branch.
//
// Algorithm:
//  1. y = bits(cbrtMagic + bits(|x|)/3), which thirds the exponent
//  2. Three Newton steps: y = (2/3)*y + (|x|/3)/(y*y)
func Cbrt(x float32) float32 {
	h := bitsOf(x)
	s := fromBits(h&signMask | oneBits)
	a := h & magMask
	n := cbrtThird * fromBits(a)

	y := fromBits(cbrtMagic + a/3)
	y = cbrtTwoThirds*y + n*(1/(y*y))
	y = cbrtTwoThirds*y + n*(1/(y*y))
	y = cbrtTwoThirds*y + n*(1/(y*y))
	return s * y
}
