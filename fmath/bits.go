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

import "math"

func bitsOf(x float32) uint32 { return math.Float32bits(x) }

func fromBits(b uint32) float32 { return math.Float32frombits(b) }

// signOf returns 1 or -1 carrying the sign bit of x. Negative zero gives -1.
func signOf(x float32) float32 {
	return fromBits(bitsOf(x)&signMask | oneBits)
}

// Abs clears the sign bit of x.
func Abs(x float32) float32 {
	return fromBits(bitsOf(x) & magMask)
}

// AbsInt returns |x| without branching. AbsInt(math.MinInt32) overflows to
// math.MinInt32.
func AbsInt(x int32) int32 {
	m := x >> 31
	return (m ^ x) - m
}

// Neg flips the sign bit of x.
func Neg(x float32) float32 {
	return fromBits(bitsOf(x) ^ signMask)
}

// Recip returns 1/x.
func Recip(x float32) float32 {
	return 1 / x
}

// Signbit reports whether the sign bit of x is set.
func Signbit(x float32) bool {
	return bitsOf(x)&signMask != 0
}
