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

import "math/bits"

// Coefficients of the atanh series used by Log:
// log(m) = 2*(t + t³/3 + t⁵/5 + t⁷/7 + t⁹/9 + t¹¹/11), t = (m-1)/(m+1).
const (
	logC3  float32 = 0.333333
	logC5  float32 = 0.2
	logC7  float32 = 0.142857
	logC9  float32 = 0.111111
	logC11 float32 = 0.090909

	logLn2 float32 = 0.69314718055994530942
)

// Taylor coefficients of e^b on (-ln2, ln2), degree 6.
const (
	expC2 float32 = 0.5
	expC3 float32 = 0.166666
	expC4 float32 = 0.0416666
	expC5 float32 = 0.0083333
	expC6 float32 = 0.0013888

	// expLn2 is float32(ln 2) written out exactly.
	expLn2  float32 = 0.693147182464599609375
	expLn10 float32 = 2.302585124969482421875
)

// Log returns an approximation of the natural logarithm of x.
//
// Algorithm:
//  1. Split x = 2^e * m with m in [1, 2) by reading the exponent field and
//     forcing the exponent of the mantissa to zero
//  2. log(m) = 2*atanh(t) with t = (m-1)/(m+1) in [0, 1/3), series to t¹¹
//  3. log(x) = e*ln2 + log(m)
//
// x must be positive and normal.
func Log(x float32) float32 {
	i := int32(bitsOf(x))
	e := (i >> mantBits) - exponentBias
	m := fromBits(uint32(i)&mantMask | oneBits)

	t := (m - 1) / (m + 1)
	t2 := t * t
	y := 2 * (t + t2*t*(logC3+t2*(logC5+t2*(logC7+t2*(logC9+t2*logC11)))))

	return logLn2*float32(e) + y
}

// Log2 returns an approximation of the base 2 logarithm of x.
func Log2(x float32) float32 {
	return Log2E * Log(x)
}

// Log10 returns an approximation of the base 10 logarithm of x.
func Log10(x float32) float32 {
	return Log10E * Log(x)
}

// Log2Int returns floor(log2(x)) for x > 0. Log2Int(0) wraps to 2^32-1.
func Log2Int(x uint32) uint32 {
	return 31 - uint32(bits.LeadingZeros32(x))
}

// LogBase returns an approximation of the base a logarithm of b.
func LogBase(a, b float32) float32 {
	return Log(b) / Log(a)
}

// Exp returns an approximation of e^x.
//
// Algorithm:
//  1. t = x/ln2 = i + f with i the truncated integer part
//  2. 2^i is built directly in the exponent field: bits((i+127) << 23)
//  3. 2^f = e^(f*ln2) from a degree 6 Taylor polynomial
//  4. e^x = 2^i * 2^f
//
// The result is unspecified once i leaves the exponent range (|x| > ~87).
func Exp(x float32) float32 {
	t := x / expLn2
	i := int32(t)
	f := t - float32(i)

	a := uint32(i+exponentBias) << mantBits
	b := expLn2 * f
	y := 1 + b*(1+b*(expC2+b*(expC3+b*(expC4+b*(expC5+b*expC6)))))

	return fromBits(a) * y
}

// Exp2 returns an approximation of 2^x.
func Exp2(x float32) float32 {
	return Exp(x * expLn2)
}

// Exp10 returns an approximation of 10^x.
func Exp10(x float32) float32 {
	return Exp(x * expLn10)
}

// Pow returns an approximation of a^b as e^(b*log(a)). a must be positive.
func Pow(a, b float32) float32 {
	return Exp(b * Log(a))
}
