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

// Trunc converts x to an integer, rounding toward zero.
func Trunc(x float32) int32 {
	return int32(x)
}

// Ceil returns the least integer not less than x.
func Ceil(x float32) int32 {
	i := int32(x)
	if float32(i) < x {
		i++
	}
	return i
}

// Floor returns the greatest integer not greater than x.
func Floor(x float32) int32 {
	i := int32(x)
	if float32(i) > x {
		i--
	}
	return i
}

// Round returns the nearest integer, rounding half away from zero. The ±0.5
// offset takes the sign of x from its sign bit.
func Round(x float32) int32 {
	return int32(x + signOf(x)*0.5)
}

// BRound returns the nearest integer, rounding half to even (banker's
// rounding): BRound(2.5) == 2, BRound(3.5) == 4, BRound(-2.5) == -2.
func BRound(x float32) int32 {
	i := int32(x)
	frac := Abs(x - float32(i))
	step := int32(1) | int32(bitsOf(x)&signMask)>>31
	switch {
	case frac > 0.5:
		return i + step
	case frac == 0.5 && i&1 != 0:
		return i + step
	default:
		return i
	}
}

// Mod returns the remainder of x/y with the sign of x. It is computed as
// (x/y - trunc(x/y)) * y, so it loses precision when x/y is large.
func Mod(x, y float32) float32 {
	f := x / y
	q := int32(f)
	return (f - float32(q)) * y
}
