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

// asinHalfPi is returned once |x| reaches 1. It rounds to exactly HalfPi.
const asinHalfPi float32 = 1.570796326794

// Asin returns an approximation of the arcsine of x, in radians.
//
// The domain is split into regions, each with its own approximation:
//
//	|x| <= 0.7        two Newton steps on sin(y) = |x|, seeded with y = |x|
//	0.7 < |x| <= 0.9  cubic Taylor expansion of asin around 0.8
//	0.9 < |x| < 1     quartic Taylor expansion of asin around 0.95
//	|x| >= 1          exactly ±Pi/2
//
// Accuracy degrades near |x| = 1 where asin is not differentiable. For
// |x| > 1 the result saturates at ±Pi/2.
func Asin(x float32) float32 {
	ix := bitsOf(x)
	sn := fromBits(ix&signMask | oneBits)
	fx := fromBits(ix & magMask)

	var y float32
	switch {
	case fx <= 0.7:
		y = fx
		y -= (y*(1-0.1666666*y*y*(1-0.05*y*y)) - fx) / (1 - 0.5*y*y*(1-0.08333333*y*y))
		y -= (y*(1-0.1666666*y*y*(1-0.05*y*y)) - fx) / (1 - 0.5*y*y*(1-0.08333333*y*y))
	case fx <= 0.9:
		y = fx - 0.8
		y = 0.927295 + 1.66667*y + 1.85185*y*y + 4.88683*y*y*y
	case fx < 1:
		y = fx - 0.95
		y = 1.25323589 + 3.20256*y + 15.6022*y*y + 157.496*y*y*y + 1971.56*y*y*y*y
	default:
		y = asinHalfPi
	}
	return sn * y
}

// Acos returns Pi/2 - Asin(x).
func Acos(x float32) float32 {
	return HalfPi - Asin(x)
}

// Atan returns a coarse approximation of the arctangent of x for |x| <= 1:
//
//	atan(x) ≈ x * (1.0301 - 0.1784|x| - 0.0663x²)
//
// The absolute error is below 2e-3 on [-1, 1]. Outside that interval the
// polynomial diverges from atan quickly; reduce with atan(x) = ±Pi/2 - atan(1/x)
// first.
func Atan(x float32) float32 {
	return x * (-0.1784*Abs(x) - 0.0663*x*x + 1.0301)
}

// Acot returns Pi/2 - Atan(x). It inherits the domain of Atan.
func Acot(x float32) float32 {
	return HalfPi - Atan(x)
}

// Asec returns Acos(1/x) for |x| >= 1.
func Asec(x float32) float32 {
	return Acos(1 / x)
}

// Acsc returns Asin(1/x) for |x| >= 1.
func Acsc(x float32) float32 {
	return Asin(1 / x)
}
