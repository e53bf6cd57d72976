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
	"math"
	"unsafe"

	"github.com/ajroetker/go-fmath/backend"
	"github.com/ajroetker/go-fmath/fmath"
)

// Scalar is the set of element types: every type the backend kernels accept.
type Scalar interface {
	backend.Lanes
}

// Float is the set of floating-point element types.
type Float interface {
	backend.Floats
}

// epsilon returns the tolerance used by Equal: 2^-23 for 32-bit floats,
// 2^-52 for 64-bit floats and 0 for integers.
func epsilon[T Scalar]() T {
	var zero T
	if T(1)/T(2) == 0 {
		return zero
	}
	e := 0x1p-52
	if unsafe.Sizeof(zero) == 4 {
		e = float64(fmath.Epsilon)
	}
	return T(e)
}

// approxEqual reports whether |x-y| <= epsilon[T]().
func approxEqual[T Scalar](x, y T) bool {
	if x == y {
		return true
	}
	eps := epsilon[T]()
	if eps == 0 {
		return false
	}
	d := x - y
	if d < 0 {
		d = -d
	}
	return d <= eps
}

// sqrt uses the fmath approximation for float32 and math.Sqrt otherwise.
func sqrt[T Scalar](x T) T {
	switch v := any(x).(type) {
	case float32:
		return any(fmath.Sqrt(v)).(T)
	default:
		return T(math.Sqrt(float64(x)))
	}
}

// rsqrt uses the fmath approximation for float32 and 1/math.Sqrt otherwise.
func rsqrt[T Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return any(fmath.RSqrt(v)).(T)
	default:
		return T(1 / math.Sqrt(float64(x)))
	}
}
