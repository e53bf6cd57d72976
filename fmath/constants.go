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

// Float32 constants. Values are rounded from their float64 counterparts.
const (
	Pi     float32 = math.Pi
	TwoPi  float32 = 2 * math.Pi
	HalfPi float32 = math.Pi / 2
	InvPi  float32 = 1 / math.Pi
	SqrtPi float32 = math.SqrtPi
	E      float32 = math.E
	InvE   float32 = 1 / math.E
	Sqrt2  float32 = math.Sqrt2
	Sqrt3  float32 = 1.7320508075688772935274463415059
	Ln2    float32 = math.Ln2
	Ln10   float32 = math.Ln10

	// Log2E and Log10E scale a natural logarithm to base 2 and base 10.
	Log2E  float32 = math.Log2E
	Log10E float32 = math.Log10E

	// Epsilon is the difference between 1 and the next representable float32.
	Epsilon float32 = 1.0 / (1 << 23)
)

// Bit layout of an IEEE-754 binary32 value.
const (
	signMask     uint32 = 0x80000000
	magMask      uint32 = 0x7fffffff
	mantMask     uint32 = 0x007fffff
	oneBits      uint32 = 0x3f800000
	exponentBias        = 0x7f
	mantBits            = 23
)
