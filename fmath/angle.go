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

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Radians converts an angle from degrees to radians.
func Radians[T constraints.Float](deg T) T {
	return deg * T(math.Pi/180)
}

// Degrees converts an angle from radians to degrees.
func Degrees[T constraints.Float](rad T) T {
	return rad * T(180/math.Pi)
}
